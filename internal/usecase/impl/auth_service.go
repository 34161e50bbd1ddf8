package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"lounas/config"
	"lounas/internal/domain/entity"
	domainerrors "lounas/internal/domain/errors"
	"lounas/internal/domain/repository"
	"lounas/internal/domain/service"
	"lounas/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager   repository.TransactionManager
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	hasher      service.PasswordHasher
	tokens      service.SessionTokenSource
	sessionTTL  time.Duration
	bootstrap   *config.BootstrapConfig
	logger      *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	UserRepo    repository.UserRepository
	SessionRepo repository.SessionRepository
	Hasher      service.PasswordHasher
	Tokens      service.SessionTokenSource
	Config      *config.Config
	Logger      *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all
// dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	sessionTTL := 24 * time.Hour
	if params.Config != nil && params.Config.Session != nil {
		sessionTTL = params.Config.Session.TTL
	}

	var bootstrap *config.BootstrapConfig
	if params.Config != nil {
		bootstrap = params.Config.Bootstrap
	}

	return &authService{
		txManager:   params.TxManager,
		userRepo:    params.UserRepo,
		sessionRepo: params.SessionRepo,
		hasher:      params.Hasher,
		tokens:      params.Tokens,
		sessionTTL:  sessionTTL,
		bootstrap:   bootstrap,
		logger:      params.Logger,
	}
}

// normalizeEmail lower-cases and trims an address so equality checks and the
// unique index agree on what "the same email" means.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a customer account and logs it in immediately, so a new
// customer can order without a second round trip.
func (srv *authService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.AuthOutput, error) {
	email := normalizeEmail(input.Email)

	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	var registered *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		_, err := userRepo.FindByEmail(ctx, email)
		if err == nil {
			return domainerrors.ErrDuplicateEmail
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check email uniqueness")
		}

		user := &entity.User{
			Email:        email,
			PasswordHash: passwordHash,
			Role:         entity.RoleCustomer,
		}
		if err := userRepo.Create(ctx, user); err != nil {
			return err
		}

		registered = user

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.logger.Info("customer registered", slog.String("userID", registered.ID.String()))

	return srv.issueSession(ctx, registered)
}

// Login authenticates any account by email and password.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.AuthOutput, error) {
	return srv.login(ctx, input, nil)
}

// AdminLogin authenticates and additionally requires the admin role. The
// role mismatch fails with the same signal as a wrong password, so probing
// which emails belong to admins learns nothing.
func (srv *authService) AdminLogin(ctx context.Context, input usecase.LoginInput) (*usecase.AuthOutput, error) {
	role := entity.RoleAdmin

	return srv.login(ctx, input, &role)
}

func (srv *authService) login(ctx context.Context, input usecase.LoginInput, wantRole *entity.Role) (*usecase.AuthOutput, error) {
	email := normalizeEmail(input.Email)

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to look up account")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	if wantRole != nil && user.Role != *wantRole {
		return nil, domainerrors.ErrInvalidCredentials
	}

	return srv.issueSession(ctx, user)
}

// issueSession mints a fresh opaque token and stores its keyed hash. The raw
// token leaves the server exactly once, in the returned output.
func (srv *authService) issueSession(ctx context.Context, user *entity.User) (*usecase.AuthOutput, error) {
	token, tokenHash, err := srv.tokens.Generate()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate session token")
	}

	session := &entity.Session{
		UserID:    user.ID,
		Role:      user.Role,
		TokenHash: tokenHash,
		ExpiresAt: time.Now().UTC().Add(srv.sessionTTL),
	}
	if err := srv.sessionRepo.Create(ctx, session); err != nil {
		return nil, err
	}

	return &usecase.AuthOutput{
		Token:     token,
		ExpiresAt: session.ExpiresAt,
		User:      user,
	}, nil
}

// Logout tears down the session behind the token. Unknown or already removed
// tokens succeed silently, so retried logouts never surface errors.
func (srv *authService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	return srv.sessionRepo.DeleteByTokenHash(ctx, srv.tokens.Hash(token))
}

// Resolve maps a presented token to the identity of its live session.
func (srv *authService) Resolve(ctx context.Context, token string) (*usecase.Identity, error) {
	if token == "" {
		return nil, domainerrors.ErrUnauthorized
	}

	session, err := srv.sessionRepo.FindByTokenHash(ctx, srv.tokens.Hash(token))
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil, domainerrors.ErrUnauthorized.WrapMessage("session expired or revoked")
		}

		return nil, errors.Wrap(err, "failed to resolve session")
	}

	return &usecase.Identity{
		SessionID: session.ID,
		UserID:    session.UserID,
		Role:      session.Role,
	}, nil
}

// BootstrapAdmin ensures the store has at least one admin account. It runs on
// every startup and is a no-op once an admin exists, so a crashed first boot
// can simply be retried.
func (srv *authService) BootstrapAdmin(ctx context.Context) error {
	if srv.bootstrap == nil || srv.bootstrap.AdminEmail == "" {
		return nil
	}

	email := normalizeEmail(srv.bootstrap.AdminEmail)

	passwordHash, err := srv.hasher.Hash(srv.bootstrap.AdminPassword)
	if err != nil {
		return errors.Wrap(err, "failed to hash bootstrap password")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		count, err := userRepo.CountByRole(ctx, entity.RoleAdmin)
		if err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		admin := &entity.User{
			Email:        email,
			PasswordHash: passwordHash,
			Role:         entity.RoleAdmin,
		}
		if err := userRepo.Create(ctx, admin); err != nil {
			return err
		}

		srv.logger.Info("bootstrapped admin account", slog.String("email", email))
		if srv.bootstrap.AdminPassword == config.DefaultBootstrapPassword {
			srv.logger.Warn("admin account uses the shipped default password, change it before going live")
		}

		return nil
	})
	// Two instances racing on first boot both pass the count check; the
	// loser hits the unique email index and the store is still correct.
	if err != nil && errors.Is(err, domainerrors.ErrDuplicateEmail) {
		return nil
	}

	return err
}

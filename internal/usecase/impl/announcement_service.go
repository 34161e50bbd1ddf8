package impl

import (
	"context"
	"log/slog"

	"lounas/internal/domain/entity"
	domainerrors "lounas/internal/domain/errors"
	"lounas/internal/domain/repository"
	"lounas/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// announcementService implements the AnnouncementUsecase interface.
type announcementService struct {
	txManager        repository.TransactionManager
	announcementRepo repository.AnnouncementRepository
	logger           *slog.Logger
}

// AnnouncementServiceParams holds dependencies for announcementService, injected by Fx.
type AnnouncementServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	AnnouncementRepo repository.AnnouncementRepository
	Logger           *slog.Logger
}

// NewAnnouncementService is the constructor for announcementService.
func NewAnnouncementService(params AnnouncementServiceParams) usecase.AnnouncementUsecase {
	return &announcementService{
		txManager:        params.TxManager,
		announcementRepo: params.AnnouncementRepo,
		logger:           params.Logger,
	}
}

// ListActive returns the announcements currently shown to customers.
func (srv *announcementService) ListActive(ctx context.Context) ([]*entity.Announcement, error) {
	return srv.announcementRepo.FindActive(ctx)
}

// ListAll returns every announcement, active or not.
func (srv *announcementService) ListAll(ctx context.Context, identity usecase.Identity) ([]*entity.Announcement, error) {
	if !identity.IsAdmin() {
		return nil, domainerrors.ErrUnauthorized.WrapMessage("admin role required")
	}

	return srv.announcementRepo.FindAll(ctx)
}

// Create publishes a new announcement.
func (srv *announcementService) Create(ctx context.Context, identity usecase.Identity, input usecase.CreateAnnouncementInput) (*entity.Announcement, error) {
	if input.Title == "" || input.Content == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("an announcement needs a title and content")
	}

	announcement := &entity.Announcement{
		Title:   input.Title,
		Content: input.Content,
		Active:  input.Active,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := requireAdmin(ctx, repoFactory, identity); err != nil {
			return err
		}

		return repoFactory.AnnouncementRepo().Create(ctx, announcement)
	})
	if err != nil {
		return nil, err
	}

	srv.logger.Info("announcement created", slog.String("announcementID", announcement.ID.String()))

	return announcement, nil
}

// Toggle flips an announcement's active flag and returns the new value.
func (srv *announcementService) Toggle(ctx context.Context, identity usecase.Identity, id uuid.UUID) (bool, error) {
	var active bool

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := requireAdmin(ctx, repoFactory, identity); err != nil {
			return err
		}

		flipped, err := repoFactory.AnnouncementRepo().Toggle(ctx, id)
		if err != nil {
			return err
		}
		active = flipped

		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrAnnouncementNotFound) {
			return false, domainerrors.ErrNotFound.WrapMessage("announcement does not exist")
		}

		return false, err
	}

	return active, nil
}

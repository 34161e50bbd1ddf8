package main

import (
	"context"
	"log/slog"
	"os"

	"lounas/config"
	"lounas/internal/delivery"
	"lounas/internal/delivery/http"
	"lounas/internal/delivery/http/middleware"
	"lounas/internal/delivery/http/router/handler"
	"lounas/internal/infra/auth"
	logs "lounas/internal/infra/log"
	"lounas/internal/infra/persistence/postgres"
	"lounas/internal/usecase"
	"lounas/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			warnOnDefaultSecrets,
			bootstrapAdmin,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewSessionRepository,
			postgres.NewMenuRepository,
			postgres.NewOrderRepository,
			postgres.NewAnnouncementRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewSessionTokenSource,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewMenuService,
			impl.NewOrderService,
			impl.NewAnnouncementService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewMenuHandler,
			handler.NewOrderHandler,
			handler.NewAnnouncementHandler,
			handler.NewInfoHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// warnOnDefaultSecrets flags deployments still running on the shipped
// fallback credentials. The server starts anyway; local development relies
// on that.
func warnOnDefaultSecrets(cfg *config.Config, logger *slog.Logger) {
	if cfg.UsesDefaultSecrets() {
		logger.Warn("Running with default secrets, override them before going live")
	}
}

// bootstrapAdmin ensures an admin account exists before the server accepts
// requests.
func bootstrapAdmin(ctx context.Context, authUsecase usecase.AuthUsecase) error {
	return authUsecase.BootstrapAdmin(ctx)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}

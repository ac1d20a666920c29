package main

import (
	"context"
	"log/slog"
	"os"

	"tutortrack/config"
	"tutortrack/internal/delivery"
	"tutortrack/internal/delivery/http"
	"tutortrack/internal/delivery/http/middleware"
	"tutortrack/internal/delivery/http/router/handler"
	"tutortrack/internal/delivery/http/session"
	"tutortrack/internal/infra/auth"
	logs "tutortrack/internal/infra/log"
	"tutortrack/internal/infra/persistence/mongo"
	"tutortrack/internal/usecase/impl"

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
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		mongo.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			mongo.NewTutorRepository,
			mongo.NewBookingRepository,
			mongo.NewUserRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			newCookieAdapter,
		),
	)
}

// newCookieAdapter binds the session cookie's transport attributes to
// the deployment environment.
func newCookieAdapter(cfg *config.Config) *session.CookieAdapter {
	return session.NewCookieAdapter(cfg.IsProduction())
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewTutorService,
			impl.NewBookingService,
			impl.NewUserService,
			impl.NewSessionService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
			middleware.NewLoggerMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewTutorHandler,
			handler.NewBookingHandler,
			handler.NewUserHandler,
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

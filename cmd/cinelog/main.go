package main

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"cinelog/config"
	"cinelog/internal/delivery"
	"cinelog/internal/delivery/http"
	"cinelog/internal/delivery/http/middleware"
	"cinelog/internal/delivery/http/router/handler"
	"cinelog/internal/infra/auth"
	logs "cinelog/internal/infra/log"
	"cinelog/internal/infra/persistence/mongodb"
	"cinelog/internal/usecase/impl"
)

type startServerParams struct {
	fx.In
	fx.Shutdowner

	Logger     *slog.Logger
	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectMiddleware(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		mongodb.New,
	)
}

func injectRepo() fx.Option {
	return fx.Provide(
		mongodb.NewUserRepository,
		mongodb.NewFavoriteRepository,
		mongodb.NewNoteRepository,
	)
}

func injectService() fx.Option {
	return fx.Provide(
		auth.NewBcryptHasher,
		auth.NewJWTService,
	)
}

func injectUsecase() fx.Option {
	return fx.Provide(
		impl.NewUserService,
		impl.NewFavoriteService,
		impl.NewNoteService,
	)
}

func injectMiddleware() fx.Option {
	return fx.Provide(
		middleware.NewAuthMiddleware,
		middleware.NewErrorMiddleware,
		middleware.NewRequestIDMiddleware,
		middleware.NewLoggerMiddleware,
	)
}

func injectHandler() fx.Option {
	return fx.Provide(
		handler.NewUserHandler,
		handler.NewFavoriteHandler,
		handler.NewNoteHandler,
	)
}

func injectDelivery() fx.Option {
	return fx.Provide(
		fx.Annotate(
			http.NewServer,
			fx.ResultTags(`group:"deliveries"`),
		),
	)
}

// startServer launches every delivery in its own goroutine. A serve
// failure shuts the whole application down instead of leaving it half up.
func startServer(params startServerParams) {
	for _, d := range params.Deliveries {
		go func(d delivery.Delivery) {
			if err := d.Serve(context.Background()); err != nil {
				params.Logger.Error("Delivery stopped", slog.Any("error", err))
				_ = params.Shutdown()
			}
		}(d)
	}
}

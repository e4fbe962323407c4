package main

import (
	"context"
	"log/slog"
	"os"

	"lunchradar/config"
	"lunchradar/internal/delivery"
	"lunchradar/internal/delivery/api"
	"lunchradar/internal/delivery/api/router/handler"
	"lunchradar/internal/domain/lifecycle"
	"lunchradar/internal/domain/service"
	"lunchradar/internal/infra/cache"
	"lunchradar/internal/infra/enrichment"
	"lunchradar/internal/infra/geosearch"
	logs "lunchradar/internal/infra/log"
	"lunchradar/internal/infra/persistence"
	"lunchradar/internal/infra/pubsub"
	"lunchradar/internal/infra/qrcode"
	"lunchradar/internal/usecase"
	"lunchradar/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
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
		context.Background,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			persistence.NewRepositories,
			cache.NewRestaurantCache,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			geosearch.NewOverpassClient,
			enrichment.NewDetailEnricher,
			pubsub.NewEventPublisher,
			newQRCodeService,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCatalogService,
			impl.NewLikeService,
		),
		fx.Invoke(drainLikesOnStop),
	)
}

// drainLikesOnStop lets in-flight like and selection writes land before the gateways close
func drainLikesOnStop(lc fx.Lifecycle, likeUC usecase.LikeUsecase) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			drainCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			defer cancel()

			return likeUC.Drain(drainCtx)
		},
	})
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewRestaurantHandler,
			handler.NewLikeHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
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

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}

package enrichment

import (
	"context"
	"log/slog"

	"lunchradar/config"
	"lunchradar/internal/domain/lifecycle"
	"lunchradar/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// EnricherParams holds dependencies for the DetailEnricher, injected by Fx
type EnricherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewDetailEnricher builds the business client and, when Redis is configured, puts the
// shared detail cache in front of it
func NewDetailEnricher(params EnricherParams) service.DetailEnricher {
	cfg := params.Config
	logger := params.Logger

	client := NewBusinessClient(cfg, logger)
	if cfg == nil || cfg.Redis == nil || cfg.Redis.Addr == "" {
		logger.Info("Redis not configured, enrichment lookups are not shared")

		return client
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ttl := defaultCacheTTL
	if cfg.Enrichment != nil && cfg.Enrichment.CacheTTL > 0 {
		ttl = cfg.Enrichment.CacheTTL
	}

	params.Lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			// The cache is optional: an unreachable Redis only degrades to direct lookups
			if err := rdb.Ping(ctx).Err(); err != nil {
				logger.Warn("Redis ping failed", slog.String("addr", cfg.Redis.Addr), slog.Any("error", err))
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			logger.Info("Closing Redis client")

			return errors.WithStack(rdb.Close())
		},
	})

	logger.Info("Using Redis enrichment cache",
		slog.String("addr", cfg.Redis.Addr),
		slog.Duration("ttl", ttl),
	)

	return NewCachedEnricher(client, NewRedisDetailStore(rdb), ttl, logger)
}

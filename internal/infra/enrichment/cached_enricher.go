package enrichment

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"lunchradar/internal/domain/entity"
	"lunchradar/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const (
	cacheKeyPrefix  = "lunchradar:enrichment:"
	defaultCacheTTL = 24 * time.Hour
)

// errCacheMiss is returned by a DetailStore when the key is absent
var errCacheMiss = errors.New("enrichment cache miss")

// DetailStore is the key/value store behind the enrichment cache
type DetailStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}

type redisDetailStore struct {
	client *redis.Client
}

// NewRedisDetailStore adapts a Redis client to DetailStore
func NewRedisDetailStore(client *redis.Client) DetailStore {
	return &redisDetailStore{client: client}
}

func (s *redisDetailStore) Get(ctx context.Context, key string) (string, error) {
	value, err := s.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", errCacheMiss
	}
	if err != nil {
		return "", errors.WithStack(err)
	}

	return value, nil
}

func (s *redisDetailStore) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return errors.WithStack(s.client.Set(ctx, key, value, ttl).Err())
}

// cachedEnricher is a read-through cache in front of another DetailEnricher. Only
// successful lookups are stored; store failures fall through to the wrapped enricher.
type cachedEnricher struct {
	next   service.DetailEnricher
	store  DetailStore
	ttl    time.Duration
	logger *slog.Logger
}

// NewCachedEnricher wraps next with a shared detail cache
func NewCachedEnricher(next service.DetailEnricher, store DetailStore, ttl time.Duration, logger *slog.Logger) service.DetailEnricher {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}

	return &cachedEnricher{
		next:   next,
		store:  store,
		ttl:    ttl,
		logger: logger,
	}
}

// Enrich serves the lookup from the store when possible
func (e *cachedEnricher) Enrich(ctx context.Context, name string, coord entity.Coordinate) (*entity.EnrichmentFields, error) {
	key := cacheKey(name, coord)

	raw, err := e.store.Get(ctx, key)
	switch {
	case err == nil:
		var fields entity.EnrichmentFields
		if jsonErr := json.Unmarshal([]byte(raw), &fields); jsonErr == nil {
			return &fields, nil
		}
		e.logger.Warn("Discarding undecodable enrichment cache entry", slog.String("key", key))
	case !errors.Is(err, errCacheMiss):
		e.logger.Warn("Enrichment cache read failed", slog.String("key", key), slog.Any("error", err))
	}

	fields, err := e.next.Enrich(ctx, name, coord)
	if err != nil {
		return nil, err
	}

	encoded, err := json.Marshal(fields)
	if err != nil {
		return fields, nil
	}
	if err := e.store.Set(ctx, key, string(encoded), e.ttl); err != nil {
		e.logger.Warn("Enrichment cache write failed", slog.String("key", key), slog.Any("error", err))
	}

	return fields, nil
}

func cacheKey(name string, coord entity.Coordinate) string {
	return cacheKeyPrefix + strings.ToLower(strings.TrimSpace(name)) + "@" + coord.Locator()
}

package impl

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"lunchradar/config"
	deliverycontext "lunchradar/internal/delivery/context"
	"lunchradar/internal/domain/entity"
	domainerrors "lunchradar/internal/domain/errors"
	"lunchradar/internal/domain/repository"
	"lunchradar/internal/domain/service"
	"lunchradar/internal/usecase"

	"github.com/paulmach/orb/geo"
	"golang.org/x/sync/semaphore"
)

const (
	defaultSearchRadiusMeters = 1000
	defaultMaxConcurrency     = 8
)

// catalogService implements the CatalogUsecase interface
type catalogService struct {
	cache    repository.RestaurantCache
	searcher service.GeoSearcher
	enricher service.DetailEnricher
	logger   *slog.Logger

	radiusMeters          int
	refreshDistanceMeters float64
	slots                 *semaphore.Weighted

	// serializes LoadCandidates so that concurrent loads against an empty cache search once
	searchMu sync.Mutex

	observersMu  sync.RWMutex
	observers    map[uint64]chan []entity.Restaurant
	nextObserver uint64
}

// enrichmentOutcome is what one dispatched lookup reports back to its batch collector
type enrichmentOutcome struct {
	index  int
	fields *entity.EnrichmentFields
	err    error
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(
	cfg *config.Config,
	logger *slog.Logger,
	cache repository.RestaurantCache,
	searcher service.GeoSearcher,
	enricher service.DetailEnricher,
) usecase.CatalogUsecase {
	radius := defaultSearchRadiusMeters
	refresh := 0.0
	if cfg != nil && cfg.Discovery != nil {
		if cfg.Discovery.RadiusMeters > 0 {
			radius = cfg.Discovery.RadiusMeters
		}
		refresh = cfg.Discovery.RefreshDistanceMeters
	}

	maxConcurrency := defaultMaxConcurrency
	if cfg != nil && cfg.Enrichment != nil && cfg.Enrichment.MaxConcurrency > 0 {
		maxConcurrency = cfg.Enrichment.MaxConcurrency
	}

	return &catalogService{
		cache:                 cache,
		searcher:              searcher,
		enricher:              enricher,
		logger:                logger,
		radiusMeters:          radius,
		refreshDistanceMeters: refresh,
		slots:                 semaphore.NewWeighted(int64(maxConcurrency)),
		observers:             make(map[uint64]chan []entity.Restaurant),
	}
}

// LoadCandidates returns the cached candidates, searching only when the cache is empty
// (or, when a refresh distance is configured, when coord moved too far from the last search)
func (s *catalogService) LoadCandidates(ctx context.Context, coord entity.Coordinate) ([]entity.Restaurant, error) {
	if !coord.IsValid() {
		return nil, domainerrors.ErrInvalidCoordinate.WrapMessage("load candidates")
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	s.searchMu.Lock()
	defer s.searchMu.Unlock()

	if cached := s.cache.GetAll(); len(cached) > 0 && !s.movedTooFar(coord) {
		return cached, nil
	}

	found, err := s.searcher.Search(ctx, coord, s.radiusMeters)
	if err != nil {
		logger.Error("Geo search failed",
			slog.String("locator", coord.Locator()),
			slog.Int("radius_meters", s.radiusMeters),
			slog.Any("error", err),
		)

		return []entity.Restaurant{}, nil
	}

	generation := s.cache.Replace(coord, found)
	logger.Info("Candidate cache replaced",
		slog.Uint64("generation", generation),
		slog.Int("candidates", len(found)),
	)

	return s.cache.GetAll(), nil
}

func (s *catalogService) movedTooFar(coord entity.Coordinate) bool {
	if s.refreshDistanceMeters <= 0 {
		return false
	}

	center, ok := s.cache.Center()
	if !ok {
		return false
	}

	return geo.Distance(center.Point(), coord.Point()) > s.refreshDistanceMeters
}

// ResolveOne delivers the enriched restaurant for input, or its baseline when the lookup fails
func (s *catalogService) ResolveOne(ctx context.Context, input *usecase.ResolveOneInput) <-chan usecase.Result[entity.Restaurant] {
	if input == nil || input.ID == "" {
		return usecase.Failed[entity.Restaurant](domainerrors.ErrValidationFailed.WrapMessage("restaurant id is required"))
	}

	target := entity.Restaurant{
		ID:         input.ID,
		Name:       input.Name,
		Coordinate: input.Coordinate,
	}

	if cached, ok := s.cache.FindByID(input.ID); ok {
		if cached.IsEnriched() {
			return usecase.Resolved(cached)
		}
		if target.Name == "" {
			target.Name = cached.Name
		}
		if !target.Coordinate.IsValid() || target.Coordinate == (entity.Coordinate{}) {
			target.Coordinate = cached.Coordinate
		}
	}

	// The marker only guards batch dispatch; a single resolve always looks the restaurant up.
	s.cache.MarkEnrichmentAttempted(target.ID)

	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)
	dispatchCtx := context.WithoutCancel(ctx)
	out := make(chan usecase.Result[entity.Restaurant], 1)

	go func() {
		defer close(out)

		fields, err := s.enrich(dispatchCtx, target)
		if err != nil {
			logger.Warn("Enrichment failed, delivering baseline",
				slog.String("restaurant_id", target.ID),
				slog.Any("error", err),
			)
			fallback := target.Baseline()
			fallback.DetailsFetched = true
			out <- usecase.Result[entity.Restaurant]{Value: fallback}

			return
		}

		merged, ok := s.cache.ApplyEnrichment(target.ID, *fields)
		if !ok {
			target.ApplyEnrichment(*fields)
			target.DetailsFetched = true
			merged = s.cache.Upsert(target)
		}
		out <- usecase.Result[entity.Restaurant]{Value: merged}
	}()

	return out
}

// ResolveBatch claims every candidate not attempted in this generation, looks the claimed ones up
// concurrently and emits the whole batch once, in input order, after the last lookup completes
func (s *catalogService) ResolveBatch(ctx context.Context, candidates []entity.Restaurant) <-chan usecase.Result[[]entity.Restaurant] {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	ids := make([]string, len(candidates))
	for i, candidate := range candidates {
		ids[i] = candidate.ID
	}
	generation, claims := s.cache.ClaimEnrichment(ids)

	batch := make([]entity.Restaurant, len(candidates))
	claimed := make([]int, 0, len(candidates))
	for i, candidate := range candidates {
		if claims[i] {
			candidate.DetailsFetched = true
			batch[i] = candidate
			claimed = append(claimed, i)

			continue
		}

		if cached, ok := s.cache.FindByID(candidate.ID); ok {
			batch[i] = cached
		} else {
			candidate.DetailsFetched = true
			batch[i] = candidate
		}
	}

	out := make(chan usecase.Result[[]entity.Restaurant], 1)
	if len(claimed) == 0 {
		s.complete(generation, batch, nil, out, logger)

		return out
	}

	logger.Debug("Dispatching enrichment batch",
		slog.Int("candidates", len(candidates)),
		slog.Int("claimed", len(claimed)),
	)

	dispatchCtx := context.WithoutCancel(ctx)
	outcomes := make(chan enrichmentOutcome, len(claimed))
	for _, index := range claimed {
		target := batch[index]
		go func() {
			fields, err := s.enrich(dispatchCtx, target)
			outcomes <- enrichmentOutcome{index: index, fields: fields, err: err}
		}()
	}

	go s.collect(generation, batch, outcomes, len(claimed), out, logger)

	return out
}

// collect is the single owner of batch and of its outstanding count
func (s *catalogService) collect(
	generation uint64,
	batch []entity.Restaurant,
	outcomes <-chan enrichmentOutcome,
	outstanding int,
	out chan<- usecase.Result[[]entity.Restaurant],
	logger *slog.Logger,
) {
	failed := 0
	enriched := make(map[string]bool, outstanding)
	for outstanding > 0 {
		outcome := <-outcomes
		outstanding--

		if outcome.err != nil {
			failed++
			logger.Warn("Enrichment failed, keeping baseline",
				slog.String("restaurant_id", batch[outcome.index].ID),
				slog.Any("error", outcome.err),
			)

			continue
		}
		batch[outcome.index].ApplyEnrichment(*outcome.fields)
		enriched[batch[outcome.index].ID] = true
	}

	if failed > 0 {
		logger.Info("Enrichment batch finished with failures", slog.Int("failed", failed))
	}

	s.complete(generation, batch, enriched, out, logger)
}

// complete commits batch and emits the committed view, or batch itself when the commit is refused
func (s *catalogService) complete(
	generation uint64,
	batch []entity.Restaurant,
	enriched map[string]bool,
	out chan<- usecase.Result[[]entity.Restaurant],
	logger *slog.Logger,
) {
	committed, ok := s.cache.Commit(generation, batch, enriched)
	if !ok {
		logger.Warn("Discarding stale batch, cache moved to a new generation",
			slog.Uint64("batch_generation", generation),
		)
	}

	s.publish(committed, logger)
	out <- usecase.Result[[]entity.Restaurant]{Value: committed}
	close(out)
}

// enrich runs one bounded lookup. ctx must not be cancellable.
func (s *catalogService) enrich(ctx context.Context, target entity.Restaurant) (*entity.EnrichmentFields, error) {
	if err := s.slots.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	defer s.slots.Release(1)

	fields, err := s.enricher.Enrich(ctx, target.Name, target.Coordinate)
	if err != nil {
		return nil, err
	}
	if fields == nil {
		return nil, service.NewSourceError("enrichment", service.ErrMalformedResponse, nil)
	}

	return fields, nil
}

// Lookup returns the cached restaurant with the given id
func (s *catalogService) Lookup(id string) (entity.Restaurant, bool) {
	return s.cache.FindByID(id)
}

// Subscribe registers an observer for emitted batches
func (s *catalogService) Subscribe(buffer int) (<-chan []entity.Restaurant, func()) {
	if buffer < 1 {
		buffer = 1
	}
	ch := make(chan []entity.Restaurant, buffer)

	s.observersMu.Lock()
	id := s.nextObserver
	s.nextObserver++
	s.observers[id] = ch
	s.observersMu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			s.observersMu.Lock()
			delete(s.observers, id)
			close(ch)
			s.observersMu.Unlock()
		})
	}

	return ch, cancel
}

// publish hands every observer its own copy of batch without blocking
func (s *catalogService) publish(batch []entity.Restaurant, logger *slog.Logger) {
	s.observersMu.RLock()
	defer s.observersMu.RUnlock()

	for id, ch := range s.observers {
		select {
		case ch <- slices.Clone(batch):
		default:
			logger.Warn("Observer buffer full, dropping batch", slog.Uint64("observer", id))
		}
	}
}

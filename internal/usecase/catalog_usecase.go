package usecase

import (
	"context"

	"lunchradar/internal/domain/entity"
)

// ResolveOneInput identifies a single restaurant to resolve
type ResolveOneInput struct {
	ID         string            `json:"id" validate:"required"`
	Name       string            `json:"name"`
	Coordinate entity.Coordinate `json:"coordinate"`
}

// CatalogUsecase discovers nearby restaurants and enriches them with business details.
// Results are delivered on channels; every returned channel yields exactly one value and is then closed.
type CatalogUsecase interface {
	// LoadCandidates returns the cached candidate set, running a geo search only when the cache is empty
	LoadCandidates(ctx context.Context, coord entity.Coordinate) ([]entity.Restaurant, error)

	// ResolveOne returns the enriched restaurant, falling back to its baseline when enrichment fails
	ResolveOne(ctx context.Context, input *ResolveOneInput) <-chan Result[entity.Restaurant]

	// ResolveBatch enriches every candidate not yet attempted in this generation and emits the
	// full batch, in input order, once the last lookup completes
	ResolveBatch(ctx context.Context, candidates []entity.Restaurant) <-chan Result[[]entity.Restaurant]

	// Lookup returns the cached restaurant with the given id
	Lookup(id string) (entity.Restaurant, bool)

	// Subscribe registers an observer for emitted batches. The returned func unregisters it.
	Subscribe(buffer int) (<-chan []entity.Restaurant, func())
}

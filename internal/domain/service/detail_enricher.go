package service

import (
	"context"

	"lunchradar/internal/domain/entity"
)

// DetailEnricher queries a business-detail source for the best match of a restaurant.
type DetailEnricher interface {
	// Enrich returns the enrichment fields of the top match for name near coord.
	// An empty result is reported as a *SourceError of kind ErrNotFound.
	Enrich(ctx context.Context, name string, coord entity.Coordinate) (*entity.EnrichmentFields, error)
}

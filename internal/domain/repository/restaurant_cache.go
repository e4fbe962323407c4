package repository

import (
	"lunchradar/internal/domain/entity"
)

// RestaurantCache holds the most recently fetched candidate set and the per-restaurant
// "enrichment attempted" markers of the current cache generation. Every method is safe
// for concurrent use.
type RestaurantCache interface {
	// GetAll returns a snapshot of the current candidates in insertion order.
	GetAll() []entity.Restaurant

	// Replace installs a freshly searched candidate set as a new generation, records the
	// search center and clears all enrichment markers. It returns the new generation.
	Replace(center entity.Coordinate, candidates []entity.Restaurant) uint64

	// FindByID returns the cached restaurant with the given id.
	FindByID(id string) (entity.Restaurant, bool)

	// MarkEnrichmentAttempted atomically sets the marker for id and reports whether this
	// call was the one that set it.
	MarkEnrichmentAttempted(id string) bool

	// ClaimEnrichment runs MarkEnrichmentAttempted for every id and returns the generation
	// the claims were made in, atomically with the claims.
	ClaimEnrichment(ids []string) (uint64, []bool)

	// ApplyEnrichment merges fields into the cached restaurant in place. It returns the
	// merged entity, or false when id is not cached.
	ApplyEnrichment(id string, fields entity.EnrichmentFields) (entity.Restaurant, bool)

	// Upsert stores r, appending it when absent. The stored marker state wins over r's flag.
	Upsert(r entity.Restaurant) entity.Restaurant

	// Commit installs a resolved batch as the authoritative set of generation and returns
	// the committed view. Only ids in enriched overwrite the cached entity; the others keep
	// what is cached. It is refused (false) when a Replace happened since the batch started.
	Commit(generation uint64, batch []entity.Restaurant, enriched map[string]bool) ([]entity.Restaurant, bool)

	// Generation returns the current cache generation.
	Generation() uint64

	// Center returns the coordinate of the search that produced the current generation.
	Center() (entity.Coordinate, bool)
}

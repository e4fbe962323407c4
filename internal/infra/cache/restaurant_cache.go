// Package cache contains the in-memory, process-lifetime restaurant catalog.
package cache

import (
	"sync"

	"lunchradar/internal/domain/entity"
	"lunchradar/internal/domain/repository"
)

// restaurantCache implements repository.RestaurantCache. Entries are stored by pointer and
// mutated in place; callers only ever receive copies.
type restaurantCache struct {
	mu         sync.RWMutex
	generation uint64
	center     *entity.Coordinate
	order      []string
	entries    map[string]*entity.Restaurant
	attempted  map[string]struct{}
}

// NewRestaurantCache creates an empty cache at generation 0.
func NewRestaurantCache() repository.RestaurantCache {
	return &restaurantCache{
		entries:   make(map[string]*entity.Restaurant),
		attempted: make(map[string]struct{}),
	}
}

// GetAll returns a snapshot of the current candidates in insertion order.
func (c *restaurantCache) GetAll() []entity.Restaurant {
	c.mu.RLock()
	defer c.mu.RUnlock()

	snapshot := make([]entity.Restaurant, 0, len(c.order))
	for _, id := range c.order {
		snapshot = append(snapshot, *c.entries[id])
	}

	return snapshot
}

// Replace installs a new generation and forgets every enrichment marker.
func (c *restaurantCache) Replace(center entity.Coordinate, candidates []entity.Restaurant) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.generation++
	c.center = &center
	c.attempted = make(map[string]struct{})
	c.order = make([]string, 0, len(candidates))
	c.entries = make(map[string]*entity.Restaurant, len(candidates))

	for _, candidate := range candidates {
		candidate.DetailsFetched = false
		c.putLocked(candidate)
	}

	return c.generation
}

// FindByID returns the cached restaurant with the given id.
func (c *restaurantCache) FindByID(id string) (entity.Restaurant, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	stored, ok := c.entries[id]
	if !ok {
		return entity.Restaurant{}, false
	}

	return *stored, true
}

// MarkEnrichmentAttempted is the compare-and-set that guards enrichment dispatch.
func (c *restaurantCache) MarkEnrichmentAttempted(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, done := c.attempted[id]; done {
		return false
	}
	c.attempted[id] = struct{}{}

	if stored, ok := c.entries[id]; ok {
		stored.DetailsFetched = true
	}

	return true
}

// ClaimEnrichment runs the marker compare-and-set for every id and reports the generation
// the claims belong to, all under one lock. A repeated id is claimed at most once.
func (c *restaurantCache) ClaimEnrichment(ids []string) (uint64, []bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	claimed := make([]bool, len(ids))
	for i, id := range ids {
		if _, done := c.attempted[id]; done {
			continue
		}
		c.attempted[id] = struct{}{}
		claimed[i] = true

		if stored, ok := c.entries[id]; ok {
			stored.DetailsFetched = true
		}
	}

	return c.generation, claimed
}

// ApplyEnrichment merges fields into the cached restaurant in place.
func (c *restaurantCache) ApplyEnrichment(id string, fields entity.EnrichmentFields) (entity.Restaurant, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	stored, ok := c.entries[id]
	if !ok {
		return entity.Restaurant{}, false
	}
	stored.ApplyEnrichment(fields)

	return *stored, true
}

// Upsert stores r, appending it to the candidate order when it is new.
func (c *restaurantCache) Upsert(r entity.Restaurant) entity.Restaurant {
	c.mu.Lock()
	defer c.mu.Unlock()

	return *c.putLocked(r)
}

// Commit installs a resolved batch as the authoritative candidate set and returns the
// committed view in batch order. Only ids in enriched take the batch's copy; every other id
// keeps the entity already cached, which may have been enriched by a concurrent resolve
// after the batch took its snapshot. Markers are kept. A refused commit returns batch.
func (c *restaurantCache) Commit(generation uint64, batch []entity.Restaurant, enriched map[string]bool) ([]entity.Restaurant, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if generation != c.generation {
		return batch, false
	}

	previous := c.entries
	c.order = make([]string, 0, len(batch))
	c.entries = make(map[string]*entity.Restaurant, len(batch))

	for _, incoming := range batch {
		if _, placed := c.entries[incoming.ID]; placed {
			continue
		}
		if known, ok := previous[incoming.ID]; ok && !enriched[incoming.ID] {
			incoming = *known
		}
		c.putLocked(incoming)
	}

	committed := make([]entity.Restaurant, len(batch))
	for i, r := range batch {
		committed[i] = *c.entries[r.ID]
	}

	return committed, true
}

// Generation returns the current cache generation.
func (c *restaurantCache) Generation() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.generation
}

// Center returns the coordinate of the search that produced the current generation.
func (c *restaurantCache) Center() (entity.Coordinate, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.center == nil {
		return entity.Coordinate{}, false
	}

	return *c.center, true
}

// putLocked stores r and keeps DetailsFetched consistent with the marker map.
// c.mu must be held for writing.
func (c *restaurantCache) putLocked(r entity.Restaurant) *entity.Restaurant {
	_, attempted := c.attempted[r.ID]
	r.DetailsFetched = attempted

	if stored, ok := c.entries[r.ID]; ok {
		*stored = r

		return stored
	}

	stored := &r
	c.entries[r.ID] = stored
	c.order = append(c.order, r.ID)

	return stored
}

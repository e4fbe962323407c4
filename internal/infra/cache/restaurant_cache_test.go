package cache

import (
	"sync"
	"sync/atomic"
	"testing"

	"lunchradar/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var paris = entity.Coordinate{Lat: 48.8566, Lng: 2.3522}

func candidates() []entity.Restaurant {
	return []entity.Restaurant{
		{ID: "1", Name: "Le Zinc", Coordinate: entity.Coordinate{Lat: 48.8570, Lng: 2.3530}},
		{ID: "2", Name: "Casa Nostra", Coordinate: entity.Coordinate{Lat: 48.8560, Lng: 2.3510}},
	}
}

func TestRestaurantCache_EmptyByDefault(t *testing.T) {
	c := NewRestaurantCache()

	assert.Empty(t, c.GetAll())
	assert.Equal(t, uint64(0), c.Generation())

	_, ok := c.Center()
	assert.False(t, ok)

	_, found := c.FindByID("1")
	assert.False(t, found)
}

func TestRestaurantCache_ReplaceKeepsOrder(t *testing.T) {
	c := NewRestaurantCache()

	gen := c.Replace(paris, candidates())

	assert.Equal(t, uint64(1), gen)
	all := c.GetAll()
	require.Len(t, all, 2)
	assert.Equal(t, "1", all[0].ID)
	assert.Equal(t, "2", all[1].ID)

	center, ok := c.Center()
	require.True(t, ok)
	assert.Equal(t, paris, center)
}

func TestRestaurantCache_MarkEnrichmentAttempted(t *testing.T) {
	c := NewRestaurantCache()
	c.Replace(paris, candidates())

	assert.True(t, c.MarkEnrichmentAttempted("1"))
	assert.False(t, c.MarkEnrichmentAttempted("1"))

	stored, ok := c.FindByID("1")
	require.True(t, ok)
	assert.True(t, stored.DetailsFetched)

	other, _ := c.FindByID("2")
	assert.False(t, other.DetailsFetched)
}

func TestRestaurantCache_MarkEnrichmentAttempted_Concurrent(t *testing.T) {
	c := NewRestaurantCache()
	c.Replace(paris, candidates())

	var (
		wg      sync.WaitGroup
		winners atomic.Int32
	)
	for range 64 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if c.MarkEnrichmentAttempted("1") {
				winners.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), winners.Load())
}

func TestRestaurantCache_ReplaceStartsNewGeneration(t *testing.T) {
	c := NewRestaurantCache()
	c.Replace(paris, candidates())
	require.True(t, c.MarkEnrichmentAttempted("1"))

	gen := c.Replace(paris, candidates())

	assert.Equal(t, uint64(2), gen)
	stored, _ := c.FindByID("1")
	assert.False(t, stored.DetailsFetched)
	assert.True(t, c.MarkEnrichmentAttempted("1"))
}

func TestRestaurantCache_ApplyEnrichment(t *testing.T) {
	c := NewRestaurantCache()
	c.Replace(paris, candidates())

	merged, ok := c.ApplyEnrichment("1", entity.EnrichmentFields{
		Address:  "12 rue du Faubourg Poissonnière",
		PhotoURL: "https://img.example.com/zinc.jpg",
		Rating:   4.2,
	})

	require.True(t, ok)
	assert.Equal(t, "Le Zinc", merged.Name)
	assert.Equal(t, "12 rue du Faubourg Poissonnière", merged.Address)

	stored, _ := c.FindByID("1")
	assert.Equal(t, merged, stored)

	_, ok = c.ApplyEnrichment("missing", entity.EnrichmentFields{Address: "x"})
	assert.False(t, ok)
}

func TestRestaurantCache_UpsertAppendsAndFollowsMarker(t *testing.T) {
	c := NewRestaurantCache()
	c.Replace(paris, candidates())
	c.MarkEnrichmentAttempted("3")

	stored := c.Upsert(entity.Restaurant{ID: "3", Name: "Chez Marcel"})

	assert.True(t, stored.DetailsFetched)
	all := c.GetAll()
	require.Len(t, all, 3)
	assert.Equal(t, "3", all[2].ID)
}

func TestRestaurantCache_CommitRefusedAfterReplace(t *testing.T) {
	c := NewRestaurantCache()
	gen := c.Replace(paris, candidates())
	c.Replace(paris, candidates()[:1])

	batch := candidates()
	committed, ok := c.Commit(gen, batch, map[string]bool{"1": true, "2": true})

	assert.False(t, ok)
	assert.Equal(t, batch, committed)
	assert.Len(t, c.GetAll(), 1)
}

// geoAddressed are candidates whose address came from the geo search tags.
func geoAddressed() []entity.Restaurant {
	batch := candidates()
	batch[0].Address = "3 rue du Faubourg Montmartre"
	batch[1].Address = "7 Via Roma"

	return batch
}

func TestRestaurantCache_CommitKeepsEnrichmentOfUnclaimedEntries(t *testing.T) {
	c := NewRestaurantCache()
	gen := c.Replace(paris, geoAddressed())

	// "1" is claimed and enriched by a single resolve while a batch holds a snapshot of it.
	require.True(t, c.MarkEnrichmentAttempted("1"))
	snapshot, _ := c.FindByID("1")
	c.ApplyEnrichment("1", entity.EnrichmentFields{Address: "12 rue", PhotoURL: "p.jpg", Rating: 4})

	batch := []entity.Restaurant{snapshot, geoAddressed()[1]}
	batch[1].PhotoURL = "casa.jpg"
	committed, ok := c.Commit(gen, batch, map[string]bool{"2": true})

	require.True(t, ok)
	stored, _ := c.FindByID("1")
	assert.Equal(t, "12 rue", stored.Address)
	assert.Equal(t, "p.jpg", stored.PhotoURL)
	assert.True(t, stored.DetailsFetched)
	assert.Equal(t, stored, committed[0])

	other, _ := c.FindByID("2")
	assert.Equal(t, "casa.jpg", other.PhotoURL)
	assert.Equal(t, other, committed[1])
}

func TestRestaurantCache_CommitOverwritesEntriesItEnriched(t *testing.T) {
	c := NewRestaurantCache()
	gen := c.Replace(paris, geoAddressed())
	c.ClaimEnrichment([]string{"1", "2"})

	batch := geoAddressed()
	batch[0].ApplyEnrichment(entity.EnrichmentFields{Address: "12 rue", PhotoURL: "zinc.jpg"})
	committed, ok := c.Commit(gen, batch, map[string]bool{"1": true})

	require.True(t, ok)
	assert.Equal(t, "zinc.jpg", committed[0].PhotoURL)
	assert.Equal(t, "7 Via Roma", committed[1].Address)
	assert.True(t, committed[1].DetailsFetched)
}

func TestRestaurantCache_CommitKeepsBatchOrderWithRepeatedIDs(t *testing.T) {
	c := NewRestaurantCache()
	gen := c.Replace(paris, candidates())

	batch := append(candidates(), candidates()[0])
	committed, ok := c.Commit(gen, batch, nil)

	require.True(t, ok)
	require.Len(t, committed, 3)
	assert.Equal(t, committed[0], committed[2])
	assert.Len(t, c.GetAll(), 2)
}

func TestRestaurantCache_ClaimEnrichment(t *testing.T) {
	c := NewRestaurantCache()
	c.Replace(paris, candidates())
	require.True(t, c.MarkEnrichmentAttempted("2"))
	gen := c.Replace(paris, candidates())
	require.True(t, c.MarkEnrichmentAttempted("2"))

	claimedGen, claimed := c.ClaimEnrichment([]string{"1", "2", "1", "ghost"})

	assert.Equal(t, gen, claimedGen)
	assert.Equal(t, []bool{true, false, false, true}, claimed)
	stored, _ := c.FindByID("1")
	assert.True(t, stored.DetailsFetched)
	assert.False(t, c.MarkEnrichmentAttempted("ghost"))
}

func TestRestaurantCache_ClaimEnrichment_ConcurrentWithReplace(t *testing.T) {
	c := NewRestaurantCache()
	c.Replace(paris, candidates())

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			gen, claimed := c.ClaimEnrichment([]string{"1", "2"})
			if claimed[0] {
				stored, ok := c.FindByID("1")
				// the generation only grows, so stored still belongs to gen
				if ok && gen == c.Generation() {
					assert.True(t, stored.DetailsFetched)
				}
			}
		}()
		go func() {
			defer wg.Done()
			c.Replace(paris, candidates())
		}()
	}
	wg.Wait()
}

func TestRestaurantCache_GetAllReturnsCopies(t *testing.T) {
	c := NewRestaurantCache()
	c.Replace(paris, candidates())

	all := c.GetAll()
	all[0].Name = "mutated"

	stored, _ := c.FindByID("1")
	assert.Equal(t, "Le Zinc", stored.Name)
}

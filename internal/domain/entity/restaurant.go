// Package entity contains the core business objects of the project.
package entity

import (
	"math"
	"strconv"

	"github.com/paulmach/orb"
)

// Coordinate is a WGS84 latitude/longitude pair.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Point converts the coordinate to an orb.Point (longitude first).
func (c Coordinate) Point() orb.Point {
	return orb.Point{c.Lng, c.Lat}
}

// Locator formats the coordinate as the "lat,lon" string expected by remote search APIs.
func (c Coordinate) Locator() string {
	return strconv.FormatFloat(c.Lat, 'f', 6, 64) + "," + strconv.FormatFloat(c.Lng, 'f', 6, 64)
}

// IsValid reports whether the coordinate lies within WGS84 bounds.
func (c Coordinate) IsValid() bool {
	if math.IsNaN(c.Lat) || math.IsNaN(c.Lng) ||
		math.IsInf(c.Lat, 0) || math.IsInf(c.Lng, 0) {
		return false
	}

	return c.Lat >= -90 && c.Lat <= 90 && c.Lng >= -180 && c.Lng <= 180
}

// CoordinateFromPoint converts an orb.Point back to a Coordinate.
func CoordinateFromPoint(p orb.Point) Coordinate {
	return Coordinate{Lat: p.Lat(), Lng: p.Lon()}
}

// EnrichmentFields are the attributes supplied by the business-detail source.
type EnrichmentFields struct {
	Address            string  `json:"address"`
	PhotoURL           string  `json:"photo_url"`
	Rating             float64 `json:"rating"`
	PhoneNumber        string  `json:"phone_number"`
	ExternalProfileURL string  `json:"external_profile_url"`
}

// Restaurant is the central catalog entity. Two values with the same ID denote the same restaurant.
type Restaurant struct {
	ID                 string     `json:"id"`
	Name               string     `json:"name"`
	Address            string     `json:"address"`
	PhotoURL           string     `json:"photo_url"`
	Rating             float64    `json:"rating"` // 0 means unknown
	Coordinate         Coordinate `json:"coordinate"`
	PhoneNumber        string     `json:"phone_number"`
	ExternalProfileURL string     `json:"external_profile_url"`
	DetailsFetched     bool       `json:"details_fetched"` // an enrichment attempt was dispatched, whatever its outcome
}

// Baseline returns a copy carrying only the identity fields (id, name, coordinate).
func (r Restaurant) Baseline() Restaurant {
	return Restaurant{
		ID:             r.ID,
		Name:           r.Name,
		Coordinate:     r.Coordinate,
		DetailsFetched: r.DetailsFetched,
	}
}

// IsEnriched reports whether both address and photo have been populated.
func (r Restaurant) IsEnriched() bool {
	return r.Address != "" && r.PhotoURL != ""
}

// HasEnrichment reports whether any enrichment field is populated.
func (r Restaurant) HasEnrichment() bool {
	return r.Address != "" || r.PhotoURL != "" || r.Rating != 0 ||
		r.PhoneNumber != "" || r.ExternalProfileURL != ""
}

// ApplyEnrichment merges the fields into the restaurant. Identity fields are never touched.
// An empty source address keeps the address already known from the geo source.
func (r *Restaurant) ApplyEnrichment(fields EnrichmentFields) {
	if fields.Address != "" {
		r.Address = fields.Address
	}
	r.PhotoURL = fields.PhotoURL
	r.Rating = fields.Rating
	r.PhoneNumber = fields.PhoneNumber
	r.ExternalProfileURL = fields.ExternalProfileURL
}

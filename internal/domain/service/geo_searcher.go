package service

import (
	"context"

	"lunchradar/internal/domain/entity"
)

// GeoSearcher queries a point-of-interest source for restaurants around a coordinate.
type GeoSearcher interface {
	// Search returns minimally populated candidates (id, name, coordinate, optional address)
	// found within radiusMeters of coord. Failures are reported as *SourceError.
	Search(ctx context.Context, coord entity.Coordinate, radiusMeters int) ([]entity.Restaurant, error)
}

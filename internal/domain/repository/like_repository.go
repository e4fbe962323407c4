package repository

import (
	"context"

	"lunchradar/internal/domain/entity"
)

// LikeRepository defines the durable store operations for likes.
type LikeRepository interface {
	// SaveLike stores the like; saving an existing like is a no-op.
	SaveLike(ctx context.Context, like *entity.Like) error

	// DeleteLike removes the like; deleting a missing like is a no-op.
	DeleteLike(ctx context.Context, userID, restaurantID string) error

	// ExistsLike reports whether the user likes the restaurant.
	ExistsLike(ctx context.Context, userID, restaurantID string) (bool, error)
}

package usecase

import (
	"context"

	"lunchradar/internal/domain/entity"
)

// LikeUsecase records per-user likes and daily selections. Writes are fire-and-forget:
// they return as soon as the input is validated and failures are only logged.
type LikeUsecase interface {
	// RecordLike stores a like for the user and restaurant
	RecordLike(ctx context.Context, userID, restaurantID string) error

	// RemoveLike deletes the like for the user and restaurant
	RemoveLike(ctx context.Context, userID, restaurantID string) error

	// IsLiked reports whether the like exists
	IsLiked(ctx context.Context, userID, restaurantID string) <-chan Result[bool]

	// RecordSelection stores today's lunch pick for the user
	RecordSelection(ctx context.Context, userID, restaurantID string) error

	// Selection returns today's pick for the user
	Selection(ctx context.Context, userID string) <-chan Result[*entity.Selection]

	// Drain blocks until every outstanding write has finished or ctx is done
	Drain(ctx context.Context) error
}

package repository

import (
	"context"

	"lunchradar/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrSelectionNotFound is returned when a user has no selection for the requested day.
var ErrSelectionNotFound = errors.New("selection not found")

// SelectionRepository defines the durable store operations for lunch selections.
type SelectionRepository interface {
	// SaveSelection creates or overwrites the user's selection for selection.Day.
	SaveSelection(ctx context.Context, selection *entity.Selection) error

	// FindSelection retrieves the user's selection for day.
	FindSelection(ctx context.Context, userID, day string) (*entity.Selection, error)
}

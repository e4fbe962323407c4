package postgres

import (
	"context"

	"lunchradar/internal/domain/entity"
	domainerrors "lunchradar/internal/domain/errors"
	"lunchradar/internal/domain/repository"
	"lunchradar/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// selectionRepository implements the repository.SelectionRepository interface.
type selectionRepository struct {
	db *gorm.DB
}

// NewSelectionRepository is the constructor for selectionRepository.
func NewSelectionRepository(db *gorm.DB) repository.SelectionRepository {
	return &selectionRepository{
		db: db,
	}
}

// SaveSelection upserts the user's pick for the selection day.
func (repo *selectionRepository) SaveSelection(ctx context.Context, selection *entity.Selection) error {
	selectionM := fromSelectionDomain(selection)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "day"}},
			DoUpdates: clause.AssignmentColumns([]string{"restaurant_id", "restaurant_name", "restaurant_address", "updated_at"}),
		}).
		Create(selectionM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required selection information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to save selection")
	}

	return nil
}

// FindSelection retrieves the user's pick for day.
func (repo *selectionRepository) FindSelection(ctx context.Context, userID, day string) (*entity.Selection, error) {
	var selectionM model.SelectionModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND day = ?", userID, day).
		First(&selectionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSelectionNotFound
		}

		return nil, errors.Wrap(err, "failed to find selection")
	}

	return toSelectionDomain(&selectionM), nil
}

func fromSelectionDomain(selection *entity.Selection) *model.SelectionModel {
	return &model.SelectionModel{
		UserID:            selection.UserID,
		Day:               selection.Day,
		RestaurantID:      selection.RestaurantID,
		RestaurantName:    selection.RestaurantName,
		RestaurantAddress: selection.RestaurantAddress,
		UpdatedAt:         selection.UpdatedAt,
	}
}

func toSelectionDomain(selectionM *model.SelectionModel) *entity.Selection {
	return &entity.Selection{
		UserID:            selectionM.UserID,
		Day:               selectionM.Day,
		RestaurantID:      selectionM.RestaurantID,
		RestaurantName:    selectionM.RestaurantName,
		RestaurantAddress: selectionM.RestaurantAddress,
		UpdatedAt:         selectionM.UpdatedAt,
	}
}

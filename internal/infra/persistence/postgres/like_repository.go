// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"lunchradar/internal/domain/entity"
	domainerrors "lunchradar/internal/domain/errors"
	"lunchradar/internal/domain/repository"
	"lunchradar/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// likeRepository implements the repository.LikeRepository interface.
type likeRepository struct {
	db *gorm.DB
}

// NewLikeRepository is the constructor for likeRepository.
func NewLikeRepository(db *gorm.DB) repository.LikeRepository {
	return &likeRepository{
		db: db,
	}
}

// SaveLike inserts the like, ignoring an existing one.
func (repo *likeRepository) SaveLike(ctx context.Context, like *entity.Like) error {
	likeM := fromLikeDomain(like)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(likeM).Error; err != nil {
		if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid like")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to save like")
	}

	return nil
}

// DeleteLike removes the like; deleting a missing like is not an error.
func (repo *likeRepository) DeleteLike(ctx context.Context, userID, restaurantID string) error {
	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND restaurant_id = ?", userID, restaurantID).
		Delete(&model.LikeModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete like")
	}

	return nil
}

// ExistsLike reports whether the like row exists.
func (repo *likeRepository) ExistsLike(ctx context.Context, userID, restaurantID string) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.LikeModel{}).
		Where("user_id = ? AND restaurant_id = ?", userID, restaurantID).
		Count(&count).Error; err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "failed to check like")
	}

	return count > 0, nil
}

func fromLikeDomain(like *entity.Like) *model.LikeModel {
	return &model.LikeModel{
		UserID:       like.UserID,
		RestaurantID: like.RestaurantID,
		CreatedAt:    like.CreatedAt,
	}
}

package model

import (
	"time"
)

// LikeModel is the GORM-specific struct for the 'restaurant_likes' table.
// The composite primary key makes saving the same like twice a no-op.
type LikeModel struct {
	UserID       string    `gorm:"type:varchar(128);primaryKey"`
	RestaurantID string    `gorm:"type:varchar(128);primaryKey;index"`
	CreatedAt    time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (LikeModel) TableName() string {
	return "restaurant_likes"
}

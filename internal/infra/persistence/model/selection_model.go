package model

import (
	"time"
)

// SelectionModel is the GORM-specific struct for the 'lunch_selections' table.
// One row per user and day; a later pick on the same day overwrites the earlier one.
type SelectionModel struct {
	UserID            string `gorm:"type:varchar(128);primaryKey"`
	Day               string `gorm:"type:char(10);primaryKey"`
	RestaurantID      string `gorm:"type:varchar(128);not null"`
	RestaurantName    string `gorm:"type:varchar(255)"`
	RestaurantAddress string `gorm:"type:text"`
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (SelectionModel) TableName() string {
	return "lunch_selections"
}

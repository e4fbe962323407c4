package entity

import "time"

// Like associates a user with a restaurant they like.
type Like struct {
	UserID       string    `json:"user_id"`
	RestaurantID string    `json:"restaurant_id"`
	CreatedAt    time.Time `json:"created_at"`
}

// LikeKey builds the composite key that makes likes idempotent.
func LikeKey(userID, restaurantID string) string {
	return userID + "_" + restaurantID
}

// Key returns the composite key of the like.
func (l *Like) Key() string {
	return LikeKey(l.UserID, l.RestaurantID)
}

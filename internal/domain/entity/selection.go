package entity

import "time"

// SelectionDayLayout is the layout of Selection.Day.
const SelectionDayLayout = "2006-01-02"

// Selection is a user's lunch choice for one day. Name and address are copied from the
// catalog at selection time so downstream notification snapshots match what the user saw.
type Selection struct {
	UserID            string    `json:"user_id"`
	Day               string    `json:"day"`
	RestaurantID      string    `json:"restaurant_id"`
	RestaurantName    string    `json:"restaurant_name"`
	RestaurantAddress string    `json:"restaurant_address"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// SelectionDay formats t as a selection day key.
func SelectionDay(t time.Time) string {
	return t.Format(SelectionDayLayout)
}

// Key returns the composite document key of the selection.
func (s *Selection) Key() string {
	return s.Day + "_" + s.UserID
}

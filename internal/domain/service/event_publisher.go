package service

import (
	"context"
	"time"
)

// Restaurant event types published after successful gateway writes.
const (
	EventLikeRecorded      = "like.recorded"
	EventLikeRemoved       = "like.removed"
	EventSelectionRecorded = "selection.recorded"
)

// RestaurantEvent is consumed by the external notification scheduler
type RestaurantEvent struct {
	RequestID      string    `json:"request_id,omitempty"` // For distributed tracing
	EventID        string    `json:"event_id"`
	Type           string    `json:"type"`
	UserID         string    `json:"user_id"`
	RestaurantID   string    `json:"restaurant_id"`
	RestaurantName string    `json:"restaurant_name,omitempty"`
	Address        string    `json:"address,omitempty"`
	OccurredAt     time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishRestaurantEvent publishes a restaurant event for async processing
	PublishRestaurantEvent(ctx context.Context, event *RestaurantEvent) error

	// Close releases any resources held by the publisher
	Close() error
}

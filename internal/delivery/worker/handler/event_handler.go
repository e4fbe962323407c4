package handler

import (
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"

	deliverycontext "lunchradar/internal/delivery/context"
	"lunchradar/internal/domain/service"
	"lunchradar/internal/infra/pubsub"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// EventHandlerParams holds dependencies for EventHandler
type EventHandlerParams struct {
	fx.In

	Logger *slog.Logger
}

// EventHandler receives restaurant events pushed by the local publisher
type EventHandler struct {
	logger *slog.Logger
}

// NewEventHandler creates a new event handler
func NewEventHandler(params EventHandlerParams) *EventHandler {
	return &EventHandler{
		logger: params.Logger,
	}
}

// HandlePush decodes one push message and logs the restaurant event it carries.
// Undecodable messages are acknowledged with 2xx so the publisher does not retry them.
func (h *EventHandler) HandlePush(c echo.Context) error {
	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger)

	var msg pubsub.PushMessage
	if err := c.Bind(&msg); err != nil {
		logger.Warn("Dropping unreadable push message", slog.Any("error", err))

		return c.NoContent(http.StatusNoContent)
	}

	data, err := base64.StdEncoding.DecodeString(msg.Message.Data)
	if err != nil {
		logger.Warn("Dropping push message with invalid data",
			slog.String("message_id", msg.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusNoContent)
	}

	var event service.RestaurantEvent
	if err := json.Unmarshal(data, &event); err != nil {
		logger.Warn("Dropping push message with invalid event",
			slog.String("message_id", msg.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusNoContent)
	}

	logger.Info("Restaurant event received",
		slog.String("subscription", msg.Subscription),
		slog.String("event_id", event.EventID),
		slog.String("type", event.Type),
		slog.String("user_id", event.UserID),
		slog.String("restaurant_id", event.RestaurantID),
		slog.String("restaurant_name", event.RestaurantName),
		slog.Time("occurred_at", event.OccurredAt),
	)

	return c.NoContent(http.StatusOK)
}

package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"lunchradar/config"
	"lunchradar/internal/domain/constants"
	"lunchradar/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sampleEvent() *service.RestaurantEvent {
	return &service.RestaurantEvent{
		RequestID:      "req-42",
		EventID:        "evt-1",
		Type:           service.EventSelectionRecorded,
		UserID:         "u1",
		RestaurantID:   "1",
		RestaurantName: "Le Zinc",
		OccurredAt:     time.Date(2026, 3, 9, 11, 45, 0, 0, time.UTC),
	}
}

func TestLocalHTTPPublisher_PublishRestaurantEvent(t *testing.T) {
	var (
		push      PushMessage
		requestID string
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		if err := json.NewDecoder(r.Body).Decode(&push); err != nil {
			t.Errorf("decode push message: %v", err)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, testLogger())
	require.NoError(t, publisher.PublishRestaurantEvent(context.Background(), sampleEvent()))

	assert.Equal(t, "req-42", requestID)
	assert.Equal(t, constants.RestaurantEventsSubscription, push.Subscription)
	assert.Equal(t, "evt-1", push.Message.MessageID)
	assert.Equal(t, map[string]string{
		"event_id":      "evt-1",
		"type":          service.EventSelectionRecorded,
		"user_id":       "u1",
		"restaurant_id": "1",
		"request_id":    "req-42",
	}, push.Message.Attributes)

	data, err := base64.StdEncoding.DecodeString(push.Message.Data)
	require.NoError(t, err)

	var decoded service.RestaurantEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, *sampleEvent(), decoded)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, testLogger())
	err := publisher.PublishRestaurantEvent(context.Background(), sampleEvent())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestNewEventPublisher(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.PubSubConfig
		wantErr string
	}{
		{name: "not configured", cfg: nil},
		{name: "empty provider", cfg: &config.PubSubConfig{}},
		{name: "local", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderLocal, LocalEndpoint: "http://localhost:9999/push"}},
		{name: "local without endpoint", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}, wantErr: "local endpoint is required"},
		{name: "google without project", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, TopicID: "t"}, wantErr: "project ID is required"},
		{name: "google without topic", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, ProjectID: "p"}, wantErr: "topic ID is required"},
		{name: "unknown", cfg: &config.PubSubConfig{Provider: "kafka"}, wantErr: "unknown pubsub provider"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lc := fxtest.NewLifecycle(t)
			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     lc,
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.cfg},
				Logger: testLogger(),
			})

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, publisher)
			if tt.cfg == nil || tt.cfg.Provider == "" {
				assert.NoError(t, publisher.PublishRestaurantEvent(context.Background(), &service.RestaurantEvent{EventID: "noop"}))
			}
			lc.RequireStart().RequireStop()
		})
	}
}

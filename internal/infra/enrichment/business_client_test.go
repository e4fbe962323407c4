package enrichment

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"lunchradar/config"
	"lunchradar/internal/domain/entity"
	"lunchradar/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var leZincCoord = entity.Coordinate{Lat: 48.8566, Lng: 2.3522}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestBusinessClient(t *testing.T, handler http.HandlerFunc) service.DetailEnricher {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{Enrichment: &config.EnrichmentConfig{
		Endpoint: server.URL,
		APIKey:   "test-key",
	}}

	return NewBusinessClient(cfg, discardLogger())
}

func TestBusinessClient_Enrich_TopMatch(t *testing.T) {
	var gotAuth, gotTerm, gotLocation, gotPath string
	client := newTestBusinessClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		gotTerm = r.URL.Query().Get("term")
		gotLocation = r.URL.Query().Get("location")
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"businesses":[
			{"id":"le-zinc-paris","name":"Le Zinc","image_url":"https://img.example/le-zinc.jpg","rating":4.5,
			 "location":{"address1":"12 Rue Oberkampf","city":"Paris","zip_code":"75011","display_address":["12 Rue Oberkampf","75011 Paris"]},
			 "phone":"+33143000000","display_phone":"+33 1 43 00 00 00","url":"https://www.example.com/biz/le-zinc-paris"},
			{"id":"other","name":"Other","image_url":"https://img.example/other.jpg","rating":2.0}
		]}`)
	})

	fields, err := client.Enrich(context.Background(), "Le Zinc", leZincCoord)
	require.NoError(t, err)

	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "/businesses/search", gotPath)
	assert.Equal(t, "Le Zinc", gotTerm)
	assert.Equal(t, "48.856600,2.352200", gotLocation)

	assert.Equal(t, &entity.EnrichmentFields{
		Address:            "12 Rue Oberkampf, 75011 Paris",
		PhotoURL:           "https://img.example/le-zinc.jpg",
		Rating:             4.5,
		PhoneNumber:        "+33 1 43 00 00 00",
		ExternalProfileURL: "https://www.example.com/biz/le-zinc-paris",
	}, fields)
}

func TestBusinessClient_Enrich_AddressFallback(t *testing.T) {
	client := newTestBusinessClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"businesses":[
			{"id":"x","name":"Casa Nostra","location":{"address1":"3 Via Roma","city":"Torino","zip_code":"10121"},"phone":"+39011000000"}
		]}`)
	})

	fields, err := client.Enrich(context.Background(), "Casa Nostra", leZincCoord)
	require.NoError(t, err)

	assert.Equal(t, "3 Via Roma, 10121, Torino", fields.Address)
	assert.Equal(t, "+39011000000", fields.PhoneNumber)
	assert.Empty(t, fields.PhotoURL)
}

func TestBusinessClient_Enrich_Errors(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantKind error
	}{
		{name: "empty result", status: http.StatusOK, body: `{"businesses":[]}`, wantKind: service.ErrNotFound},
		{name: "missing businesses", status: http.StatusOK, body: `{"total":0}`, wantKind: service.ErrMalformedResponse},
		{name: "invalid json", status: http.StatusOK, body: `{"businesses":`, wantKind: service.ErrMalformedResponse},
		{name: "unauthorized", status: http.StatusUnauthorized, body: `{"error":"bad key"}`, wantKind: service.ErrTransport},
		{name: "server error", status: http.StatusBadGateway, body: `oops`, wantKind: service.ErrTransport},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestBusinessClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			})

			fields, err := client.Enrich(context.Background(), "Le Zinc", leZincCoord)
			require.Error(t, err)
			assert.Nil(t, fields)
			assert.True(t, errors.Is(err, tt.wantKind), "unexpected error: %v", err)

			var sourceErr *service.SourceError
			require.True(t, errors.As(err, &sourceErr))
			assert.Equal(t, "enrichment", sourceErr.Source)
		})
	}
}

func TestBusinessClient_Enrich_EmptyName(t *testing.T) {
	called := false
	client := newTestBusinessClient(t, func(w http.ResponseWriter, _ *http.Request) {
		called = true
	})

	_, err := client.Enrich(context.Background(), "  ", leZincCoord)
	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrMalformedRequest))
	assert.False(t, called)
}

func TestBusinessClient_Enrich_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	endpoint := server.URL
	server.Close()

	client := NewBusinessClient(&config.Config{Enrichment: &config.EnrichmentConfig{Endpoint: endpoint}}, discardLogger())

	_, err := client.Enrich(context.Background(), "Le Zinc", leZincCoord)
	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrTransport))
}

package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"lunchradar/config"
	"lunchradar/internal/delivery/api/router"
	"lunchradar/internal/delivery/api/router/handler"
	"lunchradar/internal/domain/entity"
	"lunchradar/internal/domain/service"
	"lunchradar/internal/infra/cache"
	"lunchradar/internal/infra/persistence/memory"
	"lunchradar/internal/infra/qrcode"
	mockService "lunchradar/internal/mocks/service"
	"lunchradar/internal/usecase"
	"lunchradar/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var paris = entity.Coordinate{Lat: 48.8566, Lng: 2.3522}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

type apiFixtures struct {
	echo     *echo.Echo
	searcher *mockService.MockGeoSearcher
	enricher *mockService.MockDetailEnricher
	likeUC   usecase.LikeUsecase
}

func createTestAPI(t *testing.T) apiFixtures {
	cfg := &config.Config{Discovery: &config.DiscoveryConfig{RadiusMeters: 500}}
	cfg.HTTP.MaxRequestBodySize = "100KB"
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	searcher := mockService.NewMockGeoSearcher(t)
	enricher := mockService.NewMockDetailEnricher(t)
	catalogUC := impl.NewCatalogService(cfg, logger, cache.NewRestaurantCache(), searcher, enricher)
	store := memory.NewStore()
	likeUC := impl.NewLikeService(store, store, catalogUC, nil, logger)

	e := NewEcho(cfg, logger, router.RouterParams{
		RestaurantHandler: handler.NewRestaurantHandler(handler.RestaurantHandlerParams{
			CatalogUC: catalogUC,
			QRCode:    qrcode.NewQRCodeService(256, "M"),
			Logger:    logger,
		}),
		LikeHandler: handler.NewLikeHandler(handler.LikeHandlerParams{
			LikeUC: likeUC,
			Logger: logger,
		}),
	})

	return apiFixtures{echo: e, searcher: searcher, enricher: enricher, likeUC: likeUC}
}

func (fx apiFixtures) do(t *testing.T, method, target, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}

	return rec, env
}

func (fx apiFixtures) drain(t *testing.T) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, fx.likeUC.Drain(ctx))
}

func TestAPI_Health(t *testing.T) {
	fx := createTestAPI(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-Id", "req-123")
	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "req-123", rec.Header().Get("X-Request-Id"))
	assert.JSONEq(t, `{"data":{"status":"ok"},"meta":{"request_id":"req-123"}}`, rec.Body.String())
}

func TestAPI_ListNearby(t *testing.T) {
	fx := createTestAPI(t)

	fx.searcher.EXPECT().Search(mock.Anything, paris, 500).
		Return([]entity.Restaurant{
			{ID: "1", Name: "Le Zinc", Coordinate: paris},
			{ID: "2", Name: "Casa Nostra", Coordinate: paris},
		}, nil).Once()
	fx.enricher.EXPECT().Enrich(mock.Anything, "Le Zinc", paris).
		Return(&entity.EnrichmentFields{Address: "12 rue du Faubourg Poissonnière", Rating: 4.2}, nil).Once()
	fx.enricher.EXPECT().Enrich(mock.Anything, "Casa Nostra", paris).
		Return(nil, service.NewSourceError("enrichment", service.ErrNotFound, nil)).Once()

	rec, env := fx.do(t, http.MethodGet, "/restaurants?lat=48.8566&lon=2.3522", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var restaurants []entity.Restaurant
	require.NoError(t, json.Unmarshal(env.Data, &restaurants))
	require.Len(t, restaurants, 2)
	assert.Equal(t, entity.Restaurant{
		ID:             "1",
		Name:           "Le Zinc",
		Address:        "12 rue du Faubourg Poissonnière",
		Rating:         4.2,
		Coordinate:     paris,
		DetailsFetched: true,
	}, restaurants[0])
	assert.Equal(t, entity.Restaurant{ID: "2", Name: "Casa Nostra", Coordinate: paris, DetailsFetched: true}, restaurants[1])

	// second listing is served from the cache without new lookups
	rec, env = fx.do(t, http.MethodGet, "/restaurants?lat=48.8566&lon=2.3522", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(env.Data, &restaurants))
	assert.Equal(t, "12 rue du Faubourg Poissonnière", restaurants[0].Address)
}

func TestAPI_ListNearby_BadCoordinates(t *testing.T) {
	fx := createTestAPI(t)

	tests := []struct {
		name     string
		target   string
		wantCode string
	}{
		{name: "missing", target: "/restaurants", wantCode: "INVALID_COORDINATE"},
		{name: "not a number", target: "/restaurants?lat=north&lon=2.35", wantCode: "INVALID_COORDINATE"},
		{name: "out of range", target: "/restaurants?lat=95&lon=2.35", wantCode: "VALIDATION_FAILED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, env := fx.do(t, http.MethodGet, tt.target, "")
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.wantCode, env.Error.Code)
		})
	}
}

func TestAPI_GetRestaurant(t *testing.T) {
	fx := createTestAPI(t)

	fx.enricher.EXPECT().Enrich(mock.Anything, "Casa Nostra", paris).
		Return(nil, service.NewSourceError("enrichment", service.ErrNotFound, nil)).Once()

	rec, env := fx.do(t, http.MethodGet, "/restaurants/2?lat=48.8566&lon=2.3522&name=Casa%20Nostra", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var restaurant entity.Restaurant
	require.NoError(t, json.Unmarshal(env.Data, &restaurant))
	assert.Equal(t, entity.Restaurant{ID: "2", Name: "Casa Nostra", Coordinate: paris, DetailsFetched: true}, restaurant)
}

func TestAPI_GetRestaurant_UnknownWithoutName(t *testing.T) {
	fx := createTestAPI(t)

	rec, env := fx.do(t, http.MethodGet, "/restaurants/ghost", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "RESTAURANT_NOT_FOUND", env.Error.Code)
}

func TestAPI_RestaurantQRCode(t *testing.T) {
	fx := createTestAPI(t)

	rec, _ := fx.do(t, http.MethodGet, "/restaurants/1/qrcode", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	fx.searcher.EXPECT().Search(mock.Anything, paris, 500).
		Return([]entity.Restaurant{{ID: "1", Name: "Le Zinc", Coordinate: paris}}, nil).Once()
	fx.enricher.EXPECT().Enrich(mock.Anything, "Le Zinc", paris).
		Return(&entity.EnrichmentFields{ExternalProfileURL: "https://www.example.com/biz/le-zinc-paris"}, nil).Once()

	rec, _ = fx.do(t, http.MethodGet, "/restaurants?lat=48.8566&lon=2.3522", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec, _ = fx.do(t, http.MethodGet, "/restaurants/1/qrcode", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, rec.Body.Bytes()[:4])
}

func TestAPI_Likes(t *testing.T) {
	fx := createTestAPI(t)

	rec, _ := fx.do(t, http.MethodPut, "/users/u1/likes/1", "")
	require.Equal(t, http.StatusAccepted, rec.Code, rec.Body.String())
	fx.drain(t)

	var status handler.LikeStatus
	rec, env := fx.do(t, http.MethodGet, "/users/u1/likes/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(env.Data, &status))
	assert.Equal(t, handler.LikeStatus{UserID: "u1", RestaurantID: "1", Liked: true}, status)

	rec, _ = fx.do(t, http.MethodDelete, "/users/u1/likes/1", "")
	require.Equal(t, http.StatusAccepted, rec.Code)
	fx.drain(t)

	rec, env = fx.do(t, http.MethodGet, "/users/u1/likes/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(env.Data, &status))
	assert.False(t, status.Liked)
}

func TestAPI_Selection(t *testing.T) {
	fx := createTestAPI(t)

	rec, env := fx.do(t, http.MethodGet, "/users/u1/selection", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "SELECTION_NOT_FOUND", env.Error.Code)

	rec, env = fx.do(t, http.MethodPut, "/users/u1/selection", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)

	rec, _ = fx.do(t, http.MethodPut, "/users/u1/selection", `{"restaurant_id":"1"}`)
	require.Equal(t, http.StatusAccepted, rec.Code, rec.Body.String())
	fx.drain(t)

	rec, env = fx.do(t, http.MethodGet, "/users/u1/selection", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var selection entity.Selection
	require.NoError(t, json.Unmarshal(env.Data, &selection))
	assert.Equal(t, "u1", selection.UserID)
	assert.Equal(t, "1", selection.RestaurantID)
	assert.Equal(t, entity.SelectionDay(time.Now().UTC()), selection.Day)
}

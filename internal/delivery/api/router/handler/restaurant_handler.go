package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"lunchradar/internal/delivery/api/response"
	deliverycontext "lunchradar/internal/delivery/context"
	"lunchradar/internal/domain/entity"
	domainerrors "lunchradar/internal/domain/errors"
	"lunchradar/internal/domain/service"
	"lunchradar/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RestaurantHandlerParams holds dependencies for RestaurantHandler, injected by Fx.
type RestaurantHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	QRCode    service.QRCodeService
	Logger    *slog.Logger
}

// RestaurantHandler serves the nearby catalog and restaurant details
type RestaurantHandler struct {
	catalogUC usecase.CatalogUsecase
	qrCode    service.QRCodeService
	logger    *slog.Logger
}

// NewRestaurantHandler is the constructor for RestaurantHandler
func NewRestaurantHandler(params RestaurantHandlerParams) *RestaurantHandler {
	return &RestaurantHandler{
		catalogUC: params.CatalogUC,
		qrCode:    params.QRCode,
		logger:    params.Logger,
	}
}

// CoordinateQuery is the lat/lon pair accepted as query parameters
type CoordinateQuery struct {
	Lat float64 `json:"lat" validate:"latitude"`
	Lon float64 `json:"lon" validate:"longitude"`
}

func (q CoordinateQuery) coordinate() entity.Coordinate {
	return entity.Coordinate{Lat: q.Lat, Lng: q.Lon}
}

// ListNearby loads the candidates around lat/lon and waits for their enrichment batch
func (h *RestaurantHandler) ListNearby(c echo.Context) error {
	var query CoordinateQuery
	if err := echo.QueryParamsBinder(c).
		MustFloat64("lat", &query.Lat).
		MustFloat64("lon", &query.Lon).
		BindError(); err != nil {
		return domainerrors.ErrInvalidCoordinate.WithDetails("lat and lon are required numbers")
	}
	if err := c.Validate(&query); err != nil {
		return err
	}

	ctx := c.Request().Context()
	candidates, err := h.catalogUC.LoadCandidates(ctx, query.coordinate())
	if err != nil {
		return err
	}
	if len(candidates) == 0 {
		return response.Success(c, http.StatusOK, []entity.Restaurant{})
	}

	restaurants, err := await(ctx, h.catalogUC.ResolveBatch(ctx, candidates))
	if err != nil {
		return err
	}

	deliverycontext.GetLoggerOrDefault(ctx, h.logger).Debug("Nearby restaurants resolved",
		slog.Int("count", len(restaurants)),
	)

	return response.Success(c, http.StatusOK, restaurants)
}

// Get resolves a single restaurant. lat, lon and name are only needed for restaurants
// that are not in the catalog yet.
func (h *RestaurantHandler) Get(c echo.Context) error {
	id := strings.TrimSpace(c.Param("id"))
	name := strings.TrimSpace(c.QueryParam("name"))

	var query CoordinateQuery
	if err := echo.QueryParamsBinder(c).
		Float64("lat", &query.Lat).
		Float64("lon", &query.Lon).
		BindError(); err != nil {
		return domainerrors.ErrInvalidCoordinate.WithDetails("lat and lon must be numbers")
	}
	if err := c.Validate(&query); err != nil {
		return err
	}

	if _, cached := h.catalogUC.Lookup(id); !cached && name == "" {
		return domainerrors.ErrRestaurantNotFound.WithDetails("unknown restaurant, name is required")
	}

	ctx := c.Request().Context()
	restaurant, err := await(ctx, h.catalogUC.ResolveOne(ctx, &usecase.ResolveOneInput{
		ID:         id,
		Name:       name,
		Coordinate: query.coordinate(),
	}))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, restaurant)
}

// QRCode renders a PNG QR code for a cached restaurant
func (h *RestaurantHandler) QRCode(c echo.Context) error {
	restaurant, ok := h.catalogUC.Lookup(c.Param("id"))
	if !ok {
		return domainerrors.ErrRestaurantNotFound
	}

	png, err := h.qrCode.GenerateRestaurantQR(restaurant)
	if err != nil {
		return domainerrors.ErrQRCodeFailed.WrapMessage(err.Error())
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// Package geosearch implements the point-of-interest search against an Overpass API interpreter.
package geosearch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"lunchradar/config"
	"lunchradar/internal/domain/entity"
	"lunchradar/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	sourceName = "geosearch"

	defaultEndpoint = "https://overpass-api.de/api/interpreter"
	defaultTimeout  = 25 * time.Second

	// maxErrorBodySize caps how much of a failed response is kept in the error
	maxErrorBodySize = 512
)

type overpassResponse struct {
	Elements []overpassElement `json:"elements"`
}

type overpassElement struct {
	Type   string            `json:"type"`
	ID     int64             `json:"id"`
	Lat    *float64          `json:"lat,omitempty"`
	Lon    *float64          `json:"lon,omitempty"`
	Center *overpassCenter   `json:"center,omitempty"`
	Tags   map[string]string `json:"tags"`
}

type overpassCenter struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type overpassClient struct {
	endpoint   string
	timeout    time.Duration
	httpClient *http.Client
	logger     *slog.Logger
}

// NewOverpassClient creates a GeoSearcher backed by an Overpass interpreter endpoint
func NewOverpassClient(cfg *config.Config, logger *slog.Logger) service.GeoSearcher {
	endpoint := defaultEndpoint
	timeout := defaultTimeout
	if cfg != nil && cfg.Discovery != nil {
		if cfg.Discovery.Endpoint != "" {
			endpoint = cfg.Discovery.Endpoint
		}
		if cfg.Discovery.Timeout > 0 {
			timeout = cfg.Discovery.Timeout
		}
	}

	return &overpassClient{
		endpoint: endpoint,
		timeout:  timeout,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// Search finds restaurants within radiusMeters of coord
func (c *overpassClient) Search(ctx context.Context, coord entity.Coordinate, radiusMeters int) ([]entity.Restaurant, error) {
	if radiusMeters <= 0 {
		return nil, service.NewSourceError(sourceName, service.ErrMalformedRequest,
			errors.Errorf("radius must be positive, got %d", radiusMeters))
	}
	if !coord.IsValid() {
		return nil, service.NewSourceError(sourceName, service.ErrMalformedRequest,
			errors.Errorf("invalid coordinate %s", coord.Locator()))
	}

	params := url.Values{}
	params.Set("data", buildQuery(coord, radiusMeters, c.timeout))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, service.NewSourceError(sourceName, service.ErrTransport, errors.WithStack(err))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, service.NewSourceError(sourceName, service.ErrTransport, errors.WithStack(err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))

		return nil, service.NewSourceError(sourceName, service.ErrTransport,
			errors.Errorf("overpass returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body))))
	}

	var payload overpassResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, service.NewSourceError(sourceName, service.ErrMalformedResponse, errors.WithStack(err))
	}
	if payload.Elements == nil {
		return nil, service.NewSourceError(sourceName, service.ErrMalformedResponse,
			errors.New("response has no elements array"))
	}

	restaurants := make([]entity.Restaurant, 0, len(payload.Elements))
	skipped := 0
	for _, element := range payload.Elements {
		restaurant, ok := toRestaurant(element)
		if !ok {
			skipped++

			continue
		}
		restaurants = append(restaurants, restaurant)
	}

	c.logger.Debug("Geo search completed",
		slog.String("location", coord.Locator()),
		slog.Int("radius_m", radiusMeters),
		slog.Int("candidates", len(restaurants)),
		slog.Int("skipped", skipped),
	)

	return restaurants, nil
}

// buildQuery encodes the radius and coordinate into a single Overpass QL statement
func buildQuery(coord entity.Coordinate, radiusMeters int, timeout time.Duration) string {
	around := fmt.Sprintf("(around:%d,%s)", radiusMeters, coord.Locator())

	return fmt.Sprintf(
		`[out:json][timeout:%d];(node["amenity"="restaurant"]%s;way["amenity"="restaurant"]%s;);out center;`,
		int(timeout.Seconds()), around, around,
	)
}

// toRestaurant maps an element to a candidate; elements without a name or position are dropped
func toRestaurant(element overpassElement) (entity.Restaurant, bool) {
	name := strings.TrimSpace(element.Tags["name"])
	if name == "" {
		return entity.Restaurant{}, false
	}

	var coord entity.Coordinate
	switch {
	case element.Lat != nil && element.Lon != nil:
		coord = entity.Coordinate{Lat: *element.Lat, Lng: *element.Lon}
	case element.Center != nil:
		coord = entity.Coordinate{Lat: element.Center.Lat, Lng: element.Center.Lon}
	default:
		return entity.Restaurant{}, false
	}

	return entity.Restaurant{
		ID:         restaurantID(element.ID, name, coord),
		Name:       name,
		Address:    addressFromTags(element.Tags),
		Coordinate: coord,
	}, true
}

// restaurantID uses the source id when present, otherwise a UUIDv5 stable for name and position
func restaurantID(sourceID int64, name string, coord entity.Coordinate) string {
	if sourceID != 0 {
		return strconv.FormatInt(sourceID, 10)
	}

	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(name+"@"+coord.Locator())).String()
}

func addressFromTags(tags map[string]string) string {
	street := strings.TrimSpace(strings.Join(nonEmpty(tags["addr:housenumber"], tags["addr:street"]), " "))
	locality := strings.TrimSpace(strings.Join(nonEmpty(tags["addr:postcode"], tags["addr:city"]), " "))

	return strings.Join(nonEmpty(street, locality), ", ")
}

func nonEmpty(values ...string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}

	return out
}

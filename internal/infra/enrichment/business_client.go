// Package enrichment implements the business-detail lookup used to enrich restaurant candidates.
package enrichment

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"lunchradar/config"
	"lunchradar/internal/domain/entity"
	"lunchradar/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	sourceName = "enrichment"

	defaultEndpoint = "https://api.yelp.com/v3"
	defaultTimeout  = 10 * time.Second

	searchPath       = "/businesses/search"
	maxErrorBodySize = 512
)

type businessSearchResponse struct {
	Businesses []business `json:"businesses"`
}

type business struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	ImageURL     string           `json:"image_url"`
	Rating       float64          `json:"rating"`
	Location     businessLocation `json:"location"`
	Phone        string           `json:"phone"`
	DisplayPhone string           `json:"display_phone"`
	URL          string           `json:"url"`
}

type businessLocation struct {
	Address1       string   `json:"address1"`
	City           string   `json:"city"`
	ZipCode        string   `json:"zip_code"`
	DisplayAddress []string `json:"display_address"`
}

type businessClient struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewBusinessClient creates a DetailEnricher backed by a business search API
func NewBusinessClient(cfg *config.Config, logger *slog.Logger) service.DetailEnricher {
	endpoint := defaultEndpoint
	timeout := defaultTimeout
	apiKey := ""
	if cfg != nil && cfg.Enrichment != nil {
		if cfg.Enrichment.Endpoint != "" {
			endpoint = cfg.Enrichment.Endpoint
		}
		if cfg.Enrichment.Timeout > 0 {
			timeout = cfg.Enrichment.Timeout
		}
		apiKey = cfg.Enrichment.APIKey
	}

	if apiKey == "" {
		logger.Warn("Enrichment API key not set, detail lookups will be rejected upstream")
	}

	return &businessClient{
		endpoint: strings.TrimRight(endpoint, "/"),
		apiKey:   apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// Enrich looks up the restaurant by name around coord and returns the top match only
func (c *businessClient) Enrich(ctx context.Context, name string, coord entity.Coordinate) (*entity.EnrichmentFields, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, service.NewSourceError(sourceName, service.ErrMalformedRequest, errors.New("name is required"))
	}

	params := url.Values{}
	params.Set("term", name)
	params.Set("location", coord.Locator())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+searchPath+"?"+params.Encode(), nil)
	if err != nil {
		return nil, service.NewSourceError(sourceName, service.ErrTransport, errors.WithStack(err))
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, service.NewSourceError(sourceName, service.ErrTransport, errors.WithStack(err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))

		return nil, service.NewSourceError(sourceName, service.ErrTransport,
			errors.Errorf("business search returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body))))
	}

	var payload businessSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, service.NewSourceError(sourceName, service.ErrMalformedResponse, errors.WithStack(err))
	}
	if payload.Businesses == nil {
		return nil, service.NewSourceError(sourceName, service.ErrMalformedResponse,
			errors.New("response has no businesses array"))
	}
	if len(payload.Businesses) == 0 {
		return nil, service.NewSourceError(sourceName, service.ErrNotFound, errors.Errorf("no business matches %q", name))
	}

	top := payload.Businesses[0]
	c.logger.Debug("Enrichment match",
		slog.String("term", name),
		slog.String("business_id", top.ID),
		slog.String("business_name", top.Name),
	)

	return &entity.EnrichmentFields{
		Address:            top.Location.fullAddress(),
		PhotoURL:           top.ImageURL,
		Rating:             top.Rating,
		PhoneNumber:        firstNonEmpty(top.DisplayPhone, top.Phone),
		ExternalProfileURL: top.URL,
	}, nil
}

func (l businessLocation) fullAddress() string {
	if len(l.DisplayAddress) > 0 {
		return strings.Join(l.DisplayAddress, ", ")
	}

	parts := make([]string, 0, 3)
	for _, part := range []string{l.Address1, l.ZipCode, l.City} {
		if part != "" {
			parts = append(parts, part)
		}
	}

	return strings.Join(parts, ", ")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}

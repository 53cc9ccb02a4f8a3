// Package geocoding resolves free text and external map links to coordinates.
package geocoding

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"parkospace/config"
	"parkospace/internal/domain/entity"
	"parkospace/internal/domain/service"
	"parkospace/internal/errors"

	"golang.org/x/time/rate"
)

const (
	defaultNominatimURL = "https://nominatim.openstreetmap.org"
	defaultUserAgent    = "parkospace/1.0"
	defaultTimeout      = 10 * time.Second
)

type nominatimResult struct {
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
}

type nominatimReverse struct {
	DisplayName string `json:"display_name"`
	Error       string `json:"error"`
}

// NominatimGeocoder talks to an OpenStreetMap Nominatim instance.
// Requests are rate limited to honour the public usage policy.
type NominatimGeocoder struct {
	baseURL   string
	userAgent string
	client    *http.Client
	limiter   *rate.Limiter
	logger    *slog.Logger
}

// NewNominatimGeocoder builds a geocoder from config. A nil config section uses the public instance.
func NewNominatimGeocoder(cfg *config.Config, logger *slog.Logger) *NominatimGeocoder {
	gc := cfg.Geocoding
	if gc == nil {
		gc = &config.GeocodingConfig{}
	}

	baseURL := strings.TrimRight(gc.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultNominatimURL
	}
	userAgent := gc.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	timeout := gc.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	limit := rate.Inf
	if gc.RequestsPerSecond > 0 {
		limit = rate.Limit(gc.RequestsPerSecond)
	}

	return &NominatimGeocoder{
		baseURL:   baseURL,
		userAgent: userAgent,
		client:    &http.Client{Timeout: timeout},
		limiter:   rate.NewLimiter(limit, 1),
		logger:    logger,
	}
}

// Search returns the first Nominatim match for query.
func (g *NominatimGeocoder) Search(ctx context.Context, query string) (*entity.Place, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("limit", "1")
	params.Set("accept-language", "en")

	var results []nominatimResult
	if err := g.get(ctx, "/search", params, &results); err != nil {
		return nil, err
	}

	for _, r := range results {
		lat, err := strconv.ParseFloat(r.Lat, 64)
		if err != nil {
			continue
		}
		lng, err := strconv.ParseFloat(r.Lon, 64)
		if err != nil {
			continue
		}
		point, err := entity.NewGeoPoint(lat, lng)
		if err != nil {
			continue
		}

		return &entity.Place{Point: point, Address: r.DisplayName}, nil
	}

	return nil, service.ErrPlaceNotFound
}

// Reverse returns the display address of the nearest Nominatim object.
func (g *NominatimGeocoder) Reverse(ctx context.Context, point entity.GeoPoint) (string, error) {
	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(point.Lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(point.Lng, 'f', -1, 64))
	params.Set("format", "json")
	params.Set("accept-language", "en")

	var result nominatimReverse
	if err := g.get(ctx, "/reverse", params, &result); err != nil {
		return "", err
	}
	if result.Error != "" || result.DisplayName == "" {
		return "", service.ErrPlaceNotFound
	}

	return result.DisplayName, nil
}

func (g *NominatimGeocoder) get(ctx context.Context, path string, params url.Values, out any) error {
	if err := g.limiter.Wait(ctx); err != nil {
		return errors.Wrap(err, "nominatim rate limiter")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return errors.Wrap(err, "build nominatim request")
	}
	req.Header.Set("User-Agent", g.userAgent)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := g.client.Do(req)
	if err != nil {
		return errors.Wrap(err, "nominatim request failed")
	}
	defer resp.Body.Close()

	g.logger.Debug("Nominatim request",
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("elapsed", time.Since(start)),
	)

	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("nominatim returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "decode nominatim response")
	}

	return nil
}

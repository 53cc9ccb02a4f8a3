package geocoding

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"parkospace/config"
	"parkospace/internal/domain/entity"
	"parkospace/internal/domain/service"
	"parkospace/internal/errors"

	"github.com/PuerkitoBio/goquery"
)

const (
	browserUserAgent      = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
	defaultMapLinkTimeout = 10 * time.Second
	maxLandingPageBytes   = 2 << 20

	// PinnedLocationAddress labels coordinates whose reverse lookup failed.
	PinnedLocationAddress = "Pinned Location"
	// DetectedLocationAddress labels coordinates with no known address.
	DetectedLocationAddress = "Location Detected"
)

// Patterns are tried in order; the first match wins.
var (
	atPattern     = regexp.MustCompile(`@(-?\d+\.\d+),(-?\d+\.\d+)`)
	queryPattern  = regexp.MustCompile(`q=(-?\d+\.\d+),(-?\d+\.\d+)`)
	latPattern    = regexp.MustCompile(`!3d(-?\d+\.\d+)`)
	lngPattern    = regexp.MustCompile(`!4d(-?\d+\.\d+)`)
	centerPattern = regexp.MustCompile(`center=(-?\d+\.\d+)(?:,|%2C|%2c)(-?\d+\.\d+)`)
	placePattern  = regexp.MustCompile(`/place/([^/]+)/`)
)

// MapLinkResolver extracts coordinates and a place name from external map URLs.
// Short links are expanded by following redirects.
type MapLinkResolver struct {
	client   *http.Client
	geocoder service.Geocoder
	logger   *slog.Logger
}

// NewMapLinkResolver creates a resolver. geocoder is used for reverse lookups when the link carries no name.
func NewMapLinkResolver(cfg *config.Config, geocoder service.Geocoder, logger *slog.Logger) *MapLinkResolver {
	timeout := defaultMapLinkTimeout
	if cfg.Geocoding != nil && cfg.Geocoding.MapLinkTimeout > 0 {
		timeout = cfg.Geocoding.MapLinkTimeout
	}

	return &MapLinkResolver{
		client:   &http.Client{Timeout: timeout},
		geocoder: geocoder,
		logger:   logger,
	}
}

// Resolve returns the place a map link points at, or service.ErrMapLinkUnresolved.
func (r *MapLinkResolver) Resolve(ctx context.Context, rawURL string) (*entity.Place, error) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, service.ErrMapLinkUnresolved
	}

	finalURL := u.String()
	point, ok := extractCoordinates(finalURL)
	if !ok {
		finalURL, point, ok = r.follow(ctx, finalURL)
	}
	if !ok {
		return nil, service.ErrMapLinkUnresolved
	}

	address := extractPlaceName(finalURL)
	if address == "" {
		address = r.reverse(ctx, point)
	}

	return &entity.Place{Point: point, Address: address}, nil
}

// follow expands redirects with HEAD, falling back to GET so the landing page can be inspected.
func (r *MapLinkResolver) follow(ctx context.Context, target string) (string, entity.GeoPoint, bool) {
	if resp, err := r.do(ctx, http.MethodHead, target); err == nil {
		resp.Body.Close()
		if resp.StatusCode < http.StatusBadRequest {
			final := resp.Request.URL.String()
			if point, ok := extractCoordinates(final); ok {
				return final, point, true
			}
			target = final
		}
	} else {
		r.logger.Debug("Map link HEAD failed", slog.String("url", target), slog.String("error", err.Error()))
	}

	resp, err := r.do(ctx, http.MethodGet, target)
	if err != nil {
		r.logger.Warn("Map link request failed", slog.String("url", target), slog.String("error", err.Error()))

		return target, entity.GeoPoint{}, false
	}
	defer resp.Body.Close()

	final := resp.Request.URL.String()
	if point, ok := extractCoordinates(final); ok {
		return final, point, true
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return final, entity.GeoPoint{}, false
	}

	point, ok := coordinatesFromPage(io.LimitReader(resp.Body, maxLandingPageBytes))

	return final, point, ok
}

func (r *MapLinkResolver) do(ctx context.Context, method, target string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, target, nil)
	if err != nil {
		return nil, errors.Wrap(err, "build map link request")
	}
	req.Header.Set("User-Agent", browserUserAgent)

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "%s %s", method, target)
	}

	return resp, nil
}

func (r *MapLinkResolver) reverse(ctx context.Context, point entity.GeoPoint) string {
	if r.geocoder == nil {
		return PinnedLocationAddress
	}

	address, err := r.geocoder.Reverse(ctx, point)
	if err != nil {
		if !errors.Is(err, service.ErrPlaceNotFound) {
			r.logger.Warn("Reverse geocoding failed", slog.String("point", point.String()), slog.String("error", err.Error()))

			return PinnedLocationAddress
		}

		return DetectedLocationAddress
	}

	return address
}

// extractCoordinates applies the link patterns to s and to its unescaped form.
func extractCoordinates(s string) (entity.GeoPoint, bool) {
	candidates := []string{s}
	if unescaped, err := url.QueryUnescape(s); err == nil && unescaped != s {
		candidates = append(candidates, unescaped)
	}

	for _, c := range candidates {
		if point, ok := matchCoordinates(c); ok {
			return point, true
		}
	}

	return entity.GeoPoint{}, false
}

func matchCoordinates(s string) (entity.GeoPoint, bool) {
	for _, re := range []*regexp.Regexp{atPattern, queryPattern} {
		if m := re.FindStringSubmatch(s); m != nil {
			return parsePoint(m[1], m[2])
		}
	}

	latMatch := latPattern.FindStringSubmatch(s)
	lngMatch := lngPattern.FindStringSubmatch(s)
	if latMatch != nil && lngMatch != nil {
		return parsePoint(latMatch[1], lngMatch[1])
	}

	return entity.GeoPoint{}, false
}

func parsePoint(latStr, lngStr string) (entity.GeoPoint, bool) {
	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return entity.GeoPoint{}, false
	}
	lng, err := strconv.ParseFloat(lngStr, 64)
	if err != nil {
		return entity.GeoPoint{}, false
	}

	point, err := entity.NewGeoPoint(lat, lng)
	if err != nil {
		return entity.GeoPoint{}, false
	}

	return point, true
}

// extractPlaceName returns the /place/<name>/ segment with '+' decoded as space.
func extractPlaceName(s string) string {
	m := placePattern.FindStringSubmatch(s)
	if m == nil {
		return ""
	}

	name, err := url.QueryUnescape(m[1])
	if err != nil {
		return strings.ReplaceAll(m[1], "+", " ")
	}

	return strings.TrimSpace(name)
}

// coordinatesFromPage looks for a map center in the landing page's meta tags and canonical link.
func coordinatesFromPage(body io.Reader) (entity.GeoPoint, bool) {
	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return entity.GeoPoint{}, false
	}

	var (
		point entity.GeoPoint
		found bool
	)
	doc.Find(`meta[property="og:image"], meta[itemprop="image"], meta[content]`).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		content, _ := s.Attr("content")
		if m := centerPattern.FindStringSubmatch(content); m != nil {
			point, found = parsePoint(m[1], m[2])
		}

		return !found
	})
	if found {
		return point, true
	}

	if href, ok := doc.Find(`link[rel="canonical"]`).First().Attr("href"); ok {
		return extractCoordinates(href)
	}

	return entity.GeoPoint{}, false
}

package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "parkospace/internal/delivery/context"
	"parkospace/internal/domain/entity"
	domainerrors "parkospace/internal/domain/errors"
	"parkospace/internal/domain/service"
	"parkospace/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const detectedLocationAddress = "Location Detected"

type geocodeService struct {
	geocoder service.Geocoder
	resolver service.MapLinkResolver
	logger   *slog.Logger
}

// GeocodeServiceParams holds dependencies for GeocodeService, injected by Fx.
type GeocodeServiceParams struct {
	fx.In

	Geocoder service.Geocoder
	Resolver service.MapLinkResolver
	Logger   *slog.Logger
}

// NewGeocodeService creates a new geocode service instance
func NewGeocodeService(params GeocodeServiceParams) usecase.GeocodeUsecase {
	return &geocodeService{
		geocoder: params.Geocoder,
		resolver: params.Resolver,
		logger:   params.Logger,
	}
}

func (s *geocodeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// SearchLocation geocodes free text.
func (s *geocodeService) SearchLocation(ctx context.Context, query string) (*entity.Place, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, domainerrors.ErrQueryRequired
	}

	place, err := s.geocoder.Search(ctx, query)
	if err != nil {
		if errors.Is(err, service.ErrPlaceNotFound) {
			return nil, domainerrors.ErrLocationNotFound
		}
		s.log(ctx).Warn("Geocoding failed", slog.String("query", query), slog.Any("error", err))

		return nil, domainerrors.ErrGeocoderUnavailable.WithDetails(err.Error())
	}

	return place, nil
}

// ParseMapLink extracts a place from a map URL. Any failure reads as an undetectable link.
func (s *geocodeService) ParseMapLink(ctx context.Context, rawURL string) (*entity.Place, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return nil, domainerrors.ErrURLRequired
	}

	place, err := s.resolver.Resolve(ctx, rawURL)
	if err != nil {
		if !errors.Is(err, service.ErrMapLinkUnresolved) {
			s.log(ctx).Warn("Map link parsing failed", slog.String("url", rawURL), slog.Any("error", err))
		}

		return nil, domainerrors.ErrMapLinkUnresolved
	}
	if place.Address == "" {
		place.Address = detectedLocationAddress
	}

	return place, nil
}

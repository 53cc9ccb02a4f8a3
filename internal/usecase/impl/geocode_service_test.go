package impl

import (
	"context"
	"testing"

	"parkospace/internal/domain/entity"
	domainerrors "parkospace/internal/domain/errors"
	"parkospace/internal/domain/service"
	mockSvc "parkospace/internal/mocks/service"
	"parkospace/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type geocodeServiceFixtures struct {
	service  usecase.GeocodeUsecase
	geocoder *mockSvc.MockGeocoder
	resolver *mockSvc.MockMapLinkResolver
}

func createTestGeocodeService(t *testing.T) geocodeServiceFixtures {
	geocoder := mockSvc.NewMockGeocoder(t)
	resolver := mockSvc.NewMockMapLinkResolver(t)

	return geocodeServiceFixtures{
		service: NewGeocodeService(GeocodeServiceParams{
			Geocoder: geocoder,
			Resolver: resolver,
			Logger:   newDiscardLogger(),
		}),
		geocoder: geocoder,
		resolver: resolver,
	}
}

func TestGeocodeService_SearchLocation(t *testing.T) {
	fx := createTestGeocodeService(t)
	ctx := context.Background()

	place := &entity.Place{Point: entity.GeoPoint{Lat: 12.9352, Lng: 77.6245}, Address: "Koramangala, Bengaluru"}
	fx.geocoder.EXPECT().Search(ctx, "Koramangala").Return(place, nil)

	result, err := fx.service.SearchLocation(ctx, " Koramangala ")
	require.NoError(t, err)
	assert.Equal(t, place, result)
}

func TestGeocodeService_SearchLocation_Errors(t *testing.T) {
	t.Run("empty query", func(t *testing.T) {
		fx := createTestGeocodeService(t)

		_, err := fx.service.SearchLocation(context.Background(), "")
		assert.ErrorIs(t, err, domainerrors.ErrQueryRequired)
	})

	t.Run("no match", func(t *testing.T) {
		fx := createTestGeocodeService(t)
		ctx := context.Background()

		fx.geocoder.EXPECT().Search(ctx, "zzzz").Return(nil, service.ErrPlaceNotFound)

		_, err := fx.service.SearchLocation(ctx, "zzzz")
		assert.ErrorIs(t, err, domainerrors.ErrLocationNotFound)
		assert.Equal(t, "Location not found", domainerrors.ErrLocationNotFound.Message())
	})

	t.Run("upstream failure", func(t *testing.T) {
		fx := createTestGeocodeService(t)
		ctx := context.Background()

		fx.geocoder.EXPECT().Search(ctx, "MG Road").Return(nil, errors.New("503"))

		_, err := fx.service.SearchLocation(ctx, "MG Road")
		assert.ErrorIs(t, err, domainerrors.ErrGeocoderUnavailable)
	})
}

func TestGeocodeService_ParseMapLink(t *testing.T) {
	fx := createTestGeocodeService(t)
	ctx := context.Background()

	link := "https://www.google.com/maps/@12.9716,77.5946,17z"
	fx.resolver.EXPECT().Resolve(ctx, link).Return(&entity.Place{Point: entity.GeoPoint{Lat: 12.9716, Lng: 77.5946}}, nil)

	place, err := fx.service.ParseMapLink(ctx, link)
	require.NoError(t, err)
	assert.Equal(t, "Location Detected", place.Address)
	assert.Equal(t, 12.9716, place.Point.Lat)
}

func TestGeocodeService_ParseMapLink_Errors(t *testing.T) {
	t.Run("empty url", func(t *testing.T) {
		fx := createTestGeocodeService(t)

		_, err := fx.service.ParseMapLink(context.Background(), "  ")
		assert.ErrorIs(t, err, domainerrors.ErrURLRequired)
	})

	for name, resolveErr := range map[string]error{
		"no coordinates": service.ErrMapLinkUnresolved,
		"network":        errors.New("connection reset"),
	} {
		t.Run(name, func(t *testing.T) {
			fx := createTestGeocodeService(t)
			ctx := context.Background()

			fx.resolver.EXPECT().Resolve(ctx, "https://maps.app.goo.gl/abc").Return(nil, resolveErr)

			_, err := fx.service.ParseMapLink(ctx, "https://maps.app.goo.gl/abc")
			assert.ErrorIs(t, err, domainerrors.ErrMapLinkUnresolved)
			assert.Equal(t, "Could not detect location. Try a standard Google Maps link.", domainerrors.ErrMapLinkUnresolved.Message())
		})
	}
}

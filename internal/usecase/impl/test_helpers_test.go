package impl

import (
	"io"
	"log/slog"

	"parkospace/config"
	"parkospace/internal/domain/entity"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(maxRadiusKm float64) *config.Config {
	listing := config.DefaultListingConfig()
	listing.MaxRadiusKm = maxRadiusKm

	return &config.Config{Listing: listing}
}

var bangalore = entity.GeoPoint{Lat: 12.9716, Lng: 77.5946}

func newTestListing(owner string, location entity.GeoPoint) *entity.Listing {
	return &entity.Listing{
		ID:          uuid.New(),
		OwnerPhone:  owner,
		Title:       "Covered bay",
		Location:    location,
		AddressText: "MG Road",
		Dimensions:  entity.Dimensions{Length: 5, Breadth: 2.5},
		Pricing:     entity.Pricing{Hourly: 50, Daily: 300, Monthly: 1250},
		Amenities:   []string{"CCTV"},
	}
}

package service

import (
	"context"
	"errors"

	"parkospace/internal/domain/entity"
)

var (
	// ErrPlaceNotFound is returned when a geocoder has no match for a query.
	ErrPlaceNotFound = errors.New("place not found")
	// ErrMapLinkUnresolved is returned when no coordinates could be extracted from a map link.
	ErrMapLinkUnresolved = errors.New("map link has no coordinates")
)

// Geocoder resolves free text to coordinates and coordinates to addresses.
type Geocoder interface {
	// Search returns the best match for a free-text query.
	Search(ctx context.Context, query string) (*entity.Place, error)

	// Reverse returns a display address for a point.
	Reverse(ctx context.Context, point entity.GeoPoint) (string, error)
}

// MapLinkResolver extracts a place from an external map URL (short links included).
type MapLinkResolver interface {
	Resolve(ctx context.Context, rawURL string) (*entity.Place, error)
}

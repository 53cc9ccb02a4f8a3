// Package entity contains the core business objects of the project.
package entity

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
)

// GeoPoint is an immutable WGS84 coordinate pair.
type GeoPoint struct {
	Lat float64
	Lng float64
}

// NewGeoPoint builds a GeoPoint and validates its range.
func NewGeoPoint(lat, lng float64) (GeoPoint, error) {
	p := GeoPoint{Lat: lat, Lng: lng}
	if err := p.Validate(); err != nil {
		return GeoPoint{}, err
	}

	return p, nil
}

// Validate reports whether the point lies within -90..90 / -180..180.
func (p GeoPoint) Validate() error {
	if math.IsNaN(p.Lat) || math.IsNaN(p.Lng) {
		return ErrInvalidCoordinates
	}
	if p.Lat < -90 || p.Lat > 90 || p.Lng < -180 || p.Lng > 180 {
		return ErrInvalidCoordinates
	}

	return nil
}

// IsZero reports whether both coordinates are zero, which the storage layer treats as "no location".
func (p GeoPoint) IsZero() bool {
	return p.Lat == 0 && p.Lng == 0
}

// Point converts to an orb.Point (lng, lat order).
func (p GeoPoint) Point() orb.Point {
	return orb.Point{p.Lng, p.Lat}
}

// GeoPointFromOrb converts an orb.Point back to a GeoPoint.
func GeoPointFromOrb(pt orb.Point) GeoPoint {
	return GeoPoint{Lat: pt.Lat(), Lng: pt.Lon()}
}

// Offset returns a new point shifted by the given degrees.
func (p GeoPoint) Offset(dLat, dLng float64) GeoPoint {
	return GeoPoint{Lat: p.Lat + dLat, Lng: p.Lng + dLng}
}

func (p GeoPoint) String() string {
	return fmt.Sprintf("%.6f,%.6f", p.Lat, p.Lng)
}

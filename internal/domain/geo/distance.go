// Package geo implements the straight-line distance contract used by proximity queries.
package geo

import (
	"math"
	"sort"

	"parkospace/internal/domain/entity"

	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
)

const (
	// EarthRadiusKm is the mean earth radius shared by the query service and its clients.
	EarthRadiusKm = 6371.0

	boundPaddingFactor = 1.01
	boundEpsilonDeg    = 1e-7
)

// Haversine returns the great-circle distance between two points in kilometers.
func Haversine(a, b entity.GeoPoint) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLng := (b.Lng - a.Lng) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusKm * c
}

// RoundKm rounds a distance to two decimals for display.
func RoundKm(d float64) float64 {
	return math.Round(d*100) / 100
}

// SearchBound returns a lat/lng box that contains every point within radiusKm of center.
// ok is false when the box wraps the antimeridian; callers then scan without a box.
// Near a pole the box spans every longitude.
func SearchBound(center entity.GeoPoint, radiusKm float64) (orb.Bound, bool) {
	if radiusKm < 0 {
		return orb.Bound{}, false
	}

	bound := orbgeo.NewBoundAroundPoint(center.Point(), radiusKm*1000*boundPaddingFactor)
	if bound.Min.Lon() > bound.Max.Lon() {
		return orb.Bound{}, false
	}

	return bound.Pad(boundEpsilonDeg), true
}

// FilterByRadius keeps listings within radiusKm of center, annotates the rounded distance
// and orders them nearest-first. Listings without a location are skipped.
func FilterByRadius(center entity.GeoPoint, radiusKm float64, listings []*entity.Listing) []entity.NearbyListing {
	type candidate struct {
		listing entity.NearbyListing
		exact   float64
	}

	candidates := make([]candidate, 0, len(listings))
	for _, l := range listings {
		if l == nil || l.Location.IsZero() {
			continue
		}

		d := Haversine(center, l.Location)
		if d > radiusKm {
			continue
		}

		candidates = append(candidates, candidate{
			listing: entity.NearbyListing{Listing: *l, DistanceKm: RoundKm(d)},
			exact:   d,
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].exact != candidates[j].exact {
			return candidates[i].exact < candidates[j].exact
		}

		return candidates[i].listing.ID.String() < candidates[j].listing.ID.String()
	})

	result := make([]entity.NearbyListing, len(candidates))
	for i, c := range candidates {
		result[i] = c.listing
	}

	return result
}

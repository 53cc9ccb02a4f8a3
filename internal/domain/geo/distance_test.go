package geo

import (
	"sort"
	"testing"

	"parkospace/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var bangalore = entity.GeoPoint{Lat: 12.9716, Lng: 77.5946}

func listingAt(lat, lng float64) *entity.Listing {
	return &entity.Listing{ID: uuid.New(), Title: "spot", Location: entity.GeoPoint{Lat: lat, Lng: lng}}
}

func TestHaversine(t *testing.T) {
	assert.InDelta(t, 0, Haversine(bangalore, bangalore), 1e-12)

	// One degree of latitude on a 6371 km sphere.
	oneDegree := Haversine(entity.GeoPoint{Lat: 0, Lng: 0}, entity.GeoPoint{Lat: 1, Lng: 0})
	assert.InDelta(t, 111.195, oneDegree, 0.001)

	a := entity.GeoPoint{Lat: 12.97, Lng: 77.59}
	b := entity.GeoPoint{Lat: 13.01, Lng: 77.62}
	assert.InDelta(t, Haversine(a, b), Haversine(b, a), 1e-12)
}

func TestRoundKm(t *testing.T) {
	assert.InDelta(t, 1.23, RoundKm(1.2345), 1e-12)
	assert.InDelta(t, 4.9, RoundKm(4.899), 1e-12)
	assert.InDelta(t, 0, RoundKm(0.004), 1e-12)
}

func TestFilterByRadius_SortedAndBounded(t *testing.T) {
	listings := []*entity.Listing{
		listingAt(13.0116, 77.5946), // ~4.45 km north
		listingAt(12.9816, 77.5946), // ~1.11 km north
		listingAt(13.2000, 77.5946), // ~25 km, outside
		listingAt(12.9716, 77.6046), // ~1.08 km east
		{ID: uuid.New(), Title: "no location"},
	}

	radius := 5.0
	got := FilterByRadius(bangalore, radius, listings)
	require.Len(t, got, 3)

	assert.True(t, sort.SliceIsSorted(got, func(i, j int) bool { return got[i].DistanceKm < got[j].DistanceKm }))
	for _, l := range got {
		assert.LessOrEqual(t, l.DistanceKm, radius)
	}
	assert.Equal(t, listings[3].ID, got[0].ID)
	assert.Equal(t, listings[1].ID, got[1].ID)
	assert.Equal(t, listings[0].ID, got[2].ID)
}

func TestFilterByRadius_ZeroRadiusMatchesExactLocationOnly(t *testing.T) {
	exact := listingAt(bangalore.Lat, bangalore.Lng)
	near := listingAt(bangalore.Lat+0.0001, bangalore.Lng)

	got := FilterByRadius(bangalore, 0, []*entity.Listing{near, exact})
	require.Len(t, got, 1)
	assert.Equal(t, exact.ID, got[0].ID)
	assert.InDelta(t, 0, got[0].DistanceKm, 1e-12)
}

func TestFilterByRadius_EmptyIsNotNil(t *testing.T) {
	got := FilterByRadius(bangalore, 5, nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFilterByRadius_Idempotent(t *testing.T) {
	listings := []*entity.Listing{listingAt(12.98, 77.60), listingAt(12.99, 77.58), listingAt(12.975, 77.595)}

	first := FilterByRadius(bangalore, 5, listings)
	second := FilterByRadius(bangalore, 5, listings)
	assert.Equal(t, first, second)
}

func TestSearchBound(t *testing.T) {
	bound, ok := SearchBound(bangalore, 5)
	require.True(t, ok)
	assert.True(t, bound.Contains(bangalore.Point()))

	// Every point on the 5 km circle must be inside the box.
	north := entity.GeoPoint{Lat: bangalore.Lat + 5/111.195, Lng: bangalore.Lng}
	assert.True(t, bound.Contains(north.Point()))

	_, ok = SearchBound(entity.GeoPoint{Lat: 0, Lng: 179.99}, 5)
	assert.False(t, ok)

	polar, ok := SearchBound(entity.GeoPoint{Lat: 89.99, Lng: 0}, 5)
	require.True(t, ok)
	assert.True(t, polar.Contains(entity.GeoPoint{Lat: 89.995, Lng: 179}.Point()))

	_, ok = SearchBound(bangalore, -1)
	assert.False(t, ok)
}

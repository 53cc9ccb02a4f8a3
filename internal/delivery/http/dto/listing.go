// Package dto holds the JSON wire types shared by the HTTP server and its clients.
package dto

import (
	"time"

	"parkospace/internal/domain/entity"

	"github.com/google/uuid"
)

// Listing is the wire form of a listing. Distance is only set on area query results.
type Listing struct {
	ID           uuid.UUID `json:"id"`
	OwnerPhone   string    `json:"owner_phone"`
	Title        string    `json:"title"`
	Desc         string    `json:"desc"`
	AreaLandmark string    `json:"area_landmark"`
	Lat          float64   `json:"lat"`
	Lng          float64   `json:"lng"`
	AddressText  string    `json:"address_text"`
	Length       float64   `json:"length"`
	Breadth      float64   `json:"breadth"`
	PriceHourly  float64   `json:"price_hourly"`
	PriceDaily   float64   `json:"price_daily"`
	PriceMonthly float64   `json:"price_monthly"`
	Amenities    []string  `json:"amenities"`
	IsSold       bool      `json:"is_sold"`
	GmapLink     string    `json:"gmap_link"`
	CreatedAt    time.Time `json:"created_at"`
	Distance     *float64  `json:"distance,omitempty"`
}

// NewListing converts an entity to its wire form.
func NewListing(l *entity.Listing) Listing {
	amenities := l.Amenities
	if amenities == nil {
		amenities = []string{}
	}

	return Listing{
		ID:           l.ID,
		OwnerPhone:   l.OwnerPhone,
		Title:        l.Title,
		Desc:         l.Desc,
		AreaLandmark: l.AreaLandmark,
		Lat:          l.Location.Lat,
		Lng:          l.Location.Lng,
		AddressText:  l.AddressText,
		Length:       l.Dimensions.Length,
		Breadth:      l.Dimensions.Breadth,
		PriceHourly:  l.Pricing.Hourly,
		PriceDaily:   l.Pricing.Daily,
		PriceMonthly: l.Pricing.Monthly,
		Amenities:    amenities,
		IsSold:       l.IsSold,
		GmapLink:     l.GmapLink,
		CreatedAt:    l.CreatedAt,
	}
}

// NewListings converts a portfolio.
func NewListings(listings []*entity.Listing) []Listing {
	out := make([]Listing, 0, len(listings))
	for _, l := range listings {
		out = append(out, NewListing(l))
	}

	return out
}

// NewNearbyListings converts area query results, keeping their order.
func NewNearbyListings(nearby []entity.NearbyListing) []Listing {
	out := make([]Listing, 0, len(nearby))
	for i := range nearby {
		item := NewListing(&nearby[i].Listing)
		distance := nearby[i].DistanceKm
		item.Distance = &distance
		out = append(out, item)
	}

	return out
}

// Entity converts the wire form back to a listing.
func (l Listing) Entity() *entity.Listing {
	return &entity.Listing{
		ID:           l.ID,
		OwnerPhone:   l.OwnerPhone,
		Title:        l.Title,
		Desc:         l.Desc,
		AreaLandmark: l.AreaLandmark,
		Location:     entity.GeoPoint{Lat: l.Lat, Lng: l.Lng},
		AddressText:  l.AddressText,
		Dimensions:   entity.Dimensions{Length: l.Length, Breadth: l.Breadth},
		Pricing:      entity.Pricing{Hourly: l.PriceHourly, Daily: l.PriceDaily, Monthly: l.PriceMonthly},
		Amenities:    l.Amenities,
		IsSold:       l.IsSold,
		GmapLink:     l.GmapLink,
		CreatedAt:    l.CreatedAt,
	}
}

// Nearby converts an area query result. A missing distance reads as zero.
func (l Listing) Nearby() entity.NearbyListing {
	var distance float64
	if l.Distance != nil {
		distance = *l.Distance
	}

	return entity.NearbyListing{Listing: *l.Entity(), DistanceKm: distance}
}

// ListingRequest is the body of create and update calls.
// Lat and Lng are omitted when the owner did not pick a new location; a lone coordinate is ignored.
type ListingRequest struct {
	Title        string   `json:"title" validate:"required"`
	Desc         string   `json:"desc"`
	AreaLandmark string   `json:"area_landmark"`
	Lat          *float64 `json:"lat,omitempty" validate:"omitempty,min=-90,max=90"`
	Lng          *float64 `json:"lng,omitempty" validate:"omitempty,min=-180,max=180"`
	AddressText  string   `json:"address_text"`
	Length       float64  `json:"length" validate:"min=0"`
	Breadth      float64  `json:"breadth" validate:"min=0"`
	PriceHourly  float64  `json:"price_hourly" validate:"min=0"`
	PriceDaily   float64  `json:"price_daily" validate:"min=0"`
	PriceMonthly float64  `json:"price_monthly" validate:"min=0"`
	Amenities    []string `json:"amenities"`
	IsSold       bool     `json:"is_sold"`
	GmapLink     string   `json:"gmap_link"`
}

// NewListingRequest builds a request body from a draft.
func NewListingRequest(d *entity.ListingDraft) ListingRequest {
	req := ListingRequest{
		Title:        d.Title,
		Desc:         d.Desc,
		AreaLandmark: d.AreaLandmark,
		AddressText:  d.AddressText,
		Length:       d.Dimensions.Length,
		Breadth:      d.Dimensions.Breadth,
		PriceHourly:  d.Pricing.Hourly,
		PriceDaily:   d.Pricing.Daily,
		PriceMonthly: d.Pricing.Monthly,
		Amenities:    d.Amenities,
		IsSold:       d.IsSold,
		GmapLink:     d.GmapLink,
	}
	if d.Location != nil {
		lat, lng := d.Location.Lat, d.Location.Lng
		req.Lat = &lat
		req.Lng = &lng
	}

	return req
}

// Draft converts the request into a listing draft.
func (r *ListingRequest) Draft() *entity.ListingDraft {
	draft := &entity.ListingDraft{
		Title:        r.Title,
		Desc:         r.Desc,
		AreaLandmark: r.AreaLandmark,
		AddressText:  r.AddressText,
		Dimensions:   entity.Dimensions{Length: r.Length, Breadth: r.Breadth},
		Pricing:      entity.Pricing{Hourly: r.PriceHourly, Daily: r.PriceDaily, Monthly: r.PriceMonthly},
		Amenities:    r.Amenities,
		IsSold:       r.IsSold,
		GmapLink:     r.GmapLink,
	}
	if r.Lat != nil && r.Lng != nil {
		draft.Location = &entity.GeoPoint{Lat: *r.Lat, Lng: *r.Lng}
	}

	return draft
}

package entity

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrInvalidCoordinates is returned when a point is outside the WGS84 range.
	ErrInvalidCoordinates = errors.New("coordinates out of range")
	// ErrTitleRequired is returned when a listing has no title.
	ErrTitleRequired = errors.New("title is required")
	// ErrNegativeDimension is returned when length or breadth is negative.
	ErrNegativeDimension = errors.New("dimensions must not be negative")
	// ErrNegativePrice is returned when any price is negative.
	ErrNegativePrice = errors.New("prices must not be negative")
)

// Dimensions is the size of a parking space in meters.
type Dimensions struct {
	Length  float64
	Breadth float64
}

// Area returns length * breadth in square meters.
func (d Dimensions) Area() float64 {
	return d.Length * d.Breadth
}

// Pricing holds the rates of a parking space.
type Pricing struct {
	Hourly  float64
	Daily   float64
	Monthly float64
}

// Listing is a parking space published by an owner.
type Listing struct {
	ID           uuid.UUID // Assigned by the store on creation, immutable.
	OwnerPhone   string    // Identity of the owning session, set on creation.
	Title        string
	Desc         string
	AreaLandmark string
	Location     GeoPoint
	AddressText  string
	Dimensions   Dimensions
	Pricing      Pricing
	Amenities    []string
	IsSold       bool // Sold listings are shown but not actionable.
	GmapLink     string
	CreatedAt    time.Time
}

// ListingDraft carries the owner-writable fields of a listing.
// Location is nil when the owner did not supply a new one.
type ListingDraft struct {
	Title        string
	Desc         string
	AreaLandmark string
	Location     *GeoPoint
	AddressText  string
	Dimensions   Dimensions
	Pricing      Pricing
	Amenities    []string
	IsSold       bool
	GmapLink     string
}

// Validate checks the draft invariants shared by the client and the store.
func (d *ListingDraft) Validate() error {
	if strings.TrimSpace(d.Title) == "" {
		return ErrTitleRequired
	}
	if d.Dimensions.Length < 0 || d.Dimensions.Breadth < 0 {
		return ErrNegativeDimension
	}
	if d.Pricing.Hourly < 0 || d.Pricing.Daily < 0 || d.Pricing.Monthly < 0 {
		return ErrNegativePrice
	}
	if d.Location != nil {
		if err := d.Location.Validate(); err != nil {
			return err
		}
	}

	return nil
}

// Apply copies the draft onto a listing. Location and address are only replaced when the draft carries a location.
func (d *ListingDraft) Apply(l *Listing) {
	l.Title = d.Title
	l.Desc = d.Desc
	l.AreaLandmark = d.AreaLandmark
	l.Dimensions = d.Dimensions
	l.Pricing = d.Pricing
	l.IsSold = d.IsSold
	l.GmapLink = d.GmapLink
	if d.Amenities != nil {
		l.Amenities = d.Amenities
	}
	if d.Location != nil {
		l.Location = *d.Location
		l.AddressText = d.AddressText
	}
}

// NearbyListing is a listing annotated with its distance from a query's reference point.
// The distance is only meaningful within the result set of that query and is never stored.
type NearbyListing struct {
	Listing
	DistanceKm float64
}

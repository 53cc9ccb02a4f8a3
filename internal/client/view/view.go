// Package view derives the sidebar list and the marker layer from one state snapshot.
package view

import (
	"fmt"
	"net/url"

	"parkospace/internal/client/state"
	"parkospace/internal/domain/entity"
	"parkospace/internal/util"

	"github.com/google/uuid"
)

const soldLabel = "SOLD"

// MarkerStyle is the visual encoding of a listing marker.
type MarkerStyle string

const (
	MarkerActive MarkerStyle = "active"
	MarkerSold   MarkerStyle = "sold"
	MarkerUser   MarkerStyle = "user"
	MarkerSearch MarkerStyle = "search"
)

// SidebarItem is one ranked row of the sidebar.
type SidebarItem struct {
	ID          uuid.UUID
	Title       string
	Landmark    string
	Address     string
	Status      string // "SOLD" or the hourly rate
	Daily       string
	Distance    string
	Size        string
	Position    entity.GeoPoint
	Actionable  bool
	NavigateURL string // empty when sold
	CallURL     string // empty when sold
}

// MarkerSpec is a marker to place for a listing.
type MarkerSpec struct {
	ID       uuid.UUID
	Position entity.GeoPoint
	Label    string
	Style    MarkerStyle
	Popup    string
}

// Frame is everything derived from a single snapshot's cache.
type Frame struct {
	Seq     uint64
	Sidebar []SidebarItem
	Markers []MarkerSpec
}

// Derive builds the sidebar and markers from s.Listings, keeping query order.
func Derive(s state.Snapshot) Frame {
	frame := Frame{
		Seq:     s.AppliedSeq,
		Sidebar: make([]SidebarItem, 0, len(s.Listings)),
		Markers: make([]MarkerSpec, 0, len(s.Listings)),
	}

	for i := range s.Listings {
		l := &s.Listings[i]
		frame.Sidebar = append(frame.Sidebar, sidebarItem(l))
		frame.Markers = append(frame.Markers, markerSpec(&l.Listing))
	}

	return frame
}

func sidebarItem(l *entity.NearbyListing) SidebarItem {
	item := SidebarItem{
		ID:       l.ID,
		Title:    l.Title,
		Landmark: l.AreaLandmark,
		Address:  l.AddressText,
		Status:   soldLabel,
		Daily:    util.FormatRupees(l.Pricing.Daily),
		Distance: util.FormatKm(l.DistanceKm),
		Size:     util.FormatSize(l.Dimensions.Length, l.Dimensions.Breadth),
		Position: l.Location,
	}
	if l.IsSold {
		return item
	}

	item.Status = util.FormatRupees(l.Pricing.Hourly) + "/hr"
	item.Actionable = true
	item.NavigateURL = NavigateURL(l.Location)
	if l.OwnerPhone != "" {
		item.CallURL = "tel:" + l.OwnerPhone
	}

	return item
}

func markerSpec(l *entity.Listing) MarkerSpec {
	spec := MarkerSpec{
		ID:       l.ID,
		Position: l.Location,
		Label:    soldLabel,
		Style:    MarkerSold,
		Popup:    l.Title,
	}
	if !l.IsSold {
		spec.Label = util.FormatRupees(l.Pricing.Hourly)
		spec.Style = MarkerActive
	}

	return spec
}

// NavigateURL returns a directions link to p.
func NavigateURL(p entity.GeoPoint) string {
	q := url.Values{}
	q.Set("api", "1")
	q.Set("destination", fmt.Sprintf("%.6f,%.6f", p.Lat, p.Lng))

	return "https://www.google.com/maps/dir/?" + q.Encode()
}

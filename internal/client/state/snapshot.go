// Package state holds the client's application state as immutable snapshots
// transformed by a pure reducer.
package state

import (
	"parkospace/internal/domain/entity"

	"github.com/google/uuid"
)

// Activity is the in-flight affordance shown while a location flow runs.
type Activity string

const (
	ActivityIdle      Activity = "idle"
	ActivityLocating  Activity = "locating"
	ActivitySearching Activity = "searching"
)

// FormMode says whether submitting the owner form creates or updates.
type FormMode int

const (
	FormCreating FormMode = iota
	FormEditing
)

func (m FormMode) String() string {
	if m == FormEditing {
		return "editing"
	}

	return "creating"
}

// Form is the owner form target. EditingID is only set while editing.
// Pending is a geocoded location waiting to be attached on submit.
type Form struct {
	Mode      FormMode
	EditingID uuid.UUID
	Editing   *entity.Listing
	Pending   *entity.Place
}

// Snapshot is one immutable view of the client. Slices are shared between
// snapshots and must be treated as read-only.
type Snapshot struct {
	Reference entity.GeoPoint
	RadiusKm  float64

	// Listings is the cache of the latest applied area query, nearest first.
	Listings   []entity.NearbyListing
	IssuedSeq  uint64
	AppliedSeq uint64

	Activity  Activity
	Session   *entity.OwnerSession
	Form      Form
	Portfolio []*entity.Listing
}

// Initial returns the state before any query ran.
func Initial(reference entity.GeoPoint, radiusKm float64) Snapshot {
	return Snapshot{
		Reference: reference,
		RadiusKm:  radiusKm,
		Listings:  []entity.NearbyListing{},
		Activity:  ActivityIdle,
		Form:      Form{Mode: FormCreating},
		Portfolio: []*entity.Listing{},
	}
}

// OwnerPhone returns the session identity, or "" when logged out.
func (s Snapshot) OwnerPhone() string {
	if s.Session == nil {
		return ""
	}

	return s.Session.Owner.Phone
}

// Busy reports whether a location flow is in flight.
func (s Snapshot) Busy() bool {
	return s.Activity != ActivityIdle
}

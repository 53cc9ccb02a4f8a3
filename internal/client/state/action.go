package state

import (
	"parkospace/internal/domain/entity"

	"github.com/google/uuid"
)

// Action is a state mutation understood by Reduce.
type Action interface {
	action()
}

// LocationChanged replaces the reference point.
type LocationChanged struct {
	Point entity.GeoPoint
}

// RadiusChanged replaces the search radius, in kilometers.
type RadiusChanged struct {
	RadiusKm float64
}

// QueryIssued allocates the next query sequence number.
type QueryIssued struct{}

// QueryResolved carries the result of the query issued with Seq.
type QueryResolved struct {
	Seq      uint64
	Listings []entity.NearbyListing
}

type ActivityChanged struct {
	Activity Activity
}

// SessionChanged logs in, or logs out when Session is nil.
type SessionChanged struct {
	Session *entity.OwnerSession
}

// FormEditStarted binds the form to an existing listing.
type FormEditStarted struct {
	Listing *entity.Listing
}

type FormCancelled struct{}

type FormSubmitted struct{}

// PendingLocationSet attaches a parsed location to the active form.
type PendingLocationSet struct {
	Place *entity.Place
}

type PortfolioLoaded struct {
	Listings []*entity.Listing
}

type PortfolioItemRemoved struct {
	ID uuid.UUID
}

func (LocationChanged) action()      {}
func (RadiusChanged) action()        {}
func (QueryIssued) action()          {}
func (QueryResolved) action()        {}
func (ActivityChanged) action()      {}
func (SessionChanged) action()       {}
func (FormEditStarted) action()      {}
func (FormCancelled) action()        {}
func (FormSubmitted) action()        {}
func (PendingLocationSet) action()   {}
func (PortfolioLoaded) action()      {}
func (PortfolioItemRemoved) action() {}

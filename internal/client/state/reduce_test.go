package state_test

import (
	"testing"

	"parkospace/internal/client/state"
	"parkospace/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var bangalore = entity.GeoPoint{Lat: 12.9716, Lng: 77.5946}

func nearby(title string, km float64) entity.NearbyListing {
	return entity.NearbyListing{
		Listing:    entity.Listing{ID: uuid.New(), Title: title},
		DistanceKm: km,
	}
}

func TestInitial(t *testing.T) {
	s := state.Initial(bangalore, 5)

	assert.Equal(t, bangalore, s.Reference)
	assert.Equal(t, 5.0, s.RadiusKm)
	assert.Empty(t, s.Listings)
	assert.Equal(t, state.ActivityIdle, s.Activity)
	assert.Equal(t, state.FormCreating, s.Form.Mode)
	assert.Empty(t, s.OwnerPhone())
	assert.False(t, s.Busy())
}

func TestReduce_QueryResolved_OnlyLatestApplies(t *testing.T) {
	s := state.Initial(bangalore, 5)

	s, _ = state.Reduce(s, state.QueryIssued{})
	first := s.IssuedSeq
	s, _ = state.Reduce(s, state.QueryIssued{})
	second := s.IssuedSeq
	require.Equal(t, first+1, second)

	latest := []entity.NearbyListing{nearby("new", 1)}
	s, changed := state.Reduce(s, state.QueryResolved{Seq: second, Listings: latest})
	require.True(t, changed)
	assert.Equal(t, latest, s.Listings)

	stale := []entity.NearbyListing{nearby("old", 2)}
	next, changed := state.Reduce(s, state.QueryResolved{Seq: first, Listings: stale})
	assert.False(t, changed)
	assert.Equal(t, latest, next.Listings)
	assert.Equal(t, second, next.AppliedSeq)
}

func TestReduce_QueryResolved_OutOfOrderBeforeLatest(t *testing.T) {
	s := state.Initial(bangalore, 5)
	s, _ = state.Reduce(s, state.QueryIssued{})
	s, _ = state.Reduce(s, state.QueryIssued{})

	_, changed := state.Reduce(s, state.QueryResolved{Seq: 1, Listings: []entity.NearbyListing{nearby("a", 1)}})
	assert.False(t, changed)
}

func TestReduce_QueryResolved_NilBecomesEmpty(t *testing.T) {
	s := state.Initial(bangalore, 5)
	s, _ = state.Reduce(s, state.QueryIssued{})

	s, changed := state.Reduce(s, state.QueryResolved{Seq: s.IssuedSeq})
	require.True(t, changed)
	assert.NotNil(t, s.Listings)
	assert.Empty(t, s.Listings)
}

func TestReduce_DoesNotMutateInput(t *testing.T) {
	l1 := &entity.Listing{ID: uuid.New()}
	l2 := &entity.Listing{ID: uuid.New()}
	s := state.Initial(bangalore, 5)
	s, _ = state.Reduce(s, state.PortfolioLoaded{Listings: []*entity.Listing{l1, l2}})

	next, changed := state.Reduce(s, state.PortfolioItemRemoved{ID: l1.ID})
	require.True(t, changed)
	assert.Len(t, s.Portfolio, 2)
	assert.Equal(t, []*entity.Listing{l2}, next.Portfolio)

	moved, _ := state.Reduce(s, state.LocationChanged{Point: entity.GeoPoint{Lat: 1, Lng: 2}})
	assert.Equal(t, bangalore, s.Reference)
	assert.Equal(t, entity.GeoPoint{Lat: 1, Lng: 2}, moved.Reference)
}

func TestReduce_PortfolioItemRemoved_Unknown(t *testing.T) {
	s := state.Initial(bangalore, 5)
	_, changed := state.Reduce(s, state.PortfolioItemRemoved{ID: uuid.New()})
	assert.False(t, changed)
}

func TestReduce_FormLifecycle(t *testing.T) {
	listing := &entity.Listing{ID: uuid.New(), Title: "Basement bay"}
	place := &entity.Place{Point: bangalore, Address: "MG Road"}

	s := state.Initial(bangalore, 5)
	s, _ = state.Reduce(s, state.PendingLocationSet{Place: place})
	require.Equal(t, place, s.Form.Pending)

	s, _ = state.Reduce(s, state.FormEditStarted{Listing: listing})
	assert.Equal(t, state.FormEditing, s.Form.Mode)
	assert.Equal(t, listing.ID, s.Form.EditingID)
	assert.Nil(t, s.Form.Pending)

	s, _ = state.Reduce(s, state.FormCancelled{})
	assert.Equal(t, state.FormCreating, s.Form.Mode)
	assert.Equal(t, uuid.Nil, s.Form.EditingID)
	assert.Nil(t, s.Form.Pending)
	assert.Equal(t, "creating", s.Form.Mode.String())
}

func TestReduce_RemovingEditedListingResetsForm(t *testing.T) {
	listing := &entity.Listing{ID: uuid.New()}
	s := state.Initial(bangalore, 5)
	s, _ = state.Reduce(s, state.PortfolioLoaded{Listings: []*entity.Listing{listing}})
	s, _ = state.Reduce(s, state.FormEditStarted{Listing: listing})

	s, _ = state.Reduce(s, state.PortfolioItemRemoved{ID: listing.ID})
	assert.Equal(t, state.FormCreating, s.Form.Mode)
	assert.Empty(t, s.Portfolio)
}

func TestReduce_LogoutClearsOwnerState(t *testing.T) {
	session := &entity.OwnerSession{Owner: entity.Owner{Phone: "9876543210"}, Token: "tok"}
	listing := &entity.Listing{ID: uuid.New()}

	s := state.Initial(bangalore, 5)
	s, _ = state.Reduce(s, state.SessionChanged{Session: session})
	s, _ = state.Reduce(s, state.PortfolioLoaded{Listings: []*entity.Listing{listing}})
	s, _ = state.Reduce(s, state.FormEditStarted{Listing: listing})
	require.Equal(t, "9876543210", s.OwnerPhone())

	s, _ = state.Reduce(s, state.SessionChanged{})
	assert.Empty(t, s.OwnerPhone())
	assert.Empty(t, s.Portfolio)
	assert.Equal(t, state.FormCreating, s.Form.Mode)
}

// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"parkospace/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// ErrListingNotFound is returned when no listing matches the given id (and owner, where scoped).
var ErrListingNotFound = errors.New("listing not found")

// ListingRepository defines the persistence operations for listings.
type ListingRepository interface {
	// Create persists a new listing. ID and CreatedAt must already be set.
	Create(ctx context.Context, listing *entity.Listing) error

	// FindByID retrieves a single listing by its id.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Listing, error)

	// FindByOwner returns the portfolio of one owner, oldest first.
	FindByOwner(ctx context.Context, ownerPhone string) ([]*entity.Listing, error)

	// FindInBound returns listings whose location falls inside bound.
	// A nil bound returns every listing.
	FindInBound(ctx context.Context, bound *orb.Bound) ([]*entity.Listing, error)

	// Update overwrites a listing, matching on both id and owner.
	// Returns ErrListingNotFound when nothing matched.
	Update(ctx context.Context, ownerPhone string, listing *entity.Listing) error

	// Delete removes a listing, matching on both id and owner.
	// Returns ErrListingNotFound when nothing matched.
	Delete(ctx context.Context, id uuid.UUID, ownerPhone string) error
}

package usecase

import (
	"context"

	"parkospace/internal/domain/entity"

	"github.com/google/uuid"
)

// ListingUsecase defines the listing discovery and publishing use cases
type ListingUsecase interface {
	// FindNearby returns listings within radiusKm of center, nearest first
	FindNearby(ctx context.Context, center entity.GeoPoint, radiusKm float64) ([]entity.NearbyListing, error)
	// FindByOwner returns an owner's portfolio
	FindByOwner(ctx context.Context, ownerPhone string) ([]*entity.Listing, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Listing, error)

	// Owner writes. ownerPhone is always the authenticated identity.
	Create(ctx context.Context, ownerPhone string, draft *entity.ListingDraft) (*entity.Listing, error)
	Update(ctx context.Context, ownerPhone string, id uuid.UUID, draft *entity.ListingDraft) (*entity.Listing, error)
	Delete(ctx context.Context, ownerPhone string, id uuid.UUID) error

	// QRCode renders the listing's share code as PNG
	QRCode(ctx context.Context, id uuid.UUID) ([]byte, error)
}

// Package app runs the map explorer and the owner dashboard flows on top of the client state.
package app

import (
	"context"

	"parkospace/internal/domain/entity"
	"parkospace/internal/usecase"

	"github.com/google/uuid"
)

// ListingAPI is the listing query and publishing collaborator.
type ListingAPI interface {
	Nearby(ctx context.Context, center entity.GeoPoint, radiusKm float64) ([]entity.NearbyListing, error)
	Portfolio(ctx context.Context, ownerPhone string) ([]*entity.Listing, error)
	CreateListing(ctx context.Context, token string, draft *entity.ListingDraft) (*entity.Listing, error)
	UpdateListing(ctx context.Context, token string, id uuid.UUID, draft *entity.ListingDraft) (*entity.Listing, error)
	DeleteListing(ctx context.Context, token string, id uuid.UUID) error
}

// GeocodeAPI resolves addresses and map links.
type GeocodeAPI interface {
	SearchLocation(ctx context.Context, query string) (*entity.Place, error)
	ParseMapURL(ctx context.Context, rawURL string) (*entity.Place, error)
}

// AuthAPI runs the OTP login.
type AuthAPI interface {
	SendOTP(ctx context.Context, email, phone string) error
	VerifyOwner(ctx context.Context, input *usecase.VerifyOwnerInput) (*entity.OwnerSession, error)
}

// Locator acquires the device position once.
type Locator interface {
	Locate(ctx context.Context) (entity.GeoPoint, error)
}

// LocatorFunc adapts a function to Locator.
type LocatorFunc func(ctx context.Context) (entity.GeoPoint, error)

func (f LocatorFunc) Locate(ctx context.Context) (entity.GeoPoint, error) {
	return f(ctx)
}

// NoticeLevel is the severity of a user notification.
type NoticeLevel string

const (
	NoticeInfo  NoticeLevel = "info"
	NoticeError NoticeLevel = "error"
)

// Notifier shows non-blocking messages to the user.
type Notifier interface {
	Notify(level NoticeLevel, message string)
}

// Confirmer asks the user a yes/no question.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(prompt string) bool

func (f ConfirmFunc) Confirm(prompt string) bool {
	return f(prompt)
}

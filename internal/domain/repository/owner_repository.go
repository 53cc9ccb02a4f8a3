package repository

import (
	"context"
	"errors"

	"parkospace/internal/domain/entity"
)

// ErrOwnerNotFound is a domain-specific error returned when an owner is not found.
var ErrOwnerNotFound = errors.New("owner not found")

// OwnerRepository defines the standard operations for owner persistence.
type OwnerRepository interface {
	// FindByPhone retrieves an owner by phone identity.
	FindByPhone(ctx context.Context, phone string) (*entity.Owner, error)

	// Save inserts the owner or updates the existing row with the same phone.
	Save(ctx context.Context, owner *entity.Owner) error
}

package usecase

import (
	"context"

	"parkospace/internal/domain/entity"
)

// VerifyOwnerInput carries an OTP login attempt
type VerifyOwnerInput struct {
	Phone string
	Email string
	Code  string
	Name  string
}

// AuthUsecase defines the OTP login use cases
type AuthUsecase interface {
	// SendOTP emails a one-time code. The phone is accepted for logging only.
	SendOTP(ctx context.Context, email, phone string) error
	// VerifyOwner checks the code, upserts the owner and issues a session token
	VerifyOwner(ctx context.Context, input *VerifyOwnerInput) (*entity.OwnerSession, error)
}

package service

import (
	"context"
	"errors"
)

var (
	// ErrOTPRejected is returned when the provider reports a wrong or expired code.
	ErrOTPRejected = errors.New("otp rejected")
	// ErrOTPNotSent is returned when the provider refuses to issue a code.
	ErrOTPNotSent = errors.New("otp not sent")
)

// OTPProvider issues and verifies one-time passwords sent by email.
type OTPProvider interface {
	// Generate asks the provider to email a fresh code. Returns ErrOTPNotSent when refused.
	Generate(ctx context.Context, email string) error

	// Verify checks a code. Returns ErrOTPRejected for a wrong code.
	Verify(ctx context.Context, email, code string) error
}

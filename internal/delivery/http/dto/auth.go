package dto

import (
	"time"

	"parkospace/internal/domain/entity"
)

// SendOTPRequest asks for a login code. Phone is informational.
type SendOTPRequest struct {
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

// VerifyOwnerRequest completes an OTP login.
type VerifyOwnerRequest struct {
	Phone string `json:"phone"`
	Email string `json:"email"`
	Code  string `json:"code"`
	Name  string `json:"name"`
}

type Owner struct {
	Phone    string    `json:"phone"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	JoinedAt time.Time `json:"joined_at"`
}

// Session is returned by a successful verification. ExpiresIn is in seconds.
type Session struct {
	User      Owner  `json:"user"`
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expires_in"`
}

func NewSession(s *entity.OwnerSession, ttl time.Duration) Session {
	return Session{
		User: Owner{
			Phone:    s.Owner.Phone,
			Name:     s.Owner.Name,
			Email:    s.Owner.Email,
			JoinedAt: s.Owner.JoinedAt,
		},
		Token:     s.Token,
		ExpiresIn: int64(ttl / time.Second),
	}
}

func (s Session) Entity() *entity.OwnerSession {
	return &entity.OwnerSession{
		Owner: entity.Owner{
			Phone:    s.User.Phone,
			Name:     s.User.Name,
			Email:    s.User.Email,
			JoinedAt: s.User.JoinedAt,
		},
		Token: s.Token,
	}
}

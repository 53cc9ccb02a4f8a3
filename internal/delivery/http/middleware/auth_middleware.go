package middleware

import (
	"strings"

	"parkospace/internal/delivery/http/response"
	domainerrors "parkospace/internal/domain/errors"
	"parkospace/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// ContextKeyOwnerPhone is the echo.Context key holding the authenticated owner's phone.
const ContextKeyOwnerPhone = "ownerPhone"

// AuthMiddleware validates owner session tokens.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate requires a Bearer token and stores the owner phone on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, domainerrors.ErrUnauthorized.ErrorCode(), "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return response.Unauthorized(c, domainerrors.ErrTokenInvalid.ErrorCode(), "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil || claims.Phone == "" {
			return response.Unauthorized(c, domainerrors.ErrTokenInvalid.ErrorCode(), domainerrors.ErrTokenInvalid.Message())
		}

		c.Set(ContextKeyOwnerPhone, claims.Phone)

		return next(c)
	}
}

// OwnerPhone returns the phone stored by Authenticate, or "" on unauthenticated routes.
func OwnerPhone(c echo.Context) string {
	phone, _ := c.Get(ContextKeyOwnerPhone).(string)

	return phone
}

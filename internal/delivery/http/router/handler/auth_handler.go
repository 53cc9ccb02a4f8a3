package handler

import (
	"log/slog"
	"net/http"

	"parkospace/internal/delivery/http/dto"
	"parkospace/internal/delivery/http/response"
	"parkospace/internal/domain/service"
	"parkospace/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC       usecase.AuthUsecase
	TokenService service.TokenService
	Logger       *slog.Logger
}

// AuthHandler serves the OTP login flow.
type AuthHandler struct {
	authUC   usecase.AuthUsecase
	tokenSvc service.TokenService
	logger   *slog.Logger
}

func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC:   params.AuthUC,
		tokenSvc: params.TokenService,
		logger:   params.Logger,
	}
}

func (h *AuthHandler) SendOTP(c echo.Context) error {
	var req dto.SendOTPRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid OTP request")
	}

	if err := h.authUC.SendOTP(c.Request().Context(), req.Email, req.Phone); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "OTP sent to email")
}

// VerifyOwner exchanges a valid code for the owner record and a session token.
func (h *AuthHandler) VerifyOwner(c echo.Context) error {
	var req dto.VerifyOwnerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid verification request")
	}

	session, err := h.authUC.VerifyOwner(c.Request().Context(), &usecase.VerifyOwnerInput{
		Phone: req.Phone,
		Email: req.Email,
		Code:  req.Code,
		Name:  req.Name,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, dto.NewSession(session, h.tokenSvc.TokenTTL()), "Owner verified")
}

package handler

import (
	"log/slog"
	"net/http"

	"parkospace/internal/delivery/http/dto"
	"parkospace/internal/delivery/http/response"
	"parkospace/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// GeocodeHandlerParams holds dependencies for GeocodeHandler, injected by Fx.
type GeocodeHandlerParams struct {
	fx.In

	GeocodeUC usecase.GeocodeUsecase
	Logger    *slog.Logger
}

// GeocodeHandler serves free-text search and map-link parsing.
type GeocodeHandler struct {
	geocodeUC usecase.GeocodeUsecase
	logger    *slog.Logger
}

func NewGeocodeHandler(params GeocodeHandlerParams) *GeocodeHandler {
	return &GeocodeHandler{
		geocodeUC: params.GeocodeUC,
		logger:    params.Logger,
	}
}

func (h *GeocodeHandler) SearchLocation(c echo.Context) error {
	var req dto.SearchLocationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid search input")
	}

	place, err := h.geocodeUC.SearchLocation(c.Request().Context(), req.Query)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, dto.NewPlace(place), "Location found")
}

func (h *GeocodeHandler) ParseMapURL(c echo.Context) error {
	var req dto.ParseMapURLRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid map link input")
	}

	place, err := h.geocodeUC.ParseMapLink(c.Request().Context(), req.URL)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, dto.NewPlace(place), "Location detected")
}

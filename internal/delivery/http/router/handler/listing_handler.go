package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"parkospace/config"
	"parkospace/internal/delivery/http/dto"
	"parkospace/internal/delivery/http/middleware"
	"parkospace/internal/delivery/http/response"
	"parkospace/internal/domain/entity"
	"parkospace/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ListingHandlerParams holds dependencies for ListingHandler, injected by Fx.
type ListingHandlerParams struct {
	fx.In

	ListingUC usecase.ListingUsecase
	Config    *config.Config
	Logger    *slog.Logger
}

// ListingHandler serves listing discovery and owner writes.
type ListingHandler struct {
	listingUC usecase.ListingUsecase
	defaults  *config.ListingConfig
	logger    *slog.Logger
}

// NewListingHandler is the constructor for ListingHandler
func NewListingHandler(params ListingHandlerParams) *ListingHandler {
	defaults := config.DefaultListingConfig()
	if params.Config != nil && params.Config.Listing != nil {
		defaults = params.Config.Listing
	}

	return &ListingHandler{
		listingUC: params.ListingUC,
		defaults:  defaults,
		logger:    params.Logger,
	}
}

// ListListings serves both query modes. owner_phone selects the portfolio and ignores lat/lng/radius.
func (h *ListingHandler) ListListings(c echo.Context) error {
	ctx := c.Request().Context()

	if ownerPhone := strings.TrimSpace(c.QueryParam("owner_phone")); ownerPhone != "" {
		listings, err := h.listingUC.FindByOwner(ctx, ownerPhone)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		return response.Success(c, http.StatusOK, dto.NewListings(listings), "Portfolio retrieved successfully")
	}

	lat, err := floatParam(c, "lat", h.defaults.DefaultLat)
	if err != nil {
		return response.BadRequest(c, "INVALID_QUERY", "lat must be a number")
	}
	lng, err := floatParam(c, "lng", h.defaults.DefaultLng)
	if err != nil {
		return response.BadRequest(c, "INVALID_QUERY", "lng must be a number")
	}
	radius, err := floatParam(c, "radius", h.defaults.DefaultRadiusKm)
	if err != nil {
		return response.BadRequest(c, "INVALID_QUERY", "radius must be a number")
	}

	nearby, err := h.listingUC.FindNearby(ctx, entity.GeoPoint{Lat: lat, Lng: lng}, radius)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, dto.NewNearbyListings(nearby), "Listings retrieved successfully")
}

// CreateListing publishes a listing owned by the session's phone.
func (h *ListingHandler) CreateListing(c echo.Context) error {
	var req dto.ListingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid listing input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	listing, err := h.listingUC.Create(c.Request().Context(), middleware.OwnerPhone(c), req.Draft())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, dto.NewListing(listing), "Listing created successfully")
}

func (h *ListingHandler) UpdateListing(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid listing ID")
	}

	var req dto.ListingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid listing input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	listing, err := h.listingUC.Update(c.Request().Context(), middleware.OwnerPhone(c), id, req.Draft())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, dto.NewListing(listing), "Listing updated successfully")
}

func (h *ListingHandler) DeleteListing(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid listing ID")
	}

	if err := h.listingUC.Delete(c.Request().Context(), middleware.OwnerPhone(c), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"id": id.String()}, "Listing deleted successfully")
}

// ListingQRCode renders the listing's navigation link as a PNG.
func (h *ListingHandler) ListingQRCode(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid listing ID")
	}

	png, err := h.listingUC.QRCode(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `inline; filename="listing-`+id.String()+`.png"`)

	return c.Blob(http.StatusOK, "image/png", png)
}

func floatParam(c echo.Context, name string, fallback float64) (float64, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return fallback, nil
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "parse %s", name)
	}

	return v, nil
}

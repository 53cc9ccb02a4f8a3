// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"parkospace/internal/delivery/http/middleware"
	"parkospace/internal/delivery/http/router/handler"
	"parkospace/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ListingHandler *handler.ListingHandler
	GeocodeHandler *handler.GeocodeHandler
	AuthHandler    *handler.AuthHandler
	AuthMiddleware *middleware.AuthMiddleware
	Metrics        *metrics.ListingCollector `optional:"true"`
}

// router holds all the handlers that need to be registered.
type router struct {
	listingHandler *handler.ListingHandler
	geocodeHandler *handler.GeocodeHandler
	authHandler    *handler.AuthHandler
	authMiddleware *middleware.AuthMiddleware
	metrics        *metrics.ListingCollector
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		listingHandler: params.ListingHandler,
		geocodeHandler: params.GeocodeHandler,
		authHandler:    params.AuthHandler,
		authMiddleware: params.AuthMiddleware,
		metrics:        params.Metrics,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	if r.metrics != nil {
		e.GET("/metrics", echo.WrapHandler(r.metrics.Handler()))
	}

	api := e.Group("/api")

	listings := api.Group("/listings")
	{
		listings.GET("", r.listingHandler.ListListings)
		listings.GET("/:id/qrcode", r.listingHandler.ListingQRCode)

		// Owner writes require a session token
		listings.POST("", r.listingHandler.CreateListing, r.authMiddleware.Authenticate)
		listings.PUT("/:id", r.listingHandler.UpdateListing, r.authMiddleware.Authenticate)
		listings.DELETE("/:id", r.listingHandler.DeleteListing, r.authMiddleware.Authenticate)
	}

	utils := api.Group("/utils")
	{
		utils.POST("/search-location", r.geocodeHandler.SearchLocation)
		utils.POST("/parse-map-url", r.geocodeHandler.ParseMapURL)
	}

	auth := api.Group("/auth")
	{
		auth.POST("/send-otp", r.authHandler.SendOTP)
		auth.POST("/verify-owner", r.authHandler.VerifyOwner)
	}
}

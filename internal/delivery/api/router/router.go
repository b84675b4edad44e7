// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"reviewhub/internal/delivery/api/middleware"
	"reviewhub/internal/delivery/api/router/handler"
	"reviewhub/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ReviewHandler     *handler.ReviewHandler
	ListingHandler    *handler.ListingHandler
	CredentialHandler *handler.CredentialHandler
	SyncJobHandler    *handler.SyncJobHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	reviewHandler     *handler.ReviewHandler
	listingHandler    *handler.ListingHandler
	credentialHandler *handler.CredentialHandler
	syncJobHandler    *handler.SyncJobHandler
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		reviewHandler:     params.ReviewHandler,
		listingHandler:    params.ListingHandler,
		credentialHandler: params.CredentialHandler,
		syncJobHandler:    params.SyncJobHandler,
		authMiddleware:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// API v1 routes
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate) // All API v1 routes require authentication

	requireManager := r.authMiddleware.RequireRole(entity.RoleManager)

	apiV1.GET("/me", handler.Me)

	// Review routes
	reviewsGroup := apiV1.Group("/reviews")
	{
		reviewsGroup.GET("", r.reviewHandler.ListReviews)
		reviewsGroup.GET("/stats", r.reviewHandler.GetReviewStats)
		reviewsGroup.GET("/:id", r.reviewHandler.GetReview)
		reviewsGroup.POST("/:id/response", r.reviewHandler.CreateDraft)
	}

	// Review response workflow; approval and publishing need the manager role
	responsesGroup := apiV1.Group("/responses")
	{
		responsesGroup.PUT("/:id", r.reviewHandler.EditResponse)
		responsesGroup.POST("/:id/resubmit", r.reviewHandler.ResubmitResponse)
		responsesGroup.POST("/:id/approve", r.reviewHandler.ApproveResponse, requireManager)
		responsesGroup.POST("/:id/reject", r.reviewHandler.RejectResponse, requireManager)
		responsesGroup.POST("/:id/publish", r.reviewHandler.PublishResponse, requireManager)
	}

	// Listing queries
	listingsGroup := apiV1.Group("/listings")
	{
		listingsGroup.GET("", r.listingHandler.ListListings)
		listingsGroup.GET("/stats", r.listingHandler.GetListingStats)
	}

	// Per-location sync and publish
	locationsGroup := apiV1.Group("/locations/:id")
	{
		locationsGroup.POST("/reviews/sync", r.reviewHandler.SyncLocationReviews)
		locationsGroup.POST("/listings/sync", r.listingHandler.SyncAllListings)
		locationsGroup.POST("/listings/:platform/sync", r.listingHandler.SyncListing)
		locationsGroup.POST("/listings/publish", r.listingHandler.PublishAllListings, requireManager)
		locationsGroup.POST("/listings/:platform/publish", r.listingHandler.PublishListing, requireManager)
		locationsGroup.POST("/sync-jobs", r.syncJobHandler.ScheduleLocationSync)
	}

	apiV1.POST("/sync-jobs", r.syncJobHandler.ScheduleTenantSync)

	// Connected accounts; every mutation needs the manager role
	apiV1.GET("/platforms", r.credentialHandler.AvailablePlatforms)
	credentialsGroup := apiV1.Group("/credentials")
	{
		credentialsGroup.GET("", r.credentialHandler.ListCredentials)
		credentialsGroup.POST("", r.credentialHandler.ConnectCredential, requireManager)
		credentialsGroup.DELETE("/:id", r.credentialHandler.DisconnectCredential, requireManager)
		credentialsGroup.POST("/facebook/pages", r.credentialHandler.DiscoverFacebookPages, requireManager)
		credentialsGroup.POST("/facebook/connect", r.credentialHandler.ConnectFacebookPages, requireManager)
	}
}

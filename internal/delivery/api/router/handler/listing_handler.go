package handler

import (
	"log/slog"
	"net/http"

	"reviewhub/internal/delivery/api/response"
	"reviewhub/internal/domain/entity"
	"reviewhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ListingHandlerParams holds dependencies for ListingHandler, injected by Fx.
type ListingHandlerParams struct {
	fx.In

	ListingUC usecase.ListingUsecase
	Logger    *slog.Logger
}

// ListingHandler serves listing sync, publish and queries
type ListingHandler struct {
	listingUC usecase.ListingUsecase
	logger    *slog.Logger
}

// NewListingHandler is the constructor for ListingHandler
func NewListingHandler(params ListingHandlerParams) *ListingHandler {
	return &ListingHandler{
		listingUC: params.ListingUC,
		logger:    params.Logger,
	}
}

// ListingSyncResponse reports a fan-out listing sync
type ListingSyncResponse struct {
	Results usecase.ListingSyncResults `json:"results"`
	Summary usecase.Summary            `json:"summary"`
}

// ListingPublishResponse reports a fan-out listing publish
type ListingPublishResponse struct {
	Results usecase.ListingPublishResults `json:"results"`
	Summary usecase.Summary               `json:"summary"`
}

// ListListings returns a filtered page of the tenant's listings
func (h *ListingHandler) ListListings(c echo.Context) error {
	who, ok := callerFrom(c)
	if !ok {
		return nil
	}

	var filter entity.ListingFilter
	var platform, status, locationID string
	if err := echo.QueryParamsBinder(c).
		String("platform", &platform).
		String("status", &status).
		String("location_id", &locationID).
		Bool("only_discrepancies", &filter.OnlyDiscrepancies).
		Int("limit", &filter.Limit).
		Int("offset", &filter.Offset).
		BindError(); err != nil {
		return response.BadRequest(c, "INVALID_QUERY", "Invalid listing query")
	}
	if platform != "" {
		p, ok := entity.ParsePlatform(platform)
		if !ok {
			return response.BadRequest(c, "INVALID_PLATFORM", "Unknown platform")
		}
		filter.Platform = p
	}

	var err error
	filter.Status = entity.ListingStatus(status)
	if filter.LocationID, err = optionalUUID(locationID); err != nil {
		return response.BadRequest(c, "INVALID_QUERY", "Invalid location_id")
	}

	listings, total, err := h.listingUC.ListListings(c.Request().Context(), who.tenantID, filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, response.Page{
		Items:  listings,
		Total:  total,
		Limit:  filter.Limit,
		Offset: filter.Offset,
	})
}

// GetListingStats aggregates the tenant's listings, optionally for one location
func (h *ListingHandler) GetListingStats(c echo.Context) error {
	who, ok := callerFrom(c)
	if !ok {
		return nil
	}
	locationID, err := optionalUUID(c.QueryParam("location_id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_QUERY", "Invalid location_id")
	}

	stats, err := h.listingUC.GetListingStats(c.Request().Context(), who.tenantID, locationID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, stats)
}

// SyncListing pulls one platform's listing for a location
func (h *ListingHandler) SyncListing(c echo.Context) error {
	who, ok := callerFrom(c)
	if !ok {
		return nil
	}
	locationID, ok := idParam(c, "id", "location")
	if !ok {
		return nil
	}
	platform, ok := platformParam(c)
	if !ok {
		return nil
	}

	listing, err := h.listingUC.SyncListing(c.Request().Context(), who.tenantID, locationID, platform)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, listing)
}

// SyncAllListings pulls every listing platform for a location
func (h *ListingHandler) SyncAllListings(c echo.Context) error {
	who, ok := callerFrom(c)
	if !ok {
		return nil
	}
	locationID, ok := idParam(c, "id", "location")
	if !ok {
		return nil
	}

	results, err := h.listingUC.SyncAllListings(c.Request().Context(), who.tenantID, locationID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, ListingSyncResponse{Results: results, Summary: results.Summary()})
}

// PublishListing pushes a location's business information to one platform
func (h *ListingHandler) PublishListing(c echo.Context) error {
	who, ok := callerFrom(c)
	if !ok {
		return nil
	}
	locationID, ok := idParam(c, "id", "location")
	if !ok {
		return nil
	}
	platform, ok := platformParam(c)
	if !ok {
		return nil
	}

	if err := h.listingUC.PublishListing(c.Request().Context(), who.tenantID, locationID, platform); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"platform": platform, "published": true})
}

// PublishAllListings pushes a location's business information to every listing platform
func (h *ListingHandler) PublishAllListings(c echo.Context) error {
	who, ok := callerFrom(c)
	if !ok {
		return nil
	}
	locationID, ok := idParam(c, "id", "location")
	if !ok {
		return nil
	}

	results, err := h.listingUC.PublishAllListings(c.Request().Context(), who.tenantID, locationID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, ListingPublishResponse{Results: results, Summary: results.Summary()})
}

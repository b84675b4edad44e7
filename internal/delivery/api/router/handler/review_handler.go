package handler

import (
	"context"
	"log/slog"
	"net/http"

	"reviewhub/internal/delivery/api/response"
	"reviewhub/internal/domain/entity"
	"reviewhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ReviewHandlerParams holds dependencies for ReviewHandler, injected by Fx.
type ReviewHandlerParams struct {
	fx.In

	ReviewUC   usecase.ReviewUsecase
	ResponseUC usecase.ResponseUsecase
	Logger     *slog.Logger
}

// ReviewHandler serves reviews and their responses
type ReviewHandler struct {
	reviewUC   usecase.ReviewUsecase
	responseUC usecase.ResponseUsecase
	logger     *slog.Logger
}

// NewReviewHandler is the constructor for ReviewHandler
func NewReviewHandler(params ReviewHandlerParams) *ReviewHandler {
	return &ReviewHandler{
		reviewUC:   params.ReviewUC,
		responseUC: params.ResponseUC,
		logger:     params.Logger,
	}
}

// SyncResult is returned by a review sync
type SyncResult struct {
	Counts usecase.SyncCounts `json:"counts"`
	Total  int                `json:"total"`
}

// DraftResponseRequest is the body for drafting a response
type DraftResponseRequest struct {
	Content     string `json:"content" validate:"required,max=4000"`
	AIGenerated bool   `json:"ai_generated"`
}

// EditResponseRequest is the body for editing or resubmitting a response
type EditResponseRequest struct {
	Content string `json:"content" validate:"omitempty,max=4000"`
}

// RejectResponseRequest is the body for rejecting a response
type RejectResponseRequest struct {
	Reason string `json:"reason" validate:"required,max=1000"`
}

// ListReviews returns a filtered page of the tenant's reviews
func (h *ReviewHandler) ListReviews(c echo.Context) error {
	who, ok := callerFrom(c)
	if !ok {
		return nil
	}

	var filter entity.ReviewFilter
	var platform, locationID, hasResponse, from, to string
	if err := echo.QueryParamsBinder(c).
		String("platform", &platform).
		String("location_id", &locationID).
		Int("rating", &filter.Rating).
		Int("min_rating", &filter.MinRating).
		String("has_response", &hasResponse).
		String("search", &filter.Search).
		String("from", &from).
		String("to", &to).
		Int("limit", &filter.Limit).
		Int("offset", &filter.Offset).
		BindError(); err != nil {
		return response.BadRequest(c, "INVALID_QUERY", "Invalid review query")
	}
	if platform != "" {
		p, ok := entity.ParsePlatform(platform)
		if !ok {
			return response.BadRequest(c, "INVALID_PLATFORM", "Unknown platform")
		}
		filter.Platform = p
	}

	var err error
	if filter.LocationID, err = optionalUUID(locationID); err != nil {
		return response.BadRequest(c, "INVALID_QUERY", "Invalid location_id")
	}
	if filter.HasResponse, err = optionalBool(hasResponse); err != nil {
		return response.BadRequest(c, "INVALID_QUERY", "Invalid has_response")
	}
	if filter.From, err = optionalTime(from); err != nil {
		return response.BadRequest(c, "INVALID_QUERY", "from must be RFC 3339")
	}
	if filter.To, err = optionalTime(to); err != nil {
		return response.BadRequest(c, "INVALID_QUERY", "to must be RFC 3339")
	}

	reviews, total, err := h.reviewUC.ListReviews(c.Request().Context(), who.tenantID, filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, response.Page{
		Items:  reviews,
		Total:  total,
		Limit:  filter.Limit,
		Offset: filter.Offset,
	})
}

// GetReview returns one review with its response
func (h *ReviewHandler) GetReview(c echo.Context) error {
	who, ok := callerFrom(c)
	if !ok {
		return nil
	}
	reviewID, ok := idParam(c, "id", "review")
	if !ok {
		return nil
	}

	review, err := h.reviewUC.GetReview(c.Request().Context(), who.tenantID, reviewID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, review)
}

// GetReviewStats aggregates the tenant's reviews, optionally for one location
func (h *ReviewHandler) GetReviewStats(c echo.Context) error {
	who, ok := callerFrom(c)
	if !ok {
		return nil
	}
	locationID, err := optionalUUID(c.QueryParam("location_id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_QUERY", "Invalid location_id")
	}

	stats, err := h.reviewUC.GetReviewStats(c.Request().Context(), who.tenantID, locationID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, stats)
}

// SyncLocationReviews pulls reviews of every platform for a location
func (h *ReviewHandler) SyncLocationReviews(c echo.Context) error {
	who, ok := callerFrom(c)
	if !ok {
		return nil
	}
	locationID, ok := idParam(c, "id", "location")
	if !ok {
		return nil
	}

	counts, err := h.reviewUC.SyncReviewsForLocation(c.Request().Context(), who.tenantID, locationID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, SyncResult{Counts: counts, Total: counts.Total()})
}

// CreateDraft drafts a response to a review
func (h *ReviewHandler) CreateDraft(c echo.Context) error {
	who, ok := callerFrom(c)
	if !ok {
		return nil
	}
	reviewID, ok := idParam(c, "id", "review")
	if !ok {
		return nil
	}

	var req DraftResponseRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid response input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	resp, err := h.responseUC.CreateDraft(c.Request().Context(), who.tenantID, who.userID, reviewID, &usecase.DraftResponseInput{
		Content:     req.Content,
		AIGenerated: req.AIGenerated,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, resp)
}

// EditResponse replaces the content of an unpublished response
func (h *ReviewHandler) EditResponse(c echo.Context) error {
	return h.withContent(c, true, h.responseUC.EditResponse)
}

// ResubmitResponse returns a rejected response to draft, optionally with new content
func (h *ReviewHandler) ResubmitResponse(c echo.Context) error {
	return h.withContent(c, false, h.responseUC.ResubmitResponse)
}

type contentUpdate func(ctx context.Context, tenantID, responseID uuid.UUID, content string) (*entity.ReviewResponse, error)

func (h *ReviewHandler) withContent(c echo.Context, contentRequired bool, update contentUpdate) error {
	who, ok := callerFrom(c)
	if !ok {
		return nil
	}
	responseID, ok := idParam(c, "id", "response")
	if !ok {
		return nil
	}

	var req EditResponseRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid response input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}
	if contentRequired && req.Content == "" {
		return response.BadRequest(c, "VALIDATION_ERROR", "content is required")
	}

	resp, err := update(c.Request().Context(), who.tenantID, responseID, req.Content)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, resp)
}

// ApproveResponse approves a draft
func (h *ReviewHandler) ApproveResponse(c echo.Context) error {
	who, ok := callerFrom(c)
	if !ok {
		return nil
	}
	responseID, ok := idParam(c, "id", "response")
	if !ok {
		return nil
	}

	resp, err := h.responseUC.ApproveResponse(c.Request().Context(), who.tenantID, who.userID, responseID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, resp)
}

// RejectResponse rejects a draft or approved response
func (h *ReviewHandler) RejectResponse(c echo.Context) error {
	who, ok := callerFrom(c)
	if !ok {
		return nil
	}
	responseID, ok := idParam(c, "id", "response")
	if !ok {
		return nil
	}

	var req RejectResponseRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid rejection input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	resp, err := h.responseUC.RejectResponse(c.Request().Context(), who.tenantID, responseID, req.Reason)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, resp)
}

// PublishResponse posts an approved response to its platform
func (h *ReviewHandler) PublishResponse(c echo.Context) error {
	who, ok := callerFrom(c)
	if !ok {
		return nil
	}
	responseID, ok := idParam(c, "id", "response")
	if !ok {
		return nil
	}

	resp, err := h.responseUC.PublishResponse(c.Request().Context(), who.tenantID, responseID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, resp)
}

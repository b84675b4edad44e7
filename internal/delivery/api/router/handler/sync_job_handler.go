package handler

import (
	"log/slog"
	"net/http"

	"reviewhub/internal/delivery/api/response"
	"reviewhub/internal/domain/entity"
	"reviewhub/internal/domain/service"
	"reviewhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SyncJobHandlerParams holds dependencies for SyncJobHandler, injected by Fx.
type SyncJobHandlerParams struct {
	fx.In

	SyncJobUC usecase.SyncJobUsecase
	Logger    *slog.Logger
}

// SyncJobHandler queues background syncs
type SyncJobHandler struct {
	syncJobUC usecase.SyncJobUsecase
	logger    *slog.Logger
}

// NewSyncJobHandler is the constructor for SyncJobHandler
func NewSyncJobHandler(params SyncJobHandlerParams) *SyncJobHandler {
	return &SyncJobHandler{
		syncJobUC: params.SyncJobUC,
		logger:    params.Logger,
	}
}

// ScheduleSyncRequest selects what a queued job pulls. Platform is optional
// and only honored for a single location.
type ScheduleSyncRequest struct {
	Kind     string `json:"kind" validate:"required,oneof=reviews listings"`
	Platform string `json:"platform" validate:"omitempty,platform"`
}

// ScheduleLocationSync queues a sync for one location
func (h *SyncJobHandler) ScheduleLocationSync(c echo.Context) error {
	who, ok := callerFrom(c)
	if !ok {
		return nil
	}
	locationID, ok := idParam(c, "id", "location")
	if !ok {
		return nil
	}

	var req ScheduleSyncRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sync job input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	job, err := h.syncJobUC.ScheduleLocationSync(
		c.Request().Context(),
		who.tenantID,
		locationID,
		service.SyncJobKind(req.Kind),
		entity.Platform(req.Platform),
	)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusAccepted, job)
}

// ScheduleTenantSync queues a sync for every location of the tenant
func (h *SyncJobHandler) ScheduleTenantSync(c echo.Context) error {
	who, ok := callerFrom(c)
	if !ok {
		return nil
	}

	var req ScheduleSyncRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sync job input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	jobs, err := h.syncJobUC.ScheduleTenantSync(c.Request().Context(), who.tenantID, service.SyncJobKind(req.Kind))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusAccepted, jobs)
}

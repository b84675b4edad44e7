// Package handler holds the echo handlers of the public API.
package handler

import (
	"net/http"
	"strconv"
	"time"

	"reviewhub/internal/delivery/api/middleware"
	"reviewhub/internal/delivery/api/response"
	"reviewhub/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HealthCheck reports that the process is serving
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

// caller is the authenticated principal of a request.
type caller struct {
	tenantID uuid.UUID
	userID   uuid.UUID
}

// callerFrom reads the principal set by the auth middleware. ok is false once
// the error response is written.
func callerFrom(c echo.Context) (caller, bool) {
	tenantID, ok := middleware.GetTenantID(c)
	if !ok {
		_ = response.Unauthorized(c, "INVALID_TOKEN", "Tenant missing from token")

		return caller{}, false
	}
	userID, ok := middleware.GetUserID(c)
	if !ok {
		_ = response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")

		return caller{}, false
	}

	return caller{tenantID: tenantID, userID: userID}, true
}

// idParam parses a uuid path parameter. ok is false once the error response is written.
func idParam(c echo.Context, name, what string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		_ = response.BadRequest(c, "INVALID_ID", "Invalid "+what+" ID")

		return uuid.Nil, false
	}

	return id, true
}

func platformParam(c echo.Context) (entity.Platform, bool) {
	platform, ok := entity.ParsePlatform(c.Param("platform"))
	if !ok {
		_ = response.BadRequest(c, "INVALID_PLATFORM", "Unknown platform")
	}

	return platform, ok
}

// optionalUUID parses an optional uuid query parameter.
func optionalUUID(raw string) (*uuid.UUID, error) {
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, err
	}

	return &id, nil
}

func optionalBool(raw string) (*bool, error) {
	if raw == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, err
	}

	return &b, nil
}

func optionalTime(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, err
	}

	return &t, nil
}

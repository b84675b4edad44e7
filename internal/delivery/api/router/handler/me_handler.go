package handler

import (
	"net/http"

	"reviewhub/internal/delivery/api/middleware"
	"reviewhub/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

// MeResponse describes the authenticated caller
type MeResponse struct {
	TenantID string   `json:"tenant_id"`
	UserID   string   `json:"user_id"`
	Roles    []string `json:"roles"`
}

// Me echoes the identity carried by the access token
func Me(c echo.Context) error {
	who, ok := callerFrom(c)
	if !ok {
		return nil
	}
	roles, _ := middleware.GetRoles(c)

	return response.Success(c, http.StatusOK, MeResponse{
		TenantID: who.tenantID.String(),
		UserID:   who.userID.String(),
		Roles:    roles.ToStrings(),
	})
}

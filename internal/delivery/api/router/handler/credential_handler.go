package handler

import (
	"log/slog"
	"net/http"

	"reviewhub/internal/delivery/api/response"
	"reviewhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CredentialHandlerParams holds dependencies for CredentialHandler, injected by Fx.
type CredentialHandlerParams struct {
	fx.In

	CredentialUC usecase.CredentialUsecase
	Logger       *slog.Logger
}

// CredentialHandler manages connected platform accounts
type CredentialHandler struct {
	credentialUC usecase.CredentialUsecase
	logger       *slog.Logger
}

// NewCredentialHandler is the constructor for CredentialHandler
func NewCredentialHandler(params CredentialHandlerParams) *CredentialHandler {
	return &CredentialHandler{
		credentialUC: params.CredentialUC,
		logger:       params.Logger,
	}
}

// FacebookPagesRequest carries a Facebook user token
type FacebookPagesRequest struct {
	UserAccessToken string   `json:"user_access_token" validate:"required"`
	Scopes          []string `json:"scopes"`
	PageIDs         []string `json:"page_ids"`
}

// ListCredentials returns every account the tenant connected
func (h *CredentialHandler) ListCredentials(c echo.Context) error {
	who, ok := callerFrom(c)
	if !ok {
		return nil
	}

	creds, err := h.credentialUC.ListCredentials(c.Request().Context(), who.tenantID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, creds)
}

// ConnectCredential stores the tokens of an OAuth hand-off
func (h *CredentialHandler) ConnectCredential(c echo.Context) error {
	who, ok := callerFrom(c)
	if !ok {
		return nil
	}

	var input usecase.ConnectCredentialInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid credential input")
	}
	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	cred, err := h.credentialUC.ConnectCredential(c.Request().Context(), who.tenantID, &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, cred)
}

// DisconnectCredential deactivates one account
func (h *CredentialHandler) DisconnectCredential(c echo.Context) error {
	who, ok := callerFrom(c)
	if !ok {
		return nil
	}
	credentialID, ok := idParam(c, "id", "credential")
	if !ok {
		return nil
	}

	if err := h.credentialUC.DisconnectCredential(c.Request().Context(), who.tenantID, credentialID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// DiscoverFacebookPages lists the pages a user token manages
func (h *CredentialHandler) DiscoverFacebookPages(c echo.Context) error {
	var req FacebookPagesRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid page discovery input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	pages, err := h.credentialUC.DiscoverFacebookPages(c.Request().Context(), req.UserAccessToken)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, pages)
}

// ConnectFacebookPages connects the selected pages, or all of them
func (h *CredentialHandler) ConnectFacebookPages(c echo.Context) error {
	who, ok := callerFrom(c)
	if !ok {
		return nil
	}

	var req FacebookPagesRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid page connect input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	creds, err := h.credentialUC.ConnectFacebookPages(c.Request().Context(), who.tenantID, req.UserAccessToken, req.Scopes, req.PageIDs)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, creds)
}

// AvailablePlatforms reports which platforms the tenant has connected
func (h *CredentialHandler) AvailablePlatforms(c echo.Context) error {
	who, ok := callerFrom(c)
	if !ok {
		return nil
	}

	platforms, err := h.credentialUC.AvailablePlatforms(c.Request().Context(), who.tenantID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, platforms)
}

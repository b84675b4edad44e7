package middleware

import (
	"log/slog"
	"slices"
	"strings"

	"reviewhub/internal/delivery/api/response"
	deliverycontext "reviewhub/internal/delivery/context"
	"reviewhub/internal/domain/entity"
	"reviewhub/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	keyTenantID = "tenantID"
	keyUserID   = "userID"
	keyRoles    = "roles"
)

// AuthMiddleware authenticates tenant access tokens and checks roles.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, logger: logger}
}

// Authenticate validates the bearer token and stores the tenant, user and roles on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		c.Set(keyTenantID, claims.TenantID)
		c.Set(keyUserID, claims.UserID)
		c.Set(keyRoles, entity.RolesFromStrings(claims.Roles))

		ctx := c.Request().Context()
		logger := deliverycontext.GetLoggerOrDefault(ctx, m.logger).With(
			slog.String("tenant_id", claims.TenantID.String()),
			slog.String("user_id", claims.UserID.String()),
		)
		c.SetRequest(c.Request().WithContext(deliverycontext.WithLogger(ctx, logger)))

		return next(c)
	}
}

// RequireRole rejects callers holding none of the given roles.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(roles ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			held, ok := GetRoles(c)
			if !ok {
				return response.Forbidden(c, "FORBIDDEN", "Role information missing")
			}
			if !slices.ContainsFunc(roles, held.Contains) {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied for this operation")
			}

			return next(c)
		}
	}
}

// GetTenantID returns the tenant of the authenticated caller.
func GetTenantID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(keyTenantID).(uuid.UUID)

	return id, ok && id != uuid.Nil
}

// GetUserID returns the authenticated user.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(keyUserID).(uuid.UUID)

	return id, ok && id != uuid.Nil
}

// GetRoles returns the roles of the authenticated caller.
func GetRoles(c echo.Context) (entity.Roles, bool) {
	roles, ok := c.Get(keyRoles).(entity.Roles)

	return roles, ok
}

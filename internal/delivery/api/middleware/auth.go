package middleware

import (
	"strings"

	"marketplace/internal/delivery/api/response"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	contextKeyUserID = "userID"
	contextKeyRoles  = "roles"

	accessTokenType = "access"
)

// AuthMiddleware authenticates bearer access tokens and enforces roles.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the access token and stores the caller's id and roles on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || tokenString == "" {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil || claims.Type != accessTokenType {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		userID, err := claims.UserID()
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID format in token")
		}

		c.Set(contextKeyUserID, userID)
		c.Set(contextKeyRoles, entity.RolesFromStrings(claims.Roles))

		return next(c)
	}
}

// RequireRole rejects callers without role. It must run after Authenticate.
func (m *AuthMiddleware) RequireRole(role entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if roles, ok := GetRoles(c); !ok || !roles.Contains(role) {
				return response.HandleAppError(c, domainerrors.ErrForbidden)
			}

			return next(c)
		}
	}
}

// GetUserID returns the authenticated caller's id.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(contextKeyUserID).(uuid.UUID)

	return userID, ok
}

// GetRoles returns the authenticated caller's roles.
func GetRoles(c echo.Context) (entity.Roles, bool) {
	roles, ok := c.Get(contextKeyRoles).(entity.Roles)

	return roles, ok
}

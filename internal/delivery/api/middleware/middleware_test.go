package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/service"
	"marketplace/internal/errors"
	mockSvc "marketplace/internal/mocks/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(header string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	mw := NewAuthMiddleware(tokenSvc)
	userID := uuid.New()

	tokenSvc.EXPECT().ValidateToken("good").Return(&service.Claims{
		Roles:            []string{"business", "bogus"},
		Type:             accessTokenType,
		RegisteredClaims: jwt.RegisteredClaims{Subject: userID.String()},
	}, nil)

	c, rec := newContext("Bearer good")
	var gotID uuid.UUID
	var gotRoles entity.Roles
	err := mw.Authenticate(func(c echo.Context) error {
		gotID, _ = GetUserID(c)
		gotRoles, _ = GetRoles(c)

		return okHandler(c)
	})(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, userID, gotID)
	assert.Equal(t, entity.Roles{entity.RoleBusiness}, gotRoles)
}

func TestAuthMiddleware_Authenticate_Rejects(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	mw := NewAuthMiddleware(tokenSvc)

	tokenSvc.EXPECT().ValidateToken("expired").Return(nil, errors.New("token is expired"))

	for _, header := range []string{"", "Basic abc", "Bearer expired"} {
		c, rec := newContext(header)
		require.NoError(t, mw.Authenticate(okHandler)(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code, header)
	}
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	mw := NewAuthMiddleware(mockSvc.NewMockTokenService(t))

	c, rec := newContext("")
	c.Set(contextKeyRoles, entity.Roles{entity.RoleBusiness})
	require.NoError(t, mw.RequireRole(entity.RoleAdmin)(okHandler)(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"FORBIDDEN"`)

	c, rec = newContext("")
	require.NoError(t, mw.RequireRole(entity.RoleAdmin)(okHandler)(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"FORBIDDEN"`)

	c, rec = newContext("")
	c.Set(contextKeyRoles, entity.Roles{entity.RoleAdmin})
	require.NoError(t, mw.RequireRole(entity.RoleAdmin)(okHandler)(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	mw := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

	c, rec := newContext("")
	mw.HandleHTTPError(errors.Join(domainerrors.ErrBusinessLookupFailed, errors.New("dial tcp")), c)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "BUSINESS_LOOKUP_FAILED")
	assert.NotContains(t, rec.Body.String(), "dial tcp")

	c, rec = newContext("")
	mw.HandleHTTPError(echo.ErrNotFound, c)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	c, rec = newContext("")
	mw.HandleHTTPError(errors.New("boom"), c)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"INTERNAL_ERROR"`)
	assert.NotContains(t, rec.Body.String(), "boom")
}

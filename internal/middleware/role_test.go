package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func roleRequest(t *testing.T, mw echo.MiddlewareFunc, role any) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/admin/users", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if role != nil {
		c.Set("role", role)
	}
	handler := mw(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	require.NoError(t, handler(c))
	return rec
}

func TestRequireRole_Allows(t *testing.T) {
	rec := roleRequest(t, RequireRole("ADMIN"), "ADMIN")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = roleRequest(t, RequireRole("ADMIN", "USER"), "USER")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireRole_Forbids(t *testing.T) {
	rec := roleRequest(t, RequireRole("ADMIN"), "USER")
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// missing role
	rec = roleRequest(t, RequireRole("ADMIN"), nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// wrong type
	rec = roleRequest(t, RequireRole("ADMIN"), 42)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

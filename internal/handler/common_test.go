package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/travel-package-booking/internal/domain"
)

func newTestContext(t *testing.T) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestGetUserID_AcceptedTypes(t *testing.T) {
	for _, v := range []any{uint64(7), int(7), int64(7), float64(7), "7"} {
		c, _ := newTestContext(t)
		c.Set("user_id", v)
		got, err := getUserID(c)
		require.NoError(t, err, "value %T", v)
		assert.Equal(t, uint64(7), got)
	}
}

func TestGetUserID_Rejected(t *testing.T) {
	c, _ := newTestContext(t)
	_, err := getUserID(c) // nothing set
	assert.Error(t, err)

	c, _ = newTestContext(t)
	c.Set("user_id", "not-a-number")
	_, err = getUserID(c)
	assert.Error(t, err)
}

func TestGetRole_NormalizesAndDefaults(t *testing.T) {
	c, _ := newTestContext(t)
	c.Set("role", "admin")
	assert.Equal(t, domain.RoleAdmin, getRole(c))

	c, _ = newTestContext(t)
	c.Set("role", "something-else")
	assert.Equal(t, domain.RoleUser, getRole(c))

	c, _ = newTestContext(t)
	assert.Equal(t, domain.RoleUser, getRole(c)) // nothing set
}

func TestDomainError_StatusMapping(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("%w: bad people", domain.ErrValidation), http.StatusBadRequest},
		{domain.ErrPackageInactive, http.StatusBadRequest},
		{fmt.Errorf("%w: no", domain.ErrForbidden), http.StatusForbidden},
		{fmt.Errorf("%w: COMPLETED", domain.ErrTerminalStatus), http.StatusForbidden},
		{fmt.Errorf("%w: PENDING -> COMPLETED", domain.ErrInvalidTransition), http.StatusForbidden},
		{domain.ErrAccountBlocked, http.StatusForbidden},
		{fmt.Errorf("%w: package 9", domain.ErrNotFound), http.StatusNotFound},
		{fmt.Errorf("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		c, rec := newTestContext(t)
		require.NoError(t, domainError(c, tc.err))
		assert.Equal(t, tc.want, rec.Code, "error %v", tc.err)

		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.NotEmpty(t, body["error"])
	}
}

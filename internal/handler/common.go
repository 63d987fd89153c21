package handler // handler defines http handlers

import (
	"errors"   // errors provides sentinel comparisons for response mapping
	"net/http" // net/http provides status codes
	"strconv"  // strconv converts strings to numeric types

	"github.com/labstack/echo/v4" // echo defines request context types

	"github.com/iliyamo/travel-package-booking/internal/domain"
)

// getUserID extracts the user_id from echo.Context and converts it to uint64.
// JWT numeric claims decode as float64; string subjects are parsed as a
// fallback.
func getUserID(c echo.Context) (uint64, error) {
	switch t := c.Get("user_id").(type) {
	case uint64:
		return t, nil
	case int:
		return uint64(t), nil
	case int64:
		return uint64(t), nil
	case float64:
		return uint64(t), nil
	case string:
		if n, err := strconv.ParseUint(t, 10, 64); err == nil {
			return n, nil
		}
	}
	return 0, errors.New("invalid user_id in context")
}

// getRole extracts the role claim stored by the JWT middleware and
// normalizes it through the domain parser. Unknown roles degrade to USER.
func getRole(c echo.Context) domain.Role {
	if s, ok := c.Get("role").(string); ok {
		return domain.ParseRole(s)
	}
	return domain.RoleUser
}

// domainError maps domain sentinels onto HTTP responses so every handler
// surfaces the same taxonomy: validation failures as 400, authorization
// and lifecycle gate failures as 403, dangling references as 404. The
// caller must not have persisted anything when one of these fires.
func domainError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	case errors.Is(err, domain.ErrPackageInactive):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "package is not active"})
	case errors.Is(err, domain.ErrForbidden),
		errors.Is(err, domain.ErrTerminalStatus),
		errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrAccountBlocked):
		return c.JSON(http.StatusForbidden, echo.Map{"error": err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
}

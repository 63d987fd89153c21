package middleware

// active.go enforces the blocked-account rule at the earliest gate. A
// blocked user is denied every operation except logout regardless of
// role, and the check cannot rely on hidden UI affordances: the flag is
// loaded fresh from the users table on each protected request, so an
// admin blocking an account takes effect on the victim's very next call
// even while their access token is still technically valid.

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/travel-package-booking/internal/repository"
)

// RequireActive returns a middleware that rejects requests from blocked
// accounts with 403.  It must run after JWTAuth so the user_id is
// available in the context.  A vanished user row is treated the same as
// a blocked one: the token no longer maps to a usable account.
func RequireActive(users *repository.UserRepo) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			uid, err := contextUserID(c)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
			}
			ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
			defer cancel()
			u, err := users.GetByID(ctx, uid)
			if err != nil {
				if errors.Is(err, repository.ErrUserNotFound) {
					return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
				}
				return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load user failed"})
			}
			if u.IsBlocked {
				return c.JSON(http.StatusForbidden, echo.Map{"error": "account is blocked"})
			}
			return next(c)
		}
	}
}

// contextUserID pulls the numeric user ID out of the echo context. JWT
// numeric claims decode as float64; string subjects are parsed as a
// fallback.
func contextUserID(c echo.Context) (uint64, error) {
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

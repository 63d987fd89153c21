package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/travel-package-booking/internal/handler"
	"github.com/iliyamo/travel-package-booking/internal/middleware"
	"github.com/iliyamo/travel-package-booking/internal/repository"
)

// RegisterCustomer registers customer-scoped endpoints under /v1. All
// routes require a valid JWT, the USER role, and a non-blocked account;
// RequireActive reloads the user on every request so a block applied
// mid-session takes effect immediately.
func RegisterCustomer(e *echo.Echo, h *handler.CustomerBookingHandler, users *repository.UserRepo, jwtSecret string) {
	g := e.Group(
		"/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole("USER"),
		middleware.RequireActive(users),
	)
	g.POST("/bookings", h.Create)
	g.GET("/my-bookings", h.ListOwn)
	// Self-service cancellation; only the caller's own PENDING bookings.
	g.POST("/my-bookings/:id/cancel", h.Cancel)
}

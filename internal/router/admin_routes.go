package router // router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/travel-package-booking/internal/handler"    // admin handlers
	"github.com/iliyamo/travel-package-booking/internal/middleware" // JWT + role middlewares
	"github.com/iliyamo/travel-package-booking/internal/repository"
)

// RegisterAdmin registers ADMIN-scoped endpoints under /v1/admin.
// All routes require a valid JWT, the ADMIN role and an active account.
func RegisterAdmin(e *echo.Echo, pk *handler.AdminPackageHandler, bk *handler.AdminBookingHandler, us *handler.AdminUserHandler, users *repository.UserRepo, jwtSecret string) {
	// Attach middlewares at group construction time for clarity.
	g := e.Group(
		"/v1/admin",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole("ADMIN"),
		middleware.RequireActive(users),
	)

	// ---- Packages ----
	g.GET("/packages", pk.List) // includes inactive packages
	g.POST("/packages", pk.Create)
	g.PUT("/packages/:id", pk.Update)
	g.PATCH("/packages/:id", pk.Update) // alias for clients that use PATCH
	g.DELETE("/packages/:id", pk.Delete)

	// ---- Bookings ----
	g.GET("/bookings", bk.List) // optional ?status= filter, revenue total included
	g.PATCH("/bookings/:id/status", bk.UpdateStatus)
	g.DELETE("/bookings/:id", bk.Delete)

	// ---- Users ----
	g.GET("/users", us.List)
	g.PATCH("/users/:id/block", us.SetBlocked)
	g.DELETE("/users/:id", us.Delete)
}

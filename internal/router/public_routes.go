package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/travel-package-booking/internal/handler"
)

// RegisterPublic registers the unauthenticated catalog endpoints. No JWT
// or role middleware is applied; only active packages are visible here.
// The optional extra middlewares (response cache, rate limiting) are
// passed in by the caller so the wiring stays in main.
func RegisterPublic(e *echo.Echo, p *handler.PublicPackageHandler, mw ...echo.MiddlewareFunc) {
	// Browse active packages with destination/duration/price filters.
	e.GET("/v1/packages", p.List, mw...)
	// Package details; inactive packages 404 here.
	e.GET("/v1/packages/:id", p.Get, mw...)
}

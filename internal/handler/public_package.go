package handler

import (
	"context"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/travel-package-booking/internal/domain"
	"github.com/iliyamo/travel-package-booking/internal/model"
	"github.com/iliyamo/travel-package-booking/internal/repository"
)

// PublicPackageHandler serves the unauthenticated catalog: browsing and
// filtering active packages. Inactive packages never appear here.
type PublicPackageHandler struct {
	Packages *repository.PackageRepo
}

func NewPublicPackageHandler(p *repository.PackageRepo) *PublicPackageHandler {
	return &PublicPackageHandler{Packages: p}
}

type packagePart struct {
	ID           uint64   `json:"id"`
	Destination  string   `json:"destination"`
	DurationDays uint32   `json:"duration_days"`
	PriceCents   uint32   `json:"price_cents"`
	Description  string   `json:"description"`
	Images       []string `json:"images"`
	Inclusions   []string `json:"inclusions"`
}

func toPackagePart(p model.TravelPackage) packagePart {
	return packagePart{
		ID:           p.ID,
		Destination:  p.Destination,
		DurationDays: p.DurationDays,
		PriceCents:   p.PriceCents,
		Description:  p.Description,
		Images:       p.Images,
		Inclusions:   p.Inclusions,
	}
}

// filterFromQuery maps the filter query params onto a PackageFilter.
// Absent params widen to match-all bounds; malformed numbers are
// treated as absent rather than failing the request.
func filterFromQuery(c echo.Context) domain.PackageFilter {
	f := domain.PackageFilter{
		Destination:   c.QueryParam("destination"),
		MinDuration:   0,
		MaxDuration:   math.MaxUint32,
		MinPriceCents: 0,
		MaxPriceCents: math.MaxUint32,
	}
	if v := c.QueryParam("min_duration"); v != "" {
		if n, err := strconv.ParseUint(v, 10, 32); err == nil {
			f.MinDuration = uint32(n)
		}
	}
	if v := c.QueryParam("max_duration"); v != "" {
		if n, err := strconv.ParseUint(v, 10, 32); err == nil {
			f.MaxDuration = uint32(n)
		}
	}
	if v := c.QueryParam("min_price_cents"); v != "" {
		if n, err := strconv.ParseUint(v, 10, 32); err == nil {
			f.MinPriceCents = uint32(n)
		}
	}
	if v := c.QueryParam("max_price_cents"); v != "" {
		if n, err := strconv.ParseUint(v, 10, 32); err == nil {
			f.MaxPriceCents = uint32(n)
		}
	}
	return f
}

// List returns active packages matching the query filters. Filtering
// happens in memory over the active set so the predicate semantics stay
// in one place and never drift from the admin views.
func (h *PublicPackageHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	pkgs, err := h.Packages.ListActive(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list packages failed"})
	}

	f := filterFromQuery(c)
	f.ActiveOnly = true
	matched := domain.FilterPackages(pkgs, f)

	items := make([]packagePart, 0, len(matched))
	for _, p := range matched {
		items = append(items, toPackagePart(p))
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items, "count": len(items)})
}

// Get returns a single active package. Inactive and missing packages
// are indistinguishable to the public view.
func (h *PublicPackageHandler) Get(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid package id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	p, err := h.Packages.GetByID(ctx, id)
	if err != nil {
		if err == repository.ErrPackageNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "package not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load package failed"})
	}
	if !p.IsActive {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "package not found"})
	}
	return c.JSON(http.StatusOK, toPackagePart(*p))
}

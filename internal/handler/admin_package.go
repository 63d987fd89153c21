package handler

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/travel-package-booking/internal/domain"
	"github.com/iliyamo/travel-package-booking/internal/model"
	"github.com/iliyamo/travel-package-booking/internal/queue"
	"github.com/iliyamo/travel-package-booking/internal/repository"
	"github.com/iliyamo/travel-package-booking/internal/service"
)

// AdminPackageHandler covers catalog administration: full-visibility
// listing and create/update/delete. Route-level middleware has already
// established the ADMIN role by the time these run.
type AdminPackageHandler struct {
	Packages *repository.PackageRepo
	Events   *service.EventPublisher
}

func NewAdminPackageHandler(p *repository.PackageRepo, ev *service.EventPublisher) *AdminPackageHandler {
	return &AdminPackageHandler{Packages: p, Events: ev}
}

// ----- DTOs -----

type packageReq struct {
	Destination  string   `json:"destination"`
	DurationDays uint32   `json:"duration_days"`
	PriceCents   uint32   `json:"price_cents"`
	Description  string   `json:"description"`
	Images       []string `json:"images"`
	Inclusions   []string `json:"inclusions"`
	IsActive     *bool    `json:"is_active"` // nil on create means active
}

// adminPackagePart extends the public shape with visibility fields.
type adminPackagePart struct {
	packagePart
	IsActive  bool   `json:"is_active"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func toAdminPackagePart(p model.TravelPackage) adminPackagePart {
	return adminPackagePart{
		packagePart: toPackagePart(p),
		IsActive:    p.IsActive,
		CreatedAt:   p.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   p.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func validatePackageReq(req *packageReq) (string, bool) {
	req.Destination = strings.TrimSpace(req.Destination)
	if req.Destination == "" {
		return "destination required", false
	}
	if req.DurationDays < 1 {
		return "duration_days must be at least 1", false
	}
	return "", true
}

func (h *AdminPackageHandler) changedEvent(action string, p *model.TravelPackage) queue.PackageChangedEvent {
	return queue.PackageChangedEvent{
		PackageID:   p.ID,
		Destination: p.Destination,
		Action:      action,
		OccurredAt:  time.Now().UTC().Format(time.RFC3339),
	}
}

// List returns every package, active or not, with the same in-memory
// filter semantics as the public catalog.
func (h *AdminPackageHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	pkgs, err := h.Packages.ListAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list packages failed"})
	}

	matched := domain.FilterPackages(pkgs, filterFromQuery(c))

	items := make([]adminPackagePart, 0, len(matched))
	for _, p := range matched {
		items = append(items, toAdminPackagePart(p))
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items, "count": len(items)})
}

// Create inserts a new package. Packages default to active.
func (h *AdminPackageHandler) Create(c echo.Context) error {
	var req packageReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if msg, ok := validatePackageReq(&req); !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	p := model.TravelPackage{
		Destination:  req.Destination,
		DurationDays: req.DurationDays,
		PriceCents:   req.PriceCents,
		Description:  req.Description,
		Images:       req.Images,
		Inclusions:   req.Inclusions,
		IsActive:     active,
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Packages.Create(ctx, &p); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create package failed"})
	}
	_ = h.Events.PublishPackageChanged(ctx, h.changedEvent("created", &p))

	return c.JSON(http.StatusCreated, toAdminPackagePart(p))
}

// Update replaces every editable field of a package. Price edits
// retroactively change the derived cost of existing bookings; that is
// intentional.
func (h *AdminPackageHandler) Update(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid package id"})
	}
	var req packageReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if msg, ok := validatePackageReq(&req); !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	p := model.TravelPackage{
		ID:           id,
		Destination:  req.Destination,
		DurationDays: req.DurationDays,
		PriceCents:   req.PriceCents,
		Description:  req.Description,
		Images:       req.Images,
		Inclusions:   req.Inclusions,
		IsActive:     active,
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Packages.Update(ctx, &p); err != nil {
		if err == repository.ErrPackageNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "package not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update package failed"})
	}
	_ = h.Events.PublishPackageChanged(ctx, h.changedEvent("updated", &p))

	return c.JSON(http.StatusOK, toAdminPackagePart(p))
}

// Delete removes a package. Bookings referencing it are left in place
// and resolve to "Unknown Package" with a zero derived cost.
func (h *AdminPackageHandler) Delete(c echo.Context) error {
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
	if err := h.Packages.Delete(ctx, id); err != nil {
		if err == repository.ErrPackageNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "package not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete package failed"})
	}
	_ = h.Events.PublishPackageChanged(ctx, h.changedEvent("deleted", p))

	return c.NoContent(http.StatusNoContent)
}

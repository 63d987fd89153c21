package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/travel-package-booking/internal/domain"
	"github.com/iliyamo/travel-package-booking/internal/repository"
	"github.com/iliyamo/travel-package-booking/internal/service"
)

// AdminBookingHandler covers booking administration: listing all
// bookings with revenue aggregation, and driving status transitions.
type AdminBookingHandler struct {
	Bookings *repository.BookingRepo
	Packages *repository.PackageRepo
	Events   *service.EventPublisher
}

func NewAdminBookingHandler(b *repository.BookingRepo, p *repository.PackageRepo, ev *service.EventPublisher) *AdminBookingHandler {
	return &AdminBookingHandler{Bookings: b, Packages: p, Events: ev}
}

type statusReq struct {
	Status string `json:"status"`
}

// List returns all bookings, optionally narrowed to one status, plus
// the total revenue over the returned set. Revenue is recomputed from
// live package prices on every call, never stored.
func (h *AdminBookingHandler) List(c echo.Context) error {
	statusFilter := ""
	if v := c.QueryParam("status"); v != "" {
		st, err := domain.ParseStatus(v)
		if err != nil {
			return domainError(c, err)
		}
		statusFilter = string(st)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	bookings, err := h.Bookings.List(ctx, statusFilter)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list bookings failed"})
	}
	pkgs, err := h.Packages.ListAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list packages failed"})
	}
	idx := domain.PackageIndex(pkgs)

	items := make([]bookingPart, 0, len(bookings))
	for _, b := range bookings {
		items = append(items, toBookingPart(b, idx))
	}
	return c.JSON(http.StatusOK, echo.Map{
		"items":               items,
		"count":               len(items),
		"total_revenue_cents": domain.TotalRevenueCents(bookings, idx),
	})
}

// UpdateStatus applies one lifecycle transition to a booking. The write
// is conditional on the status the transition was authorized against,
// so a concurrent change surfaces as a conflict instead of a silent
// double transition.
func (h *AdminBookingHandler) UpdateStatus(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking id"})
	}
	var req statusReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	to, err := domain.ParseStatus(req.Status)
	if err != nil {
		return domainError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	b, err := h.Bookings.GetByID(ctx, id)
	if err != nil {
		if err == repository.ErrBookingNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load booking failed"})
	}
	from, err := domain.ParseStatus(b.Status)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "corrupt booking status"})
	}
	if aerr := domain.AuthorizeTransition(getRole(c), false, from, to); aerr != nil {
		return domainError(c, aerr)
	}

	if err := h.Bookings.UpdateStatus(ctx, b.ID, b.Status, string(to)); err != nil {
		if err == repository.ErrStatusConflict {
			return c.JSON(http.StatusConflict, echo.Map{"error": "booking status changed concurrently"})
		}
		if err == repository.ErrBookingNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update status failed"})
	}

	oldStatus := b.Status
	b.Status = string(to)

	dest := unknownPackageLabel
	var total uint64
	if pkg, perr := h.Packages.GetByID(ctx, b.PackageID); perr == nil {
		dest = pkg.Destination
		total = domain.BookingCostCents(pkg.PriceCents, b.People)
	}
	_ = h.Events.PublishBookingStatus(ctx, statusEvent(*b, dest, total, oldStatus))

	return c.JSON(http.StatusOK, echo.Map{"id": b.ID, "status": b.Status})
}

// Delete removes a booking record entirely. Cancellation is the normal
// path; deletion exists for administrative cleanup and is not announced
// on the event queue.
func (h *AdminBookingHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Bookings.Delete(ctx, id); err != nil {
		if err == repository.ErrBookingNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete booking failed"})
	}
	return c.NoContent(http.StatusNoContent)
}

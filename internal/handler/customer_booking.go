package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/travel-package-booking/internal/domain"
	"github.com/iliyamo/travel-package-booking/internal/model"
	"github.com/iliyamo/travel-package-booking/internal/queue"
	"github.com/iliyamo/travel-package-booking/internal/repository"
	"github.com/iliyamo/travel-package-booking/internal/service"
)

// CustomerBookingHandler bundles dependencies for the customer-facing
// booking endpoints: create, list own, cancel own.
type CustomerBookingHandler struct {
	Users    *repository.UserRepo
	Packages *repository.PackageRepo
	Bookings *repository.BookingRepo
	Events   *service.EventPublisher
}

func NewCustomerBookingHandler(u *repository.UserRepo, p *repository.PackageRepo, b *repository.BookingRepo, ev *service.EventPublisher) *CustomerBookingHandler {
	return &CustomerBookingHandler{Users: u, Packages: p, Bookings: b, Events: ev}
}

// ----- DTOs -----

type createBookingReq struct {
	PackageID  uint64 `json:"package_id"`
	TravelDate string `json:"travel_date"` // "2006-01-02"
	People     int    `json:"people"`
}

// bookingPart is the wire form of a booking. Destination and TotalCents
// are derived from the current package on every read; a booking whose
// package was deleted shows "Unknown Package" and a zero total.
type bookingPart struct {
	ID          uint64 `json:"id"`
	PackageID   uint64 `json:"package_id"`
	Destination string `json:"destination"`
	UserID      uint64 `json:"user_id"`
	UserName    string `json:"user_name"`
	TravelDate  string `json:"travel_date"`
	People      int    `json:"people"`
	Status      string `json:"status"`
	TotalCents  uint64 `json:"total_cents"`
	CreatedAt   string `json:"created_at"`
}

const unknownPackageLabel = "Unknown Package"

func toBookingPart(b model.Booking, idx map[uint64]model.TravelPackage) bookingPart {
	dest := unknownPackageLabel
	if p, ok := idx[b.PackageID]; ok {
		dest = p.Destination
	}
	return bookingPart{
		ID:          b.ID,
		PackageID:   b.PackageID,
		Destination: dest,
		UserID:      b.UserID,
		UserName:    b.UserName,
		TravelDate:  b.TravelDate,
		People:      b.People,
		Status:      b.Status,
		TotalCents:  domain.ResolveCostCents(b, idx),
		CreatedAt:   b.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// statusEvent builds the broker payload for a lifecycle change. The
// publish is fire-and-forget: a broker outage must never fail a booking.
func statusEvent(b model.Booking, dest string, total uint64, oldStatus string) queue.BookingStatusEvent {
	return queue.BookingStatusEvent{
		BookingID:   b.ID,
		UserID:      b.UserID,
		UserName:    b.UserName,
		PackageID:   b.PackageID,
		Destination: dest,
		TravelDate:  b.TravelDate,
		People:      b.People,
		TotalCents:  total,
		OldStatus:   oldStatus,
		NewStatus:   b.Status,
		OccurredAt:  time.Now().UTC().Format(time.RFC3339),
	}
}

// Create books a package for the caller. The booking starts PENDING and
// snapshots the caller's display name; the cost is derived, not stored.
func (h *CustomerBookingHandler) Create(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	if !domain.Allowed(getRole(c), false, domain.OpCreateBooking) {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "booking creation is a customer action"})
	}

	var req createBookingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.PackageID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "package_id required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	pkg, err := h.Packages.GetByID(ctx, req.PackageID)
	if err != nil && err != repository.ErrPackageNotFound {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load package failed"})
	}
	// pkg stays nil on ErrPackageNotFound; validation turns that into 404.
	if verr := domain.ValidateBookingRequest(domain.BookingRequest{
		PackageID:  req.PackageID,
		TravelDate: req.TravelDate,
		People:     req.People,
	}, pkg, time.Now()); verr != nil {
		return domainError(c, verr)
	}

	u, err := h.Users.GetByID(ctx, uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load user failed"})
	}

	b := model.Booking{
		PackageID:  pkg.ID,
		UserID:     u.ID,
		UserName:   u.Name, // display snapshot; later renames do not rewrite history
		TravelDate: req.TravelDate,
		People:     req.People,
		Status:     string(domain.StatusPending),
	}
	if err := h.Bookings.Create(ctx, &b); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create booking failed"})
	}

	total := domain.BookingCostCents(pkg.PriceCents, b.People)
	_ = h.Events.PublishBookingStatus(ctx, statusEvent(b, pkg.Destination, total, ""))

	idx := map[uint64]model.TravelPackage{pkg.ID: *pkg}
	return c.JSON(http.StatusCreated, toBookingPart(b, idx))
}

// ListOwn returns the caller's bookings, newest first, with derived
// totals.
func (h *CustomerBookingHandler) ListOwn(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	bookings, err := h.Bookings.ListByUser(ctx, uid)
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
	return c.JSON(http.StatusOK, echo.Map{"items": items, "count": len(items)})
}

// Cancel moves one of the caller's PENDING bookings to CANCELLED. Any
// other starting status, and any booking the caller does not own, is
// rejected before the database write.
func (h *CustomerBookingHandler) Cancel(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking id"})
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

	if b.UserID != uid {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "not your booking"})
	}

	from, err := domain.ParseStatus(b.Status)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "corrupt booking status"})
	}
	if aerr := domain.AuthorizeTransition(getRole(c), true, from, domain.StatusCancelled); aerr != nil {
		return domainError(c, aerr)
	}

	if err := h.Bookings.UpdateStatus(ctx, b.ID, b.Status, string(domain.StatusCancelled)); err != nil {
		if err == repository.ErrStatusConflict {
			return c.JSON(http.StatusConflict, echo.Map{"error": "booking status changed concurrently"})
		}
		if err == repository.ErrBookingNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "cancel booking failed"})
	}

	oldStatus := b.Status
	b.Status = string(domain.StatusCancelled)

	dest := unknownPackageLabel
	var total uint64
	if pkg, perr := h.Packages.GetByID(ctx, b.PackageID); perr == nil {
		dest = pkg.Destination
		total = domain.BookingCostCents(pkg.PriceCents, b.People)
	}
	_ = h.Events.PublishBookingStatus(ctx, statusEvent(*b, dest, total, oldStatus))

	return c.JSON(http.StatusOK, echo.Map{"id": b.ID, "status": b.Status})
}

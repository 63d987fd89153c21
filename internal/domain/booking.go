package domain

import (
	"fmt"
	"time"

	"github.com/iliyamo/travel-package-booking/internal/model"
)

const (
	// MinPeople and MaxPeople bound the traveller count of a booking.
	MinPeople = 1
	MaxPeople = 10

	// TravelDateLayout is the date-only format bookings are created with.
	TravelDateLayout = "2006-01-02"
)

// BookingRequest carries the customer-supplied fields of a new booking.
type BookingRequest struct {
	PackageID  uint64
	TravelDate string // "2006-01-02"
	People     int
}

// ValidateBookingRequest enforces the creation rules: the referenced
// package must exist and be active, people must be within
// [MinPeople, MaxPeople], and the travel date must be strictly later
// than the creation date (date-only granularity: tomorrow or later).
// Validation failures are local; no backend call may be attempted for
// a request that fails here.
func ValidateBookingRequest(req BookingRequest, pkg *model.TravelPackage, now time.Time) error {
	if pkg == nil {
		return fmt.Errorf("%w: package %d", ErrNotFound, req.PackageID)
	}
	if !pkg.IsActive {
		return ErrPackageInactive
	}
	if req.People < MinPeople || req.People > MaxPeople {
		return fmt.Errorf("%w: people must be between %d and %d", ErrValidation, MinPeople, MaxPeople)
	}
	if req.TravelDate == "" {
		return fmt.Errorf("%w: travel_date is required", ErrValidation)
	}
	travel, err := time.Parse(TravelDateLayout, req.TravelDate)
	if err != nil {
		return fmt.Errorf("%w: travel_date must be formatted %s", ErrValidation, TravelDateLayout)
	}
	today, _ := time.Parse(TravelDateLayout, now.UTC().Format(TravelDateLayout))
	if !travel.After(today) {
		return fmt.Errorf("%w: travel_date must be tomorrow or later", ErrValidation)
	}
	return nil
}

package domain

import "github.com/iliyamo/travel-package-booking/internal/model"

// BookingCostCents derives the total cost of a booking from the live
// package price. The cost is never stored: a later price edit on the
// package retroactively changes the displayed cost of existing
// bookings. That is a deliberate design choice, not a bug.
func BookingCostCents(priceCents uint32, people int) uint64 {
	if people < 0 {
		return 0
	}
	return uint64(priceCents) * uint64(people)
}

// ResolveCostCents looks the booking's package up in the given index
// and derives the cost. Bookings whose package no longer resolves cost
// zero, matching their "Unknown Package" display.
func ResolveCostCents(b model.Booking, pkgs map[uint64]model.TravelPackage) uint64 {
	p, ok := pkgs[b.PackageID]
	if !ok {
		return 0
	}
	return BookingCostCents(p.PriceCents, b.People)
}

// TotalRevenueCents aggregates revenue over the given bookings:
// Σ price(resolved package) × people. The sum is additive and
// order-independent; unresolvable packages contribute zero. Callers
// recompute it on every filter change or data refresh; it is a
// derived read, never persisted.
func TotalRevenueCents(bookings []model.Booking, pkgs map[uint64]model.TravelPackage) uint64 {
	var total uint64
	for _, b := range bookings {
		total += ResolveCostCents(b, pkgs)
	}
	return total
}

// PackageIndex builds an ID lookup for cost derivation and package
// resolution in listings.
func PackageIndex(pkgs []model.TravelPackage) map[uint64]model.TravelPackage {
	idx := make(map[uint64]model.TravelPackage, len(pkgs))
	for _, p := range pkgs {
		idx[p.ID] = p
	}
	return idx
}

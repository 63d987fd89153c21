package model

import "time"

// TravelPackage represents a purchasable travel offering as stored in
// the `travel_packages` table. Images and Inclusions are persisted as
// JSON arrays in the database and decoded by the repository layer.
// IsActive controls customer-facing visibility only: switching it off
// hides the package from the public catalog but keeps existing bookings
// valid and resolvable.
//
// Fields:
//  ID           – primary key identifier.
//  Destination  – destination label, e.g. "Bali, Indonesia".
//  DurationDays – trip length in days (positive).
//  PriceCents   – price per person in cents; the authoritative source
//                 for every derived booking cost.
//  Description  – free-form marketing text.
//  Images       – ordered image URLs.
//  Inclusions   – set of included service labels ("Hotel", "Breakfast").
//  IsActive     – customer-facing visibility flag.
//  CreatedAt    – timestamp of creation.
//  UpdatedAt    – timestamp of last update.
type TravelPackage struct {
	ID           uint64    // travel_packages.id
	Destination  string    // travel_packages.destination
	DurationDays uint32    // travel_packages.duration_days
	PriceCents   uint32    // travel_packages.price_cents
	Description  string    // travel_packages.description
	Images       []string  // travel_packages.images (JSON)
	Inclusions   []string  // travel_packages.inclusions (JSON)
	IsActive     bool      // travel_packages.is_active
	CreatedAt    time.Time // travel_packages.created_at
	UpdatedAt    time.Time // travel_packages.updated_at
}

package model

import "time"

// Booking records a user's reservation request against a travel
// package. The total cost is deliberately not a column: it is derived
// from the live package price at read time, so a later price edit
// changes the displayed cost of existing bookings.
//
// UserName is a denormalized snapshot captured at creation time; it is
// not kept in sync with later profile renames.
//
// Fields:
//  ID         – primary key identifier.
//  PackageID  – package being booked. The package may later become
//               inactive or be deleted; a dangling reference degrades
//               to an "Unknown Package" label on display.
//  UserID     – user who made the booking.
//  UserName   – snapshot of the user's name at creation.
//  TravelDate – date of travel ("2006-01-02"), strictly after the
//               creation date.
//  People     – traveller count, always within [1,10].
//  Status     – lifecycle state (PENDING, CONFIRMED, COMPLETED,
//               CANCELLED).
//  CreatedAt  – creation timestamp.
//  UpdatedAt  – last update timestamp.
type Booking struct {
	ID         uint64    // bookings.id
	PackageID  uint64    // bookings.package_id
	UserID     uint64    // bookings.user_id
	UserName   string    // bookings.user_name
	TravelDate string    // bookings.travel_date ("YYYY-MM-DD")
	People     int       // bookings.people
	Status     string    // bookings.status
	CreatedAt  time.Time // bookings.created_at
	UpdatedAt  time.Time // bookings.updated_at
}

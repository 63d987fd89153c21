package domain

import "strings"

// Role is the closed set of actor roles. Role values are stored in the
// users table and carried in the JWT "role" claim, so the string form
// matters and must stay stable.
type Role string

const (
	RoleAdmin Role = "ADMIN" // full catalog, booking and user administration
	RoleUser  Role = "USER"  // browse, book and manage own bookings
)

// ParseRole normalizes a raw role string. Unknown values fall back to
// RoleUser so a registration request can never grant elevated access by
// sending garbage.
func ParseRole(raw string) Role {
	if strings.ToUpper(strings.TrimSpace(raw)) == string(RoleAdmin) {
		return RoleAdmin
	}
	return RoleUser
}

// Operation enumerates the gated mutations of the system. Read-only
// catalog browsing is not listed: active packages are public.
type Operation string

const (
	OpManagePackages  Operation = "manage_packages" // create/update/delete packages
	OpManageUsers     Operation = "manage_users"    // list, block, delete users
	OpConfirmBooking  Operation = "confirm_booking" // PENDING -> CONFIRMED
	OpCompleteBooking Operation = "complete_booking"
	OpCancelBooking   Operation = "cancel_booking"
	OpCreateBooking   Operation = "create_booking"
	OpViewAllBookings Operation = "view_all_bookings"
)

// Allowed is the single authorization gate consulted at every mutation
// entry point. owns reports whether the actor owns the booking being
// mutated; it is ignored for operations that do not target a booking.
func Allowed(role Role, owns bool, op Operation) bool {
	if role == RoleAdmin {
		// Admins may do everything except create bookings on behalf of
		// customers; booking creation is a customer action.
		return op != OpCreateBooking
	}
	switch op {
	case OpCreateBooking:
		return true
	case OpCancelBooking:
		// Self-service cancellation only; the state machine further
		// restricts this to the PENDING status.
		return owns
	default:
		return false
	}
}

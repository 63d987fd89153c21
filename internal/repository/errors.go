// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// handlers to distinguish between different failure scenarios. For
// example, ErrStatusConflict indicates that a conditional status update
// found the booking in a different state than expected, while the
// not-found sentinels signal dangling references that display paths
// degrade on instead of failing.
package repository

import "errors"

// ErrPackageNotFound indicates that a travel package was not located in
// the DB. Bookings referencing a deleted package remain retrievable;
// handlers substitute an "Unknown Package" label.
var ErrPackageNotFound = errors.New("package not found")

// ErrBookingNotFound indicates that a booking was not located in the DB.
var ErrBookingNotFound = errors.New("booking not found")

// ErrUserNotFound indicates that a user row does not exist.
var ErrUserNotFound = errors.New("user not found")

// ErrStatusConflict is returned when a conditional status UPDATE matched
// the booking row but not the expected prior status: something else
// already moved the booking. The stored state is left untouched.
var ErrStatusConflict = errors.New("booking status changed concurrently")

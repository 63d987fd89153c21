// Package domain contains the business rules for the travel booking
// application: role gating, the booking lifecycle state machine, catalog
// filtering and price derivation. Everything in this package is pure
// (no database handles, no HTTP types) so the rules can be exercised
// directly in tests and reused by every handler.
package domain

import "errors"

// ErrValidation marks malformed input (bad date, out-of-range people
// count, empty required field). Handlers translate it into HTTP 400 and
// never attempt a backend call for such requests.
var ErrValidation = errors.New("validation error")

// ErrForbidden is returned when an actor lacks the role or ownership
// required for an operation. Handlers translate it into HTTP 403; the
// denied operation must not touch stored state.
var ErrForbidden = errors.New("forbidden")

// ErrNotFound is returned when a referenced package, booking or user no
// longer exists. Display paths degrade to a placeholder instead of
// failing the whole view.
var ErrNotFound = errors.New("not found")

var (
	// ErrPackageInactive rejects booking attempts against a package whose
	// is_active flag has been switched off by an admin.
	ErrPackageInactive = errors.New("package is not active")

	// ErrTerminalStatus rejects any transition out of COMPLETED or CANCELLED.
	ErrTerminalStatus = errors.New("booking is in a terminal status")

	// ErrInvalidTransition rejects transitions not present in the lifecycle
	// state machine (e.g. PENDING directly to COMPLETED).
	ErrInvalidTransition = errors.New("invalid status transition")
)

// ErrAccountBlocked denies every operation except logout for a blocked user.
var ErrAccountBlocked = errors.New("account is blocked")

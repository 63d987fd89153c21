package domain

import (
	"fmt"
	"strings"
)

// Status is the lifecycle state of a booking. A booking always starts
// PENDING; COMPLETED and CANCELLED are terminal.
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusCompleted Status = "COMPLETED"
	StatusCancelled Status = "CANCELLED"
)

// transitions is the full state machine:
//
//	PENDING   -> CONFIRMED | CANCELLED
//	CONFIRMED -> COMPLETED | CANCELLED
//	COMPLETED -> (terminal)
//	CANCELLED -> (terminal)
var transitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
	StatusCompleted: {},
	StatusCancelled: {},
}

// ParseStatus validates a raw status string against the closed set.
func ParseStatus(raw string) (Status, error) {
	s := Status(strings.ToUpper(strings.TrimSpace(raw)))
	if _, ok := transitions[s]; !ok {
		return "", fmt.Errorf("%w: unknown status %q", ErrValidation, raw)
	}
	return s, nil
}

// Terminal reports whether no further transitions are permitted.
func (s Status) Terminal() bool {
	return len(transitions[s]) == 0
}

// NextStatuses returns the statuses reachable from s in one step.
func (s Status) NextStatuses() []Status {
	next := transitions[s]
	out := make([]Status, len(next))
	copy(out, next)
	return out
}

// CanTransition reports whether from -> to is an edge of the state machine.
func CanTransition(from, to Status) bool {
	for _, n := range transitions[from] {
		if n == to {
			return true
		}
	}
	return false
}

// AuthorizeTransition checks both the state machine and the transition
// authority table in one place. It returns nil only when the actor with
// the given role (and booking ownership) may apply from -> to. Callers
// must not persist anything when an error is returned, so a denied
// attempt leaves stored state unchanged.
//
// Authority:
//
//	PENDING   -> CONFIRMED   admin
//	PENDING   -> CANCELLED   admin or owning user
//	CONFIRMED -> COMPLETED   admin
//	CONFIRMED -> CANCELLED   admin
func AuthorizeTransition(role Role, owns bool, from, to Status) error {
	if from.Terminal() {
		return fmt.Errorf("%w: %s", ErrTerminalStatus, from)
	}
	if !CanTransition(from, to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
	}
	if role == RoleAdmin {
		return nil
	}
	// A user may only cancel their own pending booking. Confirmed
	// bookings can no longer be self-cancelled.
	if owns && from == StatusPending && to == StatusCancelled {
		return nil
	}
	return fmt.Errorf("%w: %s may not apply %s -> %s", ErrForbidden, role, from, to)
}

// Package queue defines message payloads exchanged over the message broker.
package queue

// BookingStatusEvent is published on every booking lifecycle change,
// including creation (where OldStatus is empty). It carries enough
// denormalized detail for downstream consumers to log, notify, or feed
// analytics without querying the primary database.
type BookingStatusEvent struct {
	BookingID   uint64 `json:"booking_id"`
	UserID      uint64 `json:"user_id"`
	UserName    string `json:"user_name"`
	PackageID   uint64 `json:"package_id"`
	Destination string `json:"destination"`
	TravelDate  string `json:"travel_date"`
	People      int    `json:"people"`
	TotalCents  uint64 `json:"total_cents"`
	OldStatus   string `json:"old_status,omitempty"`
	NewStatus   string `json:"new_status"`
	OccurredAt  string `json:"occurred_at"`
}

// PackageChangedEvent is published when an admin creates, updates or
// deletes a travel package, so catalog consumers know to refetch.
type PackageChangedEvent struct {
	PackageID   uint64 `json:"package_id"`
	Destination string `json:"destination"`
	Action      string `json:"action"` // created | updated | deleted
	OccurredAt  string `json:"occurred_at"`
}

package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/travel-package-booking/internal/model"
)

// BookingRepo manages persistence for bookings.  The derived total cost
// is deliberately not a column; handlers recompute it from the live
// package price on every read.
type BookingRepo struct {
	db *sql.DB
}

// NewBookingRepo constructs a BookingRepo with the given DB handle.
func NewBookingRepo(db *sql.DB) *BookingRepo {
	return &BookingRepo{db: db}
}

// DB exposes the underlying sql.DB for transaction control.
func (r *BookingRepo) DB() *sql.DB {
	return r.db
}

// travel_date is a DATE column; with parseTime=true it would scan into
// a string as RFC3339, so it is formatted back to date-only in SQL.
const bookingColumns = "id, package_id, user_id, user_name, DATE_FORMAT(travel_date, '%Y-%m-%d'), people, status, created_at, updated_at"

func scanBooking(row interface{ Scan(...any) error }) (model.Booking, error) {
	var b model.Booking
	err := row.Scan(&b.ID, &b.PackageID, &b.UserID, &b.UserName, &b.TravelDate,
		&b.People, &b.Status, &b.CreatedAt, &b.UpdatedAt)
	return b, err
}

// Create inserts a new booking and reads the stored row back so the
// caller receives DB-default fields (created_at, updated_at).  The
// status must already be set by the caller; new bookings always start
// PENDING.
func (r *BookingRepo) Create(ctx context.Context, b *model.Booking) error {
	const q = `INSERT INTO bookings (package_id, user_id, user_name, travel_date, people, status)
               VALUES (?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, b.PackageID, b.UserID, b.UserName, b.TravelDate, b.People, b.Status)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	b.ID = uint64(id)
	const sel = `SELECT ` + bookingColumns + ` FROM bookings WHERE id = ?`
	stored, err := scanBooking(r.db.QueryRowContext(ctx, sel, b.ID))
	if err != nil {
		return err
	}
	*b = stored
	return nil
}

// GetByID retrieves a booking by its ID.  It returns ErrBookingNotFound
// if there is no matching row.
func (r *BookingRepo) GetByID(ctx context.Context, id uint64) (*model.Booking, error) {
	const q = `SELECT ` + bookingColumns + ` FROM bookings WHERE id = ?`
	b, err := scanBooking(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return &b, nil
}

// ListByUser returns all bookings created by the given user, newest
// first.  When no bookings exist it returns an empty slice and nil error.
func (r *BookingRepo) ListByUser(ctx context.Context, userID uint64) ([]model.Booking, error) {
	const q = `SELECT ` + bookingColumns + ` FROM bookings WHERE user_id = ? ORDER BY created_at DESC`
	return r.list(ctx, q, userID)
}

// List returns bookings across all users for admin views.  When status
// is non-empty the result is restricted to that status; the revenue
// aggregation over the result is computed by the caller.
func (r *BookingRepo) List(ctx context.Context, status string) ([]model.Booking, error) {
	if status == "" {
		const q = `SELECT ` + bookingColumns + ` FROM bookings ORDER BY created_at DESC`
		return r.list(ctx, q)
	}
	const q = `SELECT ` + bookingColumns + ` FROM bookings WHERE status = ? ORDER BY created_at DESC`
	return r.list(ctx, q, status)
}

func (r *BookingRepo) list(ctx context.Context, q string, args ...any) ([]model.Booking, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var result []model.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Delete removes a booking row outright. Lifecycle-respecting flows go
// through UpdateStatus; deletion is an administrative record removal.
func (r *BookingRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM bookings WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrBookingNotFound
	}
	return nil
}

// UpdateStatus applies a status transition conditionally: the UPDATE
// only matches when the booking is still in the expected prior status.
// This keeps transitions monotonic under concurrent admin edits: a
// lost race returns ErrStatusConflict and leaves the row untouched.
// When the booking does not exist at all it returns ErrBookingNotFound.
func (r *BookingRepo) UpdateStatus(ctx context.Context, id uint64, from, to string) error {
	const q = `UPDATE bookings SET status = ?, updated_at = CURRENT_TIMESTAMP
               WHERE id = ? AND status = ?`
	res, err := r.db.ExecContext(ctx, q, to, id, from)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n > 0 {
		return nil
	}
	var one int
	if err := r.db.QueryRowContext(ctx, `SELECT 1 FROM bookings WHERE id = ? LIMIT 1`, id).Scan(&one); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrBookingNotFound
		}
		return err
	}
	return ErrStatusConflict
}

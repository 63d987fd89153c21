// Package repository contains data access logic for the travel catalog.
// This file defines repository methods for travel packages. Images and
// inclusions are stored as JSON arrays in the database and decoded here
// at the boundary so every other layer works with typed records.
package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/iliyamo/travel-package-booking/internal/model"
)

// PackageRepo manages persistence for travel packages.
type PackageRepo struct {
	db *sql.DB
}

// NewPackageRepo constructs a PackageRepo with the given DB handle.
func NewPackageRepo(db *sql.DB) *PackageRepo {
	return &PackageRepo{db: db}
}

// DB exposes the underlying sql.DB.  It allows callers to begin
// transactions spanning multiple repositories.
func (r *PackageRepo) DB() *sql.DB {
	return r.db
}

const packageColumns = "id, destination, duration_days, price_cents, description, images, inclusions, is_active, created_at, updated_at"

func scanPackage(row interface{ Scan(...any) error }) (model.TravelPackage, error) {
	var (
		p          model.TravelPackage
		imagesJSON []byte
		inclJSON   []byte
	)
	err := row.Scan(&p.ID, &p.Destination, &p.DurationDays, &p.PriceCents, &p.Description,
		&imagesJSON, &inclJSON, &p.IsActive, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return model.TravelPackage{}, err
	}
	if len(imagesJSON) > 0 {
		if err := json.Unmarshal(imagesJSON, &p.Images); err != nil {
			return model.TravelPackage{}, err
		}
	}
	if len(inclJSON) > 0 {
		if err := json.Unmarshal(inclJSON, &p.Inclusions); err != nil {
			return model.TravelPackage{}, err
		}
	}
	return p, nil
}

func encodeStrings(ss []string) ([]byte, error) {
	if ss == nil {
		ss = []string{}
	}
	return json.Marshal(ss)
}

// Create inserts a new package and assigns the generated ID back to the
// struct.  DB-default fields (created_at, updated_at) are read back so
// the caller holds the row exactly as stored.
func (r *PackageRepo) Create(ctx context.Context, p *model.TravelPackage) error {
	images, err := encodeStrings(p.Images)
	if err != nil {
		return err
	}
	incl, err := encodeStrings(p.Inclusions)
	if err != nil {
		return err
	}
	const q = `INSERT INTO travel_packages (destination, duration_days, price_cents, description, images, inclusions, is_active)
               VALUES (?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, p.Destination, p.DurationDays, p.PriceCents, p.Description, images, incl, p.IsActive)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	p.ID = uint64(id)
	const sel = `SELECT ` + packageColumns + ` FROM travel_packages WHERE id = ?`
	stored, err := scanPackage(r.db.QueryRowContext(ctx, sel, p.ID))
	if err != nil {
		return err
	}
	*p = stored
	return nil
}

// GetByID retrieves a package by its ID.  It returns ErrPackageNotFound
// if there is no matching row.
func (r *PackageRepo) GetByID(ctx context.Context, id uint64) (*model.TravelPackage, error) {
	const q = `SELECT ` + packageColumns + ` FROM travel_packages WHERE id = ?`
	p, err := scanPackage(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPackageNotFound
		}
		return nil, err
	}
	return &p, nil
}

// ListAll returns every package regardless of the active flag.  It is
// used by admin views and by booking listings that must resolve
// inactive packages for display.  Results are ordered newest first to
// match the public catalog ordering.
func (r *PackageRepo) ListAll(ctx context.Context) ([]model.TravelPackage, error) {
	const q = `SELECT ` + packageColumns + ` FROM travel_packages ORDER BY created_at DESC`
	return r.list(ctx, q)
}

// ListActive returns only packages visible to customers.
func (r *PackageRepo) ListActive(ctx context.Context) ([]model.TravelPackage, error) {
	const q = `SELECT ` + packageColumns + ` FROM travel_packages WHERE is_active = TRUE ORDER BY created_at DESC`
	return r.list(ctx, q)
}

func (r *PackageRepo) list(ctx context.Context, q string) ([]model.TravelPackage, error) {
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var result []model.TravelPackage
	for rows.Next() {
		p, err := scanPackage(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Update overwrites all mutable fields of a package.  When the row does
// not exist it returns ErrPackageNotFound; an update that changes
// nothing is not an error.
func (r *PackageRepo) Update(ctx context.Context, p *model.TravelPackage) error {
	images, err := encodeStrings(p.Images)
	if err != nil {
		return err
	}
	incl, err := encodeStrings(p.Inclusions)
	if err != nil {
		return err
	}
	const q = `UPDATE travel_packages
               SET destination = ?, duration_days = ?, price_cents = ?, description = ?,
                   images = ?, inclusions = ?, is_active = ?, updated_at = CURRENT_TIMESTAMP
               WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q,
		p.Destination, p.DurationDays, p.PriceCents, p.Description, images, incl, p.IsActive, p.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n > 0 {
		return nil
	}
	var one int
	if err := r.db.QueryRowContext(ctx, `SELECT 1 FROM travel_packages WHERE id = ? LIMIT 1`, p.ID).Scan(&one); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrPackageNotFound
		}
		return err
	}
	return nil // row exists but values are identical
}

// Delete removes a package row.  Bookings referencing it are left in
// place; their package reference dangles and display degrades to
// "Unknown Package".
func (r *PackageRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM travel_packages WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrPackageNotFound
	}
	return nil
}

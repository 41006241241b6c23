package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/nkeidar/babytrack/internal/types"
)

// ErrNotFound is returned when a referenced record id does not exist.
var ErrNotFound = errors.New("record not found")

// Repository handles database operations for feeding and vomit records.
type Repository struct {
	db *DB
}

// NewRepository creates a new repository
func NewRepository(db *DB) *Repository {
	return &Repository{db: db}
}

// CreateFeeding inserts a feeding record.
func (r *Repository) CreateFeeding(ctx context.Context, f *types.Feeding) error {
	cats, err := json.Marshal(f.Categories)
	if err != nil {
		return fmt.Errorf("failed to encode categories: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO feedings (id, date, time, description, categories, amount, notes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, f.ID, f.Date, f.Time, f.Description, string(cats), f.Amount, f.Notes, f.CreatedAt, f.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to create feeding: %w", err)
	}

	return nil
}

// GetFeeding fetches a single feeding by id.
func (r *Repository) GetFeeding(ctx context.Context, id string) (*types.Feeding, error) {
	stmt, err := r.db.GetPreparedStatement("get_feeding")
	if err != nil {
		return nil, err
	}

	f, err := scanFeeding(stmt.QueryRowContext(ctx, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get feeding: %w", err)
	}

	return f, nil
}

// ListFeedings returns feedings, optionally bounded by start/end dates
// (inclusive, ISO date strings), newest first.
func (r *Repository) ListFeedings(ctx context.Context, startDate, endDate string) ([]types.Feeding, error) {
	query := `SELECT id, date, time, description, categories, amount, notes, created_at, updated_at FROM feedings`
	var args []interface{}

	switch {
	case startDate != "" && endDate != "":
		query += ` WHERE date >= ? AND date <= ?`
		args = append(args, startDate, endDate)
	case startDate != "":
		query += ` WHERE date >= ?`
		args = append(args, startDate)
	case endDate != "":
		query += ` WHERE date <= ?`
		args = append(args, endDate)
	}
	query += ` ORDER BY date DESC, time DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list feedings: %w", err)
	}
	defer rows.Close()

	return collectFeedings(rows)
}

// FeedingsSince returns all feedings dated on or after the given ISO date,
// newest first. This is the record-store range query the analytics engine
// loads its window through.
func (r *Repository) FeedingsSince(ctx context.Context, date string) ([]types.Feeding, error) {
	stmt, err := r.db.GetPreparedStatement("feedings_since")
	if err != nil {
		return nil, err
	}

	rows, err := stmt.QueryContext(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to query feedings: %w", err)
	}
	defer rows.Close()

	return collectFeedings(rows)
}

// UpdateFeeding replaces the mutable fields of an existing feeding.
func (r *Repository) UpdateFeeding(ctx context.Context, id string, f *types.Feeding) (*types.Feeding, error) {
	cats, err := json.Marshal(f.Categories)
	if err != nil {
		return nil, fmt.Errorf("failed to encode categories: %w", err)
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE feedings SET date = ?, time = ?, description = ?, categories = ?, amount = ?, notes = ?, updated_at = ?
		WHERE id = ?
	`, f.Date, f.Time, f.Description, string(cats), f.Amount, f.Notes, time.Now(), id)
	if err != nil {
		return nil, fmt.Errorf("failed to update feeding: %w", err)
	}

	if err := requireRow(res); err != nil {
		return nil, err
	}

	return r.GetFeeding(ctx, id)
}

// DeleteFeeding removes a feeding by id.
func (r *Repository) DeleteFeeding(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM feedings WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete feeding: %w", err)
	}
	return requireRow(res)
}

// CreateVomit inserts a vomit record.
func (r *Repository) CreateVomit(ctx context.Context, v *types.Vomit) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO vomits (id, date, time, severity, notes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, v.ID, v.Date, v.Time, string(v.Severity), v.Notes, v.CreatedAt, v.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to create vomit record: %w", err)
	}

	return nil
}

// GetVomit fetches a single vomit record by id.
func (r *Repository) GetVomit(ctx context.Context, id string) (*types.Vomit, error) {
	stmt, err := r.db.GetPreparedStatement("get_vomit")
	if err != nil {
		return nil, err
	}

	v, err := scanVomit(stmt.QueryRowContext(ctx, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get vomit record: %w", err)
	}

	return v, nil
}

// ListVomits returns vomit records, optionally bounded by start/end dates
// (inclusive), newest first.
func (r *Repository) ListVomits(ctx context.Context, startDate, endDate string) ([]types.Vomit, error) {
	query := `SELECT id, date, time, severity, notes, created_at, updated_at FROM vomits`
	var args []interface{}

	switch {
	case startDate != "" && endDate != "":
		query += ` WHERE date >= ? AND date <= ?`
		args = append(args, startDate, endDate)
	case startDate != "":
		query += ` WHERE date >= ?`
		args = append(args, startDate)
	case endDate != "":
		query += ` WHERE date <= ?`
		args = append(args, endDate)
	}
	query += ` ORDER BY date DESC, time DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list vomit records: %w", err)
	}
	defer rows.Close()

	return collectVomits(rows)
}

// VomitsSince returns all vomit records dated on or after the given ISO
// date, newest first.
func (r *Repository) VomitsSince(ctx context.Context, date string) ([]types.Vomit, error) {
	stmt, err := r.db.GetPreparedStatement("vomits_since")
	if err != nil {
		return nil, err
	}

	rows, err := stmt.QueryContext(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to query vomit records: %w", err)
	}
	defer rows.Close()

	return collectVomits(rows)
}

// UpdateVomit replaces the mutable fields of an existing vomit record.
func (r *Repository) UpdateVomit(ctx context.Context, id string, v *types.Vomit) (*types.Vomit, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE vomits SET date = ?, time = ?, severity = ?, notes = ?, updated_at = ?
		WHERE id = ?
	`, v.Date, v.Time, string(v.Severity), v.Notes, time.Now(), id)
	if err != nil {
		return nil, fmt.Errorf("failed to update vomit record: %w", err)
	}

	if err := requireRow(res); err != nil {
		return nil, err
	}

	return r.GetVomit(ctx, id)
}

// DeleteVomit removes a vomit record by id.
func (r *Repository) DeleteVomit(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM vomits WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete vomit record: %w", err)
	}
	return requireRow(res)
}

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanFeeding(row rowScanner) (*types.Feeding, error) {
	var f types.Feeding
	var cats string
	if err := row.Scan(&f.ID, &f.Date, &f.Time, &f.Description, &cats, &f.Amount, &f.Notes, &f.CreatedAt, &f.UpdatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(cats), &f.Categories); err != nil {
		return nil, fmt.Errorf("failed to decode categories for feeding %s: %w", f.ID, err)
	}
	return &f, nil
}

func scanVomit(row rowScanner) (*types.Vomit, error) {
	var v types.Vomit
	var severity string
	if err := row.Scan(&v.ID, &v.Date, &v.Time, &severity, &v.Notes, &v.CreatedAt, &v.UpdatedAt); err != nil {
		return nil, err
	}
	v.Severity = types.Severity(severity)
	return &v, nil
}

func collectFeedings(rows *sql.Rows) ([]types.Feeding, error) {
	feedings := []types.Feeding{}
	for rows.Next() {
		f, err := scanFeeding(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan feeding: %w", err)
		}
		feedings = append(feedings, *f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate feedings: %w", err)
	}
	return feedings, nil
}

func collectVomits(rows *sql.Rows) ([]types.Vomit, error) {
	vomits := []types.Vomit{}
	for rows.Next() {
		v, err := scanVomit(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan vomit record: %w", err)
		}
		vomits = append(vomits, *v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate vomit records: %w", err)
	}
	return vomits, nil
}

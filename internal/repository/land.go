package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/stpnv0/LandBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// LandRepository is the Postgres-backed land store of the web viewer.
type LandRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewLandRepo(db *dbpg.DB) *LandRepository {
	return &LandRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *LandRepository) ListLands(ctx context.Context) ([]domain.Land, error) {
	query := `SELECT land_id, cost, square, land_data_url, status
			  FROM lands
			  ORDER BY created_at, land_id`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list lands: %w", err)
	}
	defer rows.Close()

	res := make([]domain.Land, 0)
	for rows.Next() {
		var l domain.Land
		if err = rows.Scan(&l.LandID, &l.Cost, &l.Square, &l.LandDataURL, &l.Status); err != nil {
			return nil, fmt.Errorf("scan land: %w", err)
		}
		res = append(res, l)
	}

	return res, rows.Err()
}

func (r *LandRepository) CreateLand(ctx context.Context, land domain.Land) error {
	query := `INSERT INTO lands (land_id, cost, square, land_data_url, status, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		land.LandID, land.Cost, land.Square, land.LandDataURL, land.Status, time.Now().UTC(),
	)
	if err != nil {
		if pgCode(err) == pgUniqueViolation {
			return fmt.Errorf("land %s: %w", land.LandID, domain.ErrLandExists)
		}
		return fmt.Errorf("insert land: %w", err)
	}

	return nil
}

func (r *LandRepository) UpdateLandStatus(ctx context.Context, landID string, status domain.LandStatus) error {
	query := `UPDATE lands SET status = $2 WHERE land_id = $1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, landID, status)
	if err != nil {
		return fmt.Errorf("update land status: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("land rows affected: %w", err)
	}
	if n == 0 {
		return domain.ErrLandNotFound
	}

	return nil
}

func (r *LandRepository) CreateForm(ctx context.Context, form domain.BookingForm) error {
	query := `INSERT INTO booking_forms (id, name, surname, phone, land_id, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		form.ID, form.Name, form.Surname, form.Phone, form.LandID, form.CreatedAt,
	)
	if err != nil {
		if pgCode(err) == pgForeignKeyViolation {
			return fmt.Errorf("land %s: %w", form.LandID, domain.ErrLandNotFound)
		}
		return fmt.Errorf("insert booking form: %w", err)
	}

	return nil
}

func (r *LandRepository) ListForms(ctx context.Context) ([]domain.BookingForm, error) {
	query := `SELECT id, name, surname, phone, land_id, created_at
			  FROM booking_forms
			  ORDER BY created_at`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list booking forms: %w", err)
	}
	defer rows.Close()

	res := make([]domain.BookingForm, 0)
	for rows.Next() {
		var f domain.BookingForm
		if err = rows.Scan(&f.ID, &f.Name, &f.Surname, &f.Phone, &f.LandID, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan booking form: %w", err)
		}
		res = append(res, f)
	}

	return res, rows.Err()
}

func pgCode(err error) pq.ErrorCode {
	var pgErr *pq.Error
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

package window

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/estudioluz/booking-service/internal/domain"
	"github.com/estudioluz/booking-service/pkg/psqlbuilder"
	"github.com/estudioluz/booking-service/pkg/txmanager"
)

var windowColumns = []string{
	"id",
	"date",
	"start_time",
	"end_time",
	"status",
	"created_at",
	"updated_at",
}

// Repository persists available windows
type Repository struct {
	db DBExecutor
}

// NewRepository creates a window repository
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new window and returns it with generated fields filled
func (r *Repository) Create(ctx context.Context, w *domain.AvailableWindow) (*domain.AvailableWindow, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("available_windows").
		Columns("date", "start_time", "end_time", "status").
		Values(w.Date, w.StartTime, w.EndTime, w.Status).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&w.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	w.CreatedAt = createdAt.Time
	w.UpdatedAt = updatedAt.Time
	return w, nil
}

// GetByID fetches a window by id
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.AvailableWindow, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(windowColumns...).
		From("available_windows").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	w, err := scanWindow(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrWindowNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan window: %v", ErrScanRow, err)
	}
	return w, nil
}

// ListByRange fetches windows whose date falls within the inclusive filter
// range, ordered by date then start time ascending.
func (r *Repository) ListByRange(ctx context.Context, filter domain.WindowRangeFilter) ([]*domain.AvailableWindow, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(windowColumns...).
		From("available_windows").
		Where(squirrel.GtOrEq{"date": filter.StartDate}).
		Where(squirrel.LtOrEq{"date": filter.EndDate}).
		OrderBy("date ASC", "start_time ASC")

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var windows []*domain.AvailableWindow
	for rows.Next() {
		w, err := scanWindow(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByRange - scan window: %v", ErrScanRow, err)
		}
		windows = append(windows, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByRange - iterate rows: %v", ErrExecQuery, err)
	}

	return windows, nil
}

// UpdateStatus sets the window's status unconditionally
func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.Status) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("available_windows").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return ErrWindowNotFound
	}
	return nil
}

// Claim moves an available window to pending.
// The status guard in the WHERE clause makes the claim a no-op when the
// window was taken meanwhile; that surfaces as ErrNotClaimable.
func (r *Repository) Claim(ctx context.Context, id uuid.UUID) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("available_windows").
		Set("status", domain.StatusPending).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "status": domain.StatusAvailable}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Claim - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Claim - execute update: %v", ErrExecQuery, err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return ErrNotClaimable
	}
	return nil
}

// Delete removes a window
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("available_windows").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return ErrWindowNotFound
	}
	return nil
}

// scanner abstracts *sql.Row and *sql.Rows
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanWindow(s scanner) (*domain.AvailableWindow, error) {
	var w domain.AvailableWindow
	var createdAt, updatedAt sql.NullTime

	err := s.Scan(
		&w.ID,
		&w.Date,
		&w.StartTime,
		&w.EndTime,
		&w.Status,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	w.CreatedAt = createdAt.Time
	w.UpdatedAt = updatedAt.Time
	return &w, nil
}

package booking

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

var bookingColumns = []string{
	"id",
	"window_id",
	"client_name",
	"client_email",
	"client_phone",
	"service_type",
	"message",
	"status",
	"preferred_date",
	"preferred_time",
	"notification_sent",
	"confirmation_sent",
	"created_at",
	"updated_at",
}

// Repository persists bookings
type Repository struct {
	db DBExecutor
}

// NewRepository creates a booking repository
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new booking and returns it with generated fields filled
func (r *Repository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	if !b.Status.ValidBookingStatus() {
		return nil, ErrInvalidStatus
	}

	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"window_id",
			"client_name",
			"client_email",
			"client_phone",
			"service_type",
			"message",
			"status",
			"preferred_date",
			"preferred_time",
			"notification_sent",
			"confirmation_sent",
		).
		Values(
			b.WindowID,
			b.ClientName,
			b.ClientEmail,
			b.ClientPhone,
			b.ServiceType,
			b.Message,
			b.Status,
			b.PreferredDate,
			b.PreferredTime,
			b.NotificationSent,
			b.ConfirmationSent,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&b.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time
	return b, nil
}

// GetByID fetches a booking by id
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	b, err := scanBooking(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}
	return b, nil
}

// ListByRange fetches bookings whose preferred date falls within the inclusive
// filter range. For a single-day range the result is ordered by start time
// ascending (the slot engine consumes it that way); wider ranges come back
// newest first for the admin listing.
func (r *Repository) ListByRange(ctx context.Context, filter domain.BookingRangeFilter) ([]*domain.Booking, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.GtOrEq{"preferred_date": filter.StartDate}).
		Where(squirrel.LtOrEq{"preferred_date": filter.EndDate})

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}

	if filter.StartDate.Equal(filter.EndDate) {
		selectBuilder = selectBuilder.OrderBy("preferred_time ASC")
	} else {
		selectBuilder = selectBuilder.OrderBy("preferred_date DESC", "preferred_time DESC")
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

	var bookings []*domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByRange - scan booking: %v", ErrScanRow, err)
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByRange - iterate rows: %v", ErrExecQuery, err)
	}

	return bookings, nil
}

// UpdateStatus sets the booking's status
func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.Status) error {
	if !status.ValidBookingStatus() {
		return ErrInvalidStatus
	}

	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
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
		return ErrBookingNotFound
	}
	return nil
}

// MarkNotificationSent records that the operator notification link was produced
func (r *Repository) MarkNotificationSent(ctx context.Context, id uuid.UUID) error {
	return r.setFlag(ctx, id, "notification_sent")
}

// MarkConfirmationSent records that the client status-update link was produced
func (r *Repository) MarkConfirmationSent(ctx context.Context, id uuid.UUID) error {
	return r.setFlag(ctx, id, "confirmation_sent")
}

func (r *Repository) setFlag(ctx context.Context, id uuid.UUID, column string) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set(column, true).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: setFlag(%s) - build update query: %v", ErrBuildQuery, column, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: setFlag(%s) - execute update: %v", ErrExecQuery, column, err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return ErrBookingNotFound
	}
	return nil
}

// scanner abstracts *sql.Row and *sql.Rows
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(s scanner) (*domain.Booking, error) {
	var b domain.Booking
	var createdAt, updatedAt sql.NullTime

	err := s.Scan(
		&b.ID,
		&b.WindowID,
		&b.ClientName,
		&b.ClientEmail,
		&b.ClientPhone,
		&b.ServiceType,
		&b.Message,
		&b.Status,
		&b.PreferredDate,
		&b.PreferredTime,
		&b.NotificationSent,
		&b.ConfirmationSent,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time
	return &b, nil
}

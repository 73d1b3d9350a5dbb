// Package operator stores the studio operators who sign in to the admin area.
package operator

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/estudioluz/booking-service/pkg/psqlbuilder"
	"github.com/estudioluz/booking-service/pkg/txmanager"
)

var (
	// ErrOperatorNotFound is returned when no operator matches the lookup
	ErrOperatorNotFound = errors.New("operator.repository: operator not found")

	// ErrBuildQuery is returned when building the SQL query fails
	ErrBuildQuery = errors.New("operator.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL query fails
	ErrExecQuery = errors.New("operator.repository: failed to execute query")
)

// Operator is a studio staff account. Phone is stored digits-only and is the
// login identifier.
type Operator struct {
	ID           uuid.UUID
	Name         string
	Phone        string
	PasswordHash string
	CreatedAt    time.Time
}

// DBExecutor is the query surface the repository needs
type DBExecutor = txmanager.Executor

// Repository reads operator accounts
type Repository struct {
	db DBExecutor
}

// NewRepository creates an operator repository
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByPhone fetches an operator by normalized phone digits
func (r *Repository) GetByPhone(ctx context.Context, phone string) (*Operator, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "phone", "password_hash", "created_at").
		From("operators").
		Where(squirrel.Eq{"phone": phone}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByPhone - build select query: %v", ErrBuildQuery, err)
	}

	var op Operator
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&op.ID,
		&op.Name,
		&op.Phone,
		&op.PasswordHash,
		&op.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOperatorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByPhone - scan operator: %v", ErrExecQuery, err)
	}

	return &op, nil
}

// Package txmanager carries a *sql.Tx through context so repositories can
// join an ambient transaction without knowing about it.
package txmanager

import (
	"context"
	"database/sql"
	"fmt"
)

// Executor is the query surface shared by *sql.DB and *sql.Tx
type Executor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

type ctxKey struct{}

// Manager runs functions inside database transactions
type Manager struct {
	db *sql.DB
}

// NewManager creates a transaction manager over the given pool
func NewManager(db *sql.DB) *Manager {
	return &Manager{db: db}
}

// Do runs fn inside a transaction with default isolation.
// The transaction is injected into the context passed to fn; any repository
// resolving its executor via GetExecutor joins it automatically.
// fn returning an error rolls the transaction back.
func (m *Manager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("txmanager: begin: %w", err)
	}

	txCtx := context.WithValue(ctx, ctxKey{}, tx)

	if err := fn(txCtx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("txmanager: rollback after %v: %w", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("txmanager: commit: %w", err)
	}
	return nil
}

// GetExecutor returns the transaction carried by ctx, or fallback when
// no transaction is active.
func GetExecutor(ctx context.Context, fallback Executor) Executor {
	if tx, ok := ctx.Value(ctxKey{}).(*sql.Tx); ok {
		return tx
	}
	return fallback
}

// IsInTransaction reports whether ctx carries an active transaction
func IsInTransaction(ctx context.Context) bool {
	_, ok := ctx.Value(ctxKey{}).(*sql.Tx)
	return ok
}

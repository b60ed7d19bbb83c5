package db

import (
	"context"
	"database/sql"
	"fmt"
)

// DBTX is satisfied by both *sql.DB and *sql.Tx. Repositories take a DBTX so
// the same repo type works inside and outside a unit of work.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

var (
	_ DBTX = (*sql.DB)(nil)
	_ DBTX = (*sql.Tx)(nil)
)

// TxFunc receives a DBTX backed by a *sql.Tx; callers build tx-scoped
// repositories from it.
type TxFunc func(ctx context.Context, tx DBTX) error

// UnitOfWork manages transactional boundaries.
type UnitOfWork interface {
	// WithinTx commits when fn succeeds and rolls back otherwise.
	WithinTx(ctx context.Context, fn func(ctx context.Context, tx DBTX) error) error
	// WithinReadTx gives fn one consistent snapshot for several reads. The
	// transaction is always rolled back, so writes made through it are lost.
	WithinReadTx(ctx context.Context, fn func(ctx context.Context, tx DBTX) error) error
}

// SQLiteUnitOfWork implements UnitOfWork using database/sql transactions.
type SQLiteUnitOfWork struct {
	db *sql.DB
}

func NewSQLiteUnitOfWork(db *sql.DB) *SQLiteUnitOfWork {
	return &SQLiteUnitOfWork{db: db}
}

func (u *SQLiteUnitOfWork) WithinTx(ctx context.Context, fn func(ctx context.Context, tx DBTX) error) error {
	return u.run(ctx, fn, true)
}

func (u *SQLiteUnitOfWork) WithinReadTx(ctx context.Context, fn func(ctx context.Context, tx DBTX) error) error {
	return u.run(ctx, fn, false)
}

func (u *SQLiteUnitOfWork) run(ctx context.Context, fn TxFunc, commit bool) error {
	tx, err := u.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	fnErr := fn(ctx, tx)
	if fnErr != nil || !commit {
		if rbErr := tx.Rollback(); rbErr != nil {
			if fnErr == nil {
				return fmt.Errorf("ending read transaction: %w", rbErr)
			}
			return fmt.Errorf("rollback failed: %v (original error: %w)", rbErr, fnErr)
		}
		return fnErr
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/alexanderramin/homekeep/internal/db"
)

// FailOnNthExecUoW injects Err on the Nth write inside WithinTx, counted
// from 1, so tests can break a multi-row write part way through and check
// that nothing was kept. When Table is set only statements touching that
// table are counted. Reads and WithinReadTx pass through untouched.
type FailOnNthExecUoW struct {
	DB     *sql.DB
	FailOn int32
	Table  string
	Err    error
}

var _ db.UnitOfWork = (*FailOnNthExecUoW)(nil)

func (u *FailOnNthExecUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	tx, err := u.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	wrapped := &failOnNthExec{DBTX: tx, failOn: u.FailOn, table: strings.ToLower(u.Table), err: u.Err}
	if fnErr := fn(ctx, wrapped); fnErr != nil {
		_ = tx.Rollback()
		return fnErr
	}
	return tx.Commit()
}

func (u *FailOnNthExecUoW) WithinReadTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	return db.NewSQLiteUnitOfWork(u.DB).WithinReadTx(ctx, fn)
}

type failOnNthExec struct {
	db.DBTX
	count  atomic.Int32
	failOn int32
	table  string
	err    error
}

func (f *failOnNthExec) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if f.table == "" || strings.Contains(strings.ToLower(query), " "+f.table+" ") {
		if n := f.count.Add(1); n == f.failOn {
			return nil, f.err
		}
	}
	return f.DBTX.ExecContext(ctx, query, args...)
}

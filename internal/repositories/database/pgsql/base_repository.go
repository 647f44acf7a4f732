package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DBConn is the subset of pgxpool.Pool the repositories use. Everything here
// is read-only: the revaluation engine never writes to the ledger store.
type DBConn interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var _ DBConn = (*pgxpool.Pool)(nil)

// BaseRepository provides common functionality for all repositories.
type BaseRepository struct {
	Pool DBConn
}

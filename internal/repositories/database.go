package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Database is the pgx query surface the repositories run against. It is
// satisfied by *pgxpool.Pool, pgx.Tx and pgxmock pools alike, so the same
// repository can serve pooled reads and transaction-scoped writes.
type Database interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// TxBeginner is a Database that can open transactions.
type TxBeginner interface {
	Database
	Begin(ctx context.Context) (pgx.Tx, error)
}

package clickhouse

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

import (
	"context"
	"time"
)

type (
	// Metrics records repository operation outcomes.
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}

	// Conn is the subset of a ClickHouse connection used by the repository.
	Conn interface {
		PrepareBatch(ctx context.Context, query string) (Batch, error)
		Query(ctx context.Context, query string, args ...any) (Rows, error)
		Close() error
	}

	// Batch is a prepared insert.
	Batch interface {
		Append(v ...any) error
		Send() error
		Abort() error
	}

	// Rows iterates a query result.
	Rows interface {
		Next() bool
		Scan(dest ...any) error
		Err() error
		Close() error
	}
)

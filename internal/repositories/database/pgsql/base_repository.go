package pgsql

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// WithTx runs fn inside a database transaction. The transaction is committed
// only when fn returns nil; every other exit path, including panics, rolls it
// back via the deferred Rollback.
func (r *BaseRepository) WithTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	// No-op once the transaction has been committed.
	defer func() {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			slog.ErrorContext(ctx, "Failed to roll back transaction", slog.String("error", rbErr.Error()))
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// existsQuery runs an EXISTS query with the given arguments.
func (r *BaseRepository) existsQuery(ctx context.Context, query string, args ...any) (bool, error) {
	var exists bool
	if err := r.Pool.QueryRow(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to run existence check: %w", err)
	}
	return exists, nil
}

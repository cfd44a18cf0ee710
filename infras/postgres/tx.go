package postgres

//go:generate go run go.uber.org/mock/mockgen -source=./tx.go -destination=./mocks/tx_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

// Advisory lock classes, the first argument to pg_advisory_xact_lock. Each
// class gets its own key space so room locks never collide with future lock
// users.
const (
	LockClassRoomBooking = int32(1)
)

// Txer runs a function inside a single write transaction, rolling back on
// any error. The returned error is the function's own error; rollback
// failures are logged, not surfaced.
type Txer interface {
	WithTransaction(ctx context.Context, fn func(tx *sqlx.Tx) error) error
}

func (c *Connection) WithTransaction(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := c.Write.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Error().Err(rbErr).Msg("failed to roll back transaction")
		}

		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// AdvisoryLock takes a transaction-scoped advisory lock on (class, key).
// The lock is released automatically at commit or rollback. Serializing the
// availability check and the booking insert per room goes through here.
func AdvisoryLock(ctx context.Context, tx *sqlx.Tx, class int32, key int64) error {
	if _, err := tx.ExecContext(ctx, "SELECT pg_advisory_xact_lock($1, $2)", class, key); err != nil {
		return fmt.Errorf("failed to take advisory lock (%d, %d): %w", class, key, err)
	}

	return nil
}

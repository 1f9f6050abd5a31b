package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// Beginner is satisfied by *pgxpool.Pool and *pgx.Conn.
type Beginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// TransactionManager runs work inside a single database transaction
type TransactionManager interface {
	InTx(ctx context.Context, fn func(repo BaseRepository) error) error
}

// PoolTransactionManager implements TransactionManager on top of a pool
type PoolTransactionManager struct {
	db   Beginner
	base BaseRepository
}

// NewTransactionManager creates a transaction manager that hands base, bound
// to the open transaction, to each unit of work
func NewTransactionManager(db Beginner, base BaseRepository) TransactionManager {
	return &PoolTransactionManager{db: db, base: base}
}

// InTx commits when fn returns nil and rolls back otherwise. A rollback
// failure is joined to fn's error.
func (m *PoolTransactionManager) InTx(ctx context.Context, fn func(repo BaseRepository) error) error {
	tx, err := m.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}

	if err := fn(m.base.WithTx(tx)); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			return errors.Join(err, fmt.Errorf("rollback: %w", rbErr))
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

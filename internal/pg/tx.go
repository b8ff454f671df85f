package pg

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type TransactionalFn func(ctx context.Context) error

type TXManager interface {
	Begin(ctx context.Context, fn TransactionalFn) error
}

type TxManager struct {
	pool Beginner
}

func NewTXManager(pool Beginner) *TxManager {
	return &TxManager{pool: pool}
}

// Begin runs fn inside a read committed transaction. A nested call joins
// the transaction already stored in ctx. The transaction is committed only
// if fn returns nil.
func (m *TxManager) Begin(ctx context.Context, fn TransactionalFn) (err error) {
	if _, ok := txFromContext(ctx); ok {
		return fn(ctx)
	}

	tx, err := m.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		zap.L().Error("can't begin transaction", zap.Error(err))
		return fmt.Errorf("begin tx: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(ctx)
			panic(p)
		}
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
				zap.L().Error("can't rollback transaction", zap.Error(rbErr))
			}
		}
	}()

	if err = fn(withTx(ctx, tx)); err != nil {
		return err
	}

	if err = tx.Commit(ctx); err != nil {
		zap.L().Error("can't commit transaction", zap.Error(err))
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

package docstore

import (
	"context"
	"log/slog"
	"sync"

	"restaurant-booking/internal/usecase/shared"
)

// UnitOfWork serialises writers within the process; backends implementing TxBackend
// extend the exclusion to other processes.
type UnitOfWork struct {
	mu      sync.Mutex
	backend Backend
	reads   *Store
	writes  *Store
	logger  *slog.Logger
}

func NewUnitOfWork(backend Backend, logger *slog.Logger) *UnitOfWork {
	return &UnitOfWork{
		backend: backend,
		reads:   NewReadStore(backend, logger),
		writes:  NewStore(backend, logger),
		logger:  logger,
	}
}

var _ shared.UnitOfWork = (*UnitOfWork)(nil)

func (u *UnitOfWork) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Store) error) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	txb, ok := u.backend.(TxBackend)
	if !ok {
		return fn(ctx, u.writes)
	}
	return txb.InTx(ctx, func(ctx context.Context, tx Backend) error {
		return fn(ctx, NewStore(tx, u.logger))
	})
}

func (u *UnitOfWork) Reads() shared.Store {
	return u.reads
}

// SeedDefaults stores the default configuration if none exists yet.
func (u *UnitOfWork) SeedDefaults(ctx context.Context) error {
	return u.Within(ctx, func(ctx context.Context, tx shared.Store) error {
		_, err := tx.LoadConfig(ctx)
		return err
	})
}

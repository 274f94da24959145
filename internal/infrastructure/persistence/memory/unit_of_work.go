package memory

import (
	"context"

	"github.com/auvet/auvet-backend/internal/domain/ports"
)

type txKey struct{}

// UnitOfWork implementa ports.UnitOfWork sobre o Store.
// Transações e escritas avulsas são serializadas; em caso de erro ou panic o estado
// anterior à transação é restaurado.
type UnitOfWork struct {
	store *Store
}

// NewUnitOfWork cria um novo UnitOfWork
func NewUnitOfWork(store *Store) ports.UnitOfWork {
	return &UnitOfWork{store: store}
}

func (uow *UnitOfWork) WithTransaction(ctx context.Context, fn func(context.Context) error) error {
	if ctx.Value(txKey{}) != nil {
		return fn(ctx)
	}

	uow.store.txMu.Lock()
	defer uow.store.txMu.Unlock()

	snap := uow.store.snapshot()
	committed := false
	defer func() {
		if !committed {
			uow.store.restore(snap)
		}
	}()

	if err := fn(context.WithValue(ctx, txKey{}, true)); err != nil {
		return err
	}

	committed = true
	return nil
}

package database

import (
	"context"

	"gorm.io/gorm"

	"github.com/auvet/auvet-backend/internal/domain/ports"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const txKey contextKey = "tx"

// UnitOfWork implementa ports.UnitOfWork
type UnitOfWork struct {
	db *gorm.DB
}

// NewUnitOfWork cria um novo UnitOfWork
func NewUnitOfWork(db *gorm.DB) ports.UnitOfWork {
	return &UnitOfWork{db: db}
}

// WithTransaction executa fn em uma transação; qualquer erro (ou panic) faz rollback.
// Chamadas aninhadas reutilizam a transação já aberta.
func (uow *UnitOfWork) WithTransaction(ctx context.Context, fn func(context.Context) error) error {
	if _, ok := ctx.Value(txKey).(*gorm.DB); ok {
		return fn(ctx)
	}

	return uow.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey, tx))
	})
}

// conn extrai DB do contexto (para suportar transações)
func conn(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey).(*gorm.DB); ok {
		return tx.WithContext(ctx)
	}
	return db.WithContext(ctx)
}

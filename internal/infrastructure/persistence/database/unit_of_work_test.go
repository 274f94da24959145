package database

import (
	"context"
	"errors"
	"testing"
)

func TestUnitOfWork_WithTransaction(t *testing.T) {
	db := newTestDB(t)
	uow := NewUnitOfWork(db)
	usuarios := NewUsuarioRepository(db)
	funcionarios := NewFuncionarioRepository(db)
	ctx := context.Background()

	t.Run("confirma as escritas quando fn não falha", func(t *testing.T) {
		err := uow.WithTransaction(ctx, func(txCtx context.Context) error {
			if err := usuarios.Create(txCtx, novoUsuario("11111111111")); err != nil {
				return err
			}
			return funcionarios.Create(txCtx, novoFuncionario("11111111111"))
		})
		if err != nil {
			t.Fatalf("WithTransaction: %v", err)
		}

		if found, _ := funcionarios.FindByCPF(ctx, "11111111111"); found == nil {
			t.Error("esperava funcionário confirmado")
		}
	})

	t.Run("desfaz o usuário quando a criação do funcionário falha", func(t *testing.T) {
		boom := errors.New("boom")
		err := uow.WithTransaction(ctx, func(txCtx context.Context) error {
			if err := usuarios.Create(txCtx, novoUsuario("22222222222")); err != nil {
				return err
			}
			return boom
		})
		if !errors.Is(err, boom) {
			t.Fatalf("esperava erro original, obteve %v", err)
		}

		found, err := usuarios.FindByCPF(ctx, "22222222222")
		if err != nil {
			t.Fatalf("FindByCPF: %v", err)
		}
		if found != nil {
			t.Error("usuário deveria ter sido desfeito pelo rollback")
		}
	})

	t.Run("transação aninhada reutiliza a externa", func(t *testing.T) {
		boom := errors.New("boom")
		err := uow.WithTransaction(ctx, func(txCtx context.Context) error {
			if err := uow.WithTransaction(txCtx, func(inner context.Context) error {
				return usuarios.Create(inner, novoUsuario("33333333333"))
			}); err != nil {
				return err
			}
			return boom
		})
		if !errors.Is(err, boom) {
			t.Fatalf("esperava erro original, obteve %v", err)
		}

		if found, _ := usuarios.FindByCPF(ctx, "33333333333"); found != nil {
			t.Error("escrita interna deveria ter sido desfeita junto com a externa")
		}
	})
}

func TestHealthChecker_Ping(t *testing.T) {
	db := newTestDB(t)
	checker := NewHealthChecker(db)

	if err := checker.Ping(context.Background()); err != nil {
		t.Fatalf("esperava ping com sucesso, obteve %v", err)
	}

	if err := Close(db); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := checker.Ping(context.Background()); err == nil {
		t.Error("esperava erro após fechar o pool")
	}
}

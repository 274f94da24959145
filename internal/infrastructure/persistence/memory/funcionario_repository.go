package memory

import (
	"context"

	"github.com/auvet/auvet-backend/internal/domain/entities"
	"github.com/auvet/auvet-backend/internal/domain/repositories"
)

type funcionarioRepo struct {
	store *Store
}

// NewFuncionarioRepository cria um repositório de funcionários sobre o Store
func NewFuncionarioRepository(store *Store) repositories.FuncionarioRepository {
	return &funcionarioRepo{store: store}
}

func (r *funcionarioRepo) Create(ctx context.Context, funcionario *entities.Funcionario) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	defer r.store.lockWrites(ctx)()
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, exists := r.store.funcionarios[funcionario.CPF]; exists {
		return ErrDuplicateKey
	}

	// Mesmos defaults do schema relacional
	stored := cloneFuncionario(*funcionario)
	stored.ApplyDefaults()
	r.store.funcionarios[stored.CPF] = funcionarioRow{seq: r.store.nextSeq(), value: stored}

	*funcionario = cloneFuncionario(stored)
	return nil
}

func (r *funcionarioRepo) FindByCPF(ctx context.Context, cpf string) (*entities.Funcionario, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	row, ok := r.store.funcionarios[cpf]
	if !ok {
		return nil, nil
	}
	funcionario := cloneFuncionario(row.value)
	return &funcionario, nil
}

func (r *funcionarioRepo) FindAll(ctx context.Context) ([]*entities.Funcionario, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	rows := make([]funcionarioRow, 0, len(r.store.funcionarios))
	for _, row := range r.store.funcionarios {
		rows = append(rows, row)
	}
	r.store.mu.RUnlock()

	sortBySeq(rows, func(row funcionarioRow) uint64 { return row.seq })

	out := make([]*entities.Funcionario, 0, len(rows))
	for _, row := range rows {
		funcionario := cloneFuncionario(row.value)
		out = append(out, &funcionario)
	}
	return out, nil
}

func (r *funcionarioRepo) Update(ctx context.Context, cpf string, update repositories.FuncionarioUpdate) (*entities.Funcionario, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	defer r.store.lockWrites(ctx)()
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	row, ok := r.store.funcionarios[cpf]
	if !ok {
		return nil, nil
	}
	update.Apply(&row.value)
	r.store.funcionarios[cpf] = row

	funcionario := cloneFuncionario(row.value)
	return &funcionario, nil
}

func (r *funcionarioRepo) Delete(ctx context.Context, cpf string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	defer r.store.lockWrites(ctx)()
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.funcionarios[cpf]; !ok {
		return false, nil
	}
	delete(r.store.funcionarios, cpf)
	return true, nil
}

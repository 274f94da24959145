package memory

import (
	"context"

	"github.com/auvet/auvet-backend/internal/domain/entities"
	"github.com/auvet/auvet-backend/internal/domain/repositories"
)

type usuarioRepo struct {
	store *Store
}

// NewUsuarioRepository cria um repositório de usuários sobre o Store
func NewUsuarioRepository(store *Store) repositories.UsuarioRepository {
	return &usuarioRepo{store: store}
}

func (r *usuarioRepo) Create(ctx context.Context, usuario *entities.Usuario) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	defer r.store.lockWrites(ctx)()
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, exists := r.store.usuarios[usuario.CPF]; exists {
		return ErrDuplicateKey
	}
	r.store.usuarios[usuario.CPF] = usuarioRow{seq: r.store.nextSeq(), value: *usuario}
	return nil
}

func (r *usuarioRepo) FindByCPF(ctx context.Context, cpf string) (*entities.Usuario, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	row, ok := r.store.usuarios[cpf]
	if !ok {
		return nil, nil
	}
	usuario := row.value
	return &usuario, nil
}

func (r *usuarioRepo) FindAll(ctx context.Context) ([]*entities.Usuario, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	rows := make([]usuarioRow, 0, len(r.store.usuarios))
	for _, row := range r.store.usuarios {
		rows = append(rows, row)
	}
	r.store.mu.RUnlock()

	sortBySeq(rows, func(row usuarioRow) uint64 { return row.seq })

	out := make([]*entities.Usuario, 0, len(rows))
	for _, row := range rows {
		usuario := row.value
		out = append(out, &usuario)
	}
	return out, nil
}

func (r *usuarioRepo) Update(ctx context.Context, cpf string, update repositories.UsuarioUpdate) (*entities.Usuario, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	defer r.store.lockWrites(ctx)()
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	row, ok := r.store.usuarios[cpf]
	if !ok {
		return nil, nil
	}
	update.Apply(&row.value)
	r.store.usuarios[cpf] = row

	usuario := row.value
	return &usuario, nil
}

func (r *usuarioRepo) Delete(ctx context.Context, cpf string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	defer r.store.lockWrites(ctx)()
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.usuarios[cpf]; !ok {
		return false, nil
	}
	delete(r.store.usuarios, cpf)
	return true, nil
}

package repositories

import (
	"context"

	"github.com/auvet/auvet-backend/internal/domain/entities"
)

// UsuarioRepository define a interface para persistência de usuários.
// Ausência de registro é sinalizada por (nil, nil) ou false, nunca por erro.
type UsuarioRepository interface {
	Create(ctx context.Context, usuario *entities.Usuario) error
	FindByCPF(ctx context.Context, cpf string) (*entities.Usuario, error)
	FindAll(ctx context.Context) ([]*entities.Usuario, error)
	Update(ctx context.Context, cpf string, update UsuarioUpdate) (*entities.Usuario, error)
	Delete(ctx context.Context, cpf string) (bool, error)
}

// UsuarioUpdate contém os campos alteráveis de um usuário.
// Campos nil não são alterados.
type UsuarioUpdate struct {
	Nome  *string
	Email *string
	Senha *string
}

// IsEmpty indica se nenhum campo foi informado
func (u UsuarioUpdate) IsEmpty() bool {
	return u.Nome == nil && u.Email == nil && u.Senha == nil
}

// Apply aplica os campos informados sobre o usuário
func (u UsuarioUpdate) Apply(usuario *entities.Usuario) {
	if u.Nome != nil {
		usuario.Nome = *u.Nome
	}
	if u.Email != nil {
		usuario.Email = *u.Email
	}
	if u.Senha != nil {
		usuario.Senha = *u.Senha
	}
}

package repositories

import (
	"context"

	"github.com/auvet/auvet-backend/internal/domain/entities"
)

// FuncionarioRepository define a interface para persistência de funcionários.
// Ausência de registro é sinalizada por (nil, nil) ou false, nunca por erro.
type FuncionarioRepository interface {
	Create(ctx context.Context, funcionario *entities.Funcionario) error
	FindByCPF(ctx context.Context, cpf string) (*entities.Funcionario, error)
	FindAll(ctx context.Context) ([]*entities.Funcionario, error)
	Update(ctx context.Context, cpf string, update FuncionarioUpdate) (*entities.Funcionario, error)
	Delete(ctx context.Context, cpf string) (bool, error)
}

// FuncionarioUpdate contém os campos alteráveis de um funcionário.
// Campos nil não são alterados; ClearRegistroProfissional grava NULL no registro.
type FuncionarioUpdate struct {
	Cargo                     *string
	RegistroProfissional      *string
	ClearRegistroProfissional bool
	Status                    *string
	NivelAcesso               *int
}

// IsEmpty indica se nenhum campo foi informado
func (u FuncionarioUpdate) IsEmpty() bool {
	return u.Cargo == nil && u.RegistroProfissional == nil && !u.ClearRegistroProfissional &&
		u.Status == nil && u.NivelAcesso == nil
}

// Apply aplica os campos informados sobre o funcionário
func (u FuncionarioUpdate) Apply(funcionario *entities.Funcionario) {
	if u.Cargo != nil {
		funcionario.Cargo = *u.Cargo
	}
	switch {
	case u.ClearRegistroProfissional:
		funcionario.RegistroProfissional = nil
	case u.RegistroProfissional != nil:
		registro := *u.RegistroProfissional
		funcionario.RegistroProfissional = &registro
	}
	if u.Status != nil {
		funcionario.Status = *u.Status
	}
	if u.NivelAcesso != nil {
		funcionario.NivelAcesso = *u.NivelAcesso
	}
}

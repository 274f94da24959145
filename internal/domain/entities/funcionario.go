package entities

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidFuncionarioData = errors.New("invalid funcionario data")
)

const (
	// StatusAtivo é o status aplicado quando nenhum é informado
	StatusAtivo = "ativo"
	// NivelAcessoPadrao é o nível de acesso aplicado quando nenhum é informado
	NivelAcessoPadrao = 1
)

// Funcionario representa os dados de cargo de um Usuario.
// Compartilha o CPF com o Usuario; a relação é garantida apenas na criação.
type Funcionario struct {
	CPF                  string
	Cargo                string
	RegistroProfissional *string
	Status               string
	NivelAcesso          int
}

// ApplyDefaults preenche status e nível de acesso quando ausentes
func (f *Funcionario) ApplyDefaults() {
	if f.Status == "" {
		f.Status = StatusAtivo
	}
	if f.NivelAcesso == 0 {
		f.NivelAcesso = NivelAcessoPadrao
	}
	if f.RegistroProfissional != nil && *f.RegistroProfissional == "" {
		f.RegistroProfissional = nil
	}
}

// Validate valida regras de negócio da entidade Funcionario
func (f *Funcionario) Validate() error {
	if strings.TrimSpace(f.CPF) == "" {
		return fmt.Errorf("%w: cpf is required", ErrInvalidFuncionarioData)
	}

	if f.Cargo == "" {
		return fmt.Errorf("%w: cargo is required", ErrInvalidFuncionarioData)
	}

	if f.NivelAcesso < 0 {
		return fmt.Errorf("%w: nivel de acesso must not be negative", ErrInvalidFuncionarioData)
	}

	return nil
}

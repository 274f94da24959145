package entities

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrInvalidUsuarioData = errors.New("invalid usuario data")
)

// Usuario representa a conta de acesso de uma pessoa da clínica.
// O CPF é a chave primária e é compartilhado com o Funcionario correspondente.
type Usuario struct {
	CPF          string
	Nome         string
	Email        string
	Senha        string // armazenada como recebida, sem hash
	DataCadastro time.Time
}

// Validate verifica a presença dos campos obrigatórios
func (u *Usuario) Validate() error {
	if strings.TrimSpace(u.CPF) == "" {
		return fmt.Errorf("%w: cpf is required", ErrInvalidUsuarioData)
	}

	if u.Nome == "" {
		return fmt.Errorf("%w: nome is required", ErrInvalidUsuarioData)
	}

	if u.Email == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidUsuarioData)
	}

	if u.Senha == "" {
		return fmt.Errorf("%w: senha is required", ErrInvalidUsuarioData)
	}

	return nil
}

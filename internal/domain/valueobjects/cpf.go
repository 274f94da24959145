package valueobjects

import (
	"errors"
	"strings"
)

var (
	ErrEmptyCPF = errors.New("cpf is required")
)

// CPF é o identificador nacional usado como chave de Usuario e Funcionario.
// O valor é opaco: apenas a presença é verificada, nunca o formato.
type CPF struct {
	value string
}

// NewCPF cria um CPF com o valor recebido sem alterações.
// Valores vazios ou só com espaços são rejeitados.
func NewCPF(cpf string) (CPF, error) {
	if strings.TrimSpace(cpf) == "" {
		return CPF{}, ErrEmptyCPF
	}

	return CPF{value: cpf}, nil
}

// String retorna o valor do CPF
func (c CPF) String() string {
	return c.value
}

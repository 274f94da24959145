package events

import (
	"time"

	"github.com/auvet/auvet-backend/internal/domain/entities"
)

// Type identifica o tipo de alteração ocorrida
type Type string

const (
	FuncionarioCriado     Type = "funcionario.criado"
	FuncionarioAtualizado Type = "funcionario.atualizado"
	FuncionarioRemovido   Type = "funcionario.removido"
)

// Event descreve uma alteração já persistida em um funcionário
type Event struct {
	Type       Type      `json:"type"`
	CPF        string    `json:"cpf"`
	Data       any       `json:"data,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

// New cria um evento com o horário atual em UTC
func New(t Type, cpf string, data any) Event {
	return Event{
		Type:       t,
		CPF:        cpf,
		Data:       data,
		OccurredAt: time.Now().UTC(),
	}
}

// FuncionarioPayload é o corpo dos eventos de funcionário, com as mesmas chaves da API REST
type FuncionarioPayload struct {
	CPF                  string  `json:"cpf"`
	Cargo                string  `json:"cargo"`
	RegistroProfissional *string `json:"registroProfissional"`
	Status               string  `json:"status"`
	NivelAcesso          int     `json:"nivelAcesso"`
}

// NewFuncionarioPayload copia o estado gravado do funcionário para o evento
func NewFuncionarioPayload(funcionario *entities.Funcionario) FuncionarioPayload {
	return FuncionarioPayload{
		CPF:                  funcionario.CPF,
		Cargo:                funcionario.Cargo,
		RegistroProfissional: funcionario.RegistroProfissional,
		Status:               funcionario.Status,
		NivelAcesso:          funcionario.NivelAcesso,
	}
}

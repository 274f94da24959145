package dto

import (
	"encoding/json"

	"github.com/auvet/auvet-backend/internal/domain/entities"
	"github.com/auvet/auvet-backend/internal/domain/repositories"
	"github.com/auvet/auvet-backend/internal/services"
)

// CreateFuncionarioRequest representa a requisição para criar um funcionário
// (e o usuário associado) em uma única chamada
type CreateFuncionarioRequest struct {
	CPF                  string  `json:"cpf" binding:"required"`
	Nome                 string  `json:"nome" binding:"required"`
	Email                string  `json:"email" binding:"required"`
	Senha                string  `json:"senha" binding:"required"`
	Cargo                string  `json:"cargo" binding:"required"`
	RegistroProfissional *string `json:"registroProfissional"`
	Status               string  `json:"status"`
	NivelAcesso          int     `json:"nivelAcesso"`
}

// ToUsuario extrai os dados de usuário da requisição
func (r CreateFuncionarioRequest) ToUsuario() *entities.Usuario {
	return &entities.Usuario{
		CPF:   r.CPF,
		Nome:  r.Nome,
		Email: r.Email,
		Senha: r.Senha,
	}
}

// ToInput extrai os dados de cargo da requisição
func (r CreateFuncionarioRequest) ToInput() services.FuncionarioInput {
	return services.FuncionarioInput{
		Cargo:                r.Cargo,
		RegistroProfissional: r.RegistroProfissional,
		Status:               r.Status,
		NivelAcesso:          r.NivelAcesso,
	}
}

// NullableString distingue um campo ausente de um null explícito no JSON
type NullableString struct {
	Present bool
	Value   *string
}

func (n *NullableString) UnmarshalJSON(data []byte) error {
	n.Present = true
	if string(data) == "null" {
		n.Value = nil
		return nil
	}

	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	n.Value = &value
	return nil
}

// UpdateFuncionarioRequest representa a requisição para atualizar um funcionário.
// Campos ausentes não são alterados; o CPF vem da rota.
// registroProfissional null (ou "") remove o registro.
type UpdateFuncionarioRequest struct {
	Cargo                *string        `json:"cargo"`
	RegistroProfissional NullableString `json:"registroProfissional" swaggertype:"string"`
	Status               *string        `json:"status"`
	NivelAcesso          *int           `json:"nivelAcesso"`
}

// ToUpdate converte a requisição para o formato do repositório
func (r UpdateFuncionarioRequest) ToUpdate() repositories.FuncionarioUpdate {
	update := repositories.FuncionarioUpdate{
		Cargo:       r.Cargo,
		Status:      r.Status,
		NivelAcesso: r.NivelAcesso,
	}

	if r.RegistroProfissional.Present {
		if r.RegistroProfissional.Value == nil || *r.RegistroProfissional.Value == "" {
			update.ClearRegistroProfissional = true
		} else {
			update.RegistroProfissional = r.RegistroProfissional.Value
		}
	}
	return update
}

// FuncionarioResponse representa a resposta de um funcionário
type FuncionarioResponse struct {
	CPF                  string  `json:"cpf"`
	Cargo                string  `json:"cargo"`
	RegistroProfissional *string `json:"registroProfissional"`
	Status               string  `json:"status"`
	NivelAcesso          int     `json:"nivelAcesso"`
}

// ToFuncionarioResponse converte uma entidade Funcionario para FuncionarioResponse
func ToFuncionarioResponse(funcionario *entities.Funcionario) FuncionarioResponse {
	return FuncionarioResponse{
		CPF:                  funcionario.CPF,
		Cargo:                funcionario.Cargo,
		RegistroProfissional: funcionario.RegistroProfissional,
		Status:               funcionario.Status,
		NivelAcesso:          funcionario.NivelAcesso,
	}
}

// ToFuncionarioResponses converte uma lista de funcionários; nunca retorna nil
func ToFuncionarioResponses(funcionarios []*entities.Funcionario) []FuncionarioResponse {
	responses := make([]FuncionarioResponse, len(funcionarios))
	for i, funcionario := range funcionarios {
		responses[i] = ToFuncionarioResponse(funcionario)
	}
	return responses
}

package dto

import (
	"time"

	"github.com/auvet/auvet-backend/internal/domain/entities"
)

// UsuarioResponse representa a resposta de um usuário (a senha nunca é exposta)
type UsuarioResponse struct {
	CPF          string    `json:"cpf"`
	Nome         string    `json:"nome"`
	Email        string    `json:"email"`
	DataCadastro time.Time `json:"dataCadastro"`
}

// ToUsuarioResponse converte uma entidade Usuario para UsuarioResponse
func ToUsuarioResponse(usuario *entities.Usuario) UsuarioResponse {
	return UsuarioResponse{
		CPF:          usuario.CPF,
		Nome:         usuario.Nome,
		Email:        usuario.Email,
		DataCadastro: usuario.DataCadastro,
	}
}

// ToUsuarioResponses converte uma lista de usuários; nunca retorna nil
func ToUsuarioResponses(usuarios []*entities.Usuario) []UsuarioResponse {
	responses := make([]UsuarioResponse, len(usuarios))
	for i, usuario := range usuarios {
		responses[i] = ToUsuarioResponse(usuario)
	}
	return responses
}

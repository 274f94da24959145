package database

import "time"

// UsuarioModel é o model GORM para usuários
type UsuarioModel struct {
	CPF          string    `gorm:"column:cpf;type:varchar(14);primaryKey"`
	Nome         string    `gorm:"column:nome;type:varchar(255);not null"`
	Email        string    `gorm:"column:email;type:varchar(255);not null"`
	Senha        string    `gorm:"column:senha;type:varchar(255);not null"`
	DataCadastro time.Time `gorm:"column:data_cadastro;not null"`
}

func (UsuarioModel) TableName() string {
	return "usuario"
}

// FuncionarioModel é o model GORM para funcionários.
// Os defaults espelham os do schema: status 'ativo' e nível de acesso 1.
type FuncionarioModel struct {
	CPF                  string  `gorm:"column:cpf;type:varchar(14);primaryKey"`
	Cargo                string  `gorm:"column:cargo;type:varchar(100);not null"`
	RegistroProfissional *string `gorm:"column:registro_profissional;type:varchar(50)"`
	Status               string  `gorm:"column:status;type:varchar(20);not null;default:ativo"`
	NivelAcesso          int     `gorm:"column:nivel_acesso;not null;default:1"`
}

func (FuncionarioModel) TableName() string {
	return "funcionario"
}

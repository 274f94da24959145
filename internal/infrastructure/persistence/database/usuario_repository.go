package database

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/auvet/auvet-backend/internal/domain/entities"
	"github.com/auvet/auvet-backend/internal/domain/repositories"
)

// UsuarioRepository implementa repositories.UsuarioRepository
type UsuarioRepository struct {
	db *gorm.DB
}

// NewUsuarioRepository cria um novo UsuarioRepository
func NewUsuarioRepository(db *gorm.DB) repositories.UsuarioRepository {
	return &UsuarioRepository{db: db}
}

func (r *UsuarioRepository) Create(ctx context.Context, usuario *entities.Usuario) error {
	model := toUsuarioModel(usuario)

	if err := conn(ctx, r.db).Create(model).Error; err != nil {
		return err
	}

	*usuario = *toUsuarioEntity(model)
	return nil
}

func (r *UsuarioRepository) FindByCPF(ctx context.Context, cpf string) (*entities.Usuario, error) {
	var model UsuarioModel

	if err := conn(ctx, r.db).Where("cpf = ?", cpf).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return toUsuarioEntity(&model), nil
}

func (r *UsuarioRepository) FindAll(ctx context.Context) ([]*entities.Usuario, error) {
	var models []*UsuarioModel

	if err := conn(ctx, r.db).Order("data_cadastro").Find(&models).Error; err != nil {
		return nil, err
	}

	usuarios := make([]*entities.Usuario, 0, len(models))
	for _, model := range models {
		usuarios = append(usuarios, toUsuarioEntity(model))
	}
	return usuarios, nil
}

func (r *UsuarioRepository) Update(ctx context.Context, cpf string, update repositories.UsuarioUpdate) (*entities.Usuario, error) {
	if update.IsEmpty() {
		return r.FindByCPF(ctx, cpf)
	}

	fields := map[string]interface{}{}
	if update.Nome != nil {
		fields["nome"] = *update.Nome
	}
	if update.Email != nil {
		fields["email"] = *update.Email
	}
	if update.Senha != nil {
		fields["senha"] = *update.Senha
	}

	result := conn(ctx, r.db).Model(&UsuarioModel{}).Where("cpf = ?", cpf).Updates(fields)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}

	return r.FindByCPF(ctx, cpf)
}

func (r *UsuarioRepository) Delete(ctx context.Context, cpf string) (bool, error) {
	result := conn(ctx, r.db).Where("cpf = ?", cpf).Delete(&UsuarioModel{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Conversores
func toUsuarioModel(usuario *entities.Usuario) *UsuarioModel {
	return &UsuarioModel{
		CPF:          usuario.CPF,
		Nome:         usuario.Nome,
		Email:        usuario.Email,
		Senha:        usuario.Senha,
		DataCadastro: usuario.DataCadastro,
	}
}

func toUsuarioEntity(model *UsuarioModel) *entities.Usuario {
	return &entities.Usuario{
		CPF:          model.CPF,
		Nome:         model.Nome,
		Email:        model.Email,
		Senha:        model.Senha,
		DataCadastro: model.DataCadastro,
	}
}

package database

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/auvet/auvet-backend/internal/domain/entities"
	"github.com/auvet/auvet-backend/internal/domain/repositories"
)

// FuncionarioRepository implementa repositories.FuncionarioRepository
type FuncionarioRepository struct {
	db *gorm.DB
}

// NewFuncionarioRepository cria um novo FuncionarioRepository
func NewFuncionarioRepository(db *gorm.DB) repositories.FuncionarioRepository {
	return &FuncionarioRepository{db: db}
}

func (r *FuncionarioRepository) Create(ctx context.Context, funcionario *entities.Funcionario) error {
	model := toFuncionarioModel(funcionario)

	if err := conn(ctx, r.db).Create(model).Error; err != nil {
		return err
	}

	// Devolve os valores gravados, incluindo defaults do schema
	*funcionario = *toFuncionarioEntity(model)
	return nil
}

func (r *FuncionarioRepository) FindByCPF(ctx context.Context, cpf string) (*entities.Funcionario, error) {
	var model FuncionarioModel

	if err := conn(ctx, r.db).Where("cpf = ?", cpf).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return toFuncionarioEntity(&model), nil
}

func (r *FuncionarioRepository) FindAll(ctx context.Context) ([]*entities.Funcionario, error) {
	var models []*FuncionarioModel

	if err := conn(ctx, r.db).Find(&models).Error; err != nil {
		return nil, err
	}

	funcionarios := make([]*entities.Funcionario, 0, len(models))
	for _, model := range models {
		funcionarios = append(funcionarios, toFuncionarioEntity(model))
	}
	return funcionarios, nil
}

func (r *FuncionarioRepository) Update(ctx context.Context, cpf string, update repositories.FuncionarioUpdate) (*entities.Funcionario, error) {
	if update.IsEmpty() {
		return r.FindByCPF(ctx, cpf)
	}

	result := conn(ctx, r.db).Model(&FuncionarioModel{}).Where("cpf = ?", cpf).Updates(funcionarioFields(update))
	if result.Error != nil {
		return nil, result.Error
	}
	// Nenhuma linha afetada: CPF inexistente
	if result.RowsAffected == 0 {
		return nil, nil
	}

	return r.FindByCPF(ctx, cpf)
}

func (r *FuncionarioRepository) Delete(ctx context.Context, cpf string) (bool, error) {
	result := conn(ctx, r.db).Where("cpf = ?", cpf).Delete(&FuncionarioModel{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func funcionarioFields(update repositories.FuncionarioUpdate) map[string]interface{} {
	fields := map[string]interface{}{}
	if update.Cargo != nil {
		fields["cargo"] = *update.Cargo
	}
	switch {
	case update.ClearRegistroProfissional:
		fields["registro_profissional"] = nil
	case update.RegistroProfissional != nil:
		fields["registro_profissional"] = *update.RegistroProfissional
	}
	if update.Status != nil {
		fields["status"] = *update.Status
	}
	if update.NivelAcesso != nil {
		fields["nivel_acesso"] = *update.NivelAcesso
	}
	return fields
}

// Conversores
func toFuncionarioModel(funcionario *entities.Funcionario) *FuncionarioModel {
	return &FuncionarioModel{
		CPF:                  funcionario.CPF,
		Cargo:                funcionario.Cargo,
		RegistroProfissional: funcionario.RegistroProfissional,
		Status:               funcionario.Status,
		NivelAcesso:          funcionario.NivelAcesso,
	}
}

func toFuncionarioEntity(model *FuncionarioModel) *entities.Funcionario {
	return &entities.Funcionario{
		CPF:                  model.CPF,
		Cargo:                model.Cargo,
		RegistroProfissional: model.RegistroProfissional,
		Status:               model.Status,
		NivelAcesso:          model.NivelAcesso,
	}
}

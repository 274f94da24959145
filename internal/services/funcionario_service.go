package services

import (
	"context"

	"github.com/auvet/auvet-backend/internal/domain/entities"
	domainerrors "github.com/auvet/auvet-backend/internal/domain/errors"
	"github.com/auvet/auvet-backend/internal/domain/events"
	"github.com/auvet/auvet-backend/internal/domain/ports"
	"github.com/auvet/auvet-backend/internal/domain/repositories"
)

// FuncionarioService contém a lógica de negócio para funcionários
type FuncionarioService struct {
	usuarioService  *UsuarioService
	funcionarioRepo repositories.FuncionarioRepository
	uow             ports.UnitOfWork
	publisher       ports.EventPublisher
	logger          ports.Logger
}

// NewFuncionarioService cria um novo FuncionarioService.
// publisher pode ser nil quando ninguém consome eventos.
func NewFuncionarioService(
	usuarioService *UsuarioService,
	funcionarioRepo repositories.FuncionarioRepository,
	uow ports.UnitOfWork,
	publisher ports.EventPublisher,
	logger ports.Logger,
) *FuncionarioService {
	if publisher == nil {
		publisher = ports.NopPublisher{}
	}

	return &FuncionarioService{
		usuarioService:  usuarioService,
		funcionarioRepo: funcionarioRepo,
		uow:             uow,
		publisher:       publisher,
		logger:          logger.With("service", "funcionario"),
	}
}

// FuncionarioInput representa os dados de cargo usados na criação (sem o CPF)
type FuncionarioInput struct {
	Cargo                string
	RegistroProfissional *string
	Status               string
	NivelAcesso          int
}

// CreateFuncionario cria o usuário e o funcionário com o mesmo CPF.
// Falha com ErrUsuarioJaCadastrado ou ErrFuncionarioJaCadastrado se o CPF já existir
// em qualquer uma das tabelas. As duas inserções ocorrem na mesma transação.
func (s *FuncionarioService) CreateFuncionario(ctx context.Context, usuario *entities.Usuario, input FuncionarioInput) (*entities.Funcionario, error) {
	s.logger.Info("creating funcionario", "cpf", usuario.CPF)

	funcionario := &entities.Funcionario{
		CPF:                  usuario.CPF,
		Cargo:                input.Cargo,
		RegistroProfissional: input.RegistroProfissional,
		Status:               input.Status,
		NivelAcesso:          input.NivelAcesso,
	}
	funcionario.ApplyDefaults()

	if err := usuario.Validate(); err != nil {
		return nil, domainerrors.Wrap("funcionario.create", "invalid usuario", err)
	}
	if err := funcionario.Validate(); err != nil {
		return nil, domainerrors.Wrap("funcionario.create", "invalid funcionario", err)
	}

	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		existingUsuario, err := s.usuarioService.GetByCPF(txCtx, usuario.CPF)
		if err != nil {
			return err
		}
		if existingUsuario != nil {
			s.logger.Info("usuario already exists", "cpf", usuario.CPF)
			return domainerrors.ErrUsuarioJaCadastrado
		}

		existingFuncionario, err := s.funcionarioRepo.FindByCPF(txCtx, usuario.CPF)
		if err != nil {
			return domainerrors.Wrap("funcionario.create", "failed to fetch funcionario", err)
		}
		if existingFuncionario != nil {
			s.logger.Info("funcionario already exists", "cpf", usuario.CPF)
			return domainerrors.ErrFuncionarioJaCadastrado
		}

		if _, err := s.usuarioService.Create(txCtx, usuario); err != nil {
			return err
		}

		if err := s.funcionarioRepo.Create(txCtx, funcionario); err != nil {
			return domainerrors.Wrap("funcionario.create", "failed to insert funcionario", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("funcionario created", "cpf", funcionario.CPF, "cargo", funcionario.Cargo)
	s.publisher.Publish(ctx, events.New(events.FuncionarioCriado, funcionario.CPF, events.NewFuncionarioPayload(funcionario)))

	return funcionario, nil
}

// GetByCPF busca um funcionário; retorna (nil, nil) quando não existe
func (s *FuncionarioService) GetByCPF(ctx context.Context, cpf string) (*entities.Funcionario, error) {
	s.logger.Debug("fetching funcionario", "cpf", cpf)

	funcionario, err := s.funcionarioRepo.FindByCPF(ctx, cpf)
	if err != nil {
		return nil, domainerrors.Wrap("funcionario.get", "failed to fetch funcionario", err)
	}

	if funcionario != nil {
		s.logger.Debug("funcionario found", "cpf", cpf, "cargo", funcionario.Cargo)
	} else {
		s.logger.Debug("funcionario not found", "cpf", cpf)
	}

	return funcionario, nil
}

// GetAll lista todos os funcionários
func (s *FuncionarioService) GetAll(ctx context.Context) ([]*entities.Funcionario, error) {
	funcionarios, err := s.funcionarioRepo.FindAll(ctx)
	if err != nil {
		return nil, domainerrors.Wrap("funcionario.list", "failed to list funcionarios", err)
	}

	s.logger.Debug("funcionarios listed", "count", len(funcionarios))
	return funcionarios, nil
}

// Update altera os campos informados; retorna (nil, nil) quando o CPF não existe
func (s *FuncionarioService) Update(ctx context.Context, cpf string, update repositories.FuncionarioUpdate) (*entities.Funcionario, error) {
	s.logger.Info("updating funcionario", "cpf", cpf)

	funcionario, err := s.funcionarioRepo.Update(ctx, cpf, update)
	if err != nil {
		return nil, domainerrors.Wrap("funcionario.update", "failed to update funcionario", err)
	}

	if funcionario == nil {
		s.logger.Info("funcionario not found for update", "cpf", cpf)
		return nil, nil
	}

	s.logger.Info("funcionario updated", "cpf", cpf)
	s.publisher.Publish(ctx, events.New(events.FuncionarioAtualizado, cpf, events.NewFuncionarioPayload(funcionario)))

	return funcionario, nil
}

// Delete remove o funcionário; retorna false quando o CPF não existe.
// O usuário associado não é removido.
func (s *FuncionarioService) Delete(ctx context.Context, cpf string) (bool, error) {
	s.logger.Info("deleting funcionario", "cpf", cpf)

	deleted, err := s.funcionarioRepo.Delete(ctx, cpf)
	if err != nil {
		return false, domainerrors.Wrap("funcionario.delete", "failed to delete funcionario", err)
	}

	if !deleted {
		s.logger.Info("funcionario not found for delete", "cpf", cpf)
		return false, nil
	}

	s.logger.Info("funcionario deleted", "cpf", cpf)
	s.publisher.Publish(ctx, events.New(events.FuncionarioRemovido, cpf, nil))

	return true, nil
}

package services

import (
	"context"
	"time"

	"github.com/auvet/auvet-backend/internal/domain/entities"
	domainerrors "github.com/auvet/auvet-backend/internal/domain/errors"
	"github.com/auvet/auvet-backend/internal/domain/ports"
	"github.com/auvet/auvet-backend/internal/domain/repositories"
)

// UsuarioService expõe as operações de usuário com logging
type UsuarioService struct {
	usuarioRepo repositories.UsuarioRepository
	logger      ports.Logger
	now         func() time.Time
}

// NewUsuarioService cria um novo UsuarioService
func NewUsuarioService(
	usuarioRepo repositories.UsuarioRepository,
	logger ports.Logger,
) *UsuarioService {
	return &UsuarioService{
		usuarioRepo: usuarioRepo,
		logger:      logger.With("service", "usuario"),
		now:         time.Now,
	}
}

// Create grava um novo usuário; DataCadastro é preenchida quando ausente
func (s *UsuarioService) Create(ctx context.Context, usuario *entities.Usuario) (*entities.Usuario, error) {
	s.logger.Info("creating usuario", "cpf", usuario.CPF)

	if usuario.DataCadastro.IsZero() {
		usuario.DataCadastro = s.now().UTC()
	}

	if err := s.usuarioRepo.Create(ctx, usuario); err != nil {
		return nil, domainerrors.Wrap("usuario.create", "failed to insert usuario", err)
	}

	s.logger.Info("usuario created", "cpf", usuario.CPF)
	return usuario, nil
}

// GetByCPF busca um usuário; retorna (nil, nil) quando não existe
func (s *UsuarioService) GetByCPF(ctx context.Context, cpf string) (*entities.Usuario, error) {
	s.logger.Debug("fetching usuario", "cpf", cpf)

	usuario, err := s.usuarioRepo.FindByCPF(ctx, cpf)
	if err != nil {
		return nil, domainerrors.Wrap("usuario.get", "failed to fetch usuario", err)
	}

	if usuario != nil {
		s.logger.Debug("usuario found", "cpf", cpf)
	} else {
		s.logger.Debug("usuario not found", "cpf", cpf)
	}

	return usuario, nil
}

// GetAll lista todos os usuários
func (s *UsuarioService) GetAll(ctx context.Context) ([]*entities.Usuario, error) {
	usuarios, err := s.usuarioRepo.FindAll(ctx)
	if err != nil {
		return nil, domainerrors.Wrap("usuario.list", "failed to list usuarios", err)
	}

	s.logger.Debug("usuarios listed", "count", len(usuarios))
	return usuarios, nil
}

// Update altera os campos informados; retorna (nil, nil) quando o CPF não existe
func (s *UsuarioService) Update(ctx context.Context, cpf string, update repositories.UsuarioUpdate) (*entities.Usuario, error) {
	s.logger.Info("updating usuario", "cpf", cpf)

	usuario, err := s.usuarioRepo.Update(ctx, cpf, update)
	if err != nil {
		return nil, domainerrors.Wrap("usuario.update", "failed to update usuario", err)
	}

	if usuario == nil {
		s.logger.Info("usuario not found for update", "cpf", cpf)
		return nil, nil
	}

	s.logger.Info("usuario updated", "cpf", cpf)
	return usuario, nil
}

// Delete remove o usuário; retorna false quando o CPF não existe
func (s *UsuarioService) Delete(ctx context.Context, cpf string) (bool, error) {
	s.logger.Info("deleting usuario", "cpf", cpf)

	deleted, err := s.usuarioRepo.Delete(ctx, cpf)
	if err != nil {
		return false, domainerrors.Wrap("usuario.delete", "failed to delete usuario", err)
	}

	if !deleted {
		s.logger.Info("usuario not found for delete", "cpf", cpf)
		return false, nil
	}

	s.logger.Info("usuario deleted", "cpf", cpf)
	return true, nil
}

package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rosalinebakery/store_service/internal/domain"
	"github.com/rosalinebakery/store_service/internal/dto"
	"github.com/rosalinebakery/store_service/internal/helper"
	"github.com/rosalinebakery/store_service/internal/repository"
)

type ClienteService interface {
	Crear(ctx context.Context, input dto.ClienteCreate, current dto.TokenClaims) (*domain.Cliente, error)
	Obtener(ctx context.Context, clienteID uint, current dto.TokenClaims) (*domain.Cliente, error)
	ObtenerPorUsuario(ctx context.Context, usuarioID uint) (*domain.Cliente, error)
	Listar(ctx context.Context, skip, limit int) ([]domain.Cliente, error)
	Actualizar(ctx context.Context, clienteID uint, input dto.ClienteCreate, current dto.TokenClaims) (*domain.Cliente, error)
	Eliminar(ctx context.Context, clienteID uint) error
}

type clienteService struct {
	repo        repository.ClienteRepository
	usuarioRepo repository.UsuarioRepository
}

func NewClienteService(repo repository.ClienteRepository, usuarioRepo repository.UsuarioRepository) ClienteService {
	return &clienteService{repo: repo, usuarioRepo: usuarioRepo}
}

func (s *clienteService) Crear(ctx context.Context, input dto.ClienteCreate, current dto.TokenClaims) (*domain.Cliente, error) {
	if !current.EsAdmin() && input.UsuarioID != current.UsuarioID {
		return nil, fmt.Errorf("%w: solo puedes crear tu propio perfil de cliente", ErrForbidden)
	}
	if _, err := s.usuarioRepo.FindByID(ctx, input.UsuarioID); err != nil {
		return nil, notFound(err, "usuario")
	}
	if existing, err := s.repo.FindByUsuarioID(ctx, input.UsuarioID); err == nil && existing != nil {
		return nil, fmt.Errorf("%w: el usuario ya tiene un perfil de cliente", ErrConflict)
	}

	cliente := &domain.Cliente{
		UsuarioID:     input.UsuarioID,
		Nombre:        input.Nombre,
		Apellido:      input.Apellido,
		Telefono:      input.Telefono,
		Direccion:     input.Direccion,
		FechaRegistro: time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, cliente); err != nil {
		if helper.IsDuplicateKey(err) {
			return nil, fmt.Errorf("%w: el usuario ya tiene un perfil de cliente", ErrConflict)
		}
		return nil, err
	}
	return cliente, nil
}

func (s *clienteService) Obtener(ctx context.Context, clienteID uint, current dto.TokenClaims) (*domain.Cliente, error) {
	cliente, err := s.repo.FindByID(ctx, clienteID)
	if err != nil {
		return nil, notFound(err, "cliente")
	}
	if !current.EsAdmin() && cliente.UsuarioID != current.UsuarioID {
		return nil, fmt.Errorf("%w: no tienes acceso a este cliente", ErrForbidden)
	}
	return cliente, nil
}

func (s *clienteService) ObtenerPorUsuario(ctx context.Context, usuarioID uint) (*domain.Cliente, error) {
	cliente, err := s.repo.FindByUsuarioID(ctx, usuarioID)
	if err != nil {
		return nil, notFound(err, "cliente")
	}
	return cliente, nil
}

func (s *clienteService) Listar(ctx context.Context, skip, limit int) ([]domain.Cliente, error) {
	return s.repo.List(ctx, skip, limit)
}

func (s *clienteService) Actualizar(ctx context.Context, clienteID uint, input dto.ClienteCreate, current dto.TokenClaims) (*domain.Cliente, error) {
	cliente, err := s.Obtener(ctx, clienteID, current)
	if err != nil {
		return nil, err
	}

	cliente.Nombre = input.Nombre
	cliente.Apellido = input.Apellido
	cliente.Telefono = input.Telefono
	cliente.Direccion = input.Direccion
	if err := s.repo.Save(ctx, cliente); err != nil {
		return nil, err
	}
	return cliente, nil
}

func (s *clienteService) Eliminar(ctx context.Context, clienteID uint) error {
	cliente, err := s.repo.FindByID(ctx, clienteID)
	if err != nil {
		return notFound(err, "cliente")
	}
	return s.repo.Delete(ctx, cliente)
}

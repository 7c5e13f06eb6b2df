package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rosalinebakery/store_service/internal/domain"
	"github.com/rosalinebakery/store_service/internal/dto"
	"github.com/rosalinebakery/store_service/internal/repository"
)

type CarritoService interface {
	Crear(ctx context.Context, input dto.CarritoCreate, current dto.TokenClaims) (*domain.Carrito, error)
	Obtener(ctx context.Context, carritoID uint, current dto.TokenClaims) (*domain.Carrito, error)
	Listar(ctx context.Context, skip, limit int) ([]domain.Carrito, error)
	ListarPorCliente(ctx context.Context, clienteID uint, current dto.TokenClaims) ([]domain.Carrito, error)
	ActualizarEstado(ctx context.Context, carritoID uint, estado string, current dto.TokenClaims) (*domain.Carrito, error)
	Eliminar(ctx context.Context, carritoID uint, current dto.TokenClaims) error
}

type carritoService struct {
	repo        repository.CarritoRepository
	clienteRepo repository.ClienteRepository
}

func NewCarritoService(repo repository.CarritoRepository, clienteRepo repository.ClienteRepository) CarritoService {
	return &carritoService{repo: repo, clienteRepo: clienteRepo}
}

func estadoCarritoValido(estado string) bool {
	return estado == domain.EstadoActivo || estado == domain.EstadoInactivo || estado == domain.CarritoCompletado
}

func (s *carritoService) duenoDe(ctx context.Context, clienteID uint, current dto.TokenClaims) (bool, error) {
	cliente, err := s.clienteRepo.FindByID(ctx, clienteID)
	if err != nil {
		return false, notFound(err, "cliente")
	}
	return cliente.UsuarioID == current.UsuarioID, nil
}

func (s *carritoService) Crear(ctx context.Context, input dto.CarritoCreate, current dto.TokenClaims) (*domain.Carrito, error) {
	propio, err := s.duenoDe(ctx, input.ClienteID, current)
	if err != nil {
		return nil, err
	}
	if !current.EsAdmin() && !propio {
		return nil, fmt.Errorf("%w: no puedes crear carritos para otro cliente", ErrForbidden)
	}

	estado := input.Estado
	if estado == "" {
		estado = domain.EstadoActivo
	}
	if !estadoCarritoValido(estado) {
		return nil, fmt.Errorf("%w: estado de carrito inválido", ErrInvalid)
	}

	carrito := &domain.Carrito{
		ClienteID:     input.ClienteID,
		FechaCreacion: time.Now().UTC(),
		Estado:        estado,
	}
	if err := s.repo.Create(ctx, carrito); err != nil {
		return nil, err
	}
	return carrito, nil
}

func (s *carritoService) Obtener(ctx context.Context, carritoID uint, current dto.TokenClaims) (*domain.Carrito, error) {
	carrito, err := s.repo.FindByID(ctx, carritoID)
	if err != nil {
		return nil, notFound(err, "carrito")
	}
	if !current.EsAdmin() {
		propio, err := s.duenoDe(ctx, carrito.ClienteID, current)
		if err != nil {
			return nil, err
		}
		if !propio {
			return nil, fmt.Errorf("%w: no tienes acceso a este carrito", ErrForbidden)
		}
	}
	return carrito, nil
}

func (s *carritoService) Listar(ctx context.Context, skip, limit int) ([]domain.Carrito, error) {
	return s.repo.List(ctx, skip, limit)
}

func (s *carritoService) ListarPorCliente(ctx context.Context, clienteID uint, current dto.TokenClaims) ([]domain.Carrito, error) {
	if !current.EsAdmin() {
		propio, err := s.duenoDe(ctx, clienteID, current)
		if err != nil {
			return nil, err
		}
		if !propio {
			return nil, fmt.Errorf("%w: no tienes acceso a los carritos de este cliente", ErrForbidden)
		}
	}
	return s.repo.FindByCliente(ctx, clienteID)
}

func (s *carritoService) ActualizarEstado(ctx context.Context, carritoID uint, estado string, current dto.TokenClaims) (*domain.Carrito, error) {
	carrito, err := s.Obtener(ctx, carritoID, current)
	if err != nil {
		return nil, err
	}
	if !estadoCarritoValido(estado) {
		return nil, fmt.Errorf("%w: estado de carrito inválido", ErrInvalid)
	}

	carrito.Estado = estado
	if err := s.repo.Save(ctx, carrito); err != nil {
		return nil, err
	}
	return carrito, nil
}

func (s *carritoService) Eliminar(ctx context.Context, carritoID uint, current dto.TokenClaims) error {
	carrito, err := s.Obtener(ctx, carritoID, current)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, carrito)
}

package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rosalinebakery/store_service/internal/domain"
	"github.com/rosalinebakery/store_service/internal/dto"
	"github.com/rosalinebakery/store_service/internal/repository"
)

var estadosPedido = []string{
	domain.PedidoPendiente,
	domain.PedidoPagoConfirmado,
	domain.PedidoEnPreparacion,
	domain.PedidoEnDomicilio,
	domain.PedidoListoRecoger,
	domain.PedidoEntregado,
}

type PedidoService interface {
	Crear(ctx context.Context, input dto.PedidoCreate, current dto.TokenClaims) (*domain.Pedido, error)
	Obtener(ctx context.Context, pedidoID uint, current dto.TokenClaims) (*domain.Pedido, error)
	Listar(ctx context.Context, skip, limit int) ([]domain.Pedido, error)
	ListarPorCliente(ctx context.Context, clienteID uint, skip, limit int, current dto.TokenClaims) ([]domain.Pedido, error)
	ListarPorEstado(ctx context.Context, estado string, current dto.TokenClaims) ([]domain.Pedido, error)
	ActualizarEstado(ctx context.Context, pedidoID uint, estado string) (*domain.Pedido, error)
	Eliminar(ctx context.Context, pedidoID uint) error
}

type pedidoService struct {
	repo        repository.PedidoRepository
	clienteRepo repository.ClienteRepository
}

func NewPedidoService(repo repository.PedidoRepository, clienteRepo repository.ClienteRepository) PedidoService {
	return &pedidoService{repo: repo, clienteRepo: clienteRepo}
}

func estadoPedidoValido(estado string) bool {
	for _, e := range estadosPedido {
		if e == estado {
			return true
		}
	}
	return false
}

// esDueno reports whether the authenticated user owns the client profile.
func (s *pedidoService) esDueno(ctx context.Context, clienteID uint, current dto.TokenClaims) (bool, error) {
	cliente, err := s.clienteRepo.FindByID(ctx, clienteID)
	if err != nil {
		return false, notFound(err, "cliente")
	}
	return cliente.UsuarioID == current.UsuarioID, nil
}

func (s *pedidoService) Crear(ctx context.Context, input dto.PedidoCreate, current dto.TokenClaims) (*domain.Pedido, error) {
	propio, err := s.esDueno(ctx, input.ClienteID, current)
	if err != nil {
		return nil, err
	}
	if !current.EsAdmin() && !propio {
		return nil, fmt.Errorf("%w: no puedes crear pedidos para otro cliente", ErrForbidden)
	}

	if len(strings.TrimSpace(input.DireccionEnvio)) < 5 {
		return nil, fmt.Errorf("%w: la dirección de envío debe tener al menos 5 caracteres", ErrInvalid)
	}

	estado := input.Estado
	if estado == "" {
		estado = domain.PedidoPendiente
	}
	if !estadoPedidoValido(estado) {
		return nil, fmt.Errorf("%w: estado de pedido inválido", ErrInvalid)
	}
	metodoPago := input.MetodoPago
	if metodoPago == "" {
		metodoPago = "PayPal"
	}

	pedido := &domain.Pedido{
		ClienteID:      input.ClienteID,
		Estado:         estado,
		DireccionEnvio: input.DireccionEnvio,
		FechaPedido:    time.Now().UTC(),
		MetodoPago:     metodoPago,
	}
	if err := s.repo.Create(ctx, pedido); err != nil {
		return nil, err
	}
	return pedido, nil
}

func (s *pedidoService) Obtener(ctx context.Context, pedidoID uint, current dto.TokenClaims) (*domain.Pedido, error) {
	pedido, err := s.repo.FindByID(ctx, pedidoID)
	if err != nil {
		return nil, notFound(err, "pedido")
	}
	if !current.EsAdmin() {
		propio, err := s.esDueno(ctx, pedido.ClienteID, current)
		if err != nil {
			return nil, err
		}
		if !propio {
			return nil, fmt.Errorf("%w: no tienes acceso a este pedido", ErrForbidden)
		}
	}
	return pedido, nil
}

func (s *pedidoService) Listar(ctx context.Context, skip, limit int) ([]domain.Pedido, error) {
	return s.repo.List(ctx, skip, limit)
}

func (s *pedidoService) ListarPorCliente(ctx context.Context, clienteID uint, skip, limit int, current dto.TokenClaims) ([]domain.Pedido, error) {
	if !current.EsAdmin() {
		propio, err := s.esDueno(ctx, clienteID, current)
		if err != nil {
			return nil, err
		}
		if !propio {
			return nil, fmt.Errorf("%w: no tienes acceso a los pedidos de este cliente", ErrForbidden)
		}
	}
	return s.repo.FindByCliente(ctx, clienteID, skip, limit)
}

func (s *pedidoService) ListarPorEstado(ctx context.Context, estado string, current dto.TokenClaims) ([]domain.Pedido, error) {
	if !estadoPedidoValido(estado) {
		return nil, fmt.Errorf("%w: estado de pedido inválido", ErrInvalid)
	}
	if current.EsAdmin() {
		return s.repo.FindByEstado(ctx, estado)
	}

	cliente, err := s.clienteRepo.FindByUsuarioID(ctx, current.UsuarioID)
	if err != nil {
		return nil, notFound(err, "cliente")
	}
	return s.repo.FindByClienteAndEstado(ctx, cliente.ID, estado)
}

func (s *pedidoService) ActualizarEstado(ctx context.Context, pedidoID uint, estado string) (*domain.Pedido, error) {
	pedido, err := s.repo.FindByID(ctx, pedidoID)
	if err != nil {
		return nil, notFound(err, "pedido")
	}
	if !estadoPedidoValido(estado) {
		return nil, fmt.Errorf("%w: estado de pedido inválido", ErrInvalid)
	}

	pedido.Estado = estado
	if err := s.repo.Save(ctx, pedido); err != nil {
		return nil, err
	}
	return pedido, nil
}

func (s *pedidoService) Eliminar(ctx context.Context, pedidoID uint) error {
	pedido, err := s.repo.FindByID(ctx, pedidoID)
	if err != nil {
		return notFound(err, "pedido")
	}
	return s.repo.Delete(ctx, pedido)
}

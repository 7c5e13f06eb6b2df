package services

import (
	"context"
	"fmt"
	"math"

	"github.com/rosalinebakery/store_service/internal/domain"
	"github.com/rosalinebakery/store_service/internal/dto"
	"github.com/rosalinebakery/store_service/internal/repository"
)

type DetallePedidoService interface {
	Crear(ctx context.Context, input dto.DetallePedidoCreate, current dto.TokenClaims) (*domain.DetallePedido, error)
	Obtener(ctx context.Context, detalleID uint, current dto.TokenClaims) (*domain.DetallePedido, error)
	Listar(ctx context.Context, skip, limit int, pedidoID uint) ([]domain.DetallePedido, error)
	ListarPorPedido(ctx context.Context, pedidoID uint, current dto.TokenClaims) ([]domain.DetallePedido, error)
	Actualizar(ctx context.Context, detalleID uint, input dto.DetallePedidoCreate, current dto.TokenClaims) (*domain.DetallePedido, error)
	Eliminar(ctx context.Context, detalleID uint, current dto.TokenClaims) error
}

type detallePedidoService struct {
	repo         repository.DetallePedidoRepository
	pedidoSvc    PedidoService
	productoRepo repository.ProductoRepository
}

func NewDetallePedidoService(repo repository.DetallePedidoRepository, pedidoSvc PedidoService, productoRepo repository.ProductoRepository) DetallePedidoService {
	return &detallePedidoService{repo: repo, pedidoSvc: pedidoSvc, productoRepo: productoRepo}
}

func redondear(v float64) float64 {
	return math.Round(v*100) / 100
}

func (s *detallePedidoService) pedidoAbierto(ctx context.Context, pedidoID uint, current dto.TokenClaims) (*domain.Pedido, error) {
	pedido, err := s.pedidoSvc.Obtener(ctx, pedidoID, current)
	if err != nil {
		return nil, err
	}
	if pedido.EstadoFinal() {
		return nil, fmt.Errorf("%w: el pedido ya no admite cambios en sus líneas", ErrConflict)
	}
	return pedido, nil
}

func (s *detallePedidoService) Crear(ctx context.Context, input dto.DetallePedidoCreate, current dto.TokenClaims) (*domain.DetallePedido, error) {
	if input.Cantidad <= 0 || input.Cantidad > 1000 {
		return nil, fmt.Errorf("%w: la cantidad debe estar entre 1 y 1000", ErrInvalid)
	}
	if input.PrecioUnitario <= 0 {
		return nil, fmt.Errorf("%w: el precio unitario debe ser mayor que cero", ErrInvalid)
	}
	if _, err := s.pedidoAbierto(ctx, input.PedidoID, current); err != nil {
		return nil, err
	}

	producto, err := s.productoRepo.FindByID(ctx, input.ProductoID)
	if err != nil {
		return nil, notFound(err, "producto")
	}
	if producto.Estado != domain.EstadoActivo {
		return nil, fmt.Errorf("%w: el producto está inactivo", ErrConflict)
	}
	if producto.Cantidad < input.Cantidad {
		return nil, fmt.Errorf("%w: stock insuficiente, disponible %d", ErrConflict, producto.Cantidad)
	}

	detalle := &domain.DetallePedido{
		PedidoID:       input.PedidoID,
		ProductoID:     input.ProductoID,
		Cantidad:       input.Cantidad,
		PrecioUnitario: input.PrecioUnitario,
		Subtotal:       redondear(float64(input.Cantidad) * input.PrecioUnitario),
	}
	if err := s.repo.Create(ctx, detalle); err != nil {
		return nil, err
	}

	producto.Cantidad -= input.Cantidad
	if err := s.productoRepo.Save(ctx, producto); err != nil {
		return nil, err
	}
	return detalle, nil
}

func (s *detallePedidoService) Obtener(ctx context.Context, detalleID uint, current dto.TokenClaims) (*domain.DetallePedido, error) {
	detalle, err := s.repo.FindByID(ctx, detalleID)
	if err != nil {
		return nil, notFound(err, "detalle de pedido")
	}
	if _, err := s.pedidoSvc.Obtener(ctx, detalle.PedidoID, current); err != nil {
		return nil, err
	}
	return detalle, nil
}

func (s *detallePedidoService) Listar(ctx context.Context, skip, limit int, pedidoID uint) ([]domain.DetallePedido, error) {
	return s.repo.List(ctx, skip, limit, pedidoID)
}

func (s *detallePedidoService) ListarPorPedido(ctx context.Context, pedidoID uint, current dto.TokenClaims) ([]domain.DetallePedido, error) {
	if _, err := s.pedidoSvc.Obtener(ctx, pedidoID, current); err != nil {
		return nil, err
	}
	return s.repo.List(ctx, 0, 0, pedidoID)
}

func (s *detallePedidoService) Actualizar(ctx context.Context, detalleID uint, input dto.DetallePedidoCreate, current dto.TokenClaims) (*domain.DetallePedido, error) {
	detalle, err := s.repo.FindByID(ctx, detalleID)
	if err != nil {
		return nil, notFound(err, "detalle de pedido")
	}
	if input.Cantidad <= 0 || input.Cantidad > 1000 {
		return nil, fmt.Errorf("%w: la cantidad debe estar entre 1 y 1000", ErrInvalid)
	}
	if input.PrecioUnitario <= 0 {
		return nil, fmt.Errorf("%w: el precio unitario debe ser mayor que cero", ErrInvalid)
	}
	if _, err := s.pedidoAbierto(ctx, detalle.PedidoID, current); err != nil {
		return nil, err
	}
	if input.ProductoID != detalle.ProductoID {
		return nil, fmt.Errorf("%w: no se puede cambiar el producto de una línea, elimínala y crea otra", ErrInvalid)
	}

	producto, err := s.productoRepo.FindByID(ctx, detalle.ProductoID)
	if err != nil {
		return nil, notFound(err, "producto")
	}

	// the reserved quantity of this line counts as available again
	disponible := producto.Cantidad + detalle.Cantidad
	if input.Cantidad > disponible {
		return nil, fmt.Errorf("%w: stock insuficiente, disponible %d", ErrConflict, disponible)
	}

	producto.Cantidad = disponible - input.Cantidad
	detalle.Cantidad = input.Cantidad
	detalle.PrecioUnitario = input.PrecioUnitario
	detalle.Subtotal = redondear(float64(input.Cantidad) * input.PrecioUnitario)

	if err := s.repo.Save(ctx, detalle); err != nil {
		return nil, err
	}
	if err := s.productoRepo.Save(ctx, producto); err != nil {
		return nil, err
	}
	return detalle, nil
}

func (s *detallePedidoService) Eliminar(ctx context.Context, detalleID uint, current dto.TokenClaims) error {
	detalle, err := s.repo.FindByID(ctx, detalleID)
	if err != nil {
		return notFound(err, "detalle de pedido")
	}
	if _, err := s.pedidoAbierto(ctx, detalle.PedidoID, current); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, detalle); err != nil {
		return err
	}

	producto, err := s.productoRepo.FindByID(ctx, detalle.ProductoID)
	if err == nil {
		producto.Cantidad += detalle.Cantidad
		return s.productoRepo.Save(ctx, producto)
	}
	return nil
}

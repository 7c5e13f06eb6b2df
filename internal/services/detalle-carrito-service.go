package services

import (
	"context"
	"fmt"
	"math"

	"github.com/rosalinebakery/store_service/internal/domain"
	"github.com/rosalinebakery/store_service/internal/dto"
	"github.com/rosalinebakery/store_service/internal/repository"
)

// subtotalTolerancia absorbs float rounding when the client sends its own
// subtotal.
const subtotalTolerancia = 0.01

type DetalleCarritoService interface {
	Agregar(ctx context.Context, input dto.DetalleCarritoCreate, current dto.TokenClaims) (*domain.DetalleCarrito, error)
	Obtener(ctx context.Context, detalleID uint, current dto.TokenClaims) (*domain.DetalleCarrito, error)
	Listar(ctx context.Context, skip, limit int, carritoID uint) ([]domain.DetalleCarrito, error)
	ListarPorCarrito(ctx context.Context, carritoID uint, current dto.TokenClaims) ([]domain.DetalleCarrito, error)
	Actualizar(ctx context.Context, detalleID uint, input dto.DetalleCarritoCreate, current dto.TokenClaims) (*domain.DetalleCarrito, error)
	Eliminar(ctx context.Context, detalleID uint, current dto.TokenClaims) error
}

type detalleCarritoService struct {
	repo         repository.DetalleCarritoRepository
	carritoSvc   CarritoService
	productoRepo repository.ProductoRepository
}

func NewDetalleCarritoService(repo repository.DetalleCarritoRepository, carritoSvc CarritoService, productoRepo repository.ProductoRepository) DetalleCarritoService {
	return &detalleCarritoService{repo: repo, carritoSvc: carritoSvc, productoRepo: productoRepo}
}

func (s *detalleCarritoService) carritoActivo(ctx context.Context, carritoID uint, current dto.TokenClaims) (*domain.Carrito, error) {
	carrito, err := s.carritoSvc.Obtener(ctx, carritoID, current)
	if err != nil {
		return nil, err
	}
	if carrito.Estado != domain.EstadoActivo {
		return nil, fmt.Errorf("%w: el carrito ya no está activo", ErrConflict)
	}
	return carrito, nil
}

func (s *detalleCarritoService) validarLinea(input dto.DetalleCarritoCreate) error {
	if input.Cantidad <= 0 || input.Cantidad > 1000 {
		return fmt.Errorf("%w: la cantidad debe estar entre 1 y 1000", ErrInvalid)
	}
	if input.PrecioUnitario <= 0 {
		return fmt.Errorf("%w: el precio unitario debe ser mayor que cero", ErrInvalid)
	}
	if input.Subtotal != nil {
		esperado := float64(input.Cantidad) * input.PrecioUnitario
		if math.Abs(*input.Subtotal-esperado) > subtotalTolerancia {
			return fmt.Errorf("%w: el subtotal no coincide con cantidad por precio unitario", ErrInvalid)
		}
	}
	return nil
}

// Agregar adds a product to the cart. Lines merge when the cart already
// holds the product. Stock is only checked here; it is deducted when the
// cart becomes an order.
func (s *detalleCarritoService) Agregar(ctx context.Context, input dto.DetalleCarritoCreate, current dto.TokenClaims) (*domain.DetalleCarrito, error) {
	if err := s.validarLinea(input); err != nil {
		return nil, err
	}
	if _, err := s.carritoActivo(ctx, input.CarritoID, current); err != nil {
		return nil, err
	}

	producto, err := s.productoRepo.FindByID(ctx, input.ProductoID)
	if err != nil {
		return nil, notFound(err, "producto")
	}
	if producto.Estado != domain.EstadoActivo {
		return nil, fmt.Errorf("%w: el producto está inactivo", ErrConflict)
	}

	existente, err := s.repo.FindByCarritoAndProducto(ctx, input.CarritoID, input.ProductoID)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		total := existente.Cantidad + input.Cantidad
		if total > producto.Cantidad {
			return nil, fmt.Errorf("%w: stock insuficiente, disponible %d", ErrConflict, producto.Cantidad)
		}
		existente.Cantidad = total
		existente.PrecioUnitario = input.PrecioUnitario
		existente.Subtotal = redondear(float64(total) * input.PrecioUnitario)
		if err := s.repo.Save(ctx, existente); err != nil {
			return nil, err
		}
		return existente, nil
	}

	if input.Cantidad > producto.Cantidad {
		return nil, fmt.Errorf("%w: stock insuficiente, disponible %d", ErrConflict, producto.Cantidad)
	}

	detalle := &domain.DetalleCarrito{
		CarritoID:      input.CarritoID,
		ProductoID:     input.ProductoID,
		Cantidad:       input.Cantidad,
		PrecioUnitario: input.PrecioUnitario,
		Subtotal:       redondear(float64(input.Cantidad) * input.PrecioUnitario),
	}
	if err := s.repo.Create(ctx, detalle); err != nil {
		return nil, err
	}
	return detalle, nil
}

func (s *detalleCarritoService) Obtener(ctx context.Context, detalleID uint, current dto.TokenClaims) (*domain.DetalleCarrito, error) {
	detalle, err := s.repo.FindByID(ctx, detalleID)
	if err != nil {
		return nil, notFound(err, "detalle de carrito")
	}
	if _, err := s.carritoSvc.Obtener(ctx, detalle.CarritoID, current); err != nil {
		return nil, err
	}
	return detalle, nil
}

func (s *detalleCarritoService) Listar(ctx context.Context, skip, limit int, carritoID uint) ([]domain.DetalleCarrito, error) {
	return s.repo.List(ctx, skip, limit, carritoID)
}

func (s *detalleCarritoService) ListarPorCarrito(ctx context.Context, carritoID uint, current dto.TokenClaims) ([]domain.DetalleCarrito, error) {
	if _, err := s.carritoSvc.Obtener(ctx, carritoID, current); err != nil {
		return nil, err
	}
	return s.repo.List(ctx, 0, 0, carritoID)
}

func (s *detalleCarritoService) Actualizar(ctx context.Context, detalleID uint, input dto.DetalleCarritoCreate, current dto.TokenClaims) (*domain.DetalleCarrito, error) {
	detalle, err := s.repo.FindByID(ctx, detalleID)
	if err != nil {
		return nil, notFound(err, "detalle de carrito")
	}
	if err := s.validarLinea(input); err != nil {
		return nil, err
	}
	if _, err := s.carritoActivo(ctx, detalle.CarritoID, current); err != nil {
		return nil, err
	}
	if input.ProductoID != detalle.ProductoID {
		return nil, fmt.Errorf("%w: no se puede cambiar el producto de una línea, elimínala y agrega otra", ErrInvalid)
	}

	producto, err := s.productoRepo.FindByID(ctx, detalle.ProductoID)
	if err != nil {
		return nil, notFound(err, "producto")
	}
	if input.Cantidad > producto.Cantidad {
		return nil, fmt.Errorf("%w: stock insuficiente, disponible %d", ErrConflict, producto.Cantidad)
	}

	detalle.Cantidad = input.Cantidad
	detalle.PrecioUnitario = input.PrecioUnitario
	detalle.Subtotal = redondear(float64(input.Cantidad) * input.PrecioUnitario)
	if err := s.repo.Save(ctx, detalle); err != nil {
		return nil, err
	}
	return detalle, nil
}

func (s *detalleCarritoService) Eliminar(ctx context.Context, detalleID uint, current dto.TokenClaims) error {
	detalle, err := s.repo.FindByID(ctx, detalleID)
	if err != nil {
		return notFound(err, "detalle de carrito")
	}
	if _, err := s.carritoSvc.Obtener(ctx, detalle.CarritoID, current); err != nil {
		return err
	}
	return s.repo.Delete(ctx, detalle)
}

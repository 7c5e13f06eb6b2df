package services

import (
	"context"
	"fmt"

	"github.com/rosalinebakery/store_service/internal/domain"
	"github.com/rosalinebakery/store_service/internal/dto"
	"github.com/rosalinebakery/store_service/internal/repository"
)

type ProductoService interface {
	Crear(ctx context.Context, input dto.ProductoCreate) (*domain.Producto, error)
	Obtener(ctx context.Context, productoID uint) (*domain.Producto, error)
	Listar(ctx context.Context, skip, limit int, filter dto.ProductoFilter) ([]domain.Producto, error)
	ListarPorCategoria(ctx context.Context, categoriaID uint) ([]domain.Producto, error)
	Actualizar(ctx context.Context, productoID uint, input dto.ProductoCreate) (*domain.Producto, error)
	Eliminar(ctx context.Context, productoID uint) error
}

type productoService struct {
	repo          repository.ProductoRepository
	categoriaRepo repository.CategoriaRepository
}

func NewProductoService(repo repository.ProductoRepository, categoriaRepo repository.CategoriaRepository) ProductoService {
	return &productoService{repo: repo, categoriaRepo: categoriaRepo}
}

// categoriaActiva verifies that the referenced category exists and admits
// new products.
func (s *productoService) categoriaActiva(ctx context.Context, categoriaID uint) error {
	categoria, err := s.categoriaRepo.FindByID(ctx, categoriaID)
	if err != nil {
		return notFound(err, "categoria")
	}
	if categoria.Estado != domain.EstadoActivo {
		return fmt.Errorf("%w: la categoría está inactiva", ErrConflict)
	}
	return nil
}

func (s *productoService) Crear(ctx context.Context, input dto.ProductoCreate) (*domain.Producto, error) {
	if input.Precio <= 0 {
		return nil, fmt.Errorf("%w: el precio debe ser mayor que cero", ErrInvalid)
	}
	if input.Cantidad < 0 {
		return nil, fmt.Errorf("%w: la cantidad no puede ser negativa", ErrInvalid)
	}
	estado, err := validarEstado(input.Estado)
	if err != nil {
		return nil, err
	}
	if err := s.categoriaActiva(ctx, input.CategoriaID); err != nil {
		return nil, err
	}

	producto := &domain.Producto{
		CategoriaID: input.CategoriaID,
		Nombre:      input.Nombre,
		Descripcion: input.Descripcion,
		Cantidad:    input.Cantidad,
		Precio:      input.Precio,
		ImagenURL:   input.ImagenURL,
		Estado:      estado,
	}
	if err := s.repo.Create(ctx, producto); err != nil {
		return nil, err
	}
	return producto, nil
}

func (s *productoService) Obtener(ctx context.Context, productoID uint) (*domain.Producto, error) {
	producto, err := s.repo.FindByID(ctx, productoID)
	if err != nil {
		return nil, notFound(err, "producto")
	}
	return producto, nil
}

func (s *productoService) Listar(ctx context.Context, skip, limit int, filter dto.ProductoFilter) ([]domain.Producto, error) {
	return s.repo.List(ctx, skip, limit, filter)
}

func (s *productoService) ListarPorCategoria(ctx context.Context, categoriaID uint) ([]domain.Producto, error) {
	if _, err := s.categoriaRepo.FindByID(ctx, categoriaID); err != nil {
		return nil, notFound(err, "categoria")
	}
	return s.repo.FindByCategoria(ctx, categoriaID)
}

func (s *productoService) Actualizar(ctx context.Context, productoID uint, input dto.ProductoCreate) (*domain.Producto, error) {
	producto, err := s.Obtener(ctx, productoID)
	if err != nil {
		return nil, err
	}
	if input.Precio <= 0 {
		return nil, fmt.Errorf("%w: el precio debe ser mayor que cero", ErrInvalid)
	}
	if input.Cantidad < 0 {
		return nil, fmt.Errorf("%w: la cantidad no puede ser negativa", ErrInvalid)
	}
	estado, err := validarEstado(input.Estado)
	if err != nil {
		return nil, err
	}
	if input.CategoriaID != producto.CategoriaID {
		if err := s.categoriaActiva(ctx, input.CategoriaID); err != nil {
			return nil, err
		}
	}

	producto.CategoriaID = input.CategoriaID
	producto.Nombre = input.Nombre
	producto.Descripcion = input.Descripcion
	producto.Cantidad = input.Cantidad
	producto.Precio = input.Precio
	producto.ImagenURL = input.ImagenURL
	producto.Estado = estado
	if err := s.repo.Save(ctx, producto); err != nil {
		return nil, err
	}
	return producto, nil
}

func (s *productoService) Eliminar(ctx context.Context, productoID uint) error {
	producto, err := s.Obtener(ctx, productoID)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, producto)
}

package services

import (
	"context"
	"fmt"

	"github.com/rosalinebakery/store_service/internal/domain"
	"github.com/rosalinebakery/store_service/internal/dto"
	"github.com/rosalinebakery/store_service/internal/repository"
)

type CategoriaService interface {
	Crear(ctx context.Context, input dto.CategoriaCreate) (*domain.Categoria, error)
	Obtener(ctx context.Context, categoriaID uint) (*domain.Categoria, error)
	Listar(ctx context.Context, skip, limit int) ([]domain.Categoria, error)
	Actualizar(ctx context.Context, categoriaID uint, input dto.CategoriaCreate) (*domain.Categoria, error)
	Eliminar(ctx context.Context, categoriaID uint) error
}

type categoriaService struct {
	repo         repository.CategoriaRepository
	productoRepo repository.ProductoRepository
}

func NewCategoriaService(repo repository.CategoriaRepository, productoRepo repository.ProductoRepository) CategoriaService {
	return &categoriaService{repo: repo, productoRepo: productoRepo}
}

func validarEstado(estado string) (string, error) {
	switch estado {
	case "":
		return domain.EstadoActivo, nil
	case domain.EstadoActivo, domain.EstadoInactivo:
		return estado, nil
	default:
		return "", fmt.Errorf("%w: estado debe ser activo o inactivo", ErrInvalid)
	}
}

func (s *categoriaService) Crear(ctx context.Context, input dto.CategoriaCreate) (*domain.Categoria, error) {
	estado, err := validarEstado(input.Estado)
	if err != nil {
		return nil, err
	}
	categoria := &domain.Categoria{
		Nombre:           input.Nombre,
		DescripcionCorta: input.DescripcionCorta,
		DescripcionLarga: input.DescripcionLarga,
		Estado:           estado,
	}
	if err := s.repo.Create(ctx, categoria); err != nil {
		return nil, err
	}
	return categoria, nil
}

func (s *categoriaService) Obtener(ctx context.Context, categoriaID uint) (*domain.Categoria, error) {
	categoria, err := s.repo.FindByID(ctx, categoriaID)
	if err != nil {
		return nil, notFound(err, "categoria")
	}
	return categoria, nil
}

func (s *categoriaService) Listar(ctx context.Context, skip, limit int) ([]domain.Categoria, error) {
	return s.repo.List(ctx, skip, limit)
}

func (s *categoriaService) Actualizar(ctx context.Context, categoriaID uint, input dto.CategoriaCreate) (*domain.Categoria, error) {
	categoria, err := s.Obtener(ctx, categoriaID)
	if err != nil {
		return nil, err
	}
	estado, err := validarEstado(input.Estado)
	if err != nil {
		return nil, err
	}

	categoria.Nombre = input.Nombre
	categoria.DescripcionCorta = input.DescripcionCorta
	categoria.DescripcionLarga = input.DescripcionLarga
	categoria.Estado = estado
	if err := s.repo.Save(ctx, categoria); err != nil {
		return nil, err
	}
	return categoria, nil
}

func (s *categoriaService) Eliminar(ctx context.Context, categoriaID uint) error {
	categoria, err := s.Obtener(ctx, categoriaID)
	if err != nil {
		return err
	}

	productos, err := s.productoRepo.FindByCategoria(ctx, categoriaID)
	if err != nil {
		return err
	}
	if len(productos) > 0 {
		return fmt.Errorf("%w: la categoría tiene productos asociados", ErrConflict)
	}
	return s.repo.Delete(ctx, categoria)
}

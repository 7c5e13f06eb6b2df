package repository

import (
	"context"

	"github.com/rosalinebakery/store_service/internal/domain"
	"github.com/rosalinebakery/store_service/internal/dto"
	"gorm.io/gorm"
)

type ProductoRepository interface {
	Create(ctx context.Context, producto *domain.Producto) error
	FindByID(ctx context.Context, id uint) (*domain.Producto, error)
	List(ctx context.Context, skip, limit int, filter dto.ProductoFilter) ([]domain.Producto, error)
	FindByCategoria(ctx context.Context, categoriaID uint) ([]domain.Producto, error)
	Save(ctx context.Context, producto *domain.Producto) error
	Delete(ctx context.Context, producto *domain.Producto) error
}

type productoRepository struct {
	db *gorm.DB
}

func NewProductoRepository(db *gorm.DB) ProductoRepository {
	return &productoRepository{db: db}
}

func (r *productoRepository) Create(ctx context.Context, producto *domain.Producto) error {
	return r.db.WithContext(ctx).Create(producto).Error
}

func (r *productoRepository) FindByID(ctx context.Context, id uint) (*domain.Producto, error) {
	producto := &domain.Producto{}
	if err := r.db.WithContext(ctx).First(producto, "id_producto = ?", id).Error; err != nil {
		return nil, err
	}
	return producto, nil
}

func (r *productoRepository) List(ctx context.Context, skip, limit int, filter dto.ProductoFilter) ([]domain.Producto, error) {
	var productos []domain.Producto
	q := r.db.WithContext(ctx).Model(&domain.Producto{})
	if filter.Nombre != "" {
		q = q.Where("nombre LIKE ?", "%"+filter.Nombre+"%")
	}
	if filter.Estado != "" {
		q = q.Where("estado = ?", filter.Estado)
	}
	if err := q.Offset(skip).Limit(limit).Find(&productos).Error; err != nil {
		return nil, err
	}
	return productos, nil
}

func (r *productoRepository) FindByCategoria(ctx context.Context, categoriaID uint) ([]domain.Producto, error) {
	var productos []domain.Producto
	if err := r.db.WithContext(ctx).Where("id_categoria = ?", categoriaID).Find(&productos).Error; err != nil {
		return nil, err
	}
	return productos, nil
}

func (r *productoRepository) Save(ctx context.Context, producto *domain.Producto) error {
	return r.db.WithContext(ctx).Save(producto).Error
}

func (r *productoRepository) Delete(ctx context.Context, producto *domain.Producto) error {
	return r.db.WithContext(ctx).Delete(producto).Error
}

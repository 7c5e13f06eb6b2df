package repository

import (
	"context"
	"errors"

	"github.com/rosalinebakery/store_service/internal/domain"
	"gorm.io/gorm"
)

type DetalleCarritoRepository interface {
	Create(ctx context.Context, detalle *domain.DetalleCarrito) error
	FindByID(ctx context.Context, id uint) (*domain.DetalleCarrito, error)
	FindByCarritoAndProducto(ctx context.Context, carritoID, productoID uint) (*domain.DetalleCarrito, error)
	List(ctx context.Context, skip, limit int, carritoID uint) ([]domain.DetalleCarrito, error)
	ListByCarritoIDs(ctx context.Context, carritoIDs []uint, skip, limit int) ([]domain.DetalleCarrito, error)
	Save(ctx context.Context, detalle *domain.DetalleCarrito) error
	Delete(ctx context.Context, detalle *domain.DetalleCarrito) error
}

type detalleCarritoRepository struct {
	db *gorm.DB
}

func NewDetalleCarritoRepository(db *gorm.DB) DetalleCarritoRepository {
	return &detalleCarritoRepository{db: db}
}

func (r *detalleCarritoRepository) Create(ctx context.Context, detalle *domain.DetalleCarrito) error {
	return r.db.WithContext(ctx).Create(detalle).Error
}

func (r *detalleCarritoRepository) FindByID(ctx context.Context, id uint) (*domain.DetalleCarrito, error) {
	detalle := &domain.DetalleCarrito{}
	if err := r.db.WithContext(ctx).First(detalle, "id_detalle_carrito = ?", id).Error; err != nil {
		return nil, err
	}
	return detalle, nil
}

// FindByCarritoAndProducto returns nil, nil when the cart has no line for
// that product yet.
func (r *detalleCarritoRepository) FindByCarritoAndProducto(ctx context.Context, carritoID, productoID uint) (*domain.DetalleCarrito, error) {
	detalle := &domain.DetalleCarrito{}
	err := r.db.WithContext(ctx).First(detalle, "id_carrito = ? AND id_producto = ?", carritoID, productoID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return detalle, nil
}

func (r *detalleCarritoRepository) List(ctx context.Context, skip, limit int, carritoID uint) ([]domain.DetalleCarrito, error) {
	var detalles []domain.DetalleCarrito
	q := r.db.WithContext(ctx).Model(&domain.DetalleCarrito{})
	if carritoID != 0 {
		q = q.Where("id_carrito = ?", carritoID)
	}
	if limit > 0 {
		q = q.Offset(skip).Limit(limit)
	}
	if err := q.Find(&detalles).Error; err != nil {
		return nil, err
	}
	return detalles, nil
}

func (r *detalleCarritoRepository) ListByCarritoIDs(ctx context.Context, carritoIDs []uint, skip, limit int) ([]domain.DetalleCarrito, error) {
	var detalles []domain.DetalleCarrito
	if len(carritoIDs) == 0 {
		return detalles, nil
	}
	if err := r.db.WithContext(ctx).Where("id_carrito IN ?", carritoIDs).
		Offset(skip).Limit(limit).Find(&detalles).Error; err != nil {
		return nil, err
	}
	return detalles, nil
}

func (r *detalleCarritoRepository) Save(ctx context.Context, detalle *domain.DetalleCarrito) error {
	return r.db.WithContext(ctx).Save(detalle).Error
}

func (r *detalleCarritoRepository) Delete(ctx context.Context, detalle *domain.DetalleCarrito) error {
	return r.db.WithContext(ctx).Delete(detalle).Error
}

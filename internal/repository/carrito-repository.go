package repository

import (
	"context"

	"github.com/rosalinebakery/store_service/internal/domain"
	"gorm.io/gorm"
)

type CarritoRepository interface {
	Create(ctx context.Context, carrito *domain.Carrito) error
	FindByID(ctx context.Context, id uint) (*domain.Carrito, error)
	List(ctx context.Context, skip, limit int) ([]domain.Carrito, error)
	FindByCliente(ctx context.Context, clienteID uint) ([]domain.Carrito, error)
	Save(ctx context.Context, carrito *domain.Carrito) error
	Delete(ctx context.Context, carrito *domain.Carrito) error
}

type carritoRepository struct {
	db *gorm.DB
}

func NewCarritoRepository(db *gorm.DB) CarritoRepository {
	return &carritoRepository{db: db}
}

func (r *carritoRepository) Create(ctx context.Context, carrito *domain.Carrito) error {
	return r.db.WithContext(ctx).Create(carrito).Error
}

func (r *carritoRepository) FindByID(ctx context.Context, id uint) (*domain.Carrito, error) {
	carrito := &domain.Carrito{}
	if err := r.db.WithContext(ctx).First(carrito, "id_carrito = ?", id).Error; err != nil {
		return nil, err
	}
	return carrito, nil
}

func (r *carritoRepository) List(ctx context.Context, skip, limit int) ([]domain.Carrito, error) {
	var carritos []domain.Carrito
	if err := r.db.WithContext(ctx).Offset(skip).Limit(limit).Find(&carritos).Error; err != nil {
		return nil, err
	}
	return carritos, nil
}

func (r *carritoRepository) FindByCliente(ctx context.Context, clienteID uint) ([]domain.Carrito, error) {
	var carritos []domain.Carrito
	if err := r.db.WithContext(ctx).Where("id_cliente = ?", clienteID).Find(&carritos).Error; err != nil {
		return nil, err
	}
	return carritos, nil
}

func (r *carritoRepository) Save(ctx context.Context, carrito *domain.Carrito) error {
	return r.db.WithContext(ctx).Save(carrito).Error
}

func (r *carritoRepository) Delete(ctx context.Context, carrito *domain.Carrito) error {
	return r.db.WithContext(ctx).Delete(carrito).Error
}

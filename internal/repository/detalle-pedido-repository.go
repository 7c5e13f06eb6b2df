package repository

import (
	"context"

	"github.com/rosalinebakery/store_service/internal/domain"
	"gorm.io/gorm"
)

type DetallePedidoRepository interface {
	Create(ctx context.Context, detalle *domain.DetallePedido) error
	FindByID(ctx context.Context, id uint) (*domain.DetallePedido, error)
	List(ctx context.Context, skip, limit int, pedidoID uint) ([]domain.DetallePedido, error)
	ListByPedidoIDs(ctx context.Context, pedidoIDs []uint, skip, limit int) ([]domain.DetallePedido, error)
	Save(ctx context.Context, detalle *domain.DetallePedido) error
	Delete(ctx context.Context, detalle *domain.DetallePedido) error
}

type detallePedidoRepository struct {
	db *gorm.DB
}

func NewDetallePedidoRepository(db *gorm.DB) DetallePedidoRepository {
	return &detallePedidoRepository{db: db}
}

func (r *detallePedidoRepository) Create(ctx context.Context, detalle *domain.DetallePedido) error {
	return r.db.WithContext(ctx).Create(detalle).Error
}

func (r *detallePedidoRepository) FindByID(ctx context.Context, id uint) (*domain.DetallePedido, error) {
	detalle := &domain.DetallePedido{}
	if err := r.db.WithContext(ctx).First(detalle, "id_detalle = ?", id).Error; err != nil {
		return nil, err
	}
	return detalle, nil
}

func (r *detallePedidoRepository) List(ctx context.Context, skip, limit int, pedidoID uint) ([]domain.DetallePedido, error) {
	var detalles []domain.DetallePedido
	q := r.db.WithContext(ctx).Model(&domain.DetallePedido{})
	if pedidoID != 0 {
		q = q.Where("id_pedido = ?", pedidoID)
	}
	if limit > 0 {
		q = q.Offset(skip).Limit(limit)
	}
	if err := q.Find(&detalles).Error; err != nil {
		return nil, err
	}
	return detalles, nil
}

func (r *detallePedidoRepository) ListByPedidoIDs(ctx context.Context, pedidoIDs []uint, skip, limit int) ([]domain.DetallePedido, error) {
	var detalles []domain.DetallePedido
	if len(pedidoIDs) == 0 {
		return detalles, nil
	}
	if err := r.db.WithContext(ctx).Where("id_pedido IN ?", pedidoIDs).
		Offset(skip).Limit(limit).Find(&detalles).Error; err != nil {
		return nil, err
	}
	return detalles, nil
}

func (r *detallePedidoRepository) Save(ctx context.Context, detalle *domain.DetallePedido) error {
	return r.db.WithContext(ctx).Save(detalle).Error
}

func (r *detallePedidoRepository) Delete(ctx context.Context, detalle *domain.DetallePedido) error {
	return r.db.WithContext(ctx).Delete(detalle).Error
}

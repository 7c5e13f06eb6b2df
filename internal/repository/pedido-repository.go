package repository

import (
	"context"

	"github.com/rosalinebakery/store_service/internal/domain"
	"gorm.io/gorm"
)

type PedidoRepository interface {
	Create(ctx context.Context, pedido *domain.Pedido) error
	FindByID(ctx context.Context, id uint) (*domain.Pedido, error)
	List(ctx context.Context, skip, limit int) ([]domain.Pedido, error)
	FindByCliente(ctx context.Context, clienteID uint, skip, limit int) ([]domain.Pedido, error)
	FindByEstado(ctx context.Context, estado string) ([]domain.Pedido, error)
	FindByClienteAndEstado(ctx context.Context, clienteID uint, estado string) ([]domain.Pedido, error)
	Save(ctx context.Context, pedido *domain.Pedido) error
	Delete(ctx context.Context, pedido *domain.Pedido) error
}

type pedidoRepository struct {
	db *gorm.DB
}

func NewPedidoRepository(db *gorm.DB) PedidoRepository {
	return &pedidoRepository{db: db}
}

func (r *pedidoRepository) Create(ctx context.Context, pedido *domain.Pedido) error {
	return r.db.WithContext(ctx).Create(pedido).Error
}

func (r *pedidoRepository) FindByID(ctx context.Context, id uint) (*domain.Pedido, error) {
	pedido := &domain.Pedido{}
	if err := r.db.WithContext(ctx).First(pedido, "id_pedido = ?", id).Error; err != nil {
		return nil, err
	}
	return pedido, nil
}

func (r *pedidoRepository) List(ctx context.Context, skip, limit int) ([]domain.Pedido, error) {
	var pedidos []domain.Pedido
	if err := r.db.WithContext(ctx).Offset(skip).Limit(limit).Find(&pedidos).Error; err != nil {
		return nil, err
	}
	return pedidos, nil
}

func (r *pedidoRepository) FindByCliente(ctx context.Context, clienteID uint, skip, limit int) ([]domain.Pedido, error) {
	var pedidos []domain.Pedido
	q := r.db.WithContext(ctx).Where("id_cliente = ?", clienteID)
	if limit > 0 {
		q = q.Offset(skip).Limit(limit)
	}
	if err := q.Find(&pedidos).Error; err != nil {
		return nil, err
	}
	return pedidos, nil
}

func (r *pedidoRepository) FindByEstado(ctx context.Context, estado string) ([]domain.Pedido, error) {
	var pedidos []domain.Pedido
	if err := r.db.WithContext(ctx).Where("estado = ?", estado).Find(&pedidos).Error; err != nil {
		return nil, err
	}
	return pedidos, nil
}

func (r *pedidoRepository) FindByClienteAndEstado(ctx context.Context, clienteID uint, estado string) ([]domain.Pedido, error) {
	var pedidos []domain.Pedido
	if err := r.db.WithContext(ctx).Where("id_cliente = ? AND estado = ?", clienteID, estado).Find(&pedidos).Error; err != nil {
		return nil, err
	}
	return pedidos, nil
}

func (r *pedidoRepository) Save(ctx context.Context, pedido *domain.Pedido) error {
	return r.db.WithContext(ctx).Save(pedido).Error
}

func (r *pedidoRepository) Delete(ctx context.Context, pedido *domain.Pedido) error {
	return r.db.WithContext(ctx).Delete(pedido).Error
}

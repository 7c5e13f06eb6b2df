package repository

import (
	"context"

	"github.com/rosalinebakery/store_service/internal/domain"
	"gorm.io/gorm"
)

type ClienteRepository interface {
	Create(ctx context.Context, cliente *domain.Cliente) error
	FindByID(ctx context.Context, id uint) (*domain.Cliente, error)
	FindByUsuarioID(ctx context.Context, usuarioID uint) (*domain.Cliente, error)
	List(ctx context.Context, skip, limit int) ([]domain.Cliente, error)
	Save(ctx context.Context, cliente *domain.Cliente) error
	Delete(ctx context.Context, cliente *domain.Cliente) error
}

type clienteRepository struct {
	db *gorm.DB
}

func NewClienteRepository(db *gorm.DB) ClienteRepository {
	return &clienteRepository{db: db}
}

func (r *clienteRepository) Create(ctx context.Context, cliente *domain.Cliente) error {
	return r.db.WithContext(ctx).Create(cliente).Error
}

func (r *clienteRepository) FindByID(ctx context.Context, id uint) (*domain.Cliente, error) {
	cliente := &domain.Cliente{}
	if err := r.db.WithContext(ctx).First(cliente, "id_cliente = ?", id).Error; err != nil {
		return nil, err
	}
	return cliente, nil
}

func (r *clienteRepository) FindByUsuarioID(ctx context.Context, usuarioID uint) (*domain.Cliente, error) {
	cliente := &domain.Cliente{}
	if err := r.db.WithContext(ctx).First(cliente, "id_usuario = ?", usuarioID).Error; err != nil {
		return nil, err
	}
	return cliente, nil
}

func (r *clienteRepository) List(ctx context.Context, skip, limit int) ([]domain.Cliente, error) {
	var clientes []domain.Cliente
	if err := r.db.WithContext(ctx).Offset(skip).Limit(limit).Find(&clientes).Error; err != nil {
		return nil, err
	}
	return clientes, nil
}

func (r *clienteRepository) Save(ctx context.Context, cliente *domain.Cliente) error {
	return r.db.WithContext(ctx).Save(cliente).Error
}

func (r *clienteRepository) Delete(ctx context.Context, cliente *domain.Cliente) error {
	return r.db.WithContext(ctx).Delete(cliente).Error
}

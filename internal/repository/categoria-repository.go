package repository

import (
	"context"

	"github.com/rosalinebakery/store_service/internal/domain"
	"gorm.io/gorm"
)

type CategoriaRepository interface {
	Create(ctx context.Context, categoria *domain.Categoria) error
	FindByID(ctx context.Context, id uint) (*domain.Categoria, error)
	List(ctx context.Context, skip, limit int) ([]domain.Categoria, error)
	Save(ctx context.Context, categoria *domain.Categoria) error
	Delete(ctx context.Context, categoria *domain.Categoria) error
}

type categoriaRepository struct {
	db *gorm.DB
}

func NewCategoriaRepository(db *gorm.DB) CategoriaRepository {
	return &categoriaRepository{db: db}
}

func (r *categoriaRepository) Create(ctx context.Context, categoria *domain.Categoria) error {
	return r.db.WithContext(ctx).Create(categoria).Error
}

func (r *categoriaRepository) FindByID(ctx context.Context, id uint) (*domain.Categoria, error) {
	categoria := &domain.Categoria{}
	if err := r.db.WithContext(ctx).First(categoria, "id_categoria = ?", id).Error; err != nil {
		return nil, err
	}
	return categoria, nil
}

func (r *categoriaRepository) List(ctx context.Context, skip, limit int) ([]domain.Categoria, error) {
	var categorias []domain.Categoria
	if err := r.db.WithContext(ctx).Offset(skip).Limit(limit).Find(&categorias).Error; err != nil {
		return nil, err
	}
	return categorias, nil
}

func (r *categoriaRepository) Save(ctx context.Context, categoria *domain.Categoria) error {
	return r.db.WithContext(ctx).Save(categoria).Error
}

func (r *categoriaRepository) Delete(ctx context.Context, categoria *domain.Categoria) error {
	return r.db.WithContext(ctx).Delete(categoria).Error
}

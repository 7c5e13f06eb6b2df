package repository

import (
	"context"
	"errors"

	"github.com/rosalinebakery/store_service/internal/domain"
	"github.com/rosalinebakery/store_service/internal/dto"
	"gorm.io/gorm"
)

type UsuarioRepository interface {
	Create(ctx context.Context, usuario *domain.Usuario) error
	FindByID(ctx context.Context, id uint) (*domain.Usuario, error)
	FindByCorreo(ctx context.Context, correo string) (*domain.Usuario, error)
	List(ctx context.Context, skip, limit int, filter dto.UsuarioFilter) ([]domain.Usuario, error)
	Save(ctx context.Context, usuario *domain.Usuario) error
	Delete(ctx context.Context, usuario *domain.Usuario) error
}

type usuarioRepository struct {
	db *gorm.DB
}

func NewUsuarioRepository(db *gorm.DB) UsuarioRepository {
	return &usuarioRepository{db: db}
}

func (r *usuarioRepository) Create(ctx context.Context, usuario *domain.Usuario) error {
	if usuario == nil {
		return errors.New("nil usuario")
	}
	return r.db.WithContext(ctx).Create(usuario).Error
}

func (r *usuarioRepository) FindByID(ctx context.Context, id uint) (*domain.Usuario, error) {
	usuario := &domain.Usuario{}
	if err := r.db.WithContext(ctx).First(usuario, "id_usuario = ?", id).Error; err != nil {
		return nil, err
	}
	return usuario, nil
}

func (r *usuarioRepository) FindByCorreo(ctx context.Context, correo string) (*domain.Usuario, error) {
	usuario := &domain.Usuario{}
	if err := r.db.WithContext(ctx).First(usuario, "correo = ?", correo).Error; err != nil {
		return nil, err
	}
	return usuario, nil
}

func (r *usuarioRepository) List(ctx context.Context, skip, limit int, filter dto.UsuarioFilter) ([]domain.Usuario, error) {
	var usuarios []domain.Usuario
	q := r.db.WithContext(ctx).Model(&domain.Usuario{})
	if filter.Rol != "" {
		q = q.Where("rol = ?", filter.Rol)
	}
	if filter.Correo != "" {
		q = q.Where("correo = ?", filter.Correo)
	}
	if filter.EmailVerificado != "" {
		q = q.Where("email_verificado = ?", filter.EmailVerificado)
	}
	if err := q.Offset(skip).Limit(limit).Find(&usuarios).Error; err != nil {
		return nil, err
	}
	return usuarios, nil
}

func (r *usuarioRepository) Save(ctx context.Context, usuario *domain.Usuario) error {
	if usuario == nil {
		return errors.New("nil usuario")
	}
	return r.db.WithContext(ctx).Save(usuario).Error
}

func (r *usuarioRepository) Delete(ctx context.Context, usuario *domain.Usuario) error {
	if usuario == nil {
		return errors.New("nil usuario")
	}
	return r.db.WithContext(ctx).Delete(usuario).Error
}

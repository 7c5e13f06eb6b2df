package repository

import (
	"context"

	"github.com/rosalinebakery/store_service/internal/domain"
	"github.com/rosalinebakery/store_service/internal/dto"
	"gorm.io/gorm"
)

// AuditLogRepository reads audit rows written by the database trigger; the
// application never creates them itself.
type AuditLogRepository interface {
	List(ctx context.Context, skip, limit int, filter dto.AuditLogFilter) ([]domain.AuditLog, error)
	FindByRecord(ctx context.Context, tablaNombre string, registroID uint, skip, limit int) ([]domain.AuditLog, error)
}

type auditLogRepository struct {
	db *gorm.DB
}

func NewAuditLogRepository(db *gorm.DB) AuditLogRepository {
	return &auditLogRepository{db: db}
}

func (r *auditLogRepository) List(ctx context.Context, skip, limit int, filter dto.AuditLogFilter) ([]domain.AuditLog, error) {
	var logs []domain.AuditLog
	q := r.db.WithContext(ctx).Model(&domain.AuditLog{})
	if filter.TablaNombre != "" {
		q = q.Where("tabla_nombre = ?", filter.TablaNombre)
	}
	if filter.RegistroID != 0 {
		q = q.Where("registro_id = ?", filter.RegistroID)
	}
	if filter.Accion != "" {
		q = q.Where("accion = ?", filter.Accion)
	}
	if filter.UsuarioID != 0 {
		q = q.Where("usuario_id = ?", filter.UsuarioID)
	}
	if filter.FechaDesde != nil {
		q = q.Where("fecha_accion >= ?", filter.FechaDesde)
	}
	if filter.FechaHasta != nil {
		q = q.Where("fecha_accion <= ?", filter.FechaHasta)
	}
	if err := q.Order("fecha_accion DESC").Offset(skip).Limit(limit).Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (r *auditLogRepository) FindByRecord(ctx context.Context, tablaNombre string, registroID uint, skip, limit int) ([]domain.AuditLog, error) {
	var logs []domain.AuditLog
	if err := r.db.WithContext(ctx).
		Where("tabla_nombre = ? AND registro_id = ?", tablaNombre, registroID).
		Order("fecha_accion DESC").
		Offset(skip).Limit(limit).
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

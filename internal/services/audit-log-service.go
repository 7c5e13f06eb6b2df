package services

import (
	"context"

	"github.com/rosalinebakery/store_service/internal/domain"
	"github.com/rosalinebakery/store_service/internal/dto"
	"github.com/rosalinebakery/store_service/internal/repository"
)

type AuditLogService interface {
	Listar(ctx context.Context, skip, limit int, filter dto.AuditLogFilter) ([]domain.AuditLog, error)
	HistorialRegistro(ctx context.Context, tablaNombre string, registroID uint, skip, limit int) ([]domain.AuditLog, error)
}

type auditLogService struct {
	repo repository.AuditLogRepository
}

func NewAuditLogService(repo repository.AuditLogRepository) AuditLogService {
	return &auditLogService{repo: repo}
}

func (s *auditLogService) Listar(ctx context.Context, skip, limit int, filter dto.AuditLogFilter) ([]domain.AuditLog, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	return s.repo.List(ctx, skip, limit, filter)
}

func (s *auditLogService) HistorialRegistro(ctx context.Context, tablaNombre string, registroID uint, skip, limit int) ([]domain.AuditLog, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	return s.repo.FindByRecord(ctx, tablaNombre, registroID, skip, limit)
}

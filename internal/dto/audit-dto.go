package dto

import "time"

type AuditLogFilter struct {
	TablaNombre string
	RegistroID  uint
	Accion      string
	UsuarioID   uint
	FechaDesde  *time.Time
	FechaHasta  *time.Time
}

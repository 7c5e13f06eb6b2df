package domain

import (
	"time"

	"gorm.io/datatypes"
)

// AuditLog is one captured mutation on a tracked table. Rows are written by
// the database trigger; usuario_id, usuario_email, ip_address and endpoint
// are filled in afterwards by the correlator, best effort.
type AuditLog struct {
	ID              uint           `gorm:"column:id_audit;primaryKey" json:"id_audit"`
	TablaNombre     string         `gorm:"column:tabla_nombre;type:varchar(100);not null;index" json:"tabla_nombre"`
	RegistroID      uint           `gorm:"column:registro_id;not null;index" json:"registro_id"`
	Accion          string         `gorm:"column:accion;type:varchar(10);not null;index" json:"accion"`
	UsuarioID       *uint          `gorm:"column:usuario_id;index" json:"usuario_id,omitempty"`
	UsuarioEmail    *string        `gorm:"column:usuario_email;type:varchar(255)" json:"usuario_email,omitempty"`
	IPAddress       *string        `gorm:"column:ip_address;type:varchar(45)" json:"ip_address,omitempty"`
	Endpoint        *string        `gorm:"column:endpoint;type:varchar(255)" json:"endpoint,omitempty"`
	DatosAnteriores datatypes.JSON `gorm:"column:datos_anteriores" json:"datos_anteriores,omitempty"`
	DatosNuevos     datatypes.JSON `gorm:"column:datos_nuevos" json:"datos_nuevos,omitempty"`
	Cambios         datatypes.JSON `gorm:"column:cambios" json:"cambios,omitempty"`
	FechaAccion     time.Time      `gorm:"column:fecha_accion;not null;index" json:"fecha_accion"`
	MetadatosExtra  datatypes.JSON `gorm:"column:metadata" json:"metadata,omitempty"`
}

func (AuditLog) TableName() string { return "audit_log" }

package domain

import "time"

const CarritoCompletado = "completado"

type Carrito struct {
	ID            uint      `gorm:"column:id_carrito;primaryKey" json:"id_carrito"`
	ClienteID     uint      `gorm:"column:id_cliente;not null;index:idx_carrito_cliente_estado" json:"id_cliente"`
	FechaCreacion time.Time `gorm:"column:fecha_creacion" json:"fecha_creacion"`
	Estado        string    `gorm:"column:estado;type:varchar(20);default:activo;index:idx_carrito_cliente_estado" json:"estado"`

	Cliente *Cliente `gorm:"foreignKey:ClienteID;constraint:OnDelete:CASCADE" json:"cliente,omitempty"`
}

func (Carrito) TableName() string { return "carrito" }

func (c Carrito) AuditRecordID() uint { return c.ID }

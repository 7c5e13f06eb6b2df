package domain

import "time"

type Cliente struct {
	ID            uint      `gorm:"column:id_cliente;primaryKey" json:"id_cliente"`
	UsuarioID     uint      `gorm:"column:id_usuario;uniqueIndex;not null" json:"id_usuario"`
	Nombre        string    `gorm:"column:nombre;type:varchar(255);not null" json:"nombre"`
	Apellido      string    `gorm:"column:apellido;type:varchar(255);not null" json:"apellido"`
	Telefono      *string   `gorm:"column:telefono;type:varchar(15)" json:"telefono,omitempty"`
	Direccion     *string   `gorm:"column:direccion;type:text" json:"direccion,omitempty"`
	FechaRegistro time.Time `gorm:"column:fecha_registro" json:"fecha_registro"`

	Usuario *Usuario `gorm:"foreignKey:UsuarioID;constraint:OnDelete:CASCADE" json:"usuario,omitempty"`
}

func (Cliente) TableName() string { return "clientes" }

func (c Cliente) AuditRecordID() uint { return c.ID }

package domain

import "time"

const (
	RolCliente    = "cliente"
	RolAdmin      = "admin"
	RolSuperAdmin = "super_admin"
)

type Usuario struct {
	ID                      uint       `gorm:"column:id_usuario;primaryKey" json:"id_usuario"`
	Correo                  string     `gorm:"column:correo;type:varchar(255);uniqueIndex;not null" json:"correo"`
	ContrasenaHash          string     `gorm:"column:contraseña;type:varchar(255);not null" json:"-"`
	Rol                     string     `gorm:"column:rol;type:varchar(50);not null;default:cliente" json:"rol"`
	FechaCreacion           time.Time  `gorm:"column:fecha_creacion;not null" json:"fecha_creacion"`
	EmailVerificado         string     `gorm:"column:email_verificado;type:varchar(1);not null;default:N" json:"email_verificado"`
	TokenConfirmacion       *string    `gorm:"column:token_confirmacion;type:varchar(6);index" json:"-"`
	TokenConfirmacionExpira *time.Time `gorm:"column:token_confirmacion_expira" json:"-"`
	TokenReset              *string    `gorm:"column:token_reset;type:varchar(6)" json:"-"`
	TokenResetExpira        *time.Time `gorm:"column:token_reset_expira" json:"-"`
}

func (Usuario) TableName() string { return "usuarios" }

func (u Usuario) AuditRecordID() uint { return u.ID }

func (u Usuario) EsAdmin() bool {
	return u.Rol == RolAdmin || u.Rol == RolSuperAdmin
}

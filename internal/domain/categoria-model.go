package domain

const (
	EstadoActivo   = "activo"
	EstadoInactivo = "inactivo"
)

type Categoria struct {
	ID                uint    `gorm:"column:id_categoria;primaryKey" json:"id_categoria"`
	Nombre            string  `gorm:"column:nombre;type:varchar(255);not null" json:"nombre"`
	DescripcionCorta  string  `gorm:"column:descripcion_corta;type:varchar(255);not null" json:"descripcion_corta"`
	DescripcionLarga  *string `gorm:"column:descripcion_larga;type:text" json:"descripcion_larga,omitempty"`
	Estado            string  `gorm:"column:estado;type:varchar(20);default:activo;index" json:"estado"`
}

func (Categoria) TableName() string { return "categorias" }

func (c Categoria) AuditRecordID() uint { return c.ID }

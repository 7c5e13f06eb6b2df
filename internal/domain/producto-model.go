package domain

type Producto struct {
	ID          uint    `gorm:"column:id_producto;primaryKey" json:"id_producto"`
	CategoriaID uint    `gorm:"column:id_categoria;not null;index:idx_producto_categoria_estado" json:"id_categoria"`
	Nombre      string  `gorm:"column:nombre;type:varchar(255);not null" json:"nombre"`
	Descripcion string  `gorm:"column:descripcion;type:text;not null" json:"descripcion"`
	Cantidad    int     `gorm:"column:cantidad;not null;default:0" json:"cantidad"`
	Precio      float64 `gorm:"column:precio;type:numeric(10,2);not null" json:"precio"`
	ImagenURL   *string `gorm:"column:imagen_url;type:varchar(255)" json:"imagen_url,omitempty"`
	Estado      string  `gorm:"column:estado;type:varchar(20);default:activo;index:idx_producto_categoria_estado" json:"estado"`

	Categoria *Categoria `gorm:"foreignKey:CategoriaID" json:"categoria,omitempty"`
}

func (Producto) TableName() string { return "productos" }

func (p Producto) AuditRecordID() uint { return p.ID }

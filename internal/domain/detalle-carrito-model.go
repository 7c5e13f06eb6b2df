package domain

type DetalleCarrito struct {
	ID             uint    `gorm:"column:id_detalle_carrito;primaryKey" json:"id_detalle_carrito"`
	CarritoID      uint    `gorm:"column:id_carrito;not null;index" json:"id_carrito"`
	ProductoID     uint    `gorm:"column:id_producto;not null" json:"id_producto"`
	Cantidad       int     `gorm:"column:cantidad;not null;default:1" json:"cantidad"`
	PrecioUnitario float64 `gorm:"column:precio_unitario;type:numeric(10,2);not null" json:"precio_unitario"`
	Subtotal       float64 `gorm:"column:subtotal;type:numeric(10,2)" json:"subtotal"`

	Carrito  *Carrito  `gorm:"foreignKey:CarritoID;constraint:OnDelete:CASCADE" json:"carrito,omitempty"`
	Producto *Producto `gorm:"foreignKey:ProductoID" json:"producto,omitempty"`
}

func (DetalleCarrito) TableName() string { return "detalle_carrito" }

func (d DetalleCarrito) AuditRecordID() uint { return d.ID }

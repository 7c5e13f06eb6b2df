package domain

type DetallePedido struct {
	ID             uint    `gorm:"column:id_detalle;primaryKey" json:"id_detalle"`
	PedidoID       uint    `gorm:"column:id_pedido;not null;index" json:"id_pedido"`
	ProductoID     uint    `gorm:"column:id_producto;not null" json:"id_producto"`
	Cantidad       int     `gorm:"column:cantidad;not null;default:1" json:"cantidad"`
	PrecioUnitario float64 `gorm:"column:precio_unitario;type:numeric(10,2);not null" json:"precio_unitario"`
	Subtotal       float64 `gorm:"column:subtotal;type:numeric(10,2)" json:"subtotal"`

	Pedido   *Pedido   `gorm:"foreignKey:PedidoID;constraint:OnDelete:CASCADE" json:"pedido,omitempty"`
	Producto *Producto `gorm:"foreignKey:ProductoID" json:"producto,omitempty"`
}

func (DetallePedido) TableName() string { return "detalle_pedidos" }

func (d DetallePedido) AuditRecordID() uint { return d.ID }

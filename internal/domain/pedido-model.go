package domain

import "time"

const (
	PedidoPendiente       = "pendiente"
	PedidoPagoConfirmado  = "Pago confirmado"
	PedidoEnPreparacion   = "En preparación"
	PedidoEnDomicilio     = "En domicilio"
	PedidoListoRecoger    = "Listo para recoger"
	PedidoEntregado       = "Entregado"
)

type Pedido struct {
	ID             uint      `gorm:"column:id_pedido;primaryKey" json:"id_pedido"`
	ClienteID      uint      `gorm:"column:id_cliente;not null;index:idx_pedido_cliente_estado" json:"id_cliente"`
	Estado         string    `gorm:"column:estado;type:varchar(20);default:pendiente;index:idx_pedido_cliente_estado" json:"estado"`
	DireccionEnvio string    `gorm:"column:direccion_envio;type:text;not null" json:"direccion_envio"`
	FechaPedido    time.Time `gorm:"column:fecha_pedido;index" json:"fecha_pedido"`
	MetodoPago     string    `gorm:"column:metodo_pago;type:varchar(50);default:PayPal" json:"metodo_pago"`

	Cliente *Cliente `gorm:"foreignKey:ClienteID;constraint:OnDelete:CASCADE" json:"cliente,omitempty"`
}

func (Pedido) TableName() string { return "pedidos" }

func (p Pedido) AuditRecordID() uint { return p.ID }

// EstadoFinal reports whether the order no longer accepts line changes.
func (p Pedido) EstadoFinal() bool {
	return p.Estado == "entregado" || p.Estado == PedidoEntregado || p.Estado == "cancelado"
}

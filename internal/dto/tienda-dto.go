package dto

type ClienteCreate struct {
	UsuarioID uint    `json:"id_usuario" validate:"required"`
	Nombre    string  `json:"nombre" validate:"required"`
	Apellido  string  `json:"apellido" validate:"required"`
	Telefono  *string `json:"telefono,omitempty"`
	Direccion *string `json:"direccion,omitempty"`
}

type CategoriaCreate struct {
	Nombre           string  `json:"nombre" validate:"required"`
	DescripcionCorta string  `json:"descripcion_corta" validate:"required"`
	DescripcionLarga *string `json:"descripcion_larga,omitempty"`
	Estado           string  `json:"estado"`
}

type ProductoCreate struct {
	CategoriaID uint    `json:"id_categoria" validate:"required"`
	Nombre      string  `json:"nombre" validate:"required"`
	Descripcion string  `json:"descripcion" validate:"required"`
	Cantidad    int     `json:"cantidad" validate:"gte=0"`
	Precio      float64 `json:"precio" validate:"required,gt=0"`
	ImagenURL   *string `json:"imagen_url,omitempty"`
	Estado      string  `json:"estado"`
}

type ProductoFilter struct {
	Nombre string
	Estado string
}

type PedidoCreate struct {
	ClienteID      uint   `json:"id_cliente" validate:"required"`
	Estado         string `json:"estado"`
	DireccionEnvio string `json:"direccion_envio" validate:"required"`
	MetodoPago     string `json:"metodo_pago"`
}

type DetallePedidoCreate struct {
	PedidoID       uint    `json:"id_pedido" validate:"required"`
	ProductoID     uint    `json:"id_producto" validate:"required"`
	Cantidad       int     `json:"cantidad" validate:"required,gt=0,lte=1000"`
	PrecioUnitario float64 `json:"precio_unitario" validate:"required,gt=0"`
}

type CarritoCreate struct {
	ClienteID uint   `json:"id_cliente" validate:"required"`
	Estado    string `json:"estado"`
}

type DetalleCarritoCreate struct {
	CarritoID      uint     `json:"id_carrito" validate:"required"`
	ProductoID     uint     `json:"id_producto" validate:"required"`
	Cantidad       int      `json:"cantidad" validate:"required,gt=0,lte=1000"`
	PrecioUnitario float64  `json:"precio_unitario" validate:"required,gt=0"`
	Subtotal       *float64 `json:"subtotal,omitempty"`
}

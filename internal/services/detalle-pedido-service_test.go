package services

import (
	"context"
	"testing"

	"github.com/rosalinebakery/store_service/internal/domain"
	"github.com/rosalinebakery/store_service/internal/dto"
	"github.com/rosalinebakery/store_service/internal/repository"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type pedidoFixture struct {
	svc      DetallePedidoService
	db       *gorm.DB
	producto *domain.Producto
	pedido   *domain.Pedido
	admin    dto.TokenClaims
}

func newPedidoFixture(t *testing.T) *pedidoFixture {
	t.Helper()
	db := newTestDB(t)

	admin := seedUsuario(t, db, "admin@tienda.test", domain.RolAdmin)
	duenoPedido := seedUsuario(t, db, "cli@tienda.test", domain.RolCliente)
	cliente := seedCliente(t, db, duenoPedido.ID)
	categoria := seedCategoria(t, db, domain.EstadoActivo)
	producto := seedProducto(t, db, categoria.ID, 10)
	pedido := seedPedido(t, db, cliente.ID, domain.PedidoPendiente)

	pedidoSvc := NewPedidoService(repository.NewPedidoRepository(db), repository.NewClienteRepository(db))
	svc := NewDetallePedidoService(
		repository.NewDetallePedidoRepository(db),
		pedidoSvc,
		repository.NewProductoRepository(db),
	)

	return &pedidoFixture{
		svc:      svc,
		db:       db,
		producto: producto,
		pedido:   pedido,
		admin:    claimsFor(admin),
	}
}

func (f *pedidoFixture) stock(t *testing.T) int {
	t.Helper()
	var producto domain.Producto
	require.NoError(t, f.db.First(&producto, f.producto.ID).Error)
	return producto.Cantidad
}

func TestCrearLineaDescuentaStockYCalculaSubtotal(t *testing.T) {
	f := newPedidoFixture(t)
	ctx := context.Background()

	detalle, err := f.svc.Crear(ctx, dto.DetallePedidoCreate{
		PedidoID:       f.pedido.ID,
		ProductoID:     f.producto.ID,
		Cantidad:       4,
		PrecioUnitario: 18.50,
	}, f.admin)
	require.NoError(t, err)
	require.Equal(t, 74.0, detalle.Subtotal)
	require.Equal(t, 6, f.stock(t))
}

func TestCrearLineaRechazaStockInsuficiente(t *testing.T) {
	f := newPedidoFixture(t)
	ctx := context.Background()

	_, err := f.svc.Crear(ctx, dto.DetallePedidoCreate{
		PedidoID:       f.pedido.ID,
		ProductoID:     f.producto.ID,
		Cantidad:       11,
		PrecioUnitario: 18.50,
	}, f.admin)
	require.ErrorIs(t, err, ErrConflict)
	require.Equal(t, 10, f.stock(t))
}

func TestCrearLineaRechazaPedidoFinalizado(t *testing.T) {
	f := newPedidoFixture(t)
	ctx := context.Background()

	require.NoError(t, f.db.Model(f.pedido).Update("estado", domain.PedidoEntregado).Error)

	_, err := f.svc.Crear(ctx, dto.DetallePedidoCreate{
		PedidoID:       f.pedido.ID,
		ProductoID:     f.producto.ID,
		Cantidad:       1,
		PrecioUnitario: 18.50,
	}, f.admin)
	require.ErrorIs(t, err, ErrConflict)
}

func TestActualizarLineaReajustaStock(t *testing.T) {
	f := newPedidoFixture(t)
	ctx := context.Background()

	detalle, err := f.svc.Crear(ctx, dto.DetallePedidoCreate{
		PedidoID:       f.pedido.ID,
		ProductoID:     f.producto.ID,
		Cantidad:       4,
		PrecioUnitario: 18.50,
	}, f.admin)
	require.NoError(t, err)
	require.Equal(t, 6, f.stock(t))

	// shrinking the line returns units to stock
	actualizado, err := f.svc.Actualizar(ctx, detalle.ID, dto.DetallePedidoCreate{
		PedidoID:       f.pedido.ID,
		ProductoID:     f.producto.ID,
		Cantidad:       2,
		PrecioUnitario: 18.50,
	}, f.admin)
	require.NoError(t, err)
	require.Equal(t, 2, actualizado.Cantidad)
	require.Equal(t, 37.0, actualizado.Subtotal)
	require.Equal(t, 8, f.stock(t))

	// growing it may consume the freed units plus the remaining stock
	_, err = f.svc.Actualizar(ctx, detalle.ID, dto.DetallePedidoCreate{
		PedidoID:       f.pedido.ID,
		ProductoID:     f.producto.ID,
		Cantidad:       10,
		PrecioUnitario: 18.50,
	}, f.admin)
	require.NoError(t, err)
	require.Equal(t, 0, f.stock(t))

	// beyond line quantity plus stock is rejected
	_, err = f.svc.Actualizar(ctx, detalle.ID, dto.DetallePedidoCreate{
		PedidoID:       f.pedido.ID,
		ProductoID:     f.producto.ID,
		Cantidad:       11,
		PrecioUnitario: 18.50,
	}, f.admin)
	require.ErrorIs(t, err, ErrConflict)
}

func TestEliminarLineaRestauraStock(t *testing.T) {
	f := newPedidoFixture(t)
	ctx := context.Background()

	detalle, err := f.svc.Crear(ctx, dto.DetallePedidoCreate{
		PedidoID:       f.pedido.ID,
		ProductoID:     f.producto.ID,
		Cantidad:       4,
		PrecioUnitario: 18.50,
	}, f.admin)
	require.NoError(t, err)
	require.Equal(t, 6, f.stock(t))

	require.NoError(t, f.svc.Eliminar(ctx, detalle.ID, f.admin))
	require.Equal(t, 10, f.stock(t))
}

func TestLineasDePedidoRespetanPropiedad(t *testing.T) {
	f := newPedidoFixture(t)
	ctx := context.Background()

	intruso := seedUsuario(t, f.db, "otro@tienda.test", domain.RolCliente)
	seedCliente(t, f.db, intruso.ID)

	_, err := f.svc.Crear(ctx, dto.DetallePedidoCreate{
		PedidoID:       f.pedido.ID,
		ProductoID:     f.producto.ID,
		Cantidad:       1,
		PrecioUnitario: 18.50,
	}, claimsFor(intruso))
	require.ErrorIs(t, err, ErrForbidden)
}

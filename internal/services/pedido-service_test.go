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

func newPedidoService(t *testing.T) (PedidoService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return NewPedidoService(repository.NewPedidoRepository(db), repository.NewClienteRepository(db)), db
}

func TestCrearPedidoSoloParaClientePropio(t *testing.T) {
	svc, db := newPedidoService(t)
	ctx := context.Background()

	dueno := seedUsuario(t, db, "cli@tienda.test", domain.RolCliente)
	cliente := seedCliente(t, db, dueno.ID)
	intruso := seedUsuario(t, db, "otro@tienda.test", domain.RolCliente)

	_, err := svc.Crear(ctx, dto.PedidoCreate{
		ClienteID:      cliente.ID,
		DireccionEnvio: "Calle Mayor 1",
	}, claimsFor(intruso))
	require.ErrorIs(t, err, ErrForbidden)

	pedido, err := svc.Crear(ctx, dto.PedidoCreate{
		ClienteID:      cliente.ID,
		DireccionEnvio: "Calle Mayor 1",
	}, claimsFor(dueno))
	require.NoError(t, err)
	require.Equal(t, domain.PedidoPendiente, pedido.Estado)
	require.Equal(t, "PayPal", pedido.MetodoPago)
}

func TestObtenerPedidoRespetaPropiedad(t *testing.T) {
	svc, db := newPedidoService(t)
	ctx := context.Background()

	dueno := seedUsuario(t, db, "cli@tienda.test", domain.RolCliente)
	cliente := seedCliente(t, db, dueno.ID)
	pedido := seedPedido(t, db, cliente.ID, domain.PedidoPendiente)

	intruso := seedUsuario(t, db, "otro@tienda.test", domain.RolCliente)
	seedCliente(t, db, intruso.ID)
	admin := seedUsuario(t, db, "admin@tienda.test", domain.RolAdmin)

	_, err := svc.Obtener(ctx, pedido.ID, claimsFor(intruso))
	require.ErrorIs(t, err, ErrForbidden)

	_, err = svc.Obtener(ctx, pedido.ID, claimsFor(dueno))
	require.NoError(t, err)

	_, err = svc.Obtener(ctx, pedido.ID, claimsFor(admin))
	require.NoError(t, err)
}

func TestListarPorEstadoSegunRol(t *testing.T) {
	svc, db := newPedidoService(t)
	ctx := context.Background()

	duenoA := seedUsuario(t, db, "a@tienda.test", domain.RolCliente)
	clienteA := seedCliente(t, db, duenoA.ID)
	duenoB := seedUsuario(t, db, "b@tienda.test", domain.RolCliente)
	clienteB := domain.Cliente{UsuarioID: duenoB.ID, Nombre: "Bea", Apellido: "Blanco"}
	require.NoError(t, db.Create(&clienteB).Error)
	admin := seedUsuario(t, db, "admin@tienda.test", domain.RolAdmin)

	seedPedido(t, db, clienteA.ID, domain.PedidoPendiente)
	seedPedido(t, db, clienteB.ID, domain.PedidoPendiente)
	seedPedido(t, db, clienteB.ID, domain.PedidoEntregado)

	// a client only sees their own orders in that state
	pedidos, err := svc.ListarPorEstado(ctx, domain.PedidoPendiente, claimsFor(duenoB))
	require.NoError(t, err)
	require.Len(t, pedidos, 1)
	require.Equal(t, clienteB.ID, pedidos[0].ClienteID)

	// an admin sees every order in that state
	pedidos, err = svc.ListarPorEstado(ctx, domain.PedidoPendiente, claimsFor(admin))
	require.NoError(t, err)
	require.Len(t, pedidos, 2)

	_, err = svc.ListarPorEstado(ctx, "volando", claimsFor(admin))
	require.ErrorIs(t, err, ErrInvalid)
}

func TestActualizarEstadoValidaTransicion(t *testing.T) {
	svc, db := newPedidoService(t)
	ctx := context.Background()

	dueno := seedUsuario(t, db, "cli@tienda.test", domain.RolCliente)
	cliente := seedCliente(t, db, dueno.ID)
	pedido := seedPedido(t, db, cliente.ID, domain.PedidoPendiente)

	actualizado, err := svc.ActualizarEstado(ctx, pedido.ID, domain.PedidoEnPreparacion)
	require.NoError(t, err)
	require.Equal(t, domain.PedidoEnPreparacion, actualizado.Estado)

	_, err = svc.ActualizarEstado(ctx, pedido.ID, "volando")
	require.ErrorIs(t, err, ErrInvalid)

	_, err = svc.ActualizarEstado(ctx, 999, domain.PedidoEntregado)
	require.ErrorIs(t, err, ErrNotFound)
}

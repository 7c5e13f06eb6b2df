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

func newClienteService(t *testing.T) (ClienteService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return NewClienteService(repository.NewClienteRepository(db), repository.NewUsuarioRepository(db)), db
}

func TestCrearClienteSoloParaUsuarioPropio(t *testing.T) {
	svc, db := newClienteService(t)
	ctx := context.Background()

	usuario := seedUsuario(t, db, "cli@tienda.test", domain.RolCliente)
	otro := seedUsuario(t, db, "otro@tienda.test", domain.RolCliente)

	_, err := svc.Crear(ctx, dto.ClienteCreate{
		UsuarioID: otro.ID,
		Nombre:    "Rosa",
		Apellido:  "Linde",
	}, claimsFor(usuario))
	require.ErrorIs(t, err, ErrForbidden)

	cliente, err := svc.Crear(ctx, dto.ClienteCreate{
		UsuarioID: usuario.ID,
		Nombre:    "Rosa",
		Apellido:  "Linde",
	}, claimsFor(usuario))
	require.NoError(t, err)
	require.Equal(t, usuario.ID, cliente.UsuarioID)

	// one profile per account
	_, err = svc.Crear(ctx, dto.ClienteCreate{
		UsuarioID: usuario.ID,
		Nombre:    "Rosa",
		Apellido:  "Linde",
	}, claimsFor(usuario))
	require.ErrorIs(t, err, ErrConflict)
}

func TestCrearClienteExigeUsuarioExistente(t *testing.T) {
	svc, db := newClienteService(t)
	ctx := context.Background()
	admin := seedUsuario(t, db, "admin@tienda.test", domain.RolAdmin)

	_, err := svc.Crear(ctx, dto.ClienteCreate{
		UsuarioID: 999,
		Nombre:    "Rosa",
		Apellido:  "Linde",
	}, claimsFor(admin))
	require.ErrorIs(t, err, ErrNotFound)
}

func TestObtenerClienteRespetaPropiedad(t *testing.T) {
	svc, db := newClienteService(t)
	ctx := context.Background()

	usuario := seedUsuario(t, db, "cli@tienda.test", domain.RolCliente)
	cliente := seedCliente(t, db, usuario.ID)
	intruso := seedUsuario(t, db, "otro@tienda.test", domain.RolCliente)
	admin := seedUsuario(t, db, "admin@tienda.test", domain.RolAdmin)

	_, err := svc.Obtener(ctx, cliente.ID, claimsFor(intruso))
	require.ErrorIs(t, err, ErrForbidden)

	_, err = svc.Obtener(ctx, cliente.ID, claimsFor(usuario))
	require.NoError(t, err)

	_, err = svc.Obtener(ctx, cliente.ID, claimsFor(admin))
	require.NoError(t, err)

	propio, err := svc.ObtenerPorUsuario(ctx, usuario.ID)
	require.NoError(t, err)
	require.Equal(t, cliente.ID, propio.ID)
}

func TestActualizarClienteCambiaDatosDeContacto(t *testing.T) {
	svc, db := newClienteService(t)
	ctx := context.Background()

	usuario := seedUsuario(t, db, "cli@tienda.test", domain.RolCliente)
	cliente := seedCliente(t, db, usuario.ID)

	telefono := "600111222"
	actualizado, err := svc.Actualizar(ctx, cliente.ID, dto.ClienteCreate{
		UsuarioID: usuario.ID,
		Nombre:    "Rosalía",
		Apellido:  "Linde",
		Telefono:  &telefono,
	}, claimsFor(usuario))
	require.NoError(t, err)
	require.Equal(t, "Rosalía", actualizado.Nombre)
	require.NotNil(t, actualizado.Telefono)
	require.Equal(t, telefono, *actualizado.Telefono)
}

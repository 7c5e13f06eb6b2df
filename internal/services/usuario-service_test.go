package services

import (
	"context"
	"testing"
	"time"

	"github.com/rosalinebakery/store_service/internal/domain"
	"github.com/rosalinebakery/store_service/internal/dto"
	"github.com/rosalinebakery/store_service/internal/repository"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newUsuarioService(t *testing.T) (UsuarioService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return NewUsuarioService(repository.NewUsuarioRepository(db), nil), db
}

func TestRegistrarCreaCuentaSinVerificar(t *testing.T) {
	svc, _ := newUsuarioService(t)
	ctx := context.Background()

	usuario, err := svc.Registrar(ctx, dto.UsuarioCreate{
		Correo:     "Nueva@Tienda.Test",
		Contrasena: "secreto123",
	})
	require.NoError(t, err)
	require.Equal(t, "nueva@tienda.test", usuario.Correo)
	require.Equal(t, domain.RolCliente, usuario.Rol)
	require.Equal(t, "N", usuario.EmailVerificado)
	require.NotNil(t, usuario.TokenConfirmacion)
	require.Len(t, *usuario.TokenConfirmacion, 6)
	require.NotNil(t, usuario.TokenConfirmacionExpira)
}

func TestRegistrarRechazaCorreoDuplicado(t *testing.T) {
	svc, db := newUsuarioService(t)
	ctx := context.Background()
	seedUsuario(t, db, "ana@tienda.test", domain.RolCliente)

	_, err := svc.Registrar(ctx, dto.UsuarioCreate{
		Correo:     "ana@tienda.test",
		Contrasena: "secreto123",
	})
	require.ErrorIs(t, err, ErrConflict)
}

func TestRegistrarValidaEntrada(t *testing.T) {
	svc, _ := newUsuarioService(t)
	ctx := context.Background()

	_, err := svc.Registrar(ctx, dto.UsuarioCreate{Correo: "a@b.test", Contrasena: "corta"})
	require.ErrorIs(t, err, ErrInvalid)

	_, err = svc.Registrar(ctx, dto.UsuarioCreate{Correo: "a@b.test", Contrasena: "secreto123", Rol: "jefe"})
	require.ErrorIs(t, err, ErrInvalid)
}

func TestAutenticarExigeCuentaConfirmada(t *testing.T) {
	svc, _ := newUsuarioService(t)
	ctx := context.Background()

	registrado, err := svc.Registrar(ctx, dto.UsuarioCreate{
		Correo:     "ana@tienda.test",
		Contrasena: "secreto123",
	})
	require.NoError(t, err)

	_, err = svc.Autenticar(ctx, "ana@tienda.test", "secreto123")
	require.ErrorIs(t, err, ErrForbidden)

	_, err = svc.ConfirmarCuenta(ctx, "ana@tienda.test", *registrado.TokenConfirmacion)
	require.NoError(t, err)

	usuario, err := svc.Autenticar(ctx, "ana@tienda.test", "secreto123")
	require.NoError(t, err)
	require.Equal(t, "S", usuario.EmailVerificado)

	_, err = svc.Autenticar(ctx, "ana@tienda.test", "incorrecta")
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestConfirmarCuentaRechazaPinInvalidoOExpirado(t *testing.T) {
	svc, db := newUsuarioService(t)
	ctx := context.Background()

	registrado, err := svc.Registrar(ctx, dto.UsuarioCreate{
		Correo:     "ana@tienda.test",
		Contrasena: "secreto123",
	})
	require.NoError(t, err)

	_, err = svc.ConfirmarCuenta(ctx, "ana@tienda.test", "000000")
	require.ErrorIs(t, err, ErrNotFound)

	expirado := time.Now().UTC().Add(-time.Minute)
	require.NoError(t, db.Model(&domain.Usuario{}).
		Where("id_usuario = ?", registrado.ID).
		Update("token_confirmacion_expira", expirado).Error)

	_, err = svc.ConfirmarCuenta(ctx, "ana@tienda.test", *registrado.TokenConfirmacion)
	require.ErrorIs(t, err, ErrConflict)
}

func TestRecuperacionDeContrasenaConPin(t *testing.T) {
	svc, db := newUsuarioService(t)
	ctx := context.Background()
	seedUsuario(t, db, "ana@tienda.test", domain.RolCliente)

	require.NoError(t, svc.SolicitarRecuperacion(ctx, "ana@tienda.test"))

	var usuario domain.Usuario
	require.NoError(t, db.First(&usuario, "correo = ?", "ana@tienda.test").Error)
	require.NotNil(t, usuario.TokenReset)

	require.True(t, svc.ValidarPinRecuperacion(ctx, "ana@tienda.test", *usuario.TokenReset))
	require.False(t, svc.ValidarPinRecuperacion(ctx, "ana@tienda.test", "000000"))

	err := svc.CambiarContrasenaConPin(ctx, dto.CambiarContrasenaRequest{
		Correo:          "ana@tienda.test",
		Pin:             *usuario.TokenReset,
		NuevaContrasena: "nuevosecreto",
	})
	require.NoError(t, err)

	_, err = svc.Autenticar(ctx, "ana@tienda.test", "nuevosecreto")
	require.NoError(t, err)

	// the PIN is single use
	require.False(t, svc.ValidarPinRecuperacion(ctx, "ana@tienda.test", *usuario.TokenReset))
}

func TestSolicitarRecuperacionNoRevelaCuentasInexistentes(t *testing.T) {
	svc, _ := newUsuarioService(t)
	require.NoError(t, svc.SolicitarRecuperacion(context.Background(), "nadie@tienda.test"))
}

func TestActualizarRespetaJerarquiaDeRoles(t *testing.T) {
	svc, db := newUsuarioService(t)
	ctx := context.Background()

	admin := seedUsuario(t, db, "admin@tienda.test", domain.RolAdmin)
	otroAdmin := seedUsuario(t, db, "admin2@tienda.test", domain.RolAdmin)
	cliente := seedUsuario(t, db, "cli@tienda.test", domain.RolCliente)
	super := seedUsuario(t, db, "root@tienda.test", domain.RolSuperAdmin)

	rolAdmin := domain.RolAdmin
	verificado := "S"

	// an admin cannot touch another admin
	_, err := svc.Actualizar(ctx, otroAdmin.ID, dto.UsuarioUpdate{Rol: &rolAdmin}, claimsFor(admin))
	require.ErrorIs(t, err, ErrForbidden)

	// only super admins manage email verification
	_, err = svc.Actualizar(ctx, cliente.ID, dto.UsuarioUpdate{EmailVerificado: &verificado}, claimsFor(admin))
	require.ErrorIs(t, err, ErrForbidden)

	// a super admin cannot demote their own role
	rolCliente := domain.RolCliente
	_, err = svc.Actualizar(ctx, super.ID, dto.UsuarioUpdate{Rol: &rolCliente}, claimsFor(super))
	require.ErrorIs(t, err, ErrForbidden)

	// promoting a regular user works for admins
	actualizado, err := svc.Actualizar(ctx, cliente.ID, dto.UsuarioUpdate{Rol: &rolAdmin}, claimsFor(admin))
	require.NoError(t, err)
	require.Equal(t, domain.RolAdmin, actualizado.Rol)
}

func TestEliminarRespetaJerarquiaDeRoles(t *testing.T) {
	svc, db := newUsuarioService(t)
	ctx := context.Background()

	admin := seedUsuario(t, db, "admin@tienda.test", domain.RolAdmin)
	otroAdmin := seedUsuario(t, db, "admin2@tienda.test", domain.RolAdmin)
	cliente := seedUsuario(t, db, "cli@tienda.test", domain.RolCliente)
	super := seedUsuario(t, db, "root@tienda.test", domain.RolSuperAdmin)

	require.ErrorIs(t, svc.Eliminar(ctx, admin.ID, claimsFor(admin)), ErrForbidden)
	require.ErrorIs(t, svc.Eliminar(ctx, otroAdmin.ID, claimsFor(admin)), ErrForbidden)

	require.NoError(t, svc.Eliminar(ctx, cliente.ID, claimsFor(admin)))
	require.NoError(t, svc.Eliminar(ctx, otroAdmin.ID, claimsFor(super)))

	_, err := svc.Obtener(ctx, cliente.ID)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestListarFiltraPorRolYVerificacion(t *testing.T) {
	svc, db := newUsuarioService(t)
	ctx := context.Background()

	seedUsuario(t, db, "admin@tienda.test", domain.RolAdmin)
	seedUsuario(t, db, "cli1@tienda.test", domain.RolCliente)
	seedUsuario(t, db, "cli2@tienda.test", domain.RolCliente)

	usuarios, err := svc.Listar(ctx, 0, 100, dto.UsuarioFilter{Rol: domain.RolCliente})
	require.NoError(t, err)
	require.Len(t, usuarios, 2)

	usuarios, err = svc.Listar(ctx, 0, 100, dto.UsuarioFilter{Correo: "admin@tienda.test"})
	require.NoError(t, err)
	require.Len(t, usuarios, 1)
	require.Equal(t, domain.RolAdmin, usuarios[0].Rol)
}

package audit

import (
	"context"
	"testing"
	"time"

	"github.com/rosalinebakery/store_service/internal/domain"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedProducto(t *testing.T, db *gorm.DB) *domain.Producto {
	t.Helper()
	categoria := domain.Categoria{Nombre: "Tartas", DescripcionCorta: "Tartas de la casa", Estado: domain.EstadoActivo}
	require.NoError(t, db.Create(&categoria).Error)

	producto := domain.Producto{
		CategoriaID: categoria.ID,
		Nombre:      "Tarta de santiago",
		Descripcion: "Almendra y limón",
		Cantidad:    10,
		Precio:      18.50,
		Estado:      domain.EstadoActivo,
	}
	require.NoError(t, db.Create(&producto).Error)
	return &producto
}

func TestCallbackEnrichesAfterUpdate(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, RegisterCallbacks(db, NewCorrelator()))

	producto := seedProducto(t, db)

	// stands in for the row the database trigger would have written
	auditID := seedAuditRow(t, db, producto.ID, "UPDATE", time.Now().UTC())

	producto.Precio = 19.00
	require.NoError(t, db.WithContext(requestCtx(42)).Save(producto).Error)

	var got domain.AuditLog
	require.NoError(t, db.First(&got, auditID).Error)
	require.NotNil(t, got.UsuarioID)
	require.Equal(t, uint(42), *got.UsuarioID)
	require.NotNil(t, got.Endpoint)
}

func TestCallbackEnrichesAfterDelete(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, RegisterCallbacks(db, NewCorrelator()))

	producto := seedProducto(t, db)
	auditID := seedAuditRow(t, db, producto.ID, "DELETE", time.Now().UTC())

	require.NoError(t, db.WithContext(requestCtx(42)).Delete(producto).Error)

	var got domain.AuditLog
	require.NoError(t, db.First(&got, auditID).Error)
	require.NotNil(t, got.UsuarioID)
	require.Equal(t, uint(42), *got.UsuarioID)
}

func TestCallbackWithoutContextLeavesRowUntouched(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, RegisterCallbacks(db, NewCorrelator()))

	producto := seedProducto(t, db)
	auditID := seedAuditRow(t, db, producto.ID, "UPDATE", time.Now().UTC())

	producto.Cantidad = 4
	require.NoError(t, db.Save(producto).Error)

	var got domain.AuditLog
	require.NoError(t, db.First(&got, auditID).Error)
	require.Nil(t, got.UsuarioID)
	require.Nil(t, got.Endpoint)
}

func TestCallbackFailureDoesNotAbortMutation(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, RegisterCallbacks(db, NewCorrelator()))

	producto := seedProducto(t, db)
	require.NoError(t, db.Migrator().DropTable(&domain.AuditLog{}))

	producto.Precio = 21.00
	require.NoError(t, db.WithContext(requestCtx(42)).Save(producto).Error)

	var got domain.Producto
	require.NoError(t, db.First(&got, producto.ID).Error)
	require.Equal(t, 21.00, got.Precio)
}

func TestCallbackIgnoresUntrackedModels(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, RegisterCallbacks(db, NewCorrelator()))

	// writes to the audit table itself never recurse into the correlator
	row := domain.AuditLog{
		TablaNombre: "productos",
		RegistroID:  1,
		Accion:      "INSERT",
		FechaAccion: time.Now().UTC(),
	}
	require.NoError(t, db.WithContext(requestCtx(42)).Create(&row).Error)

	var got domain.AuditLog
	require.NoError(t, db.First(&got, row.ID).Error)
	require.Nil(t, got.UsuarioID)
}

func TestRequestContextIsolation(t *testing.T) {
	base := context.Background()

	done := make(chan struct{})
	for i := uint(1); i <= 8; i++ {
		go func(id uint) {
			defer func() { done <- struct{}{} }()
			ctx := WithRequestContext(base, RequestContext{UsuarioID: &id, IPAddress: "10.0.0.1", Endpoint: "POST /pedidos/"})
			rc, ok := FromContext(ctx)
			require.True(t, ok)
			require.Equal(t, id, *rc.UsuarioID)
		}(i)
	}
	for i := 0; i < 8; i++ {
		<-done
	}

	_, ok := FromContext(base)
	require.False(t, ok)
}

package audit

import (
	"context"
	"testing"
	"time"

	"github.com/rosalinebakery/store_service/internal/domain"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// in-memory sqlite lives per connection
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&domain.Categoria{},
		&domain.Producto{},
		&domain.AuditLog{},
	))
	return db
}

func requestCtx(usuarioID uint) context.Context {
	return WithRequestContext(context.Background(), RequestContext{
		UsuarioID:    &usuarioID,
		UsuarioEmail: "ana@tienda.test",
		IPAddress:    "10.0.0.9",
		Endpoint:     "PUT /productos/7",
	})
}

func seedAuditRow(t *testing.T, db *gorm.DB, registroID uint, accion string, fecha time.Time) uint {
	t.Helper()
	row := domain.AuditLog{
		TablaNombre: "productos",
		RegistroID:  registroID,
		Accion:      accion,
		FechaAccion: fecha,
	}
	require.NoError(t, db.Create(&row).Error)
	return row.ID
}

func TestEnrichAttachesRequestContext(t *testing.T) {
	db := newTestDB(t)
	c := NewCorrelator()

	id := seedAuditRow(t, db, 7, "UPDATE", time.Now().UTC())
	c.Enrich(requestCtx(42), db, "productos", 7, ActionUpdate)

	var got domain.AuditLog
	require.NoError(t, db.First(&got, id).Error)
	require.NotNil(t, got.UsuarioID)
	require.Equal(t, uint(42), *got.UsuarioID)
	require.NotNil(t, got.UsuarioEmail)
	require.Equal(t, "ana@tienda.test", *got.UsuarioEmail)
	require.NotNil(t, got.IPAddress)
	require.Equal(t, "10.0.0.9", *got.IPAddress)
	require.NotNil(t, got.Endpoint)
	require.Equal(t, "PUT /productos/7", *got.Endpoint)
}

func TestEnrichPicksMostRecentMatch(t *testing.T) {
	db := newTestDB(t)
	c := NewCorrelator()

	now := time.Now().UTC()
	older := seedAuditRow(t, db, 7, "UPDATE", now.Add(-1500*time.Millisecond))
	newer := seedAuditRow(t, db, 7, "UPDATE", now)

	c.Enrich(requestCtx(42), db, "productos", 7, ActionUpdate)

	var got domain.AuditLog
	require.NoError(t, db.First(&got, newer).Error)
	require.NotNil(t, got.UsuarioID)

	got = domain.AuditLog{}
	require.NoError(t, db.First(&got, older).Error)
	require.Nil(t, got.UsuarioID)
}

func TestEnrichIgnoresRowsOutsideWindow(t *testing.T) {
	db := newTestDB(t)
	c := NewCorrelator()

	id := seedAuditRow(t, db, 7, "UPDATE", time.Now().UTC().Add(-3*time.Second))
	c.Enrich(requestCtx(42), db, "productos", 7, ActionUpdate)

	var got domain.AuditLog
	require.NoError(t, db.First(&got, id).Error)
	require.Nil(t, got.UsuarioID)
	require.Nil(t, got.Endpoint)
}

func TestEnrichIgnoresOtherActionsAndRecords(t *testing.T) {
	db := newTestDB(t)
	c := NewCorrelator()

	insert := seedAuditRow(t, db, 7, "INSERT", time.Now().UTC())
	otro := seedAuditRow(t, db, 8, "UPDATE", time.Now().UTC())

	c.Enrich(requestCtx(42), db, "productos", 7, ActionUpdate)

	var got domain.AuditLog
	require.NoError(t, db.First(&got, insert).Error)
	require.Nil(t, got.UsuarioID)
	got = domain.AuditLog{}
	require.NoError(t, db.First(&got, otro).Error)
	require.Nil(t, got.UsuarioID)
}

func TestEnrichWithoutContextIsNoop(t *testing.T) {
	db := newTestDB(t)
	c := NewCorrelator()

	id := seedAuditRow(t, db, 7, "UPDATE", time.Now().UTC())

	c.Enrich(context.Background(), db, "productos", 7, ActionUpdate)
	c.Enrich(WithRequestContext(context.Background(), RequestContext{}), db, "productos", 7, ActionUpdate)

	var got domain.AuditLog
	require.NoError(t, db.First(&got, id).Error)
	require.Nil(t, got.UsuarioID)
}

func TestEnrichSwallowsStorageErrors(t *testing.T) {
	db := newTestDB(t)
	c := NewCorrelator()

	require.NoError(t, db.Migrator().DropTable(&domain.AuditLog{}))

	// must not panic and must not surface an error anywhere
	c.Enrich(requestCtx(42), db, "productos", 7, ActionUpdate)
	require.NoError(t, db.Error)
}

package services

import (
	"testing"
	"time"

	"github.com/rosalinebakery/store_service/internal/domain"
	"github.com/rosalinebakery/store_service/internal/dto"
	"github.com/rosalinebakery/store_service/internal/helper"
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
		&domain.Usuario{},
		&domain.Cliente{},
		&domain.Categoria{},
		&domain.Producto{},
		&domain.Pedido{},
		&domain.DetallePedido{},
		&domain.Carrito{},
		&domain.DetalleCarrito{},
		&domain.AuditLog{},
	))
	return db
}

func seedUsuario(t *testing.T, db *gorm.DB, correo, rol string) *domain.Usuario {
	t.Helper()
	hash, err := helper.HashPassword("secreto123")
	require.NoError(t, err)

	usuario := domain.Usuario{
		Correo:          correo,
		ContrasenaHash:  hash,
		Rol:             rol,
		FechaCreacion:   time.Now().UTC(),
		EmailVerificado: "S",
	}
	require.NoError(t, db.Create(&usuario).Error)
	return &usuario
}

func seedCliente(t *testing.T, db *gorm.DB, usuarioID uint) *domain.Cliente {
	t.Helper()
	cliente := domain.Cliente{
		UsuarioID:     usuarioID,
		Nombre:        "Rosa",
		Apellido:      "Linde",
		FechaRegistro: time.Now().UTC(),
	}
	require.NoError(t, db.Create(&cliente).Error)
	return &cliente
}

func seedCategoria(t *testing.T, db *gorm.DB, estado string) *domain.Categoria {
	t.Helper()
	categoria := domain.Categoria{
		Nombre:           "Tartas",
		DescripcionCorta: "Tartas de la casa",
		Estado:           estado,
	}
	require.NoError(t, db.Create(&categoria).Error)
	return &categoria
}

func seedProducto(t *testing.T, db *gorm.DB, categoriaID uint, cantidad int) *domain.Producto {
	t.Helper()
	producto := domain.Producto{
		CategoriaID: categoriaID,
		Nombre:      "Tarta de santiago",
		Descripcion: "Almendra y limón",
		Cantidad:    cantidad,
		Precio:      18.50,
		Estado:      domain.EstadoActivo,
	}
	require.NoError(t, db.Create(&producto).Error)
	return &producto
}

func seedPedido(t *testing.T, db *gorm.DB, clienteID uint, estado string) *domain.Pedido {
	t.Helper()
	pedido := domain.Pedido{
		ClienteID:      clienteID,
		Estado:         estado,
		DireccionEnvio: "Calle Mayor 1",
		FechaPedido:    time.Now().UTC(),
		MetodoPago:     "PayPal",
	}
	require.NoError(t, db.Create(&pedido).Error)
	return &pedido
}

func seedCarrito(t *testing.T, db *gorm.DB, clienteID uint, estado string) *domain.Carrito {
	t.Helper()
	carrito := domain.Carrito{
		ClienteID:     clienteID,
		FechaCreacion: time.Now().UTC(),
		Estado:        estado,
	}
	require.NoError(t, db.Create(&carrito).Error)
	return &carrito
}

func claimsFor(usuario *domain.Usuario) dto.TokenClaims {
	return dto.TokenClaims{
		UsuarioID: usuario.ID,
		Correo:    usuario.Correo,
		Rol:       usuario.Rol,
	}
}

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

func newProductoService(t *testing.T) (ProductoService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return NewProductoService(repository.NewProductoRepository(db), repository.NewCategoriaRepository(db)), db
}

func TestCrearProductoExigeCategoriaActiva(t *testing.T) {
	svc, db := newProductoService(t)
	ctx := context.Background()

	inactiva := seedCategoria(t, db, domain.EstadoInactivo)

	_, err := svc.Crear(ctx, dto.ProductoCreate{
		CategoriaID: inactiva.ID,
		Nombre:      "Tarta",
		Descripcion: "De almendra",
		Cantidad:    5,
		Precio:      18.50,
	})
	require.ErrorIs(t, err, ErrConflict)

	_, err = svc.Crear(ctx, dto.ProductoCreate{
		CategoriaID: 999,
		Nombre:      "Tarta",
		Descripcion: "De almendra",
		Cantidad:    5,
		Precio:      18.50,
	})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestCrearProductoValidaPrecioYCantidad(t *testing.T) {
	svc, db := newProductoService(t)
	ctx := context.Background()
	categoria := seedCategoria(t, db, domain.EstadoActivo)

	_, err := svc.Crear(ctx, dto.ProductoCreate{
		CategoriaID: categoria.ID,
		Nombre:      "Tarta",
		Descripcion: "De almendra",
		Cantidad:    5,
		Precio:      0,
	})
	require.ErrorIs(t, err, ErrInvalid)

	_, err = svc.Crear(ctx, dto.ProductoCreate{
		CategoriaID: categoria.ID,
		Nombre:      "Tarta",
		Descripcion: "De almendra",
		Cantidad:    -1,
		Precio:      18.50,
	})
	require.ErrorIs(t, err, ErrInvalid)
}

func TestListarProductosFiltraPorNombreYEstado(t *testing.T) {
	svc, db := newProductoService(t)
	ctx := context.Background()
	categoria := seedCategoria(t, db, domain.EstadoActivo)

	_, err := svc.Crear(ctx, dto.ProductoCreate{
		CategoriaID: categoria.ID, Nombre: "Tarta de santiago", Descripcion: "x", Cantidad: 5, Precio: 18.50,
	})
	require.NoError(t, err)
	_, err = svc.Crear(ctx, dto.ProductoCreate{
		CategoriaID: categoria.ID, Nombre: "Pan de centeno", Descripcion: "x", Cantidad: 5, Precio: 3.20,
		Estado: domain.EstadoInactivo,
	})
	require.NoError(t, err)

	productos, err := svc.Listar(ctx, 0, 100, dto.ProductoFilter{Nombre: "santiago"})
	require.NoError(t, err)
	require.Len(t, productos, 1)

	productos, err = svc.Listar(ctx, 0, 100, dto.ProductoFilter{Estado: domain.EstadoInactivo})
	require.NoError(t, err)
	require.Len(t, productos, 1)
	require.Equal(t, "Pan de centeno", productos[0].Nombre)
}

func TestEliminarCategoriaConProductosFalla(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	productoRepo := repository.NewProductoRepository(db)
	categoriaSvc := NewCategoriaService(repository.NewCategoriaRepository(db), productoRepo)

	categoria := seedCategoria(t, db, domain.EstadoActivo)
	seedProducto(t, db, categoria.ID, 5)

	require.ErrorIs(t, categoriaSvc.Eliminar(ctx, categoria.ID), ErrConflict)

	require.NoError(t, db.Where("id_categoria = ?", categoria.ID).Delete(&domain.Producto{}).Error)
	require.NoError(t, categoriaSvc.Eliminar(ctx, categoria.ID))
}

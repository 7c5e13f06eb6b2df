package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rosalinebakery/store_service/internal/api/rest/middleware"
	"github.com/rosalinebakery/store_service/internal/dto"
	"github.com/rosalinebakery/store_service/internal/helper"
	"github.com/rosalinebakery/store_service/internal/helper/utils"
	"github.com/rosalinebakery/store_service/internal/services"
)

type ProductoHandler struct {
	svc  services.ProductoService
	auth helper.Auth
}

func NewProductoHandler(svc services.ProductoService, auth helper.Auth) *ProductoHandler {
	return &ProductoHandler{svc: svc, auth: auth}
}

func (h *ProductoHandler) SetupRoutes(app *fiber.App) {
	productos := app.Group("/productos")

	// catalog reads are public
	productos.Get("/", h.Listar)
	productos.Get("/categoria/:categoriaID", h.ListarPorCategoria)
	productos.Get("/:id", h.Obtener)

	admin := productos.Group("", middleware.AuthMiddleware(h.auth), middleware.AdminOnly())
	admin.Post("/", h.Crear)
	admin.Put("/:id", h.Actualizar)
	admin.Delete("/:id", h.Eliminar)
}

func (h *ProductoHandler) Crear(ctx *fiber.Ctx) error {
	var body dto.ProductoCreate
	if err := ctx.BodyParser(&body); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "entrada inválida")
	}
	if body.Nombre == "" || body.Descripcion == "" || body.CategoriaID == 0 {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "nombre, descripción y categoría son obligatorios")
	}

	producto, err := h.svc.Crear(ctx.UserContext(), body)
	if err != nil {
		return utils.ResponseServiceError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusCreated, producto)
}

func (h *ProductoHandler) Obtener(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil || id <= 0 {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "id inválido")
	}

	producto, err := h.svc.Obtener(ctx.UserContext(), uint(id))
	if err != nil {
		return utils.ResponseServiceError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, producto)
}

func (h *ProductoHandler) Listar(ctx *fiber.Ctx) error {
	skip := ctx.QueryInt("skip", 0)
	limit := ctx.QueryInt("limit", 100)
	filter := dto.ProductoFilter{
		Nombre: ctx.Query("nombre"),
		Estado: ctx.Query("estado"),
	}

	productos, err := h.svc.Listar(ctx.UserContext(), skip, limit, filter)
	if err != nil {
		return utils.ResponseServiceError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, productos)
}

func (h *ProductoHandler) ListarPorCategoria(ctx *fiber.Ctx) error {
	categoriaID, err := ctx.ParamsInt("categoriaID")
	if err != nil || categoriaID <= 0 {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "id de categoría inválido")
	}

	productos, err := h.svc.ListarPorCategoria(ctx.UserContext(), uint(categoriaID))
	if err != nil {
		return utils.ResponseServiceError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, productos)
}

func (h *ProductoHandler) Actualizar(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil || id <= 0 {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "id inválido")
	}

	var body dto.ProductoCreate
	if err := ctx.BodyParser(&body); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "entrada inválida")
	}
	if body.Nombre == "" || body.Descripcion == "" || body.CategoriaID == 0 {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "nombre, descripción y categoría son obligatorios")
	}

	producto, err := h.svc.Actualizar(ctx.UserContext(), uint(id), body)
	if err != nil {
		return utils.ResponseServiceError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, producto)
}

func (h *ProductoHandler) Eliminar(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil || id <= 0 {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "id inválido")
	}

	if err := h.svc.Eliminar(ctx.UserContext(), uint(id)); err != nil {
		return utils.ResponseServiceError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, dto.MensajeResponse{
		Mensaje: "producto eliminado correctamente",
	})
}

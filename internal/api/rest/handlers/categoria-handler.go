package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rosalinebakery/store_service/internal/api/rest/middleware"
	"github.com/rosalinebakery/store_service/internal/dto"
	"github.com/rosalinebakery/store_service/internal/helper"
	"github.com/rosalinebakery/store_service/internal/helper/utils"
	"github.com/rosalinebakery/store_service/internal/services"
)

type CategoriaHandler struct {
	svc  services.CategoriaService
	auth helper.Auth
}

func NewCategoriaHandler(svc services.CategoriaService, auth helper.Auth) *CategoriaHandler {
	return &CategoriaHandler{svc: svc, auth: auth}
}

func (h *CategoriaHandler) SetupRoutes(app *fiber.App) {
	categorias := app.Group("/categorias")

	// catalog reads are public
	categorias.Get("/", h.Listar)
	categorias.Get("/:id", h.Obtener)

	admin := categorias.Group("", middleware.AuthMiddleware(h.auth), middleware.AdminOnly())
	admin.Post("/", h.Crear)
	admin.Put("/:id", h.Actualizar)
	admin.Delete("/:id", h.Eliminar)
}

func (h *CategoriaHandler) Crear(ctx *fiber.Ctx) error {
	var body dto.CategoriaCreate
	if err := ctx.BodyParser(&body); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "entrada inválida")
	}
	if body.Nombre == "" || body.DescripcionCorta == "" {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "nombre y descripción corta son obligatorios")
	}

	categoria, err := h.svc.Crear(ctx.UserContext(), body)
	if err != nil {
		return utils.ResponseServiceError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusCreated, categoria)
}

func (h *CategoriaHandler) Obtener(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil || id <= 0 {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "id inválido")
	}

	categoria, err := h.svc.Obtener(ctx.UserContext(), uint(id))
	if err != nil {
		return utils.ResponseServiceError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, categoria)
}

func (h *CategoriaHandler) Listar(ctx *fiber.Ctx) error {
	skip := ctx.QueryInt("skip", 0)
	limit := ctx.QueryInt("limit", 100)

	categorias, err := h.svc.Listar(ctx.UserContext(), skip, limit)
	if err != nil {
		return utils.ResponseServiceError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, categorias)
}

func (h *CategoriaHandler) Actualizar(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil || id <= 0 {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "id inválido")
	}

	var body dto.CategoriaCreate
	if err := ctx.BodyParser(&body); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "entrada inválida")
	}
	if body.Nombre == "" || body.DescripcionCorta == "" {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "nombre y descripción corta son obligatorios")
	}

	categoria, err := h.svc.Actualizar(ctx.UserContext(), uint(id), body)
	if err != nil {
		return utils.ResponseServiceError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, categoria)
}

func (h *CategoriaHandler) Eliminar(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil || id <= 0 {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "id inválido")
	}

	if err := h.svc.Eliminar(ctx.UserContext(), uint(id)); err != nil {
		return utils.ResponseServiceError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, dto.MensajeResponse{
		Mensaje: "categoría eliminada correctamente",
	})
}

package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rosalinebakery/store_service/internal/api/rest/middleware"
	"github.com/rosalinebakery/store_service/internal/dto"
	"github.com/rosalinebakery/store_service/internal/helper"
	"github.com/rosalinebakery/store_service/internal/helper/utils"
	"github.com/rosalinebakery/store_service/internal/services"
)

type ClienteHandler struct {
	svc  services.ClienteService
	auth helper.Auth
}

func NewClienteHandler(svc services.ClienteService, auth helper.Auth) *ClienteHandler {
	return &ClienteHandler{svc: svc, auth: auth}
}

func (h *ClienteHandler) SetupRoutes(app *fiber.App) {
	clientes := app.Group("/clientes", middleware.AuthMiddleware(h.auth))

	clientes.Post("/", h.Crear)
	clientes.Get("/me", h.MiPerfil)
	clientes.Get("/:id", h.Obtener)
	clientes.Put("/:id", h.Actualizar)

	admin := clientes.Group("", middleware.AdminOnly())
	admin.Get("/", h.Listar)
	admin.Delete("/:id", h.Eliminar)
}

func (h *ClienteHandler) Crear(ctx *fiber.Ctx) error {
	claims, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, err.Error())
	}

	var body dto.ClienteCreate
	if err := ctx.BodyParser(&body); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "entrada inválida")
	}
	if body.Nombre == "" || body.Apellido == "" {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "nombre y apellido son obligatorios")
	}
	if body.UsuarioID == 0 {
		body.UsuarioID = claims.UsuarioID
	}

	cliente, err := h.svc.Crear(ctx.UserContext(), body, claims)
	if err != nil {
		return utils.ResponseServiceError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusCreated, cliente)
}

func (h *ClienteHandler) MiPerfil(ctx *fiber.Ctx) error {
	claims, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, err.Error())
	}

	cliente, err := h.svc.ObtenerPorUsuario(ctx.UserContext(), claims.UsuarioID)
	if err != nil {
		return utils.ResponseServiceError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, cliente)
}

func (h *ClienteHandler) Obtener(ctx *fiber.Ctx) error {
	claims, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, err.Error())
	}
	id, err := ctx.ParamsInt("id")
	if err != nil || id <= 0 {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "id inválido")
	}

	cliente, err := h.svc.Obtener(ctx.UserContext(), uint(id), claims)
	if err != nil {
		return utils.ResponseServiceError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, cliente)
}

func (h *ClienteHandler) Listar(ctx *fiber.Ctx) error {
	skip := ctx.QueryInt("skip", 0)
	limit := ctx.QueryInt("limit", 100)

	clientes, err := h.svc.Listar(ctx.UserContext(), skip, limit)
	if err != nil {
		return utils.ResponseServiceError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, clientes)
}

func (h *ClienteHandler) Actualizar(ctx *fiber.Ctx) error {
	claims, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, err.Error())
	}
	id, err := ctx.ParamsInt("id")
	if err != nil || id <= 0 {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "id inválido")
	}

	var body dto.ClienteCreate
	if err := ctx.BodyParser(&body); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "entrada inválida")
	}
	if body.Nombre == "" || body.Apellido == "" {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "nombre y apellido son obligatorios")
	}

	cliente, err := h.svc.Actualizar(ctx.UserContext(), uint(id), body, claims)
	if err != nil {
		return utils.ResponseServiceError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, cliente)
}

func (h *ClienteHandler) Eliminar(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil || id <= 0 {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "id inválido")
	}

	if err := h.svc.Eliminar(ctx.UserContext(), uint(id)); err != nil {
		return utils.ResponseServiceError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, dto.MensajeResponse{
		Mensaje: "cliente eliminado correctamente",
	})
}

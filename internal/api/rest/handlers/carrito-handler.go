package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rosalinebakery/store_service/internal/api/rest/middleware"
	"github.com/rosalinebakery/store_service/internal/dto"
	"github.com/rosalinebakery/store_service/internal/helper"
	"github.com/rosalinebakery/store_service/internal/helper/utils"
	"github.com/rosalinebakery/store_service/internal/services"
)

type CarritoHandler struct {
	svc  services.CarritoService
	auth helper.Auth
}

func NewCarritoHandler(svc services.CarritoService, auth helper.Auth) *CarritoHandler {
	return &CarritoHandler{svc: svc, auth: auth}
}

func (h *CarritoHandler) SetupRoutes(app *fiber.App) {
	carritos := app.Group("/carritos", middleware.AuthMiddleware(h.auth))

	carritos.Post("/", h.Crear)
	carritos.Get("/cliente/:clienteID", h.ListarPorCliente)
	carritos.Get("/:id", h.Obtener)
	carritos.Patch("/:id/estado", h.ActualizarEstado)
	carritos.Delete("/:id", h.Eliminar)

	admin := carritos.Group("", middleware.AdminOnly())
	admin.Get("/", h.Listar)
}

func (h *CarritoHandler) Crear(ctx *fiber.Ctx) error {
	claims, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, err.Error())
	}

	var body dto.CarritoCreate
	if err := ctx.BodyParser(&body); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "entrada inválida")
	}
	if body.ClienteID == 0 {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "cliente es obligatorio")
	}

	carrito, err := h.svc.Crear(ctx.UserContext(), body, claims)
	if err != nil {
		return utils.ResponseServiceError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusCreated, carrito)
}

func (h *CarritoHandler) Obtener(ctx *fiber.Ctx) error {
	claims, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, err.Error())
	}
	id, err := ctx.ParamsInt("id")
	if err != nil || id <= 0 {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "id inválido")
	}

	carrito, err := h.svc.Obtener(ctx.UserContext(), uint(id), claims)
	if err != nil {
		return utils.ResponseServiceError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, carrito)
}

func (h *CarritoHandler) Listar(ctx *fiber.Ctx) error {
	skip := ctx.QueryInt("skip", 0)
	limit := ctx.QueryInt("limit", 100)

	carritos, err := h.svc.Listar(ctx.UserContext(), skip, limit)
	if err != nil {
		return utils.ResponseServiceError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, carritos)
}

func (h *CarritoHandler) ListarPorCliente(ctx *fiber.Ctx) error {
	claims, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, err.Error())
	}
	clienteID, err := ctx.ParamsInt("clienteID")
	if err != nil || clienteID <= 0 {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "id de cliente inválido")
	}

	carritos, err := h.svc.ListarPorCliente(ctx.UserContext(), uint(clienteID), claims)
	if err != nil {
		return utils.ResponseServiceError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, carritos)
}

func (h *CarritoHandler) ActualizarEstado(ctx *fiber.Ctx) error {
	claims, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, err.Error())
	}
	id, err := ctx.ParamsInt("id")
	if err != nil || id <= 0 {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "id inválido")
	}

	var body struct {
		Estado string `json:"estado"`
	}
	if err := ctx.BodyParser(&body); err != nil || body.Estado == "" {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "estado es obligatorio")
	}

	carrito, err := h.svc.ActualizarEstado(ctx.UserContext(), uint(id), body.Estado, claims)
	if err != nil {
		return utils.ResponseServiceError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, carrito)
}

func (h *CarritoHandler) Eliminar(ctx *fiber.Ctx) error {
	claims, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, err.Error())
	}
	id, err := ctx.ParamsInt("id")
	if err != nil || id <= 0 {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "id inválido")
	}

	if err := h.svc.Eliminar(ctx.UserContext(), uint(id), claims); err != nil {
		return utils.ResponseServiceError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, dto.MensajeResponse{
		Mensaje: "carrito eliminado correctamente",
	})
}

package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rosalinebakery/store_service/internal/api/rest/middleware"
	"github.com/rosalinebakery/store_service/internal/dto"
	"github.com/rosalinebakery/store_service/internal/helper"
	"github.com/rosalinebakery/store_service/internal/helper/utils"
	"github.com/rosalinebakery/store_service/internal/services"
)

type PedidoHandler struct {
	svc  services.PedidoService
	auth helper.Auth
}

func NewPedidoHandler(svc services.PedidoService, auth helper.Auth) *PedidoHandler {
	return &PedidoHandler{svc: svc, auth: auth}
}

func (h *PedidoHandler) SetupRoutes(app *fiber.App) {
	pedidos := app.Group("/pedidos", middleware.AuthMiddleware(h.auth))

	pedidos.Post("/", h.Crear)
	pedidos.Get("/estado/:estado", h.ListarPorEstado)
	pedidos.Get("/cliente/:clienteID", h.ListarPorCliente)
	pedidos.Get("/:id", h.Obtener)

	admin := pedidos.Group("", middleware.AdminOnly())
	admin.Get("/", h.Listar)
	admin.Patch("/:id/estado", h.ActualizarEstado)
	admin.Delete("/:id", h.Eliminar)
}

func (h *PedidoHandler) Crear(ctx *fiber.Ctx) error {
	claims, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, err.Error())
	}

	var body dto.PedidoCreate
	if err := ctx.BodyParser(&body); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "entrada inválida")
	}
	if body.ClienteID == 0 || body.DireccionEnvio == "" {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "cliente y dirección de envío son obligatorios")
	}

	pedido, err := h.svc.Crear(ctx.UserContext(), body, claims)
	if err != nil {
		return utils.ResponseServiceError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusCreated, pedido)
}

func (h *PedidoHandler) Obtener(ctx *fiber.Ctx) error {
	claims, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, err.Error())
	}
	id, err := ctx.ParamsInt("id")
	if err != nil || id <= 0 {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "id inválido")
	}

	pedido, err := h.svc.Obtener(ctx.UserContext(), uint(id), claims)
	if err != nil {
		return utils.ResponseServiceError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, pedido)
}

func (h *PedidoHandler) Listar(ctx *fiber.Ctx) error {
	skip := ctx.QueryInt("skip", 0)
	limit := ctx.QueryInt("limit", 100)

	pedidos, err := h.svc.Listar(ctx.UserContext(), skip, limit)
	if err != nil {
		return utils.ResponseServiceError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, pedidos)
}

func (h *PedidoHandler) ListarPorCliente(ctx *fiber.Ctx) error {
	claims, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, err.Error())
	}
	clienteID, err := ctx.ParamsInt("clienteID")
	if err != nil || clienteID <= 0 {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "id de cliente inválido")
	}
	skip := ctx.QueryInt("skip", 0)
	limit := ctx.QueryInt("limit", 100)

	pedidos, err := h.svc.ListarPorCliente(ctx.UserContext(), uint(clienteID), skip, limit, claims)
	if err != nil {
		return utils.ResponseServiceError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, pedidos)
}

func (h *PedidoHandler) ListarPorEstado(ctx *fiber.Ctx) error {
	claims, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, err.Error())
	}
	estado := ctx.Params("estado")

	pedidos, err := h.svc.ListarPorEstado(ctx.UserContext(), estado, claims)
	if err != nil {
		return utils.ResponseServiceError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, pedidos)
}

func (h *PedidoHandler) ActualizarEstado(ctx *fiber.Ctx) error {
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

	pedido, err := h.svc.ActualizarEstado(ctx.UserContext(), uint(id), body.Estado)
	if err != nil {
		return utils.ResponseServiceError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, pedido)
}

func (h *PedidoHandler) Eliminar(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil || id <= 0 {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "id inválido")
	}

	if err := h.svc.Eliminar(ctx.UserContext(), uint(id)); err != nil {
		return utils.ResponseServiceError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, dto.MensajeResponse{
		Mensaje: "pedido eliminado correctamente",
	})
}

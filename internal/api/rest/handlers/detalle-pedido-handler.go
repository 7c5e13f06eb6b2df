package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rosalinebakery/store_service/internal/api/rest/middleware"
	"github.com/rosalinebakery/store_service/internal/dto"
	"github.com/rosalinebakery/store_service/internal/helper"
	"github.com/rosalinebakery/store_service/internal/helper/utils"
	"github.com/rosalinebakery/store_service/internal/services"
)

type DetallePedidoHandler struct {
	svc  services.DetallePedidoService
	auth helper.Auth
}

func NewDetallePedidoHandler(svc services.DetallePedidoService, auth helper.Auth) *DetallePedidoHandler {
	return &DetallePedidoHandler{svc: svc, auth: auth}
}

func (h *DetallePedidoHandler) SetupRoutes(app *fiber.App) {
	detalles := app.Group("/detalle-pedidos", middleware.AuthMiddleware(h.auth))

	detalles.Post("/", h.Crear)
	detalles.Get("/pedido/:pedidoID", h.ListarPorPedido)
	detalles.Get("/:id", h.Obtener)
	detalles.Put("/:id", h.Actualizar)
	detalles.Delete("/:id", h.Eliminar)

	admin := detalles.Group("", middleware.AdminOnly())
	admin.Get("/", h.Listar)
}

func (h *DetallePedidoHandler) Crear(ctx *fiber.Ctx) error {
	claims, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, err.Error())
	}

	var body dto.DetallePedidoCreate
	if err := ctx.BodyParser(&body); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "entrada inválida")
	}
	if body.PedidoID == 0 || body.ProductoID == 0 {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "pedido y producto son obligatorios")
	}

	detalle, err := h.svc.Crear(ctx.UserContext(), body, claims)
	if err != nil {
		return utils.ResponseServiceError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusCreated, detalle)
}

func (h *DetallePedidoHandler) Obtener(ctx *fiber.Ctx) error {
	claims, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, err.Error())
	}
	id, err := ctx.ParamsInt("id")
	if err != nil || id <= 0 {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "id inválido")
	}

	detalle, err := h.svc.Obtener(ctx.UserContext(), uint(id), claims)
	if err != nil {
		return utils.ResponseServiceError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, detalle)
}

func (h *DetallePedidoHandler) Listar(ctx *fiber.Ctx) error {
	skip := ctx.QueryInt("skip", 0)
	limit := ctx.QueryInt("limit", 100)
	pedidoID := ctx.QueryInt("id_pedido", 0)

	detalles, err := h.svc.Listar(ctx.UserContext(), skip, limit, uint(pedidoID))
	if err != nil {
		return utils.ResponseServiceError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, detalles)
}

func (h *DetallePedidoHandler) ListarPorPedido(ctx *fiber.Ctx) error {
	claims, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, err.Error())
	}
	pedidoID, err := ctx.ParamsInt("pedidoID")
	if err != nil || pedidoID <= 0 {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "id de pedido inválido")
	}

	detalles, err := h.svc.ListarPorPedido(ctx.UserContext(), uint(pedidoID), claims)
	if err != nil {
		return utils.ResponseServiceError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, detalles)
}

func (h *DetallePedidoHandler) Actualizar(ctx *fiber.Ctx) error {
	claims, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, err.Error())
	}
	id, err := ctx.ParamsInt("id")
	if err != nil || id <= 0 {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "id inválido")
	}

	var body dto.DetallePedidoCreate
	if err := ctx.BodyParser(&body); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "entrada inválida")
	}

	detalle, err := h.svc.Actualizar(ctx.UserContext(), uint(id), body, claims)
	if err != nil {
		return utils.ResponseServiceError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, detalle)
}

func (h *DetallePedidoHandler) Eliminar(ctx *fiber.Ctx) error {
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
		Mensaje: "detalle de pedido eliminado correctamente",
	})
}

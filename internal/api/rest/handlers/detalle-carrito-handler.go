package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rosalinebakery/store_service/internal/api/rest/middleware"
	"github.com/rosalinebakery/store_service/internal/dto"
	"github.com/rosalinebakery/store_service/internal/helper"
	"github.com/rosalinebakery/store_service/internal/helper/utils"
	"github.com/rosalinebakery/store_service/internal/services"
)

type DetalleCarritoHandler struct {
	svc  services.DetalleCarritoService
	auth helper.Auth
}

func NewDetalleCarritoHandler(svc services.DetalleCarritoService, auth helper.Auth) *DetalleCarritoHandler {
	return &DetalleCarritoHandler{svc: svc, auth: auth}
}

func (h *DetalleCarritoHandler) SetupRoutes(app *fiber.App) {
	detalles := app.Group("/detalle-carritos", middleware.AuthMiddleware(h.auth))

	detalles.Post("/", h.Agregar)
	detalles.Get("/carrito/:carritoID", h.ListarPorCarrito)
	detalles.Get("/:id", h.Obtener)
	detalles.Put("/:id", h.Actualizar)
	detalles.Delete("/:id", h.Eliminar)

	admin := detalles.Group("", middleware.AdminOnly())
	admin.Get("/", h.Listar)
}

func (h *DetalleCarritoHandler) Agregar(ctx *fiber.Ctx) error {
	claims, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, err.Error())
	}

	var body dto.DetalleCarritoCreate
	if err := ctx.BodyParser(&body); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "entrada inválida")
	}
	if body.CarritoID == 0 || body.ProductoID == 0 {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "carrito y producto son obligatorios")
	}

	detalle, err := h.svc.Agregar(ctx.UserContext(), body, claims)
	if err != nil {
		return utils.ResponseServiceError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusCreated, detalle)
}

func (h *DetalleCarritoHandler) Obtener(ctx *fiber.Ctx) error {
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

func (h *DetalleCarritoHandler) Listar(ctx *fiber.Ctx) error {
	skip := ctx.QueryInt("skip", 0)
	limit := ctx.QueryInt("limit", 100)
	carritoID := ctx.QueryInt("id_carrito", 0)

	detalles, err := h.svc.Listar(ctx.UserContext(), skip, limit, uint(carritoID))
	if err != nil {
		return utils.ResponseServiceError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, detalles)
}

func (h *DetalleCarritoHandler) ListarPorCarrito(ctx *fiber.Ctx) error {
	claims, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, err.Error())
	}
	carritoID, err := ctx.ParamsInt("carritoID")
	if err != nil || carritoID <= 0 {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "id de carrito inválido")
	}

	detalles, err := h.svc.ListarPorCarrito(ctx.UserContext(), uint(carritoID), claims)
	if err != nil {
		return utils.ResponseServiceError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, detalles)
}

func (h *DetalleCarritoHandler) Actualizar(ctx *fiber.Ctx) error {
	claims, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, err.Error())
	}
	id, err := ctx.ParamsInt("id")
	if err != nil || id <= 0 {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "id inválido")
	}

	var body dto.DetalleCarritoCreate
	if err := ctx.BodyParser(&body); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "entrada inválida")
	}

	detalle, err := h.svc.Actualizar(ctx.UserContext(), uint(id), body, claims)
	if err != nil {
		return utils.ResponseServiceError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, detalle)
}

func (h *DetalleCarritoHandler) Eliminar(ctx *fiber.Ctx) error {
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
		Mensaje: "producto eliminado del carrito",
	})
}

package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rosalinebakery/store_service/internal/api/rest/middleware"
	"github.com/rosalinebakery/store_service/internal/dto"
	"github.com/rosalinebakery/store_service/internal/helper"
	"github.com/rosalinebakery/store_service/internal/helper/utils"
	"github.com/rosalinebakery/store_service/internal/services"
)

type AuditHandler struct {
	svc  services.AuditLogService
	auth helper.Auth
}

func NewAuditHandler(svc services.AuditLogService, auth helper.Auth) *AuditHandler {
	return &AuditHandler{svc: svc, auth: auth}
}

func (h *AuditHandler) SetupRoutes(app *fiber.App) {
	audit := app.Group("/audit", middleware.AuthMiddleware(h.auth), middleware.AdminOnly())

	audit.Get("/", h.Listar)
	audit.Get("/:tabla_nombre/:registro_id", h.HistorialRegistro)
}

func parseFecha(raw string) *time.Time {
	if raw == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t
		}
	}
	return nil
}

func (h *AuditHandler) Listar(ctx *fiber.Ctx) error {
	skip := ctx.QueryInt("skip", 0)
	limit := ctx.QueryInt("limit", 100)
	filter := dto.AuditLogFilter{
		TablaNombre: ctx.Query("tabla_nombre"),
		RegistroID:  uint(ctx.QueryInt("registro_id", 0)),
		Accion:      ctx.Query("accion"),
		UsuarioID:   uint(ctx.QueryInt("usuario_id", 0)),
		FechaDesde:  parseFecha(ctx.Query("fecha_desde")),
		FechaHasta:  parseFecha(ctx.Query("fecha_hasta")),
	}

	logs, err := h.svc.Listar(ctx.UserContext(), skip, limit, filter)
	if err != nil {
		return utils.ResponseServiceError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, logs)
}

func (h *AuditHandler) HistorialRegistro(ctx *fiber.Ctx) error {
	tablaNombre := ctx.Params("tabla_nombre")
	registroID, err := ctx.ParamsInt("registro_id")
	if err != nil || registroID <= 0 {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "id de registro inválido")
	}
	skip := ctx.QueryInt("skip", 0)
	limit := ctx.QueryInt("limit", 100)

	logs, err := h.svc.HistorialRegistro(ctx.UserContext(), tablaNombre, uint(registroID), skip, limit)
	if err != nil {
		return utils.ResponseServiceError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, logs)
}

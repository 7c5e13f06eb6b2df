package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rosalinebakery/store_service/internal/api/rest/middleware"
	"github.com/rosalinebakery/store_service/internal/dto"
	"github.com/rosalinebakery/store_service/internal/helper"
	"github.com/rosalinebakery/store_service/internal/helper/utils"
	"github.com/rosalinebakery/store_service/internal/services"
)

type UsuarioHandler struct {
	svc  services.UsuarioService
	auth helper.Auth
}

func NewUsuarioHandler(svc services.UsuarioService, auth helper.Auth) *UsuarioHandler {
	return &UsuarioHandler{svc: svc, auth: auth}
}

func (h *UsuarioHandler) SetupRoutes(app *fiber.App) {
	app.Post("/login", h.Login)

	usuarios := app.Group("/usuarios")

	// public account flows
	usuarios.Post("/", h.Registrar)
	usuarios.Post("/confirmar", h.ConfirmarCuenta)
	usuarios.Post("/reenviar-confirmacion", h.ReenviarConfirmacion)
	usuarios.Post("/recuperar-contrasena", h.SolicitarRecuperacion)
	usuarios.Post("/validar-pin", h.ValidarPin)
	usuarios.Post("/cambiar-contrasena", h.CambiarContrasena)

	// authenticated
	auth := usuarios.Group("", middleware.AuthMiddleware(h.auth))
	auth.Get("/me", h.Me)
	auth.Put("/me/contrasena", h.CambiarContrasenaAutenticado)

	admin := auth.Group("", middleware.AdminOnly())
	admin.Get("/", h.Listar)
	admin.Get("/:id", h.Obtener)
	admin.Put("/:id", h.Actualizar)
	admin.Delete("/:id", h.Eliminar)
}

func (h *UsuarioHandler) Login(ctx *fiber.Ctx) error {
	var body dto.LoginRequest
	if err := ctx.BodyParser(&body); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "correo y contraseña son obligatorios")
	}

	usuario, err := h.svc.Autenticar(ctx.UserContext(), body.Correo, body.Contrasena)
	if err != nil {
		return utils.ResponseServiceError(ctx, err)
	}

	token, err := h.auth.GenerateToken(usuario.ID, usuario.Correo, usuario.Rol)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, err.Error())
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, dto.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}

func (h *UsuarioHandler) Registrar(ctx *fiber.Ctx) error {
	var body dto.UsuarioCreate
	if err := ctx.BodyParser(&body); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "entrada inválida")
	}

	usuario, err := h.svc.Registrar(ctx.UserContext(), body)
	if err != nil {
		return utils.ResponseServiceError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusCreated, usuario)
}

func (h *UsuarioHandler) ConfirmarCuenta(ctx *fiber.Ctx) error {
	var body dto.ConfirmarCuentaRequest
	if err := ctx.BodyParser(&body); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "correo y pin son obligatorios")
	}

	if _, err := h.svc.ConfirmarCuenta(ctx.UserContext(), body.Correo, body.Pin); err != nil {
		return utils.ResponseServiceError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, dto.MensajeResponse{
		Mensaje: "cuenta confirmada correctamente",
	})
}

func (h *UsuarioHandler) ReenviarConfirmacion(ctx *fiber.Ctx) error {
	var body dto.CorreoRequest
	if err := ctx.BodyParser(&body); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "correo es obligatorio")
	}

	if err := h.svc.ReenviarConfirmacion(ctx.UserContext(), body.Correo); err != nil {
		return utils.ResponseServiceError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, dto.MensajeResponse{
		Mensaje: "se ha enviado un nuevo PIN de confirmación",
	})
}

func (h *UsuarioHandler) SolicitarRecuperacion(ctx *fiber.Ctx) error {
	var body dto.CorreoRequest
	if err := ctx.BodyParser(&body); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "correo es obligatorio")
	}

	if err := h.svc.SolicitarRecuperacion(ctx.UserContext(), body.Correo); err != nil {
		return utils.ResponseServiceError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, dto.MensajeResponse{
		Mensaje: "si el correo existe, se enviará un PIN de recuperación",
	})
}

func (h *UsuarioHandler) ValidarPin(ctx *fiber.Ctx) error {
	var body dto.ValidarPinRequest
	if err := ctx.BodyParser(&body); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "correo y pin son obligatorios")
	}

	if h.svc.ValidarPinRecuperacion(ctx.UserContext(), body.Correo, body.Pin) {
		return utils.ResponseSuccess(ctx, fiber.StatusOK, dto.ValidarPinResponse{
			Valido:  true,
			Mensaje: "PIN válido",
		})
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, dto.ValidarPinResponse{
		Valido:  false,
		Mensaje: "PIN inválido o expirado",
	})
}

func (h *UsuarioHandler) CambiarContrasena(ctx *fiber.Ctx) error {
	var body dto.CambiarContrasenaRequest
	if err := ctx.BodyParser(&body); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "entrada inválida")
	}
	if len(body.NuevaContrasena) < 8 {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "la contraseña debe tener al menos 8 caracteres")
	}

	if err := h.svc.CambiarContrasenaConPin(ctx.UserContext(), body); err != nil {
		return utils.ResponseServiceError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, dto.MensajeResponse{
		Mensaje: "contraseña actualizada correctamente",
	})
}

func (h *UsuarioHandler) Me(ctx *fiber.Ctx) error {
	claims, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, err.Error())
	}

	usuario, err := h.svc.Obtener(ctx.UserContext(), claims.UsuarioID)
	if err != nil {
		return utils.ResponseServiceError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, usuario)
}

func (h *UsuarioHandler) CambiarContrasenaAutenticado(ctx *fiber.Ctx) error {
	claims, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, err.Error())
	}

	var body dto.CambiarContrasenaAutenticadoRequest
	if err := ctx.BodyParser(&body); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "entrada inválida")
	}
	if len(body.NuevaContrasena) < 8 {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "la contraseña debe tener al menos 8 caracteres")
	}

	if err := h.svc.CambiarContrasenaAutenticado(ctx.UserContext(), claims.UsuarioID, body); err != nil {
		return utils.ResponseServiceError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, dto.MensajeResponse{
		Mensaje: "contraseña actualizada correctamente",
	})
}

func (h *UsuarioHandler) Listar(ctx *fiber.Ctx) error {
	skip := ctx.QueryInt("skip", 0)
	limit := ctx.QueryInt("limit", 100)
	filter := dto.UsuarioFilter{
		Rol:             ctx.Query("rol"),
		Correo:          ctx.Query("correo"),
		EmailVerificado: ctx.Query("email_verificado"),
	}

	usuarios, err := h.svc.Listar(ctx.UserContext(), skip, limit, filter)
	if err != nil {
		return utils.ResponseServiceError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, usuarios)
}

func (h *UsuarioHandler) Obtener(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil || id <= 0 {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "id inválido")
	}

	usuario, err := h.svc.Obtener(ctx.UserContext(), uint(id))
	if err != nil {
		return utils.ResponseServiceError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, usuario)
}

func (h *UsuarioHandler) Actualizar(ctx *fiber.Ctx) error {
	claims, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, err.Error())
	}
	id, err := ctx.ParamsInt("id")
	if err != nil || id <= 0 {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "id inválido")
	}

	var body dto.UsuarioUpdate
	if err := ctx.BodyParser(&body); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "entrada inválida")
	}

	usuario, err := h.svc.Actualizar(ctx.UserContext(), uint(id), body, claims)
	if err != nil {
		return utils.ResponseServiceError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, usuario)
}

func (h *UsuarioHandler) Eliminar(ctx *fiber.Ctx) error {
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
		Mensaje: "usuario eliminado correctamente",
	})
}

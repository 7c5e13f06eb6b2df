package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rosalinebakery/store_service/internal/audit"
	"github.com/rosalinebakery/store_service/internal/dto"
	"github.com/rosalinebakery/store_service/internal/helper"
)

// AuditContext tags the request context with the caller's address and the
// endpoint so the audit correlator can attribute trigger rows. For
// authenticated requests AuthMiddleware adds the user identity on top.
func AuditContext() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		rc := audit.RequestContext{
			IPAddress: ctx.IP(),
			Endpoint:  ctx.Method() + " " + ctx.Path(),
		}
		ctx.SetUserContext(audit.WithRequestContext(ctx.UserContext(), rc))
		return ctx.Next()
	}
}

func AuthMiddleware(auth helper.Auth) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		// 1) try cookie first
		tokenStr := strings.TrimSpace(ctx.Cookies("access_token"))

		// 2) fallback to Authorization header
		if tokenStr == "" {
			tokenStr = strings.TrimSpace(ctx.Get("Authorization"))
		}

		user, err := auth.VerifyToken(tokenStr)
		if err != nil {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		ctx.Locals("userID", user.UsuarioID)
		ctx.Locals("user", user)

		usuarioID := user.UsuarioID
		rc := audit.RequestContext{
			UsuarioID:    &usuarioID,
			UsuarioEmail: user.Correo,
			IPAddress:    ctx.IP(),
			Endpoint:     ctx.Method() + " " + ctx.Path(),
		}
		ctx.SetUserContext(audit.WithRequestContext(ctx.UserContext(), rc))

		return ctx.Next()
	}
}

func AdminOnly() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		user, ok := ctx.Locals("user").(dto.TokenClaims)
		if !ok || user.UsuarioID == 0 {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "unauthorized",
			})
		}
		if !user.EsAdmin() {
			return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "se requieren permisos de administrador",
			})
		}
		return ctx.Next()
	}
}

func SuperAdminOnly() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		user, ok := ctx.Locals("user").(dto.TokenClaims)
		if !ok || user.UsuarioID == 0 {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "unauthorized",
			})
		}
		if !user.EsSuperAdmin() {
			return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "se requieren permisos de super administrador",
			})
		}
		return ctx.Next()
	}
}

package utils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rosalinebakery/store_service/internal/services"
)

func ResponseError(ctx *fiber.Ctx, status int, msg string) error {
	return ctx.Status(status).JSON(fiber.Map{
		"error": msg,
	})
}

func ResponseSuccess(ctx *fiber.Ctx, status int, data interface{}) error {
	return ctx.Status(status).JSON(data)
}

// ResponseServiceError maps the service sentinel errors onto HTTP statuses.
func ResponseServiceError(ctx *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return ResponseError(ctx, fiber.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrForbidden):
		return ResponseError(ctx, fiber.StatusForbidden, err.Error())
	case errors.Is(err, services.ErrConflict):
		return ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrInvalid):
		return ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrUnauthorized):
		return ResponseError(ctx, fiber.StatusUnauthorized, err.Error())
	default:
		return ResponseError(ctx, fiber.StatusInternalServerError, err.Error())
	}
}

package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/team48/gestion-stock-api/internal/application/dto"
	"github.com/team48/gestion-stock-api/internal/domain"
)

// writeError traduit une erreur métier en réponse HTTP : InvalidEntity -> 400,
// EntityNotFound -> 404, BadCredentials -> 401, Duplicate -> 409, sinon 500.
func writeError(c *fiber.Ctx, err error) error {
	var invalid *domain.InvalidEntityError
	if errors.As(err, &invalid) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:    string(invalid.Code),
			Message: invalid.Message,
			Errors:  invalid.Errors,
		})
	}
	var notFound *domain.EntityNotFoundError
	if errors.As(err, &notFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Code:    string(notFound.Code),
			Message: notFound.Message,
		})
	}
	var badCreds *domain.BadCredentialsError
	if errors.As(err, &badCreds) {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Code:    string(domain.InvalidCredentials),
			Message: badCreds.Message,
		})
	}
	var duplicate *domain.DuplicateError
	if errors.As(err, &duplicate) {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code:    string(domain.DuplicateEntity),
			Message: duplicate.Message,
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Code:    "INTERNAL",
		Message: err.Error(),
	})
}

// badRequest réponse 400 hors erreur métier (corps ou paramètre illisible).
func badRequest(c *fiber.Ctx, code, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: code, Message: message})
}

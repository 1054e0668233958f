package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/latedash/internal/client"
)

// respondError maps the access layer's error kinds onto local HTTP
// statuses. Upstream 4xx/5xx surface as 502 because the failure is the
// remote API's, not this server's.
func respondError(c *fiber.Ctx, cerr *client.Error) error {
	if cerr.Kind == client.KindValidation {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"errors": cerr.Messages,
		})
	}
	return c.Status(statusForKind(cerr.Kind)).JSON(fiber.Map{
		"error": cerr.Error(),
		"kind":  string(cerr.Kind),
	})
}

func statusForKind(kind client.Kind) int {
	switch kind {
	case client.KindNotConfigured:
		return fiber.StatusBadRequest
	case client.KindUnauthorized:
		return fiber.StatusUnauthorized
	case client.KindRateLimited:
		return fiber.StatusTooManyRequests
	case client.KindServerError, client.KindAPIError, client.KindConnection:
		return fiber.StatusBadGateway
	case client.KindTimeout:
		return fiber.StatusGatewayTimeout
	default:
		return fiber.StatusInternalServerError
	}
}

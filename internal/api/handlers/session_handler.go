package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/latedash/internal/service"
	"github.com/maheshrc27/latedash/internal/session"
)

type SessionHandler struct {
	st *session.Store
	ps service.ProfileService
	ds service.DashboardService
}

func NewSessionHandler(st *session.Store, ps service.ProfileService, ds service.DashboardService) *SessionHandler {
	return &SessionHandler{st: st, ps: ps, ds: ds}
}

func (h *SessionHandler) SetKey(c *fiber.Ctx) error {
	var body struct {
		APIKey string `json:"api_key"`
	}
	if err := c.BodyParser(&body); err != nil {
		slog.Error(err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse request body",
		})
	}

	h.st.SetCredential(body.APIKey)
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"configured": body.APIKey != "",
	})
}

func (h *SessionHandler) Info(c *fiber.Ctx) error {
	info := fiber.Map{
		"configured": h.st.Credential() != "",
		"profiles":   len(h.st.Profiles()),
		"accounts":   len(h.st.Accounts()),
	}
	if last, ok := h.st.LastRefresh(); ok {
		info["lastRefresh"] = last
	}
	return c.Status(fiber.StatusOK).JSON(info)
}

func (h *SessionHandler) ValidateKey(c *fiber.Ctx) error {
	if cerr := h.ps.ValidateCredential(c.Context()); cerr != nil {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"valid": false,
			"error": cerr.Error(),
		})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"valid":   true,
		"message": "API key is valid",
	})
}

func (h *SessionHandler) Refresh(c *fiber.Ctx) error {
	if messages := h.ds.Refresh(c.Context()); len(messages) > 0 {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"errors": messages,
		})
	}

	last, _ := h.st.LastRefresh()
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":     "Data refreshed successfully",
		"lastRefresh": last,
	})
}

package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/latedash/internal/service"
	"github.com/maheshrc27/latedash/internal/session"
)

type AccountHandler struct {
	s  service.AccountService
	st *session.Store
}

func NewAccountHandler(s service.AccountService, st *session.Store) *AccountHandler {
	return &AccountHandler{s: s, st: st}
}

func (h *AccountHandler) List(c *fiber.Ctx) error {
	if cerr := h.s.Load(c.Context()); cerr != nil {
		return respondError(c, cerr)
	}

	accounts := h.st.Accounts()
	if platform := c.Query("platform"); platform != "" {
		accounts = h.st.AccountsByPlatform(platform)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"accounts": accounts,
	})
}

package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/latedash/internal/service"
	"github.com/maheshrc27/latedash/internal/session"
	"github.com/maheshrc27/latedash/internal/transfer"
)

type ProfileHandler struct {
	s  service.ProfileService
	st *session.Store
}

func NewProfileHandler(s service.ProfileService, st *session.Store) *ProfileHandler {
	return &ProfileHandler{s: s, st: st}
}

func (h *ProfileHandler) List(c *fiber.Ctx) error {
	if cerr := h.s.Load(c.Context()); cerr != nil {
		return respondError(c, cerr)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"profiles": h.st.Profiles(),
	})
}

func (h *ProfileHandler) Create(c *fiber.Ctx) error {
	var pc transfer.ProfileCreation
	if err := c.BodyParser(&pc); err != nil {
		slog.Error(err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse request body",
		})
	}

	if cerr := h.s.Create(c.Context(), &pc); cerr != nil {
		return respondError(c, cerr)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Profile created successfully",
	})
}

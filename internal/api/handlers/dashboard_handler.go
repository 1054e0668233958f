package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/latedash/internal/service"
)

type DashboardHandler struct {
	s service.DashboardService
	u service.UsageService
}

func NewDashboardHandler(s service.DashboardService, u service.UsageService) *DashboardHandler {
	return &DashboardHandler{s: s, u: u}
}

func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(h.s.Summary(c.Context()))
}

func (h *DashboardHandler) UsageStats(c *fiber.Ctx) error {
	stats, cerr := h.u.Stats(c.Context())
	if cerr != nil {
		return respondError(c, cerr)
	}
	return c.Status(fiber.StatusOK).JSON(stats)
}

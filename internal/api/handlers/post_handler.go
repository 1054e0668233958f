package handlers

import (
	"io"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/latedash/internal/service"
	"github.com/maheshrc27/latedash/internal/transfer"
)

type PostHandler struct {
	s service.PostService
	m service.MediaService
}

func NewPostHandler(s service.PostService, m service.MediaService) *PostHandler {
	return &PostHandler{s: s, m: m}
}

func (h *PostHandler) ListPosts(c *fiber.Ctx) error {
	filter := service.PostFilter{
		Status:   c.Query("status"),
		Platform: c.Query("platform"),
		SortBy:   c.Query("sort"),
	}

	posts, cerr := h.s.List(c.Context(), filter)
	if cerr != nil {
		return respondError(c, cerr)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"posts": posts,
		"count": len(posts),
	})
}

func (h *PostHandler) CreatePost(c *fiber.Ctx) error {
	var pc transfer.PostCreation
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
		"message": "Post scheduled successfully",
	})
}

func (h *PostHandler) UploadMedia(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("files")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No files selected",
		})
	}

	f, err := fileHeader.Open()
	if err != nil {
		slog.Error(err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to read uploaded file",
		})
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		slog.Error(err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to read uploaded file",
		})
	}

	mediaURL, cerr := h.m.Upload(c.Context(), fileHeader.Filename, data)
	if cerr != nil {
		return respondError(c, cerr)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"url": mediaURL,
	})
}

package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/latedash/internal/service"
)

type RedditHandler struct {
	s service.RedditService
}

func NewRedditHandler(s service.RedditService) *RedditHandler {
	return &RedditHandler{s: s}
}

func (h *RedditHandler) Feed(c *fiber.Ctx) error {
	params := service.FeedParams{
		AccountID:  c.Query("accountId"),
		Subreddit:  c.Query("subreddit"),
		Sort:       c.Query("sort", "hot"),
		Limit:      c.QueryInt("limit", 25),
		TimeFilter: c.Query("t"),
	}

	items, cerr := h.s.Feed(c.Context(), params)
	if cerr != nil {
		return respondError(c, cerr)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"items": items,
		"count": len(items),
	})
}

func (h *RedditHandler) Search(c *fiber.Ctx) error {
	params := service.SearchParams{
		AccountID:   c.Query("accountId"),
		Query:       c.Query("q"),
		Subreddit:   c.Query("subreddit"),
		Author:      c.Query("author"),
		Sort:        c.Query("sort", "relevance"),
		Limit:       c.QueryInt("limit", 25),
		TimeFilter:  c.Query("t"),
		IncludeNSFW: c.QueryBool("nsfw", false),
	}

	items, cerr := h.s.Search(c.Context(), params)
	if cerr != nil {
		return respondError(c, cerr)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"items": items,
		"count": len(items),
	})
}

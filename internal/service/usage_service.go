package service

import (
	"context"

	"github.com/maheshrc27/latedash/internal/cache"
	"github.com/maheshrc27/latedash/internal/client"
	"github.com/maheshrc27/latedash/internal/models"
)

type UsageService interface {
	Stats(ctx context.Context) (*models.UsageStats, *client.Error)
}

type usageService struct {
	c  *client.Client
	rc *cache.ResponseCache
}

func NewUsageService(c *client.Client, rc *cache.ResponseCache) UsageService {
	return &usageService{c: c, rc: rc}
}

func (s *usageService) Stats(ctx context.Context) (*models.UsageStats, *client.Error) {
	raw, cerr := fetchCached(ctx, s.c, s.rc, "/usage-stats", nil)
	if cerr != nil {
		return nil, cerr
	}

	var stats models.UsageStats
	if cerr := decodeInto(raw, &stats); cerr != nil {
		return nil, cerr
	}
	return &stats, nil
}

package service

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/maheshrc27/latedash/internal/cache"
	"github.com/maheshrc27/latedash/internal/client"
	"github.com/maheshrc27/latedash/internal/models"
	"github.com/maheshrc27/latedash/internal/transfer"
)

var feedSorts = map[string]bool{
	"hot":    true,
	"new":    true,
	"top":    true,
	"rising": true,
}

var searchSorts = map[string]bool{
	"relevance": true,
	"new":       true,
	"hot":       true,
	"top":       true,
	"comments":  true,
}

var timeFilters = map[string]bool{
	"hour":  true,
	"day":   true,
	"week":  true,
	"month": true,
	"year":  true,
	"all":   true,
}

type FeedParams struct {
	AccountID  string
	Subreddit  string
	Sort       string
	Limit      int
	TimeFilter string
}

type SearchParams struct {
	AccountID   string
	Query       string
	Subreddit   string
	Author      string
	Sort        string
	Limit       int
	TimeFilter  string
	IncludeNSFW bool
}

type RedditService interface {
	Feed(ctx context.Context, p FeedParams) ([]models.RedditItem, *client.Error)
	Search(ctx context.Context, p SearchParams) ([]models.RedditItem, *client.Error)
}

type redditService struct {
	c  *client.Client
	rc *cache.ResponseCache
}

func NewRedditService(c *client.Client, rc *cache.ResponseCache) RedditService {
	return &redditService{c: c, rc: rc}
}

func (s *redditService) Feed(ctx context.Context, p FeedParams) ([]models.RedditItem, *client.Error) {
	var messages []string
	if p.AccountID == "" {
		messages = append(messages, "Reddit account is required")
	}
	if p.Limit < 1 || p.Limit > 100 {
		messages = append(messages, "Limit must be between 1 and 100")
	}
	if !feedSorts[p.Sort] {
		messages = append(messages, "Invalid sort option")
	}
	if len(messages) > 0 {
		return nil, client.Validation(messages)
	}

	params := url.Values{}
	params.Set("accountId", p.AccountID)
	params.Set("sort", p.Sort)
	params.Set("limit", strconv.Itoa(p.Limit))
	if sub := strings.TrimSpace(p.Subreddit); sub != "" {
		params.Set("subreddit", sub)
	}
	if t, cerr := timeFilterParam(p.Sort, p.TimeFilter); cerr != nil {
		return nil, cerr
	} else if t != "" {
		params.Set("t", t)
	}

	return s.fetchItems(ctx, "/reddit/feed", params)
}

func (s *redditService) Search(ctx context.Context, p SearchParams) ([]models.RedditItem, *client.Error) {
	var messages []string
	if p.AccountID == "" {
		messages = append(messages, "Reddit account is required")
	}
	if strings.TrimSpace(p.Query) == "" {
		messages = append(messages, "Search query is required")
	}
	if p.Limit < 1 || p.Limit > 100 {
		messages = append(messages, "Limit must be between 1 and 100")
	}
	if !searchSorts[p.Sort] {
		messages = append(messages, "Invalid sort option")
	}
	if len(messages) > 0 {
		return nil, client.Validation(messages)
	}

	params := url.Values{}
	params.Set("accountId", p.AccountID)
	params.Set("q", strings.TrimSpace(p.Query))
	params.Set("sort", p.Sort)
	params.Set("limit", strconv.Itoa(p.Limit))
	if sub := strings.TrimSpace(p.Subreddit); sub != "" {
		params.Set("subreddit", sub)
		params.Set("restrict_sr", "1")
	}
	if author := strings.TrimSpace(p.Author); author != "" {
		params.Set("author", author)
	}
	if t, cerr := timeFilterParam(p.Sort, p.TimeFilter); cerr != nil {
		return nil, cerr
	} else if t != "" {
		params.Set("t", t)
	}
	if p.IncludeNSFW {
		params.Set("include_over_18", "1")
	}

	return s.fetchItems(ctx, "/reddit/search", params)
}

// timeFilterParam resolves the t query parameter: only "top" carries a
// time filter (defaulting to week), every other sort sends none.
func timeFilterParam(sortBy, timeFilter string) (string, *client.Error) {
	if sortBy != "top" {
		return "", nil
	}
	if timeFilter == "" {
		return "week", nil
	}
	if !timeFilters[timeFilter] {
		return "", client.Validation([]string{"Invalid time filter"})
	}
	return timeFilter, nil
}

func (s *redditService) fetchItems(ctx context.Context, path string, params url.Values) ([]models.RedditItem, *client.Error) {
	raw, cerr := fetchCached(ctx, s.c, s.rc, path, params)
	if cerr != nil {
		return nil, cerr
	}

	var list transfer.RedditList
	if cerr := decodeInto(raw, &list); cerr != nil {
		return nil, cerr
	}
	return list.Items, nil
}

package service

import (
	"context"
	"net/http"
	"sort"
	"strings"

	"github.com/maheshrc27/latedash/internal/cache"
	"github.com/maheshrc27/latedash/internal/client"
	"github.com/maheshrc27/latedash/internal/models"
	"github.com/maheshrc27/latedash/internal/transfer"
)

const (
	SortCreatedDesc   = "created_desc"
	SortCreatedAsc    = "created_asc"
	SortScheduled     = "scheduled"
	SortContentLength = "content_length"
)

// PostFilter narrows and orders the loaded post list. The remote API
// returns the full list; filtering happens here.
type PostFilter struct {
	Status   string
	Platform string
	SortBy   string
}

type PostService interface {
	List(ctx context.Context, filter PostFilter) ([]models.Post, *client.Error)
	Create(ctx context.Context, pc *transfer.PostCreation) *client.Error
}

type postService struct {
	c  *client.Client
	rc *cache.ResponseCache
}

func NewPostService(c *client.Client, rc *cache.ResponseCache) PostService {
	return &postService{c: c, rc: rc}
}

func (s *postService) List(ctx context.Context, filter PostFilter) ([]models.Post, *client.Error) {
	raw, cerr := fetchCached(ctx, s.c, s.rc, "/posts", nil)
	if cerr != nil {
		return nil, cerr
	}

	var list transfer.PostList
	if cerr := decodeInto(raw, &list); cerr != nil {
		return nil, cerr
	}

	posts := filterPosts(list.Posts, filter)
	sortPosts(posts, filter.SortBy)
	return posts, nil
}

// Create validates client-side before any network call and reports
// every failed check, not just the first.
func (s *postService) Create(ctx context.Context, pc *transfer.PostCreation) *client.Error {
	if messages := validatePostCreation(pc); len(messages) > 0 {
		return client.Validation(messages)
	}

	body := *pc
	body.Content = strings.TrimSpace(pc.Content)

	_, cerr := s.c.Execute(ctx, client.Request{
		Method: http.MethodPost,
		Path:   "/posts",
		Body:   &body,
	})
	return cerr
}

func validatePostCreation(pc *transfer.PostCreation) []string {
	var messages []string
	if strings.TrimSpace(pc.Content) == "" {
		messages = append(messages, "Post content is required")
	}
	if len(pc.Platforms) == 0 {
		messages = append(messages, "At least one platform must be selected")
	}
	for _, target := range pc.Platforms {
		if target.Platform != models.PlatformReddit {
			continue
		}
		subreddit, _ := target.PlatformSpecificData["subreddit"].(string)
		if strings.TrimSpace(subreddit) == "" {
			messages = append(messages, "Subreddit is required for Reddit posts")
		}
		postType, _ := target.PlatformSpecificData["type"].(string)
		redditURL, _ := target.PlatformSpecificData["url"].(string)
		if postType == "link" && strings.TrimSpace(redditURL) == "" {
			messages = append(messages, "URL is required for Reddit link posts")
		}
	}
	return messages
}

func filterPosts(posts []models.Post, filter PostFilter) []models.Post {
	out := make([]models.Post, 0, len(posts))
	for _, p := range posts {
		if filter.Status != "" && !postHasStatus(p, filter.Status) {
			continue
		}
		if filter.Platform != "" && !postHasPlatform(p, filter.Platform) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func postHasStatus(p models.Post, status string) bool {
	for _, target := range p.Platforms {
		if strings.EqualFold(target.Status, status) {
			return true
		}
	}
	return false
}

func postHasPlatform(p models.Post, platform string) bool {
	for _, target := range p.Platforms {
		if strings.EqualFold(target.Platform, platform) {
			return true
		}
	}
	return false
}

func sortPosts(posts []models.Post, sortBy string) {
	switch sortBy {
	case SortCreatedAsc:
		sort.SliceStable(posts, func(i, j int) bool { return posts[i].CreatedAt < posts[j].CreatedAt })
	case SortScheduled:
		sort.SliceStable(posts, func(i, j int) bool { return posts[i].ScheduledFor < posts[j].ScheduledFor })
	case SortContentLength:
		sort.SliceStable(posts, func(i, j int) bool { return len(posts[i].Content) > len(posts[j].Content) })
	default:
		// newest first, the dashboard's default ordering
		sort.SliceStable(posts, func(i, j int) bool { return posts[i].CreatedAt > posts[j].CreatedAt })
	}
}

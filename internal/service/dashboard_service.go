package service

import (
	"context"
	"log/slog"

	"github.com/maheshrc27/latedash/internal/cache"
	"github.com/maheshrc27/latedash/internal/session"
	"github.com/maheshrc27/latedash/internal/transfer"
)

type DashboardService interface {
	// Refresh reloads profiles and accounts. Both loads are always
	// attempted; the returned slice carries every failure message and
	// is empty on full success, which is the only case that records a
	// refresh timestamp.
	Refresh(ctx context.Context) []string
	Summary(ctx context.Context) *transfer.DashboardSummary
}

type dashboardService struct {
	profiles ProfileService
	accounts AccountService
	posts    PostService
	usage    UsageService
	rc       *cache.ResponseCache
	st       *session.Store
}

func NewDashboardService(
	profiles ProfileService,
	accounts AccountService,
	posts PostService,
	usage UsageService,
	rc *cache.ResponseCache,
	st *session.Store) DashboardService {
	return &dashboardService{
		profiles: profiles,
		accounts: accounts,
		posts:    posts,
		usage:    usage,
		rc:       rc,
		st:       st,
	}
}

func (s *dashboardService) Refresh(ctx context.Context) []string {
	s.rc.Clear()

	var messages []string
	if cerr := s.profiles.Load(ctx); cerr != nil {
		slog.Info("profile refresh failed", "error", cerr.Error())
		messages = append(messages, cerr.Error())
	}
	if cerr := s.accounts.Load(ctx); cerr != nil {
		slog.Info("account refresh failed", "error", cerr.Error())
		messages = append(messages, cerr.Error())
	}

	if len(messages) == 0 {
		s.st.RecordRefresh()
	}
	return messages
}

// Summary aggregates the landing-page counters, tolerating partial
// failures the way the dashboard renders N/A for missing metrics.
func (s *dashboardService) Summary(ctx context.Context) *transfer.DashboardSummary {
	summary := &transfer.DashboardSummary{PlatformCounts: make(map[string]int)}

	if len(s.st.Profiles()) == 0 {
		if cerr := s.profiles.Load(ctx); cerr != nil {
			summary.Errors = append(summary.Errors, "Failed to load profiles: "+cerr.Error())
		}
	}
	if len(s.st.Accounts()) == 0 {
		if cerr := s.accounts.Load(ctx); cerr != nil {
			summary.Errors = append(summary.Errors, "Failed to load accounts: "+cerr.Error())
		}
	}

	summary.ProfileCount = len(s.st.Profiles())
	accounts := s.st.Accounts()
	summary.AccountCount = len(accounts)
	for _, a := range accounts {
		summary.PlatformCounts[a.Platform]++
	}

	if posts, cerr := s.posts.List(ctx, PostFilter{}); cerr != nil {
		summary.Errors = append(summary.Errors, "Failed to load posts: "+cerr.Error())
	} else {
		summary.TotalPosts = len(posts)
		for _, p := range posts {
			if p.ScheduledFor != "" {
				summary.ScheduledPosts++
			}
		}
	}

	if stats, cerr := s.usage.Stats(ctx); cerr != nil {
		summary.Errors = append(summary.Errors, "Failed to load usage stats: "+cerr.Error())
	} else {
		summary.UploadsUsed = stats.Uploads.Current
		summary.UploadsLimit = stats.Uploads.Limit
	}

	return summary
}

package service

import (
	"context"
	"net/http"
	"strings"

	"github.com/maheshrc27/latedash/internal/cache"
	"github.com/maheshrc27/latedash/internal/client"
	"github.com/maheshrc27/latedash/internal/session"
	"github.com/maheshrc27/latedash/internal/transfer"
)

type ProfileService interface {
	Load(ctx context.Context) *client.Error
	Create(ctx context.Context, pc *transfer.ProfileCreation) *client.Error
	ValidateCredential(ctx context.Context) *client.Error
}

type profileService struct {
	c  *client.Client
	rc *cache.ResponseCache
	st *session.Store
}

func NewProfileService(c *client.Client, rc *cache.ResponseCache, st *session.Store) ProfileService {
	return &profileService{c: c, rc: rc, st: st}
}

// Load replaces the session's profile list on success and leaves it
// untouched on failure.
func (s *profileService) Load(ctx context.Context) *client.Error {
	raw, cerr := fetchCached(ctx, s.c, s.rc, "/profiles", nil)
	if cerr != nil {
		return cerr
	}

	var list transfer.ProfileList
	if cerr := decodeInto(raw, &list); cerr != nil {
		return cerr
	}

	s.st.SetProfiles(list.Profiles)
	return nil
}

func (s *profileService) Create(ctx context.Context, pc *transfer.ProfileCreation) *client.Error {
	var messages []string
	name := strings.TrimSpace(pc.Name)
	if name == "" {
		messages = append(messages, "Profile name is required")
	} else if len(name) < 2 {
		messages = append(messages, "Profile name must be at least 2 characters")
	}
	if len(messages) > 0 {
		return client.Validation(messages)
	}

	body := *pc
	body.Name = name
	body.Description = strings.TrimSpace(pc.Description)

	_, cerr := s.c.Execute(ctx, client.Request{
		Method: http.MethodPost,
		Path:   "/profiles",
		Body:   &body,
	})
	return cerr
}

// ValidateCredential treats a successful profiles fetch as proof of a
// valid key. It reads through the same cache entry Load uses but does
// not touch session state.
func (s *profileService) ValidateCredential(ctx context.Context) *client.Error {
	_, cerr := fetchCached(ctx, s.c, s.rc, "/profiles", nil)
	return cerr
}

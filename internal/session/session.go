// Package session holds the per-session mutable state: the API
// credential, the loaded profile and account lists, and the last
// combined-refresh time. Nothing here survives the process.
package session

import (
	"sync"
	"time"

	"github.com/maheshrc27/latedash/internal/models"
)

type Store struct {
	mu          sync.RWMutex
	credential  string
	profiles    []models.Profile
	accounts    []models.Account
	lastRefresh time.Time

	// invoked (outside the lock) whenever the credential changes;
	// wired to ResponseCache.Clear.
	onCredentialChange func()
}

func NewStore(onCredentialChange func()) *Store {
	return &Store{onCredentialChange: onCredentialChange}
}

// SetCredential replaces the credential. A changed value invalidates
// everything cached under the old one; setting the same value again is
// a no-op.
func (s *Store) SetCredential(value string) {
	s.mu.Lock()
	changed := s.credential != value
	s.credential = value
	s.mu.Unlock()

	if changed && s.onCredentialChange != nil {
		s.onCredentialChange()
	}
}

func (s *Store) Credential() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.credential
}

// SetProfiles replaces the full profile list. Loaders call it only on
// success so a failed reload never wipes stale-but-present data.
func (s *Store) SetProfiles(profiles []models.Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles = profiles
}

func (s *Store) Profiles() []models.Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Profile, len(s.profiles))
	copy(out, s.profiles)
	return out
}

func (s *Store) SetAccounts(accounts []models.Account) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts = accounts
}

func (s *Store) Accounts() []models.Account {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Account, len(s.accounts))
	copy(out, s.accounts)
	return out
}

// AccountsByPlatform filters the loaded accounts, e.g. the reddit
// accounts the feed and search pages choose from.
func (s *Store) AccountsByPlatform(platform string) []models.Account {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Account
	for _, a := range s.accounts {
		if a.Platform == platform {
			out = append(out, a)
		}
	}
	return out
}

// RecordRefresh marks a successful combined profiles+accounts reload.
func (s *Store) RecordRefresh() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastRefresh = time.Now()
}

func (s *Store) LastRefresh() (time.Time, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastRefresh, !s.lastRefresh.IsZero()
}

// Reset returns the store to its initial empty state without touching
// the credential-change hook.
func (s *Store) Reset() {
	s.mu.Lock()
	s.credential = ""
	s.profiles = nil
	s.accounts = nil
	s.lastRefresh = time.Time{}
	s.mu.Unlock()

	if s.onCredentialChange != nil {
		s.onCredentialChange()
	}
}

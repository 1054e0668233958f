package service

import (
	"context"

	"github.com/maheshrc27/latedash/internal/cache"
	"github.com/maheshrc27/latedash/internal/client"
	"github.com/maheshrc27/latedash/internal/session"
	"github.com/maheshrc27/latedash/internal/transfer"
)

type AccountService interface {
	Load(ctx context.Context) *client.Error
}

type accountService struct {
	c  *client.Client
	rc *cache.ResponseCache
	st *session.Store
}

func NewAccountService(c *client.Client, rc *cache.ResponseCache, st *session.Store) AccountService {
	return &accountService{c: c, rc: rc, st: st}
}

// Load replaces the session's account list on success and leaves it
// untouched on failure.
func (s *accountService) Load(ctx context.Context) *client.Error {
	raw, cerr := fetchCached(ctx, s.c, s.rc, "/accounts", nil)
	if cerr != nil {
		return cerr
	}

	var list transfer.AccountList
	if cerr := decodeInto(raw, &list); cerr != nil {
		return cerr
	}

	s.st.SetAccounts(list.Accounts)
	return nil
}

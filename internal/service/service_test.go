package service

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	config "github.com/maheshrc27/latedash/configs"
	"github.com/maheshrc27/latedash/internal/cache"
	"github.com/maheshrc27/latedash/internal/client"
	"github.com/maheshrc27/latedash/internal/session"
)

// testEnv wires a client, cache and store against a mock remote API.
type testEnv struct {
	client *client.Client
	cache  *cache.ResponseCache
	store  *session.Store
	server *httptest.Server
}

func newTestEnv(t *testing.T, handler http.Handler) *testEnv {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	rc := cache.New(time.Minute)
	st := session.NewStore(rc.Clear)
	st.SetCredential("abc123")

	cfg := &config.Config{
		APIBaseURL:     srv.URL,
		RequestTimeout: 2 * time.Second,
		UploadTimeout:  2 * time.Second,
	}
	return &testEnv{
		client: client.New(cfg, st.Credential),
		cache:  rc,
		store:  st,
		server: srv,
	}
}

package service

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/maheshrc27/latedash/internal/cache"
	"github.com/maheshrc27/latedash/internal/client"
)

// fetchCached routes a GET through the response cache. Mutations and
// uploads call the client directly instead.
func fetchCached(ctx context.Context, c *client.Client, rc *cache.ResponseCache, path string, query url.Values) (json.RawMessage, *client.Error) {
	sig := cache.Signature(http.MethodGet, path, query, nil)
	return rc.GetOrFetch(sig, func() (json.RawMessage, *client.Error) {
		return c.Execute(ctx, client.Request{Method: http.MethodGet, Path: path, Query: query})
	})
}

// decodeInto treats an undecodable 2xx payload as an unexpected fault,
// not a classified API failure.
func decodeInto(raw json.RawMessage, v any) *client.Error {
	if err := json.Unmarshal(raw, v); err != nil {
		slog.Error("failed to decode response payload", "error", err)
		return client.Unknown(err.Error())
	}
	return nil
}

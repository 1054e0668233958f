// Package cache memoizes decoded API responses for a bounded freshness
// window, keyed by request signature. Identical concurrent requests
// coalesce into a single fetch.
package cache

import (
	"encoding/json"
	"net/url"
	"sync"
	"time"

	"github.com/maheshrc27/latedash/internal/client"
	"golang.org/x/sync/singleflight"
)

type FetchFunc func() (json.RawMessage, *client.Error)

type entry struct {
	payload   json.RawMessage
	fetchedAt time.Time
}

type ResponseCache struct {
	ttl     time.Duration
	mu      sync.Mutex
	entries map[string]entry
	group   singleflight.Group
	now     func() time.Time
}

func New(ttl time.Duration) *ResponseCache {
	return &ResponseCache{
		ttl:     ttl,
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

// Signature derives the cache key for a request. url.Values.Encode
// sorts keys and json.Marshal writes map keys sorted, so equivalent
// requests always produce the same key. File payloads never take part;
// uploads bypass the cache entirely.
func Signature(method, path string, query url.Values, body any) string {
	encoded, _ := json.Marshal(body)
	return method + " " + path + "?" + query.Encode() + "\n" + string(encoded)
}

// GetOrFetch returns the cached payload for sig while it is still
// fresh; otherwise it runs fetch, stores the result on success, and
// returns it. Failed fetches are never cached. Concurrent calls for
// the same signature share one fetch.
func (c *ResponseCache) GetOrFetch(sig string, fetch FetchFunc) (json.RawMessage, *client.Error) {
	if payload, ok := c.lookup(sig); ok {
		return payload, nil
	}

	v, err, _ := c.group.Do(sig, func() (any, error) {
		// Re-check inside the flight: a previous waiter may have
		// stored the entry between lookup and Do.
		if payload, ok := c.lookup(sig); ok {
			return payload, nil
		}
		payload, cerr := fetch()
		if cerr != nil {
			return nil, cerr
		}
		c.store(sig, payload)
		return payload, nil
	})
	if err != nil {
		if cerr, ok := err.(*client.Error); ok {
			return nil, cerr
		}
		return nil, client.Unknown(err.Error())
	}
	return v.(json.RawMessage), nil
}

// Clear drops every entry. Called whenever the credential changes and
// on explicit refresh actions.
func (c *ResponseCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]entry)
}

func (c *ResponseCache) lookup(sig string) (json.RawMessage, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[sig]
	if !ok {
		return nil, false
	}
	if c.now().Sub(e.fetchedAt) >= c.ttl {
		delete(c.entries, sig)
		return nil, false
	}
	return e.payload, true
}

func (c *ResponseCache) store(sig string, payload json.RawMessage) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[sig] = entry{payload: payload, fetchedAt: c.now()}
}

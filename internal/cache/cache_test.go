package cache_test

import (
	"bytes"
	"encoding/json"
	"net/url"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/maheshrc27/latedash/internal/cache"
	"github.com/maheshrc27/latedash/internal/client"
)

func countingFetch(calls *int32, payload string) cache.FetchFunc {
	return func() (json.RawMessage, *client.Error) {
		atomic.AddInt32(calls, 1)
		return json.RawMessage(payload), nil
	}
}

func TestGetOrFetch_SecondCallWithinWindowHitsCache(t *testing.T) {
	rc := cache.New(time.Minute)
	var calls int32

	first, cerr := rc.GetOrFetch("sig", countingFetch(&calls, `{"n":1}`))
	if cerr != nil {
		t.Fatalf("first fetch: %v", cerr)
	}
	second, cerr := rc.GetOrFetch("sig", countingFetch(&calls, `{"n":2}`))
	if cerr != nil {
		t.Fatalf("second fetch: %v", cerr)
	}

	if n := atomic.LoadInt32(&calls); n != 1 {
		t.Fatalf("fetches = %d, want 1", n)
	}
	if !bytes.Equal(first, second) {
		t.Fatalf("second payload %s differs from first %s", second, first)
	}
}

func TestGetOrFetch_ExpiredEntryRefetches(t *testing.T) {
	rc := cache.New(20 * time.Millisecond)
	var calls int32

	if _, cerr := rc.GetOrFetch("sig", countingFetch(&calls, `{}`)); cerr != nil {
		t.Fatalf("first fetch: %v", cerr)
	}
	time.Sleep(40 * time.Millisecond)
	if _, cerr := rc.GetOrFetch("sig", countingFetch(&calls, `{}`)); cerr != nil {
		t.Fatalf("second fetch: %v", cerr)
	}

	if n := atomic.LoadInt32(&calls); n != 2 {
		t.Fatalf("fetches = %d, want 2", n)
	}
}

func TestGetOrFetch_FailureIsNotCached(t *testing.T) {
	rc := cache.New(time.Minute)
	var calls int32

	_, cerr := rc.GetOrFetch("sig", func() (json.RawMessage, *client.Error) {
		atomic.AddInt32(&calls, 1)
		return nil, client.ServerError()
	})
	if cerr == nil || cerr.Kind != client.KindServerError {
		t.Fatalf("kind = %v, want %v", cerr, client.KindServerError)
	}

	if _, cerr := rc.GetOrFetch("sig", countingFetch(&calls, `{}`)); cerr != nil {
		t.Fatalf("retry fetch: %v", cerr)
	}
	if n := atomic.LoadInt32(&calls); n != 2 {
		t.Fatalf("fetches = %d, want 2", n)
	}
}

func TestClear_EmptiesAllEntries(t *testing.T) {
	rc := cache.New(time.Minute)
	var calls int32

	if _, cerr := rc.GetOrFetch("sig", countingFetch(&calls, `{}`)); cerr != nil {
		t.Fatalf("first fetch: %v", cerr)
	}
	rc.Clear()
	if _, cerr := rc.GetOrFetch("sig", countingFetch(&calls, `{}`)); cerr != nil {
		t.Fatalf("second fetch: %v", cerr)
	}

	if n := atomic.LoadInt32(&calls); n != 2 {
		t.Fatalf("fetches = %d, want 2", n)
	}
}

func TestGetOrFetch_ConcurrentIdenticalRequestsCoalesce(t *testing.T) {
	rc := cache.New(time.Minute)
	var calls int32
	slow := func() (json.RawMessage, *client.Error) {
		atomic.AddInt32(&calls, 1)
		time.Sleep(50 * time.Millisecond)
		return json.RawMessage(`{"shared":true}`), nil
	}

	var wg sync.WaitGroup
	results := make([]json.RawMessage, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			payload, cerr := rc.GetOrFetch("sig", slow)
			if cerr != nil {
				t.Errorf("fetch %d: %v", i, cerr)
				return
			}
			results[i] = payload
		}(i)
	}
	wg.Wait()

	if n := atomic.LoadInt32(&calls); n != 1 {
		t.Fatalf("fetches = %d, want 1", n)
	}
	for i, payload := range results {
		if !bytes.Equal(payload, results[0]) {
			t.Fatalf("result %d = %s, want %s", i, payload, results[0])
		}
	}
}

func TestSignature(t *testing.T) {
	a := url.Values{}
	a.Set("sort", "top")
	a.Set("limit", "25")
	b := url.Values{}
	b.Set("limit", "25")
	b.Set("sort", "top")

	if cache.Signature("GET", "/reddit/feed", a, nil) != cache.Signature("GET", "/reddit/feed", b, nil) {
		t.Fatal("identical params in different order should share a signature")
	}

	withBody := cache.Signature("POST", "/posts", nil, map[string]string{"content": "x"})
	without := cache.Signature("POST", "/posts", nil, nil)
	if withBody == without {
		t.Fatal("body must take part in the signature")
	}

	if cache.Signature("GET", "/profiles", nil, nil) == cache.Signature("POST", "/profiles", nil, nil) {
		t.Fatal("method must take part in the signature")
	}
}

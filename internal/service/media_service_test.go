package service

import (
	"context"
	"net/http"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/maheshrc27/latedash/internal/client"
)

var pngBytes = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0x00, 0x00, 0x00, 0x0D}

func TestMediaUpload_ReturnsFirstFileURL(t *testing.T) {
	var calls int32
	env := newTestEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		if r.URL.Path != "/media" || r.Method != http.MethodPost {
			t.Errorf("request = %s %s, want POST /media", r.Method, r.URL.Path)
		}
		if !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
			t.Errorf("content-type = %q, want multipart", r.Header.Get("Content-Type"))
		}
		_, _ = w.Write([]byte(`{"files":[{"url":"https://cdn/x.png"},{"url":"https://cdn/y.png"}]}`))
	}))

	s := NewMediaService(env.client)
	mediaURL, cerr := s.Upload(context.Background(), "x.png", pngBytes)
	if cerr != nil {
		t.Fatalf("upload: %v", cerr)
	}
	if mediaURL != "https://cdn/x.png" {
		t.Fatalf("url = %q, want https://cdn/x.png", mediaURL)
	}

	// uploads never hit the cache: an identical second call goes out again
	if _, cerr := s.Upload(context.Background(), "x.png", pngBytes); cerr != nil {
		t.Fatalf("second upload: %v", cerr)
	}
	if n := atomic.LoadInt32(&calls); n != 2 {
		t.Fatalf("network calls = %d, want 2", n)
	}
}

func TestMediaUpload_RejectsUnsupportedType(t *testing.T) {
	env := newTestEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("rejected uploads must not reach the network")
	}))

	s := NewMediaService(env.client)
	_, cerr := s.Upload(context.Background(), "notes.txt", []byte("plain text, not an image"))
	if cerr == nil || cerr.Kind != client.KindValidation {
		t.Fatalf("kind = %v, want %v", cerr, client.KindValidation)
	}
}

func TestMediaUpload_RejectsEmptyFile(t *testing.T) {
	env := newTestEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("rejected uploads must not reach the network")
	}))

	s := NewMediaService(env.client)
	_, cerr := s.Upload(context.Background(), "empty.png", nil)
	if cerr == nil || cerr.Kind != client.KindValidation {
		t.Fatalf("kind = %v, want %v", cerr, client.KindValidation)
	}
}

func TestMediaUpload_EmptyResponseIsFault(t *testing.T) {
	env := newTestEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"files":[]}`))
	}))

	s := NewMediaService(env.client)
	_, cerr := s.Upload(context.Background(), "x.png", pngBytes)
	if cerr == nil || cerr.Kind != client.KindUnknown {
		t.Fatalf("kind = %v, want %v", cerr, client.KindUnknown)
	}
}

package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/maheshrc27/latedash/internal/client"
	"github.com/maheshrc27/latedash/internal/models"
	"github.com/maheshrc27/latedash/internal/transfer"
)

func TestProfileLoad_FailureKeepsStaleList(t *testing.T) {
	env := newTestEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	env.store.SetProfiles([]models.Profile{{ID: "p1", Name: "Personal"}})

	s := NewProfileService(env.client, env.cache, env.store)
	cerr := s.Load(context.Background())
	if cerr == nil || cerr.Kind != client.KindServerError {
		t.Fatalf("kind = %v, want %v", cerr, client.KindServerError)
	}

	profiles := env.store.Profiles()
	if len(profiles) != 1 || profiles[0].ID != "p1" {
		t.Fatalf("profiles = %+v, want the stale entry preserved", profiles)
	}
}

func TestProfileLoad_ReplacesList(t *testing.T) {
	env := newTestEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"profiles":[{"_id":"p2","name":"Brand","isDefault":true}]}`))
	}))
	env.store.SetProfiles([]models.Profile{{ID: "p1", Name: "Personal"}})

	s := NewProfileService(env.client, env.cache, env.store)
	if cerr := s.Load(context.Background()); cerr != nil {
		t.Fatalf("load: %v", cerr)
	}

	profiles := env.store.Profiles()
	if len(profiles) != 1 || profiles[0].ID != "p2" || !profiles[0].IsDefault {
		t.Fatalf("profiles = %+v, want the fetched list", profiles)
	}
}

func TestProfileCreate_Validation(t *testing.T) {
	env := newTestEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("validation failures must not reach the network")
	}))

	s := NewProfileService(env.client, env.cache, env.store)

	cerr := s.Create(context.Background(), &transfer.ProfileCreation{Name: "   "})
	if cerr == nil || cerr.Kind != client.KindValidation {
		t.Fatalf("kind = %v, want %v", cerr, client.KindValidation)
	}

	cerr = s.Create(context.Background(), &transfer.ProfileCreation{Name: "x"})
	if cerr == nil || cerr.Kind != client.KindValidation {
		t.Fatalf("kind = %v, want %v", cerr, client.KindValidation)
	}
}

func TestValidateCredential(t *testing.T) {
	env := newTestEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == "Bearer abc123" {
			_, _ = w.Write([]byte(`{"profiles":[]}`))
			return
		}
		w.WriteHeader(http.StatusUnauthorized)
	}))

	s := NewProfileService(env.client, env.cache, env.store)
	if cerr := s.ValidateCredential(context.Background()); cerr != nil {
		t.Fatalf("expected valid key, got %v", cerr)
	}

	env.store.SetCredential("wrong")
	cerr := s.ValidateCredential(context.Background())
	if cerr == nil || cerr.Kind != client.KindUnauthorized {
		t.Fatalf("kind = %v, want %v", cerr, client.KindUnauthorized)
	}
}

package vault

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/bank-feed/internal/config"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClient(config.Vault{BaseURL: srv.URL})
}

func TestCreateSecret_Success(t *testing.T) {
	cli := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/secrets" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer token-1" {
			t.Errorf("unexpected auth header: %q", got)
		}

		var req createSecretRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Key != "conn-1" || req.OrgID != "org-1" {
			t.Errorf("unexpected payload: %+v", req)
		}

		_ = json.NewEncoder(w).Encode(createSecretResponse{SecretRef: "ref-99"})
	})

	ref, err := cli.CreateSecret(context.Background(), "conn-1",
		map[string]any{"username": "u", "password": "p"}, "token-1", "org-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ref != "ref-99" {
		t.Errorf("expected ref-99, got %q", ref)
	}
}

func TestCreateSecret_EmptyReference(t *testing.T) {
	cli := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(createSecretResponse{})
	})

	_, err := cli.CreateSecret(context.Background(), "k", nil, "t", "o")
	if !errors.Is(err, ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
}

func TestGetSecret_Success(t *testing.T) {
	cli := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/secrets/ref-99" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(getSecretResponse{Value: `{"username":"u"}`})
	})

	raw, err := cli.GetSecret(context.Background(), "ref-99", "token-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if raw != `{"username":"u"}` {
		t.Errorf("unexpected secret payload: %q", raw)
	}
}

func TestGetSecret_Unauthorized(t *testing.T) {
	cli := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad token", http.StatusUnauthorized)
	})

	_, err := cli.GetSecret(context.Background(), "ref", "bad")
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestGetSecret_NotFound(t *testing.T) {
	cli := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no such secret", http.StatusNotFound)
	})

	_, err := cli.GetSecret(context.Background(), "missing", "token")
	if !errors.Is(err, ErrSecretNotFound) {
		t.Fatalf("expected ErrSecretNotFound, got %v", err)
	}
}

func TestGetSecret_ServerError(t *testing.T) {
	cli := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	_, err := cli.GetSecret(context.Background(), "ref", "token")
	if !errors.Is(err, ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
}

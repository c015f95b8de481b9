package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jpalmer/promoboost/internal/domain"
)

func newTestClient(store *stubStore) *Client {
	return NewClient(NewSettingsCache(store, fallbackCfg), 5*time.Second)
}

func TestClientComplete(t *testing.T) {
	var gotReq generateRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/generate" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("bad request body: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(generateResponse{Response: "  generated text \n"})
	}))
	defer srv.Close()

	store := &stubStore{values: map[string]string{
		domain.SettingOllamaURL:   srv.URL,
		domain.SettingOllamaModel: "mistral",
	}}

	got, err := newTestClient(store).Complete(context.Background(), "my prompt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "generated text" {
		t.Errorf("completion = %q, want trimmed text", got)
	}
	if gotReq.Model != "mistral" || gotReq.Prompt != "my prompt" || gotReq.Stream {
		t.Errorf("request = %+v", gotReq)
	}
}

func TestClientComplete_Disabled(t *testing.T) {
	store := &stubStore{values: map[string]string{
		domain.SettingOllamaEnabled: "false",
	}}
	client := newTestClient(store)

	_, err := client.Complete(context.Background(), "prompt")
	if !errors.Is(err, ErrProviderDisabled) {
		t.Fatalf("expected ErrProviderDisabled, got %v", err)
	}
	if client.Enabled(context.Background()) {
		t.Errorf("Enabled() must report false")
	}
}

func TestClientComplete_EmptyResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(generateResponse{Response: "   "})
	}))
	defer srv.Close()

	store := &stubStore{values: map[string]string{domain.SettingOllamaURL: srv.URL}}

	_, err := newTestClient(store).Complete(context.Background(), "prompt")
	if !errors.Is(err, ErrEmptyCompletion) {
		t.Fatalf("expected ErrEmptyCompletion, got %v", err)
	}
}

func TestClientComplete_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": "model not found"})
	}))
	defer srv.Close()

	store := &stubStore{values: map[string]string{domain.SettingOllamaURL: srv.URL}}

	_, err := newTestClient(store).Complete(context.Background(), "prompt")
	if err == nil || !strings.Contains(err.Error(), "500") {
		t.Fatalf("expected API error with status code, got %v", err)
	}
}

func TestClientComplete_ConnectionError(t *testing.T) {
	store := &stubStore{values: map[string]string{
		domain.SettingOllamaURL: "http://127.0.0.1:1",
	}}

	_, err := newTestClient(store).Complete(context.Background(), "prompt")
	if err == nil || !strings.Contains(err.Error(), "cannot connect to Ollama") {
		t.Fatalf("expected connectivity error, got %v", err)
	}
}

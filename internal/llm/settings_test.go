package llm

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jpalmer/promoboost/internal/config"
	"github.com/jpalmer/promoboost/internal/domain"
)

type stubStore struct {
	values map[string]string
	err    error
	calls  int
}

func (s *stubStore) Get(ctx context.Context, key string) (string, bool, error) {
	s.calls++
	if s.err != nil {
		return "", false, s.err
	}
	val, ok := s.values[key]
	return val, ok, nil
}

var fallbackCfg = config.OllamaConfig{
	URL:   "http://fallback:11434",
	Model: "llama2",
}

func TestSettingsCache_StoreValuesWin(t *testing.T) {
	store := &stubStore{values: map[string]string{
		domain.SettingOllamaURL:   "http://custom:11434",
		domain.SettingOllamaModel: "mistral",
	}}
	cache := NewSettingsCache(store, fallbackCfg)

	got := cache.Get(context.Background())

	if got.URL != "http://custom:11434" {
		t.Errorf("URL = %q", got.URL)
	}
	if got.Model != "mistral" {
		t.Errorf("Model = %q", got.Model)
	}
	if !got.Enabled {
		t.Errorf("expected enabled by default")
	}
}

func TestSettingsCache_FallbackForMissingKeys(t *testing.T) {
	cache := NewSettingsCache(&stubStore{values: map[string]string{}}, fallbackCfg)

	got := cache.Get(context.Background())

	if got.URL != fallbackCfg.URL || got.Model != fallbackCfg.Model {
		t.Errorf("expected fallback settings, got %+v", got)
	}
	if !got.Enabled {
		t.Errorf("missing enabled key must default to enabled")
	}
}

func TestSettingsCache_FallbackOnStoreError(t *testing.T) {
	cache := NewSettingsCache(&stubStore{err: errors.New("db down")}, fallbackCfg)

	got := cache.Get(context.Background())

	if got.URL != fallbackCfg.URL || !got.Enabled {
		t.Errorf("store errors must fall back to config, got %+v", got)
	}
}

func TestSettingsCache_EnabledFlagParsing(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"false", false},
		{"true", true},
		{"1", true},
		{"", true},
	}

	for _, tt := range tests {
		store := &stubStore{values: map[string]string{domain.SettingOllamaEnabled: tt.value}}
		cache := NewSettingsCache(store, fallbackCfg)
		if got := cache.Get(context.Background()).Enabled; got != tt.want {
			t.Errorf("enabled=%q parsed as %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestSettingsCache_ServesFromCacheWithinTTL(t *testing.T) {
	store := &stubStore{values: map[string]string{}}
	cache := NewSettingsCache(store, fallbackCfg)

	cache.Get(context.Background())
	firstCalls := store.calls
	cache.Get(context.Background())

	if store.calls != firstCalls {
		t.Errorf("second Get hit the store within TTL: %d -> %d calls", firstCalls, store.calls)
	}
}

func TestSettingsCache_RefetchesAfterTTL(t *testing.T) {
	store := &stubStore{values: map[string]string{}}
	cache := NewSettingsCache(store, fallbackCfg)
	cache.ttl = time.Millisecond

	cache.Get(context.Background())
	firstCalls := store.calls
	time.Sleep(5 * time.Millisecond)
	cache.Get(context.Background())

	if store.calls == firstCalls {
		t.Errorf("expected store re-read after TTL expiry")
	}
}

func TestSettingsCache_InvalidateForcesReRead(t *testing.T) {
	store := &stubStore{values: map[string]string{
		domain.SettingOllamaModel: "mistral",
	}}
	cache := NewSettingsCache(store, fallbackCfg)

	if got := cache.Get(context.Background()); got.Model != "mistral" {
		t.Fatalf("Model = %q", got.Model)
	}

	store.values[domain.SettingOllamaModel] = "phi3"
	cache.Invalidate()

	if got := cache.Get(context.Background()); got.Model != "phi3" {
		t.Errorf("Invalidate did not force a re-read, Model = %q", got.Model)
	}
}

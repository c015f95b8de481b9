package llm

import (
	"context"
	"sync"
	"time"

	"github.com/jpalmer/promoboost/internal/config"
	"github.com/jpalmer/promoboost/internal/domain"
	"github.com/jpalmer/promoboost/internal/logger"
)

// settingsTTL is how long resolved provider settings are served from cache
// before the store is consulted again.
const settingsTTL = 60 * time.Second

// Settings are the resolved runtime provider settings.
type Settings struct {
	URL     string
	Model   string
	Enabled bool
}

// SettingsStore is the subset of the settings repository the cache needs.
type SettingsStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
}

// SettingsCache resolves provider settings from the store with a short TTL,
// falling back to environment configuration for keys the store does not hold.
// Safe for concurrent use.
type SettingsCache struct {
	store    SettingsStore
	fallback config.OllamaConfig
	ttl      time.Duration

	mu        sync.Mutex
	cached    Settings
	fetchedAt time.Time
}

// NewSettingsCache creates a settings cache backed by store, with fallback
// values for keys absent from the store.
// Parameters:
//   - store: settings repository.
//   - fallback: environment-level provider configuration.
// Returns:
//   - *SettingsCache: cache instance.
func NewSettingsCache(store SettingsStore, fallback config.OllamaConfig) *SettingsCache {
	return &SettingsCache{
		store:    store,
		fallback: fallback,
		ttl:      settingsTTL,
	}
}

// Get returns the current provider settings, re-reading the store when the
// cache entry is older than the TTL. Store read errors fall back to
// environment configuration rather than failing the caller.
// Parameters:
//   - ctx: context for cancellation and deadlines.
// Returns:
//   - Settings: resolved provider settings.
func (c *SettingsCache) Get(ctx context.Context) Settings {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.fetchedAt.IsZero() && time.Since(c.fetchedAt) < c.ttl {
		return c.cached
	}

	settings := Settings{
		URL:     c.fallback.URL,
		Model:   c.fallback.Model,
		Enabled: true,
	}

	if url, ok, err := c.store.Get(ctx, domain.SettingOllamaURL); err != nil {
		logger.CtxWarn(ctx, "Failed to read provider URL setting, using fallback: %v", err)
	} else if ok && url != "" {
		settings.URL = url
	}

	if model, ok, err := c.store.Get(ctx, domain.SettingOllamaModel); err != nil {
		logger.CtxWarn(ctx, "Failed to read provider model setting, using fallback: %v", err)
	} else if ok && model != "" {
		settings.Model = model
	}

	if enabled, ok, err := c.store.Get(ctx, domain.SettingOllamaEnabled); err != nil {
		logger.CtxWarn(ctx, "Failed to read provider enabled setting, assuming enabled: %v", err)
	} else if ok {
		settings.Enabled = enabled != "false"
	}

	c.cached = settings
	c.fetchedAt = time.Now()
	return settings
}

// Invalidate drops the cached entry so the next Get re-reads the store.
// Called after settings are updated through the API.
func (c *SettingsCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fetchedAt = time.Time{}
}

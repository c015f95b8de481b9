package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jpalmer/promoboost/internal/domain"
	"github.com/jpalmer/promoboost/internal/llm"
	"github.com/jpalmer/promoboost/internal/repository"
)

// SettingsHandler handles system settings endpoints. Provider-related keys
// invalidate the LLM settings cache so changes apply without restart.
type SettingsHandler struct {
	settings *repository.SettingsRepository
	cache    *llm.SettingsCache
}

// NewSettingsHandler creates a new settings handler.
// Parameters:
//   - settings: settings repository.
//   - cache: LLM settings cache to invalidate on provider changes.
// Returns:
//   - *SettingsHandler: initialized handler.
func NewSettingsHandler(settings *repository.SettingsRepository, cache *llm.SettingsCache) *SettingsHandler {
	return &SettingsHandler{settings: settings, cache: cache}
}

// List handles GET /api/settings.
func (h *SettingsHandler) List(c *gin.Context) {
	rows, err := h.settings.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load settings"})
		return
	}

	settings := make(map[string]string, len(rows))
	for _, row := range rows {
		settings[row.Key] = row.Value
	}
	c.JSON(http.StatusOK, gin.H{"settings": settings})
}

type settingRequest struct {
	Key   string `json:"key" binding:"required"`
	Value string `json:"value"`
}

// Set handles PUT /api/settings.
func (h *SettingsHandler) Set(c *gin.Context) {
	var req settingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := h.settings.Set(c.Request.Context(), req.Key, req.Value); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save setting"})
		return
	}

	switch req.Key {
	case domain.SettingOllamaEnabled, domain.SettingOllamaURL, domain.SettingOllamaModel:
		h.cache.Invalidate()
	}

	c.JSON(http.StatusOK, gin.H{"message": "Setting saved", "key": req.Key})
}

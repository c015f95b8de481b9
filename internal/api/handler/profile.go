package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/jpalmer/promoboost/internal/domain"
	"github.com/jpalmer/promoboost/internal/repository"
	"gorm.io/gorm"
)

// RegisterValidations installs custom binding validators on Gin's validator
// engine. Call once at startup before serving requests.
func RegisterValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("platformkey", func(fl validator.FieldLevel) bool {
			return domain.PlatformKeyPattern.MatchString(fl.Field().String())
		})
	}
}

// ProfileHandler handles platform profile endpoints.
type ProfileHandler struct {
	profiles *repository.ProfileRepository
}

// NewProfileHandler creates a new profile handler.
// Parameters:
//   - profiles: profile repository.
// Returns:
//   - *ProfileHandler: initialized handler.
func NewProfileHandler(profiles *repository.ProfileRepository) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

type profileRequest struct {
	Platform    string             `json:"platform" binding:"required,platformkey"`
	DisplayName string             `json:"display_name"`
	ProfileType domain.ProfileType `json:"profile_type"`

	MaxLength             int  `json:"max_length" binding:"omitempty,min=1"`
	MinLength             int  `json:"min_length" binding:"omitempty,min=1"`
	HookLength            int  `json:"hook_length" binding:"omitempty,min=1"`
	IncludeHashtags       bool `json:"include_hashtags"`
	HashtagCount          int  `json:"hashtag_count" binding:"omitempty,min=0"`
	AvoidHeaderGeneration bool `json:"avoid_header_generation"`
	SingleLineContent     bool `json:"single_line_content"`

	MinDurationSeconds int  `json:"min_duration_seconds" binding:"omitempty,min=1"`
	MaxDurationSeconds int  `json:"max_duration_seconds" binding:"omitempty,min=1"`
	MinScenes          int  `json:"min_scenes" binding:"omitempty,min=1"`
	MaxScenes          int  `json:"max_scenes" binding:"omitempty,min=1"`
	NarratorOnCamera   bool `json:"narrator_on_camera"`

	IsVideoScript bool `json:"is_video_script"`

	Tone               string `json:"tone"`
	Style              string `json:"style"`
	CustomInstructions string `json:"custom_instructions"`
	UTMEnabled         *bool  `json:"utm_enabled"`
	UTMSource          string `json:"utm_source"`
	Enabled            *bool  `json:"enabled"`
	SortOrder          int    `json:"sort_order"`
}

// List handles GET /api/platforms.
func (h *ProfileHandler) List(c *gin.Context) {
	profiles, err := h.profiles.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list platform profiles"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"profiles": profiles})
}

// Upsert handles PUT /api/platforms/:platform.
func (h *ProfileHandler) Upsert(c *gin.Context) {
	var req profileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if req.Platform != c.Param("platform") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Platform key in body does not match URL"})
		return
	}

	profileType := req.ProfileType
	if profileType == "" {
		profileType = domain.ProfileTypeSocial
	}

	profile := &domain.PlatformProfile{
		Platform:              req.Platform,
		DisplayName:           req.DisplayName,
		ProfileType:           profileType,
		MaxLength:             req.MaxLength,
		MinLength:             req.MinLength,
		HookLength:            req.HookLength,
		IncludeHashtags:       req.IncludeHashtags,
		HashtagCount:          req.HashtagCount,
		AvoidHeaderGeneration: req.AvoidHeaderGeneration,
		SingleLineContent:     req.SingleLineContent,
		MinDurationSeconds:    req.MinDurationSeconds,
		MaxDurationSeconds:    req.MaxDurationSeconds,
		MinScenes:             req.MinScenes,
		MaxScenes:             req.MaxScenes,
		NarratorOnCamera:      req.NarratorOnCamera,
		IsVideoScript:         req.IsVideoScript,
		Tone:                  req.Tone,
		Style:                 req.Style,
		CustomInstructions:    req.CustomInstructions,
		UTMSource:             req.UTMSource,
		SortOrder:             req.SortOrder,
		UTMEnabled:            true,
		Enabled:               true,
	}
	if req.UTMEnabled != nil {
		profile.UTMEnabled = *req.UTMEnabled
	}
	if req.Enabled != nil {
		profile.Enabled = *req.Enabled
	}

	if err := h.profiles.Upsert(c.Request.Context(), profile); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save platform profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

// Delete handles DELETE /api/platforms/:platform.
func (h *ProfileHandler) Delete(c *gin.Context) {
	platform := c.Param("platform")
	if _, err := h.profiles.GetByPlatform(c.Request.Context(), platform); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Platform profile not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load platform profile"})
		return
	}

	if err := h.profiles.Delete(c.Request.Context(), platform); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete platform profile"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Platform profile deleted"})
}

type orderRequest struct {
	Orders map[string]int `json:"orders" binding:"required"`
}

// UpdateOrder handles PUT /api/platforms/order.
func (h *ProfileHandler) UpdateOrder(c *gin.Context) {
	var req orderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := h.profiles.UpdateSortOrders(c.Request.Context(), req.Orders); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update sort order"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Sort order updated"})
}

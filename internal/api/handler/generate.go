package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jpalmer/promoboost/internal/domain"
	"github.com/jpalmer/promoboost/internal/llm"
	"github.com/jpalmer/promoboost/internal/repository"
	"github.com/jpalmer/promoboost/internal/service"
	"gorm.io/gorm"
)

// GenerateHandler handles content generation endpoints.
type GenerateHandler struct {
	generator *service.Generator
	tracking  *service.TrackingService
	posts     *repository.PostRepository
	profiles  *repository.ProfileRepository
	contents  *repository.ContentRepository
}

// NewGenerateHandler creates a new generation handler.
// Parameters:
//   - generator: generation orchestrator.
//   - tracking: tracking service for UTM URLs.
//   - posts, profiles, contents: repositories.
// Returns:
//   - *GenerateHandler: initialized handler.
func NewGenerateHandler(
	generator *service.Generator,
	tracking *service.TrackingService,
	posts *repository.PostRepository,
	profiles *repository.ProfileRepository,
	contents *repository.ContentRepository,
) *GenerateHandler {
	return &GenerateHandler{
		generator: generator,
		tracking:  tracking,
		posts:     posts,
		profiles:  profiles,
		contents:  contents,
	}
}

// GenerateAll handles POST /api/posts/:id/generate. Generation runs for
// every enabled profile; failures occupy their platform's slot with an
// error marker instead of failing the request.
func (h *GenerateHandler) GenerateAll(c *gin.Context) {
	post, ok := h.loadPost(c)
	if !ok {
		return
	}

	profiles, err := h.profiles.ListEnabled(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load platform profiles"})
		return
	}

	results := h.generator.GenerateAll(c.Request.Context(), post, profiles)

	trackingURLs := h.tracking.TrackingURLsForPost(post.SourceURL, profiles)

	generated := make(map[string]gin.H, len(results))
	for platform, result := range results {
		entry := gin.H{
			"platform": platform,
			"content":  result.String(),
			"error":    !result.Ok(),
		}
		if result.Ok() {
			if url, found := trackingURLs[platform]; found {
				entry["tracking_url"] = url
			}
		}
		generated[platform] = entry
	}

	c.JSON(http.StatusOK, gin.H{
		"message":           "Content generated successfully",
		"generated_content": generated,
		"hashtags":          post.Hashtags,
		"tracking_urls":     trackingURLs,
	})
}

// GenerateOne handles POST /api/posts/:id/generate/:platform. A profile is
// not required: unknown platforms generate with an empty default profile.
func (h *GenerateHandler) GenerateOne(c *gin.Context) {
	post, ok := h.loadPost(c)
	if !ok {
		return
	}

	platform := c.Param("platform")
	if !domain.PlatformKeyPattern.MatchString(platform) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid platform name"})
		return
	}

	profile, err := h.profiles.GetByPlatform(c.Request.Context(), platform)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		profile = &domain.PlatformProfile{Platform: platform, Enabled: true, UTMEnabled: true}
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load platform profile"})
		return
	}

	content, err := h.generator.GenerateOne(c.Request.Context(), post, profile)
	if err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, service.ErrEmptyContent), errors.Is(err, service.ErrInvalidPlatform):
			status = http.StatusBadRequest
		case errors.Is(err, llm.ErrProviderDisabled):
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, gin.H{"error": "Failed to generate content", "details": err.Error()})
		return
	}

	record := &domain.GeneratedContent{PostID: post.ID, Platform: platform, Content: content}
	if err := h.contents.Upsert(c.Request.Context(), record); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save generated content"})
		return
	}

	var trackingURL string
	if post.SourceURL != "" {
		trackingURL = h.tracking.GenerateUTMURL(post.SourceURL, platform, profile.EffectiveUTMSource(), profile.UTMEnabled)
	}

	c.JSON(http.StatusOK, gin.H{
		"message":           "Content generated successfully for " + platform,
		"generated_content": record,
		"hashtags":          post.Hashtags,
		"tracking_url":      trackingURL,
	})
}

// ListGenerated handles GET /api/posts/:id/generate.
func (h *GenerateHandler) ListGenerated(c *gin.Context) {
	post, ok := h.loadPost(c)
	if !ok {
		return
	}

	contents, err := h.contents.ListByPostID(c.Request.Context(), post.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load generated content"})
		return
	}

	var trackingURLs map[string]string
	if post.SourceURL != "" {
		profiles, err := h.profiles.List(c.Request.Context())
		if err == nil {
			trackingURLs = h.tracking.TrackingURLsForPost(post.SourceURL, profiles)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"generated_content": contents,
		"tracking_urls":     trackingURLs,
	})
}

type updateContentRequest struct {
	Content string `json:"content" binding:"required"`
}

// UpdateGenerated handles PUT /api/generate/content/:id for manual edits of
// a stored variant.
func (h *GenerateHandler) UpdateGenerated(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid content ID"})
		return
	}

	var req updateContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Content is required"})
		return
	}

	updated, err := h.contents.UpdateContent(c.Request.Context(), uint(id), req.Content)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Generated content not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update generated content"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"generated_content": updated})
}

func (h *GenerateHandler) loadPost(c *gin.Context) (*domain.Post, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID"})
		return nil, false
	}

	post, err := h.posts.GetByID(c.Request.Context(), uint(id))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return nil, false
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load post"})
		return nil, false
	}
	return post, true
}

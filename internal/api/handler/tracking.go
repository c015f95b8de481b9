package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jpalmer/promoboost/internal/domain"
	"github.com/jpalmer/promoboost/internal/service"
	"gorm.io/gorm"
)

// TrackingHandler handles short-code redirects and click analytics.
type TrackingHandler struct {
	tracking *service.TrackingService
}

// NewTrackingHandler creates a new tracking handler.
// Parameters:
//   - tracking: tracking service.
// Returns:
//   - *TrackingHandler: initialized handler.
func NewTrackingHandler(tracking *service.TrackingService) *TrackingHandler {
	return &TrackingHandler{tracking: tracking}
}

// Redirect handles GET /t/:code. Public, no authentication: the link is
// what gets shared on the platforms.
func (h *TrackingHandler) Redirect(c *gin.Context) {
	code := c.Param("code")

	referer := c.GetHeader("Referer")
	if referer == "" {
		referer = "direct"
	}

	destination, err := h.tracking.Resolve(c.Request.Context(), code, &domain.TrackingClick{
		IPAddress: c.ClientIP(),
		UserAgent: c.GetHeader("User-Agent"),
		Referer:   referer,
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.String(http.StatusNotFound, "Tracking URL not found")
		return
	}
	if err != nil {
		c.String(http.StatusInternalServerError, "Error processing redirect")
		return
	}

	c.Redirect(http.StatusFound, destination)
}

// Analytics handles GET /api/posts/:id/analytics.
func (h *TrackingHandler) Analytics(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID"})
		return
	}

	stats, err := h.tracking.StatsByPost(c.Request.Context(), uint(id))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load analytics"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"clicks": stats})
}

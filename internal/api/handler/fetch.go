package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jpalmer/promoboost/internal/service"
)

// FetchHandler handles article import endpoints.
type FetchHandler struct {
	fetcher *service.FetcherService
}

// NewFetchHandler creates a new fetch handler.
// Parameters:
//   - fetcher: article fetcher service.
// Returns:
//   - *FetchHandler: initialized handler.
func NewFetchHandler(fetcher *service.FetcherService) *FetchHandler {
	return &FetchHandler{fetcher: fetcher}
}

type fetchRequest struct {
	URL string `json:"url" binding:"required,url"`
}

// FetchURL handles POST /api/fetch.
func (h *FetchHandler) FetchURL(c *gin.Context) {
	var req fetchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	article, err := h.fetcher.FetchArticle(c.Request.Context(), req.URL)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch content", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"article": article})
}

type ghostFetchRequest struct {
	GhostURL string `json:"ghost_url" binding:"required,url"`
	APIKey   string `json:"api_key" binding:"required"`
	Limit    int    `json:"limit" binding:"omitempty,min=1,max=100"`
}

// FetchGhost handles POST /api/fetch/ghost.
func (h *FetchHandler) FetchGhost(c *gin.Context) {
	var req ghostFetchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	articles, err := h.fetcher.FetchGhostPosts(c.Request.Context(), req.GhostURL, req.APIKey, req.Limit)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch Ghost posts", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": articles})
}

package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jpalmer/promoboost/internal/api/middleware"
	"github.com/jpalmer/promoboost/internal/domain"
	"github.com/jpalmer/promoboost/internal/repository"
	"gorm.io/gorm"
)

// PostHandler handles blog post CRUD endpoints.
type PostHandler struct {
	posts *repository.PostRepository
}

// NewPostHandler creates a new post handler.
// Parameters:
//   - posts: post repository.
// Returns:
//   - *PostHandler: initialized handler.
func NewPostHandler(posts *repository.PostRepository) *PostHandler {
	return &PostHandler{posts: posts}
}

type postRequest struct {
	Title         string   `json:"title" binding:"required"`
	Content       string   `json:"content" binding:"required"`
	SourceURL     string   `json:"source_url"`
	FeaturedImage string   `json:"featured_image"`
	Hashtags      []string `json:"hashtags"`
}

// Create handles POST /api/posts.
func (h *PostHandler) Create(c *gin.Context) {
	var req postRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	post := &domain.Post{
		Title:         req.Title,
		Content:       req.Content,
		SourceURL:     req.SourceURL,
		FeaturedImage: req.FeaturedImage,
		Hashtags:      domain.StringArray(req.Hashtags),
	}
	if claims := middleware.ClaimsFromContext(c); claims != nil {
		post.UserID = claims.UserID
	}

	if err := h.posts.Create(c.Request.Context(), post); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create post"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"post": post})
}

// List handles GET /api/posts.
func (h *PostHandler) List(c *gin.Context) {
	posts, err := h.posts.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list posts"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

// Get handles GET /api/posts/:id.
func (h *PostHandler) Get(c *gin.Context) {
	post, ok := h.loadPost(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"post": post})
}

// Update handles PUT /api/posts/:id.
func (h *PostHandler) Update(c *gin.Context) {
	post, ok := h.loadPost(c)
	if !ok {
		return
	}

	var req postRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	post.Title = req.Title
	post.Content = req.Content
	post.SourceURL = req.SourceURL
	post.FeaturedImage = req.FeaturedImage
	if req.Hashtags != nil {
		post.Hashtags = domain.StringArray(req.Hashtags)
	}

	if err := h.posts.Update(c.Request.Context(), post); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update post"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"post": post})
}

// Delete handles DELETE /api/posts/:id.
func (h *PostHandler) Delete(c *gin.Context) {
	post, ok := h.loadPost(c)
	if !ok {
		return
	}

	if err := h.posts.Delete(c.Request.Context(), post.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete post"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post deleted"})
}

// loadPost resolves the :id parameter to a post, writing the error response
// itself when the ID is malformed or unknown.
func (h *PostHandler) loadPost(c *gin.Context) (*domain.Post, bool) {
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

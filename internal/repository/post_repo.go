package repository

import (
	"context"

	"github.com/jpalmer/promoboost/internal/domain"
	"gorm.io/gorm"
)

// PostRepository handles blog post data operations.
type PostRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new PostRepository.
// Parameters:
//   - db: GORM database handle used for queries.
// Returns:
//   - *PostRepository: repository instance bound to db.
func NewPostRepository(db *gorm.DB) *PostRepository {
	return &PostRepository{db: db}
}

// Create inserts a new post.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - post: post record to persist.
// Returns:
//   - error: non-nil if the insert fails.
func (r *PostRepository) Create(ctx context.Context, post *domain.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

// GetByID retrieves a post by its ID. Posts are shared across users.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - id: post ID.
// Returns:
//   - *domain.Post: post record if found.
//   - error: non-nil if lookup fails.
func (r *PostRepository) GetByID(ctx context.Context, id uint) (*domain.Post, error) {
	var post domain.Post
	if err := r.db.WithContext(ctx).First(&post, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// List retrieves all posts ordered by creation time, newest first.
// Parameters:
//   - ctx: context for cancellation and deadlines.
// Returns:
//   - []domain.Post: all posts.
//   - error: non-nil if the query fails.
func (r *PostRepository) List(ctx context.Context) ([]domain.Post, error) {
	var posts []domain.Post
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// Update saves changed post fields.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - post: post record with updated fields.
// Returns:
//   - error: non-nil if the update fails.
func (r *PostRepository) Update(ctx context.Context, post *domain.Post) error {
	return r.db.WithContext(ctx).Save(post).Error
}

// UpdateHashtags replaces a post's hashtag list.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - id: post ID.
//   - hashtags: new hashtag list.
// Returns:
//   - error: non-nil if the update fails.
func (r *PostRepository) UpdateHashtags(ctx context.Context, id uint, hashtags domain.StringArray) error {
	return r.db.WithContext(ctx).Model(&domain.Post{}).
		Where("id = ?", id).
		Update("hashtags", hashtags).Error
}

// Delete removes a post and all generated content attached to it.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - id: post ID to delete.
// Returns:
//   - error: non-nil if the delete fails.
func (r *PostRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&domain.GeneratedContent{}, "post_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Post{}, "id = ?", id).Error
	})
}

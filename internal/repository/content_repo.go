package repository

import (
	"context"

	"github.com/jpalmer/promoboost/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ContentRepository handles generated content data operations.
type ContentRepository struct {
	db *gorm.DB
}

// NewContentRepository creates a new ContentRepository.
// Parameters:
//   - db: GORM database handle used for queries.
// Returns:
//   - *ContentRepository: repository instance bound to db.
func NewContentRepository(db *gorm.DB) *ContentRepository {
	return &ContentRepository{db: db}
}

// Upsert creates or overwrites the generated content for a (post, platform)
// pair.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - content: generated content record.
// Returns:
//   - error: non-nil if the upsert fails.
func (r *ContentRepository) Upsert(ctx context.Context, content *domain.GeneratedContent) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "post_id"}, {Name: "platform"}},
		DoUpdates: clause.AssignmentColumns([]string{"content", "updated_at"}),
	}).Create(content).Error
}

// ListByPostID retrieves all generated variants for a post, ordered by
// platform key.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - postID: post ID.
// Returns:
//   - []domain.GeneratedContent: generated variants.
//   - error: non-nil if the query fails.
func (r *ContentRepository) ListByPostID(ctx context.Context, postID uint) ([]domain.GeneratedContent, error) {
	var contents []domain.GeneratedContent
	if err := r.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("platform ASC").
		Find(&contents).Error; err != nil {
		return nil, err
	}
	return contents, nil
}

// UpdateContent replaces the stored markup of one generated variant.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - id: generated content ID.
//   - markup: new content markup.
// Returns:
//   - *domain.GeneratedContent: updated record.
//   - error: non-nil if the record is missing or the update fails.
func (r *ContentRepository) UpdateContent(ctx context.Context, id uint, markup string) (*domain.GeneratedContent, error) {
	var content domain.GeneratedContent
	if err := r.db.WithContext(ctx).First(&content, "id = ?", id).Error; err != nil {
		return nil, err
	}
	content.Content = markup
	if err := r.db.WithContext(ctx).Save(&content).Error; err != nil {
		return nil, err
	}
	return &content, nil
}

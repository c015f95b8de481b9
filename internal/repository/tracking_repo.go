package repository

import (
	"context"

	"github.com/jpalmer/promoboost/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TrackingRepository handles tracking URL and click data operations.
type TrackingRepository struct {
	db *gorm.DB
}

// NewTrackingRepository creates a new TrackingRepository.
// Parameters:
//   - db: GORM database handle used for queries.
// Returns:
//   - *TrackingRepository: repository instance bound to db.
func NewTrackingRepository(db *gorm.DB) *TrackingRepository {
	return &TrackingRepository{db: db}
}

// Upsert creates or refreshes the tracking URL for a (post, platform) pair.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - url: tracking URL record.
// Returns:
//   - error: non-nil if the upsert fails.
func (r *TrackingRepository) Upsert(ctx context.Context, url *domain.TrackingURL) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "short_code"}},
		DoUpdates: clause.AssignmentColumns([]string{"original_url", "updated_at"}),
	}).Create(url).Error
}

// GetByShortCode retrieves a tracking URL by its short code.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - code: short code.
// Returns:
//   - *domain.TrackingURL: record if found.
//   - error: non-nil if lookup fails.
func (r *TrackingRepository) GetByShortCode(ctx context.Context, code string) (*domain.TrackingURL, error) {
	var url domain.TrackingURL
	if err := r.db.WithContext(ctx).First(&url, "short_code = ?", code).Error; err != nil {
		return nil, err
	}
	return &url, nil
}

// GetByPostAndPlatform retrieves the tracking URL for a (post, platform) pair.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - postID: post ID.
//   - platform: platform key.
// Returns:
//   - *domain.TrackingURL: record if found.
//   - error: non-nil if lookup fails.
func (r *TrackingRepository) GetByPostAndPlatform(ctx context.Context, postID uint, platform string) (*domain.TrackingURL, error) {
	var url domain.TrackingURL
	if err := r.db.WithContext(ctx).
		First(&url, "post_id = ? AND platform = ?", postID, platform).Error; err != nil {
		return nil, err
	}
	return &url, nil
}

// RecordClick stores one click against a tracking URL.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - click: click record to persist.
// Returns:
//   - error: non-nil if the insert fails.
func (r *TrackingRepository) RecordClick(ctx context.Context, click *domain.TrackingClick) error {
	return r.db.WithContext(ctx).Create(click).Error
}

// ClickStatsByPost aggregates click counts per platform for a post.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - postID: post ID.
// Returns:
//   - []domain.PlatformClickStats: per-platform click counts.
//   - error: non-nil if the query fails.
func (r *TrackingRepository) ClickStatsByPost(ctx context.Context, postID uint) ([]domain.PlatformClickStats, error) {
	var stats []domain.PlatformClickStats
	err := r.db.WithContext(ctx).
		Model(&domain.TrackingClick{}).
		Select("tracking_urls.platform AS platform, COUNT(tracking_clicks.id) AS clicks").
		Joins("JOIN tracking_urls ON tracking_urls.id = tracking_clicks.tracking_url_id").
		Where("tracking_urls.post_id = ?", postID).
		Group("tracking_urls.platform").
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return stats, nil
}

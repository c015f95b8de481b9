package repository

import (
	"context"

	"github.com/jpalmer/promoboost/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProfileRepository handles platform profile data operations.
type ProfileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new ProfileRepository.
// Parameters:
//   - db: GORM database handle used for queries.
// Returns:
//   - *ProfileRepository: repository instance bound to db.
func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// List retrieves all platform profiles in display order: enabled profiles
// first by sort_order, disabled profiles last.
// Parameters:
//   - ctx: context for cancellation and deadlines.
// Returns:
//   - []domain.PlatformProfile: all profiles, sorted for display.
//   - error: non-nil if the query fails.
func (r *ProfileRepository) List(ctx context.Context) ([]domain.PlatformProfile, error) {
	var profiles []domain.PlatformProfile
	if err := r.db.WithContext(ctx).Find(&profiles).Error; err != nil {
		return nil, err
	}
	domain.SortProfiles(profiles)
	return profiles, nil
}

// ListEnabled retrieves only enabled profiles, sorted by sort_order.
// Parameters:
//   - ctx: context for cancellation and deadlines.
// Returns:
//   - []domain.PlatformProfile: enabled profiles.
//   - error: non-nil if the query fails.
func (r *ProfileRepository) ListEnabled(ctx context.Context) ([]domain.PlatformProfile, error) {
	var profiles []domain.PlatformProfile
	if err := r.db.WithContext(ctx).
		Where("enabled = ?", true).
		Order("sort_order ASC").
		Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}

// GetByPlatform retrieves the profile for a platform key.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - platform: platform key.
// Returns:
//   - *domain.PlatformProfile: profile if found.
//   - error: non-nil if lookup fails (gorm.ErrRecordNotFound when absent).
func (r *ProfileRepository) GetByPlatform(ctx context.Context, platform string) (*domain.PlatformProfile, error) {
	var profile domain.PlatformProfile
	if err := r.db.WithContext(ctx).First(&profile, "platform = ?", platform).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// Upsert creates or replaces the profile for a platform key. Profiles are
// shared globally, so the platform key is the conflict target.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - profile: profile record to create or update.
// Returns:
//   - error: non-nil if the upsert fails.
func (r *ProfileRepository) Upsert(ctx context.Context, profile *domain.PlatformProfile) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "platform"}},
		UpdateAll: true,
	}).Create(profile).Error
}

// Delete removes the profile for a platform key.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - platform: platform key to delete.
// Returns:
//   - error: non-nil if the delete fails.
func (r *ProfileRepository) Delete(ctx context.Context, platform string) error {
	return r.db.WithContext(ctx).Delete(&domain.PlatformProfile{}, "platform = ?", platform).Error
}

// UpdateSortOrders applies new sort orders for multiple platforms in one
// transaction.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - orders: map of platform key to new sort order.
// Returns:
//   - error: non-nil if any update fails; the transaction is rolled back.
func (r *ProfileRepository) UpdateSortOrders(ctx context.Context, orders map[string]int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for platform, order := range orders {
			if err := tx.Model(&domain.PlatformProfile{}).
				Where("platform = ?", platform).
				Update("sort_order", order).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

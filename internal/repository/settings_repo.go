package repository

import (
	"context"
	"errors"

	"github.com/jpalmer/promoboost/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SettingsRepository handles system settings data operations.
type SettingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository creates a new SettingsRepository.
// Parameters:
//   - db: GORM database handle used for queries.
// Returns:
//   - *SettingsRepository: repository instance bound to db.
func NewSettingsRepository(db *gorm.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// Get retrieves a setting value by key. Returns ("", false, nil) when the key
// does not exist.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - key: setting key.
// Returns:
//   - string: setting value.
//   - bool: true if the key exists.
//   - error: non-nil if the query fails.
func (r *SettingsRepository) Get(ctx context.Context, key string) (string, bool, error) {
	var setting domain.Setting
	err := r.db.WithContext(ctx).First(&setting, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return setting.Value, true, nil
}

// GetAll retrieves all settings ordered by key.
// Parameters:
//   - ctx: context for cancellation and deadlines.
// Returns:
//   - []domain.Setting: all setting rows.
//   - error: non-nil if the query fails.
func (r *SettingsRepository) GetAll(ctx context.Context) ([]domain.Setting, error) {
	var settings []domain.Setting
	if err := r.db.WithContext(ctx).Order("key ASC").Find(&settings).Error; err != nil {
		return nil, err
	}
	return settings, nil
}

// Set creates or updates a setting value.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - key: setting key.
//   - value: setting value.
// Returns:
//   - error: non-nil if the upsert fails.
func (r *SettingsRepository) Set(ctx context.Context, key, value string) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&domain.Setting{Key: key, Value: value}).Error
}

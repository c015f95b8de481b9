package repository

import (
	"context"

	"github.com/jpalmer/promoboost/internal/domain"
	"gorm.io/gorm"
)

// UserRepository handles user account data operations.
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository.
// Parameters:
//   - db: GORM database handle used for queries.
// Returns:
//   - *UserRepository: repository instance bound to db.
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// GetByUsername retrieves a user by username.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - username: account name.
// Returns:
//   - *domain.User: user record if found.
//   - error: non-nil if lookup fails.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	var user domain.User
	if err := r.db.WithContext(ctx).First(&user, "username = ?", username).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByID retrieves a user by ID.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - id: user ID.
// Returns:
//   - *domain.User: user record if found.
//   - error: non-nil if lookup fails.
func (r *UserRepository) GetByID(ctx context.Context, id uint) (*domain.User, error) {
	var user domain.User
	if err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Create inserts a new user account.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - user: user record to persist.
// Returns:
//   - error: non-nil if the insert fails.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

// Count returns the total number of user accounts.
// Parameters:
//   - ctx: context for cancellation and deadlines.
// Returns:
//   - int64: number of users.
//   - error: non-nil if the query fails.
func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.User{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

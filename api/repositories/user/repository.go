package repositories

import (
	"context"
	"errors"
	"gubu/pkg/database/models"

	"gorm.io/gorm"
)

// ErrUsernameTaken is returned when creating a user with a username that
// already exists.
var ErrUsernameTaken = errors.New("username already taken")

// UserRepository is the public interface for accessing the user store.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	Exists(ctx context.Context, id uint) (bool, error)
	GetById(ctx context.Context, id uint) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	ListIds(ctx context.Context, displayName string) ([]uint, error)
	Update(ctx context.Context, id uint, values map[string]any) (bool, error)
}

// userRepository repository structure.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a user repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// Create inserts a new user, enforcing the unique username inside one
// transaction.
func (ur *userRepository) Create(ctx context.Context, user *models.User) error {
	return ur.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.User{}).
			Where("username = ?", user.Username).
			Limit(1).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrUsernameTaken
		}
		return tx.Create(user).Error
	})
}

// Exists reports whether a user with the given id exists.
func (ur *userRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := ur.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", id).
		Limit(1).
		Count(&count).Error
	return count > 0, err
}

// GetById returns the user or nil when absent.
func (ur *userRepository) GetById(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	err := ur.db.WithContext(ctx).First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByUsername returns the user or nil when absent.
func (ur *userRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := ur.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ListIds returns all user ids, optionally restricted to an exact display
// name match.
func (ur *userRepository) ListIds(ctx context.Context, displayName string) ([]uint, error) {
	var ids []uint
	query := ur.db.WithContext(ctx).Model(&models.User{})
	if displayName != "" {
		query = query.Where("display_name = ?", displayName)
	}
	err := query.Order("id asc").Pluck("id", &ids).Error
	return ids, err
}

// Update applies the given column values and reports whether the user was
// found.
func (ur *userRepository) Update(ctx context.Context, id uint, values map[string]any) (bool, error) {
	res := ur.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", id).
		Updates(values)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

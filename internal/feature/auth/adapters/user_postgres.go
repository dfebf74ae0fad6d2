// Package adapters provides the repository implementations of the auth feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"broker_backend/internal/feature/auth/domain/entity"
	"broker_backend/internal/feature/auth/usecase"
)

// userPostgres is the GORM implementation of the UserRepository interface.
type userPostgres struct {
	db *gorm.DB
}

// Compile-time check that userPostgres implements UserRepository.
var _ usecase.UserRepository = (*userPostgres)(nil)

// NewUserRepository creates a user repository on the given gorm.DB.
func NewUserRepository(db *gorm.DB) *userPostgres {
	return &userPostgres{db: db}
}

// Create persists the user. A unique-key violation on the username is
// reported as usecase.ErrUsernameAlreadyExists.
func (r *userPostgres) Create(ctx context.Context, u *entity.User) error {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return usecase.ErrUsernameAlreadyExists
		}
		return err
	}
	return nil
}

// FindByUsername returns the user with the given username.
// Returns usecase.ErrUserNotFound when no such user exists.
func (r *userPostgres) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

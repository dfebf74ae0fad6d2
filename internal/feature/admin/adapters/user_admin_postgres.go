// Package adapters provides storage implementations for the admin feature.
package adapters

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"broker_backend/internal/feature/admin/usecase"
)

// userAdminModel is the admin feature's view of the users table.
type userAdminModel struct {
	ID       uint
	Username string
	Password string
	Role     string
	Balance  decimal.Decimal `gorm:"type:decimal(20,6)"`
}

func (userAdminModel) TableName() string {
	return "users"
}

// userAdminPostgres is the GORM implementation of UserAdminRepository.
type userAdminPostgres struct {
	db *gorm.DB
}

// Compile-time check that userAdminPostgres implements UserAdminRepository.
var _ usecase.UserAdminRepository = (*userAdminPostgres)(nil)

// NewUserAdminRepository creates an admin user repository on the given gorm.DB.
func NewUserAdminRepository(db *gorm.DB) *userAdminPostgres {
	return &userAdminPostgres{db: db}
}

// List returns every registered user.
func (r *userAdminPostgres) List(ctx context.Context) ([]usecase.UserSummary, error) {
	var rows []userAdminModel
	if err := r.db.WithContext(ctx).Order("username ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]usecase.UserSummary, 0, len(rows))
	for _, row := range rows {
		out = append(out, usecase.UserSummary{ID: row.ID, Username: row.Username, Role: row.Role})
	}
	return out, nil
}

// Create registers a user row with an already-hashed password.
func (r *userAdminPostgres) Create(ctx context.Context, username, passwordHash, role string) error {
	row := userAdminModel{Username: username, Password: passwordHash, Role: role}
	return r.db.WithContext(ctx).Create(&row).Error
}

// Delete removes the user row. Returns usecase.ErrUserNotFound when no row
// matched.
func (r *userAdminPostgres) Delete(ctx context.Context, username string) error {
	res := r.db.WithContext(ctx).Where("username = ?", username).Delete(&userAdminModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrUserNotFound
	}
	return nil
}

// Balance returns the user's cash balance.
func (r *userAdminPostgres) Balance(ctx context.Context, username string) (decimal.Decimal, error) {
	var row userAdminModel
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return decimal.Decimal{}, usecase.ErrUserNotFound
		}
		return decimal.Decimal{}, err
	}
	return row.Balance, nil
}

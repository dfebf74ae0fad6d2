package adapters

import (
	"context"

	"gorm.io/gorm"

	"broker_backend/internal/feature/reports/usecase"
)

// recipientModel is the reports feature's view of the users table.
type recipientModel struct {
	Username string
	Email    string
}

func (recipientModel) TableName() string {
	return "users"
}

// userDirectoryPostgres is the GORM implementation of UserDirectory.
type userDirectoryPostgres struct {
	db *gorm.DB
}

// Compile-time check that userDirectoryPostgres implements UserDirectory.
var _ usecase.UserDirectory = (*userDirectoryPostgres)(nil)

// NewUserDirectory creates a report recipient directory on the given gorm.DB.
func NewUserDirectory(db *gorm.DB) *userDirectoryPostgres {
	return &userDirectoryPostgres{db: db}
}

// ListRecipients returns every user together with their email address.
// Users without an email are included so the caller can log the skip.
func (r *userDirectoryPostgres) ListRecipients(ctx context.Context) ([]usecase.Recipient, error) {
	var rows []recipientModel
	if err := r.db.WithContext(ctx).Order("username ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]usecase.Recipient, 0, len(rows))
	for _, row := range rows {
		out = append(out, usecase.Recipient{Username: row.Username, Email: row.Email})
	}
	return out, nil
}

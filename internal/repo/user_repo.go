// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the User model.
package repo

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/choreboard/go-chore-backend/internal/domain"
)

// ErrDuplicateUsername indicates the username already has a row. The unique
// index on users.username is the source of truth; this sentinel normalizes
// the driver-specific constraint errors.
var ErrDuplicateUsername = errors.New("username already registered")

// CreateUser inserts a new User row holding the already-hashed password.
// Returns ErrDuplicateUsername on a unique-constraint violation.
func CreateUser(ctx context.Context, db *gorm.DB, username, hashedPassword string) (*domain.User, error) {
	u := &domain.User{
		Username:       username,
		HashedPassword: hashedPassword,
	}
	if err := db.WithContext(ctx).Create(u).Error; err != nil {
		if isDuplicate(err) {
			return nil, ErrDuplicateUsername
		}
		return nil, err
	}
	return u, nil
}

// GetUserByUsername fetches a user by exact username, or ErrNotFound.
func GetUserByUsername(ctx context.Context, db *gorm.DB, username string) (*domain.User, error) {
	var u domain.User
	if err := db.WithContext(ctx).First(&u, "username = ?", username).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// isDuplicate detects unique-constraint violations across drivers that may
// not map to gorm.ErrDuplicatedKey.
func isDuplicate(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// SQLite typically: "UNIQUE constraint failed"
	// Postgres typically: "duplicate key value violates unique constraint"
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "duplicate key")
}

// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Chore model.
//
// All functions are context-aware and accept a *gorm.DB handle, making them
// safe for use within transactions or connection-scoped operations. They
// follow the "thin repository" approach: no business logic, only CRUD
// persistence and query composition.
//
// Error semantics:
//   - When a chore is not found, functions return gorm.ErrRecordNotFound
//     (also exported in this package as ErrNotFound).
//   - On DB errors (constraint violations, connectivity issues, etc.),
//     the raw gorm error is propagated.
package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/choreboard/go-chore-backend/internal/domain"
)

// CreateChore inserts a new Chore row and returns it with its generated id.
func CreateChore(ctx context.Context, db *gorm.DB, name string, points int) (*domain.Chore, error) {
	c := &domain.Chore{
		Name:   name,
		Points: points,
	}
	if err := db.WithContext(ctx).Create(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

// ListChores returns chores in insertion order, applying offset and limit.
// It returns an empty slice when nothing matches. On DB error, it returns
// the error.
func ListChores(ctx context.Context, db *gorm.DB, offset, limit int) ([]domain.Chore, error) {
	var out []domain.Chore
	err := db.WithContext(ctx).
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&out).Error
	return out, err
}

// GetChore fetches a single chore by id, or ErrNotFound if missing.
func GetChore(ctx context.Context, db *gorm.DB, id uint) (*domain.Chore, error) {
	var c domain.Chore
	if err := db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// UpdateChore applies the given column set to the chore identified by id and
// returns the updated row. Only keys present in fields are written, which is
// what gives PUT its partial-update semantics. An empty fields map leaves the
// row untouched and simply returns it.
//
// Returns ErrNotFound when the chore does not exist.
func UpdateChore(ctx context.Context, db *gorm.DB, id uint, fields map[string]any) (*domain.Chore, error) {
	// Existence check first so a missing row is reported as not-found even
	// when fields is empty.
	c, err := GetChore(ctx, db, id)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return c, nil
	}
	if err := db.WithContext(ctx).
		Model(&domain.Chore{}).
		Where("id = ?", id).
		Updates(fields).Error; err != nil {
		return nil, err
	}
	return GetChore(ctx, db, id)
}

// DeleteChore removes a chore by id. Returns ErrNotFound when no row was
// deleted. Completion rows referencing the chore are left in place.
func DeleteChore(ctx context.Context, db *gorm.DB, id uint) error {
	res := db.WithContext(ctx).Delete(&domain.Chore{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

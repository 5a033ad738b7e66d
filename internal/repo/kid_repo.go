// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Kid model
// and the KidChore completion records.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/choreboard/go-chore-backend/internal/domain"
)

// CreateKid inserts a new Kid row and returns it with its generated id.
func CreateKid(ctx context.Context, db *gorm.DB, name string) (*domain.Kid, error) {
	k := &domain.Kid{Name: name}
	if err := db.WithContext(ctx).Create(k).Error; err != nil {
		return nil, err
	}
	return k, nil
}

// ListKids returns kids in insertion order, applying offset and limit.
func ListKids(ctx context.Context, db *gorm.DB, offset, limit int) ([]domain.Kid, error) {
	var out []domain.Kid
	err := db.WithContext(ctx).
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&out).Error
	return out, err
}

// GetKid fetches a single kid by id, or ErrNotFound if missing.
func GetKid(ctx context.Context, db *gorm.DB, id uint) (*domain.Kid, error) {
	var k domain.Kid
	if err := db.WithContext(ctx).First(&k, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &k, nil
}

// CreateKidChore records a completion of choreID by kidID. CompletedAt is
// server-assigned at the creation instant (UTC). The referenced ids are not
// validated here; completion rows are plain append-only events.
func CreateKidChore(ctx context.Context, db *gorm.DB, kidID, choreID uint) (*domain.KidChore, error) {
	kc := &domain.KidChore{
		KidID:       kidID,
		ChoreID:     choreID,
		CompletedAt: time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(kc).Error; err != nil {
		return nil, err
	}
	return kc, nil
}

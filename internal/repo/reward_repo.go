// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Reward
// model and the KidReward award records.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/choreboard/go-chore-backend/internal/domain"
)

// CreateReward inserts a new Reward row and returns it with its generated id.
func CreateReward(ctx context.Context, db *gorm.DB, name string, points int) (*domain.Reward, error) {
	r := &domain.Reward{
		Name:   name,
		Points: points,
	}
	if err := db.WithContext(ctx).Create(r).Error; err != nil {
		return nil, err
	}
	return r, nil
}

// ListRewards returns rewards in insertion order, applying offset and limit.
func ListRewards(ctx context.Context, db *gorm.DB, offset, limit int) ([]domain.Reward, error) {
	var out []domain.Reward
	err := db.WithContext(ctx).
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&out).Error
	return out, err
}

// CreateKidReward records an award of rewardID to kidID. AwardedAt is
// server-assigned at the creation instant (UTC). The referenced ids are not
// validated here, mirroring CreateKidChore.
func CreateKidReward(ctx context.Context, db *gorm.DB, kidID, rewardID uint) (*domain.KidReward, error) {
	kr := &domain.KidReward{
		KidID:     kidID,
		RewardID:  rewardID,
		AwardedAt: time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(kr).Error; err != nil {
		return nil, err
	}
	return kr, nil
}

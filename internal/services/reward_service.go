// Package services – RewardService
//
// This file implements the RewardService, covering reward creation, listing,
// and award events linking rewards to kids. Award recording mirrors chore
// completion: no existence checks, append-only rows.
package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/choreboard/go-chore-backend/internal/domain"
	"github.com/choreboard/go-chore-backend/internal/repo"
)

// RewardService implements the use-cases around rewards and award events.
type RewardService struct {
	// DB is the database handle used for all reward operations.
	DB *gorm.DB

	// DefaultLimit is used when a list request supplies a negative limit.
	DefaultLimit int
}

// NewRewardService constructs a RewardService with the reference default limit.
func NewRewardService(db *gorm.DB) *RewardService {
	return &RewardService{DB: db, DefaultLimit: 100}
}

// Create inserts a new reward with the given name and point cost.
func (s *RewardService) Create(ctx context.Context, name string, points int) (*domain.Reward, error) {
	return repo.CreateReward(ctx, s.DB, name, points)
}

// List returns rewards in insertion order. Negative skip is coerced to 0 and
// a negative limit falls back to DefaultLimit. An explicit zero limit is
// passed through and yields no rows.
func (s *RewardService) List(ctx context.Context, skip, limit int) ([]domain.Reward, error) {
	if skip < 0 {
		skip = 0
	}
	if limit < 0 {
		limit = s.DefaultLimit
	}
	return repo.ListRewards(ctx, s.DB, skip, limit)
}

// Award records that rewardID was awarded to kidID and returns the
// timestamped award row. Neither id is validated against its table.
func (s *RewardService) Award(ctx context.Context, kidID, rewardID uint) (*domain.KidReward, error) {
	return repo.CreateKidReward(ctx, s.DB, kidID, rewardID)
}

// Package services – KidService
//
// This file implements the KidService, covering kid creation, listing, and
// the completion events that link kids to chores. In line with the surface it
// replaces, recording a completion performs no existence check on either id;
// completion rows are append-only events.
package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/choreboard/go-chore-backend/internal/domain"
	"github.com/choreboard/go-chore-backend/internal/repo"
)

// KidService implements the use-cases around kids and chore completions.
type KidService struct {
	// DB is the database handle used for all kid operations.
	DB *gorm.DB

	// DefaultLimit is used when a list request supplies a negative limit.
	DefaultLimit int
}

// NewKidService constructs a KidService with the reference default limit.
func NewKidService(db *gorm.DB) *KidService {
	return &KidService{DB: db, DefaultLimit: 100}
}

// Create inserts a new kid with the given name.
func (s *KidService) Create(ctx context.Context, name string) (*domain.Kid, error) {
	return repo.CreateKid(ctx, s.DB, name)
}

// List returns kids in insertion order. Negative skip is coerced to 0 and a
// negative limit falls back to DefaultLimit. An explicit zero limit is
// passed through and yields no rows.
func (s *KidService) List(ctx context.Context, skip, limit int) ([]domain.Kid, error) {
	if skip < 0 {
		skip = 0
	}
	if limit < 0 {
		limit = s.DefaultLimit
	}
	return repo.ListKids(ctx, s.DB, skip, limit)
}

// CompleteChore records that kidID completed choreID and returns the
// timestamped completion row. Neither id is validated against its table.
func (s *KidService) CompleteChore(ctx context.Context, kidID, choreID uint) (*domain.KidChore, error) {
	return repo.CreateKidChore(ctx, s.DB, kidID, choreID)
}

// Package services – ChoreService
//
// This file implements the ChoreService, which manages the chore lifecycle:
// creation, listing with offset/limit, reads, partial updates, and deletion.
// It enforces the one cross-entity rule the system has: a kid_id supplied in
// an update payload must reference an existing kid.
//
// Service-level errors (ErrChoreNotFound, ErrInvalidKid) are returned for
// predictable cases so handlers can map them to HTTP results consistently.
package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/choreboard/go-chore-backend/internal/domain"
)

// ChoreRepo defines the repository contract required by ChoreService.
// Implementations are responsible for persistence of chore rows.
type ChoreRepo interface {
	// CreateChore inserts a new chore row.
	CreateChore(ctx context.Context, db *gorm.DB, name string, points int) (*domain.Chore, error)

	// ListChores returns chores in insertion order with offset/limit applied.
	ListChores(ctx context.Context, db *gorm.DB, offset, limit int) ([]domain.Chore, error)

	// GetChore fetches a chore by id.
	GetChore(ctx context.Context, db *gorm.DB, id uint) (*domain.Chore, error)

	// UpdateChore applies a partial column set and returns the updated row.
	UpdateChore(ctx context.Context, db *gorm.DB, id uint, fields map[string]any) (*domain.Chore, error)

	// DeleteChore removes a chore by id.
	DeleteChore(ctx context.Context, db *gorm.DB, id uint) error

	// GetKid fetches a kid by id; used for the kid_id existence check.
	GetKid(ctx context.Context, db *gorm.DB, id uint) (*domain.Kid, error)
}

// ChoreUpdate carries the fields of a partial chore update. Nil pointers mean
// "leave untouched", which is distinct from an explicitly supplied zero value.
type ChoreUpdate struct {
	Name   *string
	Points *int
	// KidID is accepted and validated but not persisted: chores carry no
	// kid column. The legacy surface behaved the same way.
	KidID *uint
}

// ChoreService provides chore-level operations. It holds the process-wide DB
// handle and delegates persistence to its repository.
type ChoreService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
	// Repo is the chore repository used by this service.
	Repo ChoreRepo

	// DefaultLimit is used when a list request supplies a negative limit.
	DefaultLimit int
}

// NewChoreService constructs a ChoreService with the reference default limit.
func NewChoreService(db *gorm.DB, r ChoreRepo) *ChoreService {
	return &ChoreService{DB: db, Repo: r, DefaultLimit: 100}
}

// Create inserts a new chore with the given name and points. Points may be
// any integer.
func (s *ChoreService) Create(ctx context.Context, name string, points int) (*domain.Chore, error) {
	return s.Repo.CreateChore(ctx, s.DB, name, points)
}

// List returns chores in insertion order. Negative skip is coerced to 0 and
// a negative limit falls back to DefaultLimit. An explicit zero limit is
// passed through and yields no rows.
func (s *ChoreService) List(ctx context.Context, skip, limit int) ([]domain.Chore, error) {
	if skip < 0 {
		skip = 0
	}
	if limit < 0 {
		limit = s.DefaultLimit
	}
	return s.Repo.ListChores(ctx, s.DB, skip, limit)
}

// Get fetches a chore by id, or ErrChoreNotFound.
func (s *ChoreService) Get(ctx context.Context, id uint) (*domain.Chore, error) {
	c, err := s.Repo.GetChore(ctx, s.DB, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrChoreNotFound
		}
		return nil, err
	}
	return c, nil
}

// Update applies a partial update to a chore and returns the updated row.
//
// Semantics:
//   - The chore must exist; otherwise ErrChoreNotFound.
//   - When upd.KidID is present, the referenced kid must exist; otherwise
//     ErrInvalidKid and the chore is left unmodified.
//   - Only fields present in upd are written; absent fields keep their
//     stored values.
func (s *ChoreService) Update(ctx context.Context, id uint, upd ChoreUpdate) (*domain.Chore, error) {
	if _, err := s.Repo.GetChore(ctx, s.DB, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrChoreNotFound
		}
		return nil, err
	}

	if upd.KidID != nil {
		if _, err := s.Repo.GetKid(ctx, s.DB, *upd.KidID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrInvalidKid
			}
			return nil, err
		}
	}

	fields := map[string]any{}
	if upd.Name != nil {
		fields["name"] = *upd.Name
	}
	if upd.Points != nil {
		fields["points"] = *upd.Points
	}
	return s.Repo.UpdateChore(ctx, s.DB, id, fields)
}

// Delete removes a chore by id, or ErrChoreNotFound. Existing completion
// records keep their chore_id.
func (s *ChoreService) Delete(ctx context.Context, id uint) error {
	if err := s.Repo.DeleteChore(ctx, s.DB, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrChoreNotFound
		}
		return err
	}
	return nil
}

// Package services – UserService and AuthService
//
// This file implements account registration and credential verification.
// Registration hashes the password before it ever reaches the repository;
// authentication performs the lookup and bcrypt comparison, returning one
// indistinguishable error for "no such user" and "wrong password".
package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/choreboard/go-chore-backend/internal/auth"
	"github.com/choreboard/go-chore-backend/internal/domain"
	"github.com/choreboard/go-chore-backend/internal/repo"
)

// UserService implements account registration.
type UserService struct {
	// DB is the database handle used for all user operations.
	DB *gorm.DB
}

// Register creates an account for username with the bcrypt hash of password.
// Returns ErrUsernameTaken when the username already has a row.
func (s *UserService) Register(ctx context.Context, username, password string) (*domain.User, error) {
	hashed, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}
	u, err := repo.CreateUser(ctx, s.DB, username, hashed)
	if err != nil {
		if errors.Is(err, repo.ErrDuplicateUsername) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}
	return u, nil
}

// AuthService verifies credentials and mints access tokens.
type AuthService struct {
	// DB is the database handle used for user lookups.
	DB *gorm.DB
	// Tokens signs and verifies bearer tokens.
	Tokens *auth.TokenService
}

// Authenticate looks up the user by username and verifies the password
// against the stored hash. Both a missing user and a failed comparison yield
// ErrInvalidCredentials.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	u, err := repo.GetUserByUsername(ctx, s.DB, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !auth.CheckPassword(u.HashedPassword, password) {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// Login authenticates the credentials and, on success, issues a signed
// bearer token whose subject is the username.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	u, err := s.Authenticate(ctx, username, password)
	if err != nil {
		return "", err
	}
	return s.Tokens.Issue(u.Username)
}

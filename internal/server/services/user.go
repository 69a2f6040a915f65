// Package services contains the server-side business logic. This file
// implements UserService: registration, login, the authentication gate, and
// profile updates including password changes.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"finbook/internal/common"
	"finbook/internal/config"
	"finbook/internal/server/auth"
	"finbook/internal/server/models"
	"finbook/internal/server/repositories/repomanager"
)

// UserService provides identity operations:
//   - Register: create users with hashed passwords
//   - Login: verify credentials and mint a bearer token
//   - Authenticate: resolve a bearer token to the user record
//   - Update/Delete: profile maintenance for the authenticated user
type UserService struct {
	db                          *sql.DB
	repomanager                 repomanager.RepositoryManager
	jwtSecret                   []byte
	accessTokenValidityDuration time.Duration
	bcryptCost                  int
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:                          db,
		repomanager:                 m,
		jwtSecret:                   []byte(cfg.SecretKey),
		accessTokenValidityDuration: cfg.AccessTokenValidityDuration,
		bcryptCost:                  cfg.BcryptCost,
	}
}

// Register creates a new user. A missing password is a validation error; a
// duplicate email surfaces as common.ErrorConflict.
func (s *UserService) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	if password == "" {
		return nil, common.NewValidationError("password", "Password is required")
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{Name: name, Email: email, Password: hash}

	repo := s.repomanager.Users(s.db)
	u, err := repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorConflict) {
			return nil, common.ErrorConflict
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	return u, nil
}

// Login verifies the credentials and returns a signed access token. Unknown
// email and wrong password are indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorUnauthorized
		}
		return "", common.ErrorInternal
	}

	if !auth.CheckPassword(password, user.Password) {
		return "", common.ErrorUnauthorized
	}

	token, err := auth.GenerateToken(user.ID, user.Email, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return "", common.ErrorInternal
	}

	return token, nil
}

// Authenticate resolves a bearer token to the user record. Every failure
// mode (expired, bad signature, malformed, user deleted after issuance)
// collapses into common.ErrorUnauthorized; the wrapped cause stays available
// for logging via errors.Is.
func (s *UserService) Authenticate(ctx context.Context, tokenString string) (*models.User, error) {
	claims, err := auth.ParseToken(tokenString, s.jwtSecret)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrorUnauthorized, err)
	}

	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}

	return user, nil
}

// UserPatch carries the optional fields of a profile update. A nil field
// keeps the stored value. Changing the password requires CurrentPassword.
type UserPatch struct {
	Name            *string
	Email           *string
	Password        *string
	CurrentPassword *string
}

// Update applies the patch to the authenticated user's record.
func (s *UserService) Update(ctx context.Context, userID string, patch *UserPatch) (*models.User, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		user.Name = *patch.Name
	}
	if patch.Email != nil {
		user.Email = *patch.Email
	}
	if patch.Password != nil {
		if patch.CurrentPassword == nil || *patch.CurrentPassword == "" {
			return nil, common.ErrCurrentPasswordRequired
		}
		if !auth.CheckPassword(*patch.CurrentPassword, user.Password) {
			return nil, common.ErrCurrentPasswordIncorrect
		}
		hash, err := auth.HashPassword(*patch.Password, s.bcryptCost)
		if err != nil {
			return nil, fmt.Errorf("error hashing password: %w", err)
		}
		user.Password = hash
	}

	return repo.Update(ctx, user)
}

// Delete removes the user. Accounts, transactions, and budgets cascade at
// the schema level.
func (s *UserService) Delete(ctx context.Context, userID string) error {
	repo := s.repomanager.Users(s.db)
	return repo.Delete(ctx, userID)
}

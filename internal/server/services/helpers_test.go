package services

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"golang.org/x/crypto/bcrypt"

	"finbook/internal/config"
	"finbook/internal/server/models"
	"finbook/internal/server/repositories/repomanager"
)

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

func testConfig() *config.Config {
	return &config.Config{
		SecretKey:                   "test-secret",
		AccessTokenValidityDuration: time.Hour,
		BcryptCost:                  bcrypt.MinCost,
	}
}

// registerUser creates a user through the service so the stored password is
// properly hashed.
func registerUser(t *testing.T, db *sql.DB, rm repomanager.RepositoryManager, email string) *models.User {
	t.Helper()
	us := NewUserService(db, rm, testConfig())
	u, err := us.Register(context.Background(), "test user", email, "pw123")
	if err != nil {
		t.Fatalf("registerUser(%q) error: %v", email, err)
	}
	return u
}

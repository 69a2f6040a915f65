package services

import (
	"context"
	"errors"
	"testing"

	"finbook/internal/common"
	"finbook/internal/server/repositories/repomanager"
)

func strptr(s string) *string { return &s }

func TestRegister_LoginAndAuthenticate(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := repomanager.NewInMemoryRepositoryManager()
	s := NewUserService(db, rm, testConfig())

	u, err := s.Register(context.Background(), "alice", "alice@example.com", "pw123")
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if u.ID == "" {
		t.Fatalf("expected assigned id")
	}

	token, err := s.Login(context.Background(), "alice@example.com", "pw123")
	if err != nil || token == "" {
		t.Fatalf("Login: token=%q err=%v", token, err)
	}

	got, err := s.Authenticate(context.Background(), token)
	if err != nil {
		t.Fatalf("Authenticate error: %v", err)
	}
	if got.ID != u.ID {
		t.Fatalf("authenticated wrong user: got %q want %q", got.ID, u.ID)
	}
}

func TestRegister_EmptyPassword(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	s := NewUserService(db, repomanager.NewInMemoryRepositoryManager(), testConfig())

	_, err := s.Register(context.Background(), "alice", "alice@example.com", "")

	var validationErr *common.ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("want ValidationError, got %v", err)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := repomanager.NewInMemoryRepositoryManager()
	s := NewUserService(db, rm, testConfig())

	if _, err := s.Register(context.Background(), "alice", "alice@example.com", "pw"); err != nil {
		t.Fatalf("first Register error: %v", err)
	}

	_, err := s.Register(context.Background(), "other", "alice@example.com", "pw")
	if !errors.Is(err, common.ErrorConflict) {
		t.Fatalf("want common.ErrorConflict, got %v", err)
	}
}

func TestLogin_UnknownAndWrongPassword(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := repomanager.NewInMemoryRepositoryManager()
	registerUser(t, db, rm, "alice@example.com")
	s := NewUserService(db, rm, testConfig())

	if _, err := s.Login(context.Background(), "ghost@example.com", "pw123"); !errors.Is(err, common.ErrorUnauthorized) {
		t.Fatalf("unknown email: want ErrorUnauthorized, got %v", err)
	}
	if _, err := s.Login(context.Background(), "alice@example.com", "wrong"); !errors.Is(err, common.ErrorUnauthorized) {
		t.Fatalf("wrong password: want ErrorUnauthorized, got %v", err)
	}
}

func TestAuthenticate_BadToken(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	s := NewUserService(db, repomanager.NewInMemoryRepositoryManager(), testConfig())

	_, err := s.Authenticate(context.Background(), "not.a.jwt")
	if !errors.Is(err, common.ErrorUnauthorized) {
		t.Fatalf("want ErrorUnauthorized, got %v", err)
	}
}

func TestAuthenticate_UserDeletedAfterIssuance(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := repomanager.NewInMemoryRepositoryManager()
	u := registerUser(t, db, rm, "alice@example.com")
	s := NewUserService(db, rm, testConfig())

	token, err := s.Login(context.Background(), "alice@example.com", "pw123")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}

	if err := s.Delete(context.Background(), u.ID); err != nil {
		t.Fatalf("Delete error: %v", err)
	}

	if _, err := s.Authenticate(context.Background(), token); !errors.Is(err, common.ErrorUnauthorized) {
		t.Fatalf("want ErrorUnauthorized, got %v", err)
	}
}

func TestUpdate_NameAndEmail(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := repomanager.NewInMemoryRepositoryManager()
	u := registerUser(t, db, rm, "alice@example.com")
	s := NewUserService(db, rm, testConfig())

	got, err := s.Update(context.Background(), u.ID, &UserPatch{Name: strptr("Alice B")})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if got.Name != "Alice B" {
		t.Fatalf("name not updated: %q", got.Name)
	}
	if got.Email != "alice@example.com" {
		t.Fatalf("email must be unchanged, got %q", got.Email)
	}
}

func TestUpdate_PasswordChangeFlow(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := repomanager.NewInMemoryRepositoryManager()
	u := registerUser(t, db, rm, "alice@example.com")
	s := NewUserService(db, rm, testConfig())

	// no current password supplied
	_, err := s.Update(context.Background(), u.ID, &UserPatch{Password: strptr("newpw")})
	if !errors.Is(err, common.ErrCurrentPasswordRequired) {
		t.Fatalf("want ErrCurrentPasswordRequired, got %v", err)
	}

	// wrong current password
	_, err = s.Update(context.Background(), u.ID, &UserPatch{Password: strptr("newpw"), CurrentPassword: strptr("nope")})
	if !errors.Is(err, common.ErrCurrentPasswordIncorrect) {
		t.Fatalf("want ErrCurrentPasswordIncorrect, got %v", err)
	}

	// correct current password
	if _, err := s.Update(context.Background(), u.ID, &UserPatch{Password: strptr("newpw"), CurrentPassword: strptr("pw123")}); err != nil {
		t.Fatalf("Update error: %v", err)
	}

	if _, err := s.Login(context.Background(), "alice@example.com", "pw123"); !errors.Is(err, common.ErrorUnauthorized) {
		t.Fatalf("old password must stop working, got %v", err)
	}
	if _, err := s.Login(context.Background(), "alice@example.com", "newpw"); err != nil {
		t.Fatalf("new password must work, got %v", err)
	}
}

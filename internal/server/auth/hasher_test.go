package auth

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashAndCheckPassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("s3cret", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	if !CheckPassword("s3cret", hash) {
		t.Fatalf("expected password to match its own hash")
	}
	if CheckPassword("wrong", hash) {
		t.Fatalf("expected mismatch for wrong password")
	}
}

func TestHashPassword_SaltedPerCall(t *testing.T) {
	t.Parallel()

	h1, err := HashPassword("same", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	h2, err := HashPassword("same", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if string(h1) == string(h2) {
		t.Fatalf("two hashes of the same password must differ")
	}
}

func TestHashPassword_OutOfRangeCostFallsBack(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("pw", 99)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	cost, err := bcrypt.Cost(hash)
	if err != nil {
		t.Fatalf("bcrypt.Cost error: %v", err)
	}
	if cost != bcrypt.DefaultCost {
		t.Fatalf("want default cost %d, got %d", bcrypt.DefaultCost, cost)
	}
}

func TestCheckPassword_MalformedHash(t *testing.T) {
	t.Parallel()

	if CheckPassword("pw", []byte("not-a-bcrypt-hash")) {
		t.Fatalf("expected false for malformed hash")
	}
}

// Package auth implements the credential hasher and the bearer-token
// service: bcrypt password hashing and HS256 JWT issue/validate.
package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword hashes a plaintext password with bcrypt at the given cost.
// The salt is generated per call and embedded in the output. Cost values
// outside bcrypt's supported range fall back to the default cost.
func HashPassword(plain string, cost int) ([]byte, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return bcrypt.GenerateFromPassword([]byte(plain), cost)
}

// CheckPassword reports whether plain matches the stored bcrypt hash.
// Malformed hashes and wrong passwords both yield false; the comparison is
// constant-time inside bcrypt.
func CheckPassword(plain string, hash []byte) bool {
	return bcrypt.CompareHashAndPassword(hash, []byte(plain)) == nil
}

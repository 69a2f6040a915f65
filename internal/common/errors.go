// Package common defines sentinel errors shared across the service layers.
// Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")
	ErrorConflict = errors.New("already exists")

	// Service-level errors.
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Token lifecycle errors. Callers reject both the same way; they stay
	// distinct for logging.
	ErrTokenExpired = errors.New("token expired")
	ErrInvalidToken = errors.New("invalid token")

	// Referential errors raised when a transaction points at an account the
	// caller does not own. Indistinguishable from a nonexistent account.
	ErrAccountNotFound         = errors.New("account does not exist")
	ErrTransferAccountNotFound = errors.New("transfer account does not exist")

	// Password-change errors. Unlike login failures, these two are
	// distinguished in responses.
	ErrCurrentPasswordRequired  = errors.New("current password is required")
	ErrCurrentPasswordIncorrect = errors.New("current password is incorrect")
)

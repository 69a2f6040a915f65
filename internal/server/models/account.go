package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account is a financial account owned by exactly one user. Balance is a
// caller-managed value, not recomputed from transactions.
type Account struct {
	ID           string          `json:"id"`
	UserID       string          `json:"-"`
	Name         string          `json:"name"`
	AccountType  AccountType     `json:"account_type"`
	Balance      decimal.Decimal `json:"balance"`
	Description  *string         `json:"description"`
	CreatedAt    time.Time       `json:"created_at"`
	LastModified time.Time       `json:"last_modified"`
}

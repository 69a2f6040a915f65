package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction belongs to one user and one primary account. The amount sign
// convention is caller-determined; no sign flip happens by type.
// TransferAccountID, when set, must reference another account of the same
// owner. It is nulled out when the referenced account is deleted.
type Transaction struct {
	ID                string          `json:"id"`
	UserID            string          `json:"-"`
	AccountID         string          `json:"account_id"`
	Date              time.Time       `json:"date"`
	Amount            decimal.Decimal `json:"amount"`
	Description       *string         `json:"description"`
	TransactionType   TransactionType `json:"transaction_type"`
	TransferAccountID *string         `json:"transfer_account_id"`
	CreatedAt         time.Time       `json:"created_at"`
	LastModified      time.Time       `json:"last_modified"`
}

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Budget is a standalone ceiling record for a date range. It is not linked
// to transactions or accounts beyond ownership.
type Budget struct {
	ID           string          `json:"id"`
	UserID       string          `json:"-"`
	StartDate    time.Time       `json:"start_date"`
	EndDate      time.Time       `json:"end_date"`
	Amount       decimal.Decimal `json:"amount"`
	Description  *string         `json:"description"`
	CreatedAt    time.Time       `json:"created_at"`
	LastModified time.Time       `json:"last_modified"`
}

package models

import (
	"strings"

	"finbook/internal/common"
)

// AccountType is the closed set of account kinds. The literal values are
// part of the API contract and are stored as-is.
type AccountType string

const (
	AccountTypeChecking   AccountType = "Checking Account"
	AccountTypeSavings    AccountType = "Savings Account"
	AccountTypeCreditCard AccountType = "Credit Card"
	AccountTypeInvestment AccountType = "Investment Account"
	AccountTypeCash       AccountType = "Cash"
	AccountTypeOther      AccountType = "Other"
)

var accountTypes = map[AccountType]struct{}{
	AccountTypeChecking:   {},
	AccountTypeSavings:    {},
	AccountTypeCreditCard: {},
	AccountTypeInvestment: {},
	AccountTypeCash:       {},
	AccountTypeOther:      {},
}

// ParseAccountType trims surrounding whitespace and checks membership.
// The returned message wording is fixed; clients match on it.
func ParseAccountType(s string) (AccountType, error) {
	t := AccountType(strings.TrimSpace(s))
	if t == "" {
		return "", common.NewValidationError("account_type", "Invalid account type.")
	}
	if _, ok := accountTypes[t]; !ok {
		return "", common.NewValidationError("account_type", "Invalid account type.")
	}
	return t, nil
}

// TransactionType is the closed set of transaction kinds.
type TransactionType string

const (
	TransactionTypeIncome   TransactionType = "Income"
	TransactionTypeExpense  TransactionType = "Expense"
	TransactionTypeTransfer TransactionType = "Transfer"
)

var transactionTypes = map[TransactionType]struct{}{
	TransactionTypeIncome:   {},
	TransactionTypeExpense:  {},
	TransactionTypeTransfer: {},
}

// ParseTransactionType trims surrounding whitespace and checks membership.
func ParseTransactionType(s string) (TransactionType, error) {
	t := TransactionType(strings.TrimSpace(s))
	if t == "" {
		return "", common.NewValidationError("transaction_type", "Invalid transaction type.")
	}
	if _, ok := transactionTypes[t]; !ok {
		return "", common.NewValidationError("transaction_type", "Invalid transaction type.")
	}
	return t, nil
}

package httpapi

import (
	"net/http"
	"time"

	"finbook/internal/server/services"

	"github.com/shopspring/decimal"
)

const transactionNotFoundDetail = "Transaction does not found."

type createTransactionRequest struct {
	AccountID         string          `json:"account_id"`
	Date              *time.Time      `json:"date"`
	Amount            decimal.Decimal `json:"amount"`
	Description       *string         `json:"description"`
	TransactionType   string          `json:"transaction_type"`
	TransferAccountID *string         `json:"transfer_account_id"`
}

type updateTransactionRequest struct {
	AccountID         *string          `json:"account_id"`
	Date              *time.Time       `json:"date"`
	Amount            *decimal.Decimal `json:"amount"`
	Description       *string          `json:"description"`
	TransactionType   *string          `json:"transaction_type"`
	TransferAccountID *string          `json:"transfer_account_id"`
}

func (s *HTTPServer) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	transactions, err := s.transactions.List(r.Context(), currentUser(r).ID)
	if err != nil {
		s.writeServiceError(w, r, err, transactionNotFoundDetail)
		return
	}

	writeJSON(w, http.StatusOK, transactions)
}

func (s *HTTPServer) handleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	var req createTransactionRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	transaction, err := s.transactions.Create(r.Context(), currentUser(r).ID, &services.TransactionCreate{
		AccountID:         req.AccountID,
		Date:              req.Date,
		Amount:            req.Amount,
		Description:       req.Description,
		TransactionType:   req.TransactionType,
		TransferAccountID: req.TransferAccountID,
	})
	if err != nil {
		s.writeServiceError(w, r, err, transactionNotFoundDetail)
		return
	}

	writeJSON(w, http.StatusCreated, transaction)
}

func (s *HTTPServer) handleGetTransaction(w http.ResponseWriter, r *http.Request) {
	transaction, err := s.transactions.Get(r.Context(), r.PathValue("id"), currentUser(r).ID)
	if err != nil {
		s.writeServiceError(w, r, err, transactionNotFoundDetail)
		return
	}

	writeJSON(w, http.StatusOK, transaction)
}

func (s *HTTPServer) handleUpdateTransaction(w http.ResponseWriter, r *http.Request) {
	var req updateTransactionRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	transaction, err := s.transactions.Update(r.Context(), r.PathValue("id"), currentUser(r).ID, &services.TransactionPatch{
		AccountID:         req.AccountID,
		Date:              req.Date,
		Amount:            req.Amount,
		Description:       req.Description,
		TransactionType:   req.TransactionType,
		TransferAccountID: req.TransferAccountID,
	})
	if err != nil {
		s.writeServiceError(w, r, err, transactionNotFoundDetail)
		return
	}

	writeJSON(w, http.StatusOK, transaction)
}

func (s *HTTPServer) handleDeleteTransaction(w http.ResponseWriter, r *http.Request) {
	if err := s.transactions.Delete(r.Context(), r.PathValue("id"), currentUser(r).ID); err != nil {
		s.writeServiceError(w, r, err, transactionNotFoundDetail)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

package httpapi

import (
	"net/http"

	"finbook/internal/server/services"

	"github.com/shopspring/decimal"
)

const accountNotFoundDetail = "Account does not found."

type createAccountRequest struct {
	Name        string          `json:"name"`
	AccountType string          `json:"account_type"`
	Balance     decimal.Decimal `json:"balance"`
	Description *string         `json:"description"`
}

type updateAccountRequest struct {
	Name        *string          `json:"name"`
	AccountType *string          `json:"account_type"`
	Balance     *decimal.Decimal `json:"balance"`
	Description *string          `json:"description"`
}

func (s *HTTPServer) handleListAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := s.accounts.List(r.Context(), currentUser(r).ID)
	if err != nil {
		s.writeServiceError(w, r, err, accountNotFoundDetail)
		return
	}

	writeJSON(w, http.StatusOK, accounts)
}

func (s *HTTPServer) handleCreateAccount(w http.ResponseWriter, r *http.Request) {
	var req createAccountRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	account, err := s.accounts.Create(r.Context(), currentUser(r).ID, &services.AccountCreate{
		Name:        req.Name,
		AccountType: req.AccountType,
		Balance:     req.Balance,
		Description: req.Description,
	})
	if err != nil {
		s.writeServiceError(w, r, err, accountNotFoundDetail)
		return
	}

	writeJSON(w, http.StatusCreated, account)
}

func (s *HTTPServer) handleGetAccount(w http.ResponseWriter, r *http.Request) {
	account, err := s.accounts.Get(r.Context(), r.PathValue("id"), currentUser(r).ID)
	if err != nil {
		s.writeServiceError(w, r, err, accountNotFoundDetail)
		return
	}

	writeJSON(w, http.StatusOK, account)
}

func (s *HTTPServer) handleUpdateAccount(w http.ResponseWriter, r *http.Request) {
	var req updateAccountRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	account, err := s.accounts.Update(r.Context(), r.PathValue("id"), currentUser(r).ID, &services.AccountPatch{
		Name:        req.Name,
		AccountType: req.AccountType,
		Balance:     req.Balance,
		Description: req.Description,
	})
	if err != nil {
		s.writeServiceError(w, r, err, accountNotFoundDetail)
		return
	}

	writeJSON(w, http.StatusOK, account)
}

func (s *HTTPServer) handleDeleteAccount(w http.ResponseWriter, r *http.Request) {
	if err := s.accounts.Delete(r.Context(), r.PathValue("id"), currentUser(r).ID); err != nil {
		s.writeServiceError(w, r, err, accountNotFoundDetail)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

package httpapi

import (
	"net/http"
	"time"

	"finbook/internal/server/services"

	"github.com/shopspring/decimal"
)

const budgetNotFoundDetail = "Budget does not found."

type createBudgetRequest struct {
	StartDate   time.Time       `json:"start_date"`
	EndDate     time.Time       `json:"end_date"`
	Amount      decimal.Decimal `json:"amount"`
	Description *string         `json:"description"`
}

type updateBudgetRequest struct {
	StartDate   *time.Time       `json:"start_date"`
	EndDate     *time.Time       `json:"end_date"`
	Amount      *decimal.Decimal `json:"amount"`
	Description *string          `json:"description"`
}

func (s *HTTPServer) handleListBudgets(w http.ResponseWriter, r *http.Request) {
	budgets, err := s.budgets.List(r.Context(), currentUser(r).ID)
	if err != nil {
		s.writeServiceError(w, r, err, budgetNotFoundDetail)
		return
	}

	writeJSON(w, http.StatusOK, budgets)
}

func (s *HTTPServer) handleCreateBudget(w http.ResponseWriter, r *http.Request) {
	var req createBudgetRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	budget, err := s.budgets.Create(r.Context(), currentUser(r).ID, &services.BudgetCreate{
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Amount:      req.Amount,
		Description: req.Description,
	})
	if err != nil {
		s.writeServiceError(w, r, err, budgetNotFoundDetail)
		return
	}

	writeJSON(w, http.StatusCreated, budget)
}

func (s *HTTPServer) handleGetBudget(w http.ResponseWriter, r *http.Request) {
	budget, err := s.budgets.Get(r.Context(), r.PathValue("id"), currentUser(r).ID)
	if err != nil {
		s.writeServiceError(w, r, err, budgetNotFoundDetail)
		return
	}

	writeJSON(w, http.StatusOK, budget)
}

func (s *HTTPServer) handleUpdateBudget(w http.ResponseWriter, r *http.Request) {
	var req updateBudgetRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	budget, err := s.budgets.Update(r.Context(), r.PathValue("id"), currentUser(r).ID, &services.BudgetPatch{
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Amount:      req.Amount,
		Description: req.Description,
	})
	if err != nil {
		s.writeServiceError(w, r, err, budgetNotFoundDetail)
		return
	}

	writeJSON(w, http.StatusOK, budget)
}

func (s *HTTPServer) handleDeleteBudget(w http.ResponseWriter, r *http.Request) {
	if err := s.budgets.Delete(r.Context(), r.PathValue("id"), currentUser(r).ID); err != nil {
		s.writeServiceError(w, r, err, budgetNotFoundDetail)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

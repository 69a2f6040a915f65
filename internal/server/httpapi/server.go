// Package httpapi exposes the bookkeeping service over JSON HTTP. Routing
// uses net/http method patterns; errors are returned as {"detail": "..."}
// bodies for compatibility with existing clients.
package httpapi

import (
	"context"
	"net/http"
	"time"

	"finbook/internal/logging"
	"finbook/internal/server/services"
)

type HTTPServer struct {
	address      string
	users        *services.UserService
	accounts     *services.AccountService
	transactions *services.TransactionService
	budgets      *services.BudgetService
	logger       logging.Logger
}

func NewHTTPServer(a string, l logging.Logger, us *services.UserService, as *services.AccountService, ts *services.TransactionService, bs *services.BudgetService) (*HTTPServer, error) {
	return &HTTPServer{
		address:      a,
		logger:       l.With("module", "http_server"),
		users:        us,
		accounts:     as,
		transactions: ts,
		budgets:      bs,
	}, nil
}

// Handler builds the route table. Collection routes use the {$} suffix so
// they match exactly; item routes capture {id}.
func (s *HTTPServer) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /ping", s.handlePing)
	mux.HandleFunc("POST /auth/login", s.handleLogin)
	mux.HandleFunc("POST /users/{$}", s.handleCreateUser)

	mux.HandleFunc("GET /users/me", s.requireAuth(s.handleMe))
	mux.HandleFunc("PATCH /users/{$}", s.requireAuth(s.handleUpdateUser))
	mux.HandleFunc("DELETE /users/{$}", s.requireAuth(s.handleDeleteUser))

	mux.HandleFunc("GET /accounts/{$}", s.requireAuth(s.handleListAccounts))
	mux.HandleFunc("POST /accounts/{$}", s.requireAuth(s.handleCreateAccount))
	mux.HandleFunc("GET /accounts/{id}", s.requireAuth(s.handleGetAccount))
	mux.HandleFunc("PUT /accounts/{id}", s.requireAuth(s.handleUpdateAccount))
	mux.HandleFunc("DELETE /accounts/{id}", s.requireAuth(s.handleDeleteAccount))

	mux.HandleFunc("GET /transactions/{$}", s.requireAuth(s.handleListTransactions))
	mux.HandleFunc("POST /transactions/{$}", s.requireAuth(s.handleCreateTransaction))
	mux.HandleFunc("GET /transactions/{id}", s.requireAuth(s.handleGetTransaction))
	mux.HandleFunc("PUT /transactions/{id}", s.requireAuth(s.handleUpdateTransaction))
	mux.HandleFunc("DELETE /transactions/{id}", s.requireAuth(s.handleDeleteTransaction))

	mux.HandleFunc("GET /budgets/{$}", s.requireAuth(s.handleListBudgets))
	mux.HandleFunc("POST /budgets/{$}", s.requireAuth(s.handleCreateBudget))
	mux.HandleFunc("GET /budgets/{id}", s.requireAuth(s.handleGetBudget))
	mux.HandleFunc("PUT /budgets/{id}", s.requireAuth(s.handleUpdateBudget))
	mux.HandleFunc("DELETE /budgets/{id}", s.requireAuth(s.handleDeleteBudget))

	return s.logRequests(mux)
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *HTTPServer) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:              s.address,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}

	return nil
}

func (s *HTTPServer) handlePing(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

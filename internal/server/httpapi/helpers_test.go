package httpapi

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"golang.org/x/crypto/bcrypt"

	"finbook/internal/config"
	"finbook/internal/logging"
	"finbook/internal/server/repositories/repomanager"
	"finbook/internal/server/services"
)

// newTestServer wires the full handler stack over in-memory repositories.
// The sqlmock handle only backs the account-delete transaction path.
func newTestServer(t *testing.T) (http.Handler, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	cfg := &config.Config{
		SecretKey:                   "test-secret",
		AccessTokenValidityDuration: time.Hour,
		BcryptCost:                  bcrypt.MinCost,
	}

	rm := repomanager.NewInMemoryRepositoryManager()
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))

	us := services.NewUserService(db, rm, cfg)
	as := services.NewAccountService(db, rm, cfg)
	ts := services.NewTransactionService(db, rm, cfg)
	bs := services.NewBudgetService(db, rm, cfg)

	srv, err := NewHTTPServer(":0", logger, us, as, ts, bs)
	if err != nil {
		t.Fatalf("NewHTTPServer error: %v", err)
	}

	return srv.Handler(), mock, db
}

func doJSON(t *testing.T, h http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
}

func detailOf(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Detail string `json:"detail"`
	}
	decodeBody(t, rec, &body)
	return body.Detail
}

// registerAndLogin creates a user over the API and returns a bearer token.
func registerAndLogin(t *testing.T, h http.Handler, email string) string {
	t.Helper()

	rec := doJSON(t, h, http.MethodPost, "/users/", "", map[string]string{
		"name":     "test user",
		"email":    email,
		"password": "pw123",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("register status %d: %s", rec.Code, rec.Body.String())
	}

	form := url.Values{"username": {email}, "password": {"pw123"}}
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	loginRec := httptest.NewRecorder()
	h.ServeHTTP(loginRec, req)
	if loginRec.Code != http.StatusOK {
		t.Fatalf("login status %d: %s", loginRec.Code, loginRec.Body.String())
	}

	var tok tokenResponse
	decodeBody(t, loginRec, &tok)
	if tok.AccessToken == "" {
		t.Fatalf("empty access token: %s", loginRec.Body.String())
	}
	return tok.AccessToken
}

package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRequireAuth_MissingHeader(t *testing.T) {
	h, _, _ := newTestServer(t)

	rec := doJSON(t, h, http.MethodGet, "/accounts/", "", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status %d: %s", rec.Code, rec.Body.String())
	}
	if got := detailOf(t, rec); got != "Not authenticated" {
		t.Fatalf("detail %q", got)
	}
	if rec.Header().Get("WWW-Authenticate") != "Bearer" {
		t.Fatalf("missing WWW-Authenticate header")
	}
}

func TestRequireAuth_BadScheme(t *testing.T) {
	h, _, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/accounts/", nil)
	req.Header.Set("Authorization", "Basic abc123")

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status %d: %s", rec.Code, rec.Body.String())
	}
	if got := detailOf(t, rec); got != "Not authenticated" {
		t.Fatalf("detail %q", got)
	}
}

func TestRequireAuth_InvalidToken(t *testing.T) {
	h, _, _ := newTestServer(t)

	rec := doJSON(t, h, http.MethodGet, "/accounts/", "not.a.jwt", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status %d: %s", rec.Code, rec.Body.String())
	}
	if got := detailOf(t, rec); got != "Could not validate credentials" {
		t.Fatalf("detail %q", got)
	}
}

func TestRequireAuth_CaseInsensitiveBearer(t *testing.T) {
	h, _, _ := newTestServer(t)
	token := registerAndLogin(t, h, "alice@example.com")

	req := httptest.NewRequest(http.MethodGet, "/accounts/", nil)
	req.Header.Set("Authorization", "bearer "+token)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rec.Code, rec.Body.String())
	}
}

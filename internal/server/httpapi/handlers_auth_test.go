package httpapi

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

func postLogin(t *testing.T, h http.Handler, username, password string) *httptest.ResponseRecorder {
	t.Helper()

	form := url.Values{"username": {username}, "password": {password}}
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestLogin_Success(t *testing.T) {
	h, _, _ := newTestServer(t)
	registerAndLogin(t, h, "alice@example.com")

	rec := postLogin(t, h, "alice@example.com", "pw123")
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rec.Code, rec.Body.String())
	}

	var tok tokenResponse
	decodeBody(t, rec, &tok)
	if tok.AccessToken == "" {
		t.Fatalf("empty access token")
	}
	if tok.TokenType != "bearer" {
		t.Fatalf("token_type %q", tok.TokenType)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	h, _, _ := newTestServer(t)
	registerAndLogin(t, h, "alice@example.com")

	rec := postLogin(t, h, "alice@example.com", "wrong")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status %d: %s", rec.Code, rec.Body.String())
	}
	if got := detailOf(t, rec); got != "Incorrect username or password" {
		t.Fatalf("detail %q", got)
	}
	if rec.Header().Get("WWW-Authenticate") != "Bearer" {
		t.Fatalf("missing WWW-Authenticate header")
	}
}

func TestLogin_UnknownUserSameResponse(t *testing.T) {
	h, _, _ := newTestServer(t)

	rec := postLogin(t, h, "ghost@example.com", "pw123")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status %d: %s", rec.Code, rec.Body.String())
	}
	if got := detailOf(t, rec); got != "Incorrect username or password" {
		t.Fatalf("detail %q", got)
	}
}

func TestPing(t *testing.T) {
	h, _, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	if rec.Body.String() != "OK" {
		t.Fatalf("body %q", rec.Body.String())
	}
}

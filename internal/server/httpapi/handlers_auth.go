package httpapi

import (
	"errors"
	"net/http"

	"finbook/internal/common"
)

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// handleLogin exchanges form-encoded credentials (username = email) for a
// bearer token. Unknown user and wrong password get the same response.
func (s *HTTPServer) handleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, "Invalid request body.")
		return
	}

	username := r.PostForm.Get("username")
	password := r.PostForm.Get("password")

	token, err := s.users.Login(r.Context(), username, password)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			unauthorized(w, "Incorrect username or password")
			return
		}
		s.writeServiceError(w, r, err, "User does not found.")
		return
	}

	writeJSON(w, http.StatusOK, tokenResponse{AccessToken: token, TokenType: "bearer"})
}

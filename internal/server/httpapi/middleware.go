package httpapi

import (
	"context"
	"net/http"
	"strings"
	"time"

	"finbook/internal/server/models"
)

type ctxKey string

const userKey ctxKey = "user"

// requireAuth is the authentication gate: it extracts the bearer token,
// resolves it to a user record, and stores the record in the request
// context. Missing header, bad scheme, invalid/expired token, and a user
// deleted after issuance all produce the same 401 response; the underlying
// cause only reaches the log.
func (s *HTTPServer) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			unauthorized(w, "Not authenticated")
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			unauthorized(w, "Not authenticated")
			return
		}

		user, err := s.users.Authenticate(r.Context(), parts[1])
		if err != nil {
			s.logger.Warn(r.Context(), "authentication failed", "error", err.Error())
			unauthorized(w, "Could not validate credentials")
			return
		}

		ctx := context.WithValue(r.Context(), userKey, user)
		next(w, r.WithContext(ctx))
	}
}

// currentUser returns the authenticated user stored by requireAuth.
func currentUser(r *http.Request) *models.User {
	user, _ := r.Context().Value(userKey).(*models.User)
	return user
}

// statusRecorder captures the response code for request logging.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(code int) {
	rec.status = code
	rec.ResponseWriter.WriteHeader(code)
}

func (s *HTTPServer) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		s.logger.Info(r.Context(), "request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

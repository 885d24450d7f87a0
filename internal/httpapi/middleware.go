package httpapi

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"taskdesk/internal/model"
)

const sessionCookieName = "session_id"

type contextKey struct{}

var userContextKey contextKey

// userFrom returns the authenticated user placed in the context by
// requireUser. Handlers behind the middleware can rely on it being set.
func userFrom(r *http.Request) *model.User {
	user, _ := r.Context().Value(userContextKey).(*model.User)
	return user
}

// requireUser resolves the session cookie to a user and stores it in the
// request context. Missing, unknown and expired sessions all get the same
// 401 response.
func (s *Server) requireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(sessionCookieName)
		if err != nil {
			s.writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "not authenticated"})
			return
		}
		user, err := s.sessions.Resolve(r.Context(), cookie.Value, s.now())
		if err != nil {
			s.writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "not authenticated"})
			return
		}
		ctx := context.WithValue(r.Context(), userContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// statusRecorder captures the response status for the request log.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.log.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

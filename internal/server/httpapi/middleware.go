package httpapi

import (
	"context"
	"net/http"
	"time"
)

type ctxKey string

const userIDKey ctxKey = "userID"

const sessionCookieName = "jwt"

// requireAuth gates the protected subtree on the session cookie. The
// responses mirror the deployed API: a missing cookie and a bad token both
// answer 400 with their respective messages.
func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(sessionCookieName)
		if err != nil {
			writeMessage(w, http.StatusBadRequest, "not authenticated")
			return
		}

		userID, err := s.users.VerifyToken(cookie.Value)
		if err != nil {
			writeMessage(w, http.StatusBadRequest, "jwt is invalid")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requestUserID returns the authenticated user id set by requireAuth.
func requestUserID(r *http.Request) string {
	id, _ := r.Context().Value(userIDKey).(string)
	return id
}

// setSessionCookie delivers the session credential as an HTTP-only cookie.
func (s *Server) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		MaxAge:   int(s.tokenValidity.Seconds()),
	})
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Info(r.Context(), "request", "method", r.Method, "path", r.URL.Path, "duration", time.Since(start).String())
	})
}

package middleware

import (
	"context"
	"errors"
	"net/http"
	"slices"
	"strings"

	"github.com/SergeyBogomolovv/campus-laundry/internal/entities"
	"github.com/SergeyBogomolovv/campus-laundry/internal/session"
	"github.com/SergeyBogomolovv/campus-laundry/pkg/utils"
)

type Authenticator interface {
	CurrentSession(ctx context.Context, token string) (entities.Session, error)
}

// BearerToken extracts the token from the Authorization header. EventSource clients
// cannot set headers, so the access_token query parameter is accepted as well.
func BearerToken(r *http.Request) string {
	if h := r.Header.Get("Authorization"); h != "" {
		scheme, token, ok := strings.Cut(h, " ")
		if ok && strings.EqualFold(scheme, "Bearer") {
			return strings.TrimSpace(token)
		}
		return ""
	}
	return r.URL.Query().Get("access_token")
}

// Authenticate resolves the bearer token into a session and puts it into the
// request context.
func Authenticate(auth Authenticator) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := BearerToken(r)
			if token == "" {
				utils.WriteError(w, "missing bearer token", http.StatusUnauthorized)
				return
			}

			sess, err := auth.CurrentSession(r.Context(), token)
			if errors.Is(err, entities.ErrStore) {
				utils.WriteRetryableError(w, "service temporarily unavailable", http.StatusServiceUnavailable)
				return
			}
			if err != nil {
				utils.WriteError(w, "invalid or expired session", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(session.WithSession(r.Context(), sess)))
		})
	}
}

// RequireRole rejects sessions whose role is not listed. It must run after Authenticate.
func RequireRole(roles ...entities.Role) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, ok := session.FromContext(r.Context())
			if !ok {
				utils.WriteError(w, "not authenticated", http.StatusUnauthorized)
				return
			}
			if !slices.Contains(roles, sess.Role) {
				utils.WriteError(w, "action not permitted for role", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

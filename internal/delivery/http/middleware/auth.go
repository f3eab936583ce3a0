package middleware

import (
	"context"
	"net/http"

	"memberportal/internal/application/auth"
	"memberportal/internal/delivery/http/handler"
	"memberportal/internal/domain/user"
)

// Sessions resolves the session cookie into an immutable session value on
// the request context. Missing, malformed or expired tokens leave the
// request anonymous; downstream gates decide what that means per route.
func Sessions(authService auth.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if session := authService.Resolve(handler.SessionToken(r)); session != nil {
				ctx := context.WithValue(r.Context(), handler.SessionContextKey, session)
				r = r.WithContext(ctx)
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAuth sends anonymous requests to the login page.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if handler.SessionFromContext(r.Context()) == nil {
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireRole allows the request through only when the session's user
// currently holds one of the given roles. The role is re-fetched from the
// credential store on every request rather than trusted from the session,
// so a demotion takes effect on the very next request. Anonymous requests
// redirect to login; authenticated ones with the wrong role get a 403.
func RequireRole(users user.Repository, roles ...user.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session := handler.SessionFromContext(r.Context())
			if session == nil {
				http.Redirect(w, r, "/login", http.StatusFound)
				return
			}

			u, err := users.GetByUsername(session.Username)
			if err != nil {
				// A session for a user the store no longer knows carries
				// no role at all.
				http.Error(w, "403 - Forbidden", http.StatusForbidden)
				return
			}

			for _, role := range roles {
				if u.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}

			http.Error(w, "403 - Forbidden", http.StatusForbidden)
		})
	}
}

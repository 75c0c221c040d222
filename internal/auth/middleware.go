package auth

import (
	"log/slog"
	"net/http"
	"strings"
)

// DefaultCookie is the cookie the wallet SDK stores the session token in.
const DefaultCookie = "jwt"

// TokenFromRequest reads a bearer token, falling back to the named cookie.
func TokenFromRequest(r *http.Request, cookie string) string {
	if h := r.Header.Get("Authorization"); h != "" {
		if token, ok := strings.CutPrefix(h, "Bearer "); ok {
			return strings.TrimSpace(token)
		}
	}
	if c, err := r.Cookie(cookie); err == nil {
		return c.Value
	}
	return ""
}

// Middleware rejects requests without a valid session token with 401 and
// stores the identity of the others in the request context.
func Middleware(v *Verifier, cookie string, logger *slog.Logger) func(http.Handler) http.Handler {
	if cookie == "" {
		cookie = DefaultCookie
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, err := v.Verify(TokenFromRequest(r, cookie))
			if err != nil {
				logger.Debug("unauthenticated request", slog.String("path", r.URL.Path), slog.Any("error", err))
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"error":"unauthorized"}`))
				return
			}
			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), id)))
		})
	}
}

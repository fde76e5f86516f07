package httpx

import (
	"net/http"
	"strings"
	"time"

	"github.com/aussiebroadwan/planner/pkg/jwtx"
	"github.com/aussiebroadwan/planner/pkg/slogx"
)

// SessionCookieName is the cookie carrying the session token.
const SessionCookieName = "sessionToken"

// SetSessionCookie stores the session token on the client. The cookie lives
// exactly as long as the token is valid.
func SetSessionCookie(w http.ResponseWriter, r *http.Request, token string, ttl time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl / time.Second),
		HttpOnly: true,
		Secure:   IsTLS(r),
		SameSite: http.SameSiteStrictMode,
	})
}

// ClearSessionCookie expires the session cookie immediately.
func ClearSessionCookie(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   IsTLS(r),
		SameSite: http.SameSiteStrictMode,
	})
}

// IsTLS reports whether the client reached us over TLS, directly or through
// a proxy that sets X-Forwarded-Proto.
func IsTLS(r *http.Request) bool {
	if r.TLS != nil {
		return true
	}
	return strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https")
}

// SessionToken extracts the raw session token from the cookie, falling back
// to an Authorization: Bearer header for API clients.
func SessionToken(r *http.Request) string {
	if c, err := r.Cookie(SessionCookieName); err == nil && c.Value != "" {
		return c.Value
	}

	authz := r.Header.Get("Authorization")
	if strings.HasPrefix(authz, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(authz, "Bearer "))
	}
	return ""
}

// RequireSession rejects API requests without a valid session token with a
// 401. Verified claims are placed on the request context.
func RequireSession(v jwtx.Verifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			raw := SessionToken(r)
			if raw == "" {
				writeSessionError(w, "missing session token")
				return
			}

			claims, err := v.Verify(raw)
			if err != nil {
				log.Warn("session verify failed", "err", err)
				writeSessionError(w, "session verification failed")
				return
			}

			next.ServeHTTP(w, r.WithContext(contextWithSession(ctx, claims)))
		})
	}
}

// RFC 6750 style challenge with the JSON body the planner clients expect.
func writeSessionError(w http.ResponseWriter, desc string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token", error_description="`+desc+`"`)
	WriteJSON(w, http.StatusUnauthorized, map[string]string{"message": "Não autorizado"})
}

package httpx

import (
	"net/http"
	"strings"

	"github.com/aussiebroadwan/planner/pkg/jwtx"
	"github.com/aussiebroadwan/planner/pkg/slogx"
)

// DefaultPublicPrefixes are the paths served without a session. The API
// namespace is listed because every API route checks the session itself.
var DefaultPublicPrefixes = []string{
	"/login",
	"/cadastro",
	"/esqueci-senha",
	"/reset-password",
	"/api",
	"/health",
	"/livez",
	"/readyz",
	"/metrics",
	"/swagger",
	"/_next",
	"/favicon",
}

// GateConfig configures the page-level session gate.
type GateConfig struct {
	// LoginPath is where unauthenticated visitors are sent. Default "/login".
	LoginPath string

	// PublicPrefixes bypass the gate. Default DefaultPublicPrefixes.
	PublicPrefixes []string
}

// IsPublicPath reports whether path bypasses the gate. Prefixes match whole
// path segments, so "/api" covers "/api/me" but not "/apiary". Any path
// containing a dot is treated as a static asset.
func IsPublicPath(path string, prefixes []string) bool {
	if strings.Contains(path, ".") {
		return true
	}
	for _, p := range prefixes {
		if path == p || strings.HasPrefix(path, p+"/") {
			return true
		}
	}
	return false
}

// Gate protects pages. Requests without a session cookie, or with one whose
// signature or expiry does not verify, are redirected to the login page.
func Gate(v jwtx.Verifier, cfg GateConfig) Middleware {
	if cfg.LoginPath == "" {
		cfg.LoginPath = "/login"
	}
	if cfg.PublicPrefixes == nil {
		cfg.PublicPrefixes = DefaultPublicPrefixes
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if IsPublicPath(r.URL.Path, cfg.PublicPrefixes) {
				next.ServeHTTP(w, r)
				return
			}

			ctx := r.Context()
			log := slogx.FromContext(ctx)

			c, err := r.Cookie(SessionCookieName)
			if err != nil || c.Value == "" {
				log.Debug("gate: no session cookie, redirecting")
				http.Redirect(w, r, cfg.LoginPath, http.StatusSeeOther)
				return
			}

			claims, err := v.Verify(c.Value)
			if err != nil {
				log.Info("gate: rejected session cookie", "err", err)
				ClearSessionCookie(w, r)
				http.Redirect(w, r, cfg.LoginPath, http.StatusSeeOther)
				return
			}

			next.ServeHTTP(w, r.WithContext(contextWithSession(ctx, claims)))
		})
	}
}

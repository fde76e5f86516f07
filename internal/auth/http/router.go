package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/planner/internal/auth/service"
	"github.com/aussiebroadwan/planner/internal/auth/store"
	"github.com/aussiebroadwan/planner/pkg/httpx"
	"github.com/aussiebroadwan/planner/pkg/jwtx"
	"github.com/aussiebroadwan/planner/pkg/slogx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	_ "github.com/aussiebroadwan/planner/api/planner" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	store        store.Store

	AuthService  *service.AuthService
	ResetService *service.PasswordResetService

	// Gatherer backs /metrics. Nil leaves the endpoint unregistered.
	Gatherer prometheus.Gatherer

	// EchoResetToken puts the raw reset token in forgot-password responses.
	// Development only.
	EchoResetToken bool

	// RequestTimeout bounds every request context. Zero disables it.
	RequestTimeout time.Duration
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.Gate(r.verifier, httpx.GateConfig{}),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.middlewares = append(r.middlewares, httpx.Timeout(r.RequestTimeout))

	r.registerAuth()
	r.registerPasswordReset()
	r.registerPages()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Planner Authentication API
//	@version		0.1.0
//	@description	Account registration, login and password reset for the personal planner.
//	@description
//	@description				Sessions are HS256 JWTs valid for 24 hours, delivered as the sessionToken cookie and in the response body.
//	@description				User-facing messages are in Portuguese.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/planner
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:3000
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Session token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	register := &RegisterHandler{AuthService: r.AuthService}
	r.Mux.Handle("POST /api/register", register)

	// Older clients post to the alternate paths.
	login := &LoginHandler{AuthService: r.AuthService}
	r.Mux.Handle("POST /api/login", login)
	r.Mux.Handle("POST /api/user-login", login)
	r.Mux.Handle("POST /api/auth/login", login)

	r.Mux.Handle("GET /api/me", httpx.RequireSession(r.verifier)(&MeHandler{AuthService: r.AuthService}))
	r.Mux.HandleFunc("POST /api/logout", LogoutHandler)
}

func (r *Router) registerPasswordReset() {
	r.Mux.Handle("POST /api/forgot-password", &ForgotPasswordHandler{
		ResetService: r.ResetService,
		EchoToken:    r.EchoResetToken,
	})
	r.Mux.Handle("POST /api/reset-password", &ResetPasswordHandler{ResetService: r.ResetService})
}

func (r *Router) registerPages() {
	r.Mux.HandleFunc("GET /{$}", HomePage)
	r.Mux.HandleFunc("GET /login", LoginPage)
	r.Mux.HandleFunc("GET /cadastro", RegisterPage)
	r.Mux.HandleFunc("GET /esqueci-senha", ForgotPasswordPage)
	r.Mux.HandleFunc("GET /reset-password", ResetPasswordPage)
}

func (r *Router) registerSystem() {
	health := HealthHandler(r.store)
	r.Mux.Handle("GET /api/health", health)
	r.Mux.Handle("GET /health", health)

	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store))

	if r.Gatherer != nil {
		r.Mux.Handle("GET /metrics", promhttp.HandlerFor(r.Gatherer, promhttp.HandlerOpts{}))
	}
}

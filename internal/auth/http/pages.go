package http

import (
	"bytes"
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/aussiebroadwan/planner/pkg/httpx"
	"github.com/aussiebroadwan/planner/pkg/slogx"
)

//go:embed templates/*.html
var templateFS embed.FS

// pageTemplates maps a page name to layout.html plus that page's content.
var pageTemplates = func() map[string]*template.Template {
	pages := map[string]string{
		"home":            "templates/home.html",
		"login":           "templates/login.html",
		"register":        "templates/register.html",
		"forgot_password": "templates/forgot_password.html",
		"reset_password":  "templates/reset_password.html",
	}

	out := make(map[string]*template.Template, len(pages))
	for name, file := range pages {
		out[name] = template.Must(template.ParseFS(templateFS, "templates/layout.html", file))
	}
	return out
}()

type pageData struct {
	Title   string
	Email   string
	Token   string
	Message string
}

// renderPage buffers the output so a template error still yields a clean 500.
func renderPage(w http.ResponseWriter, r *http.Request, name string, data pageData) {
	var buf bytes.Buffer
	if err := pageTemplates[name].ExecuteTemplate(&buf, "layout", data); err != nil {
		slogx.FromContext(r.Context()).Error("failed to render page", slog.String("page", name), slog.Any("error", err))
		http.Error(w, MsgInternal, http.StatusInternalServerError)
		return
	}

	httpx.NoCache(w)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

// HomePage is the planner landing page. It sits behind the session gate.
func HomePage(w http.ResponseWriter, r *http.Request) {
	claims, _ := httpx.ClaimsFromContext(r.Context())
	renderPage(w, r, "home", pageData{Title: "Planner", Email: claims.Email})
}

func LoginPage(w http.ResponseWriter, r *http.Request) {
	renderPage(w, r, "login", pageData{Title: "Entrar"})
}

func RegisterPage(w http.ResponseWriter, r *http.Request) {
	renderPage(w, r, "register", pageData{Title: "Cadastro"})
}

func ForgotPasswordPage(w http.ResponseWriter, r *http.Request) {
	renderPage(w, r, "forgot_password", pageData{Title: "Esqueci minha senha"})
}

// ResetPasswordPage is where reset links land. It does not check the token;
// the API does that when the form is submitted.
func ResetPasswordPage(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	renderPage(w, r, "reset_password", pageData{
		Title:   "Redefinir senha",
		Token:   token,
		Message: MsgInvalidToken,
	})
}

package server

import (
	"html/template"
	"net/http"
	"net/url"
	"strings"

	"github.com/shopfront/admin-console/session"
)

// loginPage is the minimal built-in login form. The real console UI is a
// separate front end; this page exists so the gateway is usable on its own.
const loginPage = `<!DOCTYPE html>
<html>
<head><title>{{.AppName}} - Sign in</title></head>
<body>
  <h1>{{.AppName}}</h1>
  {{if .Error}}<p class="error">{{.Error}}</p>{{end}}
  <form method="post" action="{{.Action}}">
    <input type="hidden" name="return_to" value="{{.ReturnTo}}">
    <label>Email <input type="email" name="email" value="{{.Email}}" required></label>
    <label>Password <input type="password" name="password" required></label>
    <button type="submit">Sign in</button>
  </form>
</body>
</html>`

// loginPageData contains data for rendering the login page
type loginPageData struct {
	AppName  string
	Action   string
	Error    string
	Email    string
	ReturnTo string
}

// LoginPageHandler serves the login form, or bounces an already
// authenticated session straight to the dashboard.
func (s *Server) LoginPageHandler() http.HandlerFunc {
	tmpl := template.Must(template.New("login").Parse(loginPage))

	return func(w http.ResponseWriter, r *http.Request) {
		entry := s.registry.Resolve(w, r)
		if state := entry.Manager.CheckStatus(r.Context()); state.Authenticated {
			http.Redirect(w, r, RouteDashboard, http.StatusFound)
			return
		}

		data := loginPageData{
			AppName:  s.config.GetAppName(),
			Action:   RouteAuthLogin,
			Error:    r.URL.Query().Get("error"),
			Email:    r.URL.Query().Get("email"),
			ReturnTo: sanitizeReturnTo(r.URL.Query().Get(returnToParam)),
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_ = tmpl.Execute(w, data)
	}
}

// LoginSubmissionHandler exchanges the submitted credentials through the
// session manager and redirects back to the originally requested page.
func (s *Server) LoginSubmissionHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Redirect(w, r, RouteLogin+"?error="+url.QueryEscape("invalid form submission"), http.StatusSeeOther)
			return
		}

		creds := session.Credentials{
			Email:    r.PostFormValue("email"),
			Password: r.PostFormValue("password"),
		}
		returnTo := sanitizeReturnTo(r.PostFormValue(returnToParam))

		entry := s.registry.Resolve(w, r)
		if _, err := entry.Manager.Login(r.Context(), creds); err != nil {
			state := entry.Manager.State()
			target := RouteLogin + "?error=" + url.QueryEscape(state.Err) + "&email=" + url.QueryEscape(creds.Email)
			if returnTo != "" {
				target += "&" + returnToParam + "=" + url.QueryEscape(returnTo)
			}
			http.Redirect(w, r, target, http.StatusSeeOther)
			return
		}

		if returnTo == "" {
			returnTo = RouteDashboard
		}
		http.Redirect(w, r, returnTo, http.StatusSeeOther)
	}
}

// LogoutHandler tears the session down and returns to the login page.
func (s *Server) LogoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entry := s.registry.Resolve(w, r)
		entry.Manager.Logout(r.Context(), true)
		http.Redirect(w, r, RouteLogin, http.StatusFound)
	}
}

// UnauthorizedHandler is the landing page for role-denied navigations.
func (s *Server) UnauthorizedHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusForbidden, nil, "you do not have access to this page")
	}
}

// DashboardHandler reports the signed-in identity and catalog headline
// numbers.
func (s *Server) DashboardHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entry := entryFromContext(r.Context())
		identity := IdentityFromContext(r.Context())

		summary := map[string]any{"user": identity}
		if products, err := entry.Gateway.Products(r.Context()); err == nil {
			summary["productCount"] = len(products)
		}
		if categories, err := entry.Gateway.Categories(r.Context()); err == nil {
			summary["categoryCount"] = len(categories)
		}

		writeJSON(w, http.StatusOK, summary, "")
	}
}

// HealthHandler reports liveness.
func (s *Server) HealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, "")
	}
}

// sanitizeReturnTo only accepts local absolute paths, so a crafted login
// link cannot bounce the user to another site.
func sanitizeReturnTo(target string) string {
	if target == "" || !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") {
		return ""
	}
	return target
}

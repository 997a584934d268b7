package handlers

import (
	"html/template"
	"io/fs"
	"log"
	"net/http"

	"github.com/raptortest/qa-automation/internal/models"
	"github.com/raptortest/qa-automation/internal/services"
)

// AccountView is the data rendered by the dashboard template
type AccountView struct {
	Title string
	User  *models.User
}

// AccountHandler renders one of the signed-in pages: the dashboard, the
// profile or the settings page.
type AccountHandler struct {
	template *template.Template
	auth     services.AuthService
	title    string
}

// NewDashboardHandler creates the handler for GET /dashboard
func NewDashboardHandler(fsys fs.FS, auth services.AuthService) (*AccountHandler, error) {
	return newAccountHandler(fsys, auth, "Dashboard")
}

// NewProfileHandler creates the handler for GET /profile
func NewProfileHandler(fsys fs.FS, auth services.AuthService) (*AccountHandler, error) {
	return newAccountHandler(fsys, auth, "Profile")
}

// NewSettingsHandler creates the handler for GET /settings
func NewSettingsHandler(fsys fs.FS, auth services.AuthService) (*AccountHandler, error) {
	return newAccountHandler(fsys, auth, "Settings")
}

func newAccountHandler(fsys fs.FS, auth services.AuthService, title string) (*AccountHandler, error) {
	tmpl, err := parseTemplate(fsys, "dashboard.html")
	if err != nil {
		return nil, err
	}

	return &AccountHandler{
		template: tmpl,
		auth:     auth,
		title:    title,
	}, nil
}

// ServeHTTP renders the page for a signed-in user, or redirects to login
func (h *AccountHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	user, _, ok := currentUser(r, h.auth)
	if !ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.template.Execute(w, AccountView{Title: h.title, User: user}); err != nil {
		log.Printf("Error rendering %s page: %v", h.title, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
}

package handlers

import (
	"net/http"

	"github.com/raptortest/qa-automation/internal/services"
)

// LogoutHandler ends the login session
type LogoutHandler struct {
	auth services.AuthService
}

// NewLogoutHandler creates a new logout handler
func NewLogoutHandler(auth services.AuthService) *LogoutHandler {
	return &LogoutHandler{
		auth: auth,
	}
}

// ServeHTTP handles POST /logout
func (h *LogoutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if _, token, _ := currentUser(r, h.auth); token != "" {
		h.auth.EndSession(token)
	}
	clearSessionCookie(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

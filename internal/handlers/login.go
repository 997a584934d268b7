package handlers

import (
	"errors"
	"html/template"
	"io/fs"
	"log"
	"net/http"
	"strings"

	"github.com/raptortest/qa-automation/internal/services"
)

// LoginView is the data rendered by the login template
type LoginView struct {
	Username string
	Error    string
}

// LoginHandler serves the login form and handles its submission
type LoginHandler struct {
	template *template.Template
	auth     services.AuthService
}

// NewLoginHandler creates a new LoginHandler
func NewLoginHandler(fsys fs.FS, auth services.AuthService) (*LoginHandler, error) {
	tmpl, err := parseTemplate(fsys, "login.html")
	if err != nil {
		return nil, err
	}

	return &LoginHandler{
		template: tmpl,
		auth:     auth,
	}, nil
}

// ServeHTTP handles GET / and POST /login
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.render(w, http.StatusOK, LoginView{})
	case http.MethodPost:
		h.submit(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *LoginHandler) submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}
	username := strings.TrimSpace(r.PostForm.Get("username"))
	password := r.PostForm.Get("password")

	user, err := h.auth.Authenticate(username, password)
	if errors.Is(err, services.ErrInvalidCredentials) {
		h.render(w, http.StatusUnauthorized, LoginView{Username: username, Error: err.Error()})
		return
	}
	if err != nil {
		log.Printf("Error authenticating %s: %v", username, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	if err := startSession(w, r, h.auth, user); err != nil {
		log.Printf("Error starting session for %s: %v", username, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	log.Printf("User logged in - Username: %s", username)
}

func (h *LoginHandler) render(w http.ResponseWriter, status int, view LoginView) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := h.template.Execute(w, view); err != nil {
		log.Printf("Error rendering login page: %v", err)
	}
}

package handlers

import (
	"errors"
	"html/template"
	"io/fs"
	"log"
	"net/http"

	"github.com/raptortest/qa-automation/internal/models"
	"github.com/raptortest/qa-automation/internal/repository"
	"github.com/raptortest/qa-automation/internal/services"
)

// SignupView is the data rendered by the signup template
type SignupView struct {
	Form  models.Registration
	Error string
}

// SignupHandler serves the registration form and handles its submission
type SignupHandler struct {
	template *template.Template
	auth     services.AuthService
}

// NewSignupHandler creates a new SignupHandler
func NewSignupHandler(fsys fs.FS, auth services.AuthService) (*SignupHandler, error) {
	tmpl, err := parseTemplate(fsys, "signup.html")
	if err != nil {
		return nil, err
	}

	return &SignupHandler{
		template: tmpl,
		auth:     auth,
	}, nil
}

// ServeHTTP handles GET and POST /signup
func (h *SignupHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.render(w, http.StatusOK, SignupView{})
	case http.MethodPost:
		h.submit(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// validationErrors are shown back to the user on the form
var validationErrors = []error{
	models.ErrUsernameRequired,
	models.ErrInvalidEmail,
	models.ErrPasswordTooShort,
	models.ErrPasswordMismatch,
	repository.ErrUsernameTaken,
}

func (h *SignupHandler) submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}
	reg := models.Registration{
		Username:        r.PostForm.Get("username"),
		Email:           r.PostForm.Get("email"),
		Name:            r.PostForm.Get("name"),
		Password:        r.PostForm.Get("password"),
		ConfirmPassword: r.PostForm.Get("confirmPassword"),
	}.Normalize()

	user, err := h.auth.Register(reg)
	if err != nil {
		for _, known := range validationErrors {
			if errors.Is(err, known) {
				// Never echo passwords back into the form
				reg.Password, reg.ConfirmPassword = "", ""
				h.render(w, http.StatusUnprocessableEntity, SignupView{Form: reg, Error: known.Error()})
				return
			}
		}
		log.Printf("Error registering %s: %v", reg.Username, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	if err := startSession(w, r, h.auth, user); err != nil {
		log.Printf("Error starting session for %s: %v", user.Username, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	log.Printf("User registered - Username: %s, ID: %s", user.Username, user.ID)
}

func (h *SignupHandler) render(w http.ResponseWriter, status int, view SignupView) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := h.template.Execute(w, view); err != nil {
		log.Printf("Error rendering signup page: %v", err)
	}
}

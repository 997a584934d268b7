package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/raptortest/qa-automation/internal/models"
	"github.com/raptortest/qa-automation/internal/repository"
	"github.com/raptortest/qa-automation/internal/services"
)

// newTestAuth returns an auth service with one registered user
func newTestAuth(t *testing.T) *services.AuthServiceImpl {
	t.Helper()
	auth := services.NewAuthService(repository.NewMemoryUserRepository())
	_, err := auth.Register(models.Registration{
		Username:        "valid_user@example.com",
		Email:           "valid_user@example.com",
		Name:            "Valid User",
		Password:        "validPassword123",
		ConfirmPassword: "validPassword123",
	})
	if err != nil {
		t.Fatalf("Failed to register test user: %v", err)
	}
	return auth
}

// failingAuth is an AuthService whose every call fails
type failingAuth struct {
	services.AuthService
}

func (failingAuth) Authenticate(string, string) (*models.User, error) {
	return nil, errors.New("database unavailable")
}

func (failingAuth) Register(models.Registration) (*models.User, error) {
	return nil, errors.New("database unavailable")
}

func (failingAuth) SessionUser(string) (*models.User, error) {
	return nil, services.ErrNoSession
}

func postForm(target string, values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == SessionCookieName {
			return c
		}
	}
	return nil
}

func TestLoginHandler_ServeHTTP(t *testing.T) {
	tests := []struct {
		name             string
		request          func() *http.Request
		expectedStatus   int
		expectedLocation string
		expectCookie     bool
		checkContent     []string
		rejectContent    []string
	}{
		{
			name:           "GET renders the form",
			request:        func() *http.Request { return httptest.NewRequest(http.MethodGet, "/", nil) },
			expectedStatus: http.StatusOK,
			checkContent:   []string{`name="username"`, `name="password"`, `type="submit"`, ">Register</button>"},
			rejectContent:  []string{"error-message"},
		},
		{
			name: "valid credentials redirect to the dashboard",
			request: func() *http.Request {
				return postForm("/login", url.Values{"username": {"valid_user@example.com"}, "password": {"validPassword123"}})
			},
			expectedStatus:   http.StatusSeeOther,
			expectedLocation: "/dashboard",
			expectCookie:     true,
		},
		{
			name: "wrong password shows the error",
			request: func() *http.Request {
				return postForm("/login", url.Values{"username": {"valid_user@example.com"}, "password": {"nope"}})
			},
			expectedStatus: http.StatusUnauthorized,
			checkContent:   []string{"error-message", "Invalid username or password", `value="valid_user@example.com"`},
		},
		{
			name: "unknown user shows the same error",
			request: func() *http.Request {
				return postForm("/login", url.Values{"username": {"ghost"}, "password": {"whatever1"}})
			},
			expectedStatus: http.StatusUnauthorized,
			checkContent:   []string{"Invalid username or password"},
		},
		{
			name:           "method not allowed - PUT",
			request:        func() *http.Request { return httptest.NewRequest(http.MethodPut, "/", nil) },
			expectedStatus: http.StatusMethodNotAllowed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// GIVEN
			handler, err := NewLoginHandler(Templates, newTestAuth(t))
			if err != nil {
				t.Fatalf("Failed to create handler: %v", err)
			}
			w := httptest.NewRecorder()

			// WHEN
			handler.ServeHTTP(w, tt.request())

			// THEN
			if w.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, w.Code)
			}
			if loc := w.Header().Get("Location"); loc != tt.expectedLocation {
				t.Errorf("expected Location %q, got %q", tt.expectedLocation, loc)
			}
			if got := sessionCookie(t, w) != nil; got != tt.expectCookie {
				t.Errorf("expected session cookie %v, got %v", tt.expectCookie, got)
			}
			body := w.Body.String()
			for _, content := range tt.checkContent {
				if !strings.Contains(body, content) {
					t.Errorf("expected response to contain '%s'", content)
				}
			}
			for _, content := range tt.rejectContent {
				if strings.Contains(body, content) {
					t.Errorf("expected response not to contain '%s'", content)
				}
			}
		})
	}
}

func TestLoginHandler_AuthFailure(t *testing.T) {
	// GIVEN
	handler, err := NewLoginHandler(Templates, failingAuth{})
	if err != nil {
		t.Fatalf("Failed to create handler: %v", err)
	}
	w := httptest.NewRecorder()

	// WHEN
	handler.ServeHTTP(w, postForm("/login", url.Values{"username": {"a"}, "password": {"b"}}))

	// THEN
	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
	}
}

func TestSignupHandler_ServeHTTP(t *testing.T) {
	valid := url.Values{
		"username":        {"new_user@example.com"},
		"email":           {"new_user@example.com"},
		"name":            {"New User"},
		"password":        {"Password1234"},
		"confirmPassword": {"Password1234"},
	}
	with := func(key, value string) url.Values {
		v := url.Values{}
		for k, vs := range valid {
			v[k] = append([]string(nil), vs...)
		}
		v.Set(key, value)
		return v
	}

	tests := []struct {
		name           string
		request        func() *http.Request
		expectedStatus int
		expectCookie   bool
		checkContent   []string
	}{
		{
			name:           "GET renders the form",
			request:        func() *http.Request { return httptest.NewRequest(http.MethodGet, "/signup", nil) },
			expectedStatus: http.StatusOK,
			checkContent:   []string{`name="email"`, `name="name"`, `id=":r8:-form-item"`, `name="confirmPassword"`, ">Create Account</button>"},
		},
		{
			name:           "valid registration signs the user in",
			request:        func() *http.Request { return postForm("/signup", valid) },
			expectedStatus: http.StatusSeeOther,
			expectCookie:   true,
		},
		{
			name:           "password mismatch",
			request:        func() *http.Request { return postForm("/signup", with("confirmPassword", "Password5678")) },
			expectedStatus: http.StatusUnprocessableEntity,
			checkContent:   []string{"error-message", "Passwords do not match", `value="new_user@example.com"`},
		},
		{
			name:           "short password",
			request:        func() *http.Request { return postForm("/signup", with("password", "short")) },
			expectedStatus: http.StatusUnprocessableEntity,
			checkContent:   []string{models.ErrPasswordTooShort.Error()},
		},
		{
			name:           "username taken",
			request:        func() *http.Request { return postForm("/signup", with("username", "valid_user@example.com")) },
			expectedStatus: http.StatusUnprocessableEntity,
			checkContent:   []string{"Username already exists"},
		},
		{
			name:           "method not allowed - DELETE",
			request:        func() *http.Request { return httptest.NewRequest(http.MethodDelete, "/signup", nil) },
			expectedStatus: http.StatusMethodNotAllowed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// GIVEN
			handler, err := NewSignupHandler(Templates, newTestAuth(t))
			if err != nil {
				t.Fatalf("Failed to create handler: %v", err)
			}
			w := httptest.NewRecorder()

			// WHEN
			handler.ServeHTTP(w, tt.request())

			// THEN
			if w.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, w.Code)
			}
			if got := sessionCookie(t, w) != nil; got != tt.expectCookie {
				t.Errorf("expected session cookie %v, got %v", tt.expectCookie, got)
			}
			body := w.Body.String()
			for _, content := range tt.checkContent {
				if !strings.Contains(body, content) {
					t.Errorf("expected response to contain '%s'", content)
				}
			}
			if strings.Contains(body, "Password1234") {
				t.Error("expected password not to be echoed back")
			}
		})
	}
}

func TestSignupHandler_RegisterFailure(t *testing.T) {
	// GIVEN
	handler, err := NewSignupHandler(Templates, failingAuth{})
	if err != nil {
		t.Fatalf("Failed to create handler: %v", err)
	}
	w := httptest.NewRecorder()

	// WHEN
	handler.ServeHTTP(w, postForm("/signup", url.Values{"username": {"a"}}))

	// THEN
	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
	}
}

// loggedInCookie signs the test user in and returns the session cookie
func loggedInCookie(t *testing.T, auth services.AuthService) *http.Cookie {
	t.Helper()
	user, err := auth.Authenticate("valid_user@example.com", "validPassword123")
	if err != nil {
		t.Fatalf("Failed to authenticate: %v", err)
	}
	token, err := auth.StartSession(user.ID)
	if err != nil {
		t.Fatalf("Failed to start session: %v", err)
	}
	return &http.Cookie{Name: SessionCookieName, Value: token}
}

func TestAccountHandler_ServeHTTP(t *testing.T) {
	constructors := []struct {
		name         string
		newHandler   func(*services.AuthServiceImpl) (*AccountHandler, error)
		checkContent []string
	}{
		{
			name:       "dashboard",
			newHandler: func(a *services.AuthServiceImpl) (*AccountHandler, error) { return NewDashboardHandler(Templates, a) },
			checkContent: []string{
				`class="welcome-message"`, "Welcome back, Valid User!",
				">Profile</a>", ">Settings</a>", `id="logoutButton"`,
			},
		},
		{
			name:         "profile",
			newHandler:   func(a *services.AuthServiceImpl) (*AccountHandler, error) { return NewProfileHandler(Templates, a) },
			checkContent: []string{"<title>Profile | RaptorTest</title>", "valid_user@example.com"},
		},
		{
			name:         "settings",
			newHandler:   func(a *services.AuthServiceImpl) (*AccountHandler, error) { return NewSettingsHandler(Templates, a) },
			checkContent: []string{"<title>Settings | RaptorTest</title>", `id="logoutButton"`},
		},
	}

	for _, c := range constructors {
		t.Run(c.name+" signed in", func(t *testing.T) {
			// GIVEN
			auth := newTestAuth(t)
			handler, err := c.newHandler(auth)
			if err != nil {
				t.Fatalf("Failed to create handler: %v", err)
			}
			req := httptest.NewRequest(http.MethodGet, "/"+c.name, nil)
			req.AddCookie(loggedInCookie(t, auth))
			w := httptest.NewRecorder()

			// WHEN
			handler.ServeHTTP(w, req)

			// THEN
			if w.Code != http.StatusOK {
				t.Fatalf("expected status 200, got %d", w.Code)
			}
			body := w.Body.String()
			for _, content := range c.checkContent {
				if !strings.Contains(body, content) {
					t.Errorf("expected response to contain '%s'", content)
				}
			}
		})

		t.Run(c.name+" anonymous", func(t *testing.T) {
			// GIVEN
			handler, err := c.newHandler(newTestAuth(t))
			if err != nil {
				t.Fatalf("Failed to create handler: %v", err)
			}
			w := httptest.NewRecorder()

			// WHEN
			handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/"+c.name, nil))

			// THEN
			if w.Code != http.StatusSeeOther || w.Header().Get("Location") != "/" {
				t.Errorf("expected redirect to /, got %d %q", w.Code, w.Header().Get("Location"))
			}
		})
	}
}

func TestAccountHandler_MethodNotAllowed(t *testing.T) {
	handler, err := NewDashboardHandler(Templates, newTestAuth(t))
	if err != nil {
		t.Fatalf("Failed to create handler: %v", err)
	}
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/dashboard", nil))

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected status %d, got %d", http.StatusMethodNotAllowed, w.Code)
	}
}

func TestLogoutHandler_ServeHTTP(t *testing.T) {
	// GIVEN
	auth := newTestAuth(t)
	cookie := loggedInCookie(t, auth)
	handler := NewLogoutHandler(auth)
	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	req.AddCookie(cookie)
	w := httptest.NewRecorder()

	// WHEN
	handler.ServeHTTP(w, req)

	// THEN
	if w.Code != http.StatusSeeOther || w.Header().Get("Location") != "/" {
		t.Errorf("expected redirect to /, got %d %q", w.Code, w.Header().Get("Location"))
	}
	cleared := sessionCookie(t, w)
	if cleared == nil || cleared.MaxAge >= 0 {
		t.Errorf("expected session cookie to be cleared, got %+v", cleared)
	}
	if _, err := auth.SessionUser(cookie.Value); !errors.Is(err, services.ErrNoSession) {
		t.Errorf("expected session to be ended, got %v", err)
	}
}

func TestLogoutHandler_MethodNotAllowed(t *testing.T) {
	w := httptest.NewRecorder()

	NewLogoutHandler(newTestAuth(t)).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/logout", nil))

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected status %d, got %d", http.StatusMethodNotAllowed, w.Code)
	}
}

func TestNewHandlers_TemplateError(t *testing.T) {
	empty := fstest.MapFS{}
	broken := fstest.MapFS{
		"templates/login.html":     {Data: []byte("{{.Broken")},
		"templates/signup.html":    {Data: []byte("{{.Broken")},
		"templates/dashboard.html": {Data: []byte("{{.Broken")},
	}

	constructors := map[string]func(fsys fstest.MapFS) error{
		"login": func(fsys fstest.MapFS) error {
			_, err := NewLoginHandler(fsys, nil)
			return err
		},
		"signup": func(fsys fstest.MapFS) error {
			_, err := NewSignupHandler(fsys, nil)
			return err
		},
		"dashboard": func(fsys fstest.MapFS) error {
			_, err := NewDashboardHandler(fsys, nil)
			return err
		},
	}

	for name, newHandler := range constructors {
		t.Run(name+" missing", func(t *testing.T) {
			if err := newHandler(empty); err == nil {
				t.Error("expected error for missing template, got nil")
			}
		})
		t.Run(name+" unparsable", func(t *testing.T) {
			if err := newHandler(broken); err == nil {
				t.Error("expected error for invalid template, got nil")
			}
		})
	}
}

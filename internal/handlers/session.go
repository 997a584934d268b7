package handlers

import (
	"net/http"

	"github.com/raptortest/qa-automation/internal/models"
	"github.com/raptortest/qa-automation/internal/services"
)

// SessionCookieName is the cookie carrying the login session token
const SessionCookieName = "raptortest_session"

func setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// currentUser resolves the request's session cookie. ok is false when the
// request carries no valid session.
func currentUser(r *http.Request, auth services.AuthService) (user *models.User, token string, ok bool) {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil || cookie.Value == "" {
		return nil, "", false
	}
	user, err = auth.SessionUser(cookie.Value)
	if err != nil {
		return nil, cookie.Value, false
	}
	return user, cookie.Value, true
}

// startSession logs user in and sends the browser to the dashboard
func startSession(w http.ResponseWriter, r *http.Request, auth services.AuthService, user *models.User) error {
	token, err := auth.StartSession(user.ID)
	if err != nil {
		return err
	}
	setSessionCookie(w, token)
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
	return nil
}

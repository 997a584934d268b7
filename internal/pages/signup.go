package pages

import (
	"github.com/raptortest/qa-automation/internal/browser"
)

// Registration screen locators
var (
	signupUsername        = ByName("username")
	signupEmail           = ByName("email")
	signupFullName        = ByName("name")
	signupPassword        = ByID(":r8:-form-item")
	signupConfirmPassword = ByName("confirmPassword")
	signupCreateAccount   = ByXPath("//button[text()='Create Account']")
	signupError           = ByCSS(".error-message")
)

// SignupPage drives the registration form
type SignupPage struct {
	base
}

// NewSignupPage binds a SignupPage to s
func NewSignupPage(s *browser.Session, opts ...Option) *SignupPage {
	return &SignupPage{base: newBase(s, opts)}
}

// UserName replaces the username field content
func (p *SignupPage) UserName(username string) error {
	return p.element(signupUsername).typeText(username)
}

// Email replaces the email field content
func (p *SignupPage) Email(email string) error {
	return p.element(signupEmail).typeText(email)
}

// FullName replaces the full name field content
func (p *SignupPage) FullName(name string) error {
	return p.element(signupFullName).typeText(name)
}

// PasswordField replaces the password field content
func (p *SignupPage) PasswordField(password string) error {
	return p.element(signupPassword).typeText(password)
}

// ConfirmPassword replaces the password confirmation field content
func (p *SignupPage) ConfirmPassword(password string) error {
	return p.element(signupConfirmPassword).typeText(password)
}

// ClickSignup submits the form and waits for the response page to load
func (p *SignupPage) ClickSignup() error {
	if err := p.element(signupCreateAccount).click(); err != nil {
		return err
	}
	return p.waitForLoad()
}

// GetErrorMessage returns the validation error text, or NotFoundMessage if
// none is shown within the page timeout.
func (p *SignupPage) GetErrorMessage() string {
	text, err := p.element(signupError).text()
	if err != nil {
		return NotFoundMessage
	}
	return text
}

// IsSignupPageDisplayed reports whether the Create Account button became visible
func (p *SignupPage) IsSignupPageDisplayed() bool {
	return p.element(signupCreateAccount).displayed()
}

// Signup fills every field, confirming the password with the same value.
// It does not submit.
func (p *SignupPage) Signup(username, email, fullName, password string) error {
	steps := []func() error{
		func() error { return p.UserName(username) },
		func() error { return p.Email(email) },
		func() error { return p.FullName(fullName) },
		func() error { return p.PasswordField(password) },
		func() error { return p.ConfirmPassword(password) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}

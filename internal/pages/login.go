package pages

import (
	"github.com/raptortest/qa-automation/internal/browser"
)

// Login screen locators
var (
	loginUsername      = ByName("username")
	loginPassword      = ByXPath("//input[@name='password']")
	loginButton        = ByCSS("button[type='submit']")
	loginError         = ByCSS(".error-message")
	loginCreateAccount = ByXPath("//button[text()='Register']")
)

// LoginPage drives the login form
type LoginPage struct {
	base
}

// NewLoginPage binds a LoginPage to s
func NewLoginPage(s *browser.Session, opts ...Option) *LoginPage {
	return &LoginPage{base: newBase(s, opts)}
}

// EnterUsername replaces the username field content
func (p *LoginPage) EnterUsername(username string) error {
	return p.element(loginUsername).typeText(username)
}

// EnterPassword replaces the password field content
func (p *LoginPage) EnterPassword(password string) error {
	return p.element(loginPassword).typeText(password)
}

// Username returns the current username field content
func (p *LoginPage) Username() (string, error) {
	return p.element(loginUsername).value()
}

// Password returns the current password field content
func (p *LoginPage) Password() (string, error) {
	return p.element(loginPassword).value()
}

// ClickLogin submits the form
func (p *LoginPage) ClickLogin() error {
	return p.element(loginButton).click()
}

// ClickCreateAccount switches to the registration screen
func (p *LoginPage) ClickCreateAccount() error {
	if err := p.element(loginCreateAccount).click(); err != nil {
		return err
	}
	return p.waitForLoad()
}

// GetErrorMessage returns the login error text, or NotFoundMessage if no
// error is shown within the page timeout.
func (p *LoginPage) GetErrorMessage() string {
	text, err := p.element(loginError).text()
	if err != nil {
		return NotFoundMessage
	}
	return text
}

// IsLoginPageDisplayed reports whether the login button became visible
func (p *LoginPage) IsLoginPageDisplayed() bool {
	return p.element(loginButton).displayed()
}

// Login fills both fields, submits and waits for the resulting page to load
func (p *LoginPage) Login(username, password string) error {
	if err := p.EnterUsername(username); err != nil {
		return err
	}
	if err := p.EnterPassword(password); err != nil {
		return err
	}
	if err := p.ClickLogin(); err != nil {
		return err
	}
	return p.waitForLoad()
}

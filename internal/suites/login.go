package suites

import (
	"github.com/raptortest/qa-automation/internal/browser"
	"github.com/raptortest/qa-automation/internal/pages"
	"github.com/raptortest/qa-automation/internal/scenario"
)

// Login covers the login form
func Login(opts ...pages.Option) []scenario.Scenario {
	return []scenario.Scenario{
		{
			Name:        "login-successful",
			Description: "Verify successful login with valid credentials",
			Priority:    1,
			Run: func(s *browser.Session) error {
				if err := pages.NewLoginPage(s, opts...).Login(ValidUsername, ValidPassword); err != nil {
					return err
				}
				return scenario.Check(pages.NewDashboardPage(s, opts...).IsDashboardDisplayed(),
					"dashboard page not displayed after login")
			},
		},
		{
			Name:        "login-invalid",
			Description: "Verify login fails with invalid credentials",
			Priority:    2,
			Run: func(s *browser.Session) error {
				login := pages.NewLoginPage(s, opts...)
				if err := login.Login("invalid_user@example.com", "wrongPassword"); err != nil {
					return err
				}
				if err := scenario.CheckContains(login.GetErrorMessage(), "Invalid", "login error message"); err != nil {
					return err
				}
				return scenario.Check(login.IsLoginPageDisplayed(), "login form not shown after a failed login")
			},
		},
		{
			Name:        "navigate-to-signup",
			Description: "Verify navigation to signup page",
			Priority:    3,
			Run: func(s *browser.Session) error {
				if err := pages.NewLoginPage(s, opts...).ClickCreateAccount(); err != nil {
					return err
				}
				if err := waitForPath(s, "signup"); err != nil {
					return &scenario.AssertionError{Message: "did not navigate to signup page: " + err.Error()}
				}
				return scenario.Check(pages.NewSignupPage(s, opts...).IsSignupPageDisplayed(),
					"signup form not displayed")
			},
		},
	}
}

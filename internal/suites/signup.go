package suites

import (
	"github.com/raptortest/qa-automation/internal/browser"
	"github.com/raptortest/qa-automation/internal/pages"
	"github.com/raptortest/qa-automation/internal/scenario"
)

// Signup covers account registration
func Signup(opts ...pages.Option) []scenario.Scenario {
	return []scenario.Scenario{
		{
			Name:        "signup-successful",
			Description: "Verify successful user registration",
			Priority:    1,
			Run: func(s *browser.Session) error {
				if err := pages.NewLoginPage(s, opts...).ClickCreateAccount(); err != nil {
					return err
				}

				username := uniqueUsername("john")
				signup := pages.NewSignupPage(s, opts...)
				if err := signup.Signup(username, username+"@example.com", "John Doe", "Password1234"); err != nil {
					return err
				}
				if err := signup.ClickSignup(); err != nil {
					return err
				}

				dashboard := pages.NewDashboardPage(s, opts...)
				welcome, err := dashboard.GetWelcomeMessage()
				if err != nil {
					return &scenario.AssertionError{Message: "dashboard not displayed after registration: " + signup.GetErrorMessage()}
				}
				return scenario.CheckContains(welcome, "John Doe", "welcome message")
			},
		},
		{
			Name:        "signup-password-mismatch",
			Description: "Verify password mismatch error",
			Priority:    2,
			Run: func(s *browser.Session) error {
				if err := pages.NewLoginPage(s, opts...).ClickCreateAccount(); err != nil {
					return err
				}

				username := uniqueUsername("john")
				signup := pages.NewSignupPage(s, opts...)
				if err := signup.Signup(username, username+"@example.com", "John Doe", "Password1234"); err != nil {
					return err
				}
				if err := signup.ConfirmPassword("Password5678"); err != nil {
					return err
				}
				if err := signup.ClickSignup(); err != nil {
					return err
				}

				if err := scenario.CheckContains(signup.GetErrorMessage(), "Passwords do not match", "signup error message"); err != nil {
					return err
				}
				return scenario.CheckContains(s.URL(), "signup", "current URL")
			},
		},
	}
}

package suites

import (
	"github.com/raptortest/qa-automation/internal/browser"
	"github.com/raptortest/qa-automation/internal/pages"
	"github.com/raptortest/qa-automation/internal/scenario"
)

// Dashboard covers the screen shown after login. The Profile and Settings
// links sit in the header of every signed-in page.
func Dashboard(opts ...pages.Option) []scenario.Scenario {
	loggedIn := func(s *browser.Session) (*pages.LoginPage, *pages.DashboardPage, error) {
		login := pages.NewLoginPage(s, opts...)
		if err := login.Login(ValidUsername, ValidPassword); err != nil {
			return nil, nil, err
		}
		return login, pages.NewDashboardPage(s, opts...), nil
	}

	return []scenario.Scenario{
		{
			Name:        "dashboard-elements",
			Description: "Verify dashboard elements after login",
			Priority:    1,
			Run: func(s *browser.Session) error {
				_, dashboard, err := loggedIn(s)
				if err != nil {
					return err
				}
				if err := scenario.Check(dashboard.IsDashboardDisplayed(), "dashboard not displayed"); err != nil {
					return err
				}
				welcome, err := dashboard.GetWelcomeMessage()
				if err != nil {
					return err
				}
				return scenario.CheckContains(welcome, "Welcome", "welcome message")
			},
		},
		{
			Name:        "dashboard-logout",
			Description: "Verify successful logout",
			Priority:    2,
			Run: func(s *browser.Session) error {
				login, dashboard, err := loggedIn(s)
				if err != nil {
					return err
				}
				if err := dashboard.ClickLogout(); err != nil {
					return err
				}
				return scenario.Check(login.IsLoginPageDisplayed(), "did not return to login page after logout")
			},
		},
		{
			Name:        "dashboard-navigation",
			Description: "Verify the Profile and Settings links",
			Priority:    3,
			Run: func(s *browser.Session) error {
				_, dashboard, err := loggedIn(s)
				if err != nil {
					return err
				}
				if err := dashboard.ClickProfile(); err != nil {
					return err
				}
				if err := waitForPath(s, "/profile"); err != nil {
					return &scenario.AssertionError{Message: err.Error()}
				}
				if err := dashboard.ClickSettings(); err != nil {
					return err
				}
				if err := waitForPath(s, "/settings"); err != nil {
					return &scenario.AssertionError{Message: err.Error()}
				}
				return nil
			},
		},
	}
}

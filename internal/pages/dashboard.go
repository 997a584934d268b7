package pages

import (
	"github.com/raptortest/qa-automation/internal/browser"
)

// Dashboard locators
var (
	dashboardWelcome  = ByCSS(".welcome-message")
	dashboardProfile  = ByLinkText("Profile")
	dashboardSettings = ByLinkText("Settings")
	dashboardLogout   = ByID("logoutButton")
)

// DashboardPage drives the landing page shown after login
type DashboardPage struct {
	base
}

// NewDashboardPage binds a DashboardPage to s
func NewDashboardPage(s *browser.Session, opts ...Option) *DashboardPage {
	return &DashboardPage{base: newBase(s, opts)}
}

// GetWelcomeMessage returns the greeting. The greeting is always rendered on
// the dashboard, so its absence is an error.
func (p *DashboardPage) GetWelcomeMessage() (string, error) {
	return p.element(dashboardWelcome).text()
}

// ClickProfile follows the Profile link
func (p *DashboardPage) ClickProfile() error {
	if err := p.element(dashboardProfile).click(); err != nil {
		return err
	}
	return p.waitForLoad()
}

// ClickSettings follows the Settings link
func (p *DashboardPage) ClickSettings() error {
	if err := p.element(dashboardSettings).click(); err != nil {
		return err
	}
	return p.waitForLoad()
}

// ClickLogout ends the user session
func (p *DashboardPage) ClickLogout() error {
	if err := p.element(dashboardLogout).click(); err != nil {
		return err
	}
	return p.waitForLoad()
}

// IsDashboardDisplayed reports whether the greeting became visible
func (p *DashboardPage) IsDashboardDisplayed() bool {
	return p.element(dashboardWelcome).displayed()
}

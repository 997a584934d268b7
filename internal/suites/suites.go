// Package suites defines the login, signup and dashboard regression scenarios.
package suites

import (
	"strings"

	"github.com/google/uuid"

	"github.com/raptortest/qa-automation/internal/browser"
	"github.com/raptortest/qa-automation/internal/pages"
	"github.com/raptortest/qa-automation/internal/poll"
	"github.com/raptortest/qa-automation/internal/scenario"
)

// Credentials of the account the fixture application seeds
const (
	ValidUsername = "valid_user@example.com"
	ValidPassword = "validPassword123"
	ValidName     = "Valid User"
)

// AppTitle is the product name every screen carries in its title
const AppTitle = "RaptorTest"

// All returns every scenario ordered by priority. opts are applied to every
// page object the scenarios create.
func All(opts ...pages.Option) []scenario.Scenario {
	var all []scenario.Scenario
	all = append(all, Base(opts...)...)
	all = append(all, Login(opts...)...)
	all = append(all, Signup(opts...)...)
	all = append(all, Dashboard(opts...)...)
	return scenario.Sorted(all)
}

// Base holds the smoke check run before anything else
func Base(opts ...pages.Option) []scenario.Scenario {
	return []scenario.Scenario{
		{
			Name:        "verify-title",
			Description: "Verify the start page carries the product title",
			Priority:    0,
			Run: func(s *browser.Session) error {
				title, err := s.Title()
				if err != nil {
					return err
				}
				return scenario.CheckContains(title, AppTitle, "page title")
			},
		},
	}
}

// uniqueUsername keeps registrations from colliding across runs and parallel scenarios
func uniqueUsername(prefix string) string {
	return prefix + "-" + strings.SplitN(uuid.New().String(), "-", 2)[0]
}

func waitForPath(s *browser.Session, substr string) error {
	return s.WaitForURL(substr, poll.DefaultTimeout)
}

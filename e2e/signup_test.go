package e2e

import "testing"

// TestSignup covers account registration
// Feature: Signup
//
//	As a new user
//	I want to create an account
//	So that I can use RaptorTest
func TestSignup(t *testing.T) {
	t.Run("successful", func(t *testing.T) {
		// Scenario: Register a new account
		//   Given I am on the signup form
		//   When I fill in a unique username, email, name and password
		//   And I click "Create Account"
		//   Then I should see the dashboard
		runScenario(t, "signup-successful")
	})

	t.Run("password mismatch", func(t *testing.T) {
		// Scenario: Confirmation differs
		//   Given I am on the signup form
		//   When the password confirmation does not match
		//   Then I should see "Passwords do not match"
		//   And I should stay on the signup form
		runScenario(t, "signup-password-mismatch")
	})
}

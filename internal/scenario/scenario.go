// Package scenario runs UI scenarios, each in its own browser session.
package scenario

import (
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/raptortest/qa-automation/internal/browser"
)

// Scenario is one independently executed test case
type Scenario struct {
	Name        string
	Description string
	// Priority orders scenarios within a suite; lower runs first
	Priority int
	Run      func(s *browser.Session) error
}

// AssertionError reports an expected condition that did not hold
type AssertionError struct {
	Message string
}

func (e *AssertionError) Error() string { return "assertion failed: " + e.Message }

// Check returns an AssertionError built from format when cond is false
func Check(cond bool, format string, args ...any) error {
	if cond {
		return nil
	}
	return &AssertionError{Message: fmt.Sprintf(format, args...)}
}

// CheckContains asserts that s contains substr
func CheckContains(s, substr, what string) error {
	return Check(strings.Contains(s, substr), "%s %q does not contain %q", what, s, substr)
}

// Sorted returns scenarios ordered by priority, then name
func Sorted(scenarios []Scenario) []Scenario {
	out := append([]Scenario(nil), scenarios...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Priority != out[j].Priority {
			return out[i].Priority < out[j].Priority
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// Filter keeps scenarios whose name matches any of the glob patterns. No
// patterns keeps everything.
func Filter(scenarios []Scenario, patterns ...string) ([]Scenario, error) {
	if len(patterns) == 0 {
		return scenarios, nil
	}
	var out []Scenario
	for _, sc := range scenarios {
		for _, pattern := range patterns {
			ok, err := path.Match(pattern, sc.Name)
			if err != nil {
				return nil, fmt.Errorf("invalid scenario pattern %q: %w", pattern, err)
			}
			if ok {
				out = append(out, sc)
				break
			}
		}
	}
	return out, nil
}

package browser

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/playwright-community/playwright-go"

	"github.com/raptortest/qa-automation/internal/poll"
)

// State is the lifecycle state of a Session
type State int

// Session states
const (
	StateClosed State = iota
	StateOpen
)

func (s State) String() string {
	switch s {
	case StateOpen:
		return "open"
	default:
		return "closed"
	}
}

// Session is one browser instance and its navigation state. It is owned by
// exactly one scenario at a time.
type Session struct {
	id           string
	implicitWait time.Duration

	mu      sync.Mutex
	state   State
	browser playwright.Browser
	context playwright.BrowserContext
	page    playwright.Page
}

// NewSession binds a Session to an already open page. Closing the session
// closes the page only.
func NewSession(page playwright.Page, implicitWait time.Duration) *Session {
	return newSession(nil, nil, page, implicitWait)
}

func newSession(b playwright.Browser, bc playwright.BrowserContext, page playwright.Page, implicitWait time.Duration) *Session {
	return &Session{
		id:           uuid.New().String(),
		implicitWait: implicitWait,
		state:        StateOpen,
		browser:      b,
		context:      bc,
		page:         page,
	}
}

// ID identifies the session in logs
func (s *Session) ID() string { return s.id }

// Page returns the page every page object drives
func (s *Session) Page() playwright.Page { return s.page }

// ImplicitWait is the default lookup timeout configured for this session
func (s *Session) ImplicitWait() time.Duration { return s.implicitWait }

// State reports whether the session is still open
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// URL returns the address of the current document
func (s *Session) URL() string { return s.page.URL() }

// Title returns the title of the current document
func (s *Session) Title() (string, error) { return s.page.Title() }

// WaitForURL blocks until the current URL contains substr or timeout elapses
func (s *Session) WaitForURL(substr string, timeout time.Duration) error {
	err := poll.Until(timeout, poll.DefaultInterval, func() (bool, error) {
		return strings.Contains(s.page.URL(), substr), nil
	})
	if err != nil {
		return fmt.Errorf("waiting for URL containing %q (at %s): %w", substr, s.page.URL(), err)
	}
	return nil
}

// close releases every browser resource held by the session. It reports
// whether this call performed the transition and any errors from the driver.
func (s *Session) close() (bool, []error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateClosed {
		return false, nil
	}
	s.state = StateClosed

	var errs []error
	switch {
	case s.context != nil:
		// Closing the context closes its pages
		if err := s.context.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close context: %w", err))
		}
	case s.page != nil:
		if err := s.page.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close page: %w", err))
		}
	}
	if s.browser != nil {
		if err := s.browser.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close browser: %w", err))
		}
	}
	return true, errs
}

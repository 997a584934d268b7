// Package pages holds one page object per screen of the application under
// test. Page objects are bound to a browser.Session and keep no state of
// their own beyond their locators.
//
// Every interaction polls, up to the page timeout, for its element to reach
// the state it needs: visible for typing and reading, visible and enabled
// for clicking. What happens on timeout depends on the kind of operation:
//
//   - actions return a *LookupError
//   - required text queries return a *LookupError
//   - optional text queries (error messages) return NotFoundMessage
//   - display probes return false
package pages

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/playwright-community/playwright-go"

	"github.com/raptortest/qa-automation/internal/browser"
	"github.com/raptortest/qa-automation/internal/poll"
)

// NotFoundMessage is returned by optional text queries whose element never appeared
const NotFoundMessage = "Error message not found."

// ErrNotFound is matched by every LookupError
var ErrNotFound = errors.New("element not found")

// LookupError reports an element that did not reach the required state in time
type LookupError struct {
	Selector string
	State    string
	Err      error
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("element %s not %s: %v", e.Selector, e.State, e.Err)
}

func (e *LookupError) Unwrap() error { return e.Err }

// Is reports whether target is ErrNotFound
func (e *LookupError) Is(target error) bool { return target == ErrNotFound }

// Locator strategies mapped onto Playwright selector engines.

// ByCSS addresses an element by CSS selector
func ByCSS(selector string) string { return selector }

// ByName addresses a form control by its name attribute
func ByName(name string) string { return fmt.Sprintf("[name=%q]", name) }

// ByXPath addresses an element by XPath expression
func ByXPath(expr string) string { return "xpath=" + expr }

// ByID addresses an element by id. Playwright's id engine needs no CSS
// escaping, which matters for generated ids such as ":r8:-form-item".
func ByID(id string) string { return "id=" + id }

// ByLinkText addresses an anchor whose normalised text equals text
func ByLinkText(text string) string {
	return fmt.Sprintf("xpath=//a[normalize-space(.)=%s]", xpathLiteral(text))
}

func xpathLiteral(s string) string {
	if !strings.Contains(s, "'") {
		return "'" + s + "'"
	}
	if !strings.Contains(s, `"`) {
		return `"` + s + `"`
	}
	parts := strings.Split(s, "'")
	return "concat('" + strings.Join(parts, `', "'", '`) + "')"
}

// Option customises a page object
type Option func(*base)

// WithTimeout overrides how long interactions wait for their element
func WithTimeout(d time.Duration) Option {
	return func(b *base) {
		if d > 0 {
			b.timeout = d
		}
	}
}

type base struct {
	session *browser.Session
	timeout time.Duration
}

func newBase(s *browser.Session, opts []Option) base {
	b := base{session: s, timeout: poll.DefaultTimeout}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

func (b base) element(selector string) element {
	return element{session: b.session, selector: selector, timeout: b.timeout}
}

// waitForLoad blocks until the document reached after a submission has loaded
func (b base) waitForLoad() error {
	err := b.session.Page().WaitForLoadState(playwright.PageWaitForLoadStateOptions{
		State:   playwright.LoadStateDomcontentloaded,
		Timeout: playwright.Float(float64(b.timeout.Milliseconds())),
	})
	if err != nil {
		return fmt.Errorf("waiting for page load: %w", err)
	}
	return nil
}

type element struct {
	session  *browser.Session
	selector string
	timeout  time.Duration
}

func (e element) locator() playwright.Locator {
	return e.session.Page().Locator(e.selector).First()
}

// waitFor polls cond until it holds. Probe errors count as "not yet"; the
// element may not be attached while the page is still rendering.
func (e element) waitFor(state string, cond func(playwright.Locator) (bool, error)) (playwright.Locator, error) {
	loc := e.locator()
	err := poll.Until(e.timeout, poll.DefaultInterval, func() (bool, error) {
		ok, err := cond(loc)
		return err == nil && ok, nil
	})
	if err != nil {
		return nil, &LookupError{Selector: e.selector, State: state, Err: err}
	}
	return loc, nil
}

func (e element) waitVisible() (playwright.Locator, error) {
	return e.waitFor("visible", func(l playwright.Locator) (bool, error) {
		return l.IsVisible()
	})
}

func (e element) waitClickable() (playwright.Locator, error) {
	return e.waitFor("clickable", func(l playwright.Locator) (bool, error) {
		visible, err := l.IsVisible()
		if err != nil || !visible {
			return false, err
		}
		return l.IsEnabled()
	})
}

func (e element) clear() error {
	loc, err := e.waitVisible()
	if err != nil {
		return err
	}
	if err := loc.Clear(); err != nil {
		return fmt.Errorf("clear %s: %w", e.selector, err)
	}
	return nil
}

// typeText replaces the field content with text
func (e element) typeText(text string) error {
	if err := e.clear(); err != nil {
		return err
	}
	if err := e.locator().Fill(text); err != nil {
		return fmt.Errorf("fill %s: %w", e.selector, err)
	}
	return nil
}

func (e element) click() error {
	loc, err := e.waitClickable()
	if err != nil {
		return err
	}
	if err := loc.Click(); err != nil {
		return fmt.Errorf("click %s: %w", e.selector, err)
	}
	return nil
}

func (e element) text() (string, error) {
	loc, err := e.waitVisible()
	if err != nil {
		return "", err
	}
	text, err := loc.InnerText()
	if err != nil {
		return "", fmt.Errorf("read text of %s: %w", e.selector, err)
	}
	return strings.TrimSpace(text), nil
}

func (e element) value() (string, error) {
	loc, err := e.waitVisible()
	if err != nil {
		return "", err
	}
	v, err := loc.InputValue()
	if err != nil {
		return "", fmt.Errorf("read value of %s: %w", e.selector, err)
	}
	return v, nil
}

func (e element) displayed() bool {
	_, err := e.waitVisible()
	return err == nil
}

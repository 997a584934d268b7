// Package browsertest provides in-memory stand-ins for Playwright pages and
// locators so page objects and scenarios can be exercised without a browser.
//
// Only the methods the suite calls are implemented; anything else panics
// through the nil embedded interface.
package browsertest

import (
	"fmt"
	"sync"

	"github.com/playwright-community/playwright-go"
)

// Page is a fake playwright.Page backed by a map of selectors to elements
type Page struct {
	playwright.Page

	mu       sync.Mutex
	url      string
	title    string
	elements map[string]*Element
	events   []string
	closes   int
	gotoErr  error
}

// NewPage returns a fake page currently showing url
func NewPage(url string) *Page {
	return &Page{
		url:      url,
		elements: make(map[string]*Element),
	}
}

// Element returns the element registered for selector, creating a hidden one
// if none exists yet.
func (p *Page) Element(selector string) *Element {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.elementLocked(selector)
}

func (p *Page) elementLocked(selector string) *Element {
	el, ok := p.elements[selector]
	if !ok {
		el = &Element{page: p, selector: selector, Enabled: true}
		p.elements[selector] = el
	}
	return el
}

// Events lists every fill and click in the order they happened
func (p *Page) Events() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.events...)
}

// Closes counts calls to Close
func (p *Page) Closes() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.closes
}

// SetURL moves the page to another address
func (p *Page) SetURL(url string) {
	p.mu.Lock()
	p.url = url
	p.mu.Unlock()
}

// SetTitle sets the document title
func (p *Page) SetTitle(title string) {
	p.mu.Lock()
	p.title = title
	p.mu.Unlock()
}

// FailGoto makes the next navigations fail with err
func (p *Page) FailGoto(err error) {
	p.mu.Lock()
	p.gotoErr = err
	p.mu.Unlock()
}

func (p *Page) record(event string) {
	p.mu.Lock()
	p.events = append(p.events, event)
	p.mu.Unlock()
}

func (p *Page) Locator(selector string, options ...playwright.PageLocatorOptions) playwright.Locator {
	return p.Element(selector)
}

func (p *Page) URL() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.url
}

func (p *Page) Title() (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.title, nil
}

func (p *Page) Goto(url string, options ...playwright.PageGotoOptions) (playwright.Response, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.gotoErr != nil {
		return nil, p.gotoErr
	}
	p.url = url
	return nil, nil
}

func (p *Page) WaitForLoadState(options ...playwright.PageWaitForLoadStateOptions) error {
	return nil
}

func (p *Page) Close(options ...playwright.PageCloseOptions) error {
	p.mu.Lock()
	p.closes++
	p.mu.Unlock()
	return nil
}

// locator is embedded through an alias so the promoted Locator method is not
// shadowed by a field of the same name
type locator = playwright.Locator

var _ playwright.Locator = (*Element)(nil)

// Element is a fake playwright.Locator
type Element struct {
	locator

	page     *Page
	selector string

	mu sync.Mutex
	// Visible makes the element visible to every probe
	Visible bool
	// VisibleAfter makes the element become visible after that many probes
	VisibleAfter int
	// Enabled controls IsEnabled; elements start enabled
	Enabled bool
	// Text is returned by InnerText
	Text string
	// OnClick runs after every click
	OnClick func()

	value  string
	probes int
	clicks int
}

// Show makes the element visible and sets its text
func (e *Element) Show(text string) *Element {
	e.mu.Lock()
	e.Visible = true
	e.Text = text
	e.mu.Unlock()
	return e
}

// Hide makes the element invisible
func (e *Element) Hide() {
	e.mu.Lock()
	e.Visible = false
	e.VisibleAfter = 0
	e.mu.Unlock()
}

// Value returns the current field value
func (e *Element) Value() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.value
}

// Clicks counts clicks on the element
func (e *Element) Clicks() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.clicks
}

func (e *Element) visible() bool {
	e.probes++
	if !e.Visible && e.VisibleAfter > 0 && e.probes >= e.VisibleAfter {
		e.Visible = true
	}
	return e.Visible
}

func (e *Element) First() playwright.Locator { return e }

func (e *Element) IsVisible(options ...playwright.LocatorIsVisibleOptions) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.visible(), nil
}

func (e *Element) IsEnabled(options ...playwright.LocatorIsEnabledOptions) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.Enabled, nil
}

func (e *Element) Clear(options ...playwright.LocatorClearOptions) error {
	e.mu.Lock()
	if !e.Visible {
		e.mu.Unlock()
		return fmt.Errorf("clear %s: element not visible", e.selector)
	}
	e.value = ""
	e.mu.Unlock()
	e.page.record("clear " + e.selector)
	return nil
}

func (e *Element) Fill(value string, options ...playwright.LocatorFillOptions) error {
	e.mu.Lock()
	if !e.Visible {
		e.mu.Unlock()
		return fmt.Errorf("fill %s: element not visible", e.selector)
	}
	e.value = value
	e.mu.Unlock()
	e.page.record(fmt.Sprintf("fill %s %s", e.selector, value))
	return nil
}

func (e *Element) InputValue(options ...playwright.LocatorInputValueOptions) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.value, nil
}

func (e *Element) InnerText(options ...playwright.LocatorInnerTextOptions) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.Text, nil
}

func (e *Element) Click(options ...playwright.LocatorClickOptions) error {
	e.mu.Lock()
	if !e.Visible {
		e.mu.Unlock()
		return fmt.Errorf("click %s: element not visible", e.selector)
	}
	e.clicks++
	onClick := e.OnClick
	e.mu.Unlock()

	e.page.record("click " + e.selector)
	if onClick != nil {
		onClick()
	}
	return nil
}

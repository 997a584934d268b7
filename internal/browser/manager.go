// Package browser opens and closes the browser sessions scenarios run in.
package browser

import (
	"fmt"
	"io"

	"github.com/playwright-community/playwright-go"
	"github.com/sirupsen/logrus"

	"github.com/raptortest/qa-automation/internal/config"
)

// Headless sessions cannot be maximised, so they get a fixed desktop viewport
var headlessViewport = playwright.Size{Width: 1920, Height: 1080}

// Launcher starts a browser process. playwright.BrowserType satisfies it.
type Launcher interface {
	Launch(options ...playwright.BrowserTypeLaunchOptions) (playwright.Browser, error)
}

// StartupError is returned when a session could not be opened
type StartupError struct {
	Stage string
	URL   string
	Err   error
}

func (e *StartupError) Error() string {
	if e.URL != "" {
		return fmt.Sprintf("browser startup failed at %s (%s): %v", e.Stage, e.URL, e.Err)
	}
	return fmt.Sprintf("browser startup failed at %s: %v", e.Stage, e.Err)
}

func (e *StartupError) Unwrap() error { return e.Err }

// Manager creates one session per scenario from the suite configuration
type Manager struct {
	cfg      *config.Config
	launcher Launcher
	log      logrus.FieldLogger
	stop     func() error
}

// NewManager returns a Manager that launches browsers through launcher
func NewManager(cfg *config.Config, launcher Launcher, log logrus.FieldLogger) *Manager {
	if log == nil {
		null := logrus.New()
		null.SetOutput(io.Discard)
		log = null
	}
	return &Manager{
		cfg:      cfg,
		launcher: launcher,
		log:      log,
	}
}

// NewChromiumManager starts the Playwright driver and returns a Manager that
// launches Chromium through it. Call Shutdown when done.
func NewChromiumManager(cfg *config.Config, log logrus.FieldLogger) (*Manager, error) {
	pw, err := playwright.Run()
	if err != nil {
		return nil, &StartupError{Stage: "driver", Err: err}
	}
	m := NewManager(cfg, pw.Chromium, log)
	m.stop = pw.Stop
	return m, nil
}

// Shutdown stops the Playwright driver started by NewChromiumManager
func (m *Manager) Shutdown() error {
	if m.stop == nil {
		return nil
	}
	stop := m.stop
	m.stop = nil
	if err := stop(); err != nil {
		return fmt.Errorf("failed to stop playwright driver: %w", err)
	}
	return nil
}

// Open launches a browser, applies the configured implicit wait, maximises
// the window and navigates to the application URL. No session is returned
// on failure, and any partially started browser is released.
func (m *Manager) Open(headless bool) (*Session, error) {
	launchOpts := playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(headless),
	}
	if path := m.cfg.ChromeDriverPath(); path != "" {
		launchOpts.ExecutablePath = playwright.String(path)
	}

	contextOpts := playwright.BrowserNewContextOptions{}
	if headless {
		viewport := headlessViewport
		contextOpts.Viewport = &viewport
	} else {
		launchOpts.Args = []string{"--start-maximized"}
		contextOpts.NoViewport = playwright.Bool(true)
	}

	b, err := m.launcher.Launch(launchOpts)
	if err != nil {
		return nil, &StartupError{Stage: "launch", Err: err}
	}

	bc, err := b.NewContext(contextOpts)
	if err != nil {
		m.release(newSession(b, nil, nil, 0))
		return nil, &StartupError{Stage: "context", Err: err}
	}
	if wait := m.cfg.ImplicitWait(); wait > 0 {
		bc.SetDefaultTimeout(float64(wait.Milliseconds()))
	}

	page, err := bc.NewPage()
	if err != nil {
		m.release(newSession(b, bc, nil, 0))
		return nil, &StartupError{Stage: "page", Err: err}
	}

	session := newSession(b, bc, page, m.cfg.ImplicitWait())
	url := m.cfg.AppURL()
	if _, err := page.Goto(url); err != nil {
		m.release(session)
		return nil, &StartupError{Stage: "navigate", URL: url, Err: err}
	}

	m.log.WithFields(logrus.Fields{
		"session":  session.ID(),
		"headless": headless,
		"url":      url,
	}).Debug("browser session opened")
	return session, nil
}

// Close releases the browser behind s. It is safe to call more than once and
// on a nil or already invalid session; driver errors are logged, not returned.
func (m *Manager) Close(s *Session) {
	if s == nil {
		return
	}
	closed, errs := s.close()
	if !closed {
		return
	}
	entry := m.log.WithField("session", s.ID())
	for _, err := range errs {
		entry.WithError(err).Debug("ignoring error while closing session")
	}
	entry.Debug("browser session closed")
}

func (m *Manager) release(s *Session) {
	if _, errs := s.close(); len(errs) > 0 {
		m.log.WithError(errs[0]).Debug("ignoring error while releasing failed session")
	}
}

package config

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/magiconair/properties"
)

// DefaultPath is where the suite looks for its settings when no override is given
const DefaultPath = "config/config.properties"

// Property keys
const (
	KeyAppURL            = "app.url"
	KeyChromeDriverPath  = "chrome.driver.path"
	KeyFirefoxDriverPath = "firefox.driver.path"
	KeyImplicitWait      = "implicit.wait"
)

// ErrInvalid is matched by every configuration error
var ErrInvalid = errors.New("invalid configuration")

// Error describes why the configuration could not be loaded
type Error struct {
	Path string
	Key  string
	Err  error
}

func (e *Error) Error() string {
	switch {
	case e.Key != "":
		return fmt.Sprintf("config %s: key %q: %v", e.Path, e.Key, e.Err)
	default:
		return fmt.Sprintf("config %s: %v", e.Path, e.Err)
	}
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is ErrInvalid
func (e *Error) Is(target error) bool { return target == ErrInvalid }

// Config holds the suite settings. It is read-only once loaded.
type Config struct {
	appURL            string
	chromeDriverPath  string
	firefoxDriverPath string
	implicitWait      time.Duration
}

// maxImplicitWait is the largest number of seconds a time.Duration can hold
const maxImplicitWait = math.MaxInt64 / int64(time.Second)

// loader reads values literally. ${...} is not expanded.
var loader = properties.Loader{Encoding: properties.UTF8, DisableExpansion: true}

// Load reads the properties file at path
func Load(path string) (*Config, error) {
	p, err := loader.LoadFile(path)
	if err != nil {
		return nil, &Error{Path: path, Err: err}
	}
	return fromProperties(path, p)
}

// Parse reads settings from properties-formatted text
func Parse(content string) (*Config, error) {
	p, err := loader.LoadBytes([]byte(content))
	if err != nil {
		return nil, &Error{Path: "<string>", Err: err}
	}
	return fromProperties("<string>", p)
}

func fromProperties(path string, p *properties.Properties) (*Config, error) {
	appURL := strings.TrimSpace(p.GetString(KeyAppURL, ""))
	if appURL == "" {
		return nil, &Error{Path: path, Key: KeyAppURL, Err: errors.New("is required")}
	}

	raw, ok := p.Get(KeyImplicitWait)
	if !ok {
		return nil, &Error{Path: path, Key: KeyImplicitWait, Err: errors.New("is required")}
	}
	seconds, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err == nil && seconds > maxImplicitWait {
		err = fmt.Errorf("%d exceeds %d", seconds, maxImplicitWait)
	}
	if err != nil {
		return nil, &Error{Path: path, Key: KeyImplicitWait, Err: fmt.Errorf("must be an integer number of seconds: %w", err)}
	}
	if seconds < 0 {
		return nil, &Error{Path: path, Key: KeyImplicitWait, Err: fmt.Errorf("must not be negative, got %d", seconds)}
	}

	return &Config{
		appURL:            appURL,
		chromeDriverPath:  strings.TrimSpace(p.GetString(KeyChromeDriverPath, "")),
		firefoxDriverPath: strings.TrimSpace(p.GetString(KeyFirefoxDriverPath, "")),
		implicitWait:      time.Duration(seconds) * time.Second,
	}, nil
}

// AppURL is the start page every session navigates to
func (c *Config) AppURL() string { return c.appURL }

// ChromeDriverPath is the Chromium executable to launch. Empty means the
// browser bundled with Playwright.
func (c *Config) ChromeDriverPath() string { return c.chromeDriverPath }

// FirefoxDriverPath is kept for parity with the properties file; no flow uses it yet
func (c *Config) FirefoxDriverPath() string { return c.firefoxDriverPath }

// ImplicitWait is the default timeout applied to element lookups
func (c *Config) ImplicitWait() time.Duration { return c.implicitWait }

// WithAppURL returns a copy pointing at a different start page
func (c *Config) WithAppURL(url string) *Config {
	cp := *c
	cp.appURL = url
	return &cp
}

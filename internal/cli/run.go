package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/raptortest/qa-automation/internal/browser"
	"github.com/raptortest/qa-automation/internal/config"
	"github.com/raptortest/qa-automation/internal/scenario"
	"github.com/raptortest/qa-automation/internal/suites"
)

// ErrScenariosFailed is returned by RunScenarios when any scenario fails
var ErrScenariosFailed = errors.New("scenarios failed")

// SessionManager opens browser sessions and owns the driver behind them
type SessionManager interface {
	scenario.Sessions
	Shutdown() error
}

// RunOptions configures a RunScenarios invocation
type RunOptions struct {
	ConfigPath string
	// AppURL overrides app.url from the configuration file when set
	AppURL   string
	Headless bool
	Parallel int
	Patterns []string
	Out      io.Writer
	Log      logrus.FieldLogger

	// NewSessions defaults to a Chromium manager
	NewSessions func(cfg *config.Config, log logrus.FieldLogger) (SessionManager, error)
}

func newChromiumSessions(cfg *config.Config, log logrus.FieldLogger) (SessionManager, error) {
	return browser.NewChromiumManager(cfg, log)
}

// RunScenarios loads the configuration, runs the selected scenarios and
// prints a summary. A configuration error aborts before any browser starts.
func RunScenarios(ctx context.Context, opts RunOptions) (scenario.Summary, error) {
	path := opts.ConfigPath
	if path == "" {
		path = config.DefaultPath
	}
	cfg, err := config.Load(path)
	if err != nil {
		return scenario.Summary{}, err
	}
	if opts.AppURL != "" {
		cfg = cfg.WithAppURL(opts.AppURL)
	}

	selected, err := scenario.Filter(suites.All(), opts.Patterns...)
	if err != nil {
		return scenario.Summary{}, err
	}
	if len(selected) == 0 {
		return scenario.Summary{}, fmt.Errorf("no scenario matches %v", opts.Patterns)
	}

	newSessions := opts.NewSessions
	if newSessions == nil {
		newSessions = newChromiumSessions
	}
	sessions, err := newSessions(cfg, opts.Log)
	if err != nil {
		return scenario.Summary{}, err
	}
	defer func() {
		if err := sessions.Shutdown(); err != nil && opts.Log != nil {
			opts.Log.WithError(err).Warn("Stopping browser driver failed")
		}
	}()

	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	runner := scenario.NewRunner(sessions, opts.Headless, opts.Log)
	summary := scenario.WriteSummary(out, runner.RunAll(ctx, selected, opts.Parallel))
	if summary.Failed > 0 {
		return summary, fmt.Errorf("%d of %d: %w", summary.Failed, summary.Passed+summary.Failed, ErrScenariosFailed)
	}
	return summary, nil
}

// ListScenarios prints every scenario in run order
func ListScenarios(w io.Writer) {
	for _, sc := range suites.All() {
		fmt.Fprintf(w, "%-28s %s\n", sc.Name, sc.Description)
	}
}

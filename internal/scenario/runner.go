package scenario

import (
	"context"
	"fmt"
	"io"
	"runtime/debug"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/raptortest/qa-automation/internal/browser"
)

// Sessions opens and closes browser sessions. *browser.Manager satisfies it.
type Sessions interface {
	Open(headless bool) (*browser.Session, error)
	Close(s *browser.Session)
}

// Result is the outcome of one scenario
type Result struct {
	Name     string
	Err      error
	Duration time.Duration
}

// Passed reports whether the scenario succeeded
func (r Result) Passed() bool { return r.Err == nil }

// Runner executes scenarios with scoped session acquisition: every scenario
// gets a fresh session that is released on every exit path.
type Runner struct {
	sessions Sessions
	headless bool
	log      logrus.FieldLogger
}

// NewRunner returns a Runner opening sessions through sessions
func NewRunner(sessions Sessions, headless bool, log logrus.FieldLogger) *Runner {
	if log == nil {
		null := logrus.New()
		null.SetOutput(io.Discard)
		log = null
	}
	return &Runner{
		sessions: sessions,
		headless: headless,
		log:      log,
	}
}

// Run executes sc once. A startup error, a returned error and a panic are
// all reported as the scenario's failure. The session is never retried.
func (r *Runner) Run(sc Scenario) (res Result) {
	entry := r.log.WithField("scenario", sc.Name)
	start := time.Now()
	res.Name = sc.Name

	defer func() {
		res.Duration = time.Since(start)
		if res.Err != nil {
			entry.WithError(res.Err).WithField("duration", res.Duration).Error("scenario failed")
		} else {
			entry.WithField("duration", res.Duration).Info("scenario passed")
		}
	}()

	session, err := r.sessions.Open(r.headless)
	if err != nil {
		res.Err = fmt.Errorf("open session: %w", err)
		return res
	}
	defer r.sessions.Close(session)

	entry = entry.WithField("session", session.ID())
	entry.Debug("scenario started")

	res.Err = invoke(sc, session)
	return res
}

func invoke(sc Scenario, s *browser.Session) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("scenario panicked: %v\n%s", p, debug.Stack())
		}
	}()
	if sc.Run == nil {
		return fmt.Errorf("scenario %s has no body", sc.Name)
	}
	return sc.Run(s)
}

// RunAll executes scenarios with at most parallel running at once, each with
// its own session. Results keep the input order. A failing scenario never
// stops the others; cancelling ctx skips scenarios that have not started.
func (r *Runner) RunAll(ctx context.Context, scenarios []Scenario, parallel int) []Result {
	if parallel < 1 {
		parallel = 1
	}
	results := make([]Result, len(scenarios))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(parallel)
	for i, sc := range scenarios {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = Result{Name: sc.Name, Err: fmt.Errorf("not started: %w", err)}
				return nil
			}
			results[i] = r.Run(sc)
			return nil // failures are reported through results
		})
	}
	_ = g.Wait()
	return results
}

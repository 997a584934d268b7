// Package poll waits for a condition by checking it at a fixed interval until
// it holds or a timeout expires.
package poll

import (
	"context"
	"errors"
	"fmt"
	"time"

	"k8s.io/apimachinery/pkg/util/wait"
)

const (
	// DefaultInterval is the gap between two condition checks
	DefaultInterval = 100 * time.Millisecond
	// DefaultTimeout bounds every wait that does not set its own
	DefaultTimeout = 10 * time.Second
)

// ErrTimeout is returned when the condition did not hold in time
var ErrTimeout = errors.New("condition not met before timeout")

// Condition reports whether the awaited state has been reached. A non-nil
// error aborts the wait.
type Condition func() (bool, error)

// Until checks cond immediately and then every interval until it returns
// true, returns an error, or timeout elapses.
func Until(timeout, interval time.Duration, cond Condition) error {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if interval <= 0 {
		interval = DefaultInterval
	}

	err := wait.PollUntilContextTimeout(context.Background(), interval, timeout, true,
		func(context.Context) (bool, error) {
			return cond()
		})
	if err == nil {
		return nil
	}
	if wait.Interrupted(err) {
		return fmt.Errorf("after %s: %w", timeout, ErrTimeout)
	}
	return err
}

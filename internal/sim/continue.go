package sim

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
)

// AlwaysContinue is the policy for unattended runs.
func AlwaysContinue(Status) bool { return true }

// WithTimeout wraps a continue decision so that an unanswered prompt
// resolves to "keep going" after the timeout. The inner decision runs on
// its own goroutine; if it answers late the answer is discarded.
func WithTimeout(inner ContinueFunc, timeout time.Duration, clock quartz.Clock, logger *log.Logger) ContinueFunc {
	if clock == nil {
		clock = quartz.NewReal()
	}
	return func(status Status) bool {
		// The timeout is armed before the inner decision starts, so once
		// the inner function is running the timer is guaranteed in place.
		timedOut := make(chan struct{})
		timer := clock.AfterFunc(timeout, func() {
			close(timedOut)
		})
		defer timer.Stop()

		answer := make(chan bool, 1)
		go func() {
			answer <- inner(status)
		}()

		select {
		case ok := <-answer:
			return ok
		case <-timedOut:
			if logger != nil {
				logger.Warn("no answer to continue prompt, carrying on", "timeout", timeout, "spin", status.Spin)
			}
			return true
		}
	}
}

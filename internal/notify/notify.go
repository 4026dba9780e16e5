// Package notify surfaces reminders to the user through a platform-specific
// delivery strategy. Each strategy wraps exactly one host mechanism (AppleScript,
// PowerShell toast, notify-send, an HTTP webhook) behind the same contract, and
// the Fallback strategy is the guaranteed-success terminal variant.
package notify

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"time"
)

// Strategy delivers a single notification. A nil return means the notification
// was delivered; a non-nil error is a delivery failure and the caller decides
// whether to chain to the fallback.
type Strategy interface {
	// Name identifies the strategy in logs and config.
	Name() string
	// Deliver shows the notification. Implementations must bound their own
	// external calls so a hung host mechanism cannot stall the caller.
	Deliver(ctx context.Context, title, body string) error
}

// DeliveryError wraps any failure from a strategy's host boundary so callers
// see a typed outcome instead of a raw subprocess or transport error.
type DeliveryError struct {
	Strategy string
	Err      error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("%s delivery failed: %v", e.Strategy, e.Err)
}

func (e *DeliveryError) Unwrap() error { return e.Err }

func failed(strategy string, err error) error {
	return &DeliveryError{Strategy: strategy, Err: err}
}

// runCommand executes a host notification command with a bounded timeout and
// converts every failure mode (missing binary, non-zero exit, timeout) into a
// DeliveryError.
func runCommand(ctx context.Context, strategy string, timeout time.Duration, name string, args ...string) error {
	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(runCtx, name, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if runCtx.Err() == context.DeadlineExceeded {
			return failed(strategy, fmt.Errorf("timed out after %s", timeout))
		}
		if stderr.Len() > 0 {
			return failed(strategy, fmt.Errorf("%w: %s", err, stderr.String()))
		}
		return failed(strategy, err)
	}
	return nil
}

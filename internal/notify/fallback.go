package notify

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Fallback is the guaranteed-success terminal strategy: it logs the reminder
// and prints a console box. It must never return an error — the scheduler
// relies on this path being infallible.
type Fallback struct {
	log *slog.Logger
	out io.Writer
}

// NewFallback creates the fallback strategy.
func NewFallback(log *slog.Logger) *Fallback {
	return &Fallback{log: log, out: os.Stdout}
}

func (f *Fallback) Name() string { return "fallback" }

// Deliver always succeeds.
func (f *Fallback) Deliver(_ context.Context, title, body string) error {
	f.log.Warn("reminder delivered via fallback", "title", title, "body", body)

	rule := strings.Repeat("=", 40)
	fmt.Fprintln(f.out, rule)
	fmt.Fprintf(f.out, "=== %s ===\n", title)
	fmt.Fprintln(f.out, body)
	fmt.Fprintln(f.out, rule)
	return nil
}

package notify

import (
	"context"
	"fmt"
	"strings"
	"time"
)

const osascriptTimeout = 5 * time.Second

// Osascript shows macOS notification center popups via `osascript`.
type Osascript struct{}

// NewOsascript creates the macOS notification strategy.
func NewOsascript() *Osascript {
	return &Osascript{}
}

func (o *Osascript) Name() string { return "osascript" }

// Deliver runs an AppleScript `display notification` command.
func (o *Osascript) Deliver(ctx context.Context, title, body string) error {
	script := fmt.Sprintf(`display notification "%s" with title "%s" sound name "Glass"`,
		escapeAppleScript(body), escapeAppleScript(title))
	return runCommand(ctx, o.Name(), osascriptTimeout, "osascript", "-e", script)
}

// escapeAppleScript escapes characters that would break out of an AppleScript
// double-quoted string literal.
func escapeAppleScript(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `"`, `\"`)
}

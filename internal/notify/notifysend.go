package notify

import (
	"context"
	"time"
)

const notifySendTimeout = 5 * time.Second

// NotifySend shows Linux desktop notifications via the libnotify CLI.
type NotifySend struct{}

// NewNotifySend creates the Linux notification strategy.
func NewNotifySend() *NotifySend {
	return &NotifySend{}
}

func (n *NotifySend) Name() string { return "notify-send" }

// Deliver invokes notify-send. Arguments are passed directly, so no shell
// escaping is needed.
func (n *NotifySend) Deliver(ctx context.Context, title, body string) error {
	return runCommand(ctx, n.Name(), notifySendTimeout,
		"notify-send", "--app-name=Reminders", title, body)
}

package scheduler

import (
	"time"

	"reminders/internal/db"
)

// Entry is one armed reminder tracked by the engine worker.
type Entry struct {
	ID       string
	Text     string
	RemindAt time.Time
	// Fired is set before delivery is attempted, so an entry fires at most
	// once no matter how delivery goes.
	Fired bool
}

// command is a message processed by the engine's worker goroutine. All entry
// state is owned by that goroutine; the rest of the app only sends commands.
type command interface {
	isCommand()
}

// registerCmd arms (or re-arms) the reminder for a memo. A memo without a
// reminder time disarms any existing entry instead.
type registerCmd struct {
	memo *db.Memo
}

// cancelCmd disarms the entry for a memo ID. Unknown IDs are a no-op.
type cancelCmd struct {
	id string
}

// snapshotCmd asks the worker for a copy of its entries.
type snapshotCmd struct {
	reply chan []Entry
}

// resyncCmd reconciles the worker's entries against the memos currently in
// the database.
type resyncCmd struct {
	memos []*db.Memo
}

func (registerCmd) isCommand() {}
func (cancelCmd) isCommand()   {}
func (snapshotCmd) isCommand() {}
func (resyncCmd) isCommand()   {}

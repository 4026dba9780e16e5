// Package scheduler fires memo reminders at their scheduled times.
//
// A single worker goroutine owns all reminder entries. Everything else
// (the TUI, the resync job, callers of Snapshot) talks to it through a
// command channel, so no entry state is ever shared across goroutines.
package scheduler

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"reminders/internal/db"
	"reminders/internal/notify"
)

const cmdBuffer = 64

// Engine schedules and delivers reminders for memos.
type Engine struct {
	db       *db.DB
	primary  notify.Strategy
	fallback notify.Strategy
	log      *slog.Logger
	interval time.Duration

	cmds chan command
	stop chan struct{}
	done chan struct{}

	// entries is touched only by the worker goroutine (and, before Start,
	// by seeding).
	entries map[string]*Entry
}

// New creates an engine delivering through primary, falling back to the
// guaranteed-success strategy when primary fails.
func New(database *db.DB, primary notify.Strategy, log *slog.Logger, interval time.Duration) *Engine {
	return &Engine{
		db:       database,
		primary:  primary,
		fallback: notify.NewFallback(log),
		log:      log,
		interval: interval,
		cmds:     make(chan command, cmdBuffer),
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
		entries:  make(map[string]*Entry),
	}
}

// Start seeds entries from the database and launches the worker. Reminders
// whose time already passed while the app was not running are suppressed
// rather than fired in a burst at startup.
func (e *Engine) Start(ctx context.Context) error {
	memos, err := e.db.ListMemos()
	if err != nil {
		return err
	}
	e.seed(memos, time.Now())

	go e.run(ctx)
	return nil
}

// Stop shuts the worker down and waits for it to exit.
func (e *Engine) Stop() {
	close(e.stop)
	<-e.done
}

// Register arms the reminder for a memo, replacing any previous entry for
// the same ID. A memo with no reminder time disarms instead. The send never
// blocks; if the worker is badly backed up the command is dropped with a
// warning and the next resync repairs the difference.
func (e *Engine) Register(memo *db.Memo) {
	e.send(registerCmd{memo: memo})
}

// Cancel disarms the reminder for a memo ID. Cancelling an unknown or
// already-fired entry is a no-op.
func (e *Engine) Cancel(id string) {
	e.send(cancelCmd{id: id})
}

// Resync reloads memos from the database and reconciles the worker's
// entries against them.
func (e *Engine) Resync() error {
	memos, err := e.db.ListMemos()
	if err != nil {
		return err
	}
	e.send(resyncCmd{memos: memos})
	return nil
}

// Snapshot returns a copy of the current entries, ordered by reminder time
// then ID. It returns nil once the engine has stopped.
func (e *Engine) Snapshot() []Entry {
	reply := make(chan []Entry, 1)
	select {
	case e.cmds <- snapshotCmd{reply: reply}:
	case <-e.done:
		return nil
	}
	select {
	case entries := <-reply:
		return entries
	case <-e.done:
		return nil
	}
}

func (e *Engine) send(cmd command) {
	select {
	case e.cmds <- cmd:
	case <-e.done:
		e.log.Warn("engine stopped, command ignored")
	default:
		e.log.Warn("engine command queue full, command dropped")
	}
}

func (e *Engine) run(ctx context.Context) {
	defer close(e.done)

	ticker := time.NewTicker(e.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-e.stop:
			return
		case cmd := <-e.cmds:
			e.apply(cmd)
		case now := <-ticker.C:
			e.tick(ctx, now)
		}
	}
}

// seed loads the initial entries. Past reminders are marked fired so a
// restart does not replay notifications the user already missed.
func (e *Engine) seed(memos []*db.Memo, now time.Time) {
	suppressed := 0
	for _, memo := range memos {
		if !memo.HasReminder() {
			continue
		}
		entry := &Entry{ID: memo.ID, Text: memo.Text, RemindAt: *memo.RemindAt}
		if !entry.RemindAt.After(now) {
			entry.Fired = true
			suppressed++
		}
		e.entries[memo.ID] = entry
	}
	e.log.Info("schedule seeded", "entries", len(e.entries), "suppressed", suppressed)
}

func (e *Engine) apply(cmd command) {
	switch c := cmd.(type) {
	case registerCmd:
		if !c.memo.HasReminder() {
			delete(e.entries, c.memo.ID)
			return
		}
		e.entries[c.memo.ID] = &Entry{
			ID:       c.memo.ID,
			Text:     c.memo.Text,
			RemindAt: *c.memo.RemindAt,
		}
		e.log.Debug("reminder armed", "id", c.memo.ID, "remind_at", c.memo.RemindAt)
	case cancelCmd:
		delete(e.entries, c.id)
	case snapshotCmd:
		c.reply <- e.snapshot()
	case resyncCmd:
		e.resync(c.memos)
	}
}

// tick fires every entry whose time has arrived, in ascending (remind time,
// ID) order. An entry is marked fired before delivery is attempted; a
// delivery failure or panic never prevents the remaining due entries from
// firing.
func (e *Engine) tick(ctx context.Context, now time.Time) {
	var due []*Entry
	for _, entry := range e.entries {
		if !entry.Fired && !entry.RemindAt.After(now) {
			due = append(due, entry)
		}
	}
	if len(due) == 0 {
		return
	}

	sort.Slice(due, func(i, j int) bool {
		if !due[i].RemindAt.Equal(due[j].RemindAt) {
			return due[i].RemindAt.Before(due[j].RemindAt)
		}
		return due[i].ID < due[j].ID
	})

	for _, entry := range due {
		entry.Fired = true
		e.fire(ctx, entry)
	}
}

func (e *Engine) fire(ctx context.Context, entry *Entry) {
	defer func() {
		if r := recover(); r != nil {
			e.log.Error("panic during reminder delivery", "id", entry.ID, "panic", r)
		}
	}()

	title := "Reminder"
	body := "Reminder: " + entry.Text

	err := e.primary.Deliver(ctx, title, body)
	if err == nil {
		e.log.Info("reminder delivered", "id", entry.ID, "strategy", e.primary.Name())
		return
	}

	e.log.Warn("delivery failed, using fallback",
		"id", entry.ID, "strategy", e.primary.Name(), "error", err)

	if err := e.fallback.Deliver(ctx, title, body); err != nil {
		e.log.Error("fallback delivery failed", "id", entry.ID, "error", err)
	}
}

// resync reconciles entries against the database: memos gone from the DB
// are disarmed, new memos are armed (past times suppressed, as at seed),
// and a changed reminder time re-arms the entry.
func (e *Engine) resync(memos []*db.Memo) {
	now := time.Now()

	current := make(map[string]*db.Memo, len(memos))
	for _, memo := range memos {
		if memo.HasReminder() {
			current[memo.ID] = memo
		}
	}

	for id := range e.entries {
		if _, ok := current[id]; !ok {
			delete(e.entries, id)
		}
	}

	for id, memo := range current {
		entry, ok := e.entries[id]
		if ok && entry.RemindAt.Equal(*memo.RemindAt) {
			entry.Text = memo.Text
			continue
		}
		next := &Entry{ID: id, Text: memo.Text, RemindAt: *memo.RemindAt}
		if !ok && !next.RemindAt.After(now) {
			next.Fired = true
		}
		e.entries[id] = next
	}

	e.log.Debug("schedule resynced", "entries", len(e.entries))
}

func (e *Engine) snapshot() []Entry {
	entries := make([]Entry, 0, len(e.entries))
	for _, entry := range e.entries {
		entries = append(entries, *entry)
	}
	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].RemindAt.Equal(entries[j].RemindAt) {
			return entries[i].RemindAt.Before(entries[j].RemindAt)
		}
		return entries[i].ID < entries[j].ID
	})
	return entries
}

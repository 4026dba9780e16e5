package scheduler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reminders/internal/db"
	"reminders/internal/notify"
)

// recordingStrategy captures delivered bodies and can be told to fail or
// panic to exercise the fallback path.
type recordingStrategy struct {
	delivered []string
	failWith  error
	panicWith any
}

func (r *recordingStrategy) Name() string { return "recording" }

func (r *recordingStrategy) Deliver(_ context.Context, _, body string) error {
	if r.panicWith != nil {
		panic(r.panicWith)
	}
	if r.failWith != nil {
		return r.failWith
	}
	r.delivered = append(r.delivered, body)
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testDB(t *testing.T) *db.DB {
	t.Helper()
	database, err := db.New(filepath.Join(t.TempDir(), "reminders.db"))
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return database
}

func newTestEngine(t *testing.T, primary notify.Strategy) (*Engine, *recordingStrategy) {
	t.Helper()
	fb := &recordingStrategy{}
	e := New(testDB(t), primary, testLogger(), time.Second)
	e.fallback = fb
	return e, fb
}

func memoAt(id, text string, at time.Time) *db.Memo {
	return &db.Memo{ID: id, Text: text, RemindAt: &at}
}

func TestFiresWhenDue(t *testing.T) {
	primary := &recordingStrategy{}
	e, _ := newTestEngine(t, primary)

	now := time.Now()
	e.apply(registerCmd{memo: memoAt("a", "water plants", now.Add(time.Minute))})

	e.tick(context.Background(), now)
	assert.Empty(t, primary.delivered)

	e.tick(context.Background(), now.Add(time.Minute))
	assert.Equal(t, []string{"Reminder: water plants"}, primary.delivered)
}

func TestFiresAtMostOnce(t *testing.T) {
	primary := &recordingStrategy{}
	e, _ := newTestEngine(t, primary)

	now := time.Now()
	e.apply(registerCmd{memo: memoAt("a", "stand up", now)})

	for range 5 {
		e.tick(context.Background(), now.Add(time.Hour))
	}
	assert.Len(t, primary.delivered, 1)
}

func TestFiresInAscendingOrder(t *testing.T) {
	primary := &recordingStrategy{}
	e, _ := newTestEngine(t, primary)

	now := time.Now()
	e.apply(registerCmd{memo: memoAt("z", "third", now.Add(2*time.Second))})
	e.apply(registerCmd{memo: memoAt("b", "second", now.Add(time.Second))})
	e.apply(registerCmd{memo: memoAt("a", "first", now.Add(time.Second))})

	// All three are due at once, e.g. after a long laptop sleep.
	e.tick(context.Background(), now.Add(time.Minute))

	assert.Equal(t, []string{
		"Reminder: first",
		"Reminder: second",
		"Reminder: third",
	}, primary.delivered)
}

func TestCancelPreventsFiring(t *testing.T) {
	primary := &recordingStrategy{}
	e, _ := newTestEngine(t, primary)

	now := time.Now()
	e.apply(registerCmd{memo: memoAt("a", "meeting", now.Add(time.Second))})
	e.apply(cancelCmd{id: "a"})
	e.apply(cancelCmd{id: "a"}) // repeat cancel is a no-op
	e.apply(cancelCmd{id: "never-registered"})

	e.tick(context.Background(), now.Add(time.Minute))
	assert.Empty(t, primary.delivered)
}

func TestRegisterReplacesAndRearms(t *testing.T) {
	primary := &recordingStrategy{}
	e, _ := newTestEngine(t, primary)

	now := time.Now()
	e.apply(registerCmd{memo: memoAt("a", "v1", now)})
	e.tick(context.Background(), now)
	require.Equal(t, []string{"Reminder: v1"}, primary.delivered)

	// Re-registering the same memo re-arms it with the new time and text.
	e.apply(registerCmd{memo: memoAt("a", "v2", now.Add(time.Second))})
	e.tick(context.Background(), now.Add(time.Minute))
	assert.Equal(t, []string{"Reminder: v1", "Reminder: v2"}, primary.delivered)
}

func TestMemoWithoutReminderIsInert(t *testing.T) {
	primary := &recordingStrategy{}
	e, _ := newTestEngine(t, primary)

	now := time.Now()
	e.apply(registerCmd{memo: &db.Memo{ID: "a", Text: "no reminder"}})
	e.tick(context.Background(), now.Add(time.Hour))
	assert.Empty(t, primary.delivered)
	assert.Empty(t, e.entries)

	// Registering the memo again without a time disarms a previous entry.
	e.apply(registerCmd{memo: memoAt("b", "had one", now.Add(time.Second))})
	e.apply(registerCmd{memo: &db.Memo{ID: "b", Text: "had one"}})
	e.tick(context.Background(), now.Add(time.Hour))
	assert.Empty(t, primary.delivered)
}

func TestFallbackOnPrimaryFailure(t *testing.T) {
	primary := &recordingStrategy{failWith: errors.New("display not available")}
	e, fb := newTestEngine(t, primary)

	now := time.Now()
	e.apply(registerCmd{memo: memoAt("a", "call mom", now)})
	e.tick(context.Background(), now)

	assert.Empty(t, primary.delivered)
	assert.Equal(t, []string{"Reminder: call mom"}, fb.delivered)

	// The entry fired, failure or not; it does not retry.
	e.tick(context.Background(), now.Add(time.Minute))
	assert.Len(t, fb.delivered, 1)
}

func TestPanicDoesNotStallRemainingEntries(t *testing.T) {
	primary := &recordingStrategy{panicWith: "boom"}
	e, fb := newTestEngine(t, primary)

	now := time.Now()
	e.apply(registerCmd{memo: memoAt("a", "first", now)})
	e.apply(registerCmd{memo: memoAt("b", "second", now.Add(time.Millisecond))})

	e.tick(context.Background(), now.Add(time.Second))

	// Both entries were attempted and are spent, even though every delivery
	// panicked before reaching the fallback.
	assert.Empty(t, fb.delivered)
	for _, entry := range e.entries {
		assert.True(t, entry.Fired)
	}
}

func TestSeedSuppressesPastReminders(t *testing.T) {
	primary := &recordingStrategy{}
	e, _ := newTestEngine(t, primary)

	now := time.Now()
	e.seed([]*db.Memo{
		memoAt("past", "already missed", now.Add(-time.Hour)),
		memoAt("future", "still ahead", now.Add(time.Hour)),
		{ID: "plain", Text: "no reminder"},
	}, now)

	e.tick(context.Background(), now.Add(time.Minute))
	assert.Empty(t, primary.delivered)

	e.tick(context.Background(), now.Add(2*time.Hour))
	assert.Equal(t, []string{"Reminder: still ahead"}, primary.delivered)
}

func TestResyncReconciles(t *testing.T) {
	primary := &recordingStrategy{}
	e, _ := newTestEngine(t, primary)

	now := time.Now()
	e.apply(registerCmd{memo: memoAt("gone", "deleted elsewhere", now.Add(time.Hour))})
	e.apply(registerCmd{memo: memoAt("kept", "unchanged", now.Add(time.Hour))})

	e.apply(resyncCmd{memos: []*db.Memo{
		memoAt("kept", "unchanged", now.Add(time.Hour)),
		memoAt("new", "added elsewhere", now.Add(2*time.Hour)),
		memoAt("stale", "already past", now.Add(-time.Hour)),
	}})

	entries := e.snapshot()
	require.Len(t, entries, 3)
	ids := make(map[string]Entry, len(entries))
	for _, entry := range entries {
		ids[entry.ID] = entry
	}
	assert.NotContains(t, ids, "gone")
	assert.False(t, ids["kept"].Fired)
	assert.False(t, ids["new"].Fired)
	assert.True(t, ids["stale"].Fired)
}

func TestResyncRearmsChangedTime(t *testing.T) {
	primary := &recordingStrategy{}
	e, _ := newTestEngine(t, primary)

	now := time.Now()
	e.apply(registerCmd{memo: memoAt("a", "moved", now)})
	e.tick(context.Background(), now)
	require.Len(t, primary.delivered, 1)

	e.apply(resyncCmd{memos: []*db.Memo{memoAt("a", "moved", now.Add(time.Second))}})
	e.tick(context.Background(), now.Add(time.Minute))
	assert.Len(t, primary.delivered, 2)
}

func TestSnapshotOrdering(t *testing.T) {
	primary := &recordingStrategy{}
	e, _ := newTestEngine(t, primary)

	now := time.Now()
	e.apply(registerCmd{memo: memoAt("b", "tie two", now.Add(time.Minute))})
	e.apply(registerCmd{memo: memoAt("a", "tie one", now.Add(time.Minute))})
	e.apply(registerCmd{memo: memoAt("c", "earliest", now.Add(time.Second))})

	entries := e.snapshot()
	require.Len(t, entries, 3)
	assert.Equal(t, "c", entries[0].ID)
	assert.Equal(t, "a", entries[1].ID)
	assert.Equal(t, "b", entries[2].ID)
}

func TestStartAndStop(t *testing.T) {
	database := testDB(t)
	past := time.Now().Add(-time.Hour)
	future := time.Now().Add(time.Hour)
	require.NoError(t, database.CreateMemo(&db.Memo{Text: "missed", RemindAt: &past}))
	require.NoError(t, database.CreateMemo(&db.Memo{Text: "upcoming", RemindAt: &future}))

	primary := &recordingStrategy{}
	e := New(database, primary, testLogger(), time.Second)

	require.NoError(t, e.Start(context.Background()))

	entries := e.Snapshot()
	require.Len(t, entries, 2)
	assert.True(t, entries[0].Fired)  // past reminder suppressed at seed
	assert.False(t, entries[1].Fired) // future reminder still armed

	e.Stop()
	assert.Nil(t, e.Snapshot())
}

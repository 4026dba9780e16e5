package db_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"reminders/internal/db"
)

func newTestDB(t *testing.T) *db.DB {
	t.Helper()
	database, err := db.New(filepath.Join(t.TempDir(), "memos.db"))
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return database
}

func TestCreateAndGetMemo(t *testing.T) {
	database := newTestDB(t)

	remindAt := time.Now().Add(time.Hour).Truncate(time.Second)
	memo := &db.Memo{Text: "buy milk", RemindAt: &remindAt}
	require.NoError(t, database.CreateMemo(memo))
	require.NotEmpty(t, memo.ID)
	require.False(t, memo.CreatedAt.IsZero())

	got, err := database.GetMemo(memo.ID)
	require.NoError(t, err)
	require.Equal(t, "buy milk", got.Text)
	require.NotNil(t, got.RemindAt)
	require.True(t, got.RemindAt.Equal(remindAt))
}

func TestCreateMemoWithoutReminder(t *testing.T) {
	database := newTestDB(t)

	memo := &db.Memo{Text: "no reminder"}
	require.NoError(t, database.CreateMemo(memo))

	got, err := database.GetMemo(memo.ID)
	require.NoError(t, err)
	require.Nil(t, got.RemindAt)
	require.False(t, got.HasReminder())
}

func TestListMemosInCreationOrder(t *testing.T) {
	database := newTestDB(t)

	first := &db.Memo{Text: "first", CreatedAt: time.Now().Add(-2 * time.Minute)}
	second := &db.Memo{Text: "second", CreatedAt: time.Now().Add(-time.Minute)}
	require.NoError(t, database.CreateMemo(second))
	require.NoError(t, database.CreateMemo(first))

	memos, err := database.ListMemos()
	require.NoError(t, err)
	require.Len(t, memos, 2)
	require.Equal(t, "first", memos[0].Text)
	require.Equal(t, "second", memos[1].Text)
}

func TestDeleteMemo(t *testing.T) {
	database := newTestDB(t)

	memo := &db.Memo{Text: "doomed"}
	require.NoError(t, database.CreateMemo(memo))
	require.NoError(t, database.DeleteMemo(memo.ID))

	_, err := database.GetMemo(memo.ID)
	require.Error(t, err)

	// Deleting again is a no-op.
	require.NoError(t, database.DeleteMemo(memo.ID))
}

func TestDeleteAllMemos(t *testing.T) {
	database := newTestDB(t)

	require.NoError(t, database.CreateMemo(&db.Memo{Text: "a"}))
	require.NoError(t, database.CreateMemo(&db.Memo{Text: "b"}))
	require.NoError(t, database.DeleteAllMemos())

	memos, err := database.ListMemos()
	require.NoError(t, err)
	require.Empty(t, memos)
}

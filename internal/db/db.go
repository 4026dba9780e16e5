package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// DB wraps the SQLite database connection
type DB struct {
	conn *sql.DB
	path string
}

// New opens (or creates) the memo database at dbPath and runs migrations.
// A database file that fails to migrate is assumed corrupted: it is moved
// aside to <name>.db.backup and a fresh database is created in its place.
func New(dbPath string) (*DB, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create db directory: %w", err)
	}

	db, err := open(dbPath)
	if err == nil {
		return db, nil
	}

	// Recovery path: keep the broken file around for inspection, then retry
	// once with a clean slate.
	backupPath := dbPath + ".backup"
	if renameErr := os.Rename(dbPath, backupPath); renameErr != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db, retryErr := open(dbPath)
	if retryErr != nil {
		return nil, fmt.Errorf("failed to recreate database after backup: %w", retryErr)
	}
	return db, nil
}

func open(dbPath string) (*DB, error) {
	conn, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db := &DB{conn: conn, path: dbPath}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return db, nil
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.conn.Close()
}

// Path returns the location of the database file.
func (db *DB) Path() string {
	return db.path
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS memos (
		id TEXT PRIMARY KEY,
		text TEXT NOT NULL,
		remind_at DATETIME,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_memos_remind_at ON memos(remind_at);
	`

	_, err := db.conn.Exec(schema)
	return err
}

// CreateMemo inserts a memo, assigning an ID and creation time if unset.
func (db *DB) CreateMemo(memo *Memo) error {
	if memo.ID == "" {
		memo.ID = uuid.NewString()
	}
	if memo.CreatedAt.IsZero() {
		memo.CreatedAt = time.Now()
	}

	_, err := db.conn.Exec(`
		INSERT OR REPLACE INTO memos (id, text, remind_at, created_at)
		VALUES (?, ?, ?, ?)
	`, memo.ID, memo.Text, memo.RemindAt, memo.CreatedAt)
	return err
}

// GetMemo retrieves a memo by ID
func (db *DB) GetMemo(id string) (*Memo, error) {
	memo := &Memo{}
	err := db.conn.QueryRow(`
		SELECT id, text, remind_at, created_at FROM memos WHERE id = ?
	`, id).Scan(&memo.ID, &memo.Text, &memo.RemindAt, &memo.CreatedAt)
	if err != nil {
		return nil, err
	}
	return memo, nil
}

// ListMemos retrieves all memos in creation order
func (db *DB) ListMemos() ([]*Memo, error) {
	rows, err := db.conn.Query(`
		SELECT id, text, remind_at, created_at FROM memos ORDER BY created_at ASC, id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var memos []*Memo
	for rows.Next() {
		memo := &Memo{}
		if err := rows.Scan(&memo.ID, &memo.Text, &memo.RemindAt, &memo.CreatedAt); err != nil {
			return nil, err
		}
		memos = append(memos, memo)
	}
	return memos, rows.Err()
}

// DeleteMemo deletes a memo by ID. Deleting an unknown ID is not an error.
func (db *DB) DeleteMemo(id string) error {
	_, err := db.conn.Exec("DELETE FROM memos WHERE id = ?", id)
	return err
}

// DeleteAllMemos removes every memo.
func (db *DB) DeleteAllMemos() error {
	_, err := db.conn.Exec("DELETE FROM memos")
	return err
}

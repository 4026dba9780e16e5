package db

import "time"

// Memo represents a single memo, optionally carrying a reminder time.
type Memo struct {
	ID        string     `json:"id"`
	Text      string     `json:"text"`
	RemindAt  *time.Time `json:"remind_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// HasReminder reports whether the memo has a reminder time set.
func (m *Memo) HasReminder() bool {
	return m.RemindAt != nil
}

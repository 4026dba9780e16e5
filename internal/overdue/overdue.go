// Package overdue decides whether a reminder time has passed.
//
// It is deliberately free of any scheduler or delivery dependency: the list UI
// uses it to mark rows, and the scheduler uses it to decide firing. "Visually
// overdue" and "notification fired" are independent facts: a memo can be
// overdue long before the scheduler ever ran.
package overdue

import "time"

// IsOverdue reports whether remindAt is strictly before now.
// A nil remindAt means the memo has no reminder and is never overdue.
func IsOverdue(remindAt *time.Time, now time.Time) bool {
	if remindAt == nil {
		return false
	}
	return remindAt.Before(now)
}

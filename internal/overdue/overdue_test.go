package overdue_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"reminders/internal/overdue"
)

func TestIsOverdue(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Minute)
	future := now.Add(time.Minute)

	tests := []struct {
		name     string
		remindAt *time.Time
		want     bool
	}{
		{"nil reminder never overdue", nil, false},
		{"past reminder overdue", &past, true},
		{"future reminder not overdue", &future, false},
		{"exactly now not overdue", &now, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, overdue.IsOverdue(tt.remindAt, now))
		})
	}
}

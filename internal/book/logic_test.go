package book

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestNextOccurrence verifies the year-projection logic in isolation.
func TestNextOccurrence(t *testing.T) {
	// Reference "today": June 10th, 2024 (Leap Year).
	today := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		birth    time.Time
		expected time.Time
		desc     string
	}{
		{
			name:     "birthday later this year",
			birth:    time.Date(1990, 12, 31, 0, 0, 0, 0, time.UTC),
			expected: time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
			desc:     "Dec 31 is after June 10, so the occurrence stays in 2024",
		},
		{
			name:     "birthday already passed",
			birth:    time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
			expected: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			desc:     "Jan 1 is before June 10, so the occurrence moves to 2025",
		},
		{
			name:     "birthday today",
			birth:    time.Date(1990, 6, 10, 0, 0, 0, 0, time.UTC),
			expected: time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
			desc:     "Today is not strictly before today, so it stays",
		},
		{
			name:     "leapling in a leap year",
			birth:    time.Date(2000, 2, 29, 0, 0, 0, 0, time.UTC),
			expected: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
			desc:     "Feb 29 has passed in 2024; 2025 is non-leap, so time.Date normalizes to Mar 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, nextOccurrence(today, tt.birth), tt.desc)
		})
	}
}

func TestShiftWeekend(t *testing.T) {
	saturday := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	sunday := time.Date(2024, 6, 16, 0, 0, 0, 0, time.UTC)
	monday := time.Date(2024, 6, 17, 0, 0, 0, 0, time.UTC)
	friday := time.Date(2024, 6, 14, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, monday, shiftWeekend(saturday), "Saturday shifts two days")
	assert.Equal(t, monday, shiftWeekend(sunday), "Sunday shifts one day")
	assert.Equal(t, monday, shiftWeekend(monday), "weekdays pass through")
	assert.Equal(t, friday, shiftWeekend(friday), "Friday is not shifted")
}

func TestDaysBetween(t *testing.T) {
	from := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 0, daysBetween(from, from))
	assert.Equal(t, 7, daysBetween(from, from.AddDate(0, 0, 7)))
	assert.Equal(t, -1, daysBetween(from, from.AddDate(0, 0, -1)))
}

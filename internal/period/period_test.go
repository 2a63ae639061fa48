package period

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func TestCurrent(t *testing.T) {
	tests := []struct {
		name          string
		today         time.Time
		expectedStart time.Time
		expectedEnd   time.Time
	}{
		{
			name:          "Before the 21st uses previous month's window",
			today:         day(2025, time.January, 5),
			expectedStart: day(2024, time.December, 21),
			expectedEnd:   day(2025, time.January, 20),
		},
		{
			name:          "On or after the 21st opens this month",
			today:         day(2025, time.January, 25),
			expectedStart: day(2025, time.January, 21),
			expectedEnd:   day(2025, time.February, 20),
		},
		{
			name:          "Exactly the 21st opens a new window",
			today:         day(2025, time.March, 21),
			expectedStart: day(2025, time.March, 21),
			expectedEnd:   day(2025, time.April, 20),
		},
		{
			name:          "Exactly the 20th still belongs to the closing window",
			today:         day(2025, time.March, 20),
			expectedStart: day(2025, time.February, 21),
			expectedEnd:   day(2025, time.March, 20),
		},
		{
			name:          "Late December rolls the end into January",
			today:         day(2025, time.December, 22),
			expectedStart: day(2025, time.December, 21),
			expectedEnd:   day(2026, time.January, 20),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Current(tt.today)
			assert.Equal(t, tt.expectedStart, p.Start)
			assert.Equal(t, tt.expectedEnd, p.End)
		})
	}
}

func TestFor(t *testing.T) {
	p := For(time.December, 2024)
	assert.Equal(t, day(2024, time.December, 21), p.Start)
	assert.Equal(t, day(2025, time.January, 20), p.End)

	p = For(time.June, 2025)
	assert.Equal(t, day(2025, time.June, 21), p.Start)
	assert.Equal(t, day(2025, time.July, 20), p.End)
}

func TestPreviousNext(t *testing.T) {
	jan := For(time.January, 2025)

	prev := jan.Previous()
	assert.Equal(t, day(2024, time.December, 21), prev.Start)

	next := For(time.December, 2024).Next()
	assert.Equal(t, jan, next)

	// Stepping forward then back is a round trip.
	assert.Equal(t, jan, jan.Next().Previous())
}

func TestContains(t *testing.T) {
	p := For(time.January, 2025)

	assert.True(t, p.Contains(day(2025, time.January, 21)))
	assert.True(t, p.Contains(day(2025, time.February, 20)))
	assert.True(t, p.Contains(day(2025, time.February, 1)))
	assert.False(t, p.Contains(day(2025, time.January, 20)))
	assert.False(t, p.Contains(day(2025, time.February, 21)))

	// Time-of-day is ignored.
	assert.True(t, p.Contains(time.Date(2025, time.February, 20, 23, 59, 0, 0, time.UTC)))
}

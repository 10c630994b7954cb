package payroll

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPeriodBounds(t *testing.T) {
	cases := []struct {
		name      string
		month     int
		year      int
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "january",
			month:     1,
			year:      2025,
			wantStart: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "february common year",
			month:     2,
			year:      2025,
			wantStart: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "february leap year",
			month:     2,
			year:      2024,
			wantStart: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "thirty day month",
			month:     4,
			year:      2025,
			wantStart: time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2025, 4, 30, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "december",
			month:     12,
			year:      2025,
			wantStart: time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			start, end, err := PeriodBounds(c.month, c.year)
			require.NoError(t, err)
			assert.Equal(t, c.wantStart, start)
			assert.Equal(t, c.wantEnd, end)
		})
	}
}

func TestPeriodBoundsInvalid(t *testing.T) {
	for _, c := range []struct{ month, year int }{
		{0, 2025},
		{13, 2025},
		{-1, 2025},
		{6, 0},
		{6, -5},
	} {
		_, _, err := PeriodBounds(c.month, c.year)
		assert.ErrorIs(t, err, ErrInvalidPeriod, "month=%d year=%d", c.month, c.year)
	}
}

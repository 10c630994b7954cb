package leave

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChargeableUnpaidDays(t *testing.T) {
	cases := []struct {
		name           string
		totalLeaveDays int
		allowance      int
		want           int
	}{
		{"no leave", 0, 2, 0},
		{"within allowance", 2, 2, 0},
		{"one over allowance", 3, 2, 1},
		{"far over allowance", 10, 2, 8},
		{"zero allowance charges everything", 4, 0, 4},
		{"allowance exceeds leave", 1, 5, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, ChargeableUnpaidDays(c.totalLeaveDays, c.allowance))
		})
	}
}

func TestChargeableUnpaidDaysNeverNegative(t *testing.T) {
	for total := 0; total <= 10; total++ {
		for allowance := 0; allowance <= 10; allowance++ {
			assert.GreaterOrEqual(t, ChargeableUnpaidDays(total, allowance), 0)
		}
	}
}

// Adding leave days never lowers the chargeable count.
func TestChargeableUnpaidDaysMonotonic(t *testing.T) {
	const allowance = 2
	prev := 0
	for total := 0; total <= 31; total++ {
		got := ChargeableUnpaidDays(total, allowance)
		assert.GreaterOrEqual(t, got, prev)
		prev = got
	}
}

type stubLeaveCounter struct {
	count int
	err   error

	gotEmployeeID string
	gotStart      time.Time
	gotEnd        time.Time
}

func (s *stubLeaveCounter) CountLeaveDays(ctx context.Context, employeeID string, start, end time.Time) (int, error) {
	s.gotEmployeeID = employeeID
	s.gotStart = start
	s.gotEnd = end
	return s.count, s.err
}

func TestAccountantChargeableUnpaidDays(t *testing.T) {
	counter := &stubLeaveCounter{count: 5}
	accountant := NewAccountant(counter)

	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)

	got, err := accountant.ChargeableUnpaidDays(context.Background(), "emp-1", start, end, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, got)
	assert.Equal(t, "emp-1", counter.gotEmployeeID)
	assert.Equal(t, start, counter.gotStart)
	assert.Equal(t, end, counter.gotEnd)
}

func TestAccountantPropagatesLedgerError(t *testing.T) {
	counter := &stubLeaveCounter{err: assert.AnError}
	accountant := NewAccountant(counter)

	_, err := accountant.ChargeableUnpaidDays(context.Background(),
		"emp-1", time.Now(), time.Now(), 2)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

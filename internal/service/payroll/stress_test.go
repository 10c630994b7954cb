package payroll

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStressLevel(t *testing.T) {
	cases := []struct {
		hours int
		want  int
	}{
		{0, 1},
		{5, 1},
		{9, 1},
		{10, 2},
		{19, 2},
		{25, 3},
		{50, 6},
		{89, 9},
		{90, 10},
		{95, 10},
		{200, 10},
		{1000, 10},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, StressLevel(c.hours), "StressLevel(%d)", c.hours)
	}
}

func TestStressLevelBounded(t *testing.T) {
	for hours := 0; hours <= 500; hours++ {
		level := StressLevel(hours)
		assert.GreaterOrEqual(t, level, MinStressLevel)
		assert.LessOrEqual(t, level, MaxStressLevel)
	}
}

// Longer overtime never scores lower.
func TestStressLevelMonotonic(t *testing.T) {
	prev := StressLevel(0)
	for hours := 1; hours <= 200; hours++ {
		level := StressLevel(hours)
		assert.GreaterOrEqual(t, level, prev)
		prev = level
	}
}

package attendance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusIsValid(t *testing.T) {
	assert.True(t, StatusPresent.IsValid())
	assert.True(t, StatusPaidLeave.IsValid())
	assert.True(t, StatusUnpaidLeave.IsValid())
	assert.False(t, Status("SICK").IsValid())
	assert.False(t, Status("present").IsValid())
	assert.False(t, Status("").IsValid())
}

func TestStatusIsLeave(t *testing.T) {
	assert.False(t, StatusPresent.IsLeave())
	assert.True(t, StatusPaidLeave.IsLeave())
	assert.True(t, StatusUnpaidLeave.IsLeave())
}

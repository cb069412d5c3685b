package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestYearOrCurrent(t *testing.T) {
	clock := &MockClock{}
	clock.SetNow(time.Date(2026, time.October, 19, 12, 0, 0, 0, time.UTC))

	assert.Equal(t, 2024, YearOrCurrent(clock, 2024))
	assert.Equal(t, 2026, YearOrCurrent(clock, 0))
}

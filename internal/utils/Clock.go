package utils

import "time"

type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (s SystemClock) Now() time.Time {
	return time.Now()
}

type MockClock struct {
	FixedNow time.Time
}

func (m *MockClock) Now() time.Time {
	return m.FixedNow
}

func (m *MockClock) SetNow(now time.Time) {
	m.FixedNow = now
}

// YearOrCurrent returns year when it is set, otherwise the clock's current year.
func YearOrCurrent(clock Clock, year int) int {
	if year != 0 {
		return year
	}
	return clock.Now().Year()
}

package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWeekFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Week
		wantErr bool
	}{
		{"valid", "2025-W03", Week{Year: 2025, Number: 3}, false},
		{"week 53", "2024-W53", Week{Year: 2024, Number: 53}, false},
		{"missing W", "2025-03", Week{}, true},
		{"bad year", "20x5-W03", Week{}, true},
		{"bad week", "2025-Wxx", Week{}, true},
		{"too many parts", "2025-W03-1", Week{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := WeekFromString(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.input, got.String())
		})
	}
}

func TestWeekOf(t *testing.T) {
	w := WeekOf(Date(2024, time.March, 15))

	assert.Equal(t, Week{Year: 2024, Number: 11}, w)
	assert.Equal(t, "week_11", w.Destination())
	assert.Equal(t, Date(2024, time.March, 11), w.Start())
	assert.Equal(t, Date(2024, time.March, 17), w.End())
	assert.True(t, w.Contains(Date(2024, time.March, 15)))
	assert.False(t, w.Contains(Date(2024, time.March, 18)))
}

func TestWeekDays(t *testing.T) {
	days := Week{Year: 2023, Number: 1}.Days()

	assert.Equal(t, Date(2022, time.December, 26), days[0])
	assert.Equal(t, Date(2023, time.January, 1), days[6])
	for i, d := range days {
		assert.Equal(t, i, WeekdayIndex(d))
	}
}

func TestWeekMonths(t *testing.T) {
	tests := []struct {
		name string
		week Week
		want []time.Month
	}{
		{"week inside january", Week{Year: 2024, Number: 2}, []time.Month{time.January}},
		{"week across january and february", Week{Year: 2024, Number: 5}, []time.Month{time.January, time.February}},
		{"week 1 starting in previous december", Week{Year: 2023, Number: 1}, []time.Month{time.January}},
		{"last week spilling into next year", Week{Year: 2024, Number: 53}, []time.Month{time.December}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.week.Months())
		})
	}
}

func TestWeekNeighbours(t *testing.T) {
	_, ok := Week{Year: 2024, Number: 1}.Previous()
	assert.False(t, ok)

	next, ok := Week{Year: 2024, Number: 1}.Next()
	assert.True(t, ok)
	assert.Equal(t, 2, next.Number)

	_, ok = Week{Year: 2024, Number: TotalWeeks(2024)}.Next()
	assert.False(t, ok)

	assert.False(t, Week{Year: 2024, Number: 0}.Valid())
	assert.False(t, Week{Year: 2024, Number: 54}.Valid())
}

// Package dates holds the date arithmetic used to place content on week pages
// and to build the navigation between them.
//
// Week 1 of a year is the seven day period starting on the Monday on or before
// January 1, so it may begin in the previous December. Weeks follow one another
// without gaps until the week containing December 31.
package dates

import (
	"fmt"
	"time"
)

// Date returns midnight UTC of the given day. Every date handled by the planner
// goes through it so that day differences are exact multiples of 24 hours.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Truncate drops the time of day and location from t.
func Truncate(t time.Time) time.Time {
	return Date(t.Year(), t.Month(), t.Day())
}

// DaysBetween returns the number of whole days from a to b.
func DaysBetween(a, b time.Time) int {
	return int(Truncate(b).Sub(Truncate(a)).Hours() / 24)
}

// YearStartMonday returns the Monday on or before January 1 of year.
func YearStartMonday(year int) time.Time {
	jan1 := Date(year, time.January, 1)
	daysBack := (int(jan1.Weekday()) + 6) % 7
	return jan1.AddDate(0, 0, -daysBack)
}

// TotalWeeks returns how many weeks are needed, starting at YearStartMonday,
// to cover December 31 of year. Most years need 53; a leap year starting on a
// Sunday needs 54.
func TotalWeeks(year int) int {
	weeks := WeekNumberForDate(Date(year, time.December, 31))
	if weeks < 1 {
		return 1
	}
	return weeks
}

// WeekNumberForDate returns the week number of d within d's own calendar year.
// Late December dates are never moved into the next year's week 1.
func WeekNumberForDate(d time.Time) int {
	days := DaysBetween(YearStartMonday(d.Year()), d)
	return floorDiv(days, 7) + 1
}

// WeekStart returns the Monday of the given week.
func WeekStart(year, week int) time.Time {
	return YearStartMonday(year).AddDate(0, 0, (week-1)*7)
}

// WeekEnd returns the Sunday of the given week.
func WeekEnd(year, week int) time.Time {
	return WeekStart(year, week).AddDate(0, 0, 6)
}

// FirstWeekOfMonth returns the week containing the first day of month.
func FirstWeekOfMonth(year int, month time.Month) int {
	return WeekNumberForDate(Date(year, month, 1))
}

// DaysInMonth handles leap years.
func DaysInMonth(year int, month time.Month) int {
	return Date(year, month+1, 0).Day()
}

// IsValidDay reports whether day exists in the month. Callers check this before
// building a date so that Feb 30 is never normalised into March.
func IsValidDay(year int, month time.Month, day int) bool {
	return day >= 1 && day <= DaysInMonth(year, month)
}

// IsWeekend is decided by the weekday of the date itself.
func IsWeekend(d time.Time) bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// WeekdayIndex returns 0 for Monday through 6 for Sunday.
func WeekdayIndex(d time.Time) int {
	return (int(d.Weekday()) + 6) % 7
}

type Season int

const (
	Winter Season = iota
	Spring
	Summer
	Fall
)

// Seasons lists the seasons in the order the seasonal calendar shows them.
var Seasons = []Season{Winter, Spring, Summer, Fall}

func (s Season) String() string {
	switch s {
	case Winter:
		return "Winter"
	case Spring:
		return "Spring"
	case Summer:
		return "Summer"
	case Fall:
		return "Fall"
	}
	return fmt.Sprintf("Season(%d)", int(s))
}

// SeasonForMonth maps Dec-Feb to winter, Mar-May to spring, Jun-Aug to summer
// and Sep-Nov to fall.
func SeasonForMonth(month time.Month) Season {
	switch month {
	case time.December, time.January, time.February:
		return Winter
	case time.March, time.April, time.May:
		return Spring
	case time.June, time.July, time.August:
		return Summer
	default:
		return Fall
	}
}

// MonthsOfSeason returns the months of s in calendar order, so winter is
// January, February and December of the same year.
func MonthsOfSeason(s Season) []time.Month {
	months := make([]time.Month, 0, 3)
	for m := time.January; m <= time.December; m++ {
		if SeasonForMonth(m) == s {
			months = append(months, m)
		}
	}
	return months
}

// MonthsOfQuarter returns the three months of quarter q (1..4).
func MonthsOfQuarter(q int) []time.Month {
	first := time.Month((q-1)*3 + 1)
	return []time.Month{first, first + 1, first + 2}
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

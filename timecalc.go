package main

import (
	"math"
	"time"
)

const (
	minutesPerHour = 60
	minutesPerDay  = 24 * minutesPerHour
	minutesPerWeek = 7 * minutesPerDay
)

// span is a minute count broken down into whole days, hours and minutes.
// For negative inputs every component carries the sign.
type span struct {
	days    int
	hours   int
	minutes int
}

func (s span) negative() bool {
	return s.days < 0 || s.hours < 0 || s.minutes < 0
}

func (s span) abs() span {
	return span{days: absInt(s.days), hours: absInt(s.hours), minutes: absInt(s.minutes)}
}

// totalHours folds the day component into hours.
func (s span) totalHours() int {
	return s.days*24 + s.hours
}

// minutesToSpan truncates sub-minute remainders.
func minutesToSpan(total float64) span {
	sign := 1
	if total < 0 {
		sign = -1
		total = -total
	}
	days := math.Floor(total / minutesPerDay)
	hours := math.Floor(math.Mod(total, minutesPerDay) / minutesPerHour)
	mins := math.Floor(math.Mod(total, minutesPerHour))
	return span{
		days:    sign * int(days),
		hours:   sign * int(hours),
		minutes: sign * int(mins),
	}
}

// minutesBetween measures on the wall clock: a daylight saving day still
// spans 1440 minutes from midnight to midnight.
func minutesBetween(start, end time.Time) float64 {
	return wallClock(end).Sub(wallClock(start)).Minutes()
}

// wallClock moves t's calendar and clock fields to UTC.
func wallClock(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}

// progressPercent is not guarded against a zero total.
func progressPercent(elapsed, total float64) float64 {
	return elapsed / total * 100
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func daysInYear(year int) int {
	if isLeapYear(year) {
		return 366
	}
	return 365
}

// daysInMonth relies on time.Date normalising day 0 to the last day of the
// previous month.
func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// startOfWeek returns Monday 00:00 of the week containing t.
func startOfWeek(t time.Time) time.Time {
	sinceMonday := (int(t.Weekday()) + 6) % 7
	return time.Date(t.Year(), t.Month(), t.Day()-sinceMonday, 0, 0, 0, 0, t.Location())
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func startOfYear(t time.Time) time.Time {
	return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

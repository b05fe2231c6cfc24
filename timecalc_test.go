package main

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newYork(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	return loc
}

func TestMinutesToSpan(t *testing.T) {
	tests := []struct {
		name  string
		total float64
		want  span
	}{
		{"zero", 0, span{}},
		{"under an hour", 59.9, span{0, 0, 59}},
		{"one day", minutesPerDay, span{1, 0, 0}},
		{"last minute of day", 1439.99, span{0, 23, 59}},
		{"mixed", 2*minutesPerDay + 3*60 + 4.5, span{2, 3, 4}},
		{"negative", -90, span{0, -1, -30}},
		{"negative days", -(minutesPerDay + 61), span{-1, -1, -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, minutesToSpan(tt.total))
		})
	}
}

func TestMinutesToSpan_Bounds(t *testing.T) {
	for _, m := range []float64{0, 0.5, 59, 60, 1439, 1440, 10079.5, 525600, 527039.99} {
		s := minutesToSpan(m)
		folded := float64(s.days*minutesPerDay + s.hours*60 + s.minutes)

		assert.LessOrEqual(t, folded, m)
		assert.Less(t, m, folded+1)
		assert.GreaterOrEqual(t, s.hours, 0)
		assert.Less(t, s.hours, 24)
		assert.GreaterOrEqual(t, s.minutes, 0)
		assert.Less(t, s.minutes, 60)
	}
}

func TestSpanHelpers(t *testing.T) {
	s := minutesToSpan(-(2*minutesPerDay + 30))
	assert.True(t, s.negative())
	assert.Equal(t, span{2, 0, 30}, s.abs())
	assert.Equal(t, 51, span{2, 3, 0}.totalHours())
	assert.False(t, span{}.negative())
}

func TestProgressPercent(t *testing.T) {
	assert.Equal(t, 50.0, progressPercent(720, minutesPerDay))
	assert.Equal(t, 0.0, progressPercent(0, minutesPerWeek))
	assert.Equal(t, 150.0, progressPercent(3, 2))
	assert.InDelta(t, 100*1439.0/1440, progressPercent(1439, 1440), 1e-12)
}

func TestCalendarLengths(t *testing.T) {
	assert.Equal(t, 29*minutesPerDay, daysInMonth(2024, time.February)*minutesPerDay)
	assert.Equal(t, 28*minutesPerDay, daysInMonth(2025, time.February)*minutesPerDay)
	assert.Equal(t, 31, daysInMonth(2025, time.December))
	assert.Equal(t, 30, daysInMonth(2025, time.April))

	assert.Equal(t, 366*minutesPerDay, daysInYear(2024)*minutesPerDay)
	assert.Equal(t, 365*minutesPerDay, daysInYear(2023)*minutesPerDay)
	assert.False(t, isLeapYear(1900))
	assert.True(t, isLeapYear(2000))
}

func TestStartOfWeek(t *testing.T) {
	monday := time.Date(2025, time.January, 6, 0, 0, 0, 0, time.UTC)
	sunday := time.Date(2025, time.January, 12, 23, 59, 0, 0, time.UTC)

	assert.Equal(t, 0.0, minutesBetween(startOfWeek(monday), monday))
	assert.Equal(t, float64(6*minutesPerDay+23*60+59), minutesBetween(startOfWeek(sunday), sunday))

	// Week crossing a month boundary
	wed := time.Date(2025, time.October, 1, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, time.September, 29, 0, 0, 0, 0, time.UTC), startOfWeek(wed))
}

func TestPeriodStarts(t *testing.T) {
	loc := time.FixedZone("CST", 8*3600)
	now := time.Date(2025, time.March, 15, 13, 45, 30, 0, loc)

	assert.Equal(t, time.Date(2025, time.March, 15, 0, 0, 0, 0, loc), startOfDay(now))
	assert.Equal(t, time.Date(2025, time.March, 1, 0, 0, 0, 0, loc), startOfMonth(now))
	assert.Equal(t, time.Date(2025, time.January, 1, 0, 0, 0, 0, loc), startOfYear(now))
}

func TestMinutesBetween_WallClock(t *testing.T) {
	loc := newYork(t)

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  float64
	}{
		{"spring forward day", time.Date(2025, time.March, 9, 0, 0, 0, 0, loc), time.Date(2025, time.March, 10, 0, 0, 0, 0, loc), minutesPerDay},
		{"fall back day", time.Date(2025, time.November, 2, 0, 0, 0, 0, loc), time.Date(2025, time.November, 3, 0, 0, 0, 0, loc), minutesPerDay},
		{"across the gap", time.Date(2025, time.March, 9, 1, 0, 0, 0, loc), time.Date(2025, time.March, 9, 4, 0, 0, 0, loc), 3 * 60},
		{"fixed zone", time.Date(2025, time.March, 9, 0, 0, 0, 0, time.UTC), time.Date(2025, time.March, 9, 0, 30, 30, 0, time.UTC), 30.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, minutesBetween(tt.start, tt.end))
		})
	}
}

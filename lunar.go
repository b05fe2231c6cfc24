package main

import (
	"fmt"
	"time"

	"github.com/6tail/lunar-go/calendar"
)

// LunarCalendar resolves dates in the Chinese lunisolar calendar.
type LunarCalendar interface {
	// Date returns the Gregorian midnight, in loc, of the given day of the
	// lunar year. Lunar year y starts in Gregorian year y.
	Date(lunarYear, month, day int, loc *time.Location) (time.Time, error)
	// Describe returns the lunar date of t as display text.
	Describe(t time.Time) (string, error)
}

// lunarError carries a panic raised by the conversion library.
type lunarError struct {
	op    string
	cause any
}

func (e *lunarError) Error() string {
	return fmt.Sprintf("failed to convert %s: %v", e.op, e.cause)
}

type chineseCalendar struct{}

func newChineseCalendar() LunarCalendar {
	return chineseCalendar{}
}

func (chineseCalendar) Date(lunarYear, month, day int, loc *time.Location) (t time.Time, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &lunarError{op: fmt.Sprintf("lunar date %d-%02d-%02d", lunarYear, month, day), cause: r}
		}
	}()

	solar := calendar.NewLunarFromYmd(lunarYear, month, day).GetSolar()
	return time.Date(solar.GetYear(), time.Month(solar.GetMonth()), solar.GetDay(), 0, 0, 0, 0, loc), nil
}

func (chineseCalendar) Describe(t time.Time) (s string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &lunarError{op: t.Format("2006-01-02") + " to lunar date", cause: r}
		}
	}()

	lunar := calendar.NewLunarFromDate(t)
	return fmt.Sprintf("农历%s年%s月%s", lunar.GetYearInGanZhi(), lunar.GetMonthInChinese(), lunar.GetDayInChinese()), nil
}

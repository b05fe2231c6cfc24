package main

import (
	"fmt"
	"time"
)

// StatEntry is one labelled progress line of the report.
type StatEntry struct {
	Label       string
	Description string
	Percent     float64
	Color       string
}

// Report is everything computed from a single sample of the clock.
type Report struct {
	Now     time.Time
	Header  string
	Entries []StatEntry
}

const (
	dailyColor   = "#00FF00"
	weeklyColor  = "#0080FF"
	monthlyColor = "#FFD700"
	yearlyColor  = "#FF4500"
	lunarColor   = "#FF1493"
	holidayColor = "#00FFFF"
	offWorkColor = "#ADFF2F"
	salaryColor  = "#DAA520"

	holidayLabel = "距离25年1月24日放假倒计时"

	salaryDay = 15
)

// Civil dates of the company holiday and the anchor its progress window
// starts from. They are placed in the location of the sampled clock.
var (
	holidayDate    = civilDate{2025, time.January, 24}
	holidayAnchor  = civilDate{2024, time.January, 1}
	workdayStart   = 8*time.Hour + 30*time.Minute
	workdayEnd     = 17 * time.Hour
	weekdayChinese = [...]string{"星期日", "星期一", "星期二", "星期三", "星期四", "星期五", "星期六"}
)

type civilDate struct {
	year  int
	month time.Month
	day   int
}

func (d civilDate) in(loc *time.Location) time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, loc)
}

type festival struct {
	label string
	month time.Month
	day   int
	color string
}

var festivals = []festival{
	{label: "情人节倒计时", month: time.February, day: 14, color: "#FF69B4"},
	{label: "清明节倒计时", month: time.April, day: 4, color: "#98FB98"},
	{label: "劳动节倒计时", month: time.May, day: 1, color: "#FFA500"},
	{label: "儿童节倒计时", month: time.June, day: 1, color: "#87CEFA"},
	{label: "国庆节倒计时", month: time.October, day: 1, color: "#FF0000"},
}

// lunarFestivals use lunar month and day.
var lunarFestivals = []festival{
	{label: "端午节倒计时", month: 5, day: 5, color: "#3CB371"},
	{label: "中秋节倒计时", month: 8, day: 15, color: "#F0E68C"},
}

// StatsBuilder computes report entries from an explicit instant.
type StatsBuilder struct {
	lunar LunarCalendar
}

func NewStatsBuilder(lunar LunarCalendar) *StatsBuilder {
	return &StatsBuilder{lunar: lunar}
}

// Report samples nothing itself: every entry is derived from now.
func (b *StatsBuilder) Report(now time.Time, extras bool) (Report, error) {
	entries, err := b.Build(now)
	if err != nil {
		return Report{}, err
	}
	if extras {
		more, err := b.Extras(now)
		if err != nil {
			return Report{}, err
		}
		entries = append(entries, more...)
	}

	header, err := b.Header(now)
	if err != nil {
		return Report{}, err
	}

	return Report{Now: now, Header: header, Entries: entries}, nil
}

// Build returns the six core entries in display order.
func (b *StatsBuilder) Build(now time.Time) ([]StatEntry, error) {
	lunar, err := b.lunarCountdown(now)
	if err != nil {
		return nil, err
	}

	return []StatEntry{
		dailyEntry(now),
		weeklyEntry(now),
		monthlyEntry(now),
		yearlyEntry(now),
		lunar,
		holidayEntry(now),
	}, nil
}

// Extras returns the off-work, salary day and festival countdowns.
func (b *StatsBuilder) Extras(now time.Time) ([]StatEntry, error) {
	entries := []StatEntry{offWorkEntry(now), salaryEntry(now)}
	for _, f := range festivals {
		entries = append(entries, festivalEntry(now, f))
	}
	for _, f := range lunarFestivals {
		e, err := b.lunarFestivalEntry(now, f)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func (b *StatsBuilder) Header(now time.Time) (string, error) {
	lunarText, err := b.lunar.Describe(now)
	if err != nil {
		return "", fmt.Errorf("failed to describe lunar date: %w", err)
	}
	return fmt.Sprintf("%d年%02d月%02d日 %s  %s",
		now.Year(), int(now.Month()), now.Day(), weekdayChinese[now.Weekday()], lunarText), nil
}

func dailyEntry(now time.Time) StatEntry {
	elapsed := minutesBetween(startOfDay(now), now)
	s := minutesToSpan(elapsed)
	return StatEntry{
		Label:       "今日进度",
		Description: fmt.Sprintf("已过 %d 小时 %d 分钟", s.hours, s.minutes),
		Percent:     progressPercent(elapsed, minutesPerDay),
		Color:       dailyColor,
	}
}

func weeklyEntry(now time.Time) StatEntry {
	elapsed := minutesBetween(startOfWeek(now), now)
	s := minutesToSpan(elapsed)
	return StatEntry{
		Label:       "本周进度",
		Description: fmt.Sprintf("已过 %d 小时 %d 分钟", s.totalHours(), s.minutes),
		Percent:     progressPercent(elapsed, minutesPerWeek),
		Color:       weeklyColor,
	}
}

func monthlyEntry(now time.Time) StatEntry {
	elapsed := minutesBetween(startOfMonth(now), now)
	total := float64(daysInMonth(now.Year(), now.Month()) * minutesPerDay)
	return StatEntry{
		Label:       "本月进度",
		Description: elapsedDescription(minutesToSpan(elapsed)),
		Percent:     progressPercent(elapsed, total),
		Color:       monthlyColor,
	}
}

func yearlyEntry(now time.Time) StatEntry {
	elapsed := minutesBetween(startOfYear(now), now)
	total := float64(daysInYear(now.Year()) * minutesPerDay)
	return StatEntry{
		Label:       "今年进度",
		Description: elapsedDescription(minutesToSpan(elapsed)),
		Percent:     progressPercent(elapsed, total),
		Color:       yearlyColor,
	}
}

// lunarWindow returns the lunar new years bracketing now. A new year that
// starts exactly at now opens the window.
func (b *StatsBuilder) lunarWindow(now time.Time) (start, end time.Time, err error) {
	loc := now.Location()
	year := now.Year()

	current, err := b.lunar.Date(year, 1, 1, loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	if !now.Before(current) {
		next, err := b.lunar.Date(year+1, 1, 1, loc)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		return current, next, nil
	}

	previous, err := b.lunar.Date(year-1, 1, 1, loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return previous, current, nil
}

func (b *StatsBuilder) lunarCountdown(now time.Time) (StatEntry, error) {
	start, target, err := b.lunarWindow(now)
	if err != nil {
		return StatEntry{}, fmt.Errorf("failed to resolve lunar new year: %w", err)
	}

	return StatEntry{
		Label:       "春节倒计时",
		Description: remainingDescription(minutesToSpan(minutesBetween(now, target))),
		Percent:     progressPercent(minutesBetween(start, now), minutesBetween(start, target)),
		Color:       lunarColor,
	}, nil
}

// holidayEntry measures progress over anchor..holiday, independent of the
// countdown shown in the description.
func holidayEntry(now time.Time) StatEntry {
	holiday := holidayDate.in(now.Location())
	anchor := holidayAnchor.in(now.Location())

	return StatEntry{
		Label:       holidayLabel,
		Description: remainingDescription(minutesToSpan(minutesBetween(now, holiday))),
		Percent:     progressPercent(minutesBetween(anchor, now), minutesBetween(anchor, holiday)),
		Color:       holidayColor,
	}
}

func offWorkEntry(now time.Time) StatEntry {
	entry := StatEntry{Label: "下班倒计时", Color: offWorkColor}

	if wd := now.Weekday(); wd == time.Saturday || wd == time.Sunday {
		entry.Description = "今日休息"
		entry.Percent = 100
		return entry
	}

	day := startOfDay(now)
	start := clockOn(day, workdayStart)
	end := clockOn(day, workdayEnd)

	switch {
	case now.Before(start):
		entry.Description = "尚未上班"
		entry.Percent = 0
	case !now.Before(end):
		entry.Description = "已下班"
		entry.Percent = 100
	default:
		s := minutesToSpan(minutesBetween(now, end))
		entry.Description = fmt.Sprintf("还剩 %d 小时 %d 分钟", s.totalHours(), s.minutes)
		entry.Percent = progressPercent(minutesBetween(start, now), minutesBetween(start, end))
	}
	return entry
}

// nextOccurrence returns this year's month/day unless now is already past it.
func nextOccurrence(now time.Time, month time.Month, day int) time.Time {
	t := time.Date(now.Year(), month, day, 0, 0, 0, 0, now.Location())
	if now.After(t) {
		t = t.AddDate(1, 0, 0)
	}
	return t
}

func festivalEntry(now time.Time, f festival) StatEntry {
	return countdownEntry(now, nextOccurrence(now, f.month, f.day), f)
}

// lunarFestivalEntry rolls over to next lunar year once this year's date
// has passed.
func (b *StatsBuilder) lunarFestivalEntry(now time.Time, f festival) (StatEntry, error) {
	target, err := b.lunar.Date(now.Year(), int(f.month), f.day, now.Location())
	if err == nil && now.After(target) {
		target, err = b.lunar.Date(now.Year()+1, int(f.month), f.day, now.Location())
	}
	if err != nil {
		return StatEntry{}, fmt.Errorf("failed to resolve %s: %w", f.label, err)
	}
	return countdownEntry(now, target, f), nil
}

// countdownEntry measures progress from Jan 1 of now's year to target.
func countdownEntry(now, target time.Time, f festival) StatEntry {
	yearStart := startOfYear(now)

	return StatEntry{
		Label:       f.label,
		Description: remainingDescription(minutesToSpan(minutesBetween(now, target))),
		Percent:     progressPercent(minutesBetween(yearStart, now), minutesBetween(yearStart, target)),
		Color:       f.color,
	}
}

// salaryEntry counts down to the next salary day, with a window running
// from the previous one.
func salaryEntry(now time.Time) StatEntry {
	entry := StatEntry{Label: "距离下一个发薪日", Color: salaryColor}
	if now.Day() == salaryDay {
		entry.Description = "今日为发薪日"
		entry.Percent = 100
		return entry
	}

	month := now.Month()
	if now.Day() > salaryDay {
		month++
	}
	target := time.Date(now.Year(), month, salaryDay, 0, 0, 0, 0, now.Location())
	previous := target.AddDate(0, -1, 0)

	entry.Description = remainingDescription(minutesToSpan(minutesBetween(now, target)))
	entry.Percent = progressPercent(minutesBetween(previous, now), minutesBetween(previous, target))
	return entry
}

// clockOn places a wall-clock offset on the given midnight.
func clockOn(midnight time.Time, offset time.Duration) time.Time {
	h := int(offset / time.Hour)
	m := int(offset % time.Hour / time.Minute)
	return time.Date(midnight.Year(), midnight.Month(), midnight.Day(), h, m, 0, 0, midnight.Location())
}

func elapsedDescription(s span) string {
	return fmt.Sprintf("已过 %d 天 %d 小时 %d 分钟", s.days, s.hours, s.minutes)
}

// remainingDescription reports an overdue countdown by its magnitude.
func remainingDescription(s span) string {
	if s.negative() {
		s = s.abs()
		return fmt.Sprintf("已超 %d 天 %d 小时 %d 分钟", s.days, s.hours, s.minutes)
	}
	return fmt.Sprintf("还剩 %d 天 %d 小时 %d 分钟", s.days, s.hours, s.minutes)
}

package main

import (
	"strings"
	"time"
)

// Dot bits of a braille cell indexed by [row][column].
var brailleDots = [4][2]rune{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// BrailleCanvas is a dot matrix drawn with braille characters, 2x4 dots
// per character cell.
type BrailleCanvas struct {
	Width  int
	Height int
	dots   []bool
}

func NewBrailleCanvas(width, height int) *BrailleCanvas {
	return &BrailleCanvas{
		Width:  width,
		Height: height,
		dots:   make([]bool, width*height),
	}
}

// Set marks a dot. Out of range coordinates are ignored.
func (c *BrailleCanvas) Set(x, y int) {
	if !c.inside(x, y) {
		return
	}
	c.dots[y*c.Width+x] = true
}

func (c *BrailleCanvas) String() string {
	var b strings.Builder

	for y := 0; y < c.Height; y += 4 {
		for x := 0; x < c.Width; x += 2 {
			r := rune(0x2800)
			for dy, row := range brailleDots {
				for dx, bit := range row {
					if c.get(x+dx, y+dy) {
						r |= bit
					}
				}
			}
			b.WriteRune(r)
		}
		b.WriteByte('\n')
	}

	return b.String()
}

func (c *BrailleCanvas) get(x, y int) bool {
	return c.inside(x, y) && c.dots[y*c.Width+x]
}

func (c *BrailleCanvas) inside(x, y int) bool {
	return x >= 0 && x < c.Width && y >= 0 && y < c.Height
}

// yearMap draws one dot per day of now's year, weeks as columns and
// Monday-first weekdays as rows. Days that have started are set.
func yearMap(now time.Time) string {
	lead := (int(startOfYear(now).Weekday()) + 6) % 7
	days := daysInYear(now.Year())
	weeks := (lead + days + 6) / 7

	canvas := NewBrailleCanvas(weeks, 8)
	for day := 0; day < now.YearDay(); day++ {
		pos := lead + day
		canvas.Set(pos/7, pos%7)
	}
	return strings.TrimSuffix(canvas.String(), "\n")
}

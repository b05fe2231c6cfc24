package main

import (
	"math/bits"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countDots(s string) int {
	n := 0
	for _, r := range s {
		if r >= 0x2800 && r <= 0x28FF {
			n += bits.OnesCount(uint(r - 0x2800))
		}
	}
	return n
}

func TestBrailleCanvas(t *testing.T) {
	c := NewBrailleCanvas(4, 4)
	c.Set(0, 0)
	c.Set(3, 3)
	c.Set(-1, 0)
	c.Set(4, 0)
	c.Set(0, 4)

	assert.Equal(t, string([]rune{0x2801, 0x2880})+"\n", c.String())
}

func TestBrailleCanvas_AllDots(t *testing.T) {
	c := NewBrailleCanvas(2, 4)
	for x := 0; x < 2; x++ {
		for y := 0; y < 4; y++ {
			c.Set(x, y)
		}
	}
	assert.Equal(t, "⣿\n", c.String())
}

func TestYearMap(t *testing.T) {
	t.Run("first day", func(t *testing.T) {
		// 2024-01-01 is a Monday so the first dot is the top left one
		m := yearMap(time.Date(2024, time.January, 1, 9, 0, 0, 0, time.UTC))
		lines := strings.Split(m, "\n")
		require.Len(t, lines, 2)
		assert.Len(t, []rune(lines[0]), 27)
		assert.Equal(t, rune(0x2801), []rune(lines[0])[0])
		assert.Equal(t, 1, countDots(m))
	})

	t.Run("leap year end", func(t *testing.T) {
		m := yearMap(time.Date(2024, time.December, 31, 23, 0, 0, 0, time.UTC))
		assert.Equal(t, 366, countDots(m))
	})

	t.Run("offset start", func(t *testing.T) {
		// 2025-01-01 is a Wednesday
		m := yearMap(time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC))
		assert.Equal(t, 10, countDots(m))
		// Leading Monday and Tuesday dots stay empty
		assert.Equal(t, rune(0x2800|0xFC), []rune(m)[0])
	})
}

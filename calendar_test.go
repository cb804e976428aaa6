package julianday

import (
	"testing"
	"time"
)

func TestIsLeapYear(t *testing.T) {
	cases := []struct {
		year int
		want bool
	}{
		{2000, true},
		{2004, true},
		{2020, true},
		{1900, false},
		{2100, false},
		{2021, false},
		{1, false},
		{0, true},
		{-1, false},
		{-4, true},
		{-100, false},
		{-400, true},
	}
	for _, c := range cases {
		if IsLeapYear(c.year) != c.want {
			t.Errorf("Year %d: want %v, have %v", c.year, c.want, IsLeapYear(c.year))
		}
	}
}

func TestDaysInMonth(t *testing.T) {
	cases := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2021, time.January, 31},
		{2021, time.February, 28},
		{2020, time.February, 29},
		{1900, time.February, 28},
		{2000, time.February, 29},
		{2021, time.April, 30},
		{2021, time.December, 31},
		{2021, 0, 0},
		{2021, 13, 0},
	}
	for _, c := range cases {
		if DaysInMonth(c.year, c.month) != c.want {
			t.Errorf("Month %d-%02d: want %d, have %d", c.year, int(c.month), c.want, DaysInMonth(c.year, c.month))
		}
	}
}

func TestFloorDiv(t *testing.T) {
	cases := []struct {
		a, b, want int64
	}{
		{7, 4, 1},
		{8, 4, 2},
		{-7, 4, -2},
		{-8, 4, -2},
		{0, 4, 0},
		{-1, 146097, -1},
	}
	for _, c := range cases {
		if floorDiv(c.a, c.b) != c.want {
			t.Errorf("floorDiv(%d, %d): want %d, have %d", c.a, c.b, c.want, floorDiv(c.a, c.b))
		}
	}
}

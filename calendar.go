package julianday

import (
	"time"

	"github.com/go-faster/errors"
)

//ErrInvalidDate is returned when year, month and day do not form a valid calendar date
var ErrInvalidDate = errors.New("invalid calendar date")

// IsLeapYear reports whether year is a leap year in the proleptic Gregorian
// calendar: divisible by 4 and not by 100, or divisible by 400.
// Years before 1 use astronomical numbering, so year 0 exists and is a leap year.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days in the given month (28-31),
// or 0 if month is not a valid month.
func DaysInMonth(year int, month time.Month) int {
	switch month {
	case time.January, time.March, time.May, time.July, time.August, time.October, time.December:
		return 31
	case time.April, time.June, time.September, time.November:
		return 30
	case time.February:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	}
	return 0
}

// Checks the field ranges, an invalid date is rejected and never normalized.
func validDate(year int, month time.Month, day int) error {
	if month < time.January || month > time.December {
		return errors.Wrapf(ErrInvalidDate, "month %d", int(month))
	}
	if day < 1 || day > DaysInMonth(year, month) {
		return errors.Wrapf(ErrInvalidDate, "day %d in %d-%02d", day, year, int(month))
	}
	return nil
}

// The conversions below use the Fliegel-Van Flandern integer form: the months
// are shifted so March opens the computational year and the leap day falls at
// its end, then the day count follows from closed-form integer expressions.
// All division is floored so dates before the epoch stay exact.
// The result is exact over the whole int64 range until the intermediate
// products overflow, at roughly |year| > 10^15.
// http://aa.usno.navy.mil/faq/docs/JD_Formula.php

func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// Calendar date to Julian Day Number, the date must already be validated.
func ymdToNumber(year int, month time.Month, day int) int64 {
	a := int64(14-month) / 12
	y := int64(year) + 4800 - a
	m := int64(month) + 12*a - 3

	return int64(day) + (153*m+2)/5 + 365*y +
		floorDiv(y, 4) - floorDiv(y, 100) + floorDiv(y, 400) - 32045
}

// Julian Day Number to calendar date, the exact inverse of ymdToNumber.
func numberToYMD(jdn int64) (year int, month time.Month, day int) {
	a := jdn + 32044
	b := floorDiv(4*a+3, 146097)
	c := a - floorDiv(146097*b, 4)
	d := floorDiv(4*c+3, 1461)
	e := c - floorDiv(1461*d, 4)
	m := floorDiv(5*e+2, 153)

	day = int(e - floorDiv(153*m+2, 5) + 1)
	month = time.Month(m + 3 - 12*floorDiv(m, 10))
	year = int(100*b + d - 4800 + floorDiv(m, 10))
	return year, month, day
}

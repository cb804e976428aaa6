//package julianday converts between proleptic Gregorian calendar dates and
//Julian Day Numbers, the continuous count of days since the beginning of the
//Julian Period.
package julianday

import "time"

// JulianDay is the Julian Day Number of a calendar date, stored as a plain
// count of whole days. The traditional definition starts days at noon, here
// the day boundary is fixed by the epoch constant instead so that a day number
// and a calendar date map one to one.
//
// Any int64 is a valid JulianDay. Values compare and order as plain integers,
// consistent with calendar order.
type JulianDay int64

// FromDate returns the JulianDay of a proleptic Gregorian calendar date.
// The year may be zero or negative (astronomical year numbering).
// ErrInvalidDate is returned when month or day is out of range, including
// Feb 29 in a non-leap year.
func FromDate(year int, month time.Month, day int) (JulianDay, error) {
	if err := validDate(year, month, day); err != nil {
		return 0, err
	}
	return JulianDay(ymdToNumber(year, month, day)), nil
}

// FromTime returns the JulianDay of the calendar date of t in UTC.
func FromTime(t time.Time) JulianDay {
	year, month, day := t.UTC().Date()
	return JulianDay(ymdToNumber(year, month, day))
}

// Value returns the day number as an int64.
func (jd JulianDay) Value() int64 {
	return int64(jd)
}

// Date returns the calendar date of the day number.
func (jd JulianDay) Date() (year int, month time.Month, day int) {
	return numberToYMD(int64(jd))
}

// Time returns the start of the day (midnight UTC) as a time.Time.
func (jd JulianDay) Time() time.Time {
	year, month, day := jd.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Modified returns the same day as a ModifiedJulianDay.
func (jd JulianDay) Modified() ModifiedJulianDay {
	return ModifiedJulianDay(int64(jd) - ModifiedOffset)
}

// AddDays returns the JulianDay n days later, or earlier for negative n.
func (jd JulianDay) AddDays(n int64) JulianDay {
	return jd + JulianDay(n)
}

// Sub returns the number of days from o to jd.
func (jd JulianDay) Sub(o JulianDay) int64 {
	return int64(jd) - int64(o)
}

// Weekday returns the day of the week.
// Day numbers are weekday aligned, JulianDay 0 was a Monday.
func (jd JulianDay) Weekday() time.Weekday {
	return time.Weekday((int64(jd)%7 + 8) % 7)
}

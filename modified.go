package julianday

import "time"

// ModifiedOffset is the fixed number of days between the Julian Day and
// Modified Julian Day epochs: MJD = JD - 2400001.
// The astronomical definition subtracts 2400000.5 so that modified days start
// at midnight, the half day is folded into the epoch here so that
// ModifiedJulianDay 0 is 1858-11-17 and 1970-01-01 is 40587, matching the
// published integer MJD tables. The same constant is used in both directions.
const ModifiedOffset = 2400001

// ModifiedJulianDay is the Modified Julian Day of a calendar date, a
// JulianDay offset by ModifiedOffset to keep the numbers small.
//
// Any int64 is a valid ModifiedJulianDay. Values compare and order as plain
// integers, consistent with calendar order.
type ModifiedJulianDay int64

// ModifiedFromDate returns the ModifiedJulianDay of a proleptic Gregorian
// calendar date. ErrInvalidDate is returned as in FromDate.
func ModifiedFromDate(year int, month time.Month, day int) (ModifiedJulianDay, error) {
	jd, err := FromDate(year, month, day)
	if err != nil {
		return 0, err
	}
	return jd.Modified(), nil
}

// ModifiedFromTime returns the ModifiedJulianDay of the calendar date of t in UTC.
func ModifiedFromTime(t time.Time) ModifiedJulianDay {
	return FromTime(t).Modified()
}

// Value returns the day number as an int64.
func (mjd ModifiedJulianDay) Value() int64 {
	return int64(mjd)
}

// Julian returns the same day as a JulianDay.
// The conversion is a plain integer addition and never fails.
func (mjd ModifiedJulianDay) Julian() JulianDay {
	return JulianDay(int64(mjd) + ModifiedOffset)
}

// Date returns the calendar date of the day number.
func (mjd ModifiedJulianDay) Date() (year int, month time.Month, day int) {
	return mjd.Julian().Date()
}

// Time returns the start of the day (midnight UTC) as a time.Time.
func (mjd ModifiedJulianDay) Time() time.Time {
	return mjd.Julian().Time()
}

// AddDays returns the ModifiedJulianDay n days later, or earlier for negative n.
func (mjd ModifiedJulianDay) AddDays(n int64) ModifiedJulianDay {
	return mjd + ModifiedJulianDay(n)
}

// Sub returns the number of days from o to mjd.
func (mjd ModifiedJulianDay) Sub(o ModifiedJulianDay) int64 {
	return int64(mjd) - int64(o)
}

// Weekday returns the day of the week.
func (mjd ModifiedJulianDay) Weekday() time.Weekday {
	return mjd.Julian().Weekday()
}

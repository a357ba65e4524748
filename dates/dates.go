// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package dates provides an immutable calendar date type, Gregorian date
// arithmetic, canonical string encodings and ranges of dates and months.
// It has no notion of time of day or time zone and never consults the
// system clock: callers supply the current date explicitly wherever it
// is needed.
package dates

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCalendarDate is returned when a year, month, day triple does
	// not denote a valid Gregorian date.
	ErrInvalidCalendarDate = errors.New("invalid calendar date")
	// ErrInvalidDateFormat is returned when a string cannot be parsed as
	// a valid date.
	ErrInvalidDateFormat = errors.New("invalid date format")
	// ErrInvalidRange is returned when a range is specified with its start
	// later than its end.
	ErrInvalidRange = errors.New("invalid range")
)

const (
	MinYear = 1
	MaxYear = 9999
)

// CalendarDate represents a year, month and day. The year is stored in the
// top 16 bits, the month in the next 8 and the day in the lowest 8 so that
// CalendarDate values can be compared directly with <, <=, == etc. and used
// as map keys. The zero value is not a valid date.
type CalendarDate uint32

var (
	minDays = daysFromCivil(MinYear, 1, 1)
	maxDays = daysFromCivil(MaxYear, 12, 31)

	// MinDate and MaxDate are the earliest and latest representable dates,
	// arithmetic saturates at these values.
	MinDate = newCalendarDate(MinYear, 1, 1)
	MaxDate = newCalendarDate(MaxYear, 12, 31)
)

func newCalendarDate(year int, month Month, day int) CalendarDate {
	return CalendarDate(uint32(year)<<16 | uint32(month)<<8 | uint32(day))
}

// NewCalendarDate returns the CalendarDate for the specified year, month
// and day, or an error wrapping ErrInvalidCalendarDate if they do not
// denote a real date in the years MinYear to MaxYear.
func NewCalendarDate(year int, month Month, day int) (CalendarDate, error) {
	if year < MinYear || year > MaxYear {
		return 0, fmt.Errorf("year %d out of range %d-%d: %w", year, MinYear, MaxYear, ErrInvalidCalendarDate)
	}
	if !month.IsValid() {
		return 0, fmt.Errorf("month %d out of range 1-12: %w", month, ErrInvalidCalendarDate)
	}
	if day < 1 || day > DaysInMonth(year, month) {
		return 0, fmt.Errorf("day %d out of range for %v %d: %w", day, month, year, ErrInvalidCalendarDate)
	}
	return newCalendarDate(year, month, day), nil
}

// MustNewCalendarDate is like NewCalendarDate but panics on error.
func MustNewCalendarDate(year int, month Month, day int) CalendarDate {
	cd, err := NewCalendarDate(year, month, day)
	if err != nil {
		panic(err)
	}
	return cd
}

func fromDays(days int) CalendarDate {
	switch {
	case days < minDays:
		return MinDate
	case days > maxDays:
		return MaxDate
	}
	y, m, d := civilFromDays(days)
	return newCalendarDate(y, Month(m), d)
}

// Year returns the year.
func (cd CalendarDate) Year() int {
	return int(cd >> 16 & 0xffff)
}

// Month returns the month.
func (cd CalendarDate) Month() Month {
	return Month(cd >> 8 & 0xff)
}

// Day returns the day of the month.
func (cd CalendarDate) Day() int {
	return int(cd & 0xff)
}

// IsValid returns true if cd denotes a real date, ie. it was created by
// NewCalendarDate or by arithmetic on a valid date.
func (cd CalendarDate) IsValid() bool {
	_, err := NewCalendarDate(cd.Year(), cd.Month(), cd.Day())
	return err == nil
}

// String returns the date in YYYY-MM-DD format.
func (cd CalendarDate) String() string {
	return FormatISODate(cd)
}

func (cd CalendarDate) days() int {
	return daysFromCivil(cd.Year(), int(cd.Month()), cd.Day())
}

// DaysSince returns the number of days from other to cd, negative if
// other is later than cd.
func (cd CalendarDate) DaysSince(other CalendarDate) int {
	return cd.days() - other.days()
}

// DayOfYear returns the day of the year as 1-365 for non-leap years
// and 1-366 for leap years.
func (cd CalendarDate) DayOfYear() int {
	return cd.days() - daysFromCivil(cd.Year(), 1, 1) + 1
}

// Weekday returns the day of the week for cd.
func (cd CalendarDate) Weekday() Weekday {
	// 1970-01-01 was a Thursday.
	return Weekday(((cd.days()%7)+7+int(Thursday))%7)
}

// AddDays returns the date n days after cd, n may be negative.
func (cd CalendarDate) AddDays(n int) CalendarDate {
	return fromDays(cd.days() + n)
}

// AddWeeks returns the date n weeks after cd, n may be negative.
func (cd CalendarDate) AddWeeks(n int) CalendarDate {
	return cd.AddDays(n * 7)
}

// AddMonths returns the date n months after cd, n may be negative.
// If the day of the month does not exist in the resulting month it is
// clamped to the last day of that month, so Jan 31 plus one month is
// Feb 28 or Feb 29.
func (cd CalendarDate) AddMonths(n int) CalendarDate {
	total := cd.Year()*12 + int(cd.Month()) - 1 + n
	switch {
	case total < MinYear*12:
		return MinDate
	case total > MaxYear*12+11:
		return MaxDate
	}
	year, month := total/12, Month(total%12+1)
	return newCalendarDate(year, month, min(cd.Day(), DaysInMonth(year, month)))
}

// AddYears returns the date n years after cd, n may be negative.
// Feb 29 becomes Feb 28 in non-leap years.
func (cd CalendarDate) AddYears(n int) CalendarDate {
	return cd.AddMonths(n * 12)
}

// Tomorrow returns the following day.
func (cd CalendarDate) Tomorrow() CalendarDate {
	if cd.Day() < DaysInMonth(cd.Year(), cd.Month()) {
		return cd + 1
	}
	return cd.AddDays(1)
}

// Yesterday returns the previous day.
func (cd CalendarDate) Yesterday() CalendarDate {
	if cd.Day() > 1 {
		return cd - 1
	}
	return cd.AddDays(-1)
}

// StartOfMonth returns the first day of the month containing cd.
func (cd CalendarDate) StartOfMonth() CalendarDate {
	return newCalendarDate(cd.Year(), cd.Month(), 1)
}

// EndOfMonth returns the last day of the month containing cd.
func (cd CalendarDate) EndOfMonth() CalendarDate {
	return newCalendarDate(cd.Year(), cd.Month(), DaysInMonth(cd.Year(), cd.Month()))
}

// StartOfWeek returns the latest date on or before cd that falls on ws.
func (cd CalendarDate) StartOfWeek(ws WeekStart) CalendarDate {
	back := (int(cd.Weekday()) - int(ws) + 7) % 7
	return cd.AddDays(-back)
}

// Before returns true if cd is earlier than other.
func (cd CalendarDate) Before(other CalendarDate) bool {
	return cd < other
}

// After returns true if cd is later than other.
func (cd CalendarDate) After(other CalendarDate) bool {
	return cd > other
}

// SameMonth returns true if cd and other are in the same month of the
// same year.
func (cd CalendarDate) SameMonth(other CalendarDate) bool {
	return cd>>8 == other>>8
}

// CalendarDateList is a list of CalendarDate values.
type CalendarDateList []CalendarDate

// Contains returns true if d is in the list.
func (cdl CalendarDateList) Contains(d CalendarDate) bool {
	for _, cd := range cdl {
		if cd == d {
			return true
		}
	}
	return false
}

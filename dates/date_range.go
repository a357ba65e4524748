// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package dates

import (
	"fmt"
	"iter"
	"strings"
)

// DateRange represents a range of CalendarDate values, inclusive of the
// start and end dates. The from date is stored in the top 32 bits and the
// to date in the lower 32 bits so that ranges sort by their from date and
// then by their to date.
type DateRange uint64

func newDateRange(from, to CalendarDate) DateRange {
	return DateRange(from)<<32 | DateRange(to)
}

// NewDateRange returns a DateRange for the from/to dates. It returns an
// error wrapping ErrInvalidRange if from is later than to.
func NewDateRange(from, to CalendarDate) (DateRange, error) {
	if from > to {
		return 0, fmt.Errorf("%v is later than %v: %w", from, to, ErrInvalidRange)
	}
	return newDateRange(from, to), nil
}

// MustNewDateRange is like NewDateRange but panics on error.
func MustNewDateRange(from, to CalendarDate) DateRange {
	dr, err := NewDateRange(from, to)
	if err != nil {
		panic(err)
	}
	return dr
}

// From returns the first date in the range.
func (dr DateRange) From() CalendarDate {
	return CalendarDate(dr >> 32 & 0xffffffff)
}

// To returns the last date in the range.
func (dr DateRange) To() CalendarDate {
	return CalendarDate(dr & 0xffffffff)
}

// Include returns true if the specified date is within the range.
func (dr DateRange) Include(d CalendarDate) bool {
	return dr.From() <= d && d <= dr.To()
}

// NumDays returns the number of days in the range.
func (dr DateRange) NumDays() int {
	return dr.To().DaysSince(dr.From()) + 1
}

func (dr DateRange) String() string {
	return fmt.Sprintf("%s:%s", dr.From(), dr.To())
}

// Parse parses a range in the format 'YYYY-MM-DD:YYYY-MM-DD'. Either date
// may also be specified as YYYY-MM in which case the from date is
// the first day of that month and the to date the last day of that month.
func (dr *DateRange) Parse(val string) error {
	parts := strings.Split(val, ":")
	if len(parts) != 2 {
		return fmt.Errorf("invalid format, %q expected '<from>:<to>'", val)
	}
	from, err := ParseISODateOrMonth(parts[0])
	if err != nil {
		return fmt.Errorf("invalid from: %w", err)
	}
	to, err := ParseISODateOrMonth(parts[1])
	if err != nil {
		return fmt.Errorf("invalid to: %w", err)
	}
	if len(parts[1]) == len(isoMonthLayout) {
		to = to.EndOfMonth()
	}
	ndr, err := NewDateRange(from, to)
	if err != nil {
		return err
	}
	*dr = ndr
	return nil
}

// Dates returns an iterator that yields each date in the range.
func (dr DateRange) Dates() iter.Seq[CalendarDate] {
	to := dr.To()
	return func(yield func(CalendarDate) bool) {
		for td := dr.From(); td <= to; td = td.Tomorrow() {
			if !yield(td) {
				return
			}
			if td == MaxDate {
				return
			}
		}
	}
}

// MonthRange returns the range from the first day of the month containing
// from to the last day of the month containing to. It returns an error
// wrapping ErrInvalidRange if from is later than to.
func MonthRange(from, to CalendarDate) (DateRange, error) {
	if from > to {
		return 0, fmt.Errorf("month range %v is later than %v: %w", from, to, ErrInvalidRange)
	}
	return newDateRange(from.StartOfMonth(), to.EndOfMonth()), nil
}

// Months returns an iterator that yields the first day of every month
// touched by [from, to] in chronological order, including the months
// containing from and to. It yields nothing if from is later than to.
func Months(from, to CalendarDate) iter.Seq[CalendarDate] {
	return func(yield func(CalendarDate) bool) {
		mr, err := MonthRange(from, to)
		if err != nil {
			return
		}
		for m := from.StartOfMonth(); mr.Include(m); m = m.AddMonths(1) {
			if !yield(m) {
				return
			}
			if m.SameMonth(MaxDate) {
				return
			}
		}
	}
}

// MonthsInRange returns the first day of every month touched by [from, to]
// as per Months. It returns an error wrapping ErrInvalidRange if from is
// later than to.
func MonthsInRange(from, to CalendarDate) ([]CalendarDate, error) {
	mr, err := MonthRange(from, to)
	if err != nil {
		return nil, err
	}
	months := make([]CalendarDate, 0, monthsBetween(mr.From(), mr.To())+1)
	for m := range Months(from, to) {
		months = append(months, m)
	}
	return months, nil
}

func monthsBetween(from, to CalendarDate) int {
	return (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
}

// Months returns the first day of every month that the range touches.
func (dr DateRange) Months() []CalendarDate {
	months, _ := MonthsInRange(dr.From(), dr.To())
	return months
}

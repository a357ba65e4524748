// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package dates

import (
	"fmt"
	"time"
)

const isoMonthLayout = "2006-01"

// time of day layouts accepted after the 'T' in a full timestamp. Go's time
// parser accepts fractional seconds after the seconds field even when
// the layout does not include them.
var timeOfDayLayouts = []string{
	"15:04:05Z07:00",
	"15:04:05Z0700",
	"15:04:05",
	"15:04Z07:00",
	"15:04",
}

// ParseISODate parses a date in the canonical YYYY-MM-DD format. A full
// ISO 8601 timestamp such as 2021-02-01T10:30:00.000Z is also accepted in
// which case only the date portion is used: no time zone conversion is
// performed. Errors wrap ErrInvalidDateFormat. Dates that are well
// formed but do not exist, eg. 2021-02-30, are rejected rather than being
// normalized.
func ParseISODate(val string) (CalendarDate, error) {
	if len(val) < len(time.DateOnly) {
		return 0, fmt.Errorf("%q: expected YYYY-MM-DD: %w", val, ErrInvalidDateFormat)
	}
	date, rest := val[:len(time.DateOnly)], val[len(time.DateOnly):]
	if !isDigits(date[:4]) {
		return 0, fmt.Errorf("%q: expected a four digit year: %w", val, ErrInvalidDateFormat)
	}
	t, err := time.Parse(time.DateOnly, date)
	if err != nil {
		return 0, fmt.Errorf("%q: %v: %w", val, err, ErrInvalidDateFormat)
	}
	if len(rest) > 0 {
		if err := parseTimeOfDay(rest); err != nil {
			return 0, fmt.Errorf("%q: %v: %w", val, err, ErrInvalidDateFormat)
		}
	}
	cd, err := NewCalendarDate(t.Year(), Month(t.Month()), t.Day())
	if err != nil {
		return 0, fmt.Errorf("%q: %v: %w", val, err, ErrInvalidDateFormat)
	}
	return cd, nil
}

func isDigits(val string) bool {
	for i := range len(val) {
		if val[i] < '0' || val[i] > '9' {
			return false
		}
	}
	return true
}

func parseTimeOfDay(val string) error {
	if val[0] != 'T' && val[0] != 't' {
		return fmt.Errorf("unexpected trailing text %q", val)
	}
	val = val[1:]
	for _, layout := range timeOfDayLayouts {
		if _, err := time.Parse(layout, val); err == nil {
			return nil
		}
	}
	return fmt.Errorf("invalid time of day %q", val)
}

// ParseISOMonth parses a month in YYYY-MM format and returns the first
// day of that month. Errors wrap ErrInvalidDateFormat.
func ParseISOMonth(val string) (CalendarDate, error) {
	if len(val) != len(isoMonthLayout) || !isDigits(val[:4]) {
		return 0, fmt.Errorf("%q: expected YYYY-MM: %w", val, ErrInvalidDateFormat)
	}
	t, err := time.Parse(isoMonthLayout, val)
	if err != nil {
		return 0, fmt.Errorf("%q: %v: %w", val, err, ErrInvalidDateFormat)
	}
	cd, err := NewCalendarDate(t.Year(), Month(t.Month()), 1)
	if err != nil {
		return 0, fmt.Errorf("%q: %v: %w", val, err, ErrInvalidDateFormat)
	}
	return cd, nil
}

// ParseISODateOrMonth accepts either of the formats supported by
// ParseISODate or ParseISOMonth.
func ParseISODateOrMonth(val string) (CalendarDate, error) {
	if len(val) == len(isoMonthLayout) {
		return ParseISOMonth(val)
	}
	return ParseISODate(val)
}

// FormatISODate returns cd in YYYY-MM-DD format.
func FormatISODate(cd CalendarDate) string {
	return fmt.Sprintf("%04d-%02d-%02d", cd.Year(), cd.Month(), cd.Day())
}

// FormatISOMonth returns cd in YYYY-MM format.
func FormatISOMonth(cd CalendarDate) string {
	return fmt.Sprintf("%04d-%02d", cd.Year(), cd.Month())
}

// FormatISO returns cd as an ISO 8601 timestamp at midnight UTC,
// ie. YYYY-MM-DDT00:00:00.000Z, for use with timestamp typed fields.
func FormatISO(cd CalendarDate) string {
	return FormatISODate(cd) + "T00:00:00.000Z"
}

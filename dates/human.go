// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package dates

import (
	"strconv"
	"strings"
)

// Namer provides the locale specific names used for human readable dates.
type Namer interface {
	WeekdayName(Weekday) string
	MonthName(Month) string
	// Ordinal returns the day of the month as an ordinal, eg. 1st.
	Ordinal(day int) string
}

type english struct{}

// English is a Namer for English names with English ordinal suffixes.
var English Namer = english{}

func (english) WeekdayName(wd Weekday) string {
	return wd.String()
}

func (english) MonthName(m Month) string {
	return m.String()
}

func (english) Ordinal(day int) string {
	suffix := "th"
	switch day % 100 {
	case 11, 12, 13:
	default:
		switch day % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return strconv.Itoa(day) + suffix
}

// FormatHumanDate returns cd in long form, eg. "Monday, 1st February 2021"
// using names to obtain the weekday and month names and the day ordinal.
// English is used if names is nil. The result is intended for display
// and accessible labels only and is not parsed by this package.
func FormatHumanDate(cd CalendarDate, names Namer) string {
	if names == nil {
		names = English
	}
	var out strings.Builder
	out.WriteString(names.WeekdayName(cd.Weekday()))
	out.WriteString(", ")
	out.WriteString(names.Ordinal(cd.Day()))
	out.WriteByte(' ')
	out.WriteString(names.MonthName(cd.Month()))
	out.WriteByte(' ')
	out.WriteString(strconv.Itoa(cd.Year()))
	return out.String()
}

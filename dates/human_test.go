// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package dates_test

import (
	"fmt"
	"testing"

	"cloudeng.io/calendar/dates"
)

func TestOrdinal(t *testing.T) {
	for i, want := range []string{
		"", "1st", "2nd", "3rd", "4th", "5th", "6th", "7th", "8th", "9th", "10th",
		"11th", "12th", "13th", "14th", "15th", "16th", "17th", "18th", "19th", "20th",
		"21st", "22nd", "23rd", "24th", "25th", "26th", "27th", "28th", "29th", "30th",
		"31st",
	} {
		if i == 0 {
			continue
		}
		if got := dates.English.Ordinal(i); got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
	}
}

type numericNames struct{}

func (numericNames) WeekdayName(wd dates.Weekday) string { return fmt.Sprintf("D%d", wd) }
func (numericNames) MonthName(m dates.Month) string      { return fmt.Sprintf("M%d", m) }
func (numericNames) Ordinal(day int) string              { return fmt.Sprintf("%d.", day) }

func TestFormatHumanDate(t *testing.T) {
	for _, tc := range []struct {
		cd    dates.CalendarDate
		names dates.Namer
		want  string
	}{
		{newDate(2021, 2, 1), dates.English, "Monday, 1st February 2021"},
		{newDate(2021, 2, 22), dates.English, "Monday, 22nd February 2021"},
		{newDate(2021, 3, 13), nil, "Saturday, 13th March 2021"},
		{newDate(2024, 2, 29), nil, "Thursday, 29th February 2024"},
		{newDate(2021, 2, 1), numericNames{}, "D1, 1. M2 2021"},
	} {
		if got, want := dates.FormatHumanDate(tc.cd, tc.names), tc.want; got != want {
			t.Errorf("%v: got %v, want %v", tc.cd, got, want)
		}
	}
}

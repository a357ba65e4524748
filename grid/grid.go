// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package grid builds the fixed size week grids used to display a month.
//
// Every grid has exactly six weeks of seven days regardless of the length
// of the month or the day of the week it starts on. Leading and trailing
// cells belong to the adjacent months; callers distinguish them using
// CalendarDate.SameMonth. A fixed size gives a stable layout height
// across all months.
package grid

import (
	"iter"

	"cloudeng.io/calendar/dates"
)

const (
	DaysPerWeek   = 7
	WeeksPerMonth = 6
	Cells         = DaysPerWeek * WeeksPerMonth
)

// Week is a run of seven consecutive dates.
type Week [DaysPerWeek]dates.CalendarDate

// MonthGrid is the six week grid displayed for a month.
type MonthGrid [WeeksPerMonth]Week

// Build returns the MonthGrid for the month containing anchor with weeks
// starting on weekStart. The first cell is the latest date on or before the
// first of the month that falls on weekStart, which may be in the previous
// month, and the grid continues for 42 consecutive days.
func Build(anchor dates.CalendarDate, weekStart dates.WeekStart) MonthGrid {
	var mg MonthGrid
	day := anchor.StartOfMonth().StartOfWeek(weekStart)
	for w := range mg {
		for d := range mg[w] {
			mg[w][d] = day
			day = day.Tomorrow()
		}
	}
	return mg
}

// First returns the first date in the grid.
func (mg MonthGrid) First() dates.CalendarDate {
	return mg[0][0]
}

// Last returns the last date in the grid.
func (mg MonthGrid) Last() dates.CalendarDate {
	return mg[WeeksPerMonth-1][DaysPerWeek-1]
}

// Contains returns true if d is one of the dates in the grid.
func (mg MonthGrid) Contains(d dates.CalendarDate) bool {
	return mg.First() <= d && d <= mg.Last()
}

// Days returns an iterator over all 42 dates in the grid, week by week.
func (mg MonthGrid) Days() iter.Seq[dates.CalendarDate] {
	return func(yield func(dates.CalendarDate) bool) {
		for _, week := range mg {
			for _, day := range week {
				if !yield(day) {
					return
				}
			}
		}
	}
}

// Headers returns the days of the week in column order for weekStart.
func Headers(weekStart dates.WeekStart) [DaysPerWeek]dates.Weekday {
	var h [DaysPerWeek]dates.Weekday
	wd := weekStart
	for i := range h {
		h[i] = wd
		wd = wd.Next()
	}
	return h
}

// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import (
	"cloudeng.io/calendar/availability"
	"cloudeng.io/calendar/dates"
	"cloudeng.io/calendar/grid"
)

// Cell is a single day in a MonthView.
type Cell struct {
	Date  dates.CalendarDate
	State DayState
	// ID is the canonical YYYY-MM-DD form of Date.
	ID string
	// Label is the human readable form of Date, eg. "Monday, 1st February 2021".
	Label string
}

// MonthView contains everything required to render a single month.
type MonthView struct {
	// Month is the first day of the displayed month.
	Month dates.CalendarDate
	// ID is the canonical YYYY-MM form of Month.
	ID      string
	Headers [grid.DaysPerWeek]dates.Weekday
	Weeks   [grid.WeeksPerMonth][grid.DaysPerWeek]Cell
}

// Cells returns all 42 cells in display order.
func (mv MonthView) Cells() []Cell {
	cells := make([]Cell, 0, grid.Cells)
	for _, week := range mv.Weeks {
		cells = append(cells, week[:]...)
	}
	return cells
}

// MonthView returns the view of the month containing month.
func (m Model) MonthView(month dates.CalendarDate, weekStart dates.WeekStart, window availability.Window, now dates.CalendarDate) MonthView {
	month = month.StartOfMonth()
	mv := MonthView{
		Month:   month,
		ID:      dates.FormatISOMonth(month),
		Headers: grid.Headers(weekStart),
	}
	for w, week := range m.WeekGrid(month, weekStart) {
		for d, day := range week {
			mv.Weeks[w][d] = Cell{
				Date:  day,
				State: m.DayState(day, month, window, now),
				ID:    dates.FormatISODate(day),
				Label: dates.FormatHumanDate(day, m.opts.names),
			}
		}
	}
	return mv
}

// Views returns a MonthView for every month visible in displayRange.
func (m Model) Views(displayRange dates.DateRange, weekStart dates.WeekStart, window availability.Window, now dates.CalendarDate) []MonthView {
	months := m.VisibleMonths(displayRange)
	views := make([]MonthView, 0, len(months))
	for _, month := range months {
		views = append(views, m.MonthView(month, weekStart, window, now))
	}
	return views
}

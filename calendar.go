// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package calendar computes everything needed to display a month based
// date picker: which months are visible, the fixed six week grid for each
// month and the state of every day in it. It performs no rendering and
// never reads the system clock; the current date is always supplied by
// the caller.
package calendar

import (
	"cloudeng.io/calendar/availability"
	"cloudeng.io/calendar/dates"
	"cloudeng.io/calendar/grid"
)

// Option represents an option for configuring a Model.
type Option func(o *options)

type options struct {
	constraints availability.Constraints
	names       dates.Namer
}

// WithConstraints restricts the dates that may be selected beyond the
// availability window, eg. to weekdays only or to exclude specific dates.
func WithConstraints(c availability.Constraints) Option {
	return func(o *options) {
		o.constraints = c
	}
}

// WithNamer sets the names used for the human readable labels of each
// day. English is used by default.
func WithNamer(n dates.Namer) Option {
	return func(o *options) {
		o.names = n
	}
}

// Model computes the months, grids and day states for a calendar. A Model
// is immutable and may be shared by multiple goroutines.
type Model struct {
	opts options
}

// New returns a new Model.
func New(opts ...Option) Model {
	m := Model{opts: options{names: dates.English}}
	for _, fn := range opts {
		fn(&m.opts)
	}
	if m.opts.names == nil {
		m.opts.names = dates.English
	}
	return m
}

// Constraints returns the constraints configured for the model.
func (m Model) Constraints() availability.Constraints {
	return m.opts.constraints
}

// VisibleMonths returns the first day of each month to be displayed for
// displayRange, in chronological order.
func (m Model) VisibleMonths(displayRange dates.DateRange) []dates.CalendarDate {
	return displayRange.Months()
}

// WeekGrid returns the six week grid for the month containing month.
func (m Model) WeekGrid(month dates.CalendarDate, weekStart dates.WeekStart) grid.MonthGrid {
	return grid.Build(month, weekStart)
}

// DayState returns the state of date when displayed in the grid for
// displayedMonth.
func (m Model) DayState(date, displayedMonth dates.CalendarDate, window availability.Window, now dates.CalendarDate) DayState {
	ds := DayState{
		Today:   availability.IsToday(date, now),
		Weekend: availability.IsWeekendDay(date),
	}
	policy := availability.Policy{Window: window, Constraints: m.opts.constraints}
	switch {
	case !availability.IsSameMonth(date, displayedMonth):
		ds.Status = OutsideMonth
	case !policy.Selectable(date):
		ds.Status = Disabled
	default:
		ds.Status = Selectable
	}
	return ds
}

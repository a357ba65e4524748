// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package availability provides the predicates used to decide whether
// a day in a calendar can be selected. The current date is always passed
// explicitly.
package availability

import (
	"fmt"

	"cloudeng.io/calendar/dates"
)

// Window is a half-open range of dates, [Min, Max), within which dates
// may be selected.
type Window struct {
	Min dates.CalendarDate
	Max dates.CalendarDate
}

// NewWindow returns a Window for [start, end). An empty window, with
// start == end, is allowed. It returns an error wrapping
// dates.ErrInvalidRange if start is later than end.
func NewWindow(start, end dates.CalendarDate) (Window, error) {
	if start > end {
		return Window{}, fmt.Errorf("window start %v is later than %v: %w", start, end, dates.ErrInvalidRange)
	}
	return Window{Min: start, Max: end}, nil
}

// DefaultWindow returns the window [now, now + 1 year).
func DefaultWindow(now dates.CalendarDate) Window {
	return Window{Min: now, Max: now.AddYears(1)}
}

// Include returns true if min <= d < max.
func (w Window) Include(d dates.CalendarDate) bool {
	return w.Min <= d && d < w.Max
}

// Empty returns true if the window contains no dates.
func (w Window) Empty() bool {
	return w.Min >= w.Max
}

func (w Window) String() string {
	return fmt.Sprintf("[%v, %v)", w.Min, w.Max)
}

// IsSelectable returns true if d lies within the window.
func IsSelectable(d dates.CalendarDate, window Window) bool {
	return window.Include(d)
}

// IsDisabled returns true if d lies outside of DefaultWindow(now).
func IsDisabled(d, now dates.CalendarDate) bool {
	return !IsSelectable(d, DefaultWindow(now))
}

// IsToday returns true if d is now.
func IsToday(d, now dates.CalendarDate) bool {
	return d == now
}

// IsSameDay returns true if a and b are the same date.
func IsSameDay(a, b dates.CalendarDate) bool {
	return a == b
}

// IsSameMonth returns true if a and b are in the same month of the same year.
func IsSameMonth(a, b dates.CalendarDate) bool {
	return a.SameMonth(b)
}

// IsWeekendDay returns true if d is a Saturday or Sunday regardless of
// the day a displayed week starts on.
func IsWeekendDay(d dates.CalendarDate) bool {
	return d.Weekday().IsWeekend()
}

// Policy combines a Window with additional Constraints.
type Policy struct {
	Window      Window
	Constraints Constraints
}

// Selectable returns true if d is within the window and satisfies the
// constraints.
func (p Policy) Selectable(d dates.CalendarDate) bool {
	return IsSelectable(d, p.Window) && p.Constraints.Include(d)
}

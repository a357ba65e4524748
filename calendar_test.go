// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar_test

import (
	"fmt"
	"slices"
	"testing"

	"cloudeng.io/calendar"
	"cloudeng.io/calendar/availability"
	"cloudeng.io/calendar/dates"
	"cloudeng.io/calendar/grid"
)

func newDate(y, m, d int) dates.CalendarDate {
	return dates.MustNewCalendarDate(y, dates.Month(m), d)
}

func TestVisibleMonths(t *testing.T) {
	m := calendar.New()
	for i, tc := range []struct {
		from, to dates.CalendarDate
		months   []dates.CalendarDate
	}{
		{newDate(2021, 1, 15), newDate(2021, 3, 3),
			[]dates.CalendarDate{newDate(2021, 1, 1), newDate(2021, 2, 1), newDate(2021, 3, 1)}},
		{newDate(2021, 2, 10), newDate(2021, 2, 10),
			[]dates.CalendarDate{newDate(2021, 2, 1)}},
		{newDate(2021, 12, 31), newDate(2022, 1, 1),
			[]dates.CalendarDate{newDate(2021, 12, 1), newDate(2022, 1, 1)}},
	} {
		dr := dates.MustNewDateRange(tc.from, tc.to)
		if got, want := m.VisibleMonths(dr), tc.months; !slices.Equal(got, want) {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
	}
}

func TestWeekGrid(t *testing.T) {
	m := calendar.New()
	mg := m.WeekGrid(newDate(2021, 2, 14), dates.Monday)
	if got, want := mg, grid.Build(newDate(2021, 2, 1), dates.Monday); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestDayState(t *testing.T) {
	now := newDate(2021, 2, 3)
	month := newDate(2021, 2, 1)
	window := availability.Window{Min: now, Max: newDate(2021, 3, 3)}
	m := calendar.New()

	for _, tc := range []struct {
		date  dates.CalendarDate
		state calendar.DayState
		str   string
	}{
		{newDate(2021, 2, 3), calendar.DayState{Status: calendar.Selectable, Today: true}, "selectable,today"},
		{newDate(2021, 2, 4), calendar.DayState{Status: calendar.Selectable}, "selectable"},
		{newDate(2021, 2, 6), calendar.DayState{Status: calendar.Selectable, Weekend: true}, "selectable,weekend"},
		{newDate(2021, 2, 2), calendar.DayState{Status: calendar.Disabled}, "disabled"},
		// Outside of the displayed month and the window.
		{newDate(2021, 1, 31), calendar.DayState{Status: calendar.OutsideMonth, Weekend: true}, "outside-month,weekend"},
		// Outside of the displayed month but within the window.
		{newDate(2021, 3, 1), calendar.DayState{Status: calendar.OutsideMonth}, "outside-month"},
	} {
		ds := m.DayState(tc.date, month, window, now)
		if got, want := ds, tc.state; got != want {
			t.Errorf("%v: got %v, want %v", tc.date, got, want)
		}
		if got, want := ds.String(), tc.str; got != want {
			t.Errorf("%v: got %v, want %v", tc.date, got, want)
		}
		if got, want := ds.Interactive(), tc.state.Status == calendar.Selectable; got != want {
			t.Errorf("%v: got %v, want %v", tc.date, got, want)
		}
	}

	// Today is informational only.
	ds := m.DayState(now, month, availability.Window{Min: now.Tomorrow(), Max: newDate(2021, 3, 1)}, now)
	if got, want := ds.String(), "disabled,today"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestDayStateConstraints(t *testing.T) {
	now := newDate(2021, 12, 1)
	month := now
	window := availability.DefaultWindow(now)
	m := calendar.New(calendar.WithConstraints(availability.Constraints{
		Weekdays: true,
		Excluded: dates.CalendarDateList{newDate(2021, 12, 24)},
	}))
	for _, tc := range []struct {
		date   dates.CalendarDate
		status calendar.Status
	}{
		{newDate(2021, 12, 23), calendar.Selectable},
		{newDate(2021, 12, 24), calendar.Disabled},
		{newDate(2021, 12, 25), calendar.Disabled},
		{newDate(2022, 1, 3), calendar.OutsideMonth},
	} {
		if got, want := m.DayState(tc.date, month, window, now).Status, tc.status; got != want {
			t.Errorf("%v: got %v, want %v", tc.date, got, want)
		}
	}
}

type shortNames struct{}

func (shortNames) WeekdayName(wd dates.Weekday) string { return wd.String()[:3] }
func (shortNames) MonthName(m dates.Month) string      { return m.String()[:3] }
func (shortNames) Ordinal(day int) string              { return fmt.Sprintf("%d", day) }

func TestMonthView(t *testing.T) {
	now := newDate(2021, 2, 3)
	m := calendar.New()
	mv := m.MonthView(newDate(2021, 2, 17), dates.Monday, availability.DefaultWindow(now), now)
	if got, want := mv.Month, newDate(2021, 2, 1); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := mv.ID, "2021-02"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := mv.Headers[0], dates.Monday; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	cells := mv.Cells()
	if got, want := len(cells), grid.Cells; got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
	first := cells[0]
	if got, want := first.ID, "2021-02-01"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := first.Label, "Monday, 1st February 2021"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := first.State.Status, calendar.Disabled; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := cells[2].State.String(), "selectable,today"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	last := cells[len(cells)-1]
	if got, want := last.ID, "2021-03-14"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := last.State.Status, calendar.OutsideMonth; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	m = calendar.New(calendar.WithNamer(shortNames{}))
	mv = m.MonthView(newDate(2021, 2, 17), dates.Monday, availability.DefaultWindow(now), now)
	if got, want := mv.Weeks[0][0].Label, "Mon, 1 Feb 2021"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestViews(t *testing.T) {
	now := newDate(2021, 1, 20)
	m := calendar.New()
	dr := dates.MustNewDateRange(newDate(2021, 1, 15), newDate(2021, 3, 3))
	views := m.Views(dr, dates.Sunday, availability.DefaultWindow(now), now)
	if got, want := len(views), 3; got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i, id := range []string{"2021-01", "2021-02", "2021-03"} {
		if got, want := views[i].ID, id; got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
		n := 0
		for _, c := range views[i].Cells() {
			if c.State.Status != calendar.OutsideMonth {
				n++
			}
		}
		if got, want := n, views[i].Month.EndOfMonth().Day(); got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
	}
}

func ExampleModel_MonthView() {
	now := dates.MustNewCalendarDate(2021, 2, 3)
	m := calendar.New()
	mv := m.MonthView(now, dates.Monday, availability.DefaultWindow(now), now)
	for _, cell := range mv.Weeks[0] {
		fmt.Printf("%v %v\n", cell.ID, cell.State)
	}
	// Output:
	// 2021-02-01 disabled
	// 2021-02-02 disabled
	// 2021-02-03 selectable,today
	// 2021-02-04 selectable
	// 2021-02-05 selectable
	// 2021-02-06 selectable,weekend
	// 2021-02-07 selectable,weekend
}

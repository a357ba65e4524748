// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import (
	"strings"
)

// Status is the primary state of a day in a displayed month.
type Status int

const (
	// Selectable days are within the displayed month and may be chosen.
	Selectable Status = iota
	// Disabled days are within the displayed month but may not be chosen.
	Disabled
	// OutsideMonth days belong to an adjacent month and are only shown
	// to fill out the grid.
	OutsideMonth
)

func (s Status) String() string {
	switch s {
	case Selectable:
		return "selectable"
	case Disabled:
		return "disabled"
	case OutsideMonth:
		return "outside-month"
	}
	return "unknown"
}

// DayState is the state of a single cell in a month grid. Status is
// determined with OutsideMonth taking precedence over Disabled and
// Disabled over Selectable. Today and Weekend are informational and
// never affect whether a day may be chosen.
type DayState struct {
	Status  Status
	Today   bool
	Weekend bool
}

// Interactive returns true if the day may be chosen.
func (ds DayState) Interactive() bool {
	return ds.Status == Selectable
}

// String returns the status followed by any modifiers, eg.
// "selectable,today" or "disabled,weekend".
func (ds DayState) String() string {
	var out strings.Builder
	out.WriteString(ds.Status.String())
	if ds.Today {
		out.WriteString(",today")
	}
	if ds.Weekend {
		out.WriteString(",weekend")
	}
	return out.String()
}

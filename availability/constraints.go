// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package availability

import (
	"strings"

	"cloudeng.io/calendar/dates"
)

// Constraints represents constraints on which days may be selected, such
// as weekdays only or a set of excluded dates. Excluded dates take
// precedence over weekdays and weekends.
type Constraints struct {
	Weekdays bool                   `yaml:"weekdays" cmd:"if true, include weekdays"`
	Weekends bool                   `yaml:"weekends" cmd:"if true, include weekends"`
	Excluded dates.CalendarDateList `yaml:"excluded,flow" cmd:"dates that can never be selected"`
}

func (dc Constraints) String() string {
	var out strings.Builder
	if len(dc.Excluded) > 0 {
		out.WriteString("excluding: ")
		for i, d := range dc.Excluded {
			if i > 0 {
				out.WriteString(", ")
			}
			out.WriteString(d.String())
		}
		out.WriteString(": ")
	}
	switch {
	case dc.Weekdays && dc.Weekends:
		out.WriteString("everyday")
	case !dc.Weekdays && !dc.Weekends:
		out.WriteString("any day")
	case dc.Weekdays:
		out.WriteString("weekdays only")
	case dc.Weekends:
		out.WriteString("weekends only")
	}
	return out.String()
}

// Include returns true if the given date satisfies the constraints.
// Excluded dates are evaluated before weekdays and weekends. The zero
// value of Constraints includes all dates, as does setting both Weekdays
// and Weekends.
func (dc Constraints) Include(d dates.CalendarDate) bool {
	if dc.Excluded.Contains(d) {
		return false
	}
	switch {
	case dc.Weekdays && dc.Weekends:
		return true
	case dc.Weekdays:
		return !d.Weekday().IsWeekend()
	case dc.Weekends:
		return d.Weekday().IsWeekend()
	}
	return true
}

// Empty returns true if the constraints include all dates.
func (dc Constraints) Empty() bool {
	return dc.Weekdays == dc.Weekends && len(dc.Excluded) == 0
}

// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package dates

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Weekday as an int, Sunday is 0 and Saturday is 6.
type Weekday time.Weekday

const (
	Sunday Weekday = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

// WeekStart is the day of the week that is displayed as the first
// column of a week.
type WeekStart = Weekday

var weekdays = []string{"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday"}

func (wd Weekday) String() string {
	return time.Weekday(wd).String()
}

// IsValid returns true if wd is in the range Sunday to Saturday.
func (wd Weekday) IsValid() bool {
	return wd >= Sunday && wd <= Saturday
}

// IsWeekend returns true for Saturday and Sunday.
func (wd Weekday) IsWeekend() bool {
	return wd == Saturday || wd == Sunday
}

// Next returns the following day of the week, Saturday wraps to Sunday.
func (wd Weekday) Next() Weekday {
	return (wd + 1) % 7
}

// ParseWeekday parses a weekday as a digit in the range 0-6 (Sunday is 0)
// or as a name or prefix of at least two letters of a name, in either
// case, such as "mo", "Mon" or "MONDAY". Prefixes that match more than
// one day are rejected.
func ParseWeekday(val string) (Weekday, error) {
	if n, err := strconv.Atoi(val); err == nil {
		if n < 0 || n > 6 {
			return 0, fmt.Errorf("invalid weekday: %d", n)
		}
		return Weekday(n), nil
	}
	lc := strings.ToLower(strings.TrimSpace(val))
	if len(lc) < 2 {
		return 0, fmt.Errorf("invalid weekday: %q", val)
	}
	found := -1
	for i, name := range weekdays {
		if !strings.HasPrefix(name, lc) {
			continue
		}
		if found >= 0 {
			return 0, fmt.Errorf("ambiguous weekday: %q", val)
		}
		found = i
	}
	if found < 0 {
		return 0, fmt.Errorf("invalid weekday: %q", val)
	}
	return Weekday(found), nil
}

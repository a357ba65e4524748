// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package dates

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// MarshalText implements encoding.TextMarshaler using the YYYY-MM-DD format.
func (cd CalendarDate) MarshalText() ([]byte, error) {
	if !cd.IsValid() {
		return nil, fmt.Errorf("%d: %w", uint32(cd), ErrInvalidCalendarDate)
	}
	return []byte(FormatISODate(cd)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler as per ParseISODate.
func (cd *CalendarDate) UnmarshalText(text []byte) error {
	d, err := ParseISODate(string(text))
	if err != nil {
		return err
	}
	*cd = d
	return nil
}

// MarshalYAML implements yaml.Marshaler using the YYYY-MM-DD format.
func (cd CalendarDate) MarshalYAML() (any, error) {
	if !cd.IsValid() {
		return nil, fmt.Errorf("%d: %w", uint32(cd), ErrInvalidCalendarDate)
	}
	return FormatISODate(cd), nil
}

// UnmarshalYAML implements yaml.Unmarshaler as per ParseISODate.
func (cd *CalendarDate) UnmarshalYAML(value *yaml.Node) error {
	d, err := ParseISODate(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*cd = d
	return nil
}

// MarshalYAML implements yaml.Marshaler using the lower case day name.
func (wd Weekday) MarshalYAML() (any, error) {
	if !wd.IsValid() {
		return nil, fmt.Errorf("invalid weekday: %d", int(wd))
	}
	return strings.ToLower(wd.String()), nil
}

// UnmarshalYAML implements yaml.Unmarshaler as per ParseWeekday.
func (wd *Weekday) UnmarshalYAML(value *yaml.Node) error {
	d, err := ParseWeekday(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*wd = d
	return nil
}

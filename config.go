// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import (
	"context"
	"fmt"

	"cloudeng.io/calendar/availability"
	"cloudeng.io/calendar/dates"
	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/cmdyaml"
	"cloudeng.io/errors"
)

// WindowConfig specifies an availability window in a Config.
type WindowConfig struct {
	From dates.CalendarDate `yaml:"from" cmd:"first date that may be selected"`
	To   dates.CalendarDate `yaml:"to" cmd:"first date after from that may not be selected"`
}

// Config represents the YAML configuration for a calendar, eg:
//
//	week_start: monday
//	window:
//	  from: 2021-01-01
//	  to: 2022-01-01
//	constraints:
//	  weekdays: true
//	  excluded: [2021-12-24, 2021-12-31]
//	logging:
//	  level: 2
type Config struct {
	WeekStart   dates.WeekStart          `yaml:"week_start" cmd:"the day that each displayed week starts on"`
	Window      *WindowConfig            `yaml:"window,omitempty" cmd:"the selectable dates, defaults to one year starting today"`
	Constraints availability.Constraints `yaml:"constraints,omitempty" cmd:"additional constraints on the selectable dates"`
	Logging     cmdutil.LoggingConfig    `yaml:"logging,omitempty" cmd:"logging configuration"`
}

// ParseConfig parses the supplied YAML and validates the result.
func ParseConfig(spec []byte) (Config, error) {
	var cfg Config
	if err := cmdyaml.ParseConfigStrict(spec, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

// ParseConfigFile reads and parses the named YAML file.
func ParseConfigFile(ctx context.Context, filename string) (Config, error) {
	var cfg Config
	if err := cmdyaml.ParseConfigFileStrict(ctx, filename, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%v: %w", filename, err)
	}
	return cfg, nil
}

// Validate reports all of the problems found in the configuration.
func (c Config) Validate() error {
	var errs errors.M
	if !c.WeekStart.IsValid() {
		errs.Append(fmt.Errorf("week_start: %d is not a day of the week", int(c.WeekStart)))
	}
	if w := c.Window; w != nil {
		if !w.From.IsValid() {
			errs.Append(fmt.Errorf("window: from: %w", dates.ErrInvalidCalendarDate))
		}
		if !w.To.IsValid() {
			errs.Append(fmt.Errorf("window: to: %w", dates.ErrInvalidCalendarDate))
		}
		if _, err := availability.NewWindow(w.From, w.To); err != nil {
			errs.Append(fmt.Errorf("window: %w", err))
		}
	}
	for _, d := range c.Constraints.Excluded {
		if !d.IsValid() {
			errs.Append(fmt.Errorf("constraints: excluded: %w", dates.ErrInvalidCalendarDate))
		}
	}
	return errs.Err()
}

// SelectableWindow returns the configured availability window or
// availability.DefaultWindow(now) if none is configured.
func (c Config) SelectableWindow(now dates.CalendarDate) availability.Window {
	if c.Window == nil {
		return availability.DefaultWindow(now)
	}
	return availability.Window{Min: c.Window.From, Max: c.Window.To}
}

// Model returns a Model for the configuration.
func (c Config) Model(opts ...Option) Model {
	return New(append([]Option{WithConstraints(c.Constraints)}, opts...)...)
}

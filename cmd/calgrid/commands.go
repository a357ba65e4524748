// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"cloudeng.io/calendar"
	"cloudeng.io/calendar/availability"
	"cloudeng.io/calendar/dates"
	"cloudeng.io/cmdutil"
	"cloudeng.io/logging/ctxlog"
	"gopkg.in/yaml.v3"
)

// CommonFlags are the flags shared by all commands.
type CommonFlags struct {
	cmdutil.LoggingFlags
	Config    string `subcmd:"config,,'YAML configuration file, see cloudeng.io/calendar.Config'"`
	WeekStart string `subcmd:"week-start,,'the day that weeks start on, eg. monday or sunday, overrides the configuration file'"`
	Today     string `subcmd:"today,,'the current date as YYYY-MM-DD, defaults to the local date'"`
	From      string `subcmd:"from,,'the first selectable date, defaults to today'"`
	To        string `subcmd:"to,,'the first date after --from that may not be selected, defaults to one year after --from'"`
}

// MonthFlags are the flags for the month command.
type MonthFlags struct {
	CommonFlags
	Labels bool `subcmd:"labels,false,'list the label of each selectable day after the grid'"`
}

type settings struct {
	model     calendar.Model
	weekStart dates.WeekStart
	window    availability.Window
	now       dates.CalendarDate
}

func dateFromTime(t time.Time) dates.CalendarDate {
	return dates.MustNewCalendarDate(t.Year(), dates.Month(t.Month()), t.Day())
}

func (cf *CommonFlags) loadConfig(ctx context.Context) (calendar.Config, error) {
	if len(cf.Config) == 0 {
		return calendar.Config{WeekStart: dates.Monday}, nil
	}
	return calendar.ParseConfigFile(ctx, cf.Config)
}

// resolve combines the configuration file, if any, with the command line
// flags. The returned function must be called to release the logger.
func (cf *CommonFlags) resolve(ctx context.Context, clock time.Time) (context.Context, settings, func(), error) {
	cfg, err := cf.loadConfig(ctx)
	if err != nil {
		return ctx, settings{}, nil, err
	}
	lc := cf.LoggingConfig()
	if len(cf.Config) > 0 && cfg.Logging != (cmdutil.LoggingConfig{}) {
		lc = cfg.Logging
	}
	logger, err := lc.NewLogger()
	if err != nil {
		return ctx, settings{}, nil, err
	}
	done := func() { logger.Close() }
	ctx = ctxlog.Context(ctx, logger.Logger)

	s, err := cf.settings(cfg, clock)
	if err != nil {
		done()
		return ctx, settings{}, nil, err
	}
	ctxlog.Logger(ctx).Debug("settings",
		"config", cf.Config,
		"week_start", s.weekStart.String(),
		"today", s.now.String(),
		"window", s.window.String(),
		"constraints", cfg.Constraints.String())
	return ctx, s, done, nil
}

func (cf *CommonFlags) settings(cfg calendar.Config, clock time.Time) (settings, error) {
	s := settings{
		model:     cfg.Model(),
		weekStart: cfg.WeekStart,
		now:       dateFromTime(clock),
	}
	var err error
	if len(cf.WeekStart) > 0 {
		if s.weekStart, err = dates.ParseWeekday(cf.WeekStart); err != nil {
			return s, fmt.Errorf("--week-start: %w", err)
		}
	}
	if len(cf.Today) > 0 {
		if s.now, err = dates.ParseISODate(cf.Today); err != nil {
			return s, fmt.Errorf("--today: %w", err)
		}
	}
	window := cfg.SelectableWindow(s.now)
	if len(cf.From) > 0 {
		from, err := dates.ParseISODate(cf.From)
		if err != nil {
			return s, fmt.Errorf("--from: %w", err)
		}
		window = availability.DefaultWindow(from)
	}
	if len(cf.To) > 0 {
		if window.Max, err = dates.ParseISODate(cf.To); err != nil {
			return s, fmt.Errorf("--to: %w", err)
		}
	}
	if s.window, err = availability.NewWindow(window.Min, window.Max); err != nil {
		return s, err
	}
	return s, nil
}

func month(ctx context.Context, values interface{}, args []string) error {
	fv := values.(*MonthFlags)
	ctx, s, done, err := fv.resolve(ctx, time.Now())
	if err != nil {
		return err
	}
	defer done()
	anchor, err := dates.ParseISODateOrMonth(args[0])
	if err != nil {
		return err
	}
	return writeMonth(ctx, os.Stdout, s, anchor, fv.Labels)
}

func writeMonth(ctx context.Context, out io.Writer, s settings, anchor dates.CalendarDate, labels bool) error {
	mv := s.model.MonthView(anchor, s.weekStart, s.window, s.now)
	ctxlog.Logger(ctx).Info("month", "month", mv.ID)
	if _, err := fmt.Fprintln(out, renderMonth(mv)); err != nil {
		return err
	}
	if !labels {
		return nil
	}
	for _, cell := range mv.Cells() {
		if !cell.State.Interactive() {
			continue
		}
		if _, err := fmt.Fprintf(out, "%v: %v\n", cell.ID, cell.Label); err != nil {
			return err
		}
	}
	return nil
}

func months(ctx context.Context, values interface{}, args []string) error {
	fv := values.(*CommonFlags)
	ctx, s, done, err := fv.resolve(ctx, time.Now())
	if err != nil {
		return err
	}
	defer done()
	from, err := dates.ParseISODateOrMonth(args[0])
	if err != nil {
		return err
	}
	to, err := dates.ParseISODateOrMonth(args[1])
	if err != nil {
		return err
	}
	return writeMonths(ctx, os.Stdout, s, from, to)
}

func writeMonths(ctx context.Context, out io.Writer, s settings, from, to dates.CalendarDate) error {
	dr, err := dates.NewDateRange(from, to)
	if err != nil {
		return err
	}
	visible := s.model.VisibleMonths(dr)
	ctxlog.Logger(ctx).Info("months", "range", dr.String(), "months", len(visible))
	for _, m := range visible {
		if _, err := fmt.Fprintln(out, dates.FormatISOMonth(m)); err != nil {
			return err
		}
	}
	return nil
}

type dayReport struct {
	Date        dates.CalendarDate `yaml:"date"`
	Timestamp   string             `yaml:"timestamp"`
	Month       string             `yaml:"month"`
	Label       string             `yaml:"label"`
	Weekday     dates.Weekday      `yaml:"weekday"`
	DayOfYear   int                `yaml:"day_of_year"`
	State       string             `yaml:"state"`
	Interactive bool               `yaml:"interactive"`
	Window      string             `yaml:"window"`
	Constraints string             `yaml:"constraints"`
}

func day(ctx context.Context, values interface{}, args []string) error {
	fv := values.(*CommonFlags)
	ctx, s, done, err := fv.resolve(ctx, time.Now())
	if err != nil {
		return err
	}
	defer done()
	date, err := dates.ParseISODate(args[0])
	if err != nil {
		return err
	}
	return writeDay(ctx, os.Stdout, s, date)
}

func writeDay(ctx context.Context, out io.Writer, s settings, date dates.CalendarDate) error {
	state := s.model.DayState(date, date, s.window, s.now)
	ctxlog.Logger(ctx).Info("day", "date", date.String(), "state", state.String())
	report := dayReport{
		Date:        date,
		Timestamp:   dates.FormatISO(date),
		Month:       dates.FormatISOMonth(date),
		Label:       dates.FormatHumanDate(date, dates.English),
		Weekday:     date.Weekday(),
		DayOfYear:   date.DayOfYear(),
		State:       state.String(),
		Interactive: state.Interactive(),
		Window:      s.window.String(),
		Constraints: s.model.Constraints().String(),
	}
	buf, err := yaml.Marshal(report)
	if err != nil {
		return err
	}
	_, err = out.Write(buf)
	return err
}

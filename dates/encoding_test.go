// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package dates_test

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"cloudeng.io/calendar/dates"
	"gopkg.in/yaml.v3"
)

type encoded struct {
	When  dates.CalendarDate `yaml:"when" json:"when"`
	Start dates.Weekday      `yaml:"start" json:"-"`
}

func TestYAML(t *testing.T) {
	var e encoded
	if err := yaml.Unmarshal([]byte("when: 2021-02-01\nstart: monday\n"), &e); err != nil {
		t.Fatal(err)
	}
	if got, want := e.When, newDate(2021, 2, 1); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := e.Start, dates.Monday; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	out, err := yaml.Marshal(e)
	if err != nil {
		t.Fatal(err)
	}
	if got := string(out); !strings.Contains(got, "2021-02-01") || !strings.Contains(got, "start: monday") {
		t.Errorf("unexpected output: %q", got)
	}
	var e2 encoded
	if err := yaml.Unmarshal(out, &e2); err != nil {
		t.Fatal(err)
	}
	if got, want := e2, e; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	err = yaml.Unmarshal([]byte("when: 2021-02-30\n"), &e)
	if !errors.Is(err, dates.ErrInvalidDateFormat) {
		t.Errorf("unexpected or missing error: %v", err)
	}
	if err := yaml.Unmarshal([]byte("start: someday\n"), &e); err == nil || !strings.Contains(err.Error(), "someday") {
		t.Errorf("unexpected or missing error: %v", err)
	}
	if _, err := yaml.Marshal(encoded{}); !errors.Is(err, dates.ErrInvalidCalendarDate) {
		t.Errorf("unexpected or missing error: %v", err)
	}
}

func TestText(t *testing.T) {
	e := encoded{When: newDate(2024, 2, 29)}
	buf, err := json.Marshal(e)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(buf), `{"when":"2024-02-29"}`; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	var e2 encoded
	if err := json.Unmarshal(buf, &e2); err != nil {
		t.Fatal(err)
	}
	if got, want := e2.When, e.When; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if err := json.Unmarshal([]byte(`{"when":"2023-02-29"}`), &e2); !errors.Is(err, dates.ErrInvalidDateFormat) {
		t.Errorf("unexpected or missing error: %v", err)
	}
}

// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command calgrid displays calendar month grids and the state of
// individual days as computed by cloudeng.io/calendar.
package main

import (
	"context"

	"cloudeng.io/cmdutil/subcmd"
)

const cmdSpec = `name: calgrid
summary: display calendar month grids and day states
commands:
  - name: month
    summary: display the grid for a month with each day styled by its state
    arguments:
      - <YYYY-MM|YYYY-MM-DD>
  - name: months
    summary: list the months that are displayed for a range of dates
    arguments:
      - <from>
      - <to>
  - name: day
    summary: display the state and formatted forms of a single date as YAML
    arguments:
      - <YYYY-MM-DD>
`

func cli() *subcmd.CommandSetYAML {
	cmdSet := subcmd.MustFromYAML(cmdSpec)
	cmdSet.Set("month").MustRunnerAndFlags(month,
		subcmd.MustRegisteredFlagSet(&MonthFlags{}))
	cmdSet.Set("months").MustRunnerAndFlags(months,
		subcmd.MustRegisteredFlagSet(&CommonFlags{}))
	cmdSet.Set("day").MustRunnerAndFlags(day,
		subcmd.MustRegisteredFlagSet(&CommonFlags{}))
	return cmdSet
}

func main() {
	subcmd.Dispatch(context.Background(), cli())
}

// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"cloudeng.io/calendar"
	"github.com/charmbracelet/lipgloss"
)

const cellWidth = 2

var (
	colorTitle    = lipgloss.Color("#89b4fa")
	colorText     = lipgloss.Color("#cdd6f4")
	colorWeekend  = lipgloss.Color("#fab387")
	colorDisabled = lipgloss.Color("#f38ba8")
	colorOutside  = lipgloss.Color("#585b70")
	colorHeader   = lipgloss.Color("#a6adc8")
)

var (
	titleStyle    = lipgloss.NewStyle().Foreground(colorTitle).Bold(true).Align(lipgloss.Center)
	headerStyle   = lipgloss.NewStyle().Foreground(colorHeader).Bold(true)
	selectStyle   = lipgloss.NewStyle().Foreground(colorText)
	weekendStyle  = lipgloss.NewStyle().Foreground(colorWeekend)
	disabledStyle = lipgloss.NewStyle().Foreground(colorDisabled).Faint(true)
	outsideStyle  = lipgloss.NewStyle().Foreground(colorOutside)
)

func cellStyle(state calendar.DayState) lipgloss.Style {
	var style lipgloss.Style
	switch state.Status {
	case calendar.OutsideMonth:
		style = outsideStyle
	case calendar.Disabled:
		style = disabledStyle
	default:
		style = selectStyle
		if state.Weekend {
			style = weekendStyle
		}
	}
	if state.Today {
		style = style.Reverse(true).Bold(true)
	}
	return style
}

// renderMonth returns the month as a title, a row of column headers
// and one row per week.
func renderMonth(mv calendar.MonthView) string {
	width := len(mv.Headers)*(cellWidth+1) - 1
	lines := make([]string, 0, len(mv.Weeks)+2)
	title := fmt.Sprintf("%v %d", mv.Month.Month(), mv.Month.Year())
	lines = append(lines, titleStyle.Width(width).Render(title))

	headers := make([]string, len(mv.Headers))
	for i, wd := range mv.Headers {
		headers[i] = headerStyle.Render(wd.String()[:cellWidth])
	}
	lines = append(lines, strings.Join(headers, " "))

	for _, week := range mv.Weeks {
		cells := make([]string, len(week))
		for i, cell := range week {
			cells[i] = cellStyle(cell.State).Render(fmt.Sprintf("%*d", cellWidth, cell.Date.Day()))
		}
		lines = append(lines, strings.Join(cells, " "))
	}
	return strings.Join(lines, "\n")
}

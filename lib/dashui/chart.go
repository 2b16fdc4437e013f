// Copyright 2026 The Embryotech Authors
// SPDX-License-Identifier: Apache-2.0

package dashui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/embryotech/console/lib/reading"
)

// partialBlocks are the eighth-height block glyphs used for the top
// cell of a column, giving sub-row resolution without plotting
// libraries.
var partialBlocks = []rune("▁▂▃▄▅▆▇█")

// RenderChart renders a metric series as a column chart. width and
// height bound the full rendering including the title row, the y-axis
// gutter, and the x-axis label row. The most recent points that fit
// the width are shown; older points scroll off the left edge, matching
// how the readings themselves are windowed.
//
// Each column's top cell uses the metric's line color; the body below
// uses the dimmer fill color, the terminal analogue of a translucent
// area fill.
func RenderChart(series reading.Series, width, height int, theme Theme) string {
	titleStyle := lipgloss.NewStyle().Foreground(theme.LineColor(series.Metric)).Bold(true)
	faint := lipgloss.NewStyle().Foreground(theme.FaintText)

	if height < 5 || width < 12 {
		return titleStyle.Render(series.Title)
	}

	plotHeight := height - 2 // title row and x-axis label row
	if len(series.Values) == 0 {
		lines := []string{titleStyle.Render(series.Title)}
		for row := 0; row < plotHeight; row++ {
			lines = append(lines, "")
		}
		lines = append(lines, faint.Render("sem dados"))
		return strings.Join(lines, "\n")
	}

	low, high := valueBounds(series.Values)
	gutter := axisGutterWidth(low, high)
	plotWidth := width - gutter
	if plotWidth < 1 {
		plotWidth = 1
	}

	// One column plus one gap per point; the newest points win when
	// the window is narrower than the series.
	points := plotWidth / 2
	if points < 1 {
		points = 1
	}
	values := series.Values
	labels := series.Labels
	if len(values) > points {
		values = values[len(values)-points:]
		labels = labels[len(labels)-points:]
	}

	lineStyle := lipgloss.NewStyle().Foreground(theme.LineColor(series.Metric))
	fillStyle := lipgloss.NewStyle().Foreground(theme.FillColor(series.Metric))

	// Column heights in eighths of a row.
	span := high - low
	eighths := make([]int, len(values))
	for index, value := range values {
		fraction := 1.0
		if span > 0 {
			fraction = (value - low) / span
		}
		cells := int(fraction*float64(plotHeight*8-1)) + 1
		eighths[index] = cells
	}

	rows := make([]string, plotHeight)
	for row := 0; row < plotHeight; row++ {
		// Row 0 is the top of the plot.
		cellFloor := (plotHeight - 1 - row) * 8
		var builder strings.Builder
		for _, cells := range eighths {
			switch {
			case cells >= cellFloor+8:
				// Full cell. The topmost occupied cell of the column
				// takes the line color, the rest the fill color.
				if cells < cellFloor+16 {
					builder.WriteString(lineStyle.Render("█"))
				} else {
					builder.WriteString(fillStyle.Render("█"))
				}
			case cells > cellFloor:
				builder.WriteString(lineStyle.Render(string(partialBlocks[cells-cellFloor-1])))
			default:
				builder.WriteByte(' ')
			}
			builder.WriteByte(' ')
		}
		rows[row] = builder.String()
	}

	// Y-axis gutter: high on the first plot row, low on the last.
	for row := range rows {
		var tick string
		switch row {
		case 0:
			tick = fmt.Sprintf("%*.1f ", gutter-1, high)
		case plotHeight - 1:
			tick = fmt.Sprintf("%*.1f ", gutter-1, low)
		default:
			tick = strings.Repeat(" ", gutter)
		}
		rows[row] = faint.Render(tick) + rows[row]
	}

	axis := renderAxisLabels(labels, gutter, len(values)*2)
	lines := append([]string{titleStyle.Render(series.Title)}, rows...)
	lines = append(lines, faint.Render(axis))
	return strings.Join(lines, "\n")
}

// valueBounds returns the plot range with a small headroom so a flat
// series still renders mid-height columns instead of a degenerate
// zero-span plot.
func valueBounds(values []float64) (low, high float64) {
	low, high = values[0], values[0]
	for _, value := range values[1:] {
		if value < low {
			low = value
		}
		if value > high {
			high = value
		}
	}
	if high == low {
		high = low + 1
	}
	return low, high
}

// axisGutterWidth sizes the y-axis gutter to the wider tick label.
func axisGutterWidth(low, high float64) int {
	width := len(fmt.Sprintf("%.1f", high))
	if lowWidth := len(fmt.Sprintf("%.1f", low)); lowWidth > width {
		width = lowWidth
	}
	return width + 1
}

// renderAxisLabels places the first and last point labels under the
// plot, anchored to the left and right edges.
func renderAxisLabels(labels []string, gutter, plotWidth int) string {
	if len(labels) == 0 {
		return ""
	}
	first := labels[0]
	last := labels[len(labels)-1]
	line := strings.Repeat(" ", gutter) + first
	if len(labels) > 1 {
		pad := gutter + plotWidth - ansi.StringWidth(first) - ansi.StringWidth(last) - gutter
		if pad > 1 {
			line += strings.Repeat(" ", pad) + last
		} else {
			line += " " + last
		}
	}
	return line
}

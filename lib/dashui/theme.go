// Copyright 2026 The Embryotech Authors
// SPDX-License-Identifier: Apache-2.0

package dashui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/embryotech/console/lib/reading"
)

// Theme defines the color palette for the dashboard TUI. All colors
// use lipgloss ANSI 256-color codes for broad terminal compatibility.
type Theme struct {
	// Text colors.
	NormalText lipgloss.Color
	FaintText  lipgloss.Color

	// Selected dropdown row.
	SelectedBackground lipgloss.Color
	SelectedForeground lipgloss.Color

	// Per-metric chart colors, indexed by [reading.Metric]. Line is
	// the column's top cell and the series legend; Fill is the dimmer
	// body below the top cell, the terminal analogue of a translucent
	// area fill under a line.
	MetricLine [3]lipgloss.Color
	MetricFill [3]lipgloss.Color

	// Status banner colors.
	StatusError   lipgloss.Color
	StatusSuccess lipgloss.Color

	// UI chrome.
	HeaderForeground lipgloss.Color
	BorderColor      lipgloss.Color
	HelpText         lipgloss.Color

	// Overlay surfaces (dropdowns, modals).
	OverlayBackground lipgloss.Color
}

// LineColor returns the line color for a metric.
func (theme Theme) LineColor(metric reading.Metric) lipgloss.Color {
	return theme.MetricLine[int(metric)%len(theme.MetricLine)]
}

// FillColor returns the fill color for a metric.
func (theme Theme) FillColor(metric reading.Metric) lipgloss.Color {
	return theme.MetricFill[int(metric)%len(theme.MetricFill)]
}

// DarkTheme is the built-in dark-terminal color scheme. The metric
// colors keep the original dashboard's chart identity: pink for
// temperature, sky blue for humidity, deep blue for pressure, each
// with a dimmer fill variant.
var DarkTheme = Theme{
	NormalText: lipgloss.Color("252"),
	FaintText:  lipgloss.Color("245"),

	SelectedBackground: lipgloss.Color("236"),
	SelectedForeground: lipgloss.Color("255"),

	MetricLine: [3]lipgloss.Color{
		lipgloss.Color("204"), // temperatura: pink
		lipgloss.Color("39"),  // umidade: sky blue
		lipgloss.Color("27"),  // pressão: deep blue
	},
	MetricFill: [3]lipgloss.Color{
		lipgloss.Color("132"), // dim pink
		lipgloss.Color("24"),  // dim blue
		lipgloss.Color("17"),  // navy
	},

	StatusError:   lipgloss.Color("196"),
	StatusSuccess: lipgloss.Color("114"),

	HeaderForeground: lipgloss.Color("255"),
	BorderColor:      lipgloss.Color("240"),
	HelpText:         lipgloss.Color("241"),

	OverlayBackground: lipgloss.Color("237"),
}

// LightTheme adapts the palette for light terminal backgrounds.
var LightTheme = Theme{
	NormalText: lipgloss.Color("235"),
	FaintText:  lipgloss.Color("243"),

	SelectedBackground: lipgloss.Color("153"),
	SelectedForeground: lipgloss.Color("232"),

	MetricLine: [3]lipgloss.Color{
		lipgloss.Color("161"),
		lipgloss.Color("32"),
		lipgloss.Color("20"),
	},
	MetricFill: [3]lipgloss.Color{
		lipgloss.Color("218"),
		lipgloss.Color("117"),
		lipgloss.Color("111"),
	},

	StatusError:   lipgloss.Color("160"),
	StatusSuccess: lipgloss.Color("28"),

	HeaderForeground: lipgloss.Color("232"),
	BorderColor:      lipgloss.Color("250"),
	HelpText:         lipgloss.Color("245"),

	OverlayBackground: lipgloss.Color("254"),
}

// ResolveTheme maps a configured theme name to a palette. "auto"
// probes the terminal background via termenv; unknown names fall back
// to the dark palette.
func ResolveTheme(name string) Theme {
	switch name {
	case "dark":
		return DarkTheme
	case "light":
		return LightTheme
	default:
		if termenv.HasDarkBackground() {
			return DarkTheme
		}
		return LightTheme
	}
}

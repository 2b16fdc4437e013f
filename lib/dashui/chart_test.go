// Copyright 2026 The Embryotech Authors
// SPDX-License-Identifier: Apache-2.0

package dashui

import (
	"strings"
	"testing"

	"github.com/embryotech/console/lib/reading"
)

func TestRenderChartEmptySeries(t *testing.T) {
	series := reading.Series{Metric: reading.MetricTemperatura, Title: "Temperatura (°C)"}
	view := RenderChart(series, 40, 10, DarkTheme)
	if !strings.Contains(view, "sem dados") {
		t.Error("empty-series placeholder missing")
	}
	if !strings.Contains(view, "Temperatura (°C)") {
		t.Error("title missing")
	}
}

func TestRenderChartShowsBoundsAndLabels(t *testing.T) {
	series := reading.Series{
		Metric: reading.MetricUmidade,
		Title:  "Umidade (%)",
		Labels: []string{"14/03 08:00", "14/03 12:00", "14/03 16:00"},
		Values: []float64{55, 58, 61},
	}
	view := RenderChart(series, 50, 12, DarkTheme)

	if !strings.Contains(view, "61.0") || !strings.Contains(view, "55.0") {
		t.Error("y-axis bounds missing")
	}
	if !strings.Contains(view, "14/03 08:00") {
		t.Error("first x-axis label missing")
	}
	if !strings.Contains(view, "█") {
		t.Error("no columns rendered")
	}
}

func TestRenderChartFlatSeries(t *testing.T) {
	series := reading.Series{
		Metric: reading.MetricPressao,
		Title:  "Pressão (hPa)",
		Labels: []string{"a", "b"},
		Values: []float64{1013, 1013},
	}
	// A flat series must render without a zero-span division.
	view := RenderChart(series, 40, 10, DarkTheme)
	if !strings.ContainsAny(view, "▁▂▃▄▅▆▇█") {
		t.Error("flat series rendered no columns")
	}
}

func TestRenderChartTinyBox(t *testing.T) {
	series := reading.Series{Metric: reading.MetricTemperatura, Title: "Temperatura (°C)", Values: []float64{1}}
	if view := RenderChart(series, 8, 3, DarkTheme); view == "" {
		t.Error("tiny box rendered nothing")
	}
}

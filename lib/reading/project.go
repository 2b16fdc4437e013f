// Copyright 2026 The Embryotech Authors
// SPDX-License-Identifier: Apache-2.0

package reading

import (
	"github.com/embryotech/console/lib/schema"
)

// Metric identifies one of the three charted measurements.
type Metric int

const (
	// MetricTemperatura is the air temperature inside the incubator.
	MetricTemperatura Metric = iota
	// MetricUmidade is the relative humidity.
	MetricUmidade
	// MetricPressao is the barometric pressure.
	MetricPressao
)

// Series is the labeled dataset for one chart instance. Labels and
// Values are index-aligned 1:1 and ordered ascending by the source
// reading's start instant.
type Series struct {
	Metric Metric
	// Title is the dataset legend, e.g. "Temperatura (°C)".
	Title string
	// Labels are short date/time strings derived from each reading's
	// start instant; "N/A" for readings without one.
	Labels []string
	// Values are the measurements in label order.
	Values []float64
}

// Projection is the result of distributing one ascending reading
// sequence across the three chart instances. A projection always
// replaces the prior dataset outright, so a chart never shows a
// mixture of two fetches.
type Projection struct {
	Temperatura Series
	Umidade     Series
	Pressao     Series
}

// Project maps an ascending reading sequence into the three
// per-metric series. An empty input produces empty series, which
// clears the charts rather than leaving stale data.
func Project(ascending []schema.Reading) Projection {
	labels := make([]string, len(ascending))
	temperaturas := make([]float64, len(ascending))
	umidades := make([]float64, len(ascending))
	pressoes := make([]float64, len(ascending))

	for index, sample := range ascending {
		labels[index] = FormatTimestamp(sample.DataInicial, true)
		temperaturas[index] = sample.Temperatura
		umidades[index] = sample.Umidade
		pressoes[index] = sample.Pressao
	}

	return Projection{
		Temperatura: Series{Metric: MetricTemperatura, Title: "Temperatura (°C)", Labels: labels, Values: temperaturas},
		Umidade:     Series{Metric: MetricUmidade, Title: "Umidade (%)", Labels: labels, Values: umidades},
		Pressao:     Series{Metric: MetricPressao, Title: "Pressão (hPa)", Labels: labels, Values: pressoes},
	}
}

// FormatTimestamp renders a start instant the way the dashboard shows
// dates: dd/mm/yyyy hh:mm in the pt-BR convention, or "N/A" when the
// timestamp is absent. The short form drops the year to fit chart
// axis labels in a terminal column budget.
func FormatTimestamp(timestamp *schema.Timestamp, short bool) string {
	if timestamp == nil {
		return "N/A"
	}
	if short {
		return timestamp.Format("02/01 15:04")
	}
	return timestamp.Format("02/01/2006 15:04")
}

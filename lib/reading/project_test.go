// Copyright 2026 The Embryotech Authors
// SPDX-License-Identifier: Apache-2.0

package reading

import (
	"testing"
	"time"

	"github.com/embryotech/console/lib/schema"
)

func TestProjectLabelsMatchValues(t *testing.T) {
	base := time.Date(2026, 3, 10, 8, 0, 0, 0, time.Local)
	ascending := []schema.Reading{
		{DataInicial: &schema.Timestamp{Time: base}, Temperatura: 37.1, Umidade: 58, Pressao: 1012},
		{DataInicial: &schema.Timestamp{Time: base.Add(time.Hour)}, Temperatura: 37.6, Umidade: 61, Pressao: 1013},
	}

	projection := Project(ascending)

	for _, series := range []Series{projection.Temperatura, projection.Umidade, projection.Pressao} {
		if len(series.Labels) != len(series.Values) {
			t.Fatalf("%s: %d labels, %d values", series.Title, len(series.Labels), len(series.Values))
		}
		if len(series.Values) != 2 {
			t.Fatalf("%s: %d values, want 2", series.Title, len(series.Values))
		}
	}

	if projection.Temperatura.Values[0] != 37.1 || projection.Temperatura.Values[1] != 37.6 {
		t.Errorf("temperature values out of order: %v", projection.Temperatura.Values)
	}
	if projection.Umidade.Values[1] != 61 {
		t.Errorf("humidity = %v", projection.Umidade.Values)
	}
	if projection.Pressao.Values[0] != 1012 {
		t.Errorf("pressure = %v", projection.Pressao.Values)
	}
	if projection.Temperatura.Labels[0] != "10/03 08:00" {
		t.Errorf("label = %q", projection.Temperatura.Labels[0])
	}
}

func TestProjectEmptyClearsSeries(t *testing.T) {
	projection := Project(nil)
	if len(projection.Temperatura.Values) != 0 ||
		len(projection.Umidade.Values) != 0 ||
		len(projection.Pressao.Values) != 0 {
		t.Error("empty input must produce empty series")
	}
}

func TestProjectAbsentTimestampLabel(t *testing.T) {
	projection := Project([]schema.Reading{{Temperatura: 36}})
	if projection.Temperatura.Labels[0] != "N/A" {
		t.Errorf("label = %q, want N/A", projection.Temperatura.Labels[0])
	}
}

func TestFormatTimestamp(t *testing.T) {
	instant := schema.Timestamp{Time: time.Date(2026, 1, 2, 15, 4, 0, 0, time.Local)}
	if got := FormatTimestamp(&instant, false); got != "02/01/2026 15:04" {
		t.Errorf("long = %q", got)
	}
	if got := FormatTimestamp(&instant, true); got != "02/01 15:04" {
		t.Errorf("short = %q", got)
	}
	if got := FormatTimestamp(nil, false); got != "N/A" {
		t.Errorf("absent = %q", got)
	}
}

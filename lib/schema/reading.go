// Copyright 2026 The Embryotech Authors
// SPDX-License-Identifier: Apache-2.0

package schema

import (
	"bytes"
	"fmt"
	"time"
)

// Reading is one sensor sample window reported by an incubator
// device: a start timestamp, an optional end timestamp, the three
// environmental measurements, and the production lote when the device
// was assigned one. Readings are immutable once fetched; a fresh set
// is obtained on every synchronization.
type Reading struct {
	// DataInicial is the start of the sample window. Nil when the
	// device reported no timestamp; such readings are kept (not
	// dropped) and sort as the oldest possible instant.
	DataInicial *Timestamp `json:"data_inicial"`

	// DataFinal is the end of the sample window. Unused by the
	// console beyond pass-through, but part of the wire record.
	DataFinal *Timestamp `json:"data_final"`

	Temperatura float64 `json:"temperatura"`
	Umidade     float64 `json:"umidade"`
	Pressao     float64 `json:"pressao"`

	// Lote is the production lot label, empty when the reading was
	// taken outside any lot.
	Lote string `json:"lote,omitempty"`
}

// Start returns the start instant of the reading, or the zero time
// when the timestamp is absent. The zero time is the "oldest possible
// instant" used for ordering; display code must check StartKnown
// rather than rendering the zero time.
func (reading Reading) Start() time.Time {
	if reading.DataInicial == nil {
		return time.Time{}
	}
	return reading.DataInicial.Time
}

// StartKnown reports whether the reading carries a start timestamp.
func (reading Reading) StartKnown() bool {
	return reading.DataInicial != nil
}

// Timestamp is a time.Time that unmarshals from the timestamp formats
// the backend emits: RFC 3339 with or without a zone offset. null and
// the empty string decode to a nil *Timestamp at the field level, so
// an absent timestamp is represented as absence, never defaulted to
// the current time.
type Timestamp struct {
	time.Time
}

// timestampLayouts are tried in order. The backend serializes with
// Python's isoformat(), which omits the zone when the column is naive
// and may or may not include fractional seconds.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// UnmarshalJSON parses a timestamp string. Zoneless values are
// interpreted in the local zone, matching how the original dashboard
// fed them to JavaScript's Date constructor.
func (timestamp *Timestamp) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	value := string(bytes.Trim(data, `"`))
	if value == "" {
		return nil
	}
	for _, layout := range timestampLayouts {
		parsed, err := time.ParseInLocation(layout, value, time.Local)
		if err == nil {
			timestamp.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("unrecognized timestamp %q", value)
}

// MarshalJSON serializes the timestamp as RFC 3339.
func (timestamp Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(`"` + timestamp.Format(time.RFC3339) + `"`), nil
}

// Copyright 2026 The Embryotech Authors
// SPDX-License-Identifier: Apache-2.0

package reading

import (
	"slices"

	"github.com/embryotech/console/lib/schema"
)

// SortDescending orders readings in place, most recent start instant
// first. Readings without a start timestamp compare as the oldest
// possible instant and therefore sink to the end. The sort is stable
// so equal-timestamp readings keep their fetch order.
func SortDescending(readings []schema.Reading) {
	slices.SortStableFunc(readings, func(a, b schema.Reading) int {
		return b.Start().Compare(a.Start())
	})
}

// Ascending returns a new slice with the readings ordered oldest
// first. The input is not modified: chart consumers and summary
// consumers share one fetched set, and handing the chart a copy is
// the explicit resort the ordering contract requires.
func Ascending(readings []schema.Reading) []schema.Reading {
	ascending := slices.Clone(readings)
	slices.SortStableFunc(ascending, func(a, b schema.Reading) int {
		return a.Start().Compare(b.Start())
	})
	return ascending
}

// Latest returns the reading with the maximum start instant, the one
// the "última leitura" summary shows. Readings without a timestamp
// lose to any timestamped reading; when every reading is untimestamped
// the first one wins. ok is false only for an empty set.
func Latest(readings []schema.Reading) (latest schema.Reading, ok bool) {
	if len(readings) == 0 {
		return schema.Reading{}, false
	}
	latest = readings[0]
	for _, candidate := range readings[1:] {
		if candidate.Start().After(latest.Start()) {
			latest = candidate
		}
	}
	return latest, true
}

// Copyright 2026 The Embryotech Authors
// SPDX-License-Identifier: Apache-2.0

package reading

import (
	"testing"
	"time"

	"github.com/embryotech/console/lib/schema"
)

// sample builds a reading with the given start offset in minutes from
// a fixed base instant. A negative offset of exactly -1 means "no
// timestamp".
func sample(minutes int, lote string) schema.Reading {
	base := time.Date(2026, 3, 10, 8, 0, 0, 0, time.Local)
	return schema.Reading{
		DataInicial: &schema.Timestamp{Time: base.Add(time.Duration(minutes) * time.Minute)},
		Temperatura: 37.5,
		Umidade:     60,
		Pressao:     1013,
		Lote:        lote,
	}
}

func untimestamped() schema.Reading {
	return schema.Reading{Temperatura: 36, Umidade: 55, Pressao: 1010}
}

func TestSortDescendingMostRecentFirst(t *testing.T) {
	readings := []schema.Reading{sample(10, "L1"), sample(30, "L2"), sample(20, "L3")}
	SortDescending(readings)

	if readings[0].Lote != "L2" || readings[1].Lote != "L3" || readings[2].Lote != "L1" {
		t.Errorf("descending order wrong: %s, %s, %s",
			readings[0].Lote, readings[1].Lote, readings[2].Lote)
	}
}

func TestSortDescendingAbsentTimestampsSinkToEnd(t *testing.T) {
	readings := []schema.Reading{untimestamped(), sample(5, "L1"), untimestamped(), sample(15, "L2")}
	SortDescending(readings)

	if readings[0].Lote != "L2" || readings[1].Lote != "L1" {
		t.Errorf("timestamped readings should lead: %s, %s", readings[0].Lote, readings[1].Lote)
	}
	if readings[2].StartKnown() || readings[3].StartKnown() {
		t.Error("untimestamped readings should sort as oldest")
	}
}

func TestSortDescendingAllAbsentDoesNotPanic(t *testing.T) {
	readings := []schema.Reading{untimestamped(), untimestamped(), untimestamped()}
	SortDescending(readings)
	if len(readings) != 3 {
		t.Fatalf("len = %d", len(readings))
	}
}

func TestAscendingIsACopy(t *testing.T) {
	readings := []schema.Reading{sample(30, "L2"), sample(10, "L1")}
	SortDescending(readings)

	ascending := Ascending(readings)
	if ascending[0].Lote != "L1" || ascending[1].Lote != "L2" {
		t.Errorf("ascending order wrong: %s, %s", ascending[0].Lote, ascending[1].Lote)
	}
	// The descending source set must stay untouched.
	if readings[0].Lote != "L2" {
		t.Error("Ascending modified its input")
	}
}

func TestAscendingAbsentTimestampsLead(t *testing.T) {
	ascending := Ascending([]schema.Reading{sample(10, "L1"), untimestamped()})
	if ascending[0].StartKnown() {
		t.Error("untimestamped reading should be oldest in ascending order")
	}
}

func TestLatestPicksMaximumStart(t *testing.T) {
	readings := []schema.Reading{sample(10, "L1"), sample(40, "L-newest"), sample(20, "L3"), untimestamped()}
	latest, ok := Latest(readings)
	if !ok {
		t.Fatal("expected a latest reading")
	}
	if latest.Lote != "L-newest" {
		t.Errorf("latest = %s, want L-newest", latest.Lote)
	}
}

func TestLatestSoleUntimestampedEntry(t *testing.T) {
	latest, ok := Latest([]schema.Reading{untimestamped()})
	if !ok {
		t.Fatal("expected the sole entry")
	}
	if latest.StartKnown() {
		t.Error("expected the untimestamped entry")
	}
}

func TestLatestEmpty(t *testing.T) {
	if _, ok := Latest(nil); ok {
		t.Error("empty set must report ok=false")
	}
}

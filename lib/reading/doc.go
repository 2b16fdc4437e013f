// Copyright 2026 The Embryotech Authors
// SPDX-License-Identifier: Apache-2.0

// Package reading establishes the canonical ordering of sensor
// readings and projects ordered sequences into per-metric chart
// series.
//
// The ordering contract: every view renders a reading set in the
// view's declared direction — descending for "most recent first"
// summaries and history lists, ascending for charts — and a set from
// one fetch is never shown in two orders without an explicit resort
// (Ascending returns a copy for exactly that reason). Readings with
// an absent start timestamp sort as the oldest possible instant and
// are rendered as "N/A", never excluded.
package reading

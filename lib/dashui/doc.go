// Copyright 2026 The Embryotech Authors
// SPDX-License-Identifier: Apache-2.0

// Package dashui implements the interactive environmental-monitoring
// dashboard as a bubbletea TUI.
//
// The top-level [Model] renders the latest-reading summary and the
// three per-metric charts, scoped by an optional lote filter. Two
// overlays sit on top: the reading history ([HistoryModel]) and the
// administrator parameter form ([ParamForm]). Keyboard input routes by
// focus region; while an overlay is active it captures all keys.
//
// Every fetch carries a generation number. A response whose generation
// is older than the view's current one is discarded, so rapid filter
// changes can never interleave stale data into the charts.
package dashui

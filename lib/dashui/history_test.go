// Copyright 2026 The Embryotech Authors
// SPDX-License-Identifier: Apache-2.0

package dashui

import (
	"strings"
	"testing"

	"github.com/embryotech/console/lib/schema"
)

func TestHistoryOpenOnceOnly(t *testing.T) {
	var history HistoryModel

	if !history.Open() {
		t.Fatal("first Open must request a fetch")
	}
	if history.Open() {
		t.Error("second Open requested a refetch")
	}
}

func TestHistoryStaleResultDiscarded(t *testing.T) {
	var history HistoryModel
	history.Open()
	stale := history.Generation() - 1

	history.SetResult(stale, []schema.Reading{{Temperatura: 20}}, nil)
	if !history.loading {
		t.Error("stale result ended the loading state")
	}

	history.SetResult(history.Generation(), []schema.Reading{{Temperatura: 37.5}}, nil)
	if history.loading || len(history.readings) != 1 {
		t.Errorf("current result not applied: %+v", history)
	}
}

func TestHistoryResultAfterCloseDiscarded(t *testing.T) {
	var history HistoryModel
	history.Open()
	generation := history.Generation()
	history.Close()

	history.SetResult(generation, []schema.Reading{{Temperatura: 37.5}}, nil)
	if len(history.readings) != 0 {
		t.Error("result applied to a closed overlay")
	}
}

func TestHistoryViewStates(t *testing.T) {
	var history HistoryModel
	history.Open()

	if view := history.View(80, 24, DarkTheme); !strings.Contains(view, "Carregando histórico...") {
		t.Error("loading placeholder missing")
	}

	history.SetResult(history.Generation(), nil, nil)
	if view := history.View(80, 24, DarkTheme); !strings.Contains(view, "Nenhuma leitura encontrada") {
		t.Error("empty placeholder missing")
	}
}

func TestHistoryViewCountsReadings(t *testing.T) {
	var history HistoryModel
	history.Open()
	history.SetResult(history.Generation(), []schema.Reading{
		{Temperatura: 37.5, Umidade: 60, Pressao: 1012},
		{Temperatura: 36.9, Umidade: 58, Pressao: 1010},
	}, nil)

	view := history.View(80, 40, DarkTheme)
	if !strings.Contains(view, "Total de leituras: 2") {
		t.Error("reading count missing")
	}
	if !strings.Contains(view, "Leitura 1") {
		t.Error("first card missing")
	}
}

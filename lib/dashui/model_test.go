// Copyright 2026 The Embryotech Authors
// SPDX-License-Identifier: Apache-2.0

package dashui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/embryotech/console/lib/schema"
)

// stubSource serves canned data and records calls, so model behavior
// can be driven without a server.
type stubSource struct {
	companies []string
	batches   map[string][]string
	readings  map[string][]schema.Reading
	record    *schema.Parameter

	saveErr      error
	saved        []schema.Parameter
	readingCalls []string
}

func (stub *stubSource) Companies(context.Context) ([]string, error) {
	return stub.companies, nil
}

func (stub *stubSource) Batches(_ context.Context, empresa string) ([]string, error) {
	return stub.batches[empresa], nil
}

func (stub *stubSource) Readings(_ context.Context, lote string) ([]schema.Reading, error) {
	stub.readingCalls = append(stub.readingCalls, lote)
	return stub.readings[lote], nil
}

func (stub *stubSource) FindParameters(context.Context, string, string) (*schema.Parameter, error) {
	return stub.record, nil
}

func (stub *stubSource) SaveParameter(_ context.Context, record schema.Parameter) error {
	if stub.saveErr != nil {
		return stub.saveErr
	}
	stub.saved = append(stub.saved, record)
	return nil
}

func timestampAt(t *testing.T, value string) *schema.Timestamp {
	t.Helper()
	parsed, err := time.Parse("2006-01-02T15:04:05", value)
	if err != nil {
		t.Fatal(err)
	}
	return &schema.Timestamp{Time: parsed}
}

func newTestModel(stub *stubSource, admin bool) *Model {
	model := New(Config{
		Source: stub,
		Theme:  DarkTheme,
		Keys:   DefaultKeyMap,
		Admin:  admin,
	})
	model.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return model
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestStaleReadingsAreDiscarded(t *testing.T) {
	model := newTestModel(&stubSource{}, false)
	model.readingsGeneration = 2

	current := []schema.Reading{{Temperatura: 37.5}}
	model.Update(readingsLoadedMsg{generation: 2, readings: current})
	if len(model.readings) != 1 {
		t.Fatalf("readings = %v", model.readings)
	}

	// A response from the superseded fetch must not overwrite.
	stale := []schema.Reading{{Temperatura: 20.0}, {Temperatura: 21.0}}
	model.Update(readingsLoadedMsg{generation: 1, readings: stale})
	if len(model.readings) != 1 || model.readings[0].Temperatura != 37.5 {
		t.Errorf("stale fetch overwrote current data: %v", model.readings)
	}
}

func TestFilterSelectionRefetchesScoped(t *testing.T) {
	stub := &stubSource{readings: map[string][]schema.Reading{}}
	model := newTestModel(stub, false)
	model.lotes = []string{"A1", "B12"}

	model.Update(runeKey('f'))
	if model.focus != FocusLoteDropdown {
		t.Fatalf("focus = %v", model.focus)
	}

	// Move to "B12" (row 0 is the all-lotes entry) and select.
	model.Update(runeKey('j'))
	model.Update(runeKey('j'))
	generationBefore := model.readingsGeneration
	_, cmd := model.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if model.loteFilter != "B12" {
		t.Errorf("loteFilter = %q", model.loteFilter)
	}
	if model.readingsGeneration != generationBefore+1 {
		t.Errorf("generation = %d, want %d", model.readingsGeneration, generationBefore+1)
	}
	if cmd == nil {
		t.Fatal("selection must start a fetch")
	}
	if msg := cmd(); msg == nil {
		t.Fatal("fetch command returned nil msg")
	}
	if len(stub.readingCalls) == 0 || stub.readingCalls[len(stub.readingCalls)-1] != "B12" {
		t.Errorf("reading calls = %v, want scoped to B12", stub.readingCalls)
	}
}

func TestReselectingSameFilterDoesNotRefetch(t *testing.T) {
	model := newTestModel(&stubSource{}, false)
	model.lotes = []string{"A1"}

	model.Update(runeKey('f'))
	_, cmd := model.Update(tea.KeyMsg{Type: tea.KeyEnter}) // row 0: all lotes, already active
	if cmd != nil {
		t.Error("reselecting the active filter must not refetch")
	}
	if model.focus != FocusMain {
		t.Errorf("focus = %v", model.focus)
	}
}

func TestHistoryOpenIsIdempotent(t *testing.T) {
	model := newTestModel(&stubSource{}, false)

	_, cmd := model.Update(runeKey('h'))
	if cmd == nil {
		t.Fatal("first open must fetch")
	}
	generation := model.history.Generation()

	// Re-opening while open must neither refetch nor bump generation.
	model.focus = FocusMain
	_, cmd = model.Update(runeKey('h'))
	if cmd != nil {
		t.Error("second open refetched")
	}
	if model.history.Generation() != generation {
		t.Error("second open bumped the fetch generation")
	}
}

func TestHistoryCloseKeepsMainReadings(t *testing.T) {
	model := newTestModel(&stubSource{}, false)
	model.Update(readingsLoadedMsg{generation: model.readingsGeneration, readings: []schema.Reading{{Temperatura: 37.0}}})

	model.Update(runeKey('h'))
	model.Update(tea.KeyMsg{Type: tea.KeyEsc})

	if model.history.IsOpen() {
		t.Error("history still open")
	}
	if len(model.readings) != 1 {
		t.Errorf("main readings disturbed: %v", model.readings)
	}
}

func TestParameterFormRequiresAdmin(t *testing.T) {
	model := newTestModel(&stubSource{}, false)

	_, cmd := model.Update(runeKey('p'))
	if cmd != nil || model.form.IsOpen() || model.focus != FocusMain {
		t.Error("non-admin session opened the parameter form")
	}

	admin := newTestModel(&stubSource{}, true)
	_, cmd = admin.Update(runeKey('p'))
	if cmd == nil || !admin.form.IsOpen() {
		t.Error("admin session failed to open the parameter form")
	}
}

func TestSummaryShowsEmptyMessage(t *testing.T) {
	model := newTestModel(&stubSource{}, false)
	model.Update(readingsLoadedMsg{generation: model.readingsGeneration, readings: nil})

	view := model.View()
	if !strings.Contains(view, "Nenhuma leitura disponível para o lote selecionado") {
		t.Error("empty summary message missing from view")
	}
}

func TestSummaryShowsLatestReading(t *testing.T) {
	model := newTestModel(&stubSource{}, false)
	readings := []schema.Reading{
		{DataInicial: timestampAt(t, "2026-03-14T08:00:00"), Temperatura: 36.0, Umidade: 55, Pressao: 1010},
		{DataInicial: timestampAt(t, "2026-03-14T12:00:00"), Temperatura: 37.7, Umidade: 58, Pressao: 1013},
	}
	model.Update(readingsLoadedMsg{generation: model.readingsGeneration, readings: readings})

	if !model.hasLatest || model.latest.Temperatura != 37.7 {
		t.Errorf("latest = %+v", model.latest)
	}
	view := model.View()
	if !strings.Contains(view, "37.7") {
		t.Error("latest temperature missing from view")
	}
}

func TestFailedRefreshKeepsPriorSummary(t *testing.T) {
	model := newTestModel(&stubSource{}, false)
	readings := []schema.Reading{
		{DataInicial: timestampAt(t, "2026-03-14T12:00:00"), Temperatura: 37.7, Umidade: 58, Pressao: 1013},
	}
	model.Update(readingsLoadedMsg{generation: model.readingsGeneration, readings: readings})

	// A refresh that fails must leave the last good fetch on screen.
	model.Update(readingsLoadedMsg{
		generation: model.readingsGeneration,
		err:        errors.New("connection refused"),
	})

	if len(model.readings) != 1 || !model.hasLatest {
		t.Fatalf("failed refresh disturbed readings: %v", model.readings)
	}
	view := model.View()
	if !strings.Contains(view, "37.7") {
		t.Error("prior reading missing from view after failed refresh")
	}
	if strings.Contains(view, "Erro ao carregar leituras") {
		t.Error("failed refresh replaced the summary with an error box")
	}
}

func TestSaveSuccessClosesAfterDelay(t *testing.T) {
	stub := &stubSource{
		companies: []string{"Granja Aurora"},
		batches:   map[string][]string{"Granja Aurora": {"B12"}},
	}
	model := newTestModel(stub, true)
	model.Update(runeKey('p'))
	model.form.SetCompanies(stub.companies, nil)
	model.form.MoveSelection(1)
	model.form.SetBatches(stub.batches["Granja Aurora"], nil)
	model.form.NextField()
	model.form.MoveSelection(1)
	if !model.form.NewRecord() {
		t.Fatal("NewRecord refused with pair selected")
	}
	model.form.inputs[0].SetValue("37.7")
	model.form.inputs[1].SetValue("58")
	model.form.inputs[2].SetValue("1013")
	model.form.inputs[3].SetValue("120")
	model.form.inputs[4].SetValue("4")
	model.form.inputs[5].SetValue("9")

	_, cmd := model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("submit produced no save command")
	}
	if model.form.State() != FormSubmitting {
		t.Fatalf("state = %v, want submitting", model.form.State())
	}

	// Deliver the save result; success schedules the delayed close.
	_, cmd = model.Update(cmd())
	if cmd == nil {
		t.Fatal("successful save must schedule the close")
	}
	if len(stub.saved) != 1 {
		t.Fatalf("saved = %v", stub.saved)
	}

	model.Update(formCloseMsg{})
	if model.form.IsOpen() || model.focus != FocusMain {
		t.Error("form did not close after the banner delay")
	}
}

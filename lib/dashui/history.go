// Copyright 2026 The Embryotech Authors
// SPDX-License-Identifier: Apache-2.0

package dashui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/embryotech/console/lib/reading"
	"github.com/embryotech/console/lib/schema"
)

// HistoryModel is the reading-history overlay. It fetches its own
// reading set on open, scoped to the lote filter active at that
// moment, and renders one card per reading, most recent first.
//
// Opening is idempotent: a second open request while the overlay is
// already visible neither refetches nor resets the scroll position.
type HistoryModel struct {
	open    bool
	loading bool
	err     error

	readings []schema.Reading
	scroll   int

	// generation guards against stale fetch results: a response tagged
	// with an older generation than the current one is discarded.
	generation int
}

// Open marks the overlay visible. Returns true when the caller should
// start a fetch (first open), false when the overlay was already open.
func (history *HistoryModel) Open() bool {
	if history.open {
		return false
	}
	history.open = true
	history.loading = true
	history.err = nil
	history.readings = nil
	history.scroll = 0
	history.generation++
	return true
}

// Close hides the overlay. The main view's reading set is untouched;
// closing never triggers a refetch.
func (history *HistoryModel) Close() {
	history.open = false
	history.loading = false
}

// IsOpen reports whether the overlay is visible.
func (history *HistoryModel) IsOpen() bool { return history.open }

// Generation returns the fetch generation for tagging requests.
func (history *HistoryModel) Generation() int { return history.generation }

// SetResult installs a fetch result. Results from an older generation
// are discarded. The readings are sorted most recent first.
func (history *HistoryModel) SetResult(generation int, readings []schema.Reading, err error) {
	if generation != history.generation || !history.open {
		return
	}
	history.loading = false
	history.err = err
	reading.SortDescending(readings)
	history.readings = readings
}

// ScrollUp moves the card window up.
func (history *HistoryModel) ScrollUp() {
	if history.scroll > 0 {
		history.scroll--
	}
}

// ScrollDown moves the card window down.
func (history *HistoryModel) ScrollDown() {
	if history.scroll < len(history.readings)-1 {
		history.scroll++
	}
}

// historyCardHeight is the rendered height of one reading card
// including its border and the optional lote line.
const historyCardHeight = 7

// View renders the overlay body for the given content box.
func (history *HistoryModel) View(width, height int, theme Theme) string {
	titleStyle := lipgloss.NewStyle().Foreground(theme.HeaderForeground).Bold(true)
	faint := lipgloss.NewStyle().Foreground(theme.FaintText)
	errorStyle := lipgloss.NewStyle().Foreground(theme.StatusError)

	var body []string
	body = append(body, titleStyle.Render("Histórico de Leituras"))

	switch {
	case history.loading:
		body = append(body, faint.Render("Carregando histórico..."))
	case history.err != nil:
		body = append(body, errorStyle.Render(fmt.Sprintf("Erro ao carregar histórico: %v", history.err)))
	case len(history.readings) == 0:
		body = append(body, faint.Render("Nenhuma leitura encontrada"))
	default:
		cardBudget := (height - 3) / historyCardHeight
		if cardBudget < 1 {
			cardBudget = 1
		}
		visible := history.readings[history.scroll:]
		if len(visible) > cardBudget {
			visible = visible[:cardBudget]
		}
		for index, sample := range visible {
			body = append(body, renderHistoryCard(history.scroll+index, sample, width-4, theme))
		}
		body = append(body, faint.Render(fmt.Sprintf("Total de leituras: %d", len(history.readings))))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.BorderColor).
		Padding(0, 1).
		Width(width - 2).
		Render(strings.Join(body, "\n"))
}

// renderHistoryCard renders one reading as a bordered card.
func renderHistoryCard(index int, sample schema.Reading, width int, theme Theme) string {
	label := lipgloss.NewStyle().Foreground(theme.FaintText)
	value := lipgloss.NewStyle().Foreground(theme.NormalText)

	start := reading.FormatTimestamp(sample.DataInicial, false)
	if sample.StartKnown() {
		start += "  " + humanize.Time(sample.Start())
	}
	lines := []string{
		lipgloss.NewStyle().Foreground(theme.HeaderForeground).Render(fmt.Sprintf("Leitura %d", index+1)),
		label.Render("Início: ") + value.Render(start),
		label.Render("Fim:    ") + value.Render(reading.FormatTimestamp(sample.DataFinal, false)),
		label.Render("Temp:   ") + value.Render(fmt.Sprintf("%.1f °C", sample.Temperatura)) +
			label.Render("   Umid: ") + value.Render(fmt.Sprintf("%.1f %%", sample.Umidade)) +
			label.Render("   Pressão: ") + value.Render(fmt.Sprintf("%.1f hPa", sample.Pressao)),
	}
	if sample.Lote != "" {
		lines = append(lines, label.Render("Lote:   ")+value.Render(sample.Lote))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(theme.BorderColor).
		Width(width).
		Render(strings.Join(lines, "\n"))
}

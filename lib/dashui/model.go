// Copyright 2026 The Embryotech Authors
// SPDX-License-Identifier: Apache-2.0

package dashui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/embryotech/console/lib/reading"
	"github.com/embryotech/console/lib/schema"
)

// FocusRegion identifies which surface receives keyboard input.
type FocusRegion int

const (
	// FocusMain means keys drive the dashboard itself.
	FocusMain FocusRegion = iota
	// FocusLoteDropdown means the lote filter dropdown is active and
	// captures all keys until selection or dismissal.
	FocusLoteDropdown
	// FocusHistory means the history overlay is active.
	FocusHistory
	// FocusForm means the parameter form overlay is active.
	FocusForm
)

// allLotesLabel is the dropdown entry that clears the lote filter.
const allLotesLabel = "Todos os Lotes"

// successCloseDelay is how long the save confirmation stays visible
// before the parameter form closes on its own.
const successCloseDelay = 1500 * time.Millisecond

// Messages produced by asynchronous fetch commands. Each carries the
// generation it was started under; the model discards results whose
// generation no longer matches the view.
type (
	lotesLoadedMsg struct {
		lotes []string
		err   error
	}
	readingsLoadedMsg struct {
		generation int
		readings   []schema.Reading
		err        error
	}
	historyLoadedMsg struct {
		generation int
		readings   []schema.Reading
		err        error
	}
	companiesLoadedMsg struct {
		empresas []string
		err      error
	}
	batchesLoadedMsg struct {
		empresa string
		lotes   []string
		err     error
	}
	parametersFoundMsg struct {
		generation int
		record     *schema.Parameter
		err        error
	}
	saveResultMsg struct {
		err error
	}
	formCloseMsg struct{}
)

// Config assembles a dashboard model.
type Config struct {
	Source Source
	Theme  Theme
	Keys   KeyMap

	// Admin enables the parameter-management overlay. Decoded from the
	// session token's claims; decode failures must map to false.
	Admin bool

	// Lote pre-selects the lote filter, as if the operator had picked
	// it from the dropdown before the first fetch. Empty means all
	// lotes.
	Lote string

	Logger *slog.Logger
}

// Model is the top-level bubbletea model for the dashboard.
type Model struct {
	source Source
	theme  Theme
	keys   KeyMap
	admin  bool
	logger *slog.Logger

	// Terminal dimensions (set by WindowSizeMsg).
	width  int
	height int
	ready  bool

	focus FocusRegion

	// Lote filter state. loteFilter == "" means all lotes.
	lotes      []string
	loteCursor int
	loteFilter string

	// Main reading set and its projections. readings stays sorted
	// most recent first; the charts consume the ascending resort.
	readings   []schema.Reading
	projection reading.Projection
	latest     schema.Reading
	hasLatest  bool
	loading    bool

	// readingsGeneration tags reading fetches; stale responses are
	// discarded instead of overwriting a newer filter's data.
	readingsGeneration int

	history HistoryModel
	form    ParamForm

	// Status bar log line (from TUILogHandler).
	logLine  string
	logLevel slog.Level
}

// New creates a dashboard model.
func New(config Config) *Model {
	logger := config.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Model{
		source:     config.Source,
		theme:      config.Theme,
		keys:       config.Keys,
		admin:      config.Admin,
		loteFilter: config.Lote,
		logger:     logger,
		loading:    true,
		form:       NewParamForm(),
	}
}

// Init starts the initial lote and reading fetches.
func (model *Model) Init() tea.Cmd {
	model.readingsGeneration++
	return tea.Batch(
		model.fetchLotes(),
		model.fetchReadings(model.readingsGeneration, model.loteFilter),
	)
}

// fetchLotes loads the unfiltered lote labels for the filter dropdown.
func (model *Model) fetchLotes() tea.Cmd {
	source := model.source
	return func() tea.Msg {
		lotes, err := source.Batches(context.Background(), "")
		return lotesLoadedMsg{lotes: lotes, err: err}
	}
}

// fetchReadings loads the reading set for the given lote scope.
func (model *Model) fetchReadings(generation int, lote string) tea.Cmd {
	source := model.source
	return func() tea.Msg {
		readings, err := source.Readings(context.Background(), lote)
		return readingsLoadedMsg{generation: generation, readings: readings, err: err}
	}
}

// fetchHistory loads the history overlay's reading set.
func (model *Model) fetchHistory(generation int, lote string) tea.Cmd {
	source := model.source
	return func() tea.Msg {
		readings, err := source.Readings(context.Background(), lote)
		return historyLoadedMsg{generation: generation, readings: readings, err: err}
	}
}

// fetchCompanies loads the form's company options.
func (model *Model) fetchCompanies() tea.Cmd {
	source := model.source
	return func() tea.Msg {
		empresas, err := source.Companies(context.Background())
		return companiesLoadedMsg{empresas: empresas, err: err}
	}
}

// fetchBatches loads the form's lote options scoped to a company.
func (model *Model) fetchBatches(empresa string) tea.Cmd {
	source := model.source
	return func() tea.Msg {
		lotes, err := source.Batches(context.Background(), empresa)
		return batchesLoadedMsg{empresa: empresa, lotes: lotes, err: err}
	}
}

// findParameters looks up the stored record for the form's pair.
func (model *Model) findParameters(generation int, empresa, lote string) tea.Cmd {
	source := model.source
	return func() tea.Msg {
		record, err := source.FindParameters(context.Background(), empresa, lote)
		return parametersFoundMsg{generation: generation, record: record, err: err}
	}
}

// saveParameter persists the submitted record.
func (model *Model) saveParameter(record schema.Parameter) tea.Cmd {
	source := model.source
	return func() tea.Msg {
		return saveResultMsg{err: source.SaveParameter(context.Background(), record)}
	}
}

// Update implements tea.Model.
func (model *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		model.width = msg.Width
		model.height = msg.Height
		model.ready = true
		return model, nil

	case logRecordMsg:
		model.logLine = msg.Summary
		model.logLevel = msg.Level
		return model, tea.Tick(logRecordFadeDelay, func(time.Time) tea.Msg {
			return logRecordFadeMsg{}
		})

	case logRecordFadeMsg:
		model.logLine = ""
		return model, nil

	case lotesLoadedMsg:
		if msg.err != nil {
			model.logger.Warn("loading lote list failed", "error", msg.err)
			return model, nil
		}
		model.lotes = msg.lotes
		return model, nil

	case readingsLoadedMsg:
		if msg.generation != model.readingsGeneration {
			// A newer fetch superseded this one; keep its data out.
			return model, nil
		}
		model.loading = false
		if msg.err != nil {
			// Transient failure: the warning reaches the status bar
			// through the log handler while the summary and charts
			// keep showing the last good fetch.
			model.logger.Warn("loading readings failed", "error", msg.err)
			return model, nil
		}
		readings := msg.readings
		reading.SortDescending(readings)
		model.readings = readings
		model.latest, model.hasLatest = reading.Latest(readings)
		model.projection = reading.Project(reading.Ascending(readings))
		return model, nil

	case historyLoadedMsg:
		model.history.SetResult(msg.generation, msg.readings, msg.err)
		return model, nil

	case companiesLoadedMsg:
		model.form.SetCompanies(msg.empresas, msg.err)
		return model, nil

	case batchesLoadedMsg:
		// Ignore lote lists for a company the form has moved past.
		if msg.empresa == model.form.SelectedEmpresa() {
			model.form.SetBatches(msg.lotes, msg.err)
		}
		return model, nil

	case parametersFoundMsg:
		model.form.SetSearchResult(msg.generation, msg.record, msg.err)
		return model, nil

	case saveResultMsg:
		model.form.SetSaveResult(msg.err)
		if msg.err == nil {
			return model, tea.Tick(successCloseDelay, func(time.Time) tea.Msg {
				return formCloseMsg{}
			})
		}
		return model, nil

	case formCloseMsg:
		if model.form.State() == FormSubmitting {
			model.form.Close()
			model.focus = FocusMain
		}
		return model, nil

	case tea.KeyMsg:
		return model.handleKey(msg)
	}

	return model, nil
}

// handleKey routes a key press by focus region.
func (model *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, model.keys.Quit) && model.focus == FocusMain {
		return model, tea.Quit
	}

	switch model.focus {
	case FocusLoteDropdown:
		return model.handleDropdownKey(msg)
	case FocusHistory:
		return model.handleHistoryKey(msg)
	case FocusForm:
		return model.handleFormKey(msg)
	}
	return model.handleMainKey(msg)
}

func (model *Model) handleMainKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, model.keys.Filter):
		model.focus = FocusLoteDropdown
		model.loteCursor = model.currentLoteIndex()
		return model, nil

	case key.Matches(msg, model.keys.History):
		model.focus = FocusHistory
		if model.history.Open() {
			return model, model.fetchHistory(model.history.Generation(), model.loteFilter)
		}
		return model, nil

	case key.Matches(msg, model.keys.Parameters):
		if !model.admin {
			model.logger.Warn("parameter form requires an administrator session")
			return model, nil
		}
		model.focus = FocusForm
		if model.form.Open() {
			return model, model.fetchCompanies()
		}
		return model, nil

	case key.Matches(msg, model.keys.Refresh):
		model.loading = true
		model.readingsGeneration++
		return model, model.fetchReadings(model.readingsGeneration, model.loteFilter)
	}
	return model, nil
}

// currentLoteIndex maps the active filter back to its dropdown row.
// Row 0 is the "all lotes" entry.
func (model *Model) currentLoteIndex() int {
	if model.loteFilter == "" {
		return 0
	}
	for index, lote := range model.lotes {
		if lote == model.loteFilter {
			return index + 1
		}
	}
	return 0
}

func (model *Model) handleDropdownKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	optionCount := len(model.lotes) + 1
	switch {
	case key.Matches(msg, model.keys.Up):
		model.loteCursor--
		if model.loteCursor < 0 {
			model.loteCursor = optionCount - 1
		}
	case key.Matches(msg, model.keys.Down):
		model.loteCursor++
		if model.loteCursor >= optionCount {
			model.loteCursor = 0
		}
	case key.Matches(msg, model.keys.Select):
		selected := ""
		if model.loteCursor > 0 && model.loteCursor-1 < len(model.lotes) {
			selected = model.lotes[model.loteCursor-1]
		}
		model.focus = FocusMain
		if selected == model.loteFilter {
			return model, nil
		}
		model.loteFilter = selected
		model.loading = true
		model.readingsGeneration++
		return model, model.fetchReadings(model.readingsGeneration, model.loteFilter)
	case key.Matches(msg, model.keys.Dismiss), key.Matches(msg, model.keys.Filter):
		model.focus = FocusMain
	}
	return model, nil
}

func (model *Model) handleHistoryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, model.keys.Up):
		model.history.ScrollUp()
	case key.Matches(msg, model.keys.Down):
		model.history.ScrollDown()
	case key.Matches(msg, model.keys.Dismiss), key.Matches(msg, model.keys.History):
		model.history.Close()
		model.focus = FocusMain
	}
	return model, nil
}

func (model *Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// While a save is in flight every key is inert except dismissal.
	if model.form.State() == FormSubmitting {
		if key.Matches(msg, model.keys.Dismiss) {
			model.form.Close()
			model.focus = FocusMain
		}
		return model, nil
	}

	switch {
	case key.Matches(msg, model.keys.Dismiss):
		model.form.Close()
		model.focus = FocusMain
		return model, nil

	case key.Matches(msg, model.keys.NextField):
		model.form.NextField()
		return model, nil

	case key.Matches(msg, model.keys.PrevField):
		model.form.PrevField()
		return model, nil

	case key.Matches(msg, model.keys.NewRecord):
		model.form.NewRecord()
		return model, nil

	case key.Matches(msg, model.keys.Up):
		if model.form.focus < formFirstInput {
			if model.form.MoveSelection(-1) {
				return model, model.fetchBatches(model.form.SelectedEmpresa())
			}
			return model, nil
		}

	case key.Matches(msg, model.keys.Down):
		if model.form.focus < formFirstInput {
			if model.form.MoveSelection(1) {
				return model, model.fetchBatches(model.form.SelectedEmpresa())
			}
			return model, nil
		}

	case key.Matches(msg, model.keys.Select):
		switch model.form.State() {
		case FormFiltering:
			if generation, ok := model.form.BeginSearch(); ok {
				return model, model.findParameters(generation,
					model.form.SelectedEmpresa(), model.form.SelectedLote())
			}
			return model, nil
		case FormEditing:
			if record, ok := model.form.Submit(); ok {
				return model, model.saveParameter(record)
			}
			return model, nil
		}
	}

	return model, model.form.UpdateInputs(msg)
}

// View implements tea.Model.
func (model *Model) View() string {
	if !model.ready {
		return "carregando..."
	}

	header := model.renderHeader()
	status := model.renderStatusBar()

	bodyHeight := model.height - lipgloss.Height(header) - lipgloss.Height(status)
	var body string
	switch {
	case model.history.IsOpen():
		body = model.history.View(model.width, bodyHeight, model.theme)
	case model.form.IsOpen():
		body = model.form.View(model.width, model.theme)
	case model.focus == FocusLoteDropdown:
		body = model.renderLoteDropdown()
	default:
		body = model.renderDashboard(bodyHeight)
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, body, status)
}

func (model *Model) renderHeader() string {
	titleStyle := lipgloss.NewStyle().Foreground(model.theme.HeaderForeground).Bold(true)
	faint := lipgloss.NewStyle().Foreground(model.theme.FaintText)

	loteLabel := "Lote: Todos"
	if model.loteFilter != "" {
		loteLabel = "Lote: " + model.loteFilter
	}

	left := titleStyle.Render("EMBRYOTECH") + "  " + faint.Render(loteLabel)
	return left + "\n" + lipgloss.NewStyle().
		Foreground(model.theme.BorderColor).
		Render(strings.Repeat("─", max(model.width, 1)))
}

func (model *Model) renderDashboard(height int) string {
	summary := model.renderSummary()

	chartHeight := height - lipgloss.Height(summary) - 1
	if chartHeight < 5 {
		chartHeight = 5
	}
	chartWidth := model.width/3 - 2
	charts := lipgloss.JoinHorizontal(lipgloss.Top,
		RenderChart(model.projection.Temperatura, chartWidth, chartHeight, model.theme), "  ",
		RenderChart(model.projection.Umidade, chartWidth, chartHeight, model.theme), "  ",
		RenderChart(model.projection.Pressao, chartWidth, chartHeight, model.theme),
	)

	return summary + "\n\n" + charts
}

func (model *Model) renderSummary() string {
	label := lipgloss.NewStyle().Foreground(model.theme.FaintText)
	value := lipgloss.NewStyle().Foreground(model.theme.NormalText).Bold(true)

	var body string
	switch {
	case model.loading:
		body = label.Render("Carregando leituras...")
	case !model.hasLatest:
		body = label.Render("Nenhuma leitura disponível para o lote selecionado")
	default:
		body = label.Render("Última leitura  ") +
			value.Render(fmt.Sprintf("%.1f °C", model.latest.Temperatura)) +
			label.Render("  ·  ") +
			value.Render(fmt.Sprintf("%.1f %%", model.latest.Umidade)) +
			label.Render("  ·  ") +
			value.Render(fmt.Sprintf("%.1f hPa", model.latest.Pressao)) +
			label.Render("  ·  "+reading.FormatTimestamp(model.latest.DataInicial, false))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(model.theme.BorderColor).
		Padding(0, 1).
		Render(body)
}

func (model *Model) renderLoteDropdown() string {
	normal := lipgloss.NewStyle().
		Foreground(model.theme.NormalText).
		Background(model.theme.OverlayBackground)
	selected := lipgloss.NewStyle().
		Foreground(model.theme.SelectedForeground).
		Background(model.theme.SelectedBackground)

	options := append([]string{allLotesLabel}, model.lotes...)
	var lines []string
	for index, option := range options {
		marker := "  "
		style := normal
		if index == model.loteCursor {
			marker = "> "
			style = selected
		}
		lines = append(lines, style.Render(marker+option+" "))
	}
	return strings.Join(lines, "\n")
}

func (model *Model) renderStatusBar() string {
	if model.logLine != "" {
		style := lipgloss.NewStyle().Foreground(model.theme.StatusError)
		if model.logLevel < slog.LevelError {
			style = lipgloss.NewStyle().Foreground(model.theme.StatusSuccess)
		}
		if model.logLevel == slog.LevelWarn {
			style = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
		}
		return style.Render(model.logLine)
	}

	help := lipgloss.NewStyle().Foreground(model.theme.HelpText)
	bindings := []string{"f filtrar", "h histórico"}
	if model.admin {
		bindings = append(bindings, "p parâmetros")
	}
	bindings = append(bindings, "r atualizar", "q sair")
	return help.Render(strings.Join(bindings, " · "))
}

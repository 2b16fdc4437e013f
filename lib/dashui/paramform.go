// Copyright 2026 The Embryotech Authors
// SPDX-License-Identifier: Apache-2.0

package dashui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/embryotech/console/lib/parameter"
	"github.com/embryotech/console/lib/schema"
)

// FormState is the parameter form's lifecycle state. Every transition
// goes through exactly one of these values, and the render is a pure
// function of the current value: there is no way for the form to show
// editing affordances while a submission is in flight.
type FormState int

const (
	// FormClosed means the overlay is not visible.
	FormClosed FormState = iota
	// FormFiltering means the operator is choosing a company/lote pair
	// to search. The editable fields are not shown yet.
	FormFiltering
	// FormEditing means a record (stored or fresh) is loaded into the
	// fields and may be edited and submitted.
	FormEditing
	// FormSubmitting means a save is in flight. Further submit
	// requests are inert until the result arrives.
	FormSubmitting
)

// Form field focus slots. The two dropdowns precede the text inputs.
const (
	formFocusEmpresa = 0
	formFocusLote    = 1
	formFirstInput   = 2
)

// formInputCount is the number of editable text fields: temperatura,
// umidade, pressão, lumens, sala, estágio.
const formInputCount = 6

var formInputLabels = [formInputCount]string{
	"Temperatura Ideal (°C)",
	"Umidade Ideal (%)",
	"Pressão Ideal (hPa)",
	"Lumens",
	"ID da Sala",
	"Estágio do Ovo (1-18)",
}

// ParamForm is the administrator's parameter-management overlay.
type ParamForm struct {
	state FormState

	empresas     []string
	empresaIndex int // -1 while nothing selected
	lotes        []string
	loteIndex    int // -1 while nothing selected

	inputs [formInputCount]textinput.Model
	focus  int

	// recordID is the stored record identity loaded by the last
	// search; zero for a fresh record. Its presence alone decides
	// create vs update on submission.
	recordID int64

	status    string
	statusErr bool
	searching bool

	// searchGeneration tags parameter lookups so a stale response
	// (after the operator changed the pair) is discarded.
	searchGeneration int
}

// NewParamForm builds a closed form with configured inputs.
func NewParamForm() ParamForm {
	form := ParamForm{empresaIndex: -1, loteIndex: -1}
	for index := range form.inputs {
		input := textinput.New()
		input.Prompt = ""
		input.CharLimit = 16
		input.Width = 12
		form.inputs[index] = input
	}
	return form
}

// State returns the current lifecycle state.
func (form *ParamForm) State() FormState { return form.state }

// IsOpen reports whether the overlay is visible.
func (form *ParamForm) IsOpen() bool { return form.state != FormClosed }

// Open shows the overlay in the filtering state. Returns true when the
// caller should fetch the company list (first open or reopen).
func (form *ParamForm) Open() bool {
	if form.state != FormClosed {
		return false
	}
	form.state = FormFiltering
	form.focus = formFocusEmpresa
	form.status = ""
	form.statusErr = false
	form.searching = false
	return true
}

// Close hides the overlay and resets transient state. Selections and
// field contents are dropped; the next open starts clean.
func (form *ParamForm) Close() {
	form.state = FormClosed
	form.empresaIndex = -1
	form.loteIndex = -1
	form.lotes = nil
	form.recordID = 0
	form.clearInputs()
	form.status = ""
	form.searching = false
}

// SetCompanies installs the company dropdown options.
func (form *ParamForm) SetCompanies(empresas []string, err error) {
	if err != nil {
		form.setError("Erro ao carregar lista de empresas")
		return
	}
	form.empresas = empresas
}

// SetBatches installs the lote dropdown options for the selected
// company.
func (form *ParamForm) SetBatches(lotes []string, err error) {
	if err != nil {
		form.setError("Erro ao carregar lista de lotes")
		return
	}
	form.lotes = lotes
	form.loteIndex = -1
}

// SelectedEmpresa returns the chosen company, or "" when none.
func (form *ParamForm) SelectedEmpresa() string {
	if form.empresaIndex < 0 || form.empresaIndex >= len(form.empresas) {
		return ""
	}
	return form.empresas[form.empresaIndex]
}

// SelectedLote returns the chosen lote, or "" when none.
func (form *ParamForm) SelectedLote() string {
	if form.loteIndex < 0 || form.loteIndex >= len(form.lotes) {
		return ""
	}
	return form.lotes[form.loteIndex]
}

// MoveSelection moves the focused dropdown's selection by delta.
// Returns true when the company changed, which invalidates the lote
// options: the caller must refetch them scoped to the new company.
func (form *ParamForm) MoveSelection(delta int) (companyChanged bool) {
	switch form.focus {
	case formFocusEmpresa:
		if len(form.empresas) == 0 {
			return false
		}
		next := form.empresaIndex + delta
		if next < 0 {
			next = len(form.empresas) - 1
		}
		if next >= len(form.empresas) {
			next = 0
		}
		if next == form.empresaIndex {
			return false
		}
		form.empresaIndex = next
		// Changing the company clears the dependent lote selection and
		// drops any loaded record; the pair is no longer the one the
		// record was found for.
		form.loteIndex = -1
		form.lotes = nil
		form.leaveEditing()
		return true
	case formFocusLote:
		if form.SelectedEmpresa() == "" || len(form.lotes) == 0 {
			return false
		}
		next := form.loteIndex + delta
		if next < 0 {
			next = len(form.lotes) - 1
		}
		if next >= len(form.lotes) {
			next = 0
		}
		if next != form.loteIndex {
			form.loteIndex = next
			form.leaveEditing()
		}
		return false
	}
	return false
}

// leaveEditing drops a loaded record and returns to filtering. Used
// when the company/lote pair changes under a loaded record.
func (form *ParamForm) leaveEditing() {
	if form.state == FormEditing {
		form.state = FormFiltering
		form.recordID = 0
		form.clearInputs()
	}
}

// NextField advances focus; PrevField retreats. In the filtering state
// only the two dropdowns are focusable. A disabled lote dropdown
// (no company selected) is skipped.
func (form *ParamForm) NextField() { form.moveFocus(1) }

// PrevField moves focus to the previous field.
func (form *ParamForm) PrevField() { form.moveFocus(-1) }

func (form *ParamForm) moveFocus(delta int) {
	limit := formFirstInput
	if form.state == FormEditing {
		limit = formFirstInput + formInputCount
	}
	form.blurInputs()
	for {
		form.focus += delta
		if form.focus < 0 {
			form.focus = limit - 1
		}
		if form.focus >= limit {
			form.focus = 0
		}
		if form.focus == formFocusLote && form.SelectedEmpresa() == "" {
			continue
		}
		break
	}
	if form.focus >= formFirstInput {
		form.inputs[form.focus-formFirstInput].Focus()
	}
}

func (form *ParamForm) blurInputs() {
	for index := range form.inputs {
		form.inputs[index].Blur()
	}
}

func (form *ParamForm) clearInputs() {
	for index := range form.inputs {
		form.inputs[index].SetValue("")
	}
}

// CanSearch reports whether a parameter search may start: both
// dropdowns selected and no search already in flight.
func (form *ParamForm) CanSearch() bool {
	return form.SelectedEmpresa() != "" && form.SelectedLote() != "" && !form.searching
}

// BeginSearch starts a parameter lookup for the selected pair and
// returns the generation to tag the fetch with. ok is false when the
// pair is incomplete or a search is already in flight.
func (form *ParamForm) BeginSearch() (generation int, ok bool) {
	if !form.CanSearch() {
		return 0, false
	}
	form.searching = true
	form.status = ""
	form.statusErr = false
	form.searchGeneration++
	return form.searchGeneration, true
}

// SetSearchResult installs a parameter lookup result. Stale
// generations are discarded. A found record populates the fields and
// enters the editing state; absence keeps the form filtering with a
// recoverable notice.
func (form *ParamForm) SetSearchResult(generation int, record *schema.Parameter, err error) {
	if generation != form.searchGeneration || form.state == FormClosed {
		return
	}
	form.searching = false

	if err != nil {
		form.setError("Erro ao buscar parâmetros")
		return
	}
	if record == nil {
		form.setError("Nenhum parâmetro encontrado para este lote")
		return
	}

	form.recordID = record.ID
	form.inputs[0].SetValue(trimFloat(record.TempIdeal))
	form.inputs[1].SetValue(trimFloat(record.UmidIdeal))
	form.inputs[2].SetValue(optionalFloatText(record.PressaoIdeal))
	form.inputs[3].SetValue(optionalFloatText(record.Lumens))
	form.inputs[4].SetValue(optionalIntText(record.IDSala))
	form.inputs[5].SetValue(strconv.Itoa(record.EstagioOvo))
	form.state = FormEditing
	form.status = ""
	form.focus = formFirstInput
	form.blurInputs()
	form.inputs[0].Focus()
}

// NewRecord clears the editable fields for a fresh record, keeping
// the company/lote pair. Requires both to be selected.
func (form *ParamForm) NewRecord() bool {
	if form.SelectedEmpresa() == "" || form.SelectedLote() == "" {
		return false
	}
	form.recordID = 0
	form.clearInputs()
	form.state = FormEditing
	form.status = ""
	form.statusErr = false
	form.focus = formFirstInput
	form.blurInputs()
	form.inputs[0].Focus()
	return true
}

// values assembles the raw form values for validation and submission.
func (form *ParamForm) values() parameter.FormValues {
	identity := ""
	if form.recordID != 0 {
		identity = strconv.FormatInt(form.recordID, 10)
	}
	return parameter.FormValues{
		ID:           identity,
		Empresa:      form.SelectedEmpresa(),
		Lote:         form.SelectedLote(),
		TempIdeal:    form.inputs[0].Value(),
		UmidIdeal:    form.inputs[1].Value(),
		PressaoIdeal: form.inputs[2].Value(),
		Lumens:       form.inputs[3].Value(),
		IDSala:       form.inputs[4].Value(),
		EstagioOvo:   form.inputs[5].Value(),
	}
}

// Submit validates the fields and, on success, enters the submitting
// state and returns the record to save. A validation failure keeps
// the form editing with the failure message; nothing the operator
// typed is cleared. While already submitting, Submit is inert.
func (form *ParamForm) Submit() (record schema.Parameter, ok bool) {
	if form.state != FormEditing {
		return schema.Parameter{}, false
	}

	values := form.values()
	if err := parameter.Validate(values); err != nil {
		form.setError(err.Error())
		return schema.Parameter{}, false
	}

	record, err := parameter.Build(values)
	if err != nil {
		form.setError(err.Error())
		return schema.Parameter{}, false
	}

	form.state = FormSubmitting
	form.status = ""
	return record, true
}

// SetSaveResult installs the submission outcome. Success shows the
// confirmation banner and leaves the form in the submitting state;
// the caller closes the overlay after the banner delay. Failure
// returns to editing with the server's message so the operator can
// correct and resubmit.
func (form *ParamForm) SetSaveResult(err error) {
	if form.state != FormSubmitting {
		return
	}
	if err != nil {
		form.state = FormEditing
		form.setError("Erro: " + err.Error())
		return
	}
	form.status = "Parâmetros salvos com sucesso!"
	form.statusErr = false
}

func (form *ParamForm) setError(message string) {
	form.status = message
	form.statusErr = true
}

// UpdateInputs routes a key message to the focused text input.
func (form *ParamForm) UpdateInputs(msg tea.Msg) tea.Cmd {
	if form.state != FormEditing || form.focus < formFirstInput {
		return nil
	}
	index := form.focus - formFirstInput
	var cmd tea.Cmd
	form.inputs[index], cmd = form.inputs[index].Update(msg)
	return cmd
}

// View renders the form overlay.
func (form *ParamForm) View(width int, theme Theme) string {
	titleStyle := lipgloss.NewStyle().Foreground(theme.HeaderForeground).Bold(true)
	label := lipgloss.NewStyle().Foreground(theme.FaintText)
	focused := lipgloss.NewStyle().Foreground(theme.SelectedForeground).Background(theme.SelectedBackground)
	normal := lipgloss.NewStyle().Foreground(theme.NormalText)
	help := lipgloss.NewStyle().Foreground(theme.HelpText)

	var body []string
	body = append(body, titleStyle.Render("Gerenciar Parâmetros"))

	renderChoice := func(slot int, name, value, placeholder string, enabled bool) string {
		text := value
		style := normal
		if text == "" {
			text = placeholder
			style = label
		}
		if !enabled {
			style = label
		}
		line := fmt.Sprintf("%-9s %s", name+":", style.Render("‹ "+text+" ›"))
		if form.focus == slot {
			return focused.Render(line)
		}
		return line
	}

	body = append(body, renderChoice(formFocusEmpresa, "Empresa", form.SelectedEmpresa(), "selecione a empresa", true))
	body = append(body, renderChoice(formFocusLote, "Lote", form.SelectedLote(), "selecione o lote", form.SelectedEmpresa() != ""))

	switch form.state {
	case FormFiltering:
		if form.searching {
			body = append(body, label.Render("Buscando parâmetros..."))
		} else {
			body = append(body, help.Render("Enter buscar · C-n novo · ↑/↓ selecionar · Esc fechar"))
		}
	case FormEditing, FormSubmitting:
		mode := "Atualizar registro"
		if form.recordID == 0 {
			mode = "Novo registro"
		}
		body = append(body, label.Render(mode))
		for index := range form.inputs {
			line := fmt.Sprintf("%-24s %s", formInputLabels[index]+":", form.inputs[index].View())
			if form.focus == formFirstInput+index {
				line = focused.Render(line)
			}
			body = append(body, line)
		}
		if form.state == FormSubmitting {
			body = append(body, label.Render("Salvando..."))
		} else {
			body = append(body, help.Render("Enter salvar · Tab campo · C-n novo · Esc fechar"))
		}
	}

	if form.status != "" {
		style := lipgloss.NewStyle().Foreground(theme.StatusSuccess)
		if form.statusErr {
			style = lipgloss.NewStyle().Foreground(theme.StatusError)
		}
		body = append(body, style.Render(form.status))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.BorderColor).
		Padding(0, 1).
		Width(width - 2).
		Render(strings.Join(body, "\n"))
}

func trimFloat(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

func optionalFloatText(value *float64) string {
	if value == nil {
		return ""
	}
	return trimFloat(*value)
}

func optionalIntText(value *int) string {
	if value == nil {
		return ""
	}
	return strconv.Itoa(*value)
}

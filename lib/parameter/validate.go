// Copyright 2026 The Embryotech Authors
// SPDX-License-Identifier: Apache-2.0

package parameter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/embryotech/console/lib/schema"
)

// Stage code bounds, inclusive. Embryo development stages run 1–18.
const (
	StageMin = 1
	StageMax = 18
)

// FormValues is the raw text of the parameter form, one string per
// field. Validation and payload assembly both work from this shape so
// the form never has to hold half-parsed numbers.
type FormValues struct {
	// ID is the stored record identity; empty for unsaved records.
	// Its presence alone selects update over create on submission.
	ID string

	Empresa      string
	Lote         string
	TempIdeal    string
	UmidIdeal    string
	PressaoIdeal string
	Lumens       string
	IDSala       string
	EstagioOvo   string
}

// requiredFields lists every field checked by the missing-field gate,
// in the fixed order the combined message reports them. Pressão Ideal
// and Lumens are required here even though the wire payload encodes
// them as nullable; the asymmetry is inherited from the original
// dashboard and kept until the backend picks one policy.
var requiredFields = []struct {
	label string
	value func(FormValues) string
}{
	{"Empresa", func(v FormValues) string { return v.Empresa }},
	{"Lote", func(v FormValues) string { return v.Lote }},
	{"Temperatura Ideal", func(v FormValues) string { return v.TempIdeal }},
	{"Umidade Ideal", func(v FormValues) string { return v.UmidIdeal }},
	{"Pressão Ideal", func(v FormValues) string { return v.PressaoIdeal }},
	{"Lumens", func(v FormValues) string { return v.Lumens }},
	{"ID da Sala", func(v FormValues) string { return v.IDSala }},
	{"Estágio do Ovo", func(v FormValues) string { return v.EstagioOvo }},
}

// StageError reports an embryo-stage code outside [StageMin, StageMax]
// or not an integer at all. It short-circuits the submission with its
// own message; the missing-field report is skipped for that attempt.
type StageError struct{}

func (*StageError) Error() string {
	return "O estágio do ovo deve estar entre 1 e 18."
}

// MissingFieldsError lists the required fields left empty, in the
// declared field order, combined into one message.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return "Os seguintes campos são obrigatórios: " + strings.Join(e.Fields, ", ")
}

// Validate runs the submission gate:
//
//  1. Missing required fields are collected across all eight fields.
//  2. Independently, the stage code must parse as an integer in
//     [StageMin, StageMax]; failure returns *StageError alone.
//  3. Otherwise, any missing fields return one *MissingFieldsError.
//  4. nil means the record may be submitted.
func Validate(values FormValues) error {
	var missing []string
	for _, field := range requiredFields {
		if strings.TrimSpace(field.value(values)) == "" {
			missing = append(missing, field.label)
		}
	}

	stage, err := strconv.Atoi(strings.TrimSpace(values.EstagioOvo))
	if err != nil || stage < StageMin || stage > StageMax {
		return &StageError{}
	}

	if len(missing) > 0 {
		return &MissingFieldsError{Fields: missing}
	}
	return nil
}

// Build assembles the wire record from validated form values. The
// required numeric fields must parse; the nullable trio encodes empty
// as nil, matching the transport contract even though the validation
// gate upstream rejects empties.
func Build(values FormValues) (schema.Parameter, error) {
	record := schema.Parameter{
		Empresa: strings.TrimSpace(values.Empresa),
		Lote:    strings.TrimSpace(values.Lote),
	}

	if trimmed := strings.TrimSpace(values.ID); trimmed != "" {
		id, err := strconv.ParseInt(trimmed, 10, 64)
		if err != nil {
			return schema.Parameter{}, fmt.Errorf("invalid record id %q: %w", trimmed, err)
		}
		record.ID = id
	}

	var err error
	if record.TempIdeal, err = parseRequiredFloat("Temperatura Ideal", values.TempIdeal); err != nil {
		return schema.Parameter{}, err
	}
	if record.UmidIdeal, err = parseRequiredFloat("Umidade Ideal", values.UmidIdeal); err != nil {
		return schema.Parameter{}, err
	}
	if record.PressaoIdeal, err = parseOptionalFloat("Pressão Ideal", values.PressaoIdeal); err != nil {
		return schema.Parameter{}, err
	}
	if record.Lumens, err = parseOptionalFloat("Lumens", values.Lumens); err != nil {
		return schema.Parameter{}, err
	}
	if record.IDSala, err = parseOptionalInt("ID da Sala", values.IDSala); err != nil {
		return schema.Parameter{}, err
	}

	stage, err := strconv.Atoi(strings.TrimSpace(values.EstagioOvo))
	if err != nil {
		return schema.Parameter{}, fmt.Errorf("invalid Estágio do Ovo %q: %w", values.EstagioOvo, err)
	}
	record.EstagioOvo = stage

	return record, nil
}

func parseRequiredFloat(label, text string) (float64, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", label, text, err)
	}
	return value, nil
}

func parseOptionalFloat(label, text string) (*float64, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, nil
	}
	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s %q: %w", label, text, err)
	}
	return &value, nil
}

func parseOptionalInt(label, text string) (*int, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, nil
	}
	value, err := strconv.Atoi(trimmed)
	if err != nil {
		return nil, fmt.Errorf("invalid %s %q: %w", label, text, err)
	}
	return &value, nil
}

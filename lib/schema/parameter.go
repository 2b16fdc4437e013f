// Copyright 2026 The Embryotech Authors
// SPDX-License-Identifier: Apache-2.0

package schema

// Parameter is the target configuration for a (empresa, lote) pair:
// the ideal environmental setpoints applied by the incubator control
// loop. A Parameter is created through the console's "novo" action
// (ID zero) or loaded by an empresa+lote lookup (ID populated), and
// mutated only by a full-record resubmission.
type Parameter struct {
	// ID is the server-assigned record identity. Zero for records
	// that have not been saved yet; its presence alone decides
	// create (POST) versus update (PUT) on submission.
	ID int64 `json:"id,omitempty"`

	Empresa string `json:"empresa"`
	Lote    string `json:"lote"`

	// TempIdeal and UmidIdeal are the required setpoints.
	TempIdeal float64 `json:"temp_ideal"`
	UmidIdeal float64 `json:"umid_ideal"`

	// PressaoIdeal, Lumens and IDSala are nullable on the wire. The
	// console's form treats the first two as required at the
	// validation gate; see lib/parameter for the policy.
	PressaoIdeal *float64 `json:"pressao_ideal"`
	Lumens       *float64 `json:"lumens"`
	IDSala       *int     `json:"id_sala"`

	// EstagioOvo is the incubation stage code, an integer in the
	// inclusive range [1, 18].
	EstagioOvo int `json:"estagio_ovo"`
}

// Saved reports whether the parameter has a server identity.
func (parameter Parameter) Saved() bool {
	return parameter.ID != 0
}

// Copyright 2026 The Embryotech Authors
// SPDX-License-Identifier: Apache-2.0

// Package schema defines the wire types exchanged with the Embryotech
// platform API: sensor readings and per-(empresa, lote) target
// parameters. JSON field names match the server contract exactly and
// must not be changed independently of the backend.
package schema

// Copyright 2026 The Embryotech Authors
// SPDX-License-Identifier: Apache-2.0

// Package session decodes the claim payload embedded in an Embryotech
// bearer token. Decoding extracts display and gating hints only (the
// admin flag, expiry); it deliberately performs no signature
// verification — the server is the authority on token validity, the
// client merely chooses which affordances to show.
package session

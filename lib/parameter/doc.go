// Copyright 2026 The Embryotech Authors
// SPDX-License-Identifier: Apache-2.0

// Package parameter implements the client-side validation gate and
// payload assembly for the parameter form. Validation runs entirely
// before any network call, is always recoverable, and never clears
// what the user typed.
package parameter

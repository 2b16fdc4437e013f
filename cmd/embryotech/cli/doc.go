// Copyright 2026 The Embryotech Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli provides the command-line framework for the embryotech
// unified CLI.
//
// The central type is [Command], which represents a named subcommand
// with optional nested [Command.Subcommands], a params struct for
// flag binding, and a Run function. Commands are assembled into a
// tree in cmd/embryotech/commands and dispatched via
// [Command.Execute], which handles flag parsing, subcommand routing,
// and structured help output with examples.
//
// When a user types an unknown subcommand or flag, the framework
// computes Levenshtein edit distance against all known names and
// suggests the closest match (threshold: distance <= 3). This is
// implemented in suggest.go.
//
// Authentication state lives in an [OperatorSession] saved by
// "embryotech login". The session file lives at
// ~/.config/embryotech/session.json and is loaded transparently by
// commands that require identity (dashboard, readings, parameter).
package cli

// Copyright 2026 The Embryotech Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// OperatorSession holds the operator's authentication state. Stored at
// the well-known path returned by SessionFilePath and loaded
// automatically by CLI commands that require authentication
// (dashboard, readings, parameter). Analogous to SSH keys — set up
// once via "embryotech login", then transparent.
type OperatorSession struct {
	// Server is the base URL of the platform API the token was issued
	// by (e.g., "http://172.16.1.22:5001"). Kept with the token so
	// every later command talks to the same deployment.
	Server string `json:"server"`

	// Token is the bearer token proving the operator's identity. Its
	// payload carries the identity claims decoded by lib/session.
	Token string `json:"token"`
}

// SessionFilePath returns the path to the operator's session file.
// Checks the EMBRYOTECH_SESSION_FILE environment variable first, then
// falls back to ~/.config/embryotech/session.json.
func SessionFilePath() string {
	if envPath := os.Getenv("EMBRYOTECH_SESSION_FILE"); envPath != "" {
		return envPath
	}

	configDirectory := os.Getenv("XDG_CONFIG_HOME")
	if configDirectory == "" {
		homeDirectory, err := os.UserHomeDir()
		if err != nil {
			// Fallback — this should rarely happen.
			return filepath.Join("/tmp", "embryotech-session.json")
		}
		configDirectory = filepath.Join(homeDirectory, ".config")
	}
	return filepath.Join(configDirectory, "embryotech", "session.json")
}

// LoadSession reads the operator session from the well-known path.
// Returns a clear error message directing the user to
// "embryotech login" if no session exists.
func LoadSession() (*OperatorSession, error) {
	return LoadSessionFrom(SessionFilePath())
}

// LoadSessionFrom reads an operator session from a specific file path.
func LoadSessionFrom(path string) (*OperatorSession, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("no Embryotech session found at %s — run \"embryotech login\" first", path)
		}
		return nil, fmt.Errorf("reading session file %s: %w", path, err)
	}

	var session OperatorSession
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("parsing session file %s: %w", path, err)
	}

	if session.Server == "" {
		return nil, fmt.Errorf("session file %s has no server", path)
	}
	if session.Token == "" {
		return nil, fmt.Errorf("session file %s has no token", path)
	}

	return &session, nil
}

// SaveSession writes an operator session to the well-known path.
// Creates the parent directory with mode 0700 if it doesn't exist.
// The session file is written with mode 0600 (owner-only read/write)
// since it contains an access token.
func SaveSession(session *OperatorSession) error {
	return SaveSessionTo(session, SessionFilePath())
}

// SaveSessionTo writes an operator session to a specific file path.
func SaveSessionTo(session *OperatorSession, path string) error {
	data, err := json.MarshalIndent(session, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling session: %w", err)
	}
	data = append(data, '\n')

	directory := filepath.Dir(path)
	if err := os.MkdirAll(directory, 0700); err != nil {
		return fmt.Errorf("creating session directory %s: %w", directory, err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing session file %s: %w", path, err)
	}

	return nil
}

// RemoveSession deletes the session file at the well-known path. A
// missing file is not an error: logout is idempotent.
func RemoveSession() error {
	path := SessionFilePath()
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing session file %s: %w", path, err)
	}
	return nil
}

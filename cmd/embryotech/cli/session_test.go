// Copyright 2026 The Embryotech Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSessionRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	saved := &OperatorSession{
		Server: "http://172.16.1.22:5001",
		Token:  "aaa.bbb.ccc",
	}
	if err := SaveSessionTo(saved, path); err != nil {
		t.Fatalf("SaveSessionTo: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("session file mode = %o, want 0600", info.Mode().Perm())
	}

	loaded, err := LoadSessionFrom(path)
	if err != nil {
		t.Fatalf("LoadSessionFrom: %v", err)
	}
	if loaded.Server != saved.Server || loaded.Token != saved.Token {
		t.Errorf("loaded = %+v, want %+v", loaded, saved)
	}
}

func TestLoadSessionMissingFileDirectsToLogin(t *testing.T) {
	_, err := LoadSessionFrom(filepath.Join(t.TempDir(), "absent.json"))
	if err == nil || !strings.Contains(err.Error(), "embryotech login") {
		t.Errorf("error = %v, want pointer to login", err)
	}
}

func TestLoadSessionRejectsIncompleteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	if err := os.WriteFile(path, []byte(`{"server": "http://x"}`), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSessionFrom(path); err == nil {
		t.Error("session without token must be rejected")
	}
}

func TestSessionFilePathHonorsEnvOverride(t *testing.T) {
	t.Setenv("EMBRYOTECH_SESSION_FILE", "/tmp/override.json")
	if got := SessionFilePath(); got != "/tmp/override.json" {
		t.Errorf("SessionFilePath() = %q", got)
	}
}

func TestRemoveSessionIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	t.Setenv("EMBRYOTECH_SESSION_FILE", path)

	if err := SaveSession(&OperatorSession{Server: "http://x", Token: "t"}); err != nil {
		t.Fatalf("SaveSession: %v", err)
	}
	if err := RemoveSession(); err != nil {
		t.Fatalf("RemoveSession: %v", err)
	}
	// Second removal finds nothing and still succeeds.
	if err := RemoveSession(); err != nil {
		t.Fatalf("repeated RemoveSession: %v", err)
	}
}

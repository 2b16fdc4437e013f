// Copyright 2026 The Embryotech Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("EMBRYOTECH_CONFIG", "")
	configuration, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if configuration.Server != DefaultServer {
		t.Errorf("Server = %q, want %q", configuration.Server, DefaultServer)
	}
	if configuration.RequestTimeout.Std() != DefaultRequestTimeout {
		t.Errorf("RequestTimeout = %v, want %v", configuration.RequestTimeout, DefaultRequestTimeout)
	}
	if configuration.Theme != "auto" {
		t.Errorf("Theme = %q, want auto", configuration.Theme)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "console.yaml")
	content := "server: https://embryotech.example.com\nrequest_timeout: 10s\ntheme: dark\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	configuration, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if configuration.Server != "https://embryotech.example.com" {
		t.Errorf("Server = %q", configuration.Server)
	}
	if configuration.RequestTimeout.Std() != 10*time.Second {
		t.Errorf("RequestTimeout = %v, want 10s", configuration.RequestTimeout)
	}
	if configuration.Theme != "dark" {
		t.Errorf("Theme = %q, want dark", configuration.Theme)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "console.yaml")
	if err := os.WriteFile(path, []byte("theme: light\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	configuration, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if configuration.Server != DefaultServer {
		t.Errorf("Server = %q, want default", configuration.Server)
	}
	if configuration.Theme != "light" {
		t.Errorf("Theme = %q, want light", configuration.Theme)
	}
}

func TestLoadEnvironmentVariable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "console.yaml")
	if err := os.WriteFile(path, []byte("server: http://lab.local:5001\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("EMBRYOTECH_CONFIG", path)

	configuration, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if configuration.Server != "http://lab.local:5001" {
		t.Errorf("Server = %q", configuration.Server)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	for name, content := range map[string]string{
		"empty server":     "server: \"\"\n",
		"zero timeout":     "request_timeout: 0s\n",
		"negative timeout": "request_timeout: -5s\n",
		"unknown theme":    "theme: solarized\n",
	} {
		path := filepath.Join(t.TempDir(), "console.yaml")
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := Load(path); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing explicit config path")
	}
}

// Copyright 2026 The Embryotech Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"testing"

	"github.com/spf13/pflag"
)

func TestSuggestCommand(t *testing.T) {
	commands := []*Command{
		{Name: "dashboard"},
		{Name: "readings"},
		{Name: "parameter"},
	}

	if got := suggestCommand("dashbord", commands); got != "dashboard" {
		t.Errorf("suggestCommand(dashbord) = %q", got)
	}
	if got := suggestCommand("zzzzzzzz", commands); got != "" {
		t.Errorf("suggestCommand(zzzzzzzz) = %q, want no suggestion", got)
	}
}

func TestSuggestFlag(t *testing.T) {
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flagSet.String("lote", "", "")
	flagSet.Bool("json", false, "")

	if got := suggestFlag([]string{"--lotte", "B12"}, flagSet); got != "--lote" {
		t.Errorf("suggestFlag(--lotte) = %q", got)
	}
	if got := suggestFlag([]string{"--completely-different"}, flagSet); got != "" {
		t.Errorf("suggestFlag = %q, want no suggestion", got)
	}
}

func TestLevenshtein(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"lote", "lote", 0},
		{"lote", "lotte", 1},
		{"empresa", "empessa", 1},
		{"abc", "xyz", 3},
	}
	for _, c := range cases {
		if got := levenshtein(c.a, c.b); got != c.want {
			t.Errorf("levenshtein(%q, %q) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

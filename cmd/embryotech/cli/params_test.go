// Copyright 2026 The Embryotech Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"testing"
	"time"

	"github.com/spf13/pflag"
)

func TestBindFlagsTaggedFields(t *testing.T) {
	type params struct {
		Lote    string        `flag:"lote,l" desc:"scope to one lote"`
		Limit   int           `flag:"limit"  default:"20"`
		Wait    time.Duration `flag:"wait"   default:"5s"`
		Verbose bool          `flag:"verbose"`
		Skipped string
	}

	var p params
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	if err := BindFlags(&p, flagSet); err != nil {
		t.Fatalf("BindFlags: %v", err)
	}

	if err := flagSet.Parse([]string{"-l", "B12", "--verbose"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if p.Lote != "B12" {
		t.Errorf("Lote = %q", p.Lote)
	}
	if p.Limit != 20 {
		t.Errorf("Limit default = %d, want 20", p.Limit)
	}
	if p.Wait != 5*time.Second {
		t.Errorf("Wait default = %v", p.Wait)
	}
	if !p.Verbose {
		t.Error("Verbose not set")
	}
	if flagSet.Lookup("Skipped") != nil {
		t.Error("untagged field must not be bound")
	}
}

func TestBindFlagsEmbeddedJSONOutput(t *testing.T) {
	type params struct {
		JSONOutput
		Lote string `flag:"lote"`
	}

	var p params
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	if err := BindFlags(&p, flagSet); err != nil {
		t.Fatalf("BindFlags: %v", err)
	}
	if err := flagSet.Parse([]string{"--json"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !p.OutputJSON {
		t.Error("--json did not set embedded field")
	}
}

func TestBindFlagsRejectsNonPointer(t *testing.T) {
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	if err := BindFlags(struct{}{}, flagSet); err == nil {
		t.Error("BindFlags accepted a non-pointer")
	}
}

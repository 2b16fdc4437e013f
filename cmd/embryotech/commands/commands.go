// Copyright 2026 The Embryotech Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the complete Embryotech CLI command tree.
package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/embryotech/console/cmd/embryotech/cli"
	"github.com/embryotech/console/cmd/embryotech/dashboard"
	parametercmd "github.com/embryotech/console/cmd/embryotech/parameter"
	readingscmd "github.com/embryotech/console/cmd/embryotech/readings"
)

// version is stamped by the build via -ldflags.
var version = "dev"

// Root builds and returns the complete Embryotech CLI command tree.
func Root() *cli.Command {
	return &cli.Command{
		Name: "embryotech",
		Description: `Embryotech: environmental monitoring for egg incubation.

Observe incubator sensor readings, track them against ideal-condition
parameters, and manage those parameters per company and lote.`,
		Subcommands: []*cli.Command{
			cli.LoginCommand(),
			cli.LogoutCommand(),
			cli.WhoAmICommand(),
			dashboard.Command(),
			readingscmd.Command(),
			parametercmd.Command(),
			{
				Name:    "version",
				Summary: "Print version information",
				Run: func(_ context.Context, args []string, _ *slog.Logger) error {
					fmt.Printf("embryotech %s\n", version)
					return nil
				},
			},
		},
	}
}

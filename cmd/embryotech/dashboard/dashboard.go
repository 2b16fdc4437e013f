// Copyright 2026 The Embryotech Authors
// SPDX-License-Identifier: Apache-2.0

// Package dashboard implements the "embryotech dashboard" command:
// the interactive environmental-monitoring TUI.
package dashboard

import (
	"context"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/embryotech/console/cmd/embryotech/cli"
	"github.com/embryotech/console/lib/dashui"
	"github.com/embryotech/console/lib/session"
)

// dashboardParams holds the parameters for the dashboard command.
type dashboardParams struct {
	Lote   string `json:"-" flag:"lote,l" desc:"start with the filter scoped to one lote (default: all lotes)"`
	Theme  string `json:"-" flag:"theme"  desc:"color palette: auto, dark, or light (default: from config)"`
	Config string `json:"-" flag:"config" desc:"path to config file"`
}

// Command returns the "dashboard" command.
func Command() *cli.Command {
	var params dashboardParams

	return &cli.Command{
		Name:    "dashboard",
		Summary: "Open the interactive monitoring dashboard",
		Description: `Open the environmental-monitoring dashboard.

Shows the latest reading summary and the temperature, humidity, and
pressure charts, scoped by an optional lote filter. Administrators can
manage ideal-condition parameters from inside the dashboard.

Key bindings: f filters by lote, h opens the reading history, p opens
the parameter form (administrators), r refreshes, q quits.`,
		Usage: "embryotech dashboard [flags]",
		Examples: []cli.Example{
			{
				Description: "Open the dashboard",
				Command:     "embryotech dashboard",
			},
			{
				Description: "Open scoped to one lote",
				Command:     "embryotech dashboard --lote B12",
			},
			{
				Description: "Force the light palette",
				Command:     "embryotech dashboard --theme light",
			},
		},
		Params: func() any { return &params },
		Run: func(ctx context.Context, args []string, _ *slog.Logger) error {
			if len(args) > 0 {
				return cli.Validation("unexpected argument: %s", args[0])
			}

			// Route log records into the TUI status bar instead of
			// stderr: the alternate screen owns the terminal while the
			// dashboard runs.
			handler := dashui.NewTUILogHandler(slog.LevelWarn)
			logger := slog.New(handler)

			client, operatorSession, configuration, err := cli.Connect(params.Config, logger)
			if err != nil {
				return err
			}

			themeName := params.Theme
			if themeName == "" {
				themeName = configuration.Theme
			}

			model := dashui.New(dashui.Config{
				Source: &dashui.APISource{Client: client},
				Theme:  dashui.ResolveTheme(themeName),
				Keys:   dashui.DefaultKeyMap,
				Admin:  session.IsAdmin(operatorSession.Token, logger),
				Lote:   params.Lote,
				Logger: logger,
			})

			program := tea.NewProgram(model,
				tea.WithAltScreen(),
				tea.WithContext(ctx),
			)
			handler.SetProgram(program)

			if _, err := program.Run(); err != nil {
				return cli.Internal("dashboard: %w", err)
			}
			return nil
		},
	}
}

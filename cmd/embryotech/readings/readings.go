// Copyright 2026 The Embryotech Authors
// SPDX-License-Identifier: Apache-2.0

// Package readings implements the "embryotech readings" command group:
// non-interactive access to the sensor readings the dashboard charts,
// for scripting and quick checks.
package readings

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/embryotech/console/cmd/embryotech/cli"
	"github.com/embryotech/console/lib/reading"
)

// Command returns the "readings" command group.
func Command() *cli.Command {
	return &cli.Command{
		Name:    "readings",
		Summary: "Inspect sensor readings",
		Subcommands: []*cli.Command{
			listCommand(),
		},
	}
}

// listParams holds the parameters for "readings list".
type listParams struct {
	cli.JSONOutput
	Lote   string `json:"lote"  flag:"lote,l" desc:"scope to one lote (default: all lotes)"`
	Limit  int    `json:"limit" flag:"limit"  desc:"show at most N readings, most recent first (0 = all)"`
	Config string `json:"-"     flag:"config" desc:"path to config file"`
}

func listCommand() *cli.Command {
	var params listParams

	return &cli.Command{
		Name:    "list",
		Summary: "List readings, most recent first",
		Description: `Fetch and list sensor readings.

Readings are ordered by their start timestamp, most recent first.
Readings without a start timestamp sort last and show "N/A".`,
		Usage: "embryotech readings list [flags]",
		Examples: []cli.Example{
			{
				Description: "List every reading for one lote",
				Command:     "embryotech readings list --lote B12",
			},
			{
				Description: "The ten most recent readings, as JSON",
				Command:     "embryotech readings list --limit 10 --json",
			},
		},
		Params: func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) > 0 {
				return cli.Validation("unexpected argument: %s", args[0])
			}

			client, _, _, err := cli.Connect(params.Config, logger)
			if err != nil {
				return err
			}

			readings, err := client.Readings(ctx, params.Lote)
			if err != nil {
				return cli.Transient("fetch readings: %w", err)
			}
			reading.SortDescending(readings)
			if params.Limit > 0 && len(readings) > params.Limit {
				readings = readings[:params.Limit]
			}

			if done, err := params.EmitJSON(readings); done {
				return err
			}

			if len(readings) == 0 {
				fmt.Fprintln(os.Stdout, "Nenhuma leitura encontrada")
				return &cli.ExitError{Code: 1}
			}

			tw := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
			fmt.Fprintln(tw, "INÍCIO\tTEMPERATURA\tUMIDADE\tPRESSÃO\tLOTE")
			for _, sample := range readings {
				lote := sample.Lote
				if lote == "" {
					lote = "-"
				}
				fmt.Fprintf(tw, "%s\t%.1f °C\t%.1f %%\t%.1f hPa\t%s\n",
					reading.FormatTimestamp(sample.DataInicial, false),
					sample.Temperatura, sample.Umidade, sample.Pressao, lote)
			}
			tw.Flush()

			fmt.Fprintf(os.Stdout, "\nTotal de leituras: %d\n", len(readings))
			if latest, ok := reading.Latest(readings); ok && latest.StartKnown() {
				fmt.Fprintf(os.Stdout, "Última leitura: %s\n", humanize.Time(latest.Start()))
			}
			return nil
		},
	}
}

// Copyright 2026 The Embryotech Authors
// SPDX-License-Identifier: Apache-2.0

// Package parameter implements the "embryotech parameter" command
// group: non-interactive management of ideal-condition records,
// mirroring the dashboard's parameter form.
package parameter

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/embryotech/console/cmd/embryotech/cli"
	"github.com/embryotech/console/lib/parameter"
	"github.com/embryotech/console/lib/session"
)

// Command returns the "parameter" command group.
func Command() *cli.Command {
	return &cli.Command{
		Name:    "parameter",
		Summary: "Manage ideal-condition parameters",
		Subcommands: []*cli.Command{
			showCommand(),
			setCommand(),
		},
	}
}

// showParams holds the parameters for "parameter show".
type showParams struct {
	cli.JSONOutput
	Empresa string `json:"empresa" flag:"empresa,e" desc:"company name (required)"`
	Lote    string `json:"lote"    flag:"lote,l"    desc:"lote label (required)"`
	Config  string `json:"-"       flag:"config"    desc:"path to config file"`
}

func showCommand() *cli.Command {
	var params showParams

	return &cli.Command{
		Name:    "show",
		Summary: "Show the parameter record for a company and lote",
		Usage:   "embryotech parameter show --empresa <name> --lote <label> [flags]",
		Examples: []cli.Example{
			{
				Description: "Show the stored parameters for one lote",
				Command:     "embryotech parameter show --empresa \"Granja Aurora\" --lote B12",
			},
		},
		Params: func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) > 0 {
				return cli.Validation("unexpected argument: %s", args[0])
			}
			if params.Empresa == "" || params.Lote == "" {
				return cli.Validation("--empresa and --lote are required")
			}

			client, _, _, err := cli.Connect(params.Config, logger)
			if err != nil {
				return err
			}

			record, err := client.FindParameters(ctx, params.Empresa, params.Lote)
			if err != nil {
				return cli.Transient("fetch parameters: %w", err)
			}
			if record == nil {
				return cli.NotFound("Nenhum parâmetro encontrado para este lote")
			}

			if done, err := params.EmitJSON(record); done {
				return err
			}

			fmt.Fprintf(os.Stdout, "ID:                %d\n", record.ID)
			fmt.Fprintf(os.Stdout, "Empresa:           %s\n", record.Empresa)
			fmt.Fprintf(os.Stdout, "Lote:              %s\n", record.Lote)
			fmt.Fprintf(os.Stdout, "Temperatura Ideal: %.1f °C\n", record.TempIdeal)
			fmt.Fprintf(os.Stdout, "Umidade Ideal:     %.1f %%\n", record.UmidIdeal)
			fmt.Fprintf(os.Stdout, "Pressão Ideal:     %s\n", optionalFloat(record.PressaoIdeal, "%.1f hPa"))
			fmt.Fprintf(os.Stdout, "Lumens:            %s\n", optionalFloat(record.Lumens, "%.1f"))
			fmt.Fprintf(os.Stdout, "ID da Sala:        %s\n", optionalInt(record.IDSala))
			fmt.Fprintf(os.Stdout, "Estágio do Ovo:    %d\n", record.EstagioOvo)
			return nil
		},
	}
}

// setParams holds the parameters for "parameter set". The numeric
// fields are strings on purpose: they flow through the same validation
// gate as the dashboard form, which reports missing and malformed
// values with the form's wording.
type setParams struct {
	Empresa      string `json:"-" flag:"empresa,e" desc:"company name"`
	Lote         string `json:"-" flag:"lote,l"    desc:"lote label"`
	TempIdeal    string `json:"-" flag:"temp"      desc:"ideal temperature (°C)"`
	UmidIdeal    string `json:"-" flag:"umid"      desc:"ideal humidity (%)"`
	PressaoIdeal string `json:"-" flag:"pressao"   desc:"ideal pressure (hPa)"`
	Lumens       string `json:"-" flag:"lumens"    desc:"light level (lumens)"`
	IDSala       string `json:"-" flag:"sala"      desc:"room identifier"`
	EstagioOvo   string `json:"-" flag:"estagio"   desc:"embryo stage (1-18)"`
	Config       string `json:"-" flag:"config"    desc:"path to config file"`
}

func setCommand() *cli.Command {
	var params setParams

	return &cli.Command{
		Name:    "set",
		Summary: "Create or update a parameter record",
		Description: `Create or update the ideal-condition record for a company and lote.

Requires an administrator session. When a record already exists for
the company/lote pair it is updated in place; otherwise a new record
is created. The distinction is made solely by whether a stored record
was found.`,
		Usage: "embryotech parameter set --empresa <name> --lote <label> [flags]",
		Examples: []cli.Example{
			{
				Description: "Store parameters for a lote",
				Command:     "embryotech parameter set -e \"Granja Aurora\" -l B12 --temp 37.7 --umid 58 --pressao 1013 --lumens 120 --sala 4 --estagio 9",
			},
		},
		Params: func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) > 0 {
				return cli.Validation("unexpected argument: %s", args[0])
			}

			client, operatorSession, _, err := cli.Connect(params.Config, logger)
			if err != nil {
				return err
			}
			if !session.IsAdmin(operatorSession.Token, logger) {
				return cli.Forbidden("parameter management requires an administrator session")
			}

			values := parameter.FormValues{
				Empresa:      params.Empresa,
				Lote:         params.Lote,
				TempIdeal:    params.TempIdeal,
				UmidIdeal:    params.UmidIdeal,
				PressaoIdeal: params.PressaoIdeal,
				Lumens:       params.Lumens,
				IDSala:       params.IDSala,
				EstagioOvo:   params.EstagioOvo,
			}
			if err := parameter.Validate(values); err != nil {
				return cli.Validation("%s", err.Error())
			}

			// The stored record's presence alone decides create vs
			// update, exactly like the dashboard form.
			existing, err := client.FindParameters(ctx, params.Empresa, params.Lote)
			if err != nil {
				return cli.Transient("fetch parameters: %w", err)
			}

			record, err := parameter.Build(values)
			if err != nil {
				return cli.Validation("%s", err.Error())
			}

			if existing != nil {
				record.ID = existing.ID
				err = client.UpdateParameter(ctx, record)
			} else {
				err = client.CreateParameter(ctx, record)
			}
			if err != nil {
				return cli.Internal("Erro ao salvar parâmetros: %w", err)
			}

			fmt.Fprintln(os.Stdout, "Parâmetros salvos com sucesso!")
			return nil
		},
	}
}

func optionalFloat(value *float64, format string) string {
	if value == nil {
		return "-"
	}
	return fmt.Sprintf(format, *value)
}

func optionalInt(value *int) string {
	if value == nil {
		return "-"
	}
	return fmt.Sprintf("%d", *value)
}

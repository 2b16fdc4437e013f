// Copyright 2026 The Embryotech Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/embryotech/console/lib/api"
	"github.com/embryotech/console/lib/config"
	"github.com/embryotech/console/lib/session"
)

// loginParams holds the parameters for the login command.
type loginParams struct {
	Server       string `json:"-" flag:"server"        desc:"platform API base URL (default: from config)"`
	PasswordFile string `json:"-" flag:"password-file" desc:"path to file containing password, or - to prompt interactively (default: prompt)"`
	ConfigFile   string `json:"-" flag:"config"        desc:"path to config file"`
}

// LoginCommand returns the "login" command for authenticating an
// operator. This performs a platform login, decodes the token's
// identity claims, and saves the resulting session to the well-known
// path (~/.config/embryotech/session.json). Subsequent CLI commands
// (dashboard, readings, parameter) load this session transparently.
func LoginCommand() *Command {
	var params loginParams

	return &Command{
		Name:    "login",
		Summary: "Authenticate as an operator",
		Description: `Log in to an Embryotech deployment and save the session locally.

After login, commands like "embryotech dashboard" and "embryotech readings"
use the saved session transparently — no flags needed.

The session file is stored at ~/.config/embryotech/session.json (or
$EMBRYOTECH_SESSION_FILE if set, or $XDG_CONFIG_HOME/embryotech/session.json).
The file is written with mode 0600 (owner-only read/write) since it
contains an access token.

The password can be provided via --password-file (a path to a file containing
the password) or prompted interactively if --password-file is "-" or omitted.`,
		Usage: "embryotech login <username> [flags]",
		Examples: []Example{
			{
				Description: "Log in interactively (prompts for password)",
				Command:     "embryotech login maria",
			},
			{
				Description: "Log in against an explicit server",
				Command:     "embryotech login maria --server http://172.16.1.22:5001",
			},
			{
				Description: "Log in with password from file",
				Command:     "embryotech login maria --password-file /path/to/password",
			},
		},
		Params: func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) < 1 {
				return Validation("username is required\n\nUsage: embryotech login <username> [flags]")
			}
			username := strings.TrimSpace(args[0])
			if len(args) > 1 {
				return Validation("unexpected argument: %s", args[1])
			}

			configuration, err := config.Load(params.ConfigFile)
			if err != nil {
				return Internal("load config: %w", err)
			}
			server := params.Server
			if server == "" {
				server = configuration.Server
			}

			password, err := readLoginPassword(params.PasswordFile)
			if err != nil {
				return err
			}
			if username == "" || password == "" {
				return Validation("Por favor, preencha todos os campos.")
			}

			client, err := api.NewClient(api.ClientConfig{
				Server:  server,
				Timeout: configuration.RequestTimeout.Std(),
				Logger:  logger,
			})
			if err != nil {
				return Internal("create api client: %w", err)
			}

			token, err := client.Login(ctx, username, password)
			if err != nil {
				return loginError(err)
			}

			operatorSession := &OperatorSession{
				Server: server,
				Token:  token,
			}
			if err := SaveSession(operatorSession); err != nil {
				return Internal("save session: %w", err)
			}

			identity := "operator"
			if claims, err := session.Decode(token); err != nil {
				logger.Warn("token claims undecodable", "error", err)
			} else if claims.IsAdmin {
				identity = "administrator"
			}

			fmt.Fprintf(os.Stderr, "Logged in as %s (%s)\n", username, identity)
			fmt.Fprintf(os.Stderr, "Session saved to %s\n", SessionFilePath())
			return nil
		},
	}
}

// loginError maps a failed login to the operator-facing message. HTTP
// statuses get fixed wordings; anything else reports a connectivity
// problem.
func loginError(err error) error {
	var apiError *api.Error
	if errors.As(err, &apiError) {
		switch apiError.StatusCode {
		case http.StatusBadRequest:
			return Validation("Nome de usuário e senha são obrigatórios")
		case http.StatusUnauthorized:
			return Forbidden("Usuário ou senha incorretos")
		case http.StatusInternalServerError:
			return Transient("Problema no servidor. Tente novamente mais tarde.")
		default:
			return Internal("Erro ao fazer login")
		}
	}
	return Transient("Não foi possível conectar ao servidor. Verifique sua conexão.")
}

// readLoginPassword reads a password for the login command. If
// passwordFile is empty or "-", prompts interactively on the terminal
// with echo disabled. Otherwise, reads from the file path, stripping
// trailing newlines (common with echo/printf pipelines).
func readLoginPassword(passwordFile string) (string, error) {
	if passwordFile != "" && passwordFile != "-" {
		data, err := os.ReadFile(passwordFile)
		if err != nil {
			return "", Internal("reading %s: %w", passwordFile, err)
		}
		password := strings.TrimRight(string(data), "\r\n")
		if password == "" {
			return "", Validation("file %s is empty (after stripping trailing newlines)", passwordFile)
		}
		return password, nil
	}

	stdinFileDescriptor := int(os.Stdin.Fd())
	if !term.IsTerminal(stdinFileDescriptor) {
		return "", Validation("no terminal available for interactive password prompt (use --password-file)")
	}

	fmt.Fprint(os.Stderr, "Password: ")
	passwordBytes, err := term.ReadPassword(stdinFileDescriptor)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", Internal("reading password: %w", err)
	}
	return strings.TrimSpace(string(passwordBytes)), nil
}

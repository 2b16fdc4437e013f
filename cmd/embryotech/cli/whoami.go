// Copyright 2026 The Embryotech Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/embryotech/console/lib/session"
)

// whoamiParams holds the parameters for the whoami command.
type whoamiParams struct {
	JSONOutput
}

// whoamiOutput is the JSON output for the whoami command.
type whoamiOutput struct {
	UserID      int64  `json:"user_id"`
	IsAdmin     bool   `json:"is_admin"`
	Server      string `json:"server"`
	SessionFile string `json:"session_file"`
	ExpiresAt   string `json:"expires_at,omitempty"`
}

// WhoAmICommand returns the "whoami" command for displaying the current
// operator identity. Shows the identity claims decoded from the saved
// token, the server, and the session file path. Only the local session
// file is read; there is no network access.
func WhoAmICommand() *Command {
	var params whoamiParams

	return &Command{
		Name:    "whoami",
		Summary: "Show the current operator identity",
		Description: `Display the currently logged-in operator identity.

Shows the user ID and administrator flag decoded from the saved token,
the server URL, and the session file path (created by "embryotech login").
The token payload is decoded locally without verifying its signature;
the server remains the authority on whether the token is accepted.`,
		Usage: "embryotech whoami [flags]",
		Examples: []Example{
			{
				Description: "Show current identity",
				Command:     "embryotech whoami",
			},
			{
				Description: "Show identity as JSON",
				Command:     "embryotech whoami --json",
			},
		},
		Params: func() any { return &params },
		Run: func(_ context.Context, args []string, logger *slog.Logger) error {
			if len(args) > 0 {
				return Validation("unexpected argument: %s", args[0])
			}

			operatorSession, err := LoadSession()
			if err != nil {
				return err
			}

			output := whoamiOutput{
				Server:      operatorSession.Server,
				SessionFile: SessionFilePath(),
			}

			claims, err := session.Decode(operatorSession.Token)
			decoded := err == nil
			if err != nil {
				logger.Warn("token claims undecodable", "error", err)
			} else {
				output.UserID = claims.UserID
				output.IsAdmin = claims.IsAdmin
				if expiry := claims.Expiry(); !expiry.IsZero() {
					output.ExpiresAt = expiry.Format(time.RFC3339)
				}
			}

			if done, err := params.EmitJSON(output); done {
				return err
			}

			fmt.Fprintf(os.Stdout, "User ID:      %d\n", output.UserID)
			fmt.Fprintf(os.Stdout, "Admin:        %t\n", output.IsAdmin)
			fmt.Fprintf(os.Stdout, "Server:       %s\n", output.Server)
			fmt.Fprintf(os.Stdout, "Session file: %s\n", output.SessionFile)
			if decoded {
				if expiry := claims.Expiry(); !expiry.IsZero() {
					fmt.Fprintf(os.Stdout, "Expires:      %s (%s)\n",
						expiry.Format(time.RFC3339), humanize.Time(expiry))
				}
			}

			return nil
		},
	}
}

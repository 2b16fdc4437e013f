// Copyright 2026 The Embryotech Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
)

// LogoutCommand returns the "logout" command. It removes the saved
// session file; the token itself is stateless, so there is nothing to
// revoke server-side. Logging out twice is fine.
func LogoutCommand() *Command {
	return &Command{
		Name:    "logout",
		Summary: "End the current session",
		Description: `Remove the saved session file.

The next authenticated command will require "embryotech login" again.`,
		Usage: "embryotech logout",
		Run: func(_ context.Context, args []string, _ *slog.Logger) error {
			if len(args) > 0 {
				return Validation("unexpected argument: %s", args[0])
			}
			if err := RemoveSession(); err != nil {
				return Internal("remove session: %w", err)
			}
			fmt.Fprintln(os.Stderr, "Você saiu do sistema com sucesso.")
			return nil
		},
	}
}

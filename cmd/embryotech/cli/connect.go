// Copyright 2026 The Embryotech Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"log/slog"

	"github.com/embryotech/console/lib/api"
	"github.com/embryotech/console/lib/config"
)

// Connect loads the saved operator session and configuration and
// builds an authenticated API client from them. This is the shared
// entry point for every command that requires identity; the returned
// session carries the token for claim decoding.
func Connect(configPath string, logger *slog.Logger) (*api.Client, *OperatorSession, config.Config, error) {
	operatorSession, err := LoadSession()
	if err != nil {
		return nil, nil, config.Config{}, err
	}

	configuration, err := config.Load(configPath)
	if err != nil {
		return nil, nil, config.Config{}, Internal("load config: %w", err)
	}

	client, err := api.NewClient(api.ClientConfig{
		Server:  operatorSession.Server,
		Token:   operatorSession.Token,
		Timeout: configuration.RequestTimeout.Std(),
		Logger:  logger,
	})
	if err != nil {
		return nil, nil, config.Config{}, Internal("create api client: %w", err)
	}

	return client, operatorSession, configuration, nil
}

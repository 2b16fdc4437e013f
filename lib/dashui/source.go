// Copyright 2026 The Embryotech Authors
// SPDX-License-Identifier: Apache-2.0

package dashui

import (
	"context"

	"github.com/embryotech/console/lib/api"
	"github.com/embryotech/console/lib/schema"
)

// Source abstracts the data access the dashboard performs. The
// production implementation is [APISource]; tests substitute a stub so
// model behavior can be driven without a server.
type Source interface {
	// Companies returns the company names for the parameter form.
	Companies(ctx context.Context) ([]string, error)

	// Batches returns the lote labels, scoped to a company when
	// empresa is non-empty.
	Batches(ctx context.Context, empresa string) ([]string, error)

	// Readings returns the sensor readings, scoped to a lote when lote
	// is non-empty. Order is unspecified; the model establishes it.
	Readings(ctx context.Context, lote string) ([]schema.Reading, error)

	// FindParameters returns the stored parameter record for the pair,
	// or nil when none exists.
	FindParameters(ctx context.Context, empresa, lote string) (*schema.Parameter, error)

	// SaveParameter persists the record, updating in place when the
	// record carries an identity and creating otherwise.
	SaveParameter(ctx context.Context, record schema.Parameter) error
}

// APISource adapts the platform API client to the [Source] interface.
type APISource struct {
	Client *api.Client
}

func (source *APISource) Companies(ctx context.Context) ([]string, error) {
	return source.Client.Companies(ctx)
}

func (source *APISource) Batches(ctx context.Context, empresa string) ([]string, error) {
	return source.Client.Batches(ctx, empresa)
}

func (source *APISource) Readings(ctx context.Context, lote string) ([]schema.Reading, error) {
	return source.Client.Readings(ctx, lote)
}

func (source *APISource) FindParameters(ctx context.Context, empresa, lote string) (*schema.Parameter, error) {
	return source.Client.FindParameters(ctx, empresa, lote)
}

func (source *APISource) SaveParameter(ctx context.Context, record schema.Parameter) error {
	if record.Saved() {
		return source.Client.UpdateParameter(ctx, record)
	}
	return source.Client.CreateParameter(ctx, record)
}

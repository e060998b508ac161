// Package datasource resolves named datasource configurations into connection URLs.
package datasource

import (
	"context"
	"fmt"
	"sort"

	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"

	"github.com/belphemur/hypersql/internal/driver"
	"github.com/belphemur/hypersql/internal/logging"
	"github.com/belphemur/hypersql/internal/signals"
)

// Result is a datasource that was turned into a connection URL
type Result struct {
	Name   string
	Driver string
	URL    string
}

// Resolver picks the driver each datasource asks for and builds its URL
type Resolver struct {
	registry *driver.Registry
	logger   zerolog.Logger
}

// NewResolver creates a resolver backed by reg
func NewResolver(reg *driver.Registry) *Resolver {
	return &Resolver{
		registry: reg,
		logger:   logging.GetLogger("resolver"),
	}
}

// Resolve builds the URL of one datasource and emits DatasourceResolved on success
func (r *Resolver) Resolve(ctx context.Context, name string, props driver.Properties) (Result, error) {
	driverName, _ := props.String(driver.PropDriver)
	d, err := r.registry.Lookup(driverName)
	if err != nil {
		r.logger.Error().Err(err).Str("datasource", name).Msg("Unknown driver")
		return Result{}, fmt.Errorf("datasource %s: %w", name, err)
	}

	url, err := d.BuildConnectionURL(props)
	if err != nil {
		r.logger.Error().Err(err).Str("datasource", name).Str("driver", d.Name()).Msg("Failed to build connection URL")
		return Result{}, fmt.Errorf("datasource %s: %w", name, err)
	}

	r.logger.Info().Str("datasource", name).Str("driver", d.Name()).Str("url", driver.RedactURL(url)).Msg("Datasource resolved")
	signals.EmitDatasourceResolved(ctx, signals.DatasourceResolvedData{
		Name:   name,
		Driver: d.Name(),
		URL:    driver.RedactURL(url),
	})

	return Result{Name: name, Driver: d.Name(), URL: url}, nil
}

// ResolveAll resolves every datasource in name order. Failures do not stop the
// remaining datasources; they are returned together as a multierror.
func (r *Resolver) ResolveAll(ctx context.Context, sources map[string]driver.Properties) ([]Result, error) {
	names := make([]string, 0, len(sources))
	for name := range sources {
		names = append(names, name)
	}
	sort.Strings(names)

	var errs *multierror.Error
	results := make([]Result, 0, len(sources))
	for _, name := range names {
		res, err := r.Resolve(ctx, name, sources[name])
		if err != nil {
			errs = multierror.Append(errs, err)
			continue
		}
		results = append(results, res)
	}

	r.logger.Debug().Int("resolved", len(results)).Int("failed", len(names)-len(results)).Msg("Resolved datasources")
	return results, errs.ErrorOrNil()
}

// Package query implements the read-only query service over a loaded country
// dataset.
//
// A Repository holds an immutable copy of the records it was built with.
// Every query scans that copy and derives a fresh result; nothing is cached
// between calls, and no query mutates the repository. Because the backing
// slice never changes after New, a Repository is safe for concurrent use
// without locking.
//
// Basic usage:
//
//	l, _ := loader.New()
//	ds, err := l.Load(ctx, "countries.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	repo := query.New(ds.Countries, query.WithLogger(logger))
//	max, err := repo.MaximumPopulation()
package query

import (
	"io"
	"log/slog"

	"github.com/sanonone/countrydb/pkg/country"
	"github.com/sanonone/countrydb/pkg/metrics"
)

// Repository answers queries against a fixed list of countries.
type Repository struct {
	countries []country.Country
	logger    *slog.Logger
	metrics   *metrics.Metrics
}

type Option func(r *Repository)

// WithLogger sets the logger used for construction-time diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Repository) {
		r.logger = logger
	}
}

// WithMetrics enables per-query instrumentation.
func WithMetrics(m *metrics.Metrics) Option {
	return func(r *Repository) {
		r.metrics = m
	}
}

// New builds a Repository over a private copy of countries.
// Duplicate codes are not rejected; they are reported through the logger.
func New(countries []country.Country, opts ...Option) *Repository {
	r := &Repository{
		countries: append([]country.Country(nil), countries...),
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}

	seen := make(map[string]struct{}, len(r.countries))
	for _, c := range r.countries {
		if _, dup := seen[c.Code]; dup {
			r.logger.Warn("duplicate country code", "code", c.Code, "name", c.Name)
			continue
		}
		seen[c.Code] = struct{}{}
	}
	r.logger.Debug("repository ready", "countries", len(r.countries))
	return r
}

// Len returns the number of records.
func (r *Repository) Len() int {
	return len(r.countries)
}

// All returns a copy of the records in source order.
func (r *Repository) All() []country.Country {
	return append([]country.Country(nil), r.countries...)
}

func (r *Repository) observe(name string) func() {
	return r.metrics.ObserveQuery(name)
}

// Package loader reads country datasets from JSON or YAML files.
//
// It is the only part of countrydb that touches the filesystem. Records are
// validated against a JSON Schema before they are converted, so the query
// layer can treat its input as already valid.
package loader

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/sanonone/countrydb/pkg/country"
	"github.com/sanonone/countrydb/pkg/metrics"
)

var (
	// ErrUnsupportedFormat is returned for files whose extension is neither
	// JSON nor YAML.
	ErrUnsupportedFormat = errors.New("unsupported dataset format")

	// ErrInvalidRecord is returned when a record fails schema validation.
	ErrInvalidRecord = errors.New("invalid record")
)

// Format identifies the encoding of a dataset.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFor picks the format from the file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Dataset is the result of one load.
type Dataset struct {
	// ID identifies this load in logs.
	ID        uuid.UUID
	Source    string
	LoadedAt  time.Time
	Countries []country.Country
}

// Loader decodes and validates datasets.
type Loader struct {
	schema   *jsonschema.Resolved
	validate bool
	logger   *slog.Logger
	metrics  *metrics.Metrics
}

type Option func(l *Loader)

func WithLogger(logger *slog.Logger) Option {
	return func(l *Loader) {
		l.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(l *Loader) {
		l.metrics = m
	}
}

// WithValidation toggles schema validation. It is on by default.
func WithValidation(enabled bool) Option {
	return func(l *Loader) {
		l.validate = enabled
	}
}

// New builds a Loader.
func New(opts ...Option) (*Loader, error) {
	schema, err := recordSchema()
	if err != nil {
		return nil, err
	}
	l := &Loader{
		schema:   schema,
		validate: true,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l, nil
}

// Load reads the dataset at path.
func (l *Loader) Load(ctx context.Context, path string) (*Dataset, error) {
	format, err := FormatFor(path)
	if err != nil {
		l.metrics.ObserveLoad(0, err)
		return nil, err
	}
	file, err := os.Open(path)
	if err != nil {
		err = fmt.Errorf("failed to open dataset: %w", err)
		l.metrics.ObserveLoad(0, err)
		return nil, err
	}
	defer file.Close()

	return l.Decode(ctx, file, format, path)
}

// Decode reads a dataset from r. source is recorded on the Dataset and in logs.
func (l *Loader) Decode(ctx context.Context, r io.Reader, format Format, source string) (*Dataset, error) {
	ds := &Dataset{ID: uuid.New(), Source: source}
	logger := l.logger.With("load_id", ds.ID.String(), "source", source)

	countries, err := l.decode(ctx, r, format)
	l.metrics.ObserveLoad(len(countries), err)
	if err != nil {
		logger.Error("dataset load failed", "error", err)
		return nil, err
	}

	ds.Countries = countries
	ds.LoadedAt = time.Now()
	logger.Info("dataset loaded", "countries", len(countries), "format", string(format))
	return ds, nil
}

func (l *Loader) decode(ctx context.Context, r io.Reader, format Format) ([]country.Country, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset: %w", err)
	}

	data, err := toJSON(raw, format)
	if err != nil {
		return nil, err
	}

	if l.validate {
		var instances []any
		if err := json.Unmarshal(data, &instances); err != nil {
			return nil, fmt.Errorf("dataset must be a list of records: %w", err)
		}
		for i, instance := range instances {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			if err := l.schema.Validate(instance); err != nil {
				return nil, fmt.Errorf("%w at index %d: %v", ErrInvalidRecord, i, err)
			}
		}
	}

	var records []record
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to decode records: %w", err)
	}

	countries := make([]country.Country, 0, len(records))
	for i, rec := range records {
		c, err := rec.toCountry()
		if err != nil {
			return nil, fmt.Errorf("%w at index %d: %v", ErrInvalidRecord, i, err)
		}
		countries = append(countries, c)
	}
	return countries, nil
}

// toJSON normalises the dataset to JSON so both formats share one validation
// and decoding path.
func toJSON(raw []byte, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		return raw, nil
	case FormatYAML:
		var doc any
		if err := yaml.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("YAML syntax error in dataset: %w", err)
		}
		data, err := json.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("failed to convert YAML dataset: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

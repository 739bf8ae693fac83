package loader

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanonone/countrydb/pkg/country"
	"github.com/sanonone/countrydb/pkg/metrics"
)

func newLoader(t *testing.T, opts ...Option) *Loader {
	t.Helper()
	l, err := New(opts...)
	require.NoError(t, err)
	return l
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadJSON(t *testing.T) {
	ds, err := newLoader(t).Load(context.Background(), "testdata/countries.json")
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, ds.ID)
	assert.Equal(t, "testdata/countries.json", ds.Source)
	assert.False(t, ds.LoadedAt.IsZero())
	require.Len(t, ds.Countries, 4)
	assert.Equal(t, country.Country{
		Code: "FR", Name: "France", Capital: "Paris", Region: country.Europe, Population: 67391582, Area: 551695,
	}, ds.Countries[0])
	assert.Equal(t, country.Polar, ds.Countries[3].Region)
}

func TestLoadYAML(t *testing.T) {
	ds, err := newLoader(t).Load(context.Background(), "testdata/countries.yaml")
	require.NoError(t, err)

	require.Len(t, ds.Countries, 2)
	assert.Equal(t, "Brasília", ds.Countries[0].Capital)
	assert.Equal(t, country.Oceania, ds.Countries[1].Region)
	assert.Equal(t, 7692024.0, ds.Countries[1].Area)
}

func TestFormatFor(t *testing.T) {
	for path, want := range map[string]Format{
		"a.json": FormatJSON,
		"a.JSON": FormatJSON,
		"a.yaml": FormatYAML,
		"a.yml":  FormatYAML,
	} {
		got, err := FormatFor(path)
		require.NoError(t, err, path)
		assert.Equal(t, want, got, path)
	}

	_, err := FormatFor("countries.csv")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestLoadRejectsInvalidRecords(t *testing.T) {
	cases := map[string]string{
		"unknown region":      `[{"code":"XX","name":"X","capital":"Y","region":"Mars","population":1,"area":1}]`,
		"negative population": `[{"code":"XX","name":"X","capital":"Y","region":"Asia","population":-5,"area":1}]`,
		"missing code":        `[{"name":"X","capital":"Y","region":"Asia","population":1,"area":1}]`,
		"empty name":          `[{"code":"XX","name":"","capital":"Y","region":"Asia","population":1,"area":1}]`,
		"fractional people":   `[{"code":"XX","name":"X","capital":"Y","region":"Asia","population":1.5,"area":1}]`,
	}
	l := newLoader(t)
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := l.Decode(context.Background(), strings.NewReader(content), FormatJSON, name)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidRecord)
			assert.Contains(t, err.Error(), "index 0")
		})
	}
}

func TestLoadWithoutValidationStillChecksRegion(t *testing.T) {
	l := newLoader(t, WithValidation(false))
	_, err := l.Decode(context.Background(),
		strings.NewReader(`[{"code":"XX","name":"X","capital":"Y","region":"Mars","population":1,"area":1}]`),
		FormatJSON, "inline")
	assert.ErrorIs(t, err, ErrInvalidRecord)
}

func TestLoadErrors(t *testing.T) {
	l := newLoader(t)

	t.Run("missing file", func(t *testing.T) {
		_, err := l.Load(context.Background(), filepath.Join(t.TempDir(), "none.json"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("unsupported extension", func(t *testing.T) {
		_, err := l.Load(context.Background(), writeFile(t, "c.csv", "code,name"))
		assert.ErrorIs(t, err, ErrUnsupportedFormat)
	})

	t.Run("not a list", func(t *testing.T) {
		_, err := l.Load(context.Background(), writeFile(t, "c.json", `{"code":"FR"}`))
		assert.Error(t, err)
	})

	t.Run("bad yaml", func(t *testing.T) {
		_, err := l.Load(context.Background(), writeFile(t, "c.yaml", "- code: [unclosed"))
		assert.ErrorContains(t, err, "YAML syntax error")
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := l.Load(ctx, "testdata/countries.json")
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestLoadEmptyDataset(t *testing.T) {
	ds, err := newLoader(t).Load(context.Background(), writeFile(t, "empty.json", "[]"))
	require.NoError(t, err)
	assert.Empty(t, ds.Countries)
}

func TestLoadLogsAndCounts(t *testing.T) {
	var buf bytes.Buffer
	m := metrics.New(prometheus.NewRegistry())
	l := newLoader(t,
		WithLogger(slog.New(slog.NewTextHandler(&buf, nil))),
		WithMetrics(m),
	)

	ds, err := l.Load(context.Background(), "testdata/countries.json")
	require.NoError(t, err)
	_, err = l.Load(context.Background(), writeFile(t, "bad.json", "[{}]"))
	require.Error(t, err)

	assert.Contains(t, buf.String(), "dataset loaded")
	assert.Contains(t, buf.String(), "load_id="+ds.ID.String())
	assert.Contains(t, buf.String(), "dataset load failed")
	assert.Equal(t, 4.0, testutil.ToFloat64(m.RecordsLoaded))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.LoadsTotal.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.LoadsTotal.WithLabelValues("error")))
}

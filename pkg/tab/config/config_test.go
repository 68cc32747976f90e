package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/tabutils/pkg/tab"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()

	assert.Equal(t, tab.DefTrues, cfg.Trues)
	assert.Equal(t, tab.DefNulls, cfg.Nulls)
	assert.Equal(t, "utf-8", cfg.Encoding)
	assert.Equal(t, tab.DefaultSeparators, cfg.Separators())
	assert.False(t, cfg.BlanksAsNulls)

	cfg.Trues[0] = "changed"
	assert.Equal(t, "yes", tab.DefTrues[0], "defaults must not alias package vocabularies")
}

func TestParse_OverlaysDefaults(t *testing.T) {
	t.Parallel()

	doc := []byte(`
nulls: ["-", "missing"]
thousand_sep: "."
decimal_sep: ","
blanks_as_nulls: true
`)
	cfg, err := Parse(doc)
	require.NoError(t, err)

	assert.Equal(t, []string{"-", "missing"}, cfg.Nulls)
	assert.Equal(t, tab.DefTrues, cfg.Trues)
	assert.Equal(t, tab.Separators{Thousand: ".", Decimal: ","}, cfg.Separators())
	assert.True(t, cfg.BlanksAsNulls)
	assert.Equal(t, "utf-8", cfg.Encoding)
}

func TestParse_Invalid(t *testing.T) {
	t.Parallel()

	_, err := Parse([]byte("nulls: [unterminated"))
	require.Error(t, err)
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "tab.yaml")
	require.NoError(t, os.WriteFile(path, []byte("encoding: latin1\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "latin1", cfg.Encoding)
	assert.Equal(t, tab.Currencies, cfg.Currencies)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

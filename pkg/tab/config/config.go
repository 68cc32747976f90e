package config

import (
	"fmt"
	"os"
	"slices"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"

	"github.com/ib-77/tabutils/pkg/tab"
)

type Config struct {
	Trues      []string `yaml:"trues"`
	Falses     []string `yaml:"falses"`
	Nulls      []string `yaml:"nulls"`
	Currencies []string `yaml:"currencies"`
	Encoding   string   `yaml:"encoding"`

	ThousandSep string `yaml:"thousand_sep"`
	DecimalSep  string `yaml:"decimal_sep"`

	BlanksAsNulls bool `yaml:"blanks_as_nulls"`
	StripZeros    bool `yaml:"strip_zeros"`
}

func Default() Config {
	return Config{
		Trues:       slices.Clone(tab.DefTrues),
		Falses:      slices.Clone(tab.DefFalses),
		Nulls:       slices.Clone(tab.DefNulls),
		Currencies:  slices.Clone(tab.Currencies),
		Encoding:    tab.Encoding,
		ThousandSep: tab.DefaultSeparators.Thousand,
		DecimalSep:  tab.DefaultSeparators.Decimal,
	}
}

// Parse decodes a YAML document and fills every unset field from Default.
func Parse(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return WithDefaults(cfg)
}

func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	return Parse(data)
}

// WithDefaults overlays cfg onto Default. Non-empty fields of cfg win.
func WithDefaults(cfg Config) (Config, error) {
	merged := Default()
	if err := mergo.Merge(&merged, cfg, mergo.WithOverride); err != nil {
		return Config{}, fmt.Errorf("merge config defaults: %w", err)
	}
	return merged, nil
}

func (c Config) Separators() tab.Separators {
	return tab.Separators{Thousand: c.ThousandSep, Decimal: c.DecimalSep}.OrDefault()
}

package predicate

import (
	"strings"

	"github.com/ib-77/tabutils/pkg/tab"
	"github.com/ib-77/tabutils/pkg/tab/config"
)

type options struct {
	seps          tab.Separators
	currencies    []string
	stripZeros    bool
	trues         []string
	falses        []string
	nulls         []string
	blanksAsNulls bool
}

type Option func(*options)

func newOptions(opts []Option) options {
	o := options{
		seps:       tab.DefaultSeparators,
		currencies: tab.Currencies,
		trues:      tab.DefTrues,
		falses:     tab.DefFalses,
		nulls:      tab.DefNulls,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func WithSeparators(seps tab.Separators) Option {
	return func(o *options) { o.seps = seps.OrDefault() }
}

func WithCurrencies(currencies ...string) Option {
	return func(o *options) { o.currencies = currencies }
}

// StripZeros accepts numbers with leading zeros such as "007".
func StripZeros() Option {
	return func(o *options) { o.stripZeros = true }
}

func WithTrues(trues ...string) Option {
	return func(o *options) {
		if len(trues) > 0 {
			o.trues = lower(trues)
		}
	}
}

func WithFalses(falses ...string) Option {
	return func(o *options) {
		if len(falses) > 0 {
			o.falses = lower(falses)
		}
	}
}

func WithNulls(nulls ...string) Option {
	return func(o *options) {
		if len(nulls) > 0 {
			o.nulls = lower(nulls)
		}
	}
}

// BlanksAsNulls makes IsNull report empty and whitespace-only strings as null.
func BlanksAsNulls(enabled bool) Option {
	return func(o *options) { o.blanksAsNulls = enabled }
}

// FromConfig returns the options described by cfg.
func FromConfig(cfg config.Config) []Option {
	opts := []Option{
		WithSeparators(cfg.Separators()),
		WithTrues(cfg.Trues...),
		WithFalses(cfg.Falses...),
		WithNulls(cfg.Nulls...),
		BlanksAsNulls(cfg.BlanksAsNulls),
	}
	if len(cfg.Currencies) > 0 {
		opts = append(opts, WithCurrencies(cfg.Currencies...))
	}
	if cfg.StripZeros {
		opts = append(opts, StripZeros())
	}
	return opts
}

func lower(words []string) []string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = strings.ToLower(w)
	}
	return out
}

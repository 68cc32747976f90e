package predicate

import (
	"math"
	"reflect"
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ib-77/tabutils/pkg/tab"
	"github.com/ib-77/tabutils/pkg/tab/text"
)

// ParseNumber strips currency symbols and separators from s and parses the
// rest. Leading zeros are only accepted for zero itself ("0", "00", "0.5")
// unless StripZeros is set.
func ParseNumber(s string, opts ...Option) (decimal.Decimal, bool) {
	return parseNumber(s, newOptions(opts))
}

func parseNumber(s string, o options) (decimal.Decimal, bool) {
	stripped := strings.TrimSpace(text.StripWith(s, o.seps, o.currencies))

	d, err := decimal.NewFromString(stripped)
	if err != nil {
		return decimal.Decimal{}, false
	}

	zeroPoint := strings.HasPrefix(stripped, "0.")
	if strings.HasPrefix(stripped, "0") && !(o.stripZeros || zeroPoint) {
		return d, d.IsZero()
	}
	return d, true
}

func IsNumeric(content any, opts ...Option) bool {
	switch tab.KindOf(content) {
	case tab.KindNumeric:
		return true
	case tab.KindString:
		_, ok := parseNumber(reflect.ValueOf(content).String(), newOptions(opts))
		return ok
	}
	return false
}

func IsInt(content any, opts ...Option) bool {
	switch tab.KindOf(content) {
	case tab.KindNumeric:
		if d, ok := content.(decimal.Decimal); ok {
			return d.IsInteger()
		}
		f, _ := tab.Number(content)
		return !math.IsInf(f, 0) && f == math.Trunc(f)
	case tab.KindString:
		d, ok := parseNumber(reflect.ValueOf(content).String(), newOptions(opts))
		return ok && d.IsInteger()
	}
	return false
}

func IsBool(content any, opts ...Option) bool {
	o := newOptions(opts)

	switch tab.KindOf(content) {
	case tab.KindBool:
		return true
	case tab.KindString:
		s := strings.ToLower(reflect.ValueOf(content).String())
		return slices.Contains(o.trues, s) || slices.Contains(o.falses, s)
	case tab.KindNumeric:
		f, _ := tab.Number(content)
		return f == 0 || f == 1
	}
	return false
}

func IsNull(content any, opts ...Option) bool {
	o := newOptions(opts)

	switch tab.KindOf(content) {
	case tab.KindNull:
		return true
	case tab.KindString:
		s := reflect.ValueOf(content).String()
		if slices.Contains(o.nulls, strings.ToLower(s)) {
			return true
		}
		if strings.TrimSpace(s) == "" {
			return o.blanksAsNulls
		}
	}
	return false
}

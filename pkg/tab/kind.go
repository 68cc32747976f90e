package tab

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Kind tags a value as one of the shapes the helpers dispatch on.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumeric
	KindString
	KindBytes
	KindSequence
	KindMapping
	KindOther
)

var kindNames = [...]string{"null", "bool", "numeric", "string", "bytes", "sequence", "mapping", "other"}

func (k Kind) String() string {
	if int(k) >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// KindOf classifies v. Byte slices are KindBytes, any other slice or array
// is KindSequence, records and string-keyed maps are KindMapping.
func KindOf(v any) Kind {
	if IsNil(v) {
		return KindNull
	}

	switch v.(type) {
	case bool:
		return KindBool
	case string:
		return KindString
	case []byte:
		return KindBytes
	case decimal.Decimal, *decimal.Decimal:
		return KindNumeric
	case Record, *Record, map[string]any:
		return KindMapping
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return KindNumeric
	case reflect.String:
		return KindString
	case reflect.Bool:
		return KindBool
	case reflect.Slice, reflect.Array:
		return KindSequence
	case reflect.Map:
		if rv.Type().Key().Kind() == reflect.String {
			return KindMapping
		}
	}

	return KindOther
}

// Number converts numeric values and plain numeric strings to float64.
func Number(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case decimal.Decimal:
		return n.InexactFloat64(), true
	case *decimal.Decimal:
		if n == nil {
			return 0, false
		}
		return n.InexactFloat64(), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

// Elems returns the elements of a sequence value as []any.
func Elems(v any) ([]any, bool) {
	switch s := v.(type) {
	case []any:
		return s, true
	case []string:
		out := make([]any, len(s))
		for i, e := range s {
			out[i] = e
		}
		return out, true
	}

	if KindOf(v) != KindSequence {
		return nil, false
	}
	rv := reflect.ValueOf(v)
	out := make([]any, rv.Len())
	for i := range rv.Len() {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

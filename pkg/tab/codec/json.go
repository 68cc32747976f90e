package codec

import (
	"cmp"
	"fmt"
	"reflect"
	"slices"
	"time"

	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"

	"github.com/ib-77/tabutils/pkg/tab"
)

// TimeFormat is the layout used for time values by Normalize.
const TimeFormat = "2006-01-02 15:04:05.999999"

// Normalize rewrites v into values the JSON encoder handles natively.
// Decimals become floats, times and durations become strings, sets
// (maps with empty struct values) become sorted slices and iterator
// functions are collected. Records keep their field order.
func Normalize(v any) any {
	switch x := v.(type) {
	case nil:
		return nil
	case decimal.Decimal:
		return x.InexactFloat64()
	case *decimal.Decimal:
		if x == nil {
			return nil
		}
		return x.InexactFloat64()
	case time.Time:
		return x.Format(TimeFormat)
	case time.Duration:
		return x.String()
	case string, bool, []byte, float64, int:
		return x
	case *tab.Record:
		return normalizeRecord(x)
	case tab.Record:
		return normalizeRecord(&x)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		out := make([]any, rv.Len())
		for i := range rv.Len() {
			out[i] = Normalize(rv.Index(i).Interface())
		}
		return out
	case reflect.Map:
		if isSet(rv.Type()) {
			return sortedKeys(rv)
		}
		if rv.Type().Key().Kind() == reflect.String {
			out := make(map[string]any, rv.Len())
			iter := rv.MapRange()
			for iter.Next() {
				out[iter.Key().String()] = Normalize(iter.Value().Interface())
			}
			return out
		}
	case reflect.Func:
		if elems, ok := collect(rv); ok {
			return Normalize(elems)
		}
	}
	return v
}

func normalizeRecord(r *tab.Record) *tab.Record {
	out := tab.NewRecord()
	for k, v := range r.Fields() {
		out.Set(k, Normalize(v))
	}
	return out
}

func isSet(t reflect.Type) bool {
	return t.Elem().Kind() == reflect.Struct && t.Elem().NumField() == 0
}

func sortedKeys(rv reflect.Value) []any {
	keys := rv.MapKeys()
	slices.SortFunc(keys, compareValues)

	out := make([]any, len(keys))
	for i, k := range keys {
		out[i] = Normalize(k.Interface())
	}
	return out
}

func compareValues(a, b reflect.Value) int {
	switch a.Kind() {
	case reflect.String:
		return cmp.Compare(a.String(), b.String())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return cmp.Compare(a.Int(), b.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return cmp.Compare(a.Uint(), b.Uint())
	case reflect.Float32, reflect.Float64:
		return cmp.Compare(a.Float(), b.Float())
	}
	return cmp.Compare(fmt.Sprint(a.Interface()), fmt.Sprint(b.Interface()))
}

// collect drains an iter.Seq of any element type.
func collect(rv reflect.Value) ([]any, bool) {
	if !rv.IsValid() || rv.Kind() != reflect.Func || rv.IsNil() {
		return nil, false
	}
	t := rv.Type()
	if t.NumIn() != 1 || t.NumOut() != 0 {
		return nil, false
	}
	yield := t.In(0)
	if yield.Kind() != reflect.Func || yield.NumIn() != 1 || yield.NumOut() != 1 || yield.Out(0).Kind() != reflect.Bool {
		return nil, false
	}

	var out []any
	fn := reflect.MakeFunc(yield, func(args []reflect.Value) []reflect.Value {
		out = append(out, args[0].Interface())
		return []reflect.Value{reflect.ValueOf(true)}
	})
	rv.Call([]reflect.Value{fn})
	return out, true
}

// MarshalJSON encodes v after normalizing it.
func MarshalJSON(v any) ([]byte, error) {
	return json.Marshal(Normalize(v))
}

func MarshalIndentJSON(v any, prefix, indent string) ([]byte, error) {
	return json.MarshalIndent(Normalize(v), prefix, indent)
}

package record

import (
	"reflect"
	"slices"

	"github.com/ib-77/tabutils/pkg/tab"
)

// Reducer combines the values of a field from two records.
type Reducer func(values []any) any

type combineOptions struct {
	match    func(key string, y *tab.Record, value any) bool
	op       Reducer
	def      any
	value    any
	hasValue bool
}

type CombineOption func(*combineOptions)

// On combines the field named field.
func On(field string) CombineOption {
	return func(o *combineOptions) {
		o.match = func(key string, _ *tab.Record, _ any) bool { return key == field }
	}
}

// When combines every field for which pred returns true.
func When(pred func(key string) bool) CombineOption {
	return func(o *combineOptions) {
		o.match = func(key string, _ *tab.Record, _ any) bool { return pred(key) }
	}
}

// Where combines when keyfunc applied to the second record equals the
// second record's value of the current field.
func Where(keyfunc func(y *tab.Record) any) CombineOption {
	return func(o *combineOptions) {
		o.match = func(_ string, y *tab.Record, value any) bool { return equal(keyfunc(y), value) }
	}
}

func WithOp(op Reducer) CombineOption {
	return func(o *combineOptions) { o.op = op }
}

// WithDefault sets the value used for a field missing from a record (0).
func WithDefault(def any) CombineOption {
	return func(o *combineOptions) { o.def = def }
}

// WithValue overrides the second record's value of the field.
func WithValue(value any) CombineOption {
	return func(o *combineOptions) {
		o.value = value
		o.hasValue = true
	}
}

// Combine returns the value of key after combining x and y: the reducer
// applied to both values when the predicate matches, otherwise y's value.
func Combine(x, y *tab.Record, key string, opts ...CombineOption) any {
	o := combineOptions{def: 0}
	for _, opt := range opts {
		opt(&o)
	}

	value := o.value
	if !o.hasValue {
		value = y.Value(key, o.def)
	}

	if o.match == nil || o.op == nil || !o.match(key, y, value) {
		return value
	}
	return o.op([]any{x.Value(key, o.def), value})
}

// Merge folds records left to right. Fields of the accumulated record keep
// their position; every field of the next record goes through Combine.
func Merge(records []*tab.Record, opts ...CombineOption) *tab.Record {
	if len(records) == 0 {
		return tab.NewRecord()
	}

	acc := records[0].Clone()
	for _, y := range records[1:] {
		next := tab.NewRecord()
		for k, v := range acc.Fields() {
			next.Set(k, v)
		}
		for k, v := range y.Fields() {
			next.Set(k, Combine(acc, y, k, slices.Concat(opts, []CombineOption{WithValue(v)})...))
		}
		acc = next
	}
	return acc
}

// Sum adds the numeric values. The result is an int when every value is a
// signed integer, float64 otherwise. Non-numeric values are ignored.
func Sum(values []any) any {
	var ints int64
	var floats float64
	allInts := true

	for _, v := range values {
		if isSignedInt(v) {
			ints += reflect.ValueOf(v).Int()
			continue
		}
		if f, ok := tab.Number(v); ok && tab.KindOf(v) == tab.KindNumeric {
			floats += f
			allInts = false
		}
	}

	if allInts {
		return int(ints)
	}
	return floats + float64(ints)
}

// Min returns the smallest numeric value, or nil when there is none.
func Min(values []any) any {
	return pick(values, func(a, b float64) bool { return a < b })
}

// Max returns the largest numeric value, or nil when there is none.
func Max(values []any) any {
	return pick(values, func(a, b float64) bool { return a > b })
}

func pick(values []any, better func(a, b float64) bool) any {
	var best any
	var bestF float64
	for _, v := range values {
		if tab.KindOf(v) != tab.KindNumeric {
			continue
		}
		f, _ := tab.Number(v)
		if best == nil || better(f, bestF) {
			best, bestF = v, f
		}
	}
	return best
}

func isSignedInt(v any) bool {
	if v == nil {
		return false
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	}
	return false
}

func equal(a, b any) bool {
	if tab.KindOf(a) == tab.KindNumeric && tab.KindOf(b) == tab.KindNumeric {
		fa, _ := tab.Number(a)
		fb, _ := tab.Number(b)
		return fa == fb
	}
	return reflect.DeepEqual(a, b)
}

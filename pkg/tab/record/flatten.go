package record

import (
	"iter"
	"reflect"
	"slices"

	"github.com/ib-77/tabutils/pkg/tab"
)

// Flatten returns a flat copy of r where nested mappings are replaced by
// their leaves, keyed "parent_child". A non-empty prefix is prepended to
// every key. Flat records come back unchanged.
func Flatten(r *tab.Record, prefix string) *tab.Record {
	out := tab.NewRecord()
	for k, v := range FlattenFields(r, prefix) {
		out.Set(k, v)
	}
	return out
}

// FlattenFields lazily yields the flattened (key, value) pairs of r.
func FlattenFields(r *tab.Record, prefix string) iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		for k, v := range r.Fields() {
			if !flatten(v, join(prefix, k), yield) {
				return
			}
		}
	}
}

func join(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "_" + key
}

func flatten(value any, key string, yield func(string, any) bool) bool {
	if tab.KindOf(value) != tab.KindMapping {
		return yield(key, value)
	}

	for k, v := range children(value) {
		if !flatten(v, join(key, k), yield) {
			return false
		}
	}
	return true
}

// children iterates a mapping value; plain maps are walked in key order.
func children(value any) iter.Seq2[string, any] {
	switch m := value.(type) {
	case *tab.Record:
		return m.Fields()
	case tab.Record:
		return m.Fields()
	}

	return func(yield func(string, any) bool) {
		rv := reflect.ValueOf(value)
		keys := rv.MapKeys()
		slices.SortFunc(keys, func(a, b reflect.Value) int {
			if a.String() < b.String() {
				return -1
			}
			if a.String() > b.String() {
				return 1
			}
			return 0
		})
		for _, k := range keys {
			if !yield(k.String(), rv.MapIndex(k).Interface()) {
				return
			}
		}
	}
}

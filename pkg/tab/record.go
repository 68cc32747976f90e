package tab

import (
	"iter"
	"slices"

	"github.com/mohae/deepcopy"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Field is a single key/value entry of a Record.
type Field struct {
	Key   string
	Value any
}

// Record is an ordered, string-keyed row of tabular data. The zero value is
// an empty record ready to use; a nil *Record reads as empty.
type Record struct {
	fields *orderedmap.OrderedMap[string, any]
}

func NewRecord() *Record {
	return &Record{fields: orderedmap.New[string, any]()}
}

// RecordOf builds a record from fields, keeping their order. A repeated key
// keeps its first position and takes the last value.
func RecordOf(fields ...Field) *Record {
	r := NewRecord()
	for _, f := range fields {
		r.Set(f.Key, f.Value)
	}
	return r
}

// FromMap builds a record from a plain map. Keys are sorted since map order
// is undefined; nested maps are left as-is.
func FromMap(m map[string]any) *Record {
	r := NewRecord()
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		r.Set(k, m[k])
	}
	return r
}

func (r *Record) init() {
	if r.fields == nil {
		r.fields = orderedmap.New[string, any]()
	}
}

// Set stores value under key. Existing keys keep their position.
func (r *Record) Set(key string, value any) *Record {
	r.init()
	r.fields.Set(key, value)
	return r
}

func (r *Record) Get(key string) (any, bool) {
	if r == nil || r.fields == nil {
		return nil, false
	}
	return r.fields.Get(key)
}

// Value returns the value stored under key or def when absent.
func (r *Record) Value(key string, def any) any {
	if v, ok := r.Get(key); ok {
		return v
	}
	return def
}

func (r *Record) Has(key string) bool {
	_, ok := r.Get(key)
	return ok
}

func (r *Record) Delete(key string) {
	if r == nil || r.fields == nil {
		return
	}
	r.fields.Delete(key)
}

func (r *Record) Len() int {
	if r == nil || r.fields == nil {
		return 0
	}
	return r.fields.Len()
}

// Keys returns the field names in insertion order.
func (r *Record) Keys() []string {
	keys := make([]string, 0, r.Len())
	for k := range r.Fields() {
		keys = append(keys, k)
	}
	return keys
}

// Fields iterates over key/value pairs in insertion order.
func (r *Record) Fields() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		if r == nil || r.fields == nil {
			return
		}
		for pair := r.fields.Oldest(); pair != nil; pair = pair.Next() {
			if !yield(pair.Key, pair.Value) {
				return
			}
		}
	}
}

// Map returns a shallow copy of the record as a plain map.
func (r *Record) Map() map[string]any {
	m := make(map[string]any, r.Len())
	for k, v := range r.Fields() {
		m[k] = v
	}
	return m
}

// Clone returns a deep copy. Nested records are cloned field by field, any
// other value goes through deepcopy.
func (r *Record) Clone() *Record {
	out := NewRecord()
	for k, v := range r.Fields() {
		switch nested := v.(type) {
		case *Record:
			out.Set(k, nested.Clone())
		case Record:
			out.Set(k, nested.Clone())
		default:
			out.Set(k, deepcopy.Copy(v))
		}
	}
	return out
}

func (r *Record) MarshalJSON() ([]byte, error) {
	if r == nil || r.fields == nil {
		return []byte("{}"), nil
	}
	return r.fields.MarshalJSON()
}

func (r *Record) UnmarshalJSON(data []byte) error {
	r.init()
	return r.fields.UnmarshalJSON(data)
}

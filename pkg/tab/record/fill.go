package record

import (
	"maps"
	"slices"

	"github.com/ib-77/tabutils/pkg/tab"
	"github.com/ib-77/tabutils/pkg/tab/predicate"
)

// Counts holds, per field, the number of consecutive records whose value
// was fillable. Callers thread it from one Fill call to the next.
type Counts map[string]int

type fillOptions struct {
	pred          func(any) bool
	value         any
	fillKey       string
	limit         int
	fields        []string
	blanksAsNulls bool
}

type FillOption func(*fillOptions)

// WithPredicate decides which values are filled. The default fills null
// values (see predicate.IsNull), blanks included.
func WithPredicate(pred func(any) bool) FillOption {
	return func(o *fillOptions) { o.pred = pred }
}

// WithFillValue fills holes with a constant.
func WithFillValue(value any) FillOption {
	return func(o *fillOptions) { o.value = value }
}

// WithFillKey fills holes with the value of another field of the same record.
func WithFillKey(key string) FillOption {
	return func(o *fillOptions) { o.fillKey = key }
}

// WithLimit caps the number of consecutive records filled per field. Zero
// means no limit.
func WithLimit(limit int) FillOption {
	return func(o *fillOptions) { o.limit = limit }
}

// WithFields restricts filling to the named fields.
func WithFields(fields ...string) FillOption {
	return func(o *fillOptions) { o.fields = fields }
}

func WithBlanksAsNulls(enabled bool) FillOption {
	return func(o *fillOptions) { o.blanksAsNulls = enabled }
}

// Fill returns a copy of current with fillable values replaced, and the
// updated counts. The replacement is, in order of preference: the fill
// value, the fill key's value, or previous's value for the same field
// (keeping the current value when previous lacks the field). counts is not
// modified.
func Fill(previous, current *tab.Record, counts Counts, opts ...FillOption) (*tab.Record, Counts) {
	o := fillOptions{blanksAsNulls: true}
	for _, opt := range opts {
		opt(&o)
	}
	if o.pred == nil {
		o.pred = func(v any) bool { return predicate.IsNull(v, predicate.BlanksAsNulls(o.blanksAsNulls)) }
	}

	whitelist := o.fields
	if len(whitelist) == 0 {
		whitelist = current.Keys()
	}

	next := maps.Clone(counts)
	if next == nil {
		next = Counts{}
	}

	out := tab.NewRecord()
	for key, entry := range current.Fields() {
		keyCount := next[key]
		withinLimit := o.limit <= 0 || keyCount < o.limit
		canFill := slices.Contains(whitelist, key) && o.pred(entry)
		next[key] = keyCount + 1

		newValue := entry
		switch {
		case !canFill:
			next[key] = 0
		case !withinLimit:
		case o.value != nil:
			newValue = o.value
		case o.fillKey != "" && current.Has(o.fillKey):
			newValue = current.Value(o.fillKey, entry)
		case o.fillKey != "":
		default:
			newValue = previous.Value(key, entry)
		}

		out.Set(key, newValue)
	}

	return out, next
}

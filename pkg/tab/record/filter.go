package record

import (
	"slices"

	"github.com/ib-77/tabutils/pkg/tab"
)

// DFilter drops the fields named in blacklist, or keeps only them when
// inverse is set.
func DFilter(r *tab.Record, blacklist []string, inverse bool) *tab.Record {
	out := tab.NewRecord()
	for k, v := range r.Fields() {
		if slices.Contains(blacklist, k) == inverse {
			out.Set(k, v)
		}
	}
	return out
}

func DefItemGetter(key string, def any) func(*tab.Record) any {
	return func(r *tab.Record) any {
		return r.Value(key, def)
	}
}

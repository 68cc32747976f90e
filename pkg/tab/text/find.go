package text

import (
	"slices"
	"strings"
)

// MatchFunc returns the matches of needle in haystack in preference order.
type MatchFunc func(needle, haystack []string) []string

type findOptions struct {
	match MatchFunc
	def   string
}

type FindOption func(*findOptions)

// Exact matches words present in both lists, ignoring case. Matches are
// returned lowercased in haystack order.
func Exact(needle, haystack []string) []string {
	want := make(map[string]struct{}, len(needle))
	for _, n := range needle {
		want[strings.ToLower(n)] = struct{}{}
	}

	var out []string
	for _, h := range haystack {
		h = strings.ToLower(h)
		if _, ok := want[h]; ok && !slices.Contains(out, h) {
			out = append(out, h)
		}
	}
	return out
}

// Fuzzy matches haystack entries that contain a needle word, ignoring the
// case of the haystack entry. Matches keep their original case.
func Fuzzy(needle, haystack []string) []string {
	var out []string
	for _, n := range needle {
		for _, h := range haystack {
			if strings.Contains(strings.ToLower(h), n) {
				out = append(out, h)
			}
		}
	}
	return out
}

func WithMatch(match MatchFunc) FindOption {
	return func(o *findOptions) { o.match = match }
}

func WithFuzzy() FindOption {
	return WithMatch(Fuzzy)
}

func WithDefault(def string) FindOption {
	return func(o *findOptions) { o.def = def }
}

// Find returns the first match of needle in haystack, or the default ("")
// when there is no overlap.
func Find(needle, haystack []string, opts ...FindOption) string {
	o := findOptions{match: Exact}
	for _, opt := range opts {
		opt(&o)
	}

	if found := o.match(needle, haystack); len(found) > 0 {
		return found[0]
	}
	return o.def
}

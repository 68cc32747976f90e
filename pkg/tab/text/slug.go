package text

import (
	"iter"
	"strings"

	"github.com/gosimple/slug"
)

// symbols slug.Make would spell out in english ("and", "at")
var spelledSymbols = []Replacement{
	{Old: "&", New: " "},
	{Old: "@", New: " "},
}

// UnderscorifyString slugifies s with '_' as the word separator.
func UnderscorifyString(s string) string {
	out := strings.ReplaceAll(slug.Make(MReplace(s, spelledSymbols...)), "-", "_")
	for strings.Contains(out, "__") {
		out = strings.ReplaceAll(out, "__", "_")
	}
	return strings.Trim(out, "_")
}

// Underscorify lazily slugifies every element of content.
func Underscorify(content iter.Seq[string]) iter.Seq[string] {
	return func(yield func(string) bool) {
		for item := range content {
			if !yield(UnderscorifyString(item)) {
				return
			}
		}
	}
}

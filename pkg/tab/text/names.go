package text

import (
	"fmt"
	"iter"
	"net/url"
	"path/filepath"
	"strings"
)

// Dedupe lazily renames repeated names: the second "f" becomes "f_2", the
// third "f_3". A suffixed name that already appeared is skipped over, so
// every yielded name is unique.
func Dedupe(content iter.Seq[string]) iter.Seq[string] {
	return func(yield func(string) bool) {
		seen := make(map[string]int)
		emitted := make(map[string]struct{})

		for f := range content {
			name := f
			if _, dup := emitted[name]; dup {
				n := max(seen[f], 1)
				for {
					n++
					name = fmt.Sprintf("%s_%d", f, n)
					if _, taken := emitted[name]; !taken {
						break
					}
				}
				seen[f] = n
			} else if seen[f] == 0 {
				seen[f] = 1
			}

			emitted[name] = struct{}{}
			if !yield(name) {
				return
			}
		}
	}
}

// AddOrdinal returns num with its English ordinal suffix.
func AddOrdinal(num int) string {
	abs := num
	if abs < 0 {
		abs = -abs
	}

	end := "th"
	switch abs % 100 {
	case 11, 12, 13:
	default:
		switch abs % 10 {
		case 1:
			end = "st"
		case 2:
			end = "nd"
		case 3:
			end = "rd"
		}
	}
	return fmt.Sprintf("%d%s", num, end)
}

// GetExt returns the file format of path: the value of a format= query
// parameter when present, otherwise the extension without its dot.
func GetExt(path string) string {
	lower := strings.ToLower(path)
	if _, after, ok := strings.Cut(lower, "format="); ok {
		format, _, _ := strings.Cut(after, "&")
		return format
	}

	if u, err := url.Parse(path); err == nil && u.Scheme != "" && u.Path != "" {
		path = u.Path
	}
	return strings.TrimPrefix(filepath.Ext(path), ".")
}

package text

import (
	"strings"

	"github.com/ib-77/tabutils/pkg/tab"
)

// Replacement is an (old, new) literal substring pair.
type Replacement struct {
	Old string
	New string
}

// MReplace applies replacements to content in order, each one seeing the
// output of the previous.
func MReplace(content string, replacements ...Replacement) string {
	for _, r := range replacements {
		content = strings.ReplaceAll(content, r.Old, r.New)
	}
	return content
}

// Strip removes currency symbols and the thousand separator from value and
// rewrites the decimal separator as '.'.
func Strip(value string, seps tab.Separators) string {
	return StripWith(value, seps, tab.Currencies)
}

func StripWith(value string, seps tab.Separators, currencies []string) string {
	seps = seps.OrDefault()
	replacements := make([]Replacement, 0, len(currencies)+2)
	for _, c := range currencies {
		replacements = append(replacements, Replacement{Old: c})
	}
	replacements = append(replacements,
		Replacement{Old: seps.Thousand},
		Replacement{Old: seps.Decimal, New: "."},
	)
	return MReplace(value, replacements...)
}

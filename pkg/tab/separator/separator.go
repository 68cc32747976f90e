package separator

import (
	"fmt"
	"iter"
	"strings"
	"unicode"

	"github.com/ib-77/tabutils/pkg/tab"
	"github.com/ib-77/tabutils/pkg/tab/logger"
	"github.com/ib-77/tabutils/pkg/tab/predicate"
)

// Afterish returns the number of digits after the last separator in the
// first exclude-delimited segment of content that contains separator, or -1
// when content has no separator. An empty exclude splits on whitespace.
// Content must be numeric under the default separators or their swap.
func Afterish(content, separator, exclude string) (int, error) {
	if !numeric(content) {
		return 0, fmt.Errorf("afterish %q: %w", content, tab.ErrNotNumeric)
	}
	if !strings.Contains(content, separator) {
		return -1, nil
	}

	var segments []string
	if exclude == "" {
		segments = strings.Fields(content)
	} else {
		segments = strings.Split(content, exclude)
	}

	for _, s := range segments {
		if strings.Contains(s, separator) {
			return digits(s[strings.LastIndex(s, separator)+len(separator):]), nil
		}
	}
	return -1, nil
}

func numeric(content string) bool {
	return predicate.IsNumeric(content) ||
		predicate.IsNumeric(content, predicate.WithSeparators(tab.DefaultSeparators.Swapped()))
}

func digits(s string) int {
	n := 0
	for _, r := range s {
		if unicode.IsDigit(r) {
			n++
		}
	}
	return n
}

var (
	thousandCounts = map[int]bool{-1: true, 0: true, 3: true}
	decimalCounts  = map[int]bool{-1: true, 0: true, 1: true, 2: true}
)

// Get guesses the separators of content. A comma followed by 3 digits and a
// period followed by at most 2 reads as "1,234.56"; the swapped counts read
// as "1.234,56".
func Get(content string) (tab.Separators, error) {
	afterComma, err := Afterish(content, ",", ".")
	if err != nil {
		return tab.Separators{}, err
	}
	afterDecimal, err := Afterish(content, ".", ",")
	if err != nil {
		return tab.Separators{}, err
	}

	switch {
	case thousandCounts[afterComma] && decimalCounts[afterDecimal]:
		return tab.Separators{Thousand: ",", Decimal: "."}, nil
	case decimalCounts[afterComma] && thousandCounts[afterDecimal]:
		return tab.Separators{Thousand: ".", Decimal: ","}, nil
	}

	logger.Debug("ambiguous separators", "content", content,
		"after_comma", afterComma, "after_decimal", afterDecimal)
	return tab.Separators{}, fmt.Errorf("separators of %q: %w", content, tab.ErrInvalidFormat)
}

// Infer returns the separators of the first value that contains a comma or
// a period. Values without either are skipped; if none decides, the default
// pair is returned.
func Infer(values iter.Seq[string]) (tab.Separators, error) {
	for v := range values {
		if !strings.ContainsAny(v, ",.") {
			continue
		}
		return Get(v)
	}
	return tab.DefaultSeparators, nil
}

package iterx

import (
	"fmt"
	"iter"
	"reflect"
	"strings"

	"github.com/ib-77/tabutils/pkg/tab"
)

// ArraySearchType yields the elements of haystack of the given kind,
// starting from the nth (zero based) match.
func ArraySearchType(needle tab.Kind, haystack []any, n int) iter.Seq[any] {
	return func(yield func(any) bool) {
		seen := 0
		for _, v := range haystack {
			if tab.KindOf(v) != needle {
				continue
			}
			seen++
			if seen <= n {
				continue
			}
			if !yield(v) {
				return
			}
		}
	}
}

// ArraySubstitute replaces needle with the text of replace in every string
// of content, recursing into nested sequences (yielded as []any). Other
// values pass through unchanged.
func ArraySubstitute(content []any, needle string, replace any) iter.Seq[any] {
	with := fmt.Sprint(replace)

	return func(yield func(any) bool) {
		for _, item := range content {
			if !yield(substitute(item, needle, with)) {
				return
			}
		}
	}
}

func substitute(item any, needle, with string) any {
	switch tab.KindOf(item) {
	case tab.KindString:
		return strings.ReplaceAll(reflect.ValueOf(item).String(), needle, with)
	case tab.KindSequence:
		elems, _ := tab.Elems(item)
		out := make([]any, len(elems))
		for i, e := range elems {
			out[i] = substitute(e, needle, with)
		}
		return out
	}
	return item
}

// Leaves yields the non-sequence values of a nested sequence depth first.
// A non-sequence v yields itself.
func Leaves(v any) iter.Seq[any] {
	return func(yield func(any) bool) {
		leaves(v, yield)
	}
}

func leaves(v any, yield func(any) bool) bool {
	if tab.KindOf(v) != tab.KindSequence {
		return yield(v)
	}
	elems, _ := tab.Elems(v)
	for _, e := range elems {
		if !leaves(e, yield) {
			return false
		}
	}
	return true
}

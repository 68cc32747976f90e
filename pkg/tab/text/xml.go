package text

import (
	"fmt"
	"reflect"

	"github.com/ib-77/tabutils/pkg/tab"
)

var xmlReplacements = []Replacement{
	{Old: "&", New: "&amp"},
	{Old: ">", New: "&gt"},
	{Old: "<", New: "&lt"},
	{Old: "\n", New: " "},
	{Old: "\r\n", New: " "},
}

// XmlizeString escapes a single string.
func XmlizeString(s string) string {
	return MReplace(s, xmlReplacements...)
}

// XmlizeStrings escapes every element of content.
func XmlizeStrings(content []string) []string {
	out := make([]string, len(content))
	for i, s := range content {
		out[i] = XmlizeString(s)
	}
	return out
}

// Xmlize escapes strings in content and recurses into nested sequences,
// which come back as []any. Null and zero scalars become "", other scalars
// are formatted before escaping.
func Xmlize(content []any) []any {
	out := make([]any, len(content))
	for i, item := range content {
		out[i] = xmlizeItem(item)
	}
	return out
}

func xmlizeItem(item any) any {
	switch tab.KindOf(item) {
	case tab.KindString:
		return XmlizeString(reflect.ValueOf(item).String())
	case tab.KindSequence:
		elems, _ := tab.Elems(item)
		return Xmlize(elems)
	case tab.KindBytes:
		return XmlizeString(string(item.([]byte)))
	case tab.KindNull:
		return ""
	}

	if reflect.ValueOf(item).IsZero() {
		return ""
	}
	return XmlizeString(fmt.Sprint(item))
}

package tab

import (
	"reflect"
)

// IsNil reports whether i is nil or a typed nil (pointer, map, slice,
// interface, func or chan).
func IsNil(i any) bool {
	if i == nil {
		return true
	}
	switch reflect.ValueOf(i).Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return reflect.ValueOf(i).IsNil()
	}
	return false
}

package maybe

import (
	"reflect"

	"github.com/ib-77/tabutils/pkg/tab"
)

type Chain struct {
	value any
	ok    bool
	err   error
}

func Of(v any) Chain {
	if tab.IsNil(v) {
		return Chain{}
	}
	return Chain{value: v, ok: true}
}

func Empty() Chain {
	return Chain{}
}

func (c Chain) Value() any {
	return c.value
}

func (c Chain) Ok() bool {
	return c.ok
}

// Err is the error returned by the ThenTry step that emptied the chain.
func (c Chain) Err() error {
	return c.err
}

// Get steps into a record field, a string keyed map entry or an exported
// struct field.
func (c Chain) Get(key string) Chain {
	if !c.ok {
		return c
	}

	switch v := c.value.(type) {
	case *tab.Record:
		return lookup(v.Get(key))
	case tab.Record:
		return lookup(v.Get(key))
	case map[string]any:
		item, found := v[key]
		return lookup(item, found)
	}

	rv := reflect.Indirect(reflect.ValueOf(c.value))
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return Chain{}
		}
		item := rv.MapIndex(reflect.ValueOf(key).Convert(rv.Type().Key()))
		if !item.IsValid() {
			return Chain{}
		}
		return Of(item.Interface())
	case reflect.Struct:
		field, found := rv.Type().FieldByName(key)
		if !found || !field.IsExported() {
			return Chain{}
		}
		return Of(rv.FieldByIndex(field.Index).Interface())
	}
	return Chain{}
}

// Path applies Get for each key in turn.
func (c Chain) Path(keys ...string) Chain {
	for _, k := range keys {
		c = c.Get(k)
	}
	return c
}

// Index steps into element i of a sequence or string. Negative indexes
// count from the end.
func (c Chain) Index(i int) Chain {
	if !c.ok {
		return c
	}

	if s, isStr := c.value.(string); isStr {
		runes := []rune(s)
		if i < 0 {
			i += len(runes)
		}
		if i < 0 || i >= len(runes) {
			return Chain{}
		}
		return Of(string(runes[i]))
	}

	elems, isSeq := tab.Elems(c.value)
	if !isSeq {
		return Chain{}
	}
	if i < 0 {
		i += len(elems)
	}
	if i < 0 || i >= len(elems) {
		return Chain{}
	}
	return Of(elems[i])
}

func (c Chain) Map(fn func(any) any) Chain {
	if !c.ok {
		return c
	}
	return Of(fn(c.value))
}

func (c Chain) Then(fn func(any) Chain) Chain {
	if !c.ok {
		return c
	}
	return fn(c.value)
}

// ThenTry applies fn, emptying the chain and keeping the error on failure.
func (c Chain) ThenTry(fn func(any) (any, error)) Chain {
	if !c.ok {
		return c
	}
	v, err := fn(c.value)
	if err != nil {
		return Chain{err: err}
	}
	return Of(v)
}

func (c Chain) Or(alternative Chain) Chain {
	if c.ok {
		return c
	}
	return alternative
}

// OrElse returns the held value or def when the chain is empty.
func (c Chain) OrElse(def any) any {
	if c.ok {
		return c.value
	}
	return def
}

func (c Chain) Ensure(onValue func(any), onEmpty func(error)) Chain {
	if c.ok {
		if onValue != nil {
			onValue(c.value)
		}
		return c
	}
	if onEmpty != nil {
		onEmpty(c.err)
	}
	return c
}

// As returns the held value as T.
func As[T any](c Chain) (T, bool) {
	v, ok := c.value.(T)
	return v, ok && c.ok
}

func lookup(v any, found bool) Chain {
	if !found {
		return Chain{}
	}
	return Of(v)
}

package maybe

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/tabutils/pkg/tab"
)

type options struct {
	Encoding string
	Nulls    []string
	Inner    *options
	hidden   string
}

func TestOf(t *testing.T) {
	t.Parallel()

	assert.False(t, Of(nil).Ok())
	assert.False(t, Of((*tab.Record)(nil)).Ok())
	assert.True(t, Of(0).Ok())
	assert.Equal(t, "x", Of("x").Value())
	assert.False(t, Empty().Ok())
}

func TestGet_Record(t *testing.T) {
	t.Parallel()

	r := tab.RecordOf(
		tab.Field{Key: "key", Value: "value"},
		tab.Field{Key: "nested", Value: tab.RecordOf(tab.Field{Key: "leaf", Value: 3})},
	)

	assert.Equal(t, "value", Of(r).Get("key").Value())
	assert.Equal(t, 3, Of(r).Path("nested", "leaf").Value())

	missing := Of(r).Get("key").Get("missing").Get("undefined").Get("item")
	assert.False(t, missing.Ok())
	assert.Nil(t, missing.Value())
}

func TestGet_MapsAndStructs(t *testing.T) {
	t.Parallel()

	m := map[string]any{"a": map[string]int{"b": 2}, "none": nil}
	assert.Equal(t, 2, Of(m).Path("a", "b").Value())
	assert.False(t, Of(m).Get("none").Ok())
	assert.False(t, Of(m).Get("zzz").Ok())
	assert.False(t, Of(map[int]string{1: "x"}).Get("1").Ok())

	o := &options{Encoding: "utf-8", Inner: &options{Encoding: "latin1"}, hidden: "h"}
	assert.Equal(t, "utf-8", Of(o).Get("Encoding").Value())
	assert.Equal(t, "latin1", Of(o).Path("Inner", "Encoding").Value())
	assert.False(t, Of(o).Path("Inner", "Inner", "Encoding").Ok())
	assert.False(t, Of(o).Get("hidden").Ok())
	assert.False(t, Of(o).Get("Missing").Ok())
	assert.False(t, Of(42).Get("x").Ok())
}

func TestIndex(t *testing.T) {
	t.Parallel()

	o := options{Nulls: []string{"na", "none", "null"}}
	assert.Equal(t, "none", Of(o).Get("Nulls").Index(1).Value())
	assert.Equal(t, "null", Of(o).Get("Nulls").Index(-1).Value())
	assert.False(t, Of(o).Get("Nulls").Index(3).Ok())
	assert.False(t, Of(o).Get("Nulls").Index(-4).Ok())
	assert.Equal(t, "ñ", Of("Iñt").Index(1).Value())
	assert.False(t, Of(7).Index(0).Ok())
}

func TestMapThenOr(t *testing.T) {
	t.Parallel()

	upper := func(v any) any { return strings.ToUpper(v.(string)) }

	assert.Equal(t, "ABC", Of("abc").Map(upper).Value())
	assert.False(t, Empty().Map(upper).Ok())

	called := false
	Empty().Then(func(any) Chain {
		called = true
		return Of(1)
	})
	assert.False(t, called)
	assert.Equal(t, 2, Of(1).Then(func(v any) Chain { return Of(v.(int) + 1) }).Value())

	assert.Equal(t, "alt", Empty().Or(Of("alt")).Value())
	assert.Equal(t, "first", Of("first").Or(Of("alt")).Value())
	assert.Equal(t, "def", Of(map[string]any{}).Get("k").OrElse("def"))
	assert.Equal(t, 0, Of(0).OrElse(5))
}

func TestThenTry(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	c := Of(1).ThenTry(func(any) (any, error) { return nil, boom })
	assert.False(t, c.Ok())
	assert.ErrorIs(t, c.Err(), boom)

	var seen error
	c.Ensure(func(any) { t.Fatal("value handler called on empty chain") }, func(err error) { seen = err })
	assert.ErrorIs(t, seen, boom)

	c = Of(2).ThenTry(func(v any) (any, error) { return v.(int) * 10, nil })
	require.True(t, c.Ok())
	n, ok := As[int](c)
	assert.True(t, ok)
	assert.Equal(t, 20, n)

	_, ok = As[string](c)
	assert.False(t, ok)
}

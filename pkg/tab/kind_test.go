package tab

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

type label string

func TestKindOf(t *testing.T) {
	t.Parallel()

	var nilSlice []int
	cases := []struct {
		in   any
		want Kind
	}{
		{in: nil, want: KindNull},
		{in: nilSlice, want: KindNull},
		{in: (*Record)(nil), want: KindNull},
		{in: true, want: KindBool},
		{in: 1, want: KindNumeric},
		{in: uint8(1), want: KindNumeric},
		{in: 1.5, want: KindNumeric},
		{in: decimal.NewFromInt(2), want: KindNumeric},
		{in: "s", want: KindString},
		{in: label("l"), want: KindString},
		{in: []byte("b"), want: KindBytes},
		{in: []any{1}, want: KindSequence},
		{in: [2]int{1, 2}, want: KindSequence},
		{in: NewRecord(), want: KindMapping},
		{in: map[string]int{}, want: KindMapping},
		{in: map[int]int{}, want: KindOther},
		{in: struct{}{}, want: KindOther},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("%T", tc.in), func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, KindOf(tc.in))
		})
	}
}

func TestKind_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "numeric", KindNumeric.String())
	assert.Equal(t, "other", KindOther.String())
	assert.Equal(t, "unknown", Kind(42).String())
}

func TestNumber(t *testing.T) {
	t.Parallel()

	f, ok := Number(int16(-3))
	assert.True(t, ok)
	assert.Equal(t, -3.0, f)

	f, ok = Number(" 2.5 ")
	assert.True(t, ok)
	assert.Equal(t, 2.5, f)

	f, ok = Number(decimal.RequireFromString("1.25"))
	assert.True(t, ok)
	assert.Equal(t, 1.25, f)

	_, ok = Number("abc")
	assert.False(t, ok)
	_, ok = Number(true)
	assert.False(t, ok)
}

func TestElems(t *testing.T) {
	t.Parallel()

	e, ok := Elems([]string{"a", "b"})
	assert.True(t, ok)
	assert.Equal(t, []any{"a", "b"}, e)

	e, ok = Elems([3]int{1, 2, 3})
	assert.True(t, ok)
	assert.Equal(t, []any{1, 2, 3}, e)

	_, ok = Elems("abc")
	assert.False(t, ok)
}

func TestSeparators(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Separators{Thousand: ".", Decimal: ","}, DefaultSeparators.Swapped())
	assert.Equal(t, Separators{Thousand: " ", Decimal: "."}, Separators{Thousand: " "}.OrDefault())
}

package iterx

import (
	"iter"

	"github.com/ib-77/tabutils/pkg/tab"
)

// FPartial turns a binary operator into a left fold over a sequence. An
// empty sequence reduces to the zero value.
func FPartial[T any](op func(T, T) T) func(iter.Seq[T]) T {
	return func(seq iter.Seq[T]) T {
		var acc T
		first := true
		for v := range seq {
			if first {
				acc, first = v, false
				continue
			}
			acc = op(acc, v)
		}
		return acc
	}
}

func Fold[T, A any](seq iter.Seq[T], init A, f func(A, T) A) A {
	acc := init
	for v := range seq {
		acc = f(acc, v)
	}
	return acc
}

// Tally accumulates a sum and a count for computing a mean.
type Tally struct {
	Sum   float64
	Count int
}

func (t Tally) Mean() float64 {
	if t.Count == 0 {
		return 0
	}
	return t.Sum / float64(t.Count)
}

// SumAndCount adds v to the tally. Null and non-numeric values are skipped.
func SumAndCount(t Tally, v any) Tally {
	if tab.KindOf(v) != tab.KindNumeric {
		return t
	}
	f, _ := tab.Number(v)
	return Tally{Sum: t.Sum + f, Count: t.Count + 1}
}

package iterx

import (
	"cmp"
	"iter"
)

// Op is the comparison used by OpEverseen to decide whether an element
// replaces the current one.
type Op int

const (
	Lt Op = iota
	Le
	Gt
	Ge
	Eq
	Ne
)

func compare[K cmp.Ordered](op Op, a, b K) bool {
	switch op {
	case Le:
		return a <= b
	case Gt:
		return a > b
	case Ge:
		return a >= b
	case Eq:
		return a == b
	case Ne:
		return a != b
	default:
		return a < b
	}
}

type everseenOptions struct {
	op  Op
	pad bool
}

type EverseenOption func(*everseenOptions)

func WithOp(op Op) EverseenOption {
	return func(o *everseenOptions) { o.op = op }
}

// WithPad repeats the current element at positions where it did not change.
func WithPad() EverseenOption {
	return func(o *everseenOptions) { o.pad = true }
}

// OpEverseen yields the running "best" element of seq: the first element,
// then every element whose key compares true (Lt by default) against the
// current best key.
func OpEverseen[T any, K cmp.Ordered](seq iter.Seq[T], key func(T) K, opts ...EverseenOption) iter.Seq[T] {
	o := everseenOptions{op: Lt}
	for _, opt := range opts {
		opt(&o)
	}

	return func(yield func(T) bool) {
		var current T
		var currentKey K
		seen := false

		for element := range seq {
			k := key(element)
			valid := true

			if !seen {
				seen = true
				current, currentKey = element, k
			} else if valid = compare(o.op, k, currentKey); valid {
				current, currentKey = element, k
			}

			if (valid || o.pad) && !yield(current) {
				return
			}
		}
	}
}

// Everseen is OpEverseen keyed on the elements themselves.
func Everseen[T cmp.Ordered](seq iter.Seq[T], opts ...EverseenOption) iter.Seq[T] {
	return OpEverseen(seq, func(v T) T { return v }, opts...)
}

package seqs

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// Filter applies predicate to each element of seq, yielding only those that satisfy the predicate.
func Filter[T any](seq iter.Seq[T], predicate func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if predicate(v) && !yield(v) {
				return
			}
		}
	}
}

// OddSeq yields the odd elements of seq, preserving their order.
// Unlike [Odd] the result can be ranged over again if seq can.
func OddSeq[T constraints.Integer](seq iter.Seq[T]) iter.Seq[T] {
	return Filter(seq, func(v T) bool { return hasParity(v, true) })
}

// EvenSeq yields the even elements of seq, preserving their order.
func EvenSeq[T constraints.Integer](seq iter.Seq[T]) iter.Seq[T] {
	return Filter(seq, func(v T) bool { return hasParity(v, false) })
}

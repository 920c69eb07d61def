package seqs

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// Range yields start, start+step, ... up to but excluding end.
// A zero step, or a step pointing away from end, yields nothing.
// The sequence also ends where the next value would wrap around N.
func Range[N constraints.Integer](start, end, step N) iter.Seq[N] {
	return func(yield func(N) bool) {
		var zero N
		if step == zero {
			return
		}
		for i := start; step > zero && i < end || step < zero && i > end; {
			if !yield(i) {
				return
			}
			next := i + step
			if step > zero && next <= i || step < zero && next >= i {
				return
			}
			i = next
		}
	}
}

package seqs

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// Filtered yields the elements of a source Iterator that have the requested parity.
// Elements of the other parity are consumed and dropped.
// The source is fused, so a Filtered stops for good at the first exhaustion signal.
type Filtered[T constraints.Integer] struct {
	src *Fused[T]
	odd bool
}

// Odd keeps the odd elements of src.
func Odd[T constraints.Integer](src Iterator[T]) *Filtered[T] {
	return &Filtered[T]{src: Fuse(src), odd: true}
}

// Even keeps the even elements of src.
func Even[T constraints.Integer](src Iterator[T]) *Filtered[T] {
	return &Filtered[T]{src: Fuse(src), odd: false}
}

// Next returns the next element of the requested parity, or false once the source is exhausted.
func (f *Filtered[T]) Next() (T, bool) {
	for {
		v, ok := f.src.Next()
		if !ok {
			return v, false
		}
		if hasParity(v, f.odd) {
			return v, true
		}
	}
}

// Seq returns the remaining matching elements as a single-use sequence.
func (f *Filtered[T]) Seq() iter.Seq[T] { return All[T](f) }

// Done reports whether the underlying source is exhausted.
func (f *Filtered[T]) Done() bool { return f.src.Done() }

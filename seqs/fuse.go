package seqs

import "iter"

// Fused wraps an Iterator so that it is never polled again once it reported exhaustion.
// Sources that would produce values after signalling the end are cut off at the first signal.
type Fused[T any] struct {
	src  Iterator[T]
	done bool
}

// Fuse wraps src. A source that is already fused is returned as is.
func Fuse[T any](src Iterator[T]) *Fused[T] {
	if f, ok := src.(*Fused[T]); ok {
		return f
	}
	return &Fused[T]{src: src}
}

// Next forwards to the source until it reports exhaustion for the first time.
func (f *Fused[T]) Next() (T, bool) {
	if f.done {
		var zero T
		return zero, false
	}
	v, ok := f.src.Next()
	if !ok {
		// drop the source so nothing can reach it anymore
		f.done = true
		f.src = nil
		var zero T
		return zero, false
	}
	return v, true
}

// Done reports whether the source has been exhausted.
func (f *Fused[T]) Done() bool { return f.done }

// Pull converts a push sequence into a fused pull Iterator.
// The returned stop function must be called when the caller is done with the iterator,
// unless it was drained until exhaustion.
func Pull[T any](seq iter.Seq[T]) (*Fused[T], func()) {
	next, stop := iter.Pull(seq)
	return Fuse[T](NextFunc[T](next)), stop
}

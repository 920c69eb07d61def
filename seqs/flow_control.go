package seqs

import "iter"

// Take yields at most the first n elements of seq.
// It stops ranging over seq right after the n-th element, so it is safe on infinite sequences.
func Take[T any](seq iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		left := n
		if left <= 0 {
			return
		}
		for v := range seq {
			left--
			if !yield(v) || left == 0 {
				return
			}
		}
	}
}

// Limit is Take for pull iterators: the returned Iterator produces at most n elements of it
// and never pulls from it once n elements were produced.
func Limit[T any](it Iterator[T], n int) Iterator[T] {
	return &limited[T]{src: it, left: n}
}

type limited[T any] struct {
	src  Iterator[T]
	left int
}

func (l *limited[T]) Next() (T, bool) {
	if l.left <= 0 {
		var zero T
		return zero, false
	}
	v, ok := l.src.Next()
	if !ok {
		l.left = 0
		return v, false
	}
	l.left--
	return v, true
}

// TakeNext pulls at most n elements from it.
func TakeNext[T any](it Iterator[T], n int) []T {
	out := make([]T, 0, max(n, 0))
	for v := range All(Limit(it, n)) {
		out = append(out, v)
	}
	return out
}

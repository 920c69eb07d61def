package seqs

import "iter"

// Iterator is a pull based sequence.
// Next returns the next element, or false once the sequence is exhausted.
type Iterator[T any] interface {
	Next() (T, bool)
}

// NextFunc adapts a plain next function, such as the one returned by [iter.Pull], to an Iterator.
type NextFunc[T any] func() (T, bool)

func (f NextFunc[T]) Next() (T, bool) { return f() }

// FromSlice returns an Iterator over values.
// The slice is not copied.
func FromSlice[T any](values []T) Iterator[T] {
	i := 0
	return NextFunc[T](func() (T, bool) {
		if i >= len(values) {
			var zero T
			return zero, false
		}
		v := values[i]
		i++
		return v, true
	})
}

// All exposes the remaining elements of it as a single-use iter.Seq.
// Breaking out of the range loop leaves it positioned after the last yielded element.
func All[T any](it Iterator[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := it.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

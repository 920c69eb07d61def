package seqs

// Collect drains it into a slice.
// It never returns on an infinite Iterator.
func Collect[T any](it Iterator[T]) []T {
	var out []T
	for {
		v, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}

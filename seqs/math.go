package seqs

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// maxOf returns the largest value representable by N.
func maxOf[N constraints.Integer]() N {
	var zero N
	ones := ^zero
	if ones > zero {
		return ones
	}
	// signed: 0111...1, built from two halves so the shift never hits the sign bit
	bits := unsafe.Sizeof(zero) * 8
	half := N(1) << (bits - 2)
	return half - 1 + half
}

// hasParity is the remainder check shared by the filtering adapters.
func hasParity[T constraints.Integer](v T, odd bool) bool {
	one := T(1)
	return (v%(one+one) != 0) == odd
}

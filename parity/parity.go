package parity

import (
	"math"

	"golang.org/x/exp/constraints"
)

// IsOdd reports whether v leaves a non-zero remainder when divided by two.
func IsOdd[T constraints.Integer](v T) bool {
	return v%2 != 0
}

// IsEven reports whether v is divisible by two.
func IsEven[T constraints.Integer](v T) bool {
	return !IsOdd(v)
}

// IsOddFloat is IsOdd for floating point values.
// Non-integral values are odd, since their remainder is never zero.
func IsOddFloat[T constraints.Float](v T) bool {
	return math.Mod(float64(v), 2) != 0
}

// IsEvenFloat is the negation of IsOddFloat.
func IsEvenFloat[T constraints.Float](v T) bool {
	return !IsOddFloat(v)
}

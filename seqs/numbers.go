package seqs

import (
	"fmt"
	"iter"

	"golang.org/x/exp/constraints"

	"parityseq/parity"
)

type numbersConfig[N constraints.Integer] struct {
	end     N
	bounded bool
}

// NumbersOption configures a generator created by NewNumbers.
type NumbersOption[N constraints.Integer] func(*numbersConfig[N])

// WithEnd sets an inclusive upper bound.
// Without it the generator runs up to the largest value of N.
func WithEnd[N constraints.Integer](end N) NumbersOption[N] {
	return func(c *numbersConfig[N]) {
		c.end = end
		c.bounded = true
	}
}

// Numbers generates the ascending numbers of one parity, starting at start (inclusive)
// and ending at the configured end or the maximum of N (inclusive).
//
// The generator never steps past its bound, so the maximum of N is yielded once when it
// has the requested parity and no arithmetic wraps around afterwards.
// A Numbers value is not safe for concurrent use.
type Numbers[N constraints.Integer] struct {
	current N
	end     N
	bounded bool
	odd     bool
	done    bool
}

// NewNumbers creates a generator yielding odd numbers when odd is true, even numbers otherwise.
func NewNumbers[N constraints.Integer](start N, odd bool, opts ...NumbersOption[N]) *Numbers[N] {
	cfg := numbersConfig[N]{end: maxOf[N]()}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Numbers[N]{
		current: start,
		end:     cfg.end,
		bounded: cfg.bounded,
		odd:     odd,
	}
}

// Odds returns the odd numbers from start up to the maximum of N.
func Odds[N constraints.Integer](start N) *Numbers[N] { return NewNumbers(start, true) }

// Evens returns the even numbers from start up to the maximum of N.
func Evens[N constraints.Integer](start N) *Numbers[N] { return NewNumbers(start, false) }

// OddsTo returns the odd numbers in [start, end].
func OddsTo[N constraints.Integer](start, end N) *Numbers[N] {
	return NewNumbers(start, true, WithEnd(end))
}

// EvensTo returns the even numbers in [start, end].
func EvensTo[N constraints.Integer](start, end N) *Numbers[N] {
	return NewNumbers(start, false, WithEnd(end))
}

// Next returns the next number of the requested parity.
// Once it returns false it keeps returning false.
func (n *Numbers[N]) Next() (N, bool) {
	var zero N
	if n.done {
		return zero, false
	}

	for n.current <= n.end {
		v := n.current
		if parity.IsOdd(v) == n.odd {
			if v == n.end || v+1 == n.end {
				// v+2 would pass the bound, and may not even be representable
				n.done = true
			} else {
				n.current = v + 2
			}
			return v, true
		}
		if v == n.end {
			break
		}
		n.current = v + 1
	}

	n.done = true
	return zero, false
}

// Seq returns the remaining numbers as a single-use sequence.
func (n *Numbers[N]) Seq() iter.Seq[N] { return All[N](n) }

// Done reports whether the generator is exhausted.
func (n *Numbers[N]) Done() bool { return n.done }

func (n *Numbers[N]) String() string {
	kind := "even"
	if n.odd {
		kind = "odd"
	}
	if !n.bounded {
		return fmt.Sprintf("Numbers[%s %d..=max]", kind, n.current)
	}
	return fmt.Sprintf("Numbers[%s %d..=%d]", kind, n.current, n.end)
}

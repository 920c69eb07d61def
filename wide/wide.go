// Package wide applies the parity generator to 256-bit unsigned integers.
package wide

import (
	"fmt"
	"iter"
	"strings"

	"github.com/holiman/uint256"

	"parityseq/seqs"
)

// IsOdd reports whether v is odd. Only the lowest bit of the least significant limb is checked.
func IsOdd(v *uint256.Int) bool { return v[0]&1 == 1 }

// IsEven reports whether v is even.
func IsEven(v *uint256.Int) bool { return !IsOdd(v) }

// Numbers generates the ascending 256-bit numbers of one parity in [start, end].
// Without an end it runs up to 2^256-1, which is yielded once when odd numbers are requested.
type Numbers struct {
	current uint256.Int
	end     uint256.Int
	bounded bool
	odd     bool
	done    bool
}

// NewNumbers creates a generator. A nil end means no bound other than 2^256-1.
func NewNumbers(start uint256.Int, odd bool, end *uint256.Int) *Numbers {
	n := &Numbers{current: start, odd: odd}
	if end != nil {
		n.end = *end
		n.bounded = true
	} else {
		n.end.SetAllOne()
	}
	return n
}

// ParseNumbers builds a generator from decimal or 0x-prefixed hex bounds.
// An empty end means unbounded.
func ParseNumbers(start, end string, odd bool) (*Numbers, error) {
	s, err := parse(start)
	if err != nil {
		return nil, fmt.Errorf("invalid start %q: %w", start, err)
	}
	if end == "" {
		return NewNumbers(*s, odd, nil), nil
	}
	e, err := parse(end)
	if err != nil {
		return nil, fmt.Errorf("invalid end %q: %w", end, err)
	}
	return NewNumbers(*s, odd, e), nil
}

func parse(s string) (*uint256.Int, error) {
	if rest, ok := strings.CutPrefix(strings.ToLower(s), "0x"); ok {
		return uint256.FromHex("0x" + rest)
	}
	return uint256.FromDecimal(s)
}

// Next returns the next number of the requested parity, or false once exhausted.
func (n *Numbers) Next() (uint256.Int, bool) {
	if n.done {
		return uint256.Int{}, false
	}

	var next uint256.Int
	for !n.current.Gt(&n.end) {
		v := n.current
		if IsOdd(&v) == n.odd {
			next.AddUint64(&v, 1)
			if v.Eq(&n.end) || next.Eq(&n.end) {
				n.done = true
			} else {
				n.current.AddUint64(&v, 2)
			}
			return v, true
		}
		if v.Eq(&n.end) {
			break
		}
		n.current.AddUint64(&v, 1)
	}

	n.done = true
	return uint256.Int{}, false
}

// Seq returns the remaining numbers as a single-use sequence.
func (n *Numbers) Seq() iter.Seq[uint256.Int] {
	return seqs.All[uint256.Int](n)
}

// Done reports whether the generator is exhausted.
func (n *Numbers) Done() bool { return n.done }

func (n *Numbers) String() string {
	kind := "even"
	if n.odd {
		kind = "odd"
	}
	if !n.bounded {
		return fmt.Sprintf("Numbers[%s %s..=max]", kind, n.current.Dec())
	}
	return fmt.Sprintf("Numbers[%s %s..=%s]", kind, n.current.Dec(), n.end.Dec())
}

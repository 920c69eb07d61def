/*
Package seqs generates and filters sequences of odd or even integers.

It offers two flavours of the same operations:

  - **Pull iterators** ([Iterator]): [Numbers] generates the numbers of one parity in an
    inclusive range, [Odd] and [Even] keep the matching elements of any source. Each
    call to Next either produces a value or reports exhaustion, and exhaustion is
    sticky.
  - **Push sequences** (iter.Seq): [OddSeq] and [EvenSeq] filter any range-over-func
    sequence, [Range] and [Take] help build and bound them.

The two meet through [All], which ranges over an Iterator, and [Pull], which turns an
iter.Seq into a fused Iterator.

# Bounds

A generator without an explicit end runs up to the largest value of its type. It never
steps past that value, so the maximum is produced once when it has the right parity
and the generator is exhausted afterwards instead of wrapping around.

	evens := seqs.Evens[int8](120)
	for v := range evens.Seq() {
		fmt.Println(v) // 120 122 124 126
	}

# Fusing

[Odd] and [Even] wrap their source with [Fuse]. Once the source reports the end it is
never called again, even if it would produce more values.

Neither generators nor adapters are safe for concurrent use.
*/
package seqs

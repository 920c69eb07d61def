package seqs_test

import (
	"iter"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"parityseq/seqs"
)

// flakySource misbehaves after exhaustion: it keeps signalling the end on every other call
// and produces values in between.
type flakySource struct {
	script []struct {
		v  int
		ok bool
	}
	calls int
}

func newFlakySource(values ...int) *flakySource {
	s := &flakySource{}
	for i, v := range values {
		// 1, 2, end, 3, end, 4 ...
		s.script = append(s.script, struct {
			v  int
			ok bool
		}{v, true})
		if i >= 1 {
			s.script = append(s.script, struct {
				v  int
				ok bool
			}{0, false})
		}
	}
	return s
}

func (s *flakySource) Next() (int, bool) {
	s.calls++
	if s.calls > len(s.script) {
		return 0, false
	}
	step := s.script[s.calls-1]
	return step.v, step.ok
}

func TestOddEven_Basic(t *testing.T) {
	numbers := []int{1, 2, 3, 4, 5}

	require.Equal(t, []int{1, 3, 5}, seqs.Collect[int](seqs.Odd(seqs.FromSlice(numbers))))
	require.Equal(t, []int{2, 4}, seqs.Collect[int](seqs.Even(seqs.FromSlice(numbers))))
}

func TestOddEven_Negative(t *testing.T) {
	numbers := []int64{-4, -3, -2, -1, 0}

	require.Equal(t, []int64{-3, -1}, seqs.Collect[int64](seqs.Odd(seqs.FromSlice(numbers))))
	require.Equal(t, []int64{-4, -2, 0}, seqs.Collect[int64](seqs.Even(seqs.FromSlice(numbers))))
}

func TestOddEven_Empty(t *testing.T) {
	odd := seqs.Odd(seqs.FromSlice[uint8](nil))

	_, ok := odd.Next()
	require.False(t, ok)
	require.True(t, odd.Done())
}

func TestOddEven_StickyExhaustion(t *testing.T) {
	even := seqs.Even(seqs.FromSlice([]int{1, 2, 3}))

	v, ok := even.Next()
	require.True(t, ok)
	require.Equal(t, 2, v)

	for range 3 {
		_, ok = even.Next()
		require.False(t, ok)
	}
}

func TestOddEven_FusesSource(t *testing.T) {
	src := newFlakySource(1, 2, 3, 4)

	odd := seqs.Odd[int](src)
	require.Equal(t, []int{1}, seqs.Collect[int](odd))

	// 1, 2, then the first end signal
	require.Equal(t, 3, src.calls)

	for range 4 {
		_, ok := odd.Next()
		require.False(t, ok)
	}
	require.Equal(t, 3, src.calls, "source polled after exhaustion")
}

func TestOddEven_OverGenerator(t *testing.T) {
	// an all-even source has no odd elements
	odd := seqs.Odd[int](seqs.NewNumbers(0, false, seqs.WithEnd(10)))
	require.Empty(t, seqs.Collect[int](odd))

	even := seqs.Even[int](seqs.EvensTo(0, 10))
	require.Equal(t, []int{0, 2, 4, 6, 8, 10}, seqs.Collect[int](even))
}

// naturals counts up forever, wrapping at the type max.
func naturals() iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		for i := uint32(0); ; i++ {
			if !yield(i) {
				return
			}
		}
	}
}

func TestOddEven_InfiniteSource(t *testing.T) {
	it, stop := seqs.Pull(naturals())
	defer stop()

	odd := seqs.Odd[uint32](it)
	require.Equal(t, []uint32{1, 3, 5}, seqs.TakeNext[uint32](odd, 3))
	// the source is still live and resumes after the last consumed element
	require.Equal(t, []uint32{7, 9}, seqs.TakeNext[uint32](odd, 2))
	require.False(t, odd.Done())

	evens := slices.Collect(seqs.Take(seqs.EvenSeq(naturals()), 3))
	require.Equal(t, []uint32{0, 2, 4}, evens)

	even := seqs.Even[uint64](seqs.Evens[uint64](10))
	require.Equal(t, []uint64{10, 12}, seqs.TakeNext[uint64](even, 2))
}

func TestFuse(t *testing.T) {
	src := newFlakySource(7, 8, 9)
	fused := seqs.Fuse[int](src)

	require.Same(t, fused, seqs.Fuse[int](fused))
	require.Equal(t, []int{7, 8}, seqs.Collect[int](fused))
	require.True(t, fused.Done())

	_, ok := fused.Next()
	require.False(t, ok)
	require.Equal(t, 3, src.calls)
}

func TestPull(t *testing.T) {
	t.Run("Drained", func(t *testing.T) {
		it, stop := seqs.Pull(slices.Values([]int{1, 2, 3, 4, 5}))
		defer stop()

		require.Equal(t, []int{1, 3, 5}, seqs.Collect[int](seqs.Odd[int](it)))
		require.True(t, it.Done())
	})

	t.Run("Stopped early", func(t *testing.T) {
		it, stop := seqs.Pull(seqs.Range(0, 1_000_000, 1))

		require.Equal(t, []int{0, 2}, seqs.TakeNext[int](seqs.Even[int](it), 2))
		stop()

		_, ok := it.Next()
		require.False(t, ok)
	})
}

func TestOddSeq_EvenSeq(t *testing.T) {
	numbers := slices.Values([]int{1, 2, 3, 4, 5})

	odd := seqs.OddSeq(numbers)
	require.Equal(t, []int{1, 3, 5}, slices.Collect(odd))
	// reusable as long as the source is
	require.Equal(t, []int{1, 3, 5}, slices.Collect(odd))

	require.Equal(t, []int{2, 4}, slices.Collect(seqs.EvenSeq(numbers)))
}

func TestOddSeq_OverGenerator(t *testing.T) {
	odd := seqs.OddSeq(seqs.Evens[int8](-128).Seq())
	require.Empty(t, slices.Collect(odd))

	evens := seqs.EvenSeq(seqs.Range[int8](-3, 127, 1))
	require.Equal(t, []int8{-2, 0, 2}, slices.Collect(seqs.Take(evens, 3)))
}

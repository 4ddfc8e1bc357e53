package tileutil

import "iter"

// ClampIndex forces a 0-based index into the half-open range [0, stop).
// With wrap, the index wraps modulo stop, so negative indexes count back
// from the end; without it, the index saturates at the range bounds.
// Panics if stop is not positive.
func ClampIndex(idx, stop int, wrap bool) int {
	if stop <= 0 {
		panic("tileutil: ClampIndex: stop must be positive")
	}
	if wrap {
		return ((idx % stop) + stop) % stop
	}
	return max(min(idx, stop-1), 0)
}

// Combinations yields every k-element subsequence of items, in the order
// given by advancing positions left to right (so for [a b c] and k=2:
// [a b], [a c], [b c]). Yields nothing when k is negative or exceeds
// len(items). Each yielded slice is freshly allocated; the sequence is
// restartable.
func Combinations[T any](items []T, k int) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		n := len(items)
		if k < 0 || k > n {
			return
		}
		idx := make([]int, k)
		for i := range idx {
			idx[i] = i
		}
		for {
			out := make([]T, k)
			for i, j := range idx {
				out[i] = items[j]
			}
			if !yield(out) {
				return
			}
			// Advance the rightmost position that still has room.
			i := k - 1
			for i >= 0 && idx[i] == i+n-k {
				i--
			}
			if i < 0 {
				return
			}
			idx[i]++
			for j := i + 1; j < k; j++ {
				idx[j] = idx[j-1] + 1
			}
		}
	}
}

// Powerset yields every subset of items, smallest first: the empty subset,
// then each single element, then pairs, and so on up to the full set.
// Within a size class the order matches [Combinations]. Duplicate input
// elements are treated positionally, not de-duplicated. The sequence is
// lazy and restartable.
func Powerset[T any](items []T) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		for k := 0; k <= len(items); k++ {
			for subset := range Combinations(items, k) {
				if !yield(subset) {
					return
				}
			}
		}
	}
}

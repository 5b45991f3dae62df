package services

import (
	"iter"
	"slices"
)

// Permutations yields every ordering of items, treating each position as a
// distinct element even when values repeat.
//
// Orderings come out position-lexicographically: for each index of the
// remaining elements, that element is fixed next and the rest are permuted
// recursively. Every yielded slice is freshly allocated and never reused, so
// callers may keep or modify it. The input is not modified.
//
// An empty input yields exactly one empty ordering. The sequence is finite
// and can be ranged over any number of times.
func Permutations[T any](items []T) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		permute(nil, slices.Clone(items), yield)
	}
}

// permute returns false once the consumer stops iterating.
func permute[T any](prefix, rest []T, yield func([]T) bool) bool {
	if len(rest) == 0 {
		return yield(prefix)
	}

	for i := range rest {
		remaining := make([]T, 0, len(rest)-1)
		remaining = append(remaining, rest[:i]...)
		remaining = append(remaining, rest[i+1:]...)

		// Clip forces append to allocate, so siblings never share a backing array.
		next := append(slices.Clip(prefix), rest[i])
		if !permute(next, remaining, yield) {
			return false
		}
	}
	return true
}

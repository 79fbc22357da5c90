// Package sorting types: the Comparator contract and sentinel errors.

package sorting

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// Sentinel errors for sort invocation.
var (
	// ErrNilComparator is returned when a comparator-driven sort receives nil.
	ErrNilComparator = errors.New("sorting: comparator is nil")

	// ErrNilRandom is returned when QuickSort receives a nil random source.
	ErrNilRandom = errors.New("sorting: random source is nil")
)

// Comparator reports the ordering of a and b: negative when a sorts before
// b, positive when after, zero when equivalent.
type Comparator[T any] func(a, b T) int

// Ordered returns the natural Comparator for any ordered type.
func Ordered[T constraints.Ordered]() Comparator[T] {
	return func(a, b T) int {
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		default:
			return 0
		}
	}
}

// Counting wraps cmp so that *count increments on every comparison.
// Useful for asserting adaptivity bounds in tests.
func Counting[T any](cmp Comparator[T], count *int) Comparator[T] {
	return func(a, b T) int {
		*count++

		return cmp(a, b)
	}
}

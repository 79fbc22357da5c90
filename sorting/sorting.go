// Comparator-driven sorts: insertion, cocktail, merge, quick.

package sorting

import "math/rand"

// InsertionSort sorts arr in place. Stable and adaptive: a nearly-sorted
// input costs close to one comparison per element.
func InsertionSort[T any](arr []T, cmp Comparator[T]) error {
	if cmp == nil {
		return ErrNilComparator
	}
	for i := 1; i < len(arr); i++ {
		for j := i; j > 0 && cmp(arr[j], arr[j-1]) < 0; j-- {
			arr[j], arr[j-1] = arr[j-1], arr[j]
		}
	}

	return nil
}

// CocktailSort sorts arr in place by bubbling in alternating directions,
// shrinking the active window to the last swap position on each pass.
// Stable and adaptive.
func CocktailSort[T any](arr []T, cmp Comparator[T]) error {
	if cmp == nil {
		return ErrNilComparator
	}
	if len(arr) < 2 {
		return nil
	}
	start, end := 0, len(arr)-1
	swapped := 0
	for madeSwap := true; madeSwap; {
		// Forward pass: largest unsettled element drifts to the end.
		madeSwap = false
		for i := start; i < end; i++ {
			if cmp(arr[i], arr[i+1]) > 0 {
				arr[i], arr[i+1] = arr[i+1], arr[i]
				madeSwap = true
				swapped = i
			}
		}
		end = swapped
		if madeSwap {
			// Backward pass: smallest unsettled element drifts to the front.
			madeSwap = false
			for j := end; j > start; j-- {
				if cmp(arr[j-1], arr[j]) > 0 {
					arr[j-1], arr[j] = arr[j], arr[j-1]
					madeSwap = true
					swapped = j
				}
			}
		}
		start = swapped
	}

	return nil
}

// MergeSort sorts arr stably, splitting odd lengths with the extra element
// on the right and merging back into the caller's slice.
func MergeSort[T any](arr []T, cmp Comparator[T]) error {
	if cmp == nil {
		return ErrNilComparator
	}
	mergeSort(arr, cmp)

	return nil
}

func mergeSort[T any](arr []T, cmp Comparator[T]) {
	switch {
	case len(arr) <= 1:
		return
	case len(arr) == 2:
		if cmp(arr[0], arr[1]) > 0 {
			arr[0], arr[1] = arr[1], arr[0]
		}

		return
	}

	mid := len(arr) / 2
	left := make([]T, mid)
	right := make([]T, len(arr)-mid)
	copy(left, arr[:mid])
	copy(right, arr[mid:])
	mergeSort(left, cmp)
	mergeSort(right, cmp)

	i, j := 0, 0
	for i < len(left) && j < len(right) {
		// <= keeps equal elements in left-right order: stability.
		if cmp(left[i], right[j]) <= 0 {
			arr[i+j] = left[i]
			i++
		} else {
			arr[i+j] = right[j]
			j++
		}
	}
	for i < len(left) {
		arr[i+j] = left[i]
		i++
	}
	for j < len(right) {
		arr[i+j] = right[j]
		j++
	}
}

// QuickSort sorts arr in place with Hoare-style partitioning around pivots
// drawn from rng, so a seeded source reproduces the exact swap sequence.
// Unstable; O(n log n) expected, O(n²) worst case.
func QuickSort[T any](arr []T, cmp Comparator[T], rng *rand.Rand) error {
	if cmp == nil {
		return ErrNilComparator
	}
	if rng == nil {
		return ErrNilRandom
	}
	quickSort(arr, 0, len(arr)-1, cmp, rng)

	return nil
}

func quickSort[T any](arr []T, start, end int, cmp Comparator[T], rng *rand.Rand) {
	switch {
	case end-start < 1:
		return
	case end-start == 1:
		if cmp(arr[start], arr[end]) > 0 {
			arr[start], arr[end] = arr[end], arr[start]
		}

		return
	}

	// Move a random pivot to the front, then partition the rest around it.
	pivotIndex := rng.Intn(end-start+1) + start
	pivot := arr[pivotIndex]
	arr[pivotIndex], arr[start] = arr[start], pivot

	i, j := start+1, end
	for i <= j {
		for i <= j && cmp(arr[i], pivot) <= 0 {
			i++
		}
		for j >= i && cmp(arr[j], pivot) >= 0 {
			j--
		}
		if i <= j {
			arr[i], arr[j] = arr[j], arr[i]
			i++
			j--
		}
	}
	// j now marks the pivot's final position.
	arr[start], arr[j] = arr[j], arr[start]

	quickSort(arr, start, j-1, cmp, rng)
	quickSort(arr, j+1, end, cmp, rng)
}

// Package sorting implements classic comparison and distribution sorts:
// insertion, cocktail, merge, quick, LSD radix, and heap sort.
//
// The comparator-driven sorts (insertion, cocktail, merge, quick) accept a
// Comparator so callers control ordering and can instrument comparisons;
// Ordered builds the natural comparator for any ordered type. Radix and
// heap sort work directly on integer and ordered element types.
//
// Properties per algorithm:
//
//   - InsertionSort — in-place, stable, adaptive.           O(n²) worst, O(n) best.
//   - CocktailSort  — in-place, stable, adaptive.           O(n²) worst, O(n) best.
//   - MergeSort     — out-of-place, stable, not adaptive.   O(n log n) always.
//   - QuickSort     — in-place, unstable, not adaptive.     O(n²) worst, O(n log n) expected,
//     pivots drawn from a caller-supplied *rand.Rand for reproducibility.
//   - LSDRadixSort  — out-of-place, stable, not adaptive.   O(kn), 19 digit buckets
//     (−9..9), so negative values sort correctly without preprocessing.
//   - HeapSort      — out-of-place, unstable, not adaptive. O(n log n); builds a
//     min-heap from the unsorted input, then drains it smallest-first.
//
// Errors:
//
//   - ErrNilComparator if a comparator-driven sort receives a nil Comparator.
//   - ErrNilRandom     if QuickSort receives a nil random source.
//
// A nil or empty slice is already sorted; that is not an error.
package sorting

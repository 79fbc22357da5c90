// Distribution and heap sorts over integer / ordered element types.

package sorting

import (
	"container/heap"

	"golang.org/x/exp/constraints"
)

// LSDRadixSort sorts arr by least-significant-digit passes through
// auxiliary buckets, writing each pass back into arr.
// Stable per pass. Digits land in 19 buckets (−9..9), so negative values
// order correctly without any sign preprocessing. One initial scan of the
// array determines the pass count from the largest-magnitude element.
func LSDRadixSort[T constraints.Signed](arr []T) {
	if len(arr) < 2 {
		return
	}

	// Count the digits of the widest element.
	passes := 1
	for _, element := range arr {
		digits := 1
		for element < -9 || element > 9 {
			element /= 10
			digits++
		}
		if digits > passes {
			passes = digits
		}
	}

	var divisor T = 1
	buckets := make([][]T, 19)
	for ; passes > 0; passes-- {
		for i := range buckets {
			buckets[i] = buckets[i][:0]
		}
		for _, element := range arr {
			digit := int((element/divisor)%10) + 9 // shift −9..9 into 0..18
			buckets[digit] = append(buckets[digit], element)
		}
		idx := 0
		for _, bucket := range buckets {
			for _, element := range bucket {
				arr[idx] = element
				idx++
			}
		}
		divisor *= 10
	}
}

// HeapSort returns a new sorted slice: it heapifies a copy of data in O(n)
// and drains the min-heap smallest-first. The input is left untouched.
func HeapSort[T constraints.Ordered](data []T) []T {
	h := make(minHeap[T], len(data))
	copy(h, data)
	heap.Init(&h)

	out := make([]T, 0, len(data))
	for h.Len() > 0 {
		out = append(out, heap.Pop(&h).(T))
	}

	return out
}

// minHeap is a container/heap min-heap over ordered elements.
type minHeap[T constraints.Ordered] []T

func (h minHeap[T]) Len() int           { return len(h) }
func (h minHeap[T]) Less(i, j int) bool { return h[i] < h[j] }
func (h minHeap[T]) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *minHeap[T]) Push(x any) { *h = append(*h, x.(T)) }

func (h *minHeap[T]) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}

package sorting_test

import (
	"fmt"
	"math/rand"

	"github.com/varkhat/goclassics/sorting"
)

// ExampleMergeSort sorts stably with the natural ordering.
func ExampleMergeSort() {
	arr := []int{5, 2, 8, 1, 9, 3}
	if err := sorting.MergeSort(arr, sorting.Ordered[int]()); err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(arr)
	// Output: [1 2 3 5 8 9]
}

// ExampleQuickSort uses a seeded source so pivot selection is reproducible.
func ExampleQuickSort() {
	arr := []string{"pear", "apple", "plum", "fig"}
	if err := sorting.QuickSort(arr, sorting.Ordered[string](), rand.New(rand.NewSource(42))); err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(arr)
	// Output: [apple fig pear plum]
}

// ExampleLSDRadixSort handles negatives without preprocessing.
func ExampleLSDRadixSort() {
	arr := []int{170, -45, 75, -90, 0, 802}
	sorting.LSDRadixSort(arr)
	fmt.Println(arr)
	// Output: [-90 -45 0 75 170 802]
}

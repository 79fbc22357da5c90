// Package dijkstra types: sentinel errors, the infinity sentinel, and the
// internal priority queue.

package dijkstra

import (
	"errors"
	"math"

	"github.com/varkhat/goclassics/core"
)

// Inf is the distance reported for vertices unreachable from the source.
const Inf int64 = math.MaxInt64

// Sentinel errors returned by Dijkstra.
var (
	// ErrGraphNil indicates that a nil graph was passed to Dijkstra.
	ErrGraphNil = errors.New("dijkstra: graph is nil")

	// ErrSourceNotFound indicates that the source vertex does not exist
	// in the provided graph.
	ErrSourceNotFound = errors.New("dijkstra: source vertex not found in graph")
)

// nodeItem represents a candidate (vertex, distance) pair in the heap.
// seq is a monotonically increasing push counter used to break distance
// ties deterministically in insertion order.
type nodeItem[T comparable] struct {
	v    core.Vertex[T]
	dist int64
	seq  uint64
}

// nodePQ is a min-heap of candidates ordered by distance, then push order.
// Stale entries for already-settled vertices remain in the heap and are
// discarded when popped (lazy-decrease-key).
type nodePQ[T comparable] []nodeItem[T]

func (pq nodePQ[T]) Len() int { return len(pq) }

func (pq nodePQ[T]) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].seq < pq[j].seq
}

func (pq nodePQ[T]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ[T]) Push(x any) { *pq = append(*pq, x.(nodeItem[T])) }

func (pq *nodePQ[T]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/varkhat/goclassics/core"
)

// Dijkstra computes shortest distances from source to every vertex of g.
//
// Returns a map holding an entry for each vertex in the graph: the
// finalized shortest distance from source, or Inf for vertices that are
// unreachable. The graph is never mutated; each invocation allocates its
// own working state, so concurrent calls against one graph are safe.
//
// Edge weights are assumed non-negative (documented precondition, not
// checked). Fails with ErrGraphNil or ErrSourceNotFound before any work
// begins.
func Dijkstra[T comparable](g *core.Graph[T], source core.Vertex[T]) (map[core.Vertex[T]]int64, error) {
	// 1) Validate inputs up front; no partial state on failure.
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: %v", ErrSourceNotFound, source.Data)
	}

	// 2) Prepare working state: every vertex starts at Inf.
	vertices := g.Vertices()
	r := &runner[T]{
		g:       g,
		dist:    make(map[core.Vertex[T]]int64, len(vertices)),
		visited: make(map[core.Vertex[T]]bool, len(vertices)),
		pq:      make(nodePQ[T], 0, len(vertices)),
	}
	for _, v := range vertices {
		r.dist[v] = Inf
	}

	// 3) Seed the heap with the tentative (source, 0) entry.
	heap.Init(&r.pq)
	r.push(source, 0)
	r.dist[source] = 0

	// 4) Run the main settle/relax loop.
	r.process(len(vertices))

	return r.dist, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner[T comparable] struct {
	g       *core.Graph[T]            // read-only input graph
	dist    map[core.Vertex[T]]int64  // vertex → best known distance
	visited map[core.Vertex[T]]bool   // vertex → settled flag
	pq      nodePQ[T]                 // lazy min-heap of candidates
	settled int                       // number of finalized vertices
	seq     uint64                    // heap push counter for tie-breaks
}

// push enqueues a candidate distance for v, stamping it with the next
// sequence number so equal distances pop in insertion order.
func (r *runner[T]) push(v core.Vertex[T], d int64) {
	heap.Push(&r.pq, nodeItem[T]{v: v, dist: d, seq: r.seq})
	r.seq++
}

// process settles vertices in increasing distance order. The loop runs
// until the heap is drained or all total vertices are settled, whichever
// comes first, skipping dead heap entries once every vertex is finalized.
func (r *runner[T]) process(total int) {
	for r.pq.Len() > 0 && r.settled < total {
		item := heap.Pop(&r.pq).(nodeItem[T])

		// Stale entry for an already-settled vertex: discard without effect.
		if r.visited[item.v] {
			continue
		}

		// First pop settles the vertex; its distance is now final.
		r.visited[item.v] = true
		r.settled++
		r.relax(item.v)
	}
}

// relax examines each outgoing edge of the settled vertex u in adjacency
// order, pushing a fresh heap entry for every strictly improved neighbor.
func (r *runner[T]) relax(u core.Vertex[T]) {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		// Unreachable: u was settled, hence a member of the graph.
		return
	}
	base := r.dist[u]
	for _, nb := range neighbors {
		if r.visited[nb.To] {
			continue
		}
		cand := base + nb.Weight
		if cand >= r.dist[nb.To] {
			continue
		}
		r.dist[nb.To] = cand
		r.push(nb.To, cand)
	}
}

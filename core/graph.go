package core

import "fmt"

// Graph is an immutable aggregate of a vertex set, an edge list, and the
// adjacency mapping derived from that edge list.
//
// Invariants, established by NewGraph and never broken afterwards:
//
//   - every edge's endpoints are members of the vertex set;
//   - adj[v] lists v's outgoing (neighbor, weight) pairs in the insertion
//     order of the edges, and is derived from the edge list alone.
//
// The zero Graph is not usable; construct with NewGraph.
type Graph[T comparable] struct {
	members map[Vertex[T]]struct{}
	order   []Vertex[T] // vertex insertion order
	edges   []Edge[T]   // edge insertion order
	adj     map[Vertex[T]][]Neighbor[T]
}

// NewGraph builds a Graph from a vertex list and an edge list.
//
// Duplicate vertices collapse to a single membership (first position wins).
// Every edge endpoint must appear in vertices; otherwise NewGraph fails with
// ErrVertexNotFound and no Graph is produced. The adjacency mapping is
// derived here, once, in edge insertion order.
//
// Complexity: O(V + E) time and space.
func NewGraph[T comparable](vertices []Vertex[T], edges []Edge[T]) (*Graph[T], error) {
	g := &Graph[T]{
		members: make(map[Vertex[T]]struct{}, len(vertices)),
		order:   make([]Vertex[T], 0, len(vertices)),
		edges:   make([]Edge[T], 0, len(edges)),
		adj:     make(map[Vertex[T]][]Neighbor[T], len(vertices)),
	}
	for _, v := range vertices {
		if _, seen := g.members[v]; seen {
			continue // idempotent re-add
		}
		g.members[v] = struct{}{}
		g.order = append(g.order, v)
		g.adj[v] = nil
	}
	for _, e := range edges {
		if _, ok := g.members[e.From]; !ok {
			return nil, fmt.Errorf("%w: edge source %v", ErrVertexNotFound, e.From.Data)
		}
		if _, ok := g.members[e.To]; !ok {
			return nil, fmt.Errorf("%w: edge destination %v", ErrVertexNotFound, e.To.Data)
		}
		g.edges = append(g.edges, e)
		g.adj[e.From] = append(g.adj[e.From], Neighbor[T]{To: e.To, Weight: e.Weight})
	}

	return g, nil
}

// NewUndirectedGraph builds a Graph where each listed edge is stored together
// with its reciprocal, i.e. the undirected reciprocal-pair convention.
// The adjacency order interleaves each edge immediately before its reverse.
func NewUndirectedGraph[T comparable](vertices []Vertex[T], edges []Edge[T]) (*Graph[T], error) {
	doubled := make([]Edge[T], 0, 2*len(edges))
	for _, e := range edges {
		doubled = append(doubled, e, e.Reverse())
	}

	return NewGraph(vertices, doubled)
}

// HasVertex reports whether v is a member of the vertex set. O(1).
func (g *Graph[T]) HasVertex(v Vertex[T]) bool {
	_, ok := g.members[v]

	return ok
}

// Vertices returns the vertex set in insertion order. The slice is a copy.
func (g *Graph[T]) Vertices() []Vertex[T] {
	out := make([]Vertex[T], len(g.order))
	copy(out, g.order)

	return out
}

// VertexCount returns |V|. O(1).
func (g *Graph[T]) VertexCount() int { return len(g.order) }

// Edges returns the edge list in insertion order. The slice is a copy.
func (g *Graph[T]) Edges() []Edge[T] {
	out := make([]Edge[T], len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgeCount returns the number of stored directed edges. O(1).
func (g *Graph[T]) EdgeCount() int { return len(g.edges) }

// Neighbors returns v's adjacency list in edge insertion order.
// Fails with ErrVertexNotFound if v is not a member. The slice is a copy.
func (g *Graph[T]) Neighbors(v Vertex[T]) ([]Neighbor[T], error) {
	nbs, ok := g.adj[v]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrVertexNotFound, v.Data)
	}
	out := make([]Neighbor[T], len(nbs))
	copy(out, nbs)

	return out, nil
}

// This file declares Vertex, Edge, Neighbor and the sentinel errors of the
// core data model. Graph construction and queries live in graph.go.

package core

import "errors"

// ErrVertexNotFound indicates an operation referenced a vertex that is not
// a member of the graph's vertex set.
var ErrVertexNotFound = errors.New("core: vertex not found")

// Vertex wraps a single piece of caller data. Vertices are immutable values:
// two Vertex[T] are equal iff their Data are equal, so a Vertex is usable as
// a map key whenever T is.
type Vertex[T comparable] struct {
	// Data is the caller-supplied identity of this vertex.
	Data T
}

// V is shorthand for constructing a Vertex from its data.
func V[T comparable](data T) Vertex[T] { return Vertex[T]{Data: data} }

// Edge is a directed connection From→To with a non-negative Weight.
//
// Weights are never validated here; shortest-path computations document
// non-negativity as a precondition rather than a runtime check. To model an
// undirected edge, store the edge and its Reverse as two separate values.
type Edge[T comparable] struct {
	// From is the source vertex.
	From Vertex[T]

	// To is the destination vertex.
	To Vertex[T]

	// Weight is the cost of traversing this edge.
	Weight int64
}

// Reverse returns the reciprocal edge (To, From, Weight).
func (e Edge[T]) Reverse() Edge[T] {
	return Edge[T]{From: e.To, To: e.From, Weight: e.Weight}
}

// Neighbor is one entry of a vertex's adjacency list: the destination vertex
// and the weight of the edge leading to it.
type Neighbor[T comparable] struct {
	// To is the adjacent vertex.
	To Vertex[T]

	// Weight is the weight of the edge reaching it.
	Weight int64
}

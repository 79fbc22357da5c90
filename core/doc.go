// Package core defines the central Graph, Vertex, and Edge types shared by
// every algorithm package in goclassics.
//
// What & Why
//
//   - Vertex[T] is an immutable identity wrapper around caller data of any
//     comparable type T. Two vertices are equal exactly when their wrapped
//     data are equal, so Vertex values serve directly as map keys.
//
//   - Edge[T] is a directed (From, To, Weight) triple. Undirected graphs use
//     the reciprocal-pair convention: an undirected edge u—v of weight w is
//     stored as two distinct Edge values, (u,v,w) and (v,u,w).
//
//   - Graph[T] is an immutable aggregate of a vertex set, an edge list, and
//     an adjacency mapping derived from the edge list. The adjacency order of
//     each vertex's neighbors is exactly the insertion order of the edges the
//     caller supplied, and every traversal algorithm in this library respects
//     that order. Build the graph once; no method mutates it afterwards.
//
// Concurrency
//
// Graph carries no internal locking. Because a constructed Graph is never
// mutated, any number of goroutines may run algorithms against the same
// Graph concurrently. Callers who rebuild graphs must publish the new
// *Graph safely themselves.
//
// Errors:
//
//	ErrVertexNotFound — an edge references a vertex outside the vertex set.
package core

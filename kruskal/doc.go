// Package kruskal computes the Minimum Spanning Tree (MST) of an
// undirected, weighted core.Graph using Kruskal's algorithm.
//
// What & Why
//
// Given an undirected connected graph G = (V, E), an MST is a subset
// T ⊆ E that connects every vertex with minimum total weight. Kruskal
// builds it greedily: consider edges in ascending weight order and accept
// an edge exactly when its endpoints lie in different components of a
// disjoint-set structure. An edge whose endpoints are already unified would
// close a cycle; the same test also rejects every self-loop and parallel
// edge for free.
//
// Undirected convention
//
// The graph follows the reciprocal-pair convention: each undirected edge
// u—v appears as two directed Edge values, (u,v,w) and (v,u,w). Whenever an
// edge is accepted its reciprocal is accepted with it, so a spanning tree
// over |V| vertices holds exactly 2×(|V|−1) Edge values, and TotalWeight
// counts each undirected edge once.
//
// No result vs. empty tree
//
// A disconnected graph has no spanning tree. Kruskal reports that as a nil
// *MST with a nil error: an outcome, not a failure. A non-nil MST with
// zero edges is the valid trivial tree of a graph with at most one vertex.
// The only error condition is a nil graph.
//
// Determinism
//
// Edges sort by ascending weight with a stable sort, so equal weights keep
// their graph insertion order and the accepted set is reproducible.
//
// Complexity: O(E log E + α(V)·E) ≈ O(E log V) time, O(V + E) space.
package kruskal

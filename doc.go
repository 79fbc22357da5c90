// Package goclassics is a small library of classic algorithms over
// explicit in-memory data: graph traversal and optimization, sorting,
// and string searching.
//
// 🚀 What is goclassics?
//
//	A generic, dependency-light collection of the classics:
//		• Core primitives: immutable Graph, Vertex & weighted Edge aggregates
//		• Traversals: BFS, DFS (explicit-stack pre-order)
//		• Shortest paths: Dijkstra (lazy-decrease-key min-heap)
//		• Minimum spanning trees: Kruskal over a disjoint-set arena
//		• Sorting: insertion, cocktail, merge, quick, LSD radix, heap
//		• String search: KMP, Boyer–Moore (+ Galil rule), Rabin–Karp
//
// ✨ Why choose goclassics?
//
//   - Pure functions – algorithms never mutate their inputs
//   - Deterministic – adjacency order and tie-breaks are reproducible
//   - Generic – bring your own comparable vertex data, no wrappers
//   - Pure Go – no cgo, no hidden deps
//
// Everything is organized under small, focused subpackages:
//
//	core/         — Graph, Vertex, Edge types and adjacency invariants
//	dsu/          — disjoint-set (union-find) with path compression
//	bfs/, dfs/    — traversal in strict adjacency order
//	dijkstra/     — single-source shortest distances
//	kruskal/      — minimum spanning tree or "no result"
//	sorting/      — comparator-driven and integer sorts
//	patternmatch/ — all-occurrence substring search
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    C───D
//
//	represents a square with four vertices and four undirected edges,
//	stored as eight reciprocal directed Edge values.
//
//	go get github.com/varkhat/goclassics
package goclassics

// Package dsu implements a disjoint-set (union-find) structure over
// arbitrary comparable keys.
//
// What & Why
//
// A disjoint-set tracks connectivity classes: Union merges the sets holding
// two keys, and Find answers "which set does this key belong to" in
// near-constant amortized time (inverse-Ackermann, effectively O(1)).
// Kruskal's algorithm uses it to detect whether a candidate edge would
// close a cycle.
//
// Storage is an index arena: each key is assigned a compact integer id on
// first sight, and the parent/rank forests live in flat slices indexed by
// those ids. This keeps Find/Union pointer-free and cache-friendly, with no
// per-node allocation after the id map entry.
//
//   - Find uses iterative path compression (grandparent splitting).
//   - Union attaches by rank, incrementing rank only on equal-rank merges.
//   - Find on an unseen key lazily creates a fresh singleton set.
//
// A DisjointSet is not safe for concurrent use: Find compresses paths, so
// even reads mutate internal state.
package dsu

// Package dfs implements depth-first search over a core.Graph in strict
// pre-order: a vertex is recorded on discovery, and its first unvisited
// neighbor (by adjacency order) is fully explored before the next one.
//
// The traversal runs on an explicit stack rather than the call stack, so
// pathological graphs (million-vertex chains included) cannot exhaust
// call-stack limits. Neighbors are pushed in reverse adjacency order and a
// vertex is accepted at pop time only if still unvisited, which reproduces
// the recursive pre-order exactly.
//
// Complexity:
//
//   - Time:  O(V + E) plus hook and filter overhead.
//   - Space: O(V + E) worst case for the explicit stack (a vertex may be
//     pushed once per incoming edge; duplicates are discarded at pop).
//
// Options:
//
//   - WithMaxDepth(d)        stop descending beyond tree depth d (0 = no limit).
//   - WithOnVisit(fn)        pre-order hook; an error aborts the traversal.
//   - WithFilterNeighbor(fn) skip edges for which fn returns false.
//
// Errors:
//
//   - ErrGraphNil        if the graph is nil.
//   - ErrStartNotFound   if the start vertex is not in the graph.
//   - ErrOptionViolation if an option carries an invalid value.
//   - any error returned by an OnVisit hook.
package dfs

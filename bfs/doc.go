// Package bfs provides breadth-first search over a core.Graph, returning
// the strict discovery order together with unweighted depths and parent
// links.
//
// BFS explores vertices in increasing hop distance from a start vertex,
// visiting each vertex's neighbors in the graph's adjacency order, so the
// result is fully deterministic for a deterministic graph. Each reachable
// vertex appears in the output exactly once, at the position of its
// discovery. The graph is never mutated.
//
// Complexity:
//
//   - Time:  O(V + E); each vertex is enqueued at most once and each edge
//     inspected at most once.
//   - Space: O(V) for the frontier queue, visited set, and result maps.
//
// Options:
//
//   - WithMaxDepth(d)        stop exploring beyond depth d (0 = no limit).
//   - WithOnVisit(fn)        hook on each visit; an error aborts the search.
//   - WithFilterNeighbor(fn) skip edges for which fn returns false.
//
// Errors:
//
//   - ErrGraphNil        if the graph is nil.
//   - ErrStartNotFound   if the start vertex is not in the graph.
//   - ErrOptionViolation if an option carries an invalid value.
//   - any error returned by an OnVisit hook.
package bfs

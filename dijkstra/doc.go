// Package dijkstra implements Dijkstra's single-source shortest-path
// algorithm over a core.Graph.
//
// Dijkstra computes the minimum-cost distance from a source vertex to every
// vertex of a graph with non-negative edge weights, processing vertices in
// order of increasing distance with a min-heap priority queue under the
// "lazy-decrease-key" strategy: improved candidates are pushed as fresh heap
// entries and stale entries are discarded when popped. Heap ties break by
// push order, so the settle sequence is deterministic.
//
// The result covers every vertex in the graph: a finalized shortest
// distance once settled, or the Inf sentinel for vertices never reached.
//
// Precondition: edge weights must be non-negative. This is documented, not
// checked; with a negative weight the returned distances are undefined.
//
// Termination uses two conditions in conjunction: the loop exits when the
// heap is empty or when every vertex has been settled, whichever comes
// first. The second condition skips dead heap entries once all real work is
// done; correctness relies only on the first plus the settled guard.
//
// Complexity:
//
//   - Time:  O((V + E) log V); V settles, up to E pushes, O(log) heap ops.
//   - Space: O(V + E) for distance/visited maps plus worst-case heap entries.
//
// Errors:
//
//   - ErrGraphNil       if the graph is nil.
//   - ErrSourceNotFound if the source vertex is not in the graph.
package dijkstra

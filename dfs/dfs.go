package dfs

import (
	"fmt"

	"github.com/varkhat/goclassics/core"
)

// frame is one pending visit on the explicit stack. A vertex may sit in
// several frames at once (one per discovering edge); only the first frame
// popped while the vertex is unvisited takes effect.
type frame[T comparable] struct {
	v         core.Vertex[T]
	parent    core.Vertex[T]
	hasParent bool
	depth     int
}

// walker encapsulates mutable DFS state for one invocation.
type walker[T comparable] struct {
	graph   *core.Graph[T]
	opts    Options[T]
	stack   []frame[T]
	visited map[core.Vertex[T]]bool
	res     *Result[T]
}

// DFS performs a pre-order depth-first search on g starting from start.
// The first unvisited neighbor (by adjacency order) of each vertex is fully
// explored before its later siblings, exactly as the recursive formulation
// would, but without recursion. The graph is never mutated.
//
// Returns ErrGraphNil or ErrStartNotFound for invalid input,
// ErrOptionViolation for bad options, or any error from an OnVisit hook.
func DFS[T comparable](g *core.Graph[T], start core.Vertex[T], opts ...Option[T]) (*Result[T], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions[T]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(start) {
		return nil, ErrStartNotFound
	}

	n := g.VertexCount()
	w := &walker[T]{
		graph:   g,
		opts:    o,
		stack:   make([]frame[T], 0, n),
		visited: make(map[core.Vertex[T]]bool, n),
		res: &Result[T]{
			Order:  make([]core.Vertex[T], 0, n),
			Depth:  make(map[core.Vertex[T]]int, n),
			Parent: make(map[core.Vertex[T]]core.Vertex[T], n),
		},
	}

	w.stack = append(w.stack, frame[T]{v: start})
	if err := w.loop(); err != nil {
		return nil, err
	}

	return w.res, nil
}

// loop drains the stack, visiting each vertex at most once.
func (w *walker[T]) loop() error {
	for len(w.stack) > 0 {
		f := w.stack[len(w.stack)-1]
		w.stack = w.stack[:len(w.stack)-1]

		// Stale frame: the vertex was reached through an earlier edge.
		if w.visited[f.v] {
			continue
		}
		if w.opts.MaxDepth > 0 && f.depth > w.opts.MaxDepth {
			continue
		}

		w.visited[f.v] = true
		w.res.Order = append(w.res.Order, f.v)
		w.res.Depth[f.v] = f.depth
		if f.hasParent {
			w.res.Parent[f.v] = f.parent
		}
		if err := w.opts.OnVisit(f.v, f.depth); err != nil {
			return fmt.Errorf("dfs: OnVisit error at %v: %w", f.v.Data, err)
		}
		if err := w.pushNeighbors(f); err != nil {
			return err
		}
	}

	return nil
}

// pushNeighbors pushes f's unvisited neighbors in reverse adjacency order,
// so the first neighbor ends up on top of the stack and is explored first.
func (w *walker[T]) pushNeighbors(f frame[T]) error {
	neighbors, err := w.graph.Neighbors(f.v)
	if err != nil {
		return fmt.Errorf("dfs: neighbors of %v: %w", f.v.Data, err)
	}
	for i := len(neighbors) - 1; i >= 0; i-- {
		nb := neighbors[i]
		if !w.opts.FilterNeighbor(f.v, nb.To) {
			continue
		}
		if w.visited[nb.To] {
			continue
		}
		w.stack = append(w.stack, frame[T]{
			v:         nb.To,
			parent:    f.v,
			hasParent: true,
			depth:     f.depth + 1,
		})
	}

	return nil
}

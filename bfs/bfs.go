package bfs

import (
	"fmt"

	"github.com/varkhat/goclassics/core"
)

// queueItem pairs a vertex with its BFS depth.
type queueItem[T comparable] struct {
	v     core.Vertex[T]
	depth int
}

// walker encapsulates mutable BFS state for one invocation.
// Each call to BFS allocates its own walker; nothing is shared across calls.
type walker[T comparable] struct {
	graph   *core.Graph[T]
	opts    Options[T]
	queue   []queueItem[T]
	visited map[core.Vertex[T]]bool
	res     *Result[T]
}

// BFS runs breadth-first search on g starting from start, applying any
// number of functional Options. Vertices are discovered in first-in
// first-out frontier order, neighbors strictly in adjacency order.
//
// Returns ErrGraphNil or ErrStartNotFound for invalid input,
// ErrOptionViolation for bad options, or any error from an OnVisit hook.
func BFS[T comparable](g *core.Graph[T], start core.Vertex[T], opts ...Option[T]) (*Result[T], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately.
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
		queue:   make([]queueItem[T], 0, n),
		visited: make(map[core.Vertex[T]]bool, n),
		res: &Result[T]{
			Order:  make([]core.Vertex[T], 0, n),
			Depth:  make(map[core.Vertex[T]]int, n),
			Parent: make(map[core.Vertex[T]]core.Vertex[T], n),
		},
	}

	// Seed the frontier with the start vertex at depth 0.
	w.visited[start] = true
	w.res.Depth[start] = 0
	w.queue = append(w.queue, queueItem[T]{v: start})

	if err := w.loop(); err != nil {
		return nil, err
	}

	return w.res, nil
}

// loop drains the FIFO frontier until empty.
func (w *walker[T]) loop() error {
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.v)
		if err := w.opts.OnVisit(item.v, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %v: %w", item.v.Data, err)
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// enqueueNeighbors discovers unseen neighbors of item in adjacency order,
// applying filtering and the depth limit.
func (w *walker[T]) enqueueNeighbors(item queueItem[T]) error {
	neighbors, err := w.graph.Neighbors(item.v)
	if err != nil {
		return fmt.Errorf("bfs: neighbors of %v: %w", item.v.Data, err)
	}
	nextDepth := item.depth + 1
	for _, nb := range neighbors {
		if !w.opts.FilterNeighbor(item.v, nb.To) {
			continue
		}
		if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
			continue
		}
		if w.visited[nb.To] {
			continue
		}
		// First discovery fixes depth, parent, and position.
		w.visited[nb.To] = true
		w.res.Depth[nb.To] = nextDepth
		w.res.Parent[nb.To] = item.v
		w.queue = append(w.queue, queueItem[T]{v: nb.To, depth: nextDepth})
	}

	return nil
}

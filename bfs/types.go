// Package bfs types: sentinel errors, functional options, and the result
// structure of a traversal.

package bfs

import (
	"errors"
	"fmt"

	"github.com/varkhat/goclassics/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartNotFound is returned when the start vertex is absent from the graph.
	ErrStartNotFound = errors.New("bfs: start vertex not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments. An invalid value
// (e.g. a negative depth) is recorded internally and surfaced as
// ErrOptionViolation when BFS is invoked.
type Option[T comparable] func(*Options[T])

// Options holds parameters and callbacks to customize BFS execution.
type Options[T comparable] struct {
	// OnVisit is called when a vertex is visited, with its discovery depth.
	// If it returns an error, BFS aborts and propagates that error.
	OnVisit func(v core.Vertex[T], depth int) error

	// FilterNeighbor can skip edges by returning false.
	// Called for each edge curr→neighbor in adjacency order.
	FilterNeighbor func(curr, neighbor core.Vertex[T]) bool

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults: no depth limit,
// no filtering, and a no-op visit hook.
func DefaultOptions[T comparable]() Options[T] {
	return Options[T]{
		OnVisit:        func(core.Vertex[T], int) error { return nil },
		FilterNeighbor: func(_, _ core.Vertex[T]) bool { return true },
		MaxDepth:       0,
	}
}

// WithOnVisit registers a callback to run on each visit; returning an error
// from the callback stops the search.
func WithOnVisit[T comparable](fn func(v core.Vertex[T], depth int) error) Option[T] {
	return func(o *Options[T]) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor[T comparable](fn func(curr, neighbor core.Vertex[T]) bool) Option[T] {
	return func(o *Options[T]) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// WithMaxDepth stops the search beyond the given depth.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth[T comparable](d int) Option[T] {
	return func(o *Options[T]) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		default:
			o.MaxDepth = d
		}
	}
}

// Result holds the outcome of a BFS traversal:
//   - Order:  vertices in strict discovery sequence.
//   - Depth:  hop distance from the start, for every reached vertex.
//   - Parent: predecessor in the BFS tree; the start has no entry.
type Result[T comparable] struct {
	Order  []core.Vertex[T]
	Depth  map[core.Vertex[T]]int
	Parent map[core.Vertex[T]]core.Vertex[T]
}

// PathTo reconstructs the start→dest path along parent links.
// Returns an error if dest was never reached.
func (r *Result[T]) PathTo(dest core.Vertex[T]) ([]core.Vertex[T], error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("bfs: no path to %v", dest.Data)
	}
	// build reversed path, then flip
	path := []core.Vertex[T]{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

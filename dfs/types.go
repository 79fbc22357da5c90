// Package dfs types: sentinel errors, functional options, and the traversal
// result structure.

package dfs

import (
	"errors"
	"fmt"

	"github.com/varkhat/goclassics/core"
)

// Sentinel errors for DFS execution.
var (
	// ErrGraphNil is returned when a nil graph pointer is passed to DFS.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartNotFound indicates that the start vertex does not exist in the graph.
	ErrStartNotFound = errors.New("dfs: start vertex not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")
)

// Option configures optional behavior of DFS traversal.
type Option[T comparable] func(*Options[T])

// Options holds configurable parameters for DFS traversal. Complexity stays
// O(V+E) when filters and hooks are O(1).
type Options[T comparable] struct {
	// OnVisit is the pre-order hook, called at discovery with the vertex's
	// depth in the DFS tree. An error aborts the traversal.
	OnVisit func(v core.Vertex[T], depth int) error

	// FilterNeighbor can skip edges by returning false.
	FilterNeighbor func(curr, neighbor core.Vertex[T]) bool

	// MaxDepth, if > 0, stops descending beyond this DFS-tree depth.
	// 0 disables the limit.
	MaxDepth int

	err error
}

// DefaultOptions returns Options with no limit, no filtering, and a no-op hook.
func DefaultOptions[T comparable]() Options[T] {
	return Options[T]{
		OnVisit:        func(core.Vertex[T], int) error { return nil },
		FilterNeighbor: func(_, _ core.Vertex[T]) bool { return true },
		MaxDepth:       0,
	}
}

// WithOnVisit registers the pre-order hook; returning an error stops the traversal.
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

// WithMaxDepth limits the DFS-tree depth.
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

// Result holds the outcome of a DFS traversal:
//   - Order:  vertices in pre-order visitation sequence.
//   - Depth:  DFS-tree depth of every visited vertex.
//   - Parent: predecessor in the DFS tree; the start has no entry.
type Result[T comparable] struct {
	Order  []core.Vertex[T]
	Depth  map[core.Vertex[T]]int
	Parent map[core.Vertex[T]]core.Vertex[T]
}

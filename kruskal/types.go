// Package kruskal types: the MST result aggregate and sentinel errors.

package kruskal

import (
	"errors"

	"github.com/varkhat/goclassics/core"
)

// ErrGraphNil indicates that a nil graph was passed to Kruskal.
var ErrGraphNil = errors.New("kruskal: graph is nil")

// MST is a minimum spanning tree expressed in the reciprocal-pair
// convention: every accepted undirected edge contributes two adjacent Edge
// values, (u,v,w) immediately followed by (v,u,w), in acceptance order
// (ascending weight, insertion order on ties).
type MST[T comparable] struct {
	// Edges holds the accepted edges; len(Edges) == 2×(|V|−1).
	Edges []core.Edge[T]

	// TotalWeight sums each undirected edge once, not per direction.
	TotalWeight int64
}

// EdgeCount returns the number of undirected edges in the tree.
func (m *MST[T]) EdgeCount() int { return len(m.Edges) / 2 }

package kruskal

import (
	"sort"

	"github.com/varkhat/goclassics/core"
	"github.com/varkhat/goclassics/dsu"
)

// Kruskal computes the minimum spanning tree of g.
//
// Returns:
//
//   - (*MST, nil)  if g is connected: the tree edges as reciprocal pairs.
//   - (nil, nil)   if g is disconnected: no spanning tree exists. This is a
//     first-class outcome, not an error.
//   - (nil, ErrGraphNil) if g is nil.
//
// A graph with at most one vertex yields a non-nil MST with zero edges.
// The graph is assumed undirected in the reciprocal-pair sense and is never
// mutated.
//
// Steps:
//  1. Seed a disjoint-set with every vertex, so isolated vertices are
//     represented before any edge is processed.
//  2. Stable-sort the edge list by ascending weight (ties keep insertion order).
//  3. Scan edges in order; accept an edge and its reciprocal when its
//     endpoints are in different components, then union the components.
//     Self-loops and parallel edges always fail the component test.
//  4. Stop once 2×(|V|−1) edges are accepted or the edges run out; falling
//     short of that count means the graph was disconnected.
func Kruskal[T comparable](g *core.Graph[T]) (*MST[T], error) {
	// 1. Validate. The only failure mode is a nil graph.
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Seed the disjoint-set with every vertex's data key.
	vertices := g.Vertices()
	sets := dsu.New[T]()
	for _, v := range vertices {
		sets.Find(v.Data)
	}

	// 3. Order edges by ascending weight; stable so that equal weights keep
	//    the graph's edge insertion order (deterministic tie-break).
	edges := g.Edges()
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	// A spanning tree counted with both directions has 2×(|V|−1) edges;
	// for |V| ≤ 1 the threshold is trivially zero.
	target := 2 * (len(vertices) - 1)
	if target < 0 {
		target = 0
	}

	mst := &MST[T]{Edges: make([]core.Edge[T], 0, target)}
	for _, e := range edges {
		if len(mst.Edges) >= target {
			break
		}
		// Endpoints already unified ⇒ the edge would close a cycle
		// (covers self-loops and parallel edges as well).
		if sets.Find(e.From.Data) == sets.Find(e.To.Data) {
			continue
		}
		mst.Edges = append(mst.Edges, e, e.Reverse())
		mst.TotalWeight += e.Weight
		sets.Union(e.From.Data, e.To.Data)
	}

	// 4. Short of the threshold ⇒ disconnected ⇒ no spanning tree.
	if len(mst.Edges) < target {
		return nil, nil
	}

	return mst, nil
}

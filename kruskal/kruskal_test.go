package kruskal_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/varkhat/goclassics/core"
	"github.com/varkhat/goclassics/dsu"
	"github.com/varkhat/goclassics/kruskal"
)

func vlist(names ...string) []core.Vertex[string] {
	out := make([]core.Vertex[string], len(names))
	for i, n := range names {
		out[i] = core.V(n)
	}

	return out
}

// buildTriangle constructs the undirected triangle A—B(1), B—C(2), A—C(5).
// Its MST is {A—B, B—C} with total weight 3.
func buildTriangle(t *testing.T) *core.Graph[string] {
	t.Helper()
	g, err := core.NewUndirectedGraph(vlist("A", "B", "C"), []core.Edge[string]{
		{From: core.V("A"), To: core.V("B"), Weight: 1},
		{From: core.V("B"), To: core.V("C"), Weight: 2},
		{From: core.V("A"), To: core.V("C"), Weight: 5},
	})
	require.NoError(t, err)

	return g
}

// bruteForceMST scans all (|V|-1)-subsets of the undirected base edges and
// returns the minimum weight of a spanning subset, or -1 if none spans.
// Exponential; test graphs stay tiny.
func bruteForceMST(vs []core.Vertex[string], base []core.Edge[string]) int64 {
	n := len(vs)
	if n <= 1 {
		return 0
	}
	best := int64(-1)
	for mask := 0; mask < 1<<len(base); mask++ {
		var picked []core.Edge[string]
		for i, e := range base {
			if mask&(1<<i) != 0 {
				picked = append(picked, e)
			}
		}
		if len(picked) != n-1 {
			continue
		}
		sets := dsu.New[string]()
		for _, v := range vs {
			sets.Find(v.Data)
		}
		for _, e := range picked {
			sets.Union(e.From.Data, e.To.Data)
		}
		if sets.Sets() != 1 {
			continue
		}
		var total int64
		for _, e := range picked {
			total += e.Weight
		}
		if best < 0 || total < best {
			best = total
		}
	}

	return best
}

// TestKruskal_NilGraph is the only error path.
func TestKruskal_NilGraph(t *testing.T) {
	_, err := kruskal.Kruskal[string](nil)
	assert.ErrorIs(t, err, kruskal.ErrGraphNil)
}

// TestKruskal_Triangle pins the concrete scenario: the A—C(5) edge is
// excluded, both directions of the accepted edges are present, weight 3.
func TestKruskal_Triangle(t *testing.T) {
	mst, err := kruskal.Kruskal(buildTriangle(t))
	require.NoError(t, err)
	require.NotNil(t, mst)

	assert.Equal(t, int64(3), mst.TotalWeight)
	assert.Equal(t, 2, mst.EdgeCount())
	want := []core.Edge[string]{
		{From: core.V("A"), To: core.V("B"), Weight: 1},
		{From: core.V("B"), To: core.V("A"), Weight: 1},
		{From: core.V("B"), To: core.V("C"), Weight: 2},
		{From: core.V("C"), To: core.V("B"), Weight: 2},
	}
	assert.Equal(t, want, mst.Edges)
}

// TestKruskal_DisconnectedIsNoResult: an isolated vertex with no touching
// edges means no spanning tree: nil MST, nil error.
func TestKruskal_DisconnectedIsNoResult(t *testing.T) {
	g, err := core.NewUndirectedGraph(vlist("A", "B", "C", "D"), []core.Edge[string]{
		{From: core.V("A"), To: core.V("B"), Weight: 1},
		{From: core.V("B"), To: core.V("C"), Weight: 2},
		// D is isolated.
	})
	require.NoError(t, err)

	mst, err := kruskal.Kruskal(g)
	assert.NoError(t, err)
	assert.Nil(t, mst, "disconnected graph has no spanning tree")
}

// TestKruskal_TrivialGraphs distinguishes the valid empty tree from "no
// result": graphs with ≤1 vertex trivially meet the zero-edge threshold.
func TestKruskal_TrivialGraphs(t *testing.T) {
	empty, err := core.NewGraph[string](nil, nil)
	require.NoError(t, err)
	mst, err := kruskal.Kruskal(empty)
	require.NoError(t, err)
	require.NotNil(t, mst, "empty graph yields the empty tree, not no-result")
	assert.Empty(t, mst.Edges)
	assert.Zero(t, mst.TotalWeight)

	single, err := core.NewGraph(vlist("A"), nil)
	require.NoError(t, err)
	mst, err = kruskal.Kruskal(single)
	require.NoError(t, err)
	require.NotNil(t, mst)
	assert.Empty(t, mst.Edges)
}

// TestKruskal_SelfLoopsAndParallelEdges must never enter the tree.
func TestKruskal_SelfLoopsAndParallelEdges(t *testing.T) {
	g, err := core.NewUndirectedGraph(vlist("A", "B"), []core.Edge[string]{
		{From: core.V("A"), To: core.V("A"), Weight: 0}, // self-loop, cheapest
		{From: core.V("A"), To: core.V("B"), Weight: 2},
		{From: core.V("A"), To: core.V("B"), Weight: 3}, // parallel, heavier
	})
	require.NoError(t, err)

	mst, err := kruskal.Kruskal(g)
	require.NoError(t, err)
	require.NotNil(t, mst)
	assert.Equal(t, 1, mst.EdgeCount())
	assert.Equal(t, int64(2), mst.TotalWeight)
	for _, e := range mst.Edges {
		assert.NotEqual(t, e.From, e.To, "self-loop leaked into MST")
	}
}

// TestKruskal_TieBreakDeterminism: equal weights resolve by edge insertion
// order, so repeated runs pick the same tree.
func TestKruskal_TieBreakDeterminism(t *testing.T) {
	build := func() *core.Graph[string] {
		g, err := core.NewUndirectedGraph(vlist("A", "B", "C"), []core.Edge[string]{
			{From: core.V("A"), To: core.V("B"), Weight: 1},
			{From: core.V("A"), To: core.V("C"), Weight: 1},
			{From: core.V("B"), To: core.V("C"), Weight: 1},
		})
		require.NoError(t, err)

		return g
	}

	first, err := kruskal.Kruskal(build())
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := kruskal.Kruskal(build())
		require.NoError(t, err)
		assert.Equal(t, first.Edges, again.Edges)
	}
	// Insertion order wins the tie: A—B then A—C, never B—C.
	assert.Equal(t, core.V("B"), first.Edges[0].To)
	assert.Equal(t, core.V("C"), first.Edges[2].To)
}

// TestKruskal_SpanningAndAcyclic checks the structural MST properties on a
// bigger graph: edge count, spanning via union-find, per-direction acyclicity.
func TestKruskal_SpanningAndAcyclic(t *testing.T) {
	vs := vlist("A", "B", "C", "D", "E", "F")
	base := []core.Edge[string]{
		{From: core.V("A"), To: core.V("B"), Weight: 4},
		{From: core.V("A"), To: core.V("C"), Weight: 3},
		{From: core.V("B"), To: core.V("C"), Weight: 2},
		{From: core.V("B"), To: core.V("D"), Weight: 5},
		{From: core.V("C"), To: core.V("D"), Weight: 6},
		{From: core.V("D"), To: core.V("E"), Weight: 1},
		{From: core.V("E"), To: core.V("F"), Weight: 8},
		{From: core.V("C"), To: core.V("F"), Weight: 7},
	}
	g, err := core.NewUndirectedGraph(vs, base)
	require.NoError(t, err)

	mst, err := kruskal.Kruskal(g)
	require.NoError(t, err)
	require.NotNil(t, mst)
	assert.Len(t, mst.Edges, 2*(len(vs)-1))

	// Accepting each pair once must connect all vertices without a cycle.
	sets := dsu.New[string]()
	for _, v := range vs {
		sets.Find(v.Data)
	}
	for i := 0; i < len(mst.Edges); i += 2 {
		e := mst.Edges[i]
		assert.Equal(t, e.Reverse(), mst.Edges[i+1], "reciprocal must follow its edge")
		assert.True(t, sets.Union(e.From.Data, e.To.Data), "cycle edge in MST")
	}
	assert.Equal(t, 1, sets.Sets(), "MST must span every vertex")

	assert.Equal(t, bruteForceMST(vs, base), mst.TotalWeight)
}

// TestKruskal_AgainstBruteForce cross-checks random small graphs.
func TestKruskal_AgainstBruteForce(t *testing.T) {
	r := rand.New(rand.NewSource(99))
	for trial := 0; trial < 20; trial++ {
		n := 3 + r.Intn(4) // 3..6 vertices
		vs := make([]core.Vertex[string], n)
		for i := range vs {
			vs[i] = core.V(fmt.Sprintf("V%d", i))
		}
		var base []core.Edge[string]
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if r.Intn(2) == 0 {
					base = append(base, core.Edge[string]{
						From:   vs[i],
						To:     vs[j],
						Weight: int64(1 + r.Intn(30)),
					})
				}
			}
		}
		g, err := core.NewUndirectedGraph(vs, base)
		require.NoError(t, err)

		mst, err := kruskal.Kruskal(g)
		require.NoError(t, err)

		want := bruteForceMST(vs, base)
		if want < 0 {
			assert.Nil(t, mst, "trial %d: brute force found no spanning tree", trial)
			continue
		}
		require.NotNil(t, mst, "trial %d: expected a spanning tree", trial)
		assert.Equal(t, want, mst.TotalWeight, "trial %d", trial)
	}
}

// TestKruskal_DoesNotMutateGraph compares snapshots around a run; the edge
// sort must happen on a copy.
func TestKruskal_DoesNotMutateGraph(t *testing.T) {
	g := buildTriangle(t)
	before := g.Edges()
	_, err := kruskal.Kruskal(g)
	require.NoError(t, err)
	assert.Equal(t, before, g.Edges())
}

// buildMediumGraph creates a connected weighted graph for benchmarks:
// a chain for connectivity plus random extra edges, deterministically seeded.
func buildMediumGraph(n, extra int) *core.Graph[string] {
	vs := make([]core.Vertex[string], n)
	for i := range vs {
		vs[i] = core.V(fmt.Sprintf("V%d", i))
	}
	r := rand.New(rand.NewSource(42))
	var es []core.Edge[string]
	for i := 1; i < n; i++ {
		es = append(es, core.Edge[string]{From: vs[i-1], To: vs[i], Weight: int64(1 + r.Intn(10))})
	}
	for k := 0; k < extra; k++ {
		u, v := r.Intn(n), r.Intn(n)
		if u == v {
			continue
		}
		es = append(es, core.Edge[string]{From: vs[u], To: vs[v], Weight: int64(1 + r.Intn(100))})
	}
	g, _ := core.NewUndirectedGraph(vs, es)

	return g
}

func BenchmarkKruskal(b *testing.B) {
	g := buildMediumGraph(500, 1500) // pre-build graph once
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = kruskal.Kruskal(g)
	}
}

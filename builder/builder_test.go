// SPDX-License-Identifier: MIT
// File: builder_test.go
// Package builder_test contains functional tests for every Constructor,
// verifying vertex/edge counts, degree sequences and composition.
package builder_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvcolor/builder"
	"github.com/katalvlaran/lvcolor/core"
)

// degrees returns the degree of every vertex in ascending ID order.
func degrees(g *core.Graph) []int {
	out := make([]int, 0, g.VertexCount())
	for _, v := range g.Vertices() {
		out = append(out, v.Degree())
	}

	return out
}

// hasEdge reports whether {u,v} was recorded, in either orientation.
func hasEdge(g *core.Graph, u, v int) bool {
	for _, e := range g.Edges() {
		if (e.U == u && e.V == v) || (e.U == v && e.V == u) {
			return true
		}
	}

	return false
}

func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		ctor        builder.Constructor
		wantV       int
		wantE       int
		sampleCheck func(t *testing.T, g *core.Graph)
	}{
		{
			name: "Empty(3)", ctor: builder.Empty(3), wantV: 3, wantE: 0,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				require.Equal(t, []int{0, 0, 0}, degrees(g))
			},
		},
		{
			name: "Path(4)", ctor: builder.Path(4), wantV: 4, wantE: 3,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				require.Equal(t, []int{1, 2, 2, 1}, degrees(g))
				for i := 1; i < 4; i++ {
					require.True(t, hasEdge(g, i, i+1))
				}
			},
		},
		{
			name: "Cycle(5)", ctor: builder.Cycle(5), wantV: 5, wantE: 5,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				require.Equal(t, []int{2, 2, 2, 2, 2}, degrees(g))
				require.True(t, hasEdge(g, 5, 1), "cycle must close")
			},
		},
		{
			name: "Star(4)", ctor: builder.Star(4), wantV: 4, wantE: 3,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				require.Equal(t, []int{3, 1, 1, 1}, degrees(g))
			},
		},
		{
			name: "Wheel(5)", ctor: builder.Wheel(5), wantV: 5, wantE: 8,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				require.Equal(t, []int{3, 3, 3, 3, 4}, degrees(g))
			},
		},
		{
			name: "Complete(4)", ctor: builder.Complete(4), wantV: 4, wantE: 6,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				require.Equal(t, []int{3, 3, 3, 3}, degrees(g))
			},
		},
		{
			name: "CompleteBipartite(2,3)", ctor: builder.CompleteBipartite(2, 3), wantV: 5, wantE: 6,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				require.Equal(t, []int{3, 3, 2, 2, 2}, degrees(g))
				require.False(t, hasEdge(g, 1, 2), "no edges inside a part")
				require.False(t, hasEdge(g, 3, 4), "no edges inside a part")
			},
		},
		{
			name: "Grid(2,3)", ctor: builder.Grid(2, 3), wantV: 6, wantE: 7,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				require.Equal(t, []int{2, 3, 2, 2, 3, 2}, degrees(g))
				require.True(t, hasEdge(g, 1, 4))
			},
		},
		{
			name: "Petersen", ctor: builder.Petersen(), wantV: 10, wantE: 15,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				for _, d := range degrees(g) {
					require.Equal(t, 3, d)
				}
				require.True(t, hasEdge(g, 6, 8), "pentagram step is two")
				require.False(t, hasEdge(g, 6, 7))
			},
		},
		{
			name: "RandomSparse(6,0)", ctor: builder.RandomSparse(6, 0), wantV: 6, wantE: 0,
		},
		{
			name: "RandomSparse(5,1)", ctor: builder.RandomSparse(5, 1), wantV: 5, wantE: 10,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(nil, tc.ctor)
			require.NoError(t, err)
			require.Equal(t, tc.wantV, g.VertexCount())
			require.Equal(t, tc.wantE, g.EdgeCount())
			if tc.sampleCheck != nil {
				tc.sampleCheck(t, g)
			}
		})
	}
}

func TestBuildGraph_DisjointUnion(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Complete(3), builder.Star(3))
	require.NoError(t, err)
	require.Equal(t, 6, g.VertexCount())
	require.Equal(t, 5, g.EdgeCount())
	require.Equal(t, []int{2, 2, 2, 2, 1, 1}, degrees(g))
	require.True(t, hasEdge(g, 4, 5), "second block starts after the first")
	require.False(t, hasEdge(g, 3, 4), "blocks stay disconnected")
}

func TestBuildGraph_NoConstructors(t *testing.T) {
	g, err := builder.BuildGraph(nil)
	require.NoError(t, err)
	require.Zero(t, g.VertexCount())
}

func TestBuilders_Errors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		ctor builder.Constructor
		want error
	}{
		{"Empty(-1)", builder.Empty(-1), builder.ErrTooFewVertices},
		{"Path(1)", builder.Path(1), builder.ErrTooFewVertices},
		{"Cycle(2)", builder.Cycle(2), builder.ErrTooFewVertices},
		{"Star(1)", builder.Star(1), builder.ErrTooFewVertices},
		{"Wheel(3)", builder.Wheel(3), builder.ErrTooFewVertices},
		{"Complete(0)", builder.Complete(0), builder.ErrTooFewVertices},
		{"CompleteBipartite(0,2)", builder.CompleteBipartite(0, 2), builder.ErrTooFewVertices},
		{"Grid(2,0)", builder.Grid(2, 0), builder.ErrTooFewVertices},
		{"RandomSparse(0,0.5)", builder.RandomSparse(0, 0.5), builder.ErrTooFewVertices},
		{"RandomSparse(3,1.5)", builder.RandomSparse(3, 1.5), builder.ErrInvalidProbability},
		{"RandomSparse(3,-0.1)", builder.RandomSparse(3, -0.1), builder.ErrInvalidProbability},
		{"RandomSparse(3,0.5) no rng", builder.RandomSparse(3, 0.5), builder.ErrNeedRandSource},
		{"nil constructor", nil, builder.ErrConstructFailed},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(nil, tc.ctor)
			require.ErrorIs(t, err, tc.want)
			require.Nil(t, g)
		})
	}
}

func TestRandomSparse_SeedDeterminism(t *testing.T) {
	build := func(seed int64) []core.Edge {
		g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(seed)}, builder.RandomSparse(30, 0.2))
		require.NoError(t, err)

		return g.Edges()
	}
	require.Equal(t, build(7), build(7), "same seed must reproduce the edge list")
}

func TestWithRand_NilPanics(t *testing.T) {
	require.Panics(t, func() { builder.WithRand(nil) })
}

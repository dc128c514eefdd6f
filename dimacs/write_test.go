// SPDX-License-Identifier: MIT

package dimacs_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvcolor/builder"
	"github.com/katalvlaran/lvcolor/dimacs"
)

func TestWrite_RoundTrip(t *testing.T) {
	g, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithSeed(3)},
		builder.Petersen(), builder.RandomSparse(25, 0.3), builder.Empty(2),
	)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, dimacs.Write(&buf, g, "round trip", "two\nlines"))

	inst, err := dimacs.Parse(&buf, "rt.col")
	require.NoError(t, err)
	require.Equal(t, g.VertexCount(), inst.Graph.VertexCount())
	require.Equal(t, g.EdgeCount(), inst.DeclaredEdges)
	require.Equal(t, g.Edges(), inst.Graph.Edges())
	for id := 1; id <= g.VertexCount(); id++ {
		want, _ := g.Neighbors(id)
		got, _ := inst.Graph.Neighbors(id)
		require.Equal(t, want, got, "vertex %d", id)
	}
}

// failingWriter rejects every write.
type failingWriter struct{}

var errSink = errors.New("sink closed")

func (failingWriter) Write([]byte) (int, error) { return 0, errSink }

func TestWrite_Errors(t *testing.T) {
	require.Error(t, dimacs.Write(&bytes.Buffer{}, nil))

	g, err := builder.BuildGraph(nil, builder.Complete(3))
	require.NoError(t, err)
	err = dimacs.Write(failingWriter{}, g)
	require.ErrorIs(t, err, errSink)
}

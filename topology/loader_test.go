package topology_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eonsim/simulator/topology"
)

func TestLoadMatrix_Triangle(t *testing.T) {
	// 3 nodes, all pairs linked at 500km -> 100 units at DistanceUnit=5.
	const matrix = "3\n" +
		"0 500 500\n" +
		"500 0 500\n" +
		"500 500 0\n"

	g, err := topology.LoadMatrix(strings.NewReader(matrix))
	require.NoError(t, err)
	require.Equal(t, 3, g.NumNodes())
	require.Equal(t, 6, g.NumLinks())

	l, ok := g.Edge(0, 1)
	require.True(t, ok)
	require.Equal(t, 100, g.LinkLength(l))
	require.Equal(t, topology.NodeID(1), g.LinkDest(l))
	require.Equal(t, topology.NodeID(0), g.LinkSource(l))
}

func TestLoadMatrix_AsymmetricOneWay(t *testing.T) {
	// only node 0 -> node 1 is populated; the reverse must not exist.
	const matrix = "2\n0 10\n0 0\n"
	g, err := topology.LoadMatrix(strings.NewReader(matrix))
	require.NoError(t, err)
	require.Equal(t, 1, g.NumLinks())
	_, ok := g.Edge(1, 0)
	require.False(t, ok)
	_, ok = g.Edge(0, 1)
	require.True(t, ok)
}

func TestLoadMatrix_HeaderLines(t *testing.T) {
	// the optional link-count token triggers N discarded header lines.
	const matrix = "2 1\n" +
		"nodeA\n" +
		"nodeB\n" +
		"0 10\n" +
		"0 0\n"
	g, err := topology.LoadMatrix(strings.NewReader(matrix))
	require.NoError(t, err)
	require.Equal(t, 1, g.NumLinks())
}

func TestLoadMatrix_TooFewNodes(t *testing.T) {
	_, err := topology.LoadMatrix(strings.NewReader("1\n0\n"))
	require.ErrorIs(t, err, topology.ErrTooFewNodes)
}

func TestLoadMatrix_Truncated(t *testing.T) {
	_, err := topology.LoadMatrix(strings.NewReader("3\n0 1\n"))
	require.ErrorIs(t, err, topology.ErrMalformedMatrix)
}

func TestGraph_OutLinkRangeIsContiguous(t *testing.T) {
	const matrix = "3\n0 5 5\n5 0 0\n5 0 0\n"
	g, err := topology.LoadMatrix(strings.NewReader(matrix))
	require.NoError(t, err)
	require.Equal(t, 2, g.OutDegree(0))
	lo, hi := g.OutLinkRange(0)
	require.Equal(t, topology.LinkID(2), hi-lo)
}

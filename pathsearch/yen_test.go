package pathsearch_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eonsim/simulator/pathsearch"
	"github.com/eonsim/simulator/topology"
)

// TestYen_DiamondTieBreak reproduces spec scenario 5: a 4-node diamond
// A=0, B=1, C=2, D=3 with A-B-D and A-C-D equal in length. Since B < C
// by node index, A-B-D must be returned before A-C-D.
func TestYen_DiamondTieBreak(t *testing.T) {
	const matrix = "4\n" +
		"0 10 10 0\n" +
		"0 0 0 10\n" +
		"0 0 0 10\n" +
		"0 0 0 0\n"
	g := mustLoad(t, matrix)
	sp := pathsearch.NewScratchpad(g)
	y := pathsearch.NewYenSearch(g, sp)
	y.ResetEndpoints(0, 3)

	paths := y.Paths(2)
	require.Len(t, paths, 2)
	require.Equal(t, 4, pathsearch.PathLength(sp, paths[0]))
	require.Equal(t, 4, pathsearch.PathLength(sp, paths[1]))

	require.Equal(t, topology.NodeID(1), g.LinkDest(paths[0][0].Index))
	require.Equal(t, topology.NodeID(2), g.LinkDest(paths[1][0].Index))
}

func TestYen_NonDecreasingAndDistinct(t *testing.T) {
	// a small network with two alternative routes, via node 1 and via node 2.
	const matrix = "5\n" +
		"0 1 1 0 0\n" +
		"0 0 0 1 0\n" +
		"0 0 0 1 0\n" +
		"0 0 0 0 1\n" +
		"0 0 0 0 0\n"
	g := mustLoad(t, matrix)
	sp := pathsearch.NewScratchpad(g)
	y := pathsearch.NewYenSearch(g, sp)
	y.ResetEndpoints(0, 4)

	paths := y.Paths(3)
	require.Len(t, paths, 2) // only two loopless routes exist: via 1 or via 2

	prevLen := -1
	seen := map[string]bool{}
	for _, p := range paths {
		l := pathsearch.PathLength(sp, p)
		require.GreaterOrEqual(t, l, prevLen)
		prevLen = l

		key := ""
		visited := map[topology.NodeID]bool{}
		for _, e := range p {
			require.False(t, visited[e.Source], "path revisits a node")
			visited[e.Source] = true
			key += strconv.Itoa(int(e.Source))
		}
		require.False(t, seen[key], "duplicate path returned")
		seen[key] = true
	}
}

func TestYen_FewerThanKWhenExhausted(t *testing.T) {
	const matrix = "2\n0 1\n0 0\n"
	g := mustLoad(t, matrix)
	sp := pathsearch.NewScratchpad(g)
	y := pathsearch.NewYenSearch(g, sp)
	y.ResetEndpoints(0, 1)

	paths := y.Paths(5)
	require.Len(t, paths, 1)
}

func TestYen_ResetDiscardsProgress(t *testing.T) {
	const matrix = "3\n0 1 1\n0 0 1\n0 0 0\n"
	g := mustLoad(t, matrix)
	sp := pathsearch.NewScratchpad(g)
	y := pathsearch.NewYenSearch(g, sp)
	y.ResetEndpoints(0, 2)
	first := y.Paths(2)
	require.NotEmpty(t, first)

	y.ResetEndpoints(0, 2)
	second := y.Paths(1)
	require.Len(t, second, 1)
	require.Equal(t, pathsearch.PathLength(sp, first[0]), pathsearch.PathLength(sp, second[0]))
}

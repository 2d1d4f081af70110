package simulation_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	_ "github.com/eonsim/simulator/provisioning/heuristics"
	"github.com/eonsim/simulator/simulation"
	"github.com/eonsim/simulator/topology"
)

func mustLoad(t *testing.T, matrix string) *topology.Graph {
	t.Helper()
	g, err := topology.LoadMatrix(strings.NewReader(matrix))
	require.NoError(t, err)
	return g
}

// TestTrivialTwoNodeGraph_AlwaysBlocksOnSecNoPath reproduces spec's
// concrete scenario 1: a single bidirectional link has no link-disjoint
// backup route, so every FF request blocks on BlockSecNoPath.
func TestTrivialTwoNodeGraph_AlwaysBlocksOnSecNoPath(t *testing.T) {
	const matrix = "2\n" +
		"0 100\n" +
		"100 0\n"
	g := mustLoad(t, matrix)

	job := simulation.Job{
		Iters: 1, Discard: 0, Load: 150, BWMin: 1, BWMax: 1, Seed: 1,
		Algorithm: "ff", Params: nil,
	}
	result := simulation.Run(g, job)
	require.Equal(t, int64(0), result.Counter.NProvisioned())
	require.Equal(t, int64(1), result.Counter.NBlocked())
}

func TestUnknownAlgorithm_ReturnsEmptyCounter(t *testing.T) {
	const matrix = "2\n0 10\n0 0\n"
	g := mustLoad(t, matrix)
	job := simulation.Job{Iters: 5, Algorithm: "does-not-exist"}
	result := simulation.Run(g, job)
	require.Equal(t, int64(0), result.Counter.NProvisioned())
	require.Equal(t, int64(0), result.Counter.NBlocked())
}

func TestDiscardBudget_ExactlyConsumesLeadingEvents(t *testing.T) {
	const matrix = "4\n" +
		"0 10 10 0\n" +
		"0 0 0 10\n" +
		"0 0 0 10\n" +
		"0 0 0 0\n"
	g := mustLoad(t, matrix)
	job := simulation.Job{
		Iters: 1000, Discard: 500, Load: 150, BWMin: 1, BWMax: 5, Seed: 42,
		Algorithm: "shortestfflf", Params: nil,
	}
	result := simulation.Run(g, job)
	require.Equal(t, int64(500), result.Counter.NProvisioned()+result.Counter.NBlocked())
}

func TestZeroIterations_ReturnsEmptyResult(t *testing.T) {
	const matrix = "2\n0 10\n0 0\n"
	g := mustLoad(t, matrix)
	job := simulation.Job{Iters: 0, Algorithm: "ff"}
	result := simulation.Run(g, job)
	require.Equal(t, int64(0), result.TotalTime)
}

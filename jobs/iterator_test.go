package jobs_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eonsim/simulator/jobs"
)

func TestIterator_TotalMatchesOdometerProduct(t *testing.T) {
	// load cycles 150:10:210 -> 7 values, two algorithms -> 14 jobs.
	it, err := jobs.NewIterator("", "ff,mfsb")
	require.NoError(t, err)
	require.Equal(t, 14, it.Total())

	count := 0
	for {
		_, ok := it.Next()
		if !ok {
			break
		}
		count++
	}
	require.Equal(t, 14, count)
}

func TestIterator_AlgorithmsEmitInReverseParseOrder(t *testing.T) {
	it, err := jobs.NewIterator("load=150", "ff,mfsb")
	require.NoError(t, err)
	first, ok := it.Next()
	require.True(t, ok)
	require.Equal(t, "mfsb", first.Algorithm)
}

func TestIterator_FirstParameterCyclesFastest(t *testing.T) {
	it, err := jobs.NewIterator("", "ff(a=1:1:2,b=10:10:20)")
	require.NoError(t, err)
	j0, _ := it.Next()
	j1, _ := it.Next()
	j2, _ := it.Next()
	require.Equal(t, 1.0, j0.Params["a"])
	require.Equal(t, 10.0, j0.Params["b"])
	require.Equal(t, 2.0, j1.Params["a"])
	require.Equal(t, 10.0, j1.Params["b"])
	require.Equal(t, 1.0, j2.Params["a"])
	require.Equal(t, 20.0, j2.Params["b"])
}

func TestIterator_OwnParamsOverrideGlobals(t *testing.T) {
	it, err := jobs.NewIterator("k=4", "ff(k=8)")
	require.NoError(t, err)
	j, ok := it.Next()
	require.True(t, ok)
	require.Equal(t, 8.0, j.Params["k"])
}

func TestIterator_KnownFieldsAreExtractedNotLeftInParams(t *testing.T) {
	it, err := jobs.NewIterator("iters=5,discard=1,bwmin=1,bwmax=1,load=100", "ff")
	require.NoError(t, err)
	j, ok := it.Next()
	require.True(t, ok)
	require.Equal(t, 5, j.Iters)
	require.Equal(t, 1, j.Discard)
	require.Equal(t, 100.0, j.Load)
	_, leaked := j.Params["iters"]
	require.False(t, leaked)
}

func TestIterator_SkipBeyondTotalIsAnError(t *testing.T) {
	it, err := jobs.NewIterator("", "ff")
	require.NoError(t, err)
	require.ErrorIs(t, it.Skip(it.Total()+1), jobs.ErrSkipBeyondTotal)
}

func TestIterator_SkipAdvancesPastDiscardedJobs(t *testing.T) {
	it, err := jobs.NewIterator("", "ff(a=1:1:3)")
	require.NoError(t, err)
	require.NoError(t, it.Skip(2))
	j, ok := it.Next()
	require.True(t, ok)
	require.Equal(t, 3.0, j.Params["a"])
}

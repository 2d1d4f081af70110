package jobs_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eonsim/simulator/jobs"
)

func TestPool_EmitsResultsInJobIndexOrder(t *testing.T) {
	it, err := jobs.NewIterator("", "ff(a=1:1:20)")
	require.NoError(t, err)
	total := it.Total()

	pool := jobs.NewPool(func(j jobs.Job) any {
		// no real work: with 4 workers the completion order is up to the
		// scheduler, and the emit order is checked against job index below.
		return j.Index
	})

	var emitted []int
	pool.Run(it, 4, func(j jobs.Job, result any) {
		emitted = append(emitted, result.(int))
	})

	require.Len(t, emitted, total)
	for i, v := range emitted {
		require.Equal(t, i, v)
	}
}

func TestPool_SingleWorkerStillCompletes(t *testing.T) {
	it, err := jobs.NewIterator("", "ff(a=1:1:5)")
	require.NoError(t, err)

	pool := jobs.NewPool(func(j jobs.Job) any { return j.Index })
	var count int
	pool.Run(it, 1, func(j jobs.Job, result any) { count++ })
	require.Equal(t, it.Total(), count)
}

package simulation

import (
	"github.com/eonsim/simulator/netstate"
	"github.com/eonsim/simulator/pathsearch"
	"github.com/eonsim/simulator/provisioning"
	"github.com/eonsim/simulator/stats"
	"github.com/eonsim/simulator/topology"
)

// Result is a completed job's output: the accumulated Counter and the
// total simulated time it spans, needed to normalize time-weighted
// metrics when rendering a row.
type Result struct {
	Counter   *stats.Counter
	TotalTime int64
}

// Run executes job against g, giving each worker call its own
// NetworkState, Scratchpad, active-connection table, RNG, and heuristic
// instance as spec requires. If job's algorithm name is not registered,
// Run returns an empty Counter rather than an error: unknown-algorithm
// is a configuration condition the job driver tolerates per job.
func Run(g *topology.Graph, job Job) Result {
	counter := stats.NewCounter(job.Discard)
	if job.Iters <= 0 {
		return Result{Counter: counter, TotalTime: 0}
	}

	scheme, ok := provisioning.Create(job.Algorithm, job.Params)
	if !ok {
		return Result{Counter: counter, TotalTime: 0}
	}

	state := netstate.New(g)
	sp := pathsearch.NewScratchpad(g)
	active := newActiveSet()
	rng := newRNG(job.Seed)

	n := g.NumNodes()
	holdingMean := AvgInterArrival * job.Load

	var currentTime int64
	nextRequestTime := exponential(rng, AvgInterArrival)

	for i := 0; i < job.Iters; i++ {
		for !active.empty() && active.peekExpiry() <= nextRequestTime {
			currentTime = active.peekExpiry()
			counter.CountNetworkState(state, currentTime)
			p := active.popEarliest()
			state.Terminate(p)
			counter.CountTermination(p)
		}

		currentTime = nextRequestTime
		counter.CountNetworkState(state, currentTime)

		src, dst := uniformSourceDest(rng, n)
		bw := uniformBandwidth(rng, job.BWMin, job.BWMax)
		req := provisioning.Request{Source: topology.NodeID(src), Dest: topology.NodeID(dst), Bandwidth: bw}

		result := scheme.Run(g, state, sp, req)
		counter.CountProvisioning(&result)
		if result.State == netstate.Success {
			state.Provision(&result)
			holding := exponential(rng, holdingMean)
			active.insert(currentTime+holding, &result)
		}

		nextRequestTime = currentTime + exponential(rng, AvgInterArrival)
	}

	return Result{Counter: counter, TotalTime: currentTime}
}

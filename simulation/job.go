package simulation

import "github.com/eonsim/simulator/provisioning"

// AvgInterArrival is the mean inter-arrival time in simulated time
// units, shared by every job regardless of load; Load scales the mean
// holding time against it.
const AvgInterArrival = 1000.0

// Job bundles everything one simulation run needs: how long to run, how
// many leading events to discard as warm-up, the traffic intensity, the
// bandwidth range requests are drawn from, and which heuristic (already
// configured with its own parameters) to drive requests through.
type Job struct {
	Iters   int
	Discard int
	Load    float64
	BWMin   int
	BWMax   int
	Seed    int64

	Algorithm string
	Params    provisioning.Params
}

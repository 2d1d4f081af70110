// Package simulation runs a single job: it drives a Poisson arrival
// process against a provisioning.Scheme and a netstate.State, recording
// outcomes and time-weighted performance snapshots into a stats.Counter.
// Each Simulation owns its NetworkState, Scratchpad, active-connection
// table, and RNG exclusively; nothing here is safe to share across
// goroutines, mirroring the per-worker isolation the job pool relies on.
package simulation

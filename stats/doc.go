// Package stats aggregates per-job simulation output: connection and
// bandwidth counters split by outcome, a time-weighted integral of
// netstate.PerfMetrics, and warm-up discard accounting. Counter values
// are produced per worker and serialized by the caller in job order.
package stats

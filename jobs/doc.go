// Package jobs parses the --opts/--algs parameter-range grammar into a
// Cartesian product of concrete jobs, and drives a bounded rendezvous
// worker pool that runs them while preserving job-index output order.
package jobs

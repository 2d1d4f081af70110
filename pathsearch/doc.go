// Package pathsearch implements the shortest-path layer used by the
// provisioning heuristics: a reusable per-worker Scratchpad, single-source
// Dijkstra over it, and Yen's algorithm for k loopless shortest paths.
//
// Every exported entry point is specialized for the simulator's inner
// loop rather than general-purpose use: Dijkstra and Yen both operate on
// a caller-owned Scratchpad to avoid allocating on every request, and
// distances are plain integers (quantized link lengths), never floats,
// so that equal-length paths compare exactly and Yen's tie-break is
// reproducible (spec.md §9, "Numerical semantics").
package pathsearch

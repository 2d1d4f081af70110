// Package topology holds the immutable, process-wide directed weighted
// network graph that every simulation worker shares by reference.
//
// The graph is loaded once from a distance matrix at startup and never
// mutated afterwards, so it requires no locking: concurrent readers from
// any number of worker goroutines are always safe.
//
// Internally the graph is stored in compressed-sparse-row form (edges
// grouped and sorted by source node) so that OutLinkRange can hand back a
// contiguous index range instead of walking a map, which matters because this
// is the innermost loop of Dijkstra/Yen (see package pathsearch).
package topology

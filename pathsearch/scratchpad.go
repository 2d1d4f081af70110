package pathsearch

import (
	"math"

	"github.com/eonsim/simulator/topology"
)

// Inf is the sentinel weight used to mask an edge out of a search: any
// edge carrying this weight is treated as absent. It is deliberately far
// below math.MaxInt so that summing a handful of masked edges along a
// path can never silently wrap around.
const Inf = math.MaxInt32 / 2

// Scratchpad owns the mutable arrays Dijkstra and Yen reuse across
// searches to eliminate per-query allocation in the hot loop (spec.md
// C2). It is borrowed exclusively by one in-flight search at a time;
// concurrent use by two searches on the same Scratchpad is forbidden,
// exactly as with the original simulator's DijkstraData.
type Scratchpad struct {
	g *topology.Graph

	// weights holds the graph's native lengths, possibly overridden by a
	// heuristic pruning a primary path's links before a backup search.
	// It is never touched by Dijkstra/Yen themselves except via
	// ResetWeights.
	weights []int
	// tmpWeights is working storage for Yen's spur masking; it always
	// starts each spur iteration as a copy of weights.
	tmpWeights []int

	dist  []int
	pred  []topology.LinkID // pred[v] is the link used to reach v, or -1
	color []uint8
}

const (
	colorUnvisited uint8 = iota
	colorVisited
)

// NewScratchpad allocates a Scratchpad sized for g and initializes its
// weights to the graph's native link lengths.
func NewScratchpad(g *topology.Graph) *Scratchpad {
	sp := &Scratchpad{
		g:          g,
		weights:    make([]int, g.NumLinks()),
		tmpWeights: make([]int, g.NumLinks()),
		dist:       make([]int, g.NumNodes()),
		pred:       make([]topology.LinkID, g.NumNodes()),
		color:      make([]uint8, g.NumNodes()),
	}
	sp.ResetWeights()
	return sp
}

// ResetWeights restores weights and tmpWeights to the topology's native
// link lengths, undoing any pruning a heuristic performed (e.g. masking
// the primary path before a backup search).
func (sp *Scratchpad) ResetWeights() {
	for l := 0; l < sp.g.NumLinks(); l++ {
		length := sp.g.LinkLength(topology.LinkID(l))
		sp.weights[l] = length
		sp.tmpWeights[l] = length
	}
}

// Weight returns the current (possibly pruned) weight of link l.
func (sp *Scratchpad) Weight(l topology.LinkID) int {
	return sp.weights[l]
}

// SetWeight overrides the current weight of link l, e.g. to Inf while
// computing a backup path disjoint from the primary.
func (sp *Scratchpad) SetWeight(l topology.LinkID, w int) {
	sp.weights[l] = w
}

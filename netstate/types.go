package netstate

import (
	"github.com/eonsim/simulator/modulation"
	"github.com/eonsim/simulator/topology"
)

// BlockReason enumerates why a connection request could not be fully
// provisioned, terminated by Success for a request that was.
type BlockReason int

const (
	BlockPriNoPath BlockReason = iota
	BlockPriNoSpec
	BlockSecNoPath
	BlockSecNoSpec
	Success
)

func (r BlockReason) String() string {
	switch r {
	case BlockPriNoPath:
		return "no primary path"
	case BlockPriNoSpec:
		return "no primary spectrum"
	case BlockSecNoPath:
		return "no backup path"
	case BlockSecNoSpec:
		return "no backup spectrum"
	case Success:
		return "success"
	default:
		return "unknown"
	}
}

// Request is an incoming connection demand: source, destination, and
// requested bandwidth (already in the simulator's bandwidth units).
type Request struct {
	Source, Dest topology.NodeID
	Bandwidth    int
}

// Provisioning is the outcome of running a heuristic on a Request: the
// chosen primary and backup paths and their spectrum slot assignments,
// or a BlockReason if no such assignment could be found. This type is
// the vocabulary shared by netstate, the provisioning heuristics, and
// the statistics aggregator, the same way SimulationMsgs.h is shared by
// NetworkState and StatCounter in the original simulator; provisioning
// heuristics live in their own package to keep netstate free of any
// dependency on them, so this type is defined here and re-exported by
// package provisioning for callers that only ever see a Scheme.
type Provisioning struct {
	PriPath      []topology.Link
	PriSpecBegin int
	PriSpecEnd   int
	PriMod       modulation.Format

	BkpPath      []topology.Link
	BkpSpecBegin int
	BkpSpecEnd   int
	BkpMod       modulation.Format

	Bandwidth int
	State     BlockReason
}

// Feasible reports whether p represents a link-disjoint, fully-assigned
// provisioning (spec.md §4.1's success predicate), without consulting
// any State. It does not check for spectrum conflicts with other
// connections; that is what Provision's assertions are for.
func (p *Provisioning) Feasible() bool {
	if p.State != Success {
		return false
	}
	if p.PriSpecBegin >= p.PriSpecEnd || p.BkpSpecBegin >= p.BkpSpecEnd {
		return false
	}
	if p.PriSpecEnd > NumSlots || p.BkpSpecEnd > NumSlots {
		return false
	}
	if p.PriMod == modulation.None || p.BkpMod == modulation.None {
		return false
	}
	for _, pe := range p.PriPath {
		for _, be := range p.BkpPath {
			if pe.Index == be.Index {
				return false
			}
		}
	}
	return true
}

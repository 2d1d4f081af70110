package heuristics

import (
	"github.com/eonsim/simulator/modulation"
	"github.com/eonsim/simulator/netstate"
	"github.com/eonsim/simulator/pathsearch"
	"github.com/eonsim/simulator/provisioning"
	"github.com/eonsim/simulator/topology"
)

func init() {
	provisioning.Register("shortestfflf", NewShortestFFLF)
}

// shortestFFLF is the simplest reproducible scheme: a single Dijkstra
// primary placed by first-fit, then a single Dijkstra backup (with the
// primary's links masked out) placed by last-fit.
type shortestFFLF struct{}

// NewShortestFFLF builds a ShortestFFLF scheme; it takes no parameters.
func NewShortestFFLF(provisioning.Params) provisioning.Scheme {
	return &shortestFFLF{}
}

func (shortestFFLF) Run(g *topology.Graph, s *netstate.State, sp *pathsearch.Scratchpad, r provisioning.Request) provisioning.Provisioning {
	defer sp.ResetWeights()

	priPath := pathsearch.Dijkstra(g, sp, r.Source, r.Dest)
	if priPath == nil {
		return blockedPri(r, netstate.BlockPriNoPath)
	}
	priMod := modulation.Choose(pathLength(sp, priPath))
	if priMod == modulation.None {
		return blockedPri(r, netstate.BlockPriNoPath)
	}
	priWidth := modulation.SlotsNeeded(r.Bandwidth, priMod)
	priAvail := s.PriAvailability(priPath)
	priStart := priAvail.FirstFit(priWidth)
	if priStart < 0 {
		return blockedPri(r, netstate.BlockPriNoSpec)
	}

	restore := maskPath(sp, priPath)
	bkpPath := pathsearch.Dijkstra(g, sp, r.Source, r.Dest)
	restore()
	if bkpPath == nil {
		return blockedBkp(r, netstate.BlockSecNoPath)
	}
	bkpMod := modulation.Choose(pathLength(sp, bkpPath))
	if bkpMod == modulation.None {
		return blockedBkp(r, netstate.BlockSecNoPath)
	}
	bkpWidth := modulation.SlotsNeeded(r.Bandwidth, bkpMod)
	bkpAvail := s.BkpAvailabilityPath(priPath, bkpPath)
	bkpStart := bkpAvail.LastFit(bkpWidth)
	if bkpStart < 0 {
		return blockedBkp(r, netstate.BlockSecNoSpec)
	}

	return provisioning.Provisioning{
		PriPath: priPath, PriSpecBegin: priStart, PriSpecEnd: priStart + priWidth, PriMod: priMod,
		BkpPath: bkpPath, BkpSpecBegin: bkpStart, BkpSpecEnd: bkpStart + bkpWidth, BkpMod: bkpMod,
		Bandwidth: r.Bandwidth, State: netstate.Success,
	}
}

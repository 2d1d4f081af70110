package heuristics

import (
	"github.com/eonsim/simulator/modulation"
	"github.com/eonsim/simulator/netstate"
	"github.com/eonsim/simulator/pathsearch"
	"github.com/eonsim/simulator/provisioning"
	"github.com/eonsim/simulator/topology"
)

func init() {
	provisioning.Register("ff", NewFF)
}

// ff is the Shao2012-style first-fit heuristic: walk Yen's primary
// candidates in non-decreasing length order and take the first on which
// first-fit succeeds, then do the same for the backup over the Yen
// search re-run with the chosen primary's links masked out.
type ff struct {
	kPri, kBkp int
}

// NewFF builds an FF scheme; accepts "k" (sets both) and/or "k_pri"/
// "k_bkp" parameters, defaulting to 4.
func NewFF(params provisioning.Params) provisioning.Scheme {
	kPri, kBkp := kPriKBkp(params)
	return &ff{kPri: kPri, kBkp: kBkp}
}

func (h *ff) Run(g *topology.Graph, s *netstate.State, sp *pathsearch.Scratchpad, r provisioning.Request) provisioning.Provisioning {
	defer sp.ResetWeights()

	y := pathsearch.NewYenSearch(g, sp)
	y.ResetEndpoints(r.Source, r.Dest)
	priPaths := y.Paths(h.kPri)
	if len(priPaths) == 0 {
		return blockedPri(r, netstate.BlockPriNoPath)
	}

	var priPath []topology.Link
	var priMod modulation.Format
	priBegin, priWidth := -1, 0
	for _, p := range priPaths {
		mod := modulation.Choose(pathLength(sp, p))
		if mod == modulation.None {
			// non-decreasing length: every later candidate is too long too
			return blockedPri(r, netstate.BlockPriNoPath)
		}
		width := modulation.SlotsNeeded(r.Bandwidth, mod)
		start := s.PriAvailability(p).FirstFit(width)
		if start >= 0 {
			priPath, priMod, priBegin, priWidth = p, mod, start, width
			break
		}
	}
	if priPath == nil {
		return blockedPri(r, netstate.BlockPriNoSpec)
	}

	y.Reset()
	restore := maskPath(sp, priPath)
	bkpPaths := y.Paths(h.kBkp)
	restore()
	if len(bkpPaths) == 0 {
		return blockedBkp(r, netstate.BlockSecNoPath)
	}

	for _, p := range bkpPaths {
		mod := modulation.Choose(pathLength(sp, p))
		if mod == modulation.None {
			return blockedBkp(r, netstate.BlockSecNoPath)
		}
		width := modulation.SlotsNeeded(r.Bandwidth, mod)
		start := s.BkpAvailabilityPath(priPath, p).FirstFit(width)
		if start >= 0 {
			return provisioning.Provisioning{
				PriPath: priPath, PriSpecBegin: priBegin, PriSpecEnd: priBegin + priWidth, PriMod: priMod,
				BkpPath: p, BkpSpecBegin: start, BkpSpecEnd: start + width, BkpMod: mod,
				Bandwidth: r.Bandwidth, State: netstate.Success,
			}
		}
	}
	return blockedBkp(r, netstate.BlockSecNoSpec)
}

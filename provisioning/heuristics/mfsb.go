package heuristics

import (
	"github.com/eonsim/simulator/modulation"
	"github.com/eonsim/simulator/netstate"
	"github.com/eonsim/simulator/pathsearch"
	"github.com/eonsim/simulator/provisioning"
	"github.com/eonsim/simulator/topology"
)

func init() {
	provisioning.Register("mfsb", NewMFSB)
}

// mfsb is the Chen2013-style minimum-free-spectrum-blocks heuristic:
// primary selection is identical to FF, but the backup window is chosen
// to minimize the count of free blocks (slots still free on a link of
// the path) it would occupy, rather than simply taking the first fit.
type mfsb struct {
	kPri, kBkp int
}

// NewMFSB builds an MFSB scheme; accepts the same k/k_pri/k_bkp
// parameters as FF.
func NewMFSB(params provisioning.Params) provisioning.Scheme {
	kPri, kBkp := kPriKBkp(params)
	return &mfsb{kPri: kPri, kBkp: kBkp}
}

func (h *mfsb) Run(g *topology.Graph, s *netstate.State, sp *pathsearch.Scratchpad, r provisioning.Request) provisioning.Provisioning {
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

	bestCost := -1
	var bkpPath []topology.Link
	var bkpMod modulation.Format
	bkpBegin, bkpWidth := -1, 0
	for _, p := range bkpPaths {
		mod := modulation.Choose(pathLength(sp, p))
		if mod == modulation.None {
			if bkpPath == nil {
				return blockedBkp(r, netstate.BlockSecNoPath)
			}
			break
		}
		width := modulation.SlotsNeeded(r.Bandwidth, mod)
		start, cost, found := bestFSBWindow(s, priPath, p, width)
		if !found {
			continue
		}
		if bestCost < 0 || cost < bestCost {
			bestCost = cost
			bkpPath, bkpMod, bkpBegin, bkpWidth = p, mod, start, width
		}
	}
	if bkpPath == nil {
		return blockedBkp(r, netstate.BlockSecNoSpec)
	}

	return provisioning.Provisioning{
		PriPath: priPath, PriSpecBegin: priBegin, PriSpecEnd: priBegin + priWidth, PriMod: priMod,
		BkpPath: bkpPath, BkpSpecBegin: bkpBegin, BkpSpecEnd: bkpBegin + bkpWidth, BkpMod: bkpMod,
		Bandwidth: r.Bandwidth, State: netstate.Success,
	}
}

// bestFSBWindow slides a width-wide window across the backup's
// availability range and returns the leftmost start with the lowest
// free-block count among every slot-feasible position, maintaining the
// running sum incrementally rather than recomputing it per position.
func bestFSBWindow(s *netstate.State, priPath, path []topology.Link, width int) (start, cost int, found bool) {
	if width <= 0 || width > netstate.NumSlots {
		return -1, 0, false
	}
	bm := s.BkpAvailabilityPath(priPath, path)
	running := s.CountFreeBlocksRange(path, 0, width)
	best, bestAt, any := 0, -1, false
	for i := 0; i+width <= netstate.NumSlots; i++ {
		if i > 0 {
			running += s.CountFreeBlocksAt(path, i+width-1) - s.CountFreeBlocksAt(path, i-1)
		}
		if bm.WindowFree(i, i+width) {
			if !any || running < best {
				best, bestAt, any = running, i, true
			}
		}
	}
	return bestAt, best, any
}

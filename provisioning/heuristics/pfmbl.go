package heuristics

import (
	"github.com/eonsim/simulator/modulation"
	"github.com/eonsim/simulator/netstate"
	"github.com/eonsim/simulator/pathsearch"
	"github.com/eonsim/simulator/provisioning"
	"github.com/eonsim/simulator/topology"
)

func init() {
	provisioning.Register("pfmbl", NewPFMBL)
}

// defaultC1 is Tarhan2013's default weight on distance-from-the-far-end
// in the backup placement cost; scaled the same way the original scales
// a caller-supplied c1 (x1000) before comparing it against the
// bandwidth-driven term.
const defaultC1 = 880.0

// pfmbl is the Tarhan2013-style placement-favoring-the-most-beneficial-
// location heuristic: primary selection is identical to FF, backup
// placement scans from the high end of the spectrum and minimizes a
// cost trading off distance from NumSlots against the requested width.
type pfmbl struct {
	kPri, kBkp int
	c1         float64
}

// NewPFMBL builds a PFMBL scheme; accepts k/k_pri/k_bkp like FF plus an
// optional "c1" weight (default 880, matching the original's unscaled
// constant; a caller-supplied value is scaled x1000 to match its units).
func NewPFMBL(params provisioning.Params) provisioning.Scheme {
	kPri, kBkp := kPriKBkp(params)
	c1 := defaultC1
	if v, ok := params["c1"]; ok {
		c1 = v * 1000
	}
	return &pfmbl{kPri: kPri, kBkp: kBkp, c1: c1}
}

func (h *pfmbl) Run(g *topology.Graph, s *netstate.State, sp *pathsearch.Scratchpad, r provisioning.Request) provisioning.Provisioning {
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

	bestCost := 0.0
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
		start, cost, found := h.bestBackwardWindow(s, priPath, p, width)
		if !found {
			continue
		}
		if bkpPath == nil || cost < bestCost {
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

// bestBackwardWindow scans backward from the top of the spectrum for
// the first slot-feasible window at each starting position and keeps
// the one with the lowest cost, trading off how far the window sits
// from the top of the band against the requested width.
func (h *pfmbl) bestBackwardWindow(s *netstate.State, priPath, path []topology.Link, width int) (start int, cost float64, found bool) {
	bm := s.BkpAvailabilityPath(priPath, path)
	best, bestAt, any := 0.0, -1, false
	for i := netstate.NumSlots - width; i >= 0; i-- {
		if !bm.WindowFree(i, i+width) {
			continue
		}
		var c float64
		if h.c1 != 0 {
			c = float64(netstate.NumSlots-i)*h.c1 + float64(width)*1000
		} else {
			c = float64(netstate.NumSlots - i)
		}
		if !any || c < best {
			best, bestAt, any = c, i, true
		}
	}
	return bestAt, best, any
}

package heuristics

import (
	"github.com/eonsim/simulator/modulation"
	"github.com/eonsim/simulator/netstate"
	"github.com/eonsim/simulator/pathsearch"
	"github.com/eonsim/simulator/provisioning"
	"github.com/eonsim/simulator/topology"
)

func init() {
	provisioning.Register("ksq", NewKsq)
}

const (
	defaultCCut  = 1.0
	defaultCAlgn = 1.0
	defaultCFSB  = 1.0
	defaultMode  = 3
)

// ksq is the hybrid-cost heuristic: it evaluates every (primary
// candidate, primary window) pair jointly with every (backup candidate,
// backup window) pair disjoint from it, scoring each side with a
// weighted mix of free-block count, cut count, and misalignment, and
// keeps the globally cheapest combination.
type ksq struct {
	kPri, kBkp        int
	cCut, cAlgn, cFSB float64
	mode              int
}

// NewKsq builds a Ksq scheme. Accepts k/k_pri/k_bkp like FF, plus
// c_cut/c_algn/c_fsb cost weights (default 1.0 each) and a mode in
// {1,2,3} (default 3): mode 1 ranks combinations by the primary-side
// cost alone, mode 2 by the backup-side cost alone, mode 3 by their sum.
func NewKsq(params provisioning.Params) provisioning.Scheme {
	kPri, kBkp := kPriKBkp(params)
	return &ksq{
		kPri: kPri, kBkp: kBkp,
		cCut:  params.Float("c_cut", defaultCCut),
		cAlgn: params.Float("c_algn", defaultCAlgn),
		cFSB:  params.Float("c_fsb", defaultCFSB),
		mode:  params.Int("mode", defaultMode),
	}
}

type ksqWindow struct {
	path  []topology.Link
	mod   modulation.Format
	width int
	begin int
	cost  float64
}

func (h *ksq) Run(g *topology.Graph, s *netstate.State, sp *pathsearch.Scratchpad, r provisioning.Request) provisioning.Provisioning {
	defer sp.ResetWeights()

	y := pathsearch.NewYenSearch(g, sp)
	y.ResetEndpoints(r.Source, r.Dest)
	priPaths := y.Paths(h.kPri)
	if len(priPaths) == 0 {
		return blockedPri(r, netstate.BlockPriNoPath)
	}

	var priCandidates []ksqWindow
	for _, p := range priPaths {
		mod := modulation.Choose(pathLength(sp, p))
		if mod == modulation.None {
			break
		}
		width := modulation.SlotsNeeded(r.Bandwidth, mod)
		priCandidates = append(priCandidates, h.priWindows(s, p, mod, width)...)
	}
	if len(priCandidates) == 0 {
		if priPathsAllUnreachable(sp, priPaths) {
			return blockedPri(r, netstate.BlockPriNoPath)
		}
		return blockedPri(r, netstate.BlockPriNoSpec)
	}

	best := false
	var bestCost float64
	var chosenPri, chosenBkp ksqWindow
	anyBkpPath, anyBkpReachable := false, false
	for _, pc := range priCandidates {
		y.Reset()
		restore := maskPath(sp, pc.path)
		bkpPaths := y.Paths(h.kBkp)
		restore()
		if len(bkpPaths) > 0 {
			anyBkpPath = true
		}

		var bkpCandidates []ksqWindow
		for _, b := range bkpPaths {
			mod := modulation.Choose(pathLength(sp, b))
			if mod == modulation.None {
				break
			}
			anyBkpReachable = true
			width := modulation.SlotsNeeded(r.Bandwidth, mod)
			bkpCandidates = append(bkpCandidates, h.bkpWindows(s, pc.path, b, mod, width)...)
		}
		for _, bc := range bkpCandidates {
			total := h.combine(pc.cost, bc.cost)
			if !best || total < bestCost {
				best, bestCost, chosenPri, chosenBkp = true, total, pc, bc
			}
		}
	}
	if !best {
		if !anyBkpPath {
			return blockedBkp(r, netstate.BlockSecNoPath)
		}
		if !anyBkpReachable {
			return blockedBkp(r, netstate.BlockSecNoPath)
		}
		return blockedBkp(r, netstate.BlockSecNoSpec)
	}

	return provisioning.Provisioning{
		PriPath: chosenPri.path, PriSpecBegin: chosenPri.begin, PriSpecEnd: chosenPri.begin + chosenPri.width, PriMod: chosenPri.mod,
		BkpPath: chosenBkp.path, BkpSpecBegin: chosenBkp.begin, BkpSpecEnd: chosenBkp.begin + chosenBkp.width, BkpMod: chosenBkp.mod,
		Bandwidth: r.Bandwidth, State: netstate.Success,
	}
}

func (h *ksq) combine(costp, costb float64) float64 {
	switch h.mode {
	case 1:
		return costp
	case 2:
		return costb
	default:
		return costp + costb
	}
}

// priWindows enumerates every slot-feasible window for path and scores
// each with costp = c_fsb*(len(path)*width) + c_cut*cuts + c_algn*misalignments + begin*len(path).
func (h *ksq) priWindows(s *netstate.State, path []topology.Link, mod modulation.Format, width int) []ksqWindow {
	bm := s.PriAvailability(path)
	n := len(path)
	var out []ksqWindow
	for begin := 0; begin+width <= netstate.NumSlots; begin++ {
		end := begin + width
		if !bm.WindowFree(begin, end) {
			continue
		}
		cost := h.cFSB*float64(n*width) +
			h.cCut*float64(s.CalcCuts(path, begin, end)) +
			h.cAlgn*s.CalcMisalignments(path, begin, end) +
			float64(begin*n)
		out = append(out, ksqWindow{path: path, mod: mod, width: width, begin: begin, cost: cost})
	}
	return out
}

// bkpWindows enumerates every slot-feasible backup window for path
// (disjoint from priPath) and scores each with costb = c_fsb*freeBlocks
// + c_cut*cuts + c_algn*misalignments + (NumSlots-end)*len(path).
func (h *ksq) bkpWindows(s *netstate.State, priPath, path []topology.Link, mod modulation.Format, width int) []ksqWindow {
	bm := s.BkpAvailabilityPath(priPath, path)
	n := len(path)
	var out []ksqWindow
	for begin := 0; begin+width <= netstate.NumSlots; begin++ {
		end := begin + width
		if !bm.WindowFree(begin, end) {
			continue
		}
		cost := h.cFSB*float64(s.CountFreeBlocksRange(path, begin, end)) +
			h.cCut*float64(s.CalcCuts(path, begin, end)) +
			h.cAlgn*s.CalcMisalignments(path, begin, end) +
			float64((netstate.NumSlots-end)*n)
		out = append(out, ksqWindow{path: path, mod: mod, width: width, begin: begin, cost: cost})
	}
	return out
}

func priPathsAllUnreachable(sp *pathsearch.Scratchpad, paths [][]topology.Link) bool {
	for _, p := range paths {
		if modulation.Choose(pathLength(sp, p)) != modulation.None {
			return false
		}
	}
	return true
}

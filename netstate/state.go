package netstate

import (
	"math"

	"github.com/eonsim/simulator/modulation"
	"github.com/eonsim/simulator/topology"
)

// ampDist is the maximum unamplified span, in km, between two optical
// amplifiers; used only to derive the per-link amplifier count feeding
// the energy metrics.
const ampDist = 80.0

// linkFrag is the per-link fragmentation bookkeeping original_source
// keeps to make updateLinkFrag an incremental, not full-rescan,
// operation: priEnd is the high-water mark of primary occupancy, and
// bkpBegin the low-water mark of backup occupancy, on that link.
type linkFrag struct {
	priEnd   int
	bkpBegin int
	priFrag  float64
	bkpFrag  float64
	totalFrag float64
}

func newLinkFrag() linkFrag {
	return linkFrag{priEnd: 0, bkpBegin: NumSlots}
}

// State is the spectrum occupancy and shared-backup bookkeeping for one
// simulation run. Each worker owns one State exclusively; nothing about
// it is safe for concurrent use.
type State struct {
	g        *topology.Graph
	numLinks int
	linkAmps []int
	numAmps  int64

	primaryUse []Bitmap
	anyUse     []Bitmap
	// sharing is laid out row-major: sharing[b*numLinks+p] holds the
	// backup spectrum on link b that protects primaries on link p.
	sharing []Bitmap

	currentPriSlots   int64
	currentBkpSlots   int64
	currentBkpLpSlots int64
	currentTxSlots    [modulation.BPSK + 1]int64

	frag []linkFrag
}

// New constructs a State sized for g's topology, with every bitmap
// reset and per-link amplifier counts derived once from link length.
func New(g *topology.Graph) *State {
	n := g.NumLinks()
	s := &State{
		g:          g,
		numLinks:   n,
		linkAmps:   make([]int, n),
		primaryUse: make([]Bitmap, n),
		anyUse:     make([]Bitmap, n),
		sharing:    make([]Bitmap, n*n),
		frag:       make([]linkFrag, n),
	}
	for l := 0; l < n; l++ {
		km := float64(g.LinkLength(topology.LinkID(l))) * topology.DistanceUnit
		amps := int(math.Ceil(km/ampDist)) + 1
		s.linkAmps[l] = amps
		s.numAmps += int64(amps)
		s.frag[l] = newLinkFrag()
	}
	return s
}

// Reset zeroes every bitmap and counter, as if State had just been
// constructed, without re-deriving the per-link amplifier counts.
func (s *State) Reset() {
	for i := range s.primaryUse {
		s.primaryUse[i] = Bitmap{}
		s.anyUse[i] = Bitmap{}
		s.frag[i] = newLinkFrag()
	}
	for i := range s.sharing {
		s.sharing[i] = Bitmap{}
	}
	s.currentPriSlots = 0
	s.currentBkpSlots = 0
	s.currentBkpLpSlots = 0
	s.currentTxSlots = [modulation.BPSK + 1]int64{}
}

func (s *State) sharingAt(b, p topology.LinkID) *Bitmap {
	return &s.sharing[int(b)*s.numLinks+int(p)]
}

// Provision commits p's primary and backup slot assignments, asserting
// the invariants spec.md requires hold for any successful Provisioning.
// It panics (the Go analogue of the original's debug-build assert) if
// an invariant is violated; callers only ever pass Provisionings a
// Scheme derived against the same State, so this should never trigger
// outside an implementation bug.
func (s *State) Provision(p *Provisioning) {
	for _, e := range p.PriPath {
		for i := p.PriSpecBegin; i < p.PriSpecEnd; i++ {
			if s.primaryUse[e.Index].Test(i) || s.anyUse[e.Index].Test(i) {
				panic(ErrSlotAlreadyUsed)
			}
			s.primaryUse[e.Index].Set(i)
			s.anyUse[e.Index].Set(i)
		}
		if s.frag[e.Index].priEnd < p.PriSpecEnd {
			s.frag[e.Index].priEnd = p.PriSpecEnd
		}
	}

	for _, eb := range p.BkpPath {
		for i := p.BkpSpecBegin; i < p.BkpSpecEnd; i++ {
			if !s.anyUse[eb.Index].Test(i) {
				s.currentBkpSlots++
				s.anyUse[eb.Index].Set(i)
			}
		}
		if s.frag[eb.Index].bkpBegin > p.BkpSpecBegin {
			s.frag[eb.Index].bkpBegin = p.BkpSpecBegin
		}
		for _, ep := range p.PriPath {
			if eb.Index == ep.Index {
				panic(ErrPriBkpOverlap)
			}
			sh := s.sharingAt(eb.Index, ep.Index)
			for i := p.BkpSpecBegin; i < p.BkpSpecEnd; i++ {
				if sh.Test(i) {
					panic(ErrSharingConflict)
				}
				sh.Set(i)
			}
		}
	}

	s.updateLinkFrag(p.PriPath)
	s.updateLinkFrag(p.BkpPath)
	s.currentBkpLpSlots += int64(p.BkpSpecEnd-p.BkpSpecBegin) * int64(len(p.BkpPath))
	s.currentPriSlots += int64(p.PriSpecEnd-p.PriSpecBegin) * int64(len(p.PriPath))
	s.currentTxSlots[p.PriMod] += int64(p.PriSpecEnd - p.PriSpecBegin)
}

// Terminate releases everything Provision committed for p, rebuilding
// anyUse on every backup link from scratch since the freed slots may
// still be held by another shared backup. This rebuild is
// O(len(BkpPath) * numLinks) and is the dominant cost of a termination;
// it is the explicit trade-off of the sharing-matrix representation.
func (s *State) Terminate(p *Provisioning) {
	for _, e := range p.PriPath {
		for i := p.PriSpecBegin; i < p.PriSpecEnd; i++ {
			s.primaryUse[e.Index].Clear(i)
			s.anyUse[e.Index].Clear(i)
		}
		if s.frag[e.Index].priEnd == p.PriSpecEnd {
			s.frag[e.Index].priEnd = 0
			for i := 0; i < p.PriSpecEnd; i++ {
				if s.primaryUse[e.Index].Test(i) {
					s.frag[e.Index].priEnd = i + 1
				}
			}
		}
	}

	for _, eb := range p.BkpPath {
		for _, ep := range p.PriPath {
			sh := s.sharingAt(eb.Index, ep.Index)
			for i := p.BkpSpecBegin; i < p.BkpSpecEnd; i++ {
				sh.Clear(i)
			}
		}
	}

	for _, eb := range p.BkpPath {
		var bkpUse Bitmap
		for q := 0; q < s.numLinks; q++ {
			bkpUse.OrWith(*s.sharingAt(eb.Index, topology.LinkID(q)))
		}
		s.anyUse[eb.Index] = s.primaryUse[eb.Index]
		s.anyUse[eb.Index].OrWith(bkpUse)

		for i := p.BkpSpecBegin; i < p.BkpSpecEnd; i++ {
			if !bkpUse.Test(i) {
				s.currentBkpSlots--
			}
		}

		if s.frag[eb.Index].bkpBegin == p.BkpSpecBegin {
			s.frag[eb.Index].bkpBegin = NumSlots
			for i := NumSlots - 1; i >= p.BkpSpecBegin; i-- {
				if bkpUse.Test(i) {
					s.frag[eb.Index].bkpBegin = i
				}
			}
		}
	}

	s.updateLinkFrag(p.PriPath)
	s.updateLinkFrag(p.BkpPath)
	s.currentBkpLpSlots -= int64(p.BkpSpecEnd-p.BkpSpecBegin) * int64(len(p.BkpPath))
	s.currentPriSlots -= int64(p.PriSpecEnd-p.PriSpecBegin) * int64(len(p.PriPath))
	s.currentTxSlots[p.PriMod] -= int64(p.PriSpecEnd - p.PriSpecBegin)
}

// PriAvailability returns the OR of anyUse across every link of path; a
// clear bit is a slot free for a new primary lightpath on the whole path.
func (s *State) PriAvailability(path []topology.Link) Bitmap {
	var result Bitmap
	for _, e := range path {
		result.OrWith(s.anyUse[e.Index])
	}
	return result
}

// BkpAvailabilityLink returns the occupancy a backup on bkpLink would
// collide with given it protects priPath: the primary use of bkpLink
// itself, unioned with every sharing bitmap already reserved there for
// one of priPath's links.
func (s *State) BkpAvailabilityLink(priPath []topology.Link, bkpLink topology.LinkID) Bitmap {
	result := s.primaryUse[bkpLink]
	for _, ep := range priPath {
		result.OrWith(*s.sharingAt(bkpLink, ep.Index))
	}
	return result
}

// BkpAvailabilityPath is BkpAvailabilityLink applied across every link
// of bkpPath and OR'd together.
func (s *State) BkpAvailabilityPath(priPath, bkpPath []topology.Link) Bitmap {
	var result Bitmap
	for _, eb := range bkpPath {
		result.OrWith(s.BkpAvailabilityLink(priPath, eb.Index))
	}
	return result
}

// CountFreeBlocksAt counts the links of path on which slot i is free.
func (s *State) CountFreeBlocksAt(path []topology.Link, i int) int {
	n := 0
	for _, e := range path {
		if !s.anyUse[e.Index].Test(i) {
			n++
		}
	}
	return n
}

// CountFreeBlocksRange sums CountFreeBlocksAt across [begin, end).
func (s *State) CountFreeBlocksRange(path []topology.Link, begin, end int) int {
	n := 0
	for _, e := range path {
		for i := begin; i < end; i++ {
			if !s.anyUse[e.Index].Test(i) {
				n++
			}
		}
	}
	return n
}

// CalcCuts counts the links of path where both the slot immediately
// below begin and the slot at end are free: placing [begin,end) there
// would create two new fragment boundaries instead of extending an
// existing free run.
func (s *State) CalcCuts(path []topology.Link, begin, end int) int {
	if begin == 0 || end == NumSlots {
		return 0
	}
	n := 0
	for _, e := range path {
		if !s.anyUse[e.Index].Test(begin-1) && !s.anyUse[e.Index].Test(end) {
			n++
		}
	}
	return n
}

// CalcMisalignments sums, over every link of path, the fraction of
// [begin,end) slots free on the link's co-departing siblings: a high
// value means choosing this window here wastes alignment opportunities
// elsewhere at the same node.
func (s *State) CalcMisalignments(path []topology.Link, begin, end int) float64 {
	result := 0.0
	for _, e := range path {
		lo, hi := s.g.OutLinkRange(e.Source)
		degree := int(hi - lo)
		free := 0
		for l := lo; l < hi; l++ {
			if l == e.Index {
				continue
			}
			for i := begin; i < end; i++ {
				if !s.anyUse[l].Test(i) {
					free++
				}
			}
		}
		result += float64(free) / float64(degree)
	}
	return result
}

// updateLinkFrag recomputes fragmentation ratios for every link in p,
// scanning the primary region [0,priEnd) and the backup region
// [bkpBegin,NumSlots) for their longest free runs.
func (s *State) updateLinkFrag(p []topology.Link) {
	for _, e := range p {
		f := &s.frag[e.Index]
		bm := &s.anyUse[e.Index]

		longestFree, totalLongestFree := 0, 0
		sectionTotalFree, totalFree := 0, 0
		run := 0
		for i := 0; i < f.priEnd; i++ {
			if !bm.Test(i) {
				run++
			} else if run > 0 {
				if run > longestFree {
					longestFree = run
				}
				sectionTotalFree += run
				run = 0
			}
		}
		if sectionTotalFree > 0 {
			f.priFrag = 1.0 - float64(longestFree)/float64(sectionTotalFree)
		} else {
			f.priFrag = 0.0
		}
		totalFree = sectionTotalFree
		totalLongestFree = longestFree

		if f.bkpBegin > f.priEnd {
			mid := f.bkpBegin - f.priEnd
			totalFree += mid
			if mid > totalLongestFree {
				totalLongestFree = mid
			}
		}

		run, longestFree, sectionTotalFree = 0, 0, 0
		for i := f.bkpBegin; i < NumSlots; i++ {
			if !bm.Test(i) {
				run++
			} else if run > 0 {
				if run > longestFree {
					if run > totalLongestFree {
						totalLongestFree = run
					}
					longestFree = run
				}
				sectionTotalFree += run
				if i > f.priEnd {
					totalFree += run
				}
				run = 0
			}
		}
		if longestFree > totalLongestFree {
			totalLongestFree = longestFree
		}
		if sectionTotalFree > 0 {
			f.bkpFrag = 1.0 - float64(longestFree)/float64(sectionTotalFree)
		} else {
			f.bkpFrag = 0.0
		}
		// Guards on totalFree rather than sectionTotalFree (unlike the
		// original, which checks sectionTotalFree here): totalFree is the
		// actual denominator below, and it can be zero in cases where
		// sectionTotalFree (the backup-only count) is not, e.g. a fully
		// occupied primary region. Guarding on the denominator itself
		// avoids a spurious division by zero that checking sectionTotalFree
		// would miss.
		if totalFree > 0 {
			f.totalFrag = 1.0 - float64(totalLongestFree)/float64(totalFree)
		} else {
			f.totalFrag = 0.0
		}
	}
}

// SanityCheck reverifies, for every active Provisioning and for the
// sharing-consistency invariant across all links, that the bitmaps
// match what the active set implies. It is O(total active slot-links +
// numLinks^2) and is meant for debug builds only.
func (s *State) SanityCheck(active []*Provisioning) error {
	for _, c := range active {
		for _, ep := range c.PriPath {
			for i := c.PriSpecBegin; i < c.PriSpecEnd; i++ {
				if !s.primaryUse[ep.Index].Test(i) || !s.anyUse[ep.Index].Test(i) {
					return ErrSlotAlreadyUsed
				}
			}
		}
		for _, eb := range c.BkpPath {
			for i := c.BkpSpecBegin; i < c.BkpSpecEnd; i++ {
				if s.primaryUse[eb.Index].Test(i) || !s.anyUse[eb.Index].Test(i) {
					return ErrSharingInconsistent
				}
			}
			for _, ep := range c.PriPath {
				for i := c.BkpSpecBegin; i < c.BkpSpecEnd; i++ {
					if !s.sharingAt(eb.Index, ep.Index).Test(i) {
						return ErrSharingInconsistent
					}
				}
			}
		}
	}

	for b := 0; b < s.numLinks; b++ {
		want := s.primaryUse[b]
		for p := 0; p < s.numLinks; p++ {
			want.OrWith(*s.sharingAt(topology.LinkID(b), topology.LinkID(p)))
		}
		if want != s.anyUse[b] {
			return ErrSharingInconsistent
		}
	}
	return nil
}

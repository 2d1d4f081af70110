package netstate

import "github.com/eonsim/simulator/modulation"

// Energy cost coefficients (picojoules per slot-symbol), one per
// modulation format, grounded in the original simulator's transponder
// power model; BPSK is cheapest per slot, QAM64 dearest.
const (
	energyBPSK  = 47.13
	energyQPSK  = 62.75
	energyQAM8  = 78.38
	energyQAM16 = 94.00
	energyQAM32 = 109.63
	energyQAM64 = 125.23

	energyPerLinkPair = 85.0
	energyPerNode     = 150.0
	energyPerAmpPair  = 140.0
	energyPerIdleAmp  = 30.0
)

// PerfMetrics is a point-in-time snapshot of network-wide performance
// indicators, summed across links where noted. StatCounter integrates
// snapshots over time by scaling with *, accumulating with +=, and
// finally normalizing with /.
type PerfMetrics struct {
	Sharability float64
	PriFrag     float64
	BkpFrag     float64
	TotalFrag   float64
	PriEnd      float64
	BkpBegin    float64
	Collisions  float64
	Utilization float64
	EStat       float64
	EDyn        float64
	NumLinks    int
}

func (p PerfMetrics) Mul(k float64) PerfMetrics {
	p.Sharability *= k
	p.PriFrag *= k
	p.BkpFrag *= k
	p.TotalFrag *= k
	p.PriEnd *= k
	p.BkpBegin *= k
	p.Collisions *= k
	p.Utilization *= k
	p.EStat *= k
	p.EDyn *= k
	return p
}

func (p PerfMetrics) Div(k float64) PerfMetrics {
	if k == 0 {
		return PerfMetrics{NumLinks: p.NumLinks}
	}
	return p.Mul(1.0 / k)
}

func (p *PerfMetrics) AddAssign(b PerfMetrics) {
	p.Sharability += b.Sharability
	p.PriFrag += b.PriFrag
	p.BkpFrag += b.BkpFrag
	p.TotalFrag += b.TotalFrag
	p.PriEnd += b.PriEnd
	p.BkpBegin += b.BkpBegin
	p.Collisions += b.Collisions
	p.Utilization += b.Utilization
	p.EStat += b.EStat
	p.EDyn += b.EDyn
	if b.NumLinks > p.NumLinks {
		p.NumLinks = b.NumLinks
	}
}

func (p *PerfMetrics) addLink(bkpBegin int, bkpFrag float64, priEnd int, priFrag, totalFrag float64) {
	p.BkpBegin += float64(bkpBegin)
	p.BkpFrag += bkpFrag
	p.PriEnd += float64(priEnd)
	p.PriFrag += priFrag
	p.TotalFrag += totalFrag
}

// PerfSnapshot computes the current PerfMetrics: spectrum utilization
// and sharability from the running slot counters, per-link
// fragmentation summed via addLink, and static/dynamic energy derived
// from the topology's node/link/amplifier counts and per-modulation
// transmission-slot counts.
func (s *State) PerfSnapshot() PerfMetrics {
	var p PerfMetrics
	p.Utilization = float64(s.currentPriSlots + s.currentBkpSlots)
	if s.currentBkpSlots > 0 {
		p.Sharability = float64(s.currentBkpLpSlots) / float64(s.currentBkpSlots)
	}
	p.NumLinks = s.numLinks

	var idleAmps int64
	for i := 0; i < s.numLinks; i++ {
		f := s.frag[i]
		p.addLink(f.bkpBegin, f.bkpFrag, f.priEnd, f.priFrag, f.totalFrag)
		if f.priEnd == 0 && f.bkpBegin == NumSlots {
			idleAmps += int64(s.linkAmps[i])
		}
	}

	p.EStat = float64(s.numLinks/2)*energyPerLinkPair +
		float64(s.g.NumNodes())*energyPerNode +
		float64(s.numAmps/2)*energyPerAmpPair
	p.EDyn = float64(s.numAmps-idleAmps) * energyPerIdleAmp
	p.EDyn += float64(s.currentTxSlots[modulation.BPSK]) * energyBPSK
	p.EDyn += float64(s.currentTxSlots[modulation.QPSK]) * energyQPSK
	p.EDyn += float64(s.currentTxSlots[modulation.QAM8]) * energyQAM8
	p.EDyn += float64(s.currentTxSlots[modulation.QAM16]) * energyQAM16
	p.EDyn += float64(s.currentTxSlots[modulation.QAM32]) * energyQAM32
	p.EDyn += float64(s.currentTxSlots[modulation.QAM64]) * energyQAM64

	return p
}

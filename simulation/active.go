package simulation

import (
	"container/heap"

	"github.com/eonsim/simulator/netstate"
)

// activeEntry is one outstanding connection: its backing Provisioning
// and the simulated time at which it expires.
type activeEntry struct {
	expiry int64
	seq    int64
	prov   *netstate.Provisioning
}

// activeQueue is a min-heap by (expiry, seq), giving earliest-expiry-
// first iteration with insertion-order tie-break, the same pattern
// pathsearch's node priority queue uses for deterministic ordering.
type activeQueue []activeEntry

func (q activeQueue) Len() int { return len(q) }
func (q activeQueue) Less(i, j int) bool {
	if q[i].expiry != q[j].expiry {
		return q[i].expiry < q[j].expiry
	}
	return q[i].seq < q[j].seq
}
func (q activeQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }
func (q *activeQueue) Push(x any)   { *q = append(*q, x.(activeEntry)) }
func (q *activeQueue) Pop() any {
	old := *q
	n := len(old)
	e := old[n-1]
	*q = old[:n-1]
	return e
}

// activeSet tracks live connections keyed by expiry time, supporting
// "peek the earliest" and "remove the earliest" for the simulation
// loop's termination-draining step.
type activeSet struct {
	q       activeQueue
	nextSeq int64
}

func newActiveSet() *activeSet {
	return &activeSet{}
}

func (a *activeSet) insert(expiry int64, p *netstate.Provisioning) {
	heap.Push(&a.q, activeEntry{expiry: expiry, seq: a.nextSeq, prov: p})
	a.nextSeq++
}

func (a *activeSet) empty() bool { return len(a.q) == 0 }

// peekExpiry returns the earliest outstanding expiry time; callers must
// check !empty() first.
func (a *activeSet) peekExpiry() int64 { return a.q[0].expiry }

// popEarliest removes and returns the earliest-expiring connection.
func (a *activeSet) popEarliest() *netstate.Provisioning {
	e := heap.Pop(&a.q).(activeEntry)
	return e.prov
}

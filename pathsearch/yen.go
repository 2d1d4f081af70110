package pathsearch

import (
	"github.com/eonsim/simulator/topology"
)

// candidate is one path tracked by a YenSearch, either accepted (in A)
// or waiting in the candidate buffer (in B).
type candidate struct {
	path   []topology.Link
	length int
	seq    int // insertion order, used only to break length ties in B
}

// YenSearch computes up to k loopless shortest paths between a fixed
// (s, d) pair, incrementally: a call to Paths(k) extends the previously
// accepted list A only as far as needed to reach k entries, reusing work
// from any prior call. It owns no state the caller must not itself
// mutate; Reset/ResetEndpoints are the only way to discard progress.
type YenSearch struct {
	g  *topology.Graph
	sp *Scratchpad

	s, d topology.NodeID
	a    []candidate
	b    []candidate
	seq  int
}

// NewYenSearch constructs a search bound to g and sp, uninitialized
// until ResetEndpoints is called.
func NewYenSearch(g *topology.Graph, sp *Scratchpad) *YenSearch {
	return &YenSearch{g: g, sp: sp}
}

// Reset discards the accepted list and candidate buffer, keeping the
// current endpoints.
func (y *YenSearch) Reset() {
	y.a = y.a[:0]
	y.b = y.b[:0]
	y.seq = 0
}

// ResetEndpoints discards all progress and rebinds the search to a new
// source/destination pair.
func (y *YenSearch) ResetEndpoints(s, d topology.NodeID) {
	y.Reset()
	y.s, y.d = s, d
}

// Paths returns up to k loopless s->d paths in non-decreasing total
// length, computing only as many as have not already been produced by
// an earlier call on this search.
func (y *YenSearch) Paths(k int) [][]topology.Link {
	y.ensure(k)
	n := k
	if n > len(y.a) {
		n = len(y.a)
	}
	out := make([][]topology.Link, n)
	for i := 0; i < n; i++ {
		out[i] = y.a[i].path
	}
	return out
}

// ensure grows a until it holds k accepted paths or no further
// candidate exists.
func (y *YenSearch) ensure(k int) {
	for len(y.a) < k {
		if len(y.a) == 0 {
			path := dijkstraOn(y.g, y.sp, y.sp.weights, y.s, y.d)
			if path == nil {
				return
			}
			y.a = append(y.a, candidate{path: path, length: sumWeights(y.sp.weights, path)})
			continue
		}
		y.spurRound()
		if len(y.b) == 0 {
			return
		}
		y.a = append(y.a, y.popBest())
	}
}

// spurRound generates every spur candidate reachable from the most
// recently accepted path and inserts the feasible ones into b.
func (y *YenSearch) spurRound() {
	prev := y.a[len(y.a)-1].path
	for i := 0; i < len(prev); i++ {
		spurNode := prev[i].Source
		root := prev[:i]

		copy(y.sp.tmpWeights, y.sp.weights)

		// mask the continuation every accepted path sharing this root
		// already used, so the spur can't reproduce a known path.
		for _, acc := range y.a {
			if len(acc.path) > i && sharesPrefix(acc.path, root) {
				y.sp.tmpWeights[acc.path[i].Index] = Inf
			}
		}
		// mask every out-edge of the root's own nodes to forbid the spur
		// from re-entering the root prefix and forming a loop.
		for _, e := range root {
			lo, hi := y.g.OutLinkRange(e.Source)
			for l := lo; l < hi; l++ {
				y.sp.tmpWeights[l] = Inf
			}
		}

		spur := dijkstraOn(y.g, y.sp, y.sp.tmpWeights, spurNode, y.d)
		if spur == nil {
			continue
		}
		full := make([]topology.Link, 0, len(root)+len(spur))
		full = append(full, root...)
		full = append(full, spur...)
		y.insertCandidate(full)
	}
}

// insertCandidate adds path to b unless an equal-length path already
// present in b is identical to it.
func (y *YenSearch) insertCandidate(path []topology.Link) {
	length := sumWeights(y.sp.weights, path)
	for _, c := range y.b {
		if c.length == length && pathsEqual(c.path, path) {
			return
		}
	}
	y.b = append(y.b, candidate{path: path, length: length, seq: y.seq})
	y.seq++
}

// popBest removes and returns the least-cost candidate in b, breaking
// length ties by earliest insertion (lowest seq).
func (y *YenSearch) popBest() candidate {
	best := 0
	for i := 1; i < len(y.b); i++ {
		if y.b[i].length < y.b[best].length ||
			(y.b[i].length == y.b[best].length && y.b[i].seq < y.b[best].seq) {
			best = i
		}
	}
	out := y.b[best]
	y.b = append(y.b[:best], y.b[best+1:]...)
	return out
}

func sharesPrefix(path, prefix []topology.Link) bool {
	if len(path) < len(prefix) {
		return false
	}
	for i, e := range prefix {
		if path[i] != e {
			return false
		}
	}
	return true
}

func pathsEqual(a, b []topology.Link) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func sumWeights(weights []int, path []topology.Link) int {
	total := 0
	for _, e := range path {
		total += weights[e.Index]
	}
	return total
}

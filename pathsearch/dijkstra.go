package pathsearch

import (
	"container/heap"

	"github.com/eonsim/simulator/topology"
)

// Dijkstra computes the shortest s->d path over g using sp.weights as
// edge weights, and returns it as an ordered list of link descriptors
// (empty if d is unreachable from s). On return, sp.dist and sp.pred
// hold the full single-source result for every vertex reachable from s.
//
// Ties in the priority queue are broken by node index, so that equal-
// distance frontiers are explored in a fixed, reproducible order.
func Dijkstra(g *topology.Graph, sp *Scratchpad, s, d topology.NodeID) []topology.Link {
	return dijkstraOn(g, sp, sp.weights, s, d)
}

// dijkstraOn runs the same search against an explicit weights array,
// letting Yen reuse the scratchpad's dist/pred/color storage while
// searching over tmpWeights instead of the permanent weights.
func dijkstraOn(g *topology.Graph, sp *Scratchpad, weights []int, s, d topology.NodeID) []topology.Link {
	n := g.NumNodes()
	for v := 0; v < n; v++ {
		sp.dist[v] = Inf
		sp.color[v] = colorUnvisited
		sp.pred[v] = -1
	}
	sp.dist[s] = 0

	pq := make(nodePQ, 0, n)
	heap.Push(&pq, nodeItem{node: s, dist: 0})

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(nodeItem)
		u := item.node
		if sp.color[u] == colorVisited {
			continue // stale lazy-decrease-key entry
		}
		sp.color[u] = colorVisited

		lo, hi := g.OutLinkRange(u)
		for l := lo; l < hi; l++ {
			w := weights[l]
			if w >= Inf {
				continue // masked edge
			}
			v := g.LinkDest(l)
			if sp.color[v] == colorVisited {
				continue
			}
			nd := sp.dist[u] + w
			if nd < sp.dist[v] {
				sp.dist[v] = nd
				sp.pred[v] = l
				heap.Push(&pq, nodeItem{node: v, dist: nd})
			}
		}
	}

	if sp.dist[d] >= Inf {
		return nil
	}
	return walkPred(g, sp, s, d)
}

// walkPred reconstructs the s->d path from sp.pred after a Dijkstra run.
func walkPred(g *topology.Graph, sp *Scratchpad, s, d topology.NodeID) []topology.Link {
	var rev []topology.Link
	for v := d; v != s; {
		l := sp.pred[v]
		if l < 0 {
			return nil
		}
		u := g.LinkSource(l)
		rev = append(rev, topology.Link{Source: u, Index: l})
		v = u
	}
	// reverse in place
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}
	return rev
}

// PathLength sums the current scratchpad weights of a path's links.
func PathLength(sp *Scratchpad, path []topology.Link) int {
	total := 0
	for _, e := range path {
		total += sp.weights[e.Index]
	}
	return total
}

// nodeItem is one entry of the Dijkstra priority queue.
type nodeItem struct {
	node topology.NodeID
	dist int
}

// nodePQ is a min-heap of nodeItem ordered by ascending dist, using the
// lazy-decrease-key pattern: superseded entries are pushed anew and
// discarded on pop via sp.color, rather than updated in place.
type nodePQ []nodeItem

func (pq nodePQ) Len() int { return len(pq) }
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].node < pq[j].node
}
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}

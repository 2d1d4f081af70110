package topology

import "errors"

// Sentinel errors returned by the topology package.
var (
	// ErrTooFewNodes indicates a matrix file declared fewer than 2 nodes.
	ErrTooFewNodes = errors.New("topology: matrix declares fewer than 2 nodes")

	// ErrMalformedMatrix indicates the input stream ended before N*N
	// distance values could be read, or a value could not be parsed.
	ErrMalformedMatrix = errors.New("topology: malformed distance matrix")

	// ErrNodeOutOfRange indicates a node index outside [0, NumNodes).
	ErrNodeOutOfRange = errors.New("topology: node index out of range")
)

// NodeID indexes a vertex in [0, Graph.NumNodes()).
type NodeID int

// LinkID indexes a directed edge in [0, Graph.NumLinks()). Link indices
// are assigned in compressed-sparse-row order: all links departing node
// 0 first, then all links departing node 1, and so on, which is also
// the order OutLinks returns them in.
type LinkID int

// Link is a link descriptor: the node it departs from, paired with its
// own index. This is the unit the path-search and network-state layers
// pass around, since a LinkID alone does not carry its source.
type Link struct {
	Source NodeID
	Index  LinkID
}

// Graph is an immutable directed, weighted network topology in
// compressed-sparse-row form: every node's out-edges occupy a
// contiguous run of the dest/length arrays.
//
// A Graph is safe for unsynchronized concurrent reads from any number of
// goroutines once construction (LoadMatrix) has returned; there
// is exactly one Graph per process, shared read-only by every worker.
type Graph struct {
	numNodes int
	// offset[u]..offset[u+1] is the half-open CSR range, within dest and
	// length, of u's out-edges. len(offset) == numNodes+1.
	offset []int
	dest   []NodeID
	length []int
}

// NumNodes reports the number of nodes, indexed 0..NumNodes()-1.
func (g *Graph) NumNodes() int { return g.numNodes }

// NumLinks reports the number of directed links, indexed 0..NumLinks()-1.
func (g *Graph) NumLinks() int { return len(g.dest) }

// LinkLength returns the length, in quantized distance units, of link l.
func (g *Graph) LinkLength(l LinkID) int {
	return g.length[l]
}

// LinkDest returns the destination node of link l.
func (g *Graph) LinkDest(l LinkID) NodeID {
	return g.dest[l]
}

// LinkSource returns the source node of link l.
// Complexity: O(log numNodes) via binary search over offset.
func (g *Graph) LinkSource(l LinkID) NodeID {
	lo, hi := 0, g.numNodes
	for lo < hi {
		mid := (lo + hi) / 2
		if g.offset[mid+1] <= int(l) {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return NodeID(lo)
}

// Edge looks up the link index from u to v, if one exists.
// Complexity: O(out-degree(u)).
func (g *Graph) Edge(u, v NodeID) (LinkID, bool) {
	lo, hi := g.OutLinkRange(u)
	for l := lo; l < hi; l++ {
		if g.dest[l] == v {
			return l, true
		}
	}
	return 0, false
}

// OutLinkRange returns the half-open range [start, end) of link indices
// departing node u. Because links are stored in CSR order, the range
// itself enumerates the links: callers loop `for l := start; l < end;
// l++`. This is the zero-allocation form used by the Dijkstra/Yen inner
// loop; see pathsearch.
func (g *Graph) OutLinkRange(u NodeID) (start, end LinkID) {
	return LinkID(g.offset[u]), LinkID(g.offset[u+1])
}

// OutLinks returns the link indices departing node u as an owned slice.
// Convenience wrapper around OutLinkRange for call sites (tests,
// diagnostics) outside the hot path, where an allocation is unremarkable.
func (g *Graph) OutLinks(u NodeID) []LinkID {
	lo, hi := g.OutLinkRange(u)
	ids := make([]LinkID, 0, hi-lo)
	for l := lo; l < hi; l++ {
		ids = append(ids, l)
	}
	return ids
}

// OutDegree reports the number of links departing node u.
func (g *Graph) OutDegree(u NodeID) int {
	return g.offset[u+1] - g.offset[u]
}

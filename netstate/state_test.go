package netstate_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eonsim/simulator/modulation"
	"github.com/eonsim/simulator/netstate"
	"github.com/eonsim/simulator/topology"
)

func mustLoad(t *testing.T, matrix string) *topology.Graph {
	t.Helper()
	g, err := topology.LoadMatrix(strings.NewReader(matrix))
	require.NoError(t, err)
	return g
}

func line(g *topology.Graph, nodes ...topology.NodeID) []topology.Link {
	path := make([]topology.Link, 0, len(nodes)-1)
	for i := 0; i+1 < len(nodes); i++ {
		l, ok := g.Edge(nodes[i], nodes[i+1])
		if !ok {
			panic("no such edge in test fixture")
		}
		path = append(path, topology.Link{Source: nodes[i], Index: l})
	}
	return path
}

// diamond is 0->1->3 and 0->2->3, link-disjoint except at the endpoints.
func diamond(t *testing.T) *topology.Graph {
	const matrix = "4\n" +
		"0 10 10 0\n" +
		"0 0 0 10\n" +
		"0 0 0 10\n" +
		"0 0 0 0\n"
	return mustLoad(t, matrix)
}

func TestProvisionThenTerminate_RestoresEmptyState(t *testing.T) {
	g := diamond(t)
	s := netstate.New(g)

	p := &netstate.Provisioning{
		PriPath: line(g, 0, 1, 3), PriSpecBegin: 0, PriSpecEnd: 4, PriMod: modulation.QPSK,
		BkpPath: line(g, 0, 2, 3), BkpSpecBegin: 0, BkpSpecEnd: 4, BkpMod: modulation.QPSK,
		Bandwidth: 10, State: netstate.Success,
	}
	s.Provision(p)
	require.NoError(t, s.SanityCheck([]*netstate.Provisioning{p}))

	avail := s.PriAvailability(p.PriPath)
	require.True(t, avail.Test(0))
	require.False(t, avail.Test(4))

	s.Terminate(p)
	require.NoError(t, s.SanityCheck(nil))
	avail = s.PriAvailability(p.PriPath)
	require.True(t, avail.IsEmpty())
}

func TestSharingConsistencyInvariant_HoldsAcrossInterleavedOps(t *testing.T) {
	g := diamond(t)
	s := netstate.New(g)

	mkProv := func(begin, end int) *netstate.Provisioning {
		return &netstate.Provisioning{
			PriPath: line(g, 0, 1, 3), PriSpecBegin: begin, PriSpecEnd: end, PriMod: modulation.QPSK,
			BkpPath: line(g, 0, 2, 3), BkpSpecBegin: begin, BkpSpecEnd: end, BkpMod: modulation.QPSK,
			Bandwidth: 10, State: netstate.Success,
		}
	}

	var active []*netstate.Provisioning
	for i := 0; i < 8; i += 4 {
		p := mkProv(i, i+4)
		s.Provision(p)
		active = append(active, p)
		require.NoError(t, s.SanityCheck(active))
	}
	s.Terminate(active[0])
	active = active[1:]
	require.NoError(t, s.SanityCheck(active))
	s.Terminate(active[0])
	active = active[1:]
	require.NoError(t, s.SanityCheck(active))
}

func TestBkpAvailability_SharesAcrossDistinctPrimaries(t *testing.T) {
	g := diamond(t)
	s := netstate.New(g)

	p1 := &netstate.Provisioning{
		PriPath: line(g, 0, 1, 3), PriSpecBegin: 0, PriSpecEnd: 4, PriMod: modulation.QPSK,
		BkpPath: line(g, 0, 2, 3), BkpSpecBegin: 0, BkpSpecEnd: 4, BkpMod: modulation.QPSK,
		Bandwidth: 10, State: netstate.Success,
	}
	s.Provision(p1)

	// probed for p1's own primary, the backup slots p1 reserved read
	// occupied: they already protect that primary.
	avail := s.BkpAvailabilityPath(line(g, 0, 1, 3), line(g, 0, 2, 3))
	require.True(t, avail.Test(0), "backup slots reserved for p1's own primary should read occupied")

	bkp2 := line(g, 0, 2, 3)
	// probed for a primary that shares no link with p1's (here an empty
	// one), no sharing bitmap applies and the slots read free.
	freshAvail := s.BkpAvailabilityLink([]topology.Link{}, bkp2[0].Index)
	require.True(t, freshAvail.IsEmpty(), "no primary means only primaryUse on the backup link matters")
}

func TestReset_ClearsEverything(t *testing.T) {
	g := diamond(t)
	s := netstate.New(g)
	p := &netstate.Provisioning{
		PriPath: line(g, 0, 1, 3), PriSpecBegin: 0, PriSpecEnd: 4, PriMod: modulation.QPSK,
		BkpPath: line(g, 0, 2, 3), BkpSpecBegin: 0, BkpSpecEnd: 4, BkpMod: modulation.QPSK,
		Bandwidth: 10, State: netstate.Success,
	}
	s.Provision(p)
	s.Reset()
	require.True(t, s.PriAvailability(p.PriPath).IsEmpty())
	require.NoError(t, s.SanityCheck(nil))
}

package stats_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eonsim/simulator/netstate"
	"github.com/eonsim/simulator/stats"
)

func TestDiscardBudget_SuppressesLeadingEvents(t *testing.T) {
	c := stats.NewCounter(2)
	ok := &netstate.Provisioning{State: netstate.Success, Bandwidth: 10}
	blocked := &netstate.Provisioning{State: netstate.BlockPriNoPath, Bandwidth: 10}

	c.CountProvisioning(ok)
	c.CountProvisioning(blocked)
	require.Equal(t, int64(0), c.NProvisioned())
	require.Equal(t, int64(0), c.NBlocked())

	c.CountProvisioning(ok)
	require.Equal(t, int64(1), c.NProvisioned())
}

func TestCountProvisioning_SplitsSuccessFromBlocked(t *testing.T) {
	c := stats.NewCounter(0)
	c.CountProvisioning(&netstate.Provisioning{State: netstate.Success, Bandwidth: 5})
	c.CountProvisioning(&netstate.Provisioning{State: netstate.BlockSecNoSpec, Bandwidth: 7})
	require.Equal(t, int64(1), c.NProvisioned())
	require.Equal(t, int64(1), c.NBlocked())
	require.InDelta(t, 1.0/2.0, c.BlockingProbability(), 1e-9)
}

func TestCountTermination_IgnoredDuringDiscard(t *testing.T) {
	c := stats.NewCounter(1)
	c.CountTermination(&netstate.Provisioning{Bandwidth: 3})
	require.Equal(t, int64(0), c.NTerminated())
}

func TestRow_MatchesHeaderColumnCount(t *testing.T) {
	c := stats.NewCounter(0)
	row := c.Row(1)
	headerCols := len(splitSemicolons(stats.TableHeader))
	rowCols := len(splitSemicolons(row))
	require.Equal(t, headerCols, rowCols)
}

func splitSemicolons(s string) []string {
	var out []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == ';' {
			out = append(out, s[start:i])
			start = i + 1
		}
	}
	out = append(out, s[start:])
	return out
}

package heuristics

import (
	"github.com/eonsim/simulator/netstate"
	"github.com/eonsim/simulator/pathsearch"
	"github.com/eonsim/simulator/provisioning"
	"github.com/eonsim/simulator/topology"
)

// defaultK matches the original simulator's DEFAULT_K: absent an
// explicit k/k_pri/k_bkp parameter, four candidate paths are considered.
const defaultK = 4

// kPriKBkp resolves the k_pri/k_bkp pair from params, honoring the
// "k" shorthand that sets both, with k_pri/k_bkp individually
// overriding it.
func kPriKBkp(params provisioning.Params) (kPri, kBkp int) {
	k := params.Int("k", defaultK)
	return params.Int("k_pri", k), params.Int("k_bkp", k)
}

// pathLength sums sp's current weights along path.
func pathLength(sp *pathsearch.Scratchpad, path []topology.Link) int {
	total := 0
	for _, e := range path {
		total += sp.Weight(e.Index)
	}
	return total
}

// maskPath sets every link in path to pathsearch.Inf in sp, returning a
// closure that restores the original weights. Used to forbid Yen's
// backup search from reusing any primary link.
func maskPath(sp *pathsearch.Scratchpad, path []topology.Link) func() {
	saved := make([]int, len(path))
	for i, e := range path {
		saved[i] = sp.Weight(e.Index)
		sp.SetWeight(e.Index, pathsearch.Inf)
	}
	return func() {
		for i, e := range path {
			sp.SetWeight(e.Index, saved[i])
		}
	}
}

// firstFitWindow scans bm forward for the first free run of width
// slots, returning its start index or -1.
func firstFitWindow(bm netstate.Bitmap, width int) int {
	return bm.FirstFit(width)
}

// blockedPri builds a blocked Provisioning carrying only the reason and
// requested bandwidth, for the primary-path/spectrum failure cases
// every scheme shares.
func blockedPri(r provisioning.Request, reason netstate.BlockReason) provisioning.Provisioning {
	return provisioning.Provisioning{Bandwidth: r.Bandwidth, State: reason}
}

func blockedBkp(r provisioning.Request, reason netstate.BlockReason) provisioning.Provisioning {
	return provisioning.Provisioning{Bandwidth: r.Bandwidth, State: reason}
}

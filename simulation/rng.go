package simulation

import (
	"math"
	"math/rand"
)

// newRNG returns a deterministic *rand.Rand seeded from seed, following
// the fixed-seed-per-job contract: the same (topology, algorithm,
// parameters, seed) must reproduce the same event sequence regardless
// of which worker runs the job.
func newRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// exponential draws a sample from an exponential distribution with the
// given mean and rounds it to the nearest integer simulated-time unit.
func exponential(r *rand.Rand, mean float64) int64 {
	u := r.Float64()
	for u <= 0 {
		u = r.Float64()
	}
	return int64(math.Round(-mean * math.Log(u)))
}

// uniformSourceDest draws a source in [0, n) and a destination in
// [0, n), distinct from the source, by drawing the destination from
// [0, n-1) and shifting it past the source.
func uniformSourceDest(r *rand.Rand, n int) (src, dst int) {
	src = r.Intn(n)
	dst = r.Intn(n - 1)
	if dst >= src {
		dst++
	}
	return src, dst
}

// SlotWidth is the spectral width, in GHz, of a single frequency slot;
// a raw bandwidth demand is converted to slot units by dividing by this
// and rounding up, matching original_source/Simulation.cpp's SLOT_WIDTH.
const SlotWidth = 12.5

// uniformBandwidth draws a raw bandwidth demand in [min, max] inclusive
// and converts it to the number of frequency slots it needs by
// ceil(bw / SlotWidth), the unit modulation.SlotsNeeded expects.
func uniformBandwidth(r *rand.Rand, min, max int) int {
	raw := min
	if max > min {
		raw = min + r.Intn(max-min+1)
	}
	return int(math.Ceil(float64(raw) / SlotWidth))
}

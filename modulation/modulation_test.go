package modulation_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eonsim/simulator/modulation"
)

func TestChoose_PicksMostEfficientWithinReach(t *testing.T) {
	require.Equal(t, modulation.QAM64, modulation.Choose(25))
	require.Equal(t, modulation.QAM32, modulation.Choose(26))
	require.Equal(t, modulation.BPSK, modulation.Choose(800))
}

func TestChoose_NoneBeyondLongestReach(t *testing.T) {
	require.Equal(t, modulation.None, modulation.Choose(801))
}

func TestSlotsNeeded_RoundsUpAndAddsGuardBand(t *testing.T) {
	// QPSK carries 2 bits/symbol; bw=10 -> 5 symbols exactly.
	require.Equal(t, modulation.GuardBand+5, modulation.SlotsNeeded(10, modulation.QPSK))
	// bw=11 does not divide evenly -> rounds up to 6 symbols.
	require.Equal(t, modulation.GuardBand+6, modulation.SlotsNeeded(11, modulation.QPSK))
}

func TestBitsPerSymbol_NoneIsZero(t *testing.T) {
	require.Equal(t, 0, modulation.BitsPerSymbol(modulation.None))
}

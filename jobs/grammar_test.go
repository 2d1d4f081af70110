package jobs_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eonsim/simulator/jobs"
)

func TestParseOptions_DegenerateAndSteppedRanges(t *testing.T) {
	params, err := jobs.ParseOptions("k=4, load=150:10:210")
	require.NoError(t, err)
	require.Len(t, params, 2)
	require.Equal(t, "k", params[0].Name)
	require.Equal(t, jobs.Range{Min: 4, Max: 4, Step: 1}, params[0].Range)
	require.Equal(t, "load", params[1].Name)
	require.Equal(t, 7, params[1].Range.Count())
}

func TestParseOptions_EmptyStringYieldsNoParams(t *testing.T) {
	params, err := jobs.ParseOptions("")
	require.NoError(t, err)
	require.Nil(t, params)
}

func TestParseOptions_MalformedInputReportsColumn(t *testing.T) {
	_, err := jobs.ParseOptions("k=")
	require.Error(t, err)
	var parseErr *jobs.ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestParseAlgs_EntryWithOptionsAndWithout(t *testing.T) {
	entries, err := jobs.ParseAlgs("ff, ksq(c1=880, mode=3)")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, "ff", entries[0].Name)
	require.Empty(t, entries[0].Params)
	require.Equal(t, "ksq", entries[1].Name)
	require.Len(t, entries[1].Params, 2)
	require.Equal(t, "c1", entries[1].Params[0].Name)
}

func TestParseAlgs_UnterminatedParenIsAnError(t *testing.T) {
	_, err := jobs.ParseAlgs("ff(k=4")
	require.Error(t, err)
}

func TestParseAlgs_WhitespaceBetweenTokensIsAllowed(t *testing.T) {
	entries, err := jobs.ParseAlgs("  ff ( k = 4 ) ,  mfsb  ")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, 4.0, entries[0].Params[0].Range.Min)
}

package biopatml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEndToEndMotifScan(t *testing.T) {
	seq, err := NewSequence("ACGTACGT")
	require.NoError(t, err)

	motif, err := NewMotif(DNA, "ACGT", 1.0)
	require.NoError(t, err)

	pos, ok := Locate(seq, motif)
	require.True(t, ok)
	assert.Equal(t, 0, pos)
	assert.Equal(t, []int{0, 4}, LocateAll(seq, motif))

	absent, err := NewMotif(DNA, "TTTT", 1.0)
	require.NoError(t, err)
	assert.False(t, Exists(seq, absent))
}

func TestEndToEndMinusStrandScan(t *testing.T) {
	seq, err := NewSequenceWithID("TTGAATTCTT", "plasmid-1")
	require.NoError(t, err)

	// EcoRI's site is palindromic, so it shows up at the mirrored
	// offset on the reverse complement.
	ecoRI, err := NewMotif(DNA, "GAATTC", 1.0)
	require.NoError(t, err)

	plus, ok := Locate(seq, ecoRI)
	require.True(t, ok)

	rc, err := seq.ReverseComplement()
	require.NoError(t, err)
	minus, ok := Locate(rc, ecoRI)
	require.True(t, ok)

	assert.Equal(t, 2, plus)
	assert.Equal(t, 2, minus)
}

func TestEndToEndCompositeScan(t *testing.T) {
	seq, err := NewSequence("CCGATTACGC")
	require.NoError(t, err)

	ga, err := NewMotif(DNA, "GA", 1.0)
	require.NoError(t, err)
	cg, err := NewMotif(DNA, "CG", 1.0)
	require.NoError(t, err)
	gap, err := NewGap(1, 3)
	require.NoError(t, err)

	series, err := NewSeries([]*Motif{ga, cg}, []Gap{gap})
	require.NoError(t, err)

	pos, ok := Locate(seq, series)
	require.True(t, ok)
	assert.Equal(t, 2, pos)

	prosite, err := NewProsite("GA-x-T")
	require.NoError(t, err)
	assert.True(t, Exists(seq, prosite))
}

func TestVersionAndInfo(t *testing.T) {
	assert.Equal(t, "1.0.0", Version())
	assert.Contains(t, Info(), Version())
	assert.Contains(t, Info(), "BioPatML")
}

package netsimplex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitBasisZeroNodes(t *testing.T) {
	s, err := New(0, []float64{}, nil, nil)
	require.NoError(t, err)

	s.initBasis()
	assert.Equal(t, 1, s.succNum[s.root])
	assert.Equal(t, s.root, s.thread[s.root])
	assert.Equal(t, s.root, s.revThread[s.root])
}

func TestInitBasisAllSupplySources(t *testing.T) {
	// A degenerate all-zero-supply instance: every artificial arc is a
	// zero-flow source arc, and the basis should still satisfy every
	// invariant immediately.
	n := 3
	s, err := New(n, make([]float64, n), nil, nil)
	require.NoError(t, err)

	s.initBasis()
	for u := 0; u < n; u++ {
		assert.True(t, s.forward[u])
		assert.Equal(t, 0.0, s.arcFlow[s.artificialArc(u)])
		assert.Equal(t, 0.0, s.pi[u])
	}
}

func TestInitBasisMixedSupplyDemandPotentials(t *testing.T) {
	s, err := New(2, []float64{4, -4}, nil, nil)
	require.NoError(t, err)

	s.initBasis()

	assert.True(t, s.forward[0])
	assert.Equal(t, 0.0, s.pi[0])
	assert.Equal(t, 4.0, s.arcFlow[s.artificialArc(0)])

	assert.False(t, s.forward[1])
	assert.Equal(t, s.options.ArtCost, s.pi[1])
	assert.Equal(t, 4.0, s.arcFlow[s.artificialArc(1)])

	for u := 0; u <= s.n; u++ {
		assert.Equal(t, u, s.revThread[s.thread[u]])
	}
}

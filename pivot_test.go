package netsimplex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSideCoeff(t *testing.T) {
	cases := []struct {
		name    string
		forward bool
		state   ArcState
		source  bool
		want    float64
	}{
		{"source_forward_lower", true, Lower, true, -1},
		{"source_backward_lower", false, Lower, true, 1},
		{"source_forward_upper", true, Upper, true, 1},
		{"target_forward_lower", true, Lower, false, 1},
		{"target_backward_lower", false, Lower, false, -1},
		{"target_forward_upper", true, Upper, false, -1},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sideCoeff(tt.forward, tt.state, tt.source))
		})
	}
}

func TestResidualForPositiveAndNegativeCoeff(t *testing.T) {
	s, err := New(2, []float64{1, -1}, []Arc{{Source: 0, Target: 1, Cost: 1, Capacity: 10}}, nil)
	require.NoError(t, err)
	s.arcFlow[0] = 4

	assert.InDelta(t, 6.0, s.residualFor(0, 1), 1e-9, "positive coeff uses capacity-flow")
	assert.InDelta(t, 4.0, s.residualFor(0, -1), 1e-9, "negative coeff uses flow")
}

// TestPlanPivotArtificialBindsBeforeEnteringArcCapacity exercises the
// non-degenerate branch: an artificial arc's smaller residual, not the
// entering arc's own (larger) capacity, determines delta and the leaving
// arc, so the entering arc joins the tree at less than full capacity.
func TestPlanPivotArtificialBindsBeforeEnteringArcCapacity(t *testing.T) {
	s, err := New(3, []float64{1, 0, -1}, []Arc{
		{Source: 0, Target: 1, Cost: 1, Capacity: 5},
		{Source: 1, Target: 2, Cost: 1, Capacity: Inf},
	}, nil)
	require.NoError(t, err)
	s.initBasis()

	join := s.findJoin(0, 1)
	plan := s.planPivot(0, join)

	assert.False(t, plan.degenerate)
	assert.InDelta(t, 1.0, plan.delta, 1e-9)
	assert.Equal(t, s.artificialArc(0), plan.leavingArc)
	assert.Equal(t, 0, plan.uIn)
	assert.Equal(t, 1, plan.vIn)
}

// TestPlanPivotDegenerateWhenEnteringArcOwnBoundWins checks the
// degenerate branch: a capacitated entering arc whose own capacity is the
// tightest bound flips state without leaving any tree arc.
func TestPlanPivotDegenerateWhenEnteringArcOwnBoundWins(t *testing.T) {
	s, err := New(2, []float64{5, -5}, []Arc{
		{Source: 0, Target: 1, Cost: 1, Capacity: 2},
	}, nil)
	require.NoError(t, err)
	s.initBasis()

	join := s.findJoin(0, 1)
	plan := s.planPivot(0, join)
	assert.True(t, plan.degenerate)
	assert.InDelta(t, 2.0, plan.delta, 1e-9)
}

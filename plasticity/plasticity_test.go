package plasticity

import (
	"testing"

	"github.com/SynapticNetworks/snn-engine/fixedpoint"
	"github.com/stretchr/testify/require"
)

func TestDefaultParams(t *testing.T) {
	s := DefaultQuantizedSTDP()
	require.InDelta(t, 0.01, fixedpoint.ToFloat(s.APlus), 1e-4)
	require.InDelta(t, 0.012, fixedpoint.ToFloat(s.AMinus), 1e-4)
	require.InDelta(t, 0.96, fixedpoint.ToFloat(s.AlphaPre), 1e-4)
	require.InDelta(t, 0.96, fixedpoint.ToFloat(s.AlphaPost), 1e-4)
}

func TestDecayOnZeroTracesIsNoop(t *testing.T) {
	s := DefaultQuantizedSTDP()
	s.Decay()
	pre, post := s.Traces(0)
	require.EqualValues(t, 0, pre)
	require.EqualValues(t, 0, post)
}

func TestTracesIncreaseAndDecay(t *testing.T) {
	s := DefaultQuantizedSTDP()
	s.OnPreSpike(5, 0)
	s.OnPostSpike(5, 0)

	pre0, post0 := s.Traces(5)
	require.GreaterOrEqual(t, pre0, fixedpoint.FromFloat(1.0))
	require.GreaterOrEqual(t, post0, fixedpoint.FromFloat(1.0))

	s.Decay()
	pre1, post1 := s.Traces(5)
	require.LessOrEqual(t, pre1, pre0)
	require.LessOrEqual(t, post1, post0)
}

func TestClampBounds(t *testing.T) {
	s := NewQuantizedSTDP(1.0, 0.0, 1.0, 1.0, 0.25, 0.75)
	w := fixedpoint.FromFloat(0.7)
	s.OnPreSpike(0, 0)
	s.ApplyEdge(0, 1, &w)
	require.InDelta(t, 0.75, fixedpoint.ToFloat(w), 1e-3)
}

func TestClampLowerBound(t *testing.T) {
	s := NewQuantizedSTDP(0.0, 1.0, 1.0, 1.0, 0.25, 0.75)
	w := fixedpoint.FromFloat(0.3)
	s.OnPostSpike(1, 0)
	s.ApplyEdge(0, 1, &w)
	require.InDelta(t, 0.25, fixedpoint.ToFloat(w), 1e-3)
}

func TestUnobservedNeuronTracesAreZero(t *testing.T) {
	s := DefaultQuantizedSTDP()
	pre, post := s.Traces(42)
	require.EqualValues(t, 0, pre)
	require.EqualValues(t, 0, post)
}

package neuron

import (
	"testing"

	"github.com/SynapticNetworks/snn-engine/fixedpoint"
	"github.com/stretchr/testify/require"
)

func TestFiresAtThreshold(t *testing.T) {
	n := New(0, 1.0)
	fired := n.Inject(fixedpoint.FromFloat(1.0), 0)
	require.True(t, fired)
	require.EqualValues(t, 0, n.Membrane)
}

func TestAccumulatesBelowThreshold(t *testing.T) {
	n := New(0, 1.0)
	fired := n.Inject(fixedpoint.FromFloat(0.6), 0)
	require.False(t, fired)
	fired = n.Inject(fixedpoint.FromFloat(0.3), 1)
	require.False(t, fired)
	require.InDelta(t, 0.9, fixedpoint.ToFloat(n.Membrane), 1e-3)
}

func TestMembraneResetsOnFire(t *testing.T) {
	n := New(0, 1.0)
	n.Inject(fixedpoint.FromFloat(1.5), 0)
	require.EqualValues(t, 0, n.Membrane)
}

func TestRefractorySuppressesFireAndMutation(t *testing.T) {
	n := New(0, 1.0)
	n.RefractoryUntil = 10
	before := n.Membrane
	fired := n.Inject(fixedpoint.FromFloat(5.0), 5)
	require.False(t, fired)
	require.Equal(t, before, n.Membrane, "refractory inject must not mutate membrane")
}

func TestRefractoryBoundaryAllowsExactTick(t *testing.T) {
	n := New(0, 1.0)
	n.RefractoryUntil = 10
	fired := n.Inject(fixedpoint.FromFloat(1.0), 10)
	require.True(t, fired)
}

func TestNegativeMembraneNeverFiresOrClamps(t *testing.T) {
	n := New(0, 1.0)
	fired := n.Inject(fixedpoint.FromFloat(-5.0), 0)
	require.False(t, fired)
	require.InDelta(t, -5.0, fixedpoint.ToFloat(n.Membrane), 1e-3)
}

func TestRefractoryNotAdvancedByDefault(t *testing.T) {
	n := New(0, 1.0)
	n.Inject(fixedpoint.FromFloat(1.0), 0)
	require.EqualValues(t, 0, n.RefractoryUntil, "default Inject never advances RefractoryUntil on fire")
}

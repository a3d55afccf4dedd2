/*
Package neuron implements the integrate-and-fire cell at the core of the
engine: a membrane potential accumulator that fires when it crosses a
threshold and resets to zero.

This is a deliberate simplification relative to earlier designs's
continuous-time, multi-compartment, chemically-gated neuron model: no leak
current, no dendritic compartments, no ion channel kinetics. The hard
engineering here is in the scheduler and delivery pipeline (see package
runtime), not in neuron biophysics.
*/
package neuron

import "github.com/SynapticNetworks/snn-engine/fixedpoint"

// Neuron holds integrate-and-fire state for a single cell. Id equals the
// cell's index in the runtime's neuron table; the runtime is responsible
// for that invariant, not this package.
type Neuron struct {
	ID              uint32
	Membrane        fixedpoint.Fixed
	Threshold       fixedpoint.Fixed
	RefractoryUntil uint64
}

// New constructs a Neuron with the given id and a threshold converted from
// a human-supplied float into Q16.16. Membrane starts at 0; RefractoryUntil
// starts at 0 (never refractory until something sets it forward).
func New(id uint32, threshold float32) *Neuron {
	return &Neuron{
		ID:        id,
		Threshold: fixedpoint.FromFloat(threshold),
	}
}

// Inject delivers a fixed-point input to the neuron at the given tick.
//
//  1. If time is before RefractoryUntil, the neuron is still refractory:
//     return false without touching Membrane at all.
//  2. Otherwise saturating-add input into Membrane.
//  3. If Membrane has crossed Threshold, reset Membrane to 0 and report a
//     fire. Otherwise report no fire.
//
// Refractory advancement on fire is opt-in: Inject never sets
// RefractoryUntil itself. A caller that wants a fixed refractory horizon
// sets n.RefractoryUntil = time + k after a fire is reported.
//
// A negative membrane (from inhibitory weights) never fires and is never
// clamped — it is well-defined, ordinary state.
func (n *Neuron) Inject(input fixedpoint.Fixed, time uint64) bool {
	if time < n.RefractoryUntil {
		return false
	}

	n.Membrane = fixedpoint.AddSat(n.Membrane, input)

	if n.Membrane >= n.Threshold {
		n.Membrane = 0
		return true
	}
	return false
}

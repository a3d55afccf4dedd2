/*
Package hyperedge defines the many-to-many, weighted, delayed connection
that the runtime routes spikes across: a HyperEdge carries one weight and
one integer delay, but fans the same weighted input out to every target
whenever any one of its sources fires.

This generalizes earlier designs's pairwise Synapse (one pre neuron,
one post neuron, elaborate vesicle/receptor chemistry) down to the
hypergraph shape the engine requires, dropping the chemical release
machinery that has no place in a fixed-point, delay-line connection.
*/
package hyperedge

import "github.com/SynapticNetworks/snn-engine/fixedpoint"

// HyperEdge connects a non-empty set of source neuron ids to a non-empty
// set of target neuron ids. Id equals the edge's index in the runtime's
// edge table. Weight is Q16.16; Delay is in ticks.
//
// Delay == 0 is rejected by runtime.AddEdge at construction time: with
// delay 0, a spike induced this tick would be scheduled into the bucket
// the wheel has already advanced past, and would not actually resurface
// until a full wheel revolution later.
type HyperEdge struct {
	ID      uint32
	Sources []uint32
	Targets []uint32
	Weight  fixedpoint.Fixed
	Delay   uint64
}

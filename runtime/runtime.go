/*
Package runtime owns the network — neurons, hyperedges, the time wheel, the
source-neuron-to-outgoing-edge adjacency index, and an optional installed
plasticity rule — and exposes construction plus the budgeted per-tick
delivery pipeline.

This is the engine's "hard engineering" package : the Runtime
ties fixedpoint, timewheel, neuron, hyperedge, and plasticity together the
way earlier designs's Matrix/component-callback layer ties neuron and
synapse together, but single-threaded and synchronous — one StepOnce call
runs to completion (or to budget exhaustion) before returning, with no
internal goroutines and no locks, because there is no concurrent mutation
to guard against .
*/
package runtime

import (
	"github.com/SynapticNetworks/snn-engine/fixedpoint"
	"github.com/SynapticNetworks/snn-engine/hyperedge"
	"github.com/SynapticNetworks/snn-engine/neuron"
	"github.com/SynapticNetworks/snn-engine/plasticity"
	"github.com/SynapticNetworks/snn-engine/timewheel"
)

// Runtime owns the entire simulated network.
type Runtime struct {
	neurons []*neuron.Neuron
	edges   []*hyperedge.HyperEdge
	wheel   *timewheel.TimeWheel

	// adjacency[s] lists, in append order, the ids of edges whose Sources
	// includes neuron id s. Rebuilt wholesale by RebuildAdjacency; kept
	// incrementally in sync by AddNeuron/AddEdge otherwise.
	adjacency [][]uint32

	plasticity plasticity.Rule
	budgets    StepBudgets

	// lastEdgeVisits/lastSpikesScheduled record the previous StepOnce call's
	// counts, for callers (telemetry) that want per-tick detail beyond the
	// returned spike slice without the core importing a metrics library.
	lastEdgeVisits      int
	lastSpikesScheduled int
}

// New constructs an empty Runtime around a time wheel of the given size.
// wheelSize == 0 is an invalid configuration and returns ErrInvalidInput —
// the wheel itself never fails at runtime, only at construction.
func New(wheelSize uint64) (*Runtime, error) {
	if wheelSize == 0 {
		return nil, ErrInvalidInput
	}
	return &Runtime{
		wheel: timewheel.New(wheelSize),
	}, nil
}

// AddNeuron appends a neuron with the given float threshold (converted to
// Q16.16) and returns its id, which equals its index in the neuron table.
// Adjacency grows by one empty row.
func (r *Runtime) AddNeuron(threshold float32) uint32 {
	id := uint32(len(r.neurons))
	r.neurons = append(r.neurons, neuron.New(id, threshold))
	r.adjacency = append(r.adjacency, nil)
	return id
}

// AddEdge appends a hyperedge with the given sources, targets, float
// weight (converted to Q16.16), and integer delay, returning its id (its
// index in the edge table). For each source s, the new edge id is
// appended to adjacency[s], growing adjacency as needed.
//
// Returns ErrInvalidInput if sources or targets is empty, or if delay == 0
// (see hyperedge.HyperEdge's doc comment for why delay 0 is rejected
// rather than silently accepted).
func (r *Runtime) AddEdge(sources, targets []uint32, weight float32, delay uint64) (uint32, error) {
	if len(sources) == 0 || len(targets) == 0 {
		return 0, ErrInvalidInput
	}
	if delay == 0 {
		return 0, ErrInvalidInput
	}

	id := uint32(len(r.edges))
	r.edges = append(r.edges, &hyperedge.HyperEdge{
		ID:      id,
		Sources: sources,
		Targets: targets,
		Weight:  fixedpoint.FromFloat(weight),
		Delay:   delay,
	})

	for _, s := range sources {
		r.ensureAdjacencyCapacity(s)
		r.adjacency[s] = append(r.adjacency[s], id)
	}
	return id, nil
}

func (r *Runtime) ensureAdjacencyCapacity(neuronID uint32) {
	need := int(neuronID) + 1
	for len(r.adjacency) < need {
		r.adjacency = append(r.adjacency, nil)
	}
}

// RebuildAdjacency discards and recomputes the entire adjacency index from
// the current edge table. Used when the runtime's neuron/edge tables were
// populated through some path other than AddNeuron/AddEdge (e.g. restored
// from an external source). Idempotent: calling it twice with unchanged
// edges yields an equal index.
func (r *Runtime) RebuildAdjacency() {
	adj := make([][]uint32, len(r.neurons))
	for _, edge := range r.edges {
		for _, s := range edge.Sources {
			if int(s) < len(adj) {
				adj[s] = append(adj[s], edge.ID)
			}
		}
	}
	r.adjacency = adj
}

// Neurons returns the neuron table. Callers may mutate returned Neuron
// values directly (e.g. to seed membrane state or refractory horizons);
// the slice itself should not be reordered, as ids are positional.
func (r *Runtime) Neurons() []*neuron.Neuron {
	return r.neurons
}

// Edges returns the edge table, same mutability contract as Neurons.
func (r *Runtime) Edges() []*hyperedge.HyperEdge {
	return r.edges
}

// Adjacency returns the edge ids outgoing from the given source neuron,
// in the order they were appended. Returns nil for an id with no outgoing
// edges or no corresponding row yet.
func (r *Runtime) Adjacency(sourceID uint32) []uint32 {
	if int(sourceID) >= len(r.adjacency) {
		return nil
	}
	return r.adjacency[sourceID]
}

// Wheel returns a mutable handle to the time wheel for direct seeding of
// externally originated spikes at arbitrary future ticks.
func (r *Runtime) Wheel() *timewheel.TimeWheel {
	return r.wheel
}

// NeuronsCount implements the Backend contract's network-size query.
func (r *Runtime) NeuronsCount() int {
	return len(r.neurons)
}

// SetPlasticity installs a plasticity rule, replacing and discarding any
// previously installed rule. The runtime holds at most one.
func (r *Runtime) SetPlasticity(rule plasticity.Rule) {
	r.plasticity = rule
}

// DisablePlasticity removes any installed plasticity rule.
func (r *Runtime) DisablePlasticity() {
	r.plasticity = nil
}

// PlasticityEnabled reports whether a plasticity rule is currently installed.
func (r *Runtime) PlasticityEnabled() bool {
	return r.plasticity != nil
}

// PlasticityParams queries the tunables of the installed plasticity rule.
// Returns ErrNotSupported if no rule is installed, or if the installed rule
// is not a *plasticity.QuantizedSTDP (the only rule this package currently
// exposes a Params snapshot for).
func (r *Runtime) PlasticityParams() (plasticity.Params, error) {
	if r.plasticity == nil {
		return plasticity.Params{}, ErrNotSupported
	}
	q, ok := r.plasticity.(*plasticity.QuantizedSTDP)
	if !ok {
		return plasticity.Params{}, ErrNotSupported
	}
	return q.Params(), nil
}

// SetBudgets sets the budgets Step() applies by default.
func (r *Runtime) SetBudgets(b StepBudgets) {
	r.budgets = b
}

// Budgets returns the budgets Step() currently applies by default.
func (r *Runtime) Budgets() StepBudgets {
	return r.budgets
}

// LastStepStats returns the edge-visit and scheduled-spike counts from the
// most recently completed StepOnce/Step call (0, 0 before the first call).
func (r *Runtime) LastStepStats() (edgeVisits, spikesScheduled int) {
	return r.lastEdgeVisits, r.lastSpikesScheduled
}

// Step implements the Backend contract: advance one tick using the
// runtime's currently configured default budgets (see SetBudgets), and
// return the spikes that occurred at the just-popped tick.
func (r *Runtime) Step() []timewheel.SpikeEvent {
	return r.StepOnce(r.budgets)
}

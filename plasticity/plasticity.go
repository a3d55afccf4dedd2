/*
Package plasticity defines the optional spike-timing-dependent plasticity
(STDP) hook protocol the runtime calls into around its delivery pipeline,
plus a default quantized implementation.

A Rule is a closed capability with four operations: Decay (once per tick,
before delivery), OnPreSpike/OnPostSpike (as the runtime pops and delivers
events), and ApplyEdge (mutating an edge's weight in place after a target
fires). The runtime holds at most one installed Rule at a time; installing
a new one discards the previous (runtime.SetPlasticity).

This mirrors earlier designs's STDPSignalingSystem/synapse plasticity
split in spirit — timing/delivery separated from the weight-update math —
but collapses both into a single fixed-point hook interface, since the
engine has no separate chemical signaling layer to coordinate with.
*/
package plasticity

import "github.com/SynapticNetworks/snn-engine/fixedpoint"

// Rule is the plasticity capability the runtime drives each tick.
type Rule interface {
	// Decay is called exactly once per tick, before any event delivery.
	Decay()
	// OnPreSpike is called once per popped event, before its edges are walked.
	// Events left after an edge-visit budget trip ends delivery for the tick
	// are not notified.
	OnPreSpike(neuronID uint32, time uint64)
	// OnPostSpike is called once per target that fired as a result of delivery
	// and had its induced spike scheduled. A target that fires after the
	// scheduled-spike budget is spent is not notified.
	OnPostSpike(neuronID uint32, time uint64)
	// ApplyEdge is called immediately after OnPostSpike for the edge that
	// carried the firing input; weight may be mutated in place.
	ApplyEdge(preID, postID uint32, weight *fixedpoint.Fixed)
}

// one is fixedpoint.FromFloat(1.0), used to bump a trace by exactly "1.0"
// on a pre/post spike.
var one = fixedpoint.FromFloat(1.0)

// QuantizedSTDP is the default STDP rule: symmetric, trace-based, with
// saturating arithmetic and clamped weight updates.
//
// Traces decay geometrically each tick (trace *= alpha, alpha in (0,1),
// computed via fixedpoint.Mul — no saturation needed there since alpha<1
// can only shrink a non-negative trace). A pre-spike bumps that neuron's
// pre-trace by 1.0 (saturating); a post-spike bumps its post-trace the
// same way. ApplyEdge computes LTP from the pre-trace and LTD from the
// post-trace, adds/subtracts with saturation, and clamps to [WMin, WMax].
type QuantizedSTDP struct {
	APlus, AMinus       fixedpoint.Fixed
	AlphaPre, AlphaPost fixedpoint.Fixed
	WMin, WMax          fixedpoint.Fixed

	preTrace  []fixedpoint.Fixed
	postTrace []fixedpoint.Fixed
}

// NewQuantizedSTDP builds a rule from float parameters, converting each to
// Q16.16. Traces start empty and grow lazily as neuron ids are observed.
func NewQuantizedSTDP(aPlus, aMinus, alphaPre, alphaPost, wMin, wMax float32) *QuantizedSTDP {
	return &QuantizedSTDP{
		APlus:     fixedpoint.FromFloat(aPlus),
		AMinus:    fixedpoint.FromFloat(aMinus),
		AlphaPre:  fixedpoint.FromFloat(alphaPre),
		AlphaPost: fixedpoint.FromFloat(alphaPost),
		WMin:      fixedpoint.FromFloat(wMin),
		WMax:      fixedpoint.FromFloat(wMax),
	}
}

// DefaultQuantizedSTDP returns the engine's named default parameters:
// a+ = 0.01, a- = 0.012, alpha_pre = alpha_post = 0.96, w_min = 0.0, w_max = 1.0.
func DefaultQuantizedSTDP() *QuantizedSTDP {
	return NewQuantizedSTDP(0.01, 0.012, 0.96, 0.96, 0.0, 1.0)
}

// Params is a read-only snapshot of a QuantizedSTDP rule's tunables,
// converted back to float32 for display/inspection by a caller that has no
// business mutating the rule directly.
type Params struct {
	APlus, AMinus       float32
	AlphaPre, AlphaPost float32
	WMin, WMax          float32
}

// Params returns s's current tunables as a Params snapshot.
func (s *QuantizedSTDP) Params() Params {
	return Params{
		APlus:     fixedpoint.ToFloat(s.APlus),
		AMinus:    fixedpoint.ToFloat(s.AMinus),
		AlphaPre:  fixedpoint.ToFloat(s.AlphaPre),
		AlphaPost: fixedpoint.ToFloat(s.AlphaPost),
		WMin:      fixedpoint.ToFloat(s.WMin),
		WMax:      fixedpoint.ToFloat(s.WMax),
	}
}

func (s *QuantizedSTDP) ensure(id uint32) {
	need := int(id) + 1
	if len(s.preTrace) < need {
		grown := make([]fixedpoint.Fixed, need)
		copy(grown, s.preTrace)
		s.preTrace = grown
	}
	if len(s.postTrace) < need {
		grown := make([]fixedpoint.Fixed, need)
		copy(grown, s.postTrace)
		s.postTrace = grown
	}
}

// Traces exposes the current pre/post trace for a neuron id, for tests and
// diagnostics. Neurons never observed return (0, 0).
func (s *QuantizedSTDP) Traces(id uint32) (pre, post fixedpoint.Fixed) {
	if int(id) < len(s.preTrace) {
		pre = s.preTrace[id]
	}
	if int(id) < len(s.postTrace) {
		post = s.postTrace[id]
	}
	return pre, post
}

// Decay multiplies every trace by its alpha. A no-op on all-zero traces.
func (s *QuantizedSTDP) Decay() {
	for i, tr := range s.preTrace {
		s.preTrace[i] = fixedpoint.Mul(tr, s.AlphaPre)
	}
	for i, tr := range s.postTrace {
		s.postTrace[i] = fixedpoint.Mul(tr, s.AlphaPost)
	}
}

// OnPreSpike grows the pre-trace vector if needed and saturating-adds 1.0.
func (s *QuantizedSTDP) OnPreSpike(neuronID uint32, _ uint64) {
	s.ensure(neuronID)
	s.preTrace[neuronID] = fixedpoint.AddSat(s.preTrace[neuronID], one)
}

// OnPostSpike is the symmetric counterpart of OnPreSpike for the post-trace.
func (s *QuantizedSTDP) OnPostSpike(neuronID uint32, _ uint64) {
	s.ensure(neuronID)
	s.postTrace[neuronID] = fixedpoint.AddSat(s.postTrace[neuronID], one)
}

// ApplyEdge computes ltp = APlus * preTrace[pre], ltd = AMinus * postTrace[post],
// then w' = clamp(w + ltp - ltd, WMin, WMax), written back through weight.
func (s *QuantizedSTDP) ApplyEdge(preID, postID uint32, weight *fixedpoint.Fixed) {
	s.ensure(preID)
	s.ensure(postID)

	ltp := fixedpoint.Mul(s.APlus, s.preTrace[preID])
	ltd := fixedpoint.Mul(s.AMinus, s.postTrace[postID])

	w := fixedpoint.AddSat(*weight, ltp)
	w = fixedpoint.SubSat(w, ltd)
	w = fixedpoint.Clamp(w, s.WMin, s.WMax)

	*weight = w
}

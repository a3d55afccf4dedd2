/*
This file implements the per-tick delivery pipeline: StepOnce and the
run_until/run_ticks convenience operations built on top of it .
*/
package runtime

import "github.com/SynapticNetworks/snn-engine/timewheel"

// StepOnce advances the simulation by exactly one tick and returns the
// spikes that occurred at that tick — the events popped from the wheel,
// in insertion order. Delivery (scheduling induced spikes at their
// delivery time, notifying plasticity) happens as a side effect; it is
// never reflected in the returned slice, which is always exactly "what
// fired at the tick that just ended."
//
// Algorithm:
//
//  1. If a plasticity rule is installed, call its Decay hook exactly once,
//     before any event processing.
//  2. Pop the current slot (advances current time by one tick internally).
//  3. For each popped event, in order:
//     a. Notify plasticity.OnPreSpike.
//     b. Look up its outgoing edges via the adjacency index; skip if none.
//     c. For each outgoing edge, in append order:
//     - If MaxEdgeVisits is set and already reached, abort delivery for
//     the rest of this tick entirely (the popped events are still
//     returned — only further delivery is skipped).
//     - Inject the edge's weight into each target, in target order.
//     - If a target fires: if MaxSpikesScheduled is set and already
//     reached, the target's injection still happened (membrane state is
//     already mutated) but nothing is scheduled or reported to
//     plasticity; processing continues to the next target/edge.
//     Otherwise schedule the induced spike, notify
//     plasticity.OnPostSpike, then ApplyEdge.
//
// MaxEdgeVisits and MaxSpikesScheduled trip differently on purpose: an
// edge-visit trip halts the whole remaining tick (no further edges are
// even looked at), while a spike-schedule trip only silences further
// scheduling — injections keep happening so membrane state stays correct
// for whatever budget the caller grants next tick.
//
// Budget exhaustion truncates the tick but never retries the skipped work
// later — calls this out explicitly as a deliberate
// best-effort contract, not a bug: budgets bound wall-clock cost, not
// completeness.
func (r *Runtime) StepOnce(budgets StepBudgets) []timewheel.SpikeEvent {
	if r.plasticity != nil {
		r.plasticity.Decay()
	}

	events := r.wheel.NextSlot()

	edgeVisits := 0
	spikesScheduled := 0

eventsLoop:
	for _, ev := range events {
		if r.plasticity != nil {
			r.plasticity.OnPreSpike(ev.NeuronID, ev.Time)
		}

		edgeIDs := r.Adjacency(ev.NeuronID)
		if len(edgeIDs) == 0 {
			continue
		}

		for _, eid := range edgeIDs {
			if budgets.MaxEdgeVisits != nil && edgeVisits >= *budgets.MaxEdgeVisits {
				break eventsLoop
			}
			edgeVisits++

			if int(eid) >= len(r.edges) {
				continue // defensive: malformed adjacency entry, skip rather than abort the tick
			}
			edge := r.edges[eid]

			deliverTime := saturatingAddU64(ev.Time, edge.Delay)

			for _, tgtID := range edge.Targets {
				if int(tgtID) >= len(r.neurons) {
					continue // defensive: malformed target id, skip rather than abort the tick
				}
				target := r.neurons[tgtID]

				fired := target.Inject(edge.Weight, deliverTime)
				if !fired {
					continue
				}

				// A spent spike budget stops further scheduling, not
				// further injection: membrane state for the rest of this
				// tick's targets still updates normally (max_spikes_scheduled=0
				// still delivers every injection, it just never schedules).
				// This differs from MaxEdgeVisits, whose exhaustion aborts
				// the whole tick.
				if budgets.MaxSpikesScheduled != nil && spikesScheduled >= *budgets.MaxSpikesScheduled {
					continue
				}

				r.wheel.Schedule(timewheel.SpikeEvent{NeuronID: tgtID, Time: deliverTime})
				spikesScheduled++

				if r.plasticity != nil {
					r.plasticity.OnPostSpike(tgtID, deliverTime)
					r.plasticity.ApplyEdge(ev.NeuronID, tgtID, &edge.Weight)
				}
			}
		}
	}

	r.lastEdgeVisits = edgeVisits
	r.lastSpikesScheduled = spikesScheduled
	return events
}

func saturatingAddU64(a, b uint64) uint64 {
	sum := a + b
	if sum < a {
		return ^uint64(0)
	}
	return sum
}

// RunUntil repeats StepOnce with no budgets while CurrentTime() <= until.
func (r *Runtime) RunUntil(until uint64) {
	for r.wheel.CurrentTime() <= until {
		r.StepOnce(NoBudgets)
	}
}

// RunTicks runs RunUntil(CurrentTime() + n), with a saturating add so an n
// that would overflow just runs to the maximum representable tick.
func (r *Runtime) RunTicks(n uint64) {
	until := saturatingAddU64(r.wheel.CurrentTime(), n)
	r.RunUntil(until)
}

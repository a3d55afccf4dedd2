/*
Package timewheel implements the bounded circular calendar queue that drives
the engine's tick-by-tick advancement: a SpikeEvent scheduled for time t
lands in bucket t mod W, and each call to NextSlot pops the bucket at the
current tick and advances time by exactly one tick.

# Aliasing hazard

Two events with times t1 != t2 where t1 mod W == t2 mod W land in the same
bucket and are delivered together, in the same pop, regardless of how far
apart t1 and t2 actually were. This package does not separate them by time
within a slot — callers choosing W must keep it strictly greater than the
maximum delay + pipeline depth they expect to exercise within one
revolution, or deliberately accept the merged-tick behavior (see the
aliasing test in this package).
*/
package timewheel

// SpikeEvent is a single scheduled delivery: neuron NeuronID is to be
// considered for injection/firing at tick Time.
type SpikeEvent struct {
	NeuronID uint32
	Time     uint64
}

// TimeWheel is a circular array of W slot buckets indexed by time mod W.
type TimeWheel struct {
	buckets     [][]SpikeEvent
	currentTime uint64
	size        uint64
}

// New constructs a TimeWheel with the given number of slots. size must be
// at least 1; construction-time validation of that invariant is the
// caller's responsibility (runtime.New enforces it with an InvalidInput
// error) — this package itself never fails at runtime.
func New(size uint64) *TimeWheel {
	return &TimeWheel{
		buckets: make([][]SpikeEvent, size),
		size:    size,
	}
}

// CurrentTime returns the tick the wheel is currently positioned at — the
// tick the next call to NextSlot will pop.
func (w *TimeWheel) CurrentTime() uint64 {
	return w.currentTime
}

// Size returns the wheel's slot count W.
func (w *TimeWheel) Size() uint64 {
	return w.size
}

// Schedule appends an event to the bucket at event.Time mod W. Constant
// time; events scheduled into the same slot are kept in insertion order,
// which NextSlot preserves on pop.
func (w *TimeWheel) Schedule(event SpikeEvent) {
	slot := event.Time % w.size
	w.buckets[slot] = append(w.buckets[slot], event)
}

// NextSlot takes and clears the bucket at the current tick, advances
// current time by one tick (saturating on uint64 overflow), and returns
// the events that were in that bucket in insertion order.
func (w *TimeWheel) NextSlot() []SpikeEvent {
	slot := w.currentTime % w.size
	events := w.buckets[slot]
	w.buckets[slot] = nil

	if w.currentTime == ^uint64(0) {
		// already at the maximum representable tick; saturate instead of wrapping to 0
	} else {
		w.currentTime++
	}
	return events
}

// Package tapdance provides a multi-tap disambiguation facility.
//
// A Dance counts consecutive presses of one key that land within a tapping
// term of each other. When the term expires with no further press, or when
// another key interrupts the sequence, the finished callback fires once with
// the final tap count, followed by the reset callback.
//
// The facility is host-driven and single-threaded: it owns no timers and no
// goroutines. Deadlines are evaluated when the next event arrives and on
// explicit Tick calls from the host loop. All tick arithmetic is wraparound
// safe.
package tapdance

import "github.com/nikallass/quickesc/internal/hid"

// DefaultTerm is the default tapping term in ticks.
const DefaultTerm uint16 = 500

// Dance tracks the tap count for a single key.
type Dance struct {
	// Term is the tapping term: the maximum gap between presses that still
	// extends the sequence.
	Term uint16

	// OnEachTap fires on every press that joins the sequence, after the
	// count has been incremented.
	OnEachTap func(count int, now uint16)

	// OnFinished fires exactly once per completed sequence with the final
	// tap count.
	OnFinished func(count int, now uint16)

	// OnReset fires after OnFinished, once the sequence state has been
	// cleared.
	OnReset func(now uint16)

	count     int
	active    bool
	lastPress uint16
}

// New creates a dance with the given tapping term. A zero term selects
// DefaultTerm.
func New(term uint16) *Dance {
	if term == 0 {
		term = DefaultTerm
	}
	return &Dance{Term: term}
}

// Count returns the current tap count of the in-flight sequence, or zero.
func (d *Dance) Count() int {
	if !d.active {
		return 0
	}
	return d.count
}

// Active returns true while a sequence is in flight.
func (d *Dance) Active() bool {
	return d.active
}

// Press records a press of the danced key at the given tick. If the previous
// sequence already timed out it is finished first, then a new sequence
// starts.
func (d *Dance) Press(now uint16) {
	if d.active && hid.Elapsed(now, d.lastPress) >= d.Term {
		d.finish(now)
	}

	d.count++
	d.active = true
	d.lastPress = now

	if d.OnEachTap != nil {
		d.OnEachTap(d.count, now)
	}
}

// Tick evaluates the deadline at the given tick. The host loop calls this
// periodically; tests call it directly.
func (d *Dance) Tick(now uint16) {
	if d.active && hid.Elapsed(now, d.lastPress) >= d.Term {
		d.finish(now)
	}
}

// Interrupt finishes the in-flight sequence immediately. The host calls this
// when a different key is pressed mid-sequence.
func (d *Dance) Interrupt(now uint16) {
	if d.active {
		d.finish(now)
	}
}

func (d *Dance) finish(now uint16) {
	count := d.count
	d.count = 0
	d.active = false

	if d.OnFinished != nil {
		d.OnFinished(count, now)
	}
	if d.OnReset != nil {
		d.OnReset(now)
	}
}

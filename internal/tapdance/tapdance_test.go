package tapdance

import "testing"

// record wires all three callbacks into a log for assertions.
type record struct {
	taps     []int
	finished []int
	resets   int
}

func instrument(d *Dance) *record {
	r := &record{}
	d.OnEachTap = func(count int, _ uint16) { r.taps = append(r.taps, count) }
	d.OnFinished = func(count int, _ uint16) { r.finished = append(r.finished, count) }
	d.OnReset = func(_ uint16) { r.resets++ }
	return r
}

func TestSingleTapFinishesAfterTerm(t *testing.T) {
	d := New(500)
	r := instrument(d)

	d.Press(100)
	if d.Count() != 1 {
		t.Fatalf("Count() = %d, want 1", d.Count())
	}

	d.Tick(400) // term not yet elapsed
	if len(r.finished) != 0 {
		t.Fatal("finished fired before the term elapsed")
	}

	d.Tick(600)
	if len(r.finished) != 1 || r.finished[0] != 1 {
		t.Fatalf("finished = %v, want [1]", r.finished)
	}
	if r.resets != 1 {
		t.Errorf("resets = %d, want 1", r.resets)
	}
	if d.Active() {
		t.Error("dance should be inactive after finish")
	}
}

func TestDoubleTapCounts(t *testing.T) {
	d := New(500)
	r := instrument(d)

	d.Press(100)
	d.Press(300)
	d.Tick(900)

	if len(r.finished) != 1 || r.finished[0] != 2 {
		t.Fatalf("finished = %v, want [2]", r.finished)
	}
	if got := r.taps; len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Errorf("taps = %v, want [1 2]", got)
	}
}

func TestLatePressStartsNewSequence(t *testing.T) {
	d := New(500)
	r := instrument(d)

	d.Press(100)
	// No Tick ran in between: the stale sequence is finished lazily.
	d.Press(1000)

	if len(r.finished) != 1 || r.finished[0] != 1 {
		t.Fatalf("finished = %v, want [1]", r.finished)
	}
	if d.Count() != 1 {
		t.Errorf("new sequence Count() = %d, want 1", d.Count())
	}
}

func TestInterruptFinishesImmediately(t *testing.T) {
	d := New(500)
	r := instrument(d)

	d.Press(100)
	d.Press(200)
	d.Interrupt(250)

	if len(r.finished) != 1 || r.finished[0] != 2 {
		t.Fatalf("finished = %v, want [2]", r.finished)
	}

	d.Interrupt(300) // idle interrupt is a no-op
	if len(r.finished) != 1 || r.resets != 1 {
		t.Error("interrupting an idle dance must not fire callbacks")
	}
}

func TestTickAcrossWraparound(t *testing.T) {
	d := New(500)
	r := instrument(d)

	d.Press(65400)
	d.Tick(65500)
	if len(r.finished) != 0 {
		t.Fatal("finished fired 100 ticks into the term")
	}

	d.Tick(400) // 536 ticks after the press, counter wrapped
	if len(r.finished) != 1 {
		t.Fatal("finished should fire after the term despite wraparound")
	}
}

func TestZeroTermUsesDefault(t *testing.T) {
	d := New(0)
	if d.Term != DefaultTerm {
		t.Errorf("Term = %d, want %d", d.Term, DefaultTerm)
	}
}

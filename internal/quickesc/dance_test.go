package quickesc

import (
	"testing"

	"github.com/nikallass/quickesc/internal/hid"
	"github.com/nikallass/quickesc/internal/host"
	"github.com/nikallass/quickesc/internal/tapdance"
)

func TestDanceLoneTapEmitsEscapeOnTerm(t *testing.T) {
	r := host.NewRecorder()
	r.SetTime(2000)
	d := NewDance(r, 0)

	if got := d.Handle(pressQuickEsc(r)); got != Consumed {
		t.Fatalf("Handle() = %v, want consumed", got)
	}
	if len(r.Taps()) != 0 {
		t.Fatal("a lone press must stay undecided until the term expires")
	}

	r.Advance(tapdance.DefaultTerm)
	d.Tick(r.TimerRead())

	taps := r.Taps()
	if len(taps) != 1 || taps[0].Keycode != hid.KeycodeEscape {
		t.Fatalf("taps = %v, want one escape", taps)
	}
}

func TestDanceDoubleTapEmitsTwoGraves(t *testing.T) {
	r := host.NewRecorder()
	r.SetTime(2000)
	d := NewDance(r, 0)

	d.Handle(pressQuickEsc(r))
	r.Advance(200)
	d.Handle(pressQuickEsc(r))

	taps := r.Taps()
	if len(taps) != 2 {
		t.Fatalf("got %d taps, want 2 (the first of the pair is emitted retroactively): %v", len(taps), taps)
	}
	for i, tap := range taps {
		if tap.Keycode != hid.KeycodeGrave {
			t.Errorf("tap %d = %v, want grave", i, tap.Keycode)
		}
	}
	if !d.GraveMode() {
		t.Error("double tap should latch grave mode")
	}

	// A third press inside the window is one more grave.
	r.Advance(300)
	d.Handle(pressQuickEsc(r))
	if taps := r.Taps(); len(taps) != 3 || taps[2].Keycode != hid.KeycodeGrave {
		t.Errorf("taps = %v, want a third grave", taps)
	}
}

func TestDanceGraveModeExpiresViaReset(t *testing.T) {
	r := host.NewRecorder()
	r.SetTime(2000)
	d := NewDance(r, 0)

	d.Handle(pressQuickEsc(r))
	r.Advance(200)
	d.Handle(pressQuickEsc(r))
	r.Clear()

	r.Advance(tapdance.DefaultTerm)
	d.Tick(r.TimerRead())
	if d.GraveMode() {
		t.Fatal("reset after the term should clear the latch")
	}

	// The next lone tap re-evaluates from scratch and lands on Escape.
	r.Advance(100)
	d.Handle(pressQuickEsc(r))
	r.Advance(tapdance.DefaultTerm)
	d.Tick(r.TimerRead())

	taps := r.Taps()
	if len(taps) != 1 || taps[0].Keycode != hid.KeycodeEscape {
		t.Fatalf("taps = %v, want one escape", taps)
	}
}

func TestDanceStalePressReevaluatedWithoutTick(t *testing.T) {
	r := host.NewRecorder()
	r.SetTime(2000)
	d := NewDance(r, 0)

	d.Handle(pressQuickEsc(r))
	r.Advance(200)
	d.Handle(pressQuickEsc(r)) // grave mode latched
	r.Clear()

	// No Tick ran; the next press arrives after the term and finishes the
	// stale sequence lazily, which also drops the latch.
	r.Advance(tapdance.DefaultTerm + 100)
	d.Handle(pressQuickEsc(r))
	if d.GraveMode() {
		t.Error("stale sequence should drop the latch when finished lazily")
	}
	if len(r.Taps()) != 0 {
		t.Errorf("taps = %v, want none until the new tap resolves", r.Taps())
	}

	r.Advance(tapdance.DefaultTerm)
	d.Tick(r.TimerRead())
	taps := r.Taps()
	if len(taps) != 1 || taps[0].Keycode != hid.KeycodeEscape {
		t.Fatalf("taps = %v, want one escape", taps)
	}
}

func TestDanceGraveModeExpiresAfterInterrupt(t *testing.T) {
	r := host.NewRecorder()
	r.SetTime(2000)
	d := NewDance(r, 0)

	d.Handle(pressQuickEsc(r))
	r.Advance(200)
	d.Handle(pressQuickEsc(r)) // grave mode latched

	// Another key inside the term finishes the dance while the latch is
	// still armed, so nothing is left running to re-check the timeout.
	r.Advance(100)
	d.Handle(hid.NewPress(hid.KeycodeA, r.TimerRead()))
	r.Clear()

	// A long idle stretch with regular ticks must not keep the latch alive.
	for i := 0; i < 20; i++ {
		r.Advance(tapdance.DefaultTerm)
		d.Tick(r.TimerRead())
	}
	if d.GraveMode() {
		t.Fatal("latch survived the timeout with no dance running")
	}

	// The next press is a fresh tap and resolves to Escape, not Grave.
	d.Handle(pressQuickEsc(r))
	r.Advance(tapdance.DefaultTerm)
	d.Tick(r.TimerRead())

	taps := r.Taps()
	if len(taps) != 1 || taps[0].Keycode != hid.KeycodeEscape {
		t.Fatalf("press long after the timeout emitted %v, want one escape", taps)
	}
}

func TestDanceStaleLatchDropsAtPressWithoutTick(t *testing.T) {
	r := host.NewRecorder()
	r.SetTime(2000)
	d := NewDance(r, 0)

	d.Handle(pressQuickEsc(r))
	r.Advance(200)
	d.Handle(pressQuickEsc(r))
	r.Advance(100)
	d.Handle(hid.NewPress(hid.KeycodeA, r.TimerRead())) // finishes the dance
	r.Clear()

	// No ticks at all: the expiry must also happen at press time.
	r.Advance(3 * tapdance.DefaultTerm)
	d.Handle(pressQuickEsc(r))
	if d.GraveMode() {
		t.Error("press after the term should drop the latch")
	}
	if len(r.Taps()) != 0 {
		t.Errorf("taps = %v, want none until the fresh tap resolves", r.Taps())
	}

	r.Advance(tapdance.DefaultTerm)
	d.Tick(r.TimerRead())
	taps := r.Taps()
	if len(taps) != 1 || taps[0].Keycode != hid.KeycodeEscape {
		t.Fatalf("taps = %v, want one escape", taps)
	}
}

func TestDanceModifierRules(t *testing.T) {
	tests := []struct {
		name    string
		held    hid.Modifier
		wantTap hid.Report
	}{
		{"gui+shift", hid.ModGui | hid.ModShift, hid.Report{Kind: hid.ReportTap, Keycode: hid.KeycodeGrave, Mods: hid.ModGui | hid.ModShift}},
		{"shift only", hid.ModShift, hid.Report{Kind: hid.ReportTap, Keycode: hid.KeycodeGrave}},
		{"alt only", hid.ModAlt, hid.Report{Kind: hid.ReportTap, Keycode: hid.KeycodeGrave, Mods: hid.ModShift}},
		{"gui only", hid.ModGui, hid.Report{Kind: hid.ReportTap, Keycode: hid.KeycodeGrave, Mods: hid.ModGui}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := host.NewRecorder()
			r.SetTime(2000)
			r.RegisterMods(tt.held)
			r.Clear()
			d := NewDance(r, 0)

			if got := d.Handle(pressQuickEsc(r)); got != Consumed {
				t.Fatalf("Handle() = %v, want consumed", got)
			}
			taps := r.Taps()
			if len(taps) != 1 || taps[0] != tt.wantTap {
				t.Fatalf("taps = %v, want [%v]", taps, tt.wantTap)
			}
			if r.Mods() != tt.held {
				t.Errorf("mods after = %v, want %v", r.Mods(), tt.held)
			}
			if d.dance.Active() {
				t.Error("modifier combinations must not start a tap sequence")
			}
		})
	}
}

func TestDanceInterruptedByOtherKey(t *testing.T) {
	r := host.NewRecorder()
	r.SetTime(2000)
	d := NewDance(r, 0)

	d.Handle(pressQuickEsc(r))
	r.Advance(100)

	if got := d.Handle(hid.NewPress(hid.KeycodeA, r.TimerRead())); got != PassThrough {
		t.Fatalf("Handle(other key) = %v, want pass_through", got)
	}

	// The pending lone tap resolved to Escape before the other key.
	taps := r.Taps()
	if len(taps) != 1 || taps[0].Keycode != hid.KeycodeEscape {
		t.Fatalf("taps = %v, want one escape", taps)
	}
}

func TestDanceReleaseEmitsNothing(t *testing.T) {
	r := host.NewRecorder()
	r.SetTime(2000)
	d := NewDance(r, 0)

	if got := d.Handle(hid.NewRelease(hid.KeycodeQuickEsc, r.TimerRead())); got != Consumed {
		t.Errorf("Handle(release) = %v, want consumed", got)
	}
	if len(r.Reports()) != 0 {
		t.Errorf("release emitted %v, want nothing", r.Reports())
	}
}

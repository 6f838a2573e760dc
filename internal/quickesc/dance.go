package quickesc

import (
	"github.com/nikallass/quickesc/internal/hid"
	"github.com/nikallass/quickesc/internal/host"
	"github.com/nikallass/quickesc/internal/tapdance"
)

// Dance is the tap-dance variant of the disambiguator. Tap counting and the
// finished/reset lifecycle come from the tapdance facility; an auxiliary
// latch keeps grave mode alive across consecutive sequences of taps.
//
// Emission differs from Latch in one way: a lone Escape is emitted when the
// tapping term expires (via the finished callback), not at press time, and
// the double tap emits two graves because the first press of the pair was
// still undecided when it happened.
type Dance struct {
	host  host.Host
	key   hid.Keycode
	dance *tapdance.Dance

	graveMode bool
	lastPress uint16
}

// NewDance creates a dance disambiguator bound to KeycodeQuickEsc. A zero
// term selects tapdance.DefaultTerm.
func NewDance(h host.Host, term uint16) *Dance {
	d := &Dance{host: h, key: hid.KeycodeQuickEsc, dance: tapdance.New(term)}
	d.dance.OnEachTap = d.eachTap
	d.dance.OnFinished = d.finished
	d.dance.OnReset = d.reset
	return d
}

// GraveMode reports whether the auxiliary latch is set.
func (d *Dance) GraveMode() bool {
	return d.graveMode
}

// Handle processes one key transition. Presses of other keys interrupt an
// in-flight dance so a pending lone tap resolves to Escape before the other
// key's output.
func (d *Dance) Handle(ev hid.Event) Decision {
	if ev.Keycode != d.key {
		if ev.Pressed {
			d.dance.Interrupt(ev.Time)
		}
		return PassThrough
	}
	if !ev.Pressed {
		return Consumed
	}

	if resolveModifierTap(d.host, d.host.Mods()) {
		return Consumed
	}

	// An interrupt can finish the dance while the term is still running,
	// leaving the latch armed with no live sequence to re-check it. Expire
	// it here so a press after the term reads as a fresh tap.
	if d.graveMode && hid.Elapsed(ev.Time, d.lastPress) >= d.dance.Term {
		d.graveMode = false
	}

	// Press may lazily finish a stale sequence first; the reset hook must
	// still see the previous press time, so lastPress updates afterwards.
	d.dance.Press(ev.Time)
	d.lastPress = ev.Time
	return Consumed
}

// Tick forwards the host clock so an idle tapping term can finish, and
// expires the grave latch once the term has lapsed with no dance running.
func (d *Dance) Tick(now uint16) {
	d.dance.Tick(now)
	if d.graveMode && hid.Elapsed(now, d.lastPress) >= d.dance.Term {
		d.graveMode = false
	}
}

func (d *Dance) eachTap(count int, _ uint16) {
	switch {
	case d.graveMode:
		// Sustained grave mode: every press in the window is a grave.
		d.host.TapCode(hid.KeycodeGrave)
	case count == 2:
		// The pair is now decided; the first press emitted nothing yet.
		d.graveMode = true
		d.host.TapCode(hid.KeycodeGrave)
		d.host.TapCode(hid.KeycodeGrave)
	}
}

func (d *Dance) finished(count int, _ uint16) {
	if count == 1 && !d.graveMode {
		d.host.TapCode(hid.KeycodeEscape)
	}
}

func (d *Dance) reset(now uint16) {
	// The latch drops only if the term has really lapsed by the time the
	// reset hook runs; an interrupt-driven reset arrives earlier and keeps
	// grave mode armed for the next sequence.
	if d.graveMode && hid.Elapsed(now, d.lastPress) >= d.dance.Term {
		d.graveMode = false
	}
}

// Package quickesc implements the Escape/Grave disambiguator bound to the
// top-left key of the keymap.
//
// A short isolated tap emits Escape. A double tap within the grave timeout
// switches the key into grave mode, where every further tap within the
// timeout emits a grave; once the timeout lapses the key reverts to Escape.
// Held modifiers bypass the timing logic entirely and select a grave
// combination directly.
//
// Two behaviorally near-identical variants exist:
//
//   - Latch: an explicit two-state latch driven from raw press events and
//     the host timer.
//   - Dance: built on the tapdance facility's finished/reset callbacks plus
//     an auxiliary latch for sustained grave mode.
//
// Both act on press events only and consume every event of the bound key.
// Events for any other keycode pass through untouched.
package quickesc

import (
	"github.com/nikallass/quickesc/internal/hid"
	"github.com/nikallass/quickesc/internal/host"
)

// GraveTimeout is the default grave-mode window in ticks for the Latch
// variant.
const GraveTimeout uint16 = 1000

// Decision tells the host whether to continue default processing of the
// original event.
type Decision uint8

const (
	// PassThrough lets the host continue normal key processing.
	PassThrough Decision = iota

	// Consumed means the event was fully handled here.
	Consumed
)

// String returns a human-readable name for the decision.
func (d Decision) String() string {
	if d == Consumed {
		return "consumed"
	}
	return "pass_through"
}

// Disambiguator is the per-event contract both variants satisfy.
type Disambiguator interface {
	// Handle processes one transition of any key. Only presses of the
	// bound key ever emit output.
	Handle(ev hid.Event) Decision

	// Tick lets host-driven deadlines fire between key events.
	Tick(now uint16)
}

// resolveModifierTap applies the modifier precedence rules. It returns true
// if a combination was emitted; the caller then skips timing disambiguation.
//
// Rules, first match wins:
//  1. Gui and Shift both held (other bits allowed): Gui+Shift+Grave.
//  2. Exactly Shift: plain Grave with Shift lifted, prior mods restored.
//  3. Exactly Alt: Shift+Grave with Alt lifted, prior mods restored.
//  4. Exactly Gui: Gui+Grave.
func resolveModifierTap(h host.Host, mods hid.Modifier) bool {
	switch {
	case mods.Has(hid.ModGui) && mods.Has(hid.ModShift):
		h.TapCode16(hid.KeycodeGrave, hid.ModGui|hid.ModShift)
	case mods.Only(hid.ModShift):
		h.UnregisterMods(hid.ModShift)
		h.TapCode(hid.KeycodeGrave)
		h.RegisterMods(mods)
	case mods.Only(hid.ModAlt):
		h.UnregisterMods(hid.ModAlt)
		h.TapCode16(hid.KeycodeGrave, hid.ModShift)
		h.RegisterMods(mods)
	case mods.Only(hid.ModGui):
		h.TapCode16(hid.KeycodeGrave, hid.ModGui)
	default:
		return false
	}
	return true
}

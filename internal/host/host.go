// Package host models the firmware surface the keymap engine calls into.
//
// On real hardware these calls are QMK's input-injection and timer API. Here
// they are an interface so the engine can run against a live terminal
// simulator or a recording fake in tests.
package host

import (
	"time"

	"github.com/nikallass/quickesc/internal/hid"
)

// Host is the set of firmware facilities consumed by the engine.
//
// Implementations are not required to be goroutine-safe: the engine calls
// into the host synchronously from a single event loop.
type Host interface {
	// TapCode emits a press immediately followed by a release.
	TapCode(kc hid.Keycode)

	// TapCode16 emits a tap with the given modifier combination held
	// around it.
	TapCode16(kc hid.Keycode, mods hid.Modifier)

	// RegisterMods adds modifiers to the active set.
	RegisterMods(mods hid.Modifier)

	// UnregisterMods removes modifiers from the active set.
	UnregisterMods(mods hid.Modifier)

	// Mods returns a snapshot of the currently active modifier set.
	Mods() hid.Modifier

	// TimerRead returns the current value of the monotonic tick counter.
	// The counter wraps at 65536; compare values only with hid.Elapsed.
	TimerRead() uint16
}

// Clock is a real tick source mapping wall time to uint16 millisecond ticks.
type Clock struct {
	start time.Time
}

// NewClock creates a clock starting at tick zero.
func NewClock() *Clock {
	return &Clock{start: time.Now()}
}

// TimerRead returns elapsed wall milliseconds truncated to 16 bits.
func (c *Clock) TimerRead() uint16 {
	return uint16(time.Since(c.start).Milliseconds())
}

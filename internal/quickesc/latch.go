package quickesc

import (
	"github.com/nikallass/quickesc/internal/hid"
	"github.com/nikallass/quickesc/internal/host"
)

// Latch is the explicit two-state variant of the disambiguator. Grave mode
// is a single boolean latched by a double tap and dropped by the first press
// that arrives after the timeout.
type Latch struct {
	host    host.Host
	key     hid.Keycode
	timeout uint16

	graveMode bool
	timer     uint16
}

// NewLatch creates a latch disambiguator bound to KeycodeQuickEsc. A zero
// timeout selects GraveTimeout.
func NewLatch(h host.Host, timeout uint16) *Latch {
	if timeout == 0 {
		timeout = GraveTimeout
	}
	return &Latch{host: h, key: hid.KeycodeQuickEsc, timeout: timeout}
}

// GraveMode reports whether the key is currently latched into grave mode.
func (l *Latch) GraveMode() bool {
	return l.graveMode
}

// Handle processes one key transition.
func (l *Latch) Handle(ev hid.Event) Decision {
	if ev.Keycode != l.key {
		return PassThrough
	}
	if !ev.Pressed {
		// Releases of the bound key never emit anything.
		return Consumed
	}

	if resolveModifierTap(l.host, l.host.Mods()) {
		return Consumed
	}

	// Any other mask (none, or an unlisted combination such as Ctrl) goes
	// through timing disambiguation; held modifiers then color the tap.
	now := l.host.TimerRead()
	if !l.graveMode {
		if hid.Elapsed(now, l.timer) < l.timeout {
			// Double tap: latch into grave mode.
			l.graveMode = true
			l.host.TapCode(hid.KeycodeGrave)
		} else {
			l.host.TapCode(hid.KeycodeEscape)
		}
		l.timer = now
	} else {
		if hid.Elapsed(now, l.timer) < l.timeout {
			l.host.TapCode(hid.KeycodeGrave)
			l.timer = now
		} else {
			// Timeout exceeded: drop the latch and revert to Escape.
			l.graveMode = false
			l.host.TapCode(hid.KeycodeEscape)
		}
	}
	return Consumed
}

// Tick is a no-op: the latch keys all decisions off press events.
func (l *Latch) Tick(uint16) {}

package hid

import "fmt"

// Event represents a single transition of one key.
type Event struct {
	// Keycode identifies the key that changed.
	Keycode Keycode

	// Pressed is true on press, false on release.
	Pressed bool

	// Time is the host tick counter at the moment of the transition.
	Time uint16
}

// NewPress creates a press event at the given tick.
func NewPress(kc Keycode, now uint16) Event {
	return Event{Keycode: kc, Pressed: true, Time: now}
}

// NewRelease creates a release event at the given tick.
func NewRelease(kc Keycode, now uint16) Event {
	return Event{Keycode: kc, Pressed: false, Time: now}
}

// String returns a short representation like "press quick_esc @1042".
func (e Event) String() string {
	verb := "release"
	if e.Pressed {
		verb = "press"
	}
	return fmt.Sprintf("%s %s @%d", verb, e.Keycode, e.Time)
}

// Elapsed returns the number of ticks between since and now. The subtraction
// is performed on uint16 values so the result stays correct across counter
// wraparound.
func Elapsed(now, since uint16) uint16 {
	return now - since
}

// ReportKind classifies a synthesized HID emission.
type ReportKind uint8

const (
	// ReportTap is a press immediately followed by a release.
	ReportTap ReportKind = iota
	// ReportRegisterMods adds modifiers to the active set.
	ReportRegisterMods
	// ReportUnregisterMods removes modifiers from the active set.
	ReportUnregisterMods
	// ReportSetMods replaces the active modifier set.
	ReportSetMods
	// ReportPress is a sustained key press.
	ReportPress
	// ReportRelease releases a sustained key press.
	ReportRelease
)

// String returns a human-readable name for the report kind.
func (k ReportKind) String() string {
	switch k {
	case ReportTap:
		return "tap"
	case ReportRegisterMods:
		return "register_mods"
	case ReportUnregisterMods:
		return "unregister_mods"
	case ReportSetMods:
		return "set_mods"
	case ReportPress:
		return "press"
	case ReportRelease:
		return "release"
	default:
		return "unknown"
	}
}

// Report is one synthesized emission to the host: a tap of a keycode
// (optionally with a modifier combination held around it) or a modifier
// state change.
type Report struct {
	Kind    ReportKind
	Keycode Keycode
	Mods    Modifier
}

// String returns a representation like "tap grave", "tap grave+Gui+Shift"
// or "register_mods Shift".
func (r Report) String() string {
	switch r.Kind {
	case ReportTap, ReportPress, ReportRelease:
		if r.Mods.IsEmpty() {
			return fmt.Sprintf("%s %s", r.Kind, r.Keycode)
		}
		return fmt.Sprintf("%s %s+%s", r.Kind, r.Keycode, r.Mods)
	default:
		return fmt.Sprintf("%s %s", r.Kind, r.Mods)
	}
}

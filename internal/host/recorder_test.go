package host

import (
	"testing"

	"github.com/nikallass/quickesc/internal/hid"
)

func TestRecorderTapLog(t *testing.T) {
	r := NewRecorder()
	r.TapCode(hid.KeycodeEscape)
	r.TapCode16(hid.KeycodeGrave, hid.ModGui|hid.ModShift)

	taps := r.Taps()
	if len(taps) != 2 {
		t.Fatalf("Taps() returned %d reports, want 2", len(taps))
	}
	if taps[0].Keycode != hid.KeycodeEscape || !taps[0].Mods.IsEmpty() {
		t.Errorf("first tap = %v, want plain escape", taps[0])
	}
	if taps[1].Keycode != hid.KeycodeGrave || taps[1].Mods != hid.ModGui|hid.ModShift {
		t.Errorf("second tap = %v, want gui+shift grave", taps[1])
	}
}

func TestRecorderModifierState(t *testing.T) {
	r := NewRecorder()
	r.RegisterMods(hid.ModShift)
	if !r.Mods().Only(hid.ModShift) {
		t.Errorf("Mods() = %v, want exactly Shift", r.Mods())
	}

	r.RegisterMods(hid.ModGui)
	r.UnregisterMods(hid.ModShift)
	if r.Mods() != hid.ModGui {
		t.Errorf("Mods() = %v, want Gui", r.Mods())
	}

	// Register/unregister pairs appear in the log alongside taps.
	if got := len(r.Reports()); got != 3 {
		t.Errorf("Reports() has %d entries, want 3", got)
	}
	if got := len(r.Taps()); got != 0 {
		t.Errorf("Taps() has %d entries, want 0", got)
	}
}

func TestRecorderClock(t *testing.T) {
	r := NewRecorder()
	r.SetTime(65000)
	r.Advance(1000)
	if got := r.TimerRead(); got != 464 {
		t.Errorf("TimerRead() = %d after wraparound, want 464", got)
	}
	if got := hid.Elapsed(r.TimerRead(), 65000); got != 1000 {
		t.Errorf("Elapsed across wrap = %d, want 1000", got)
	}
}

func TestRecorderClear(t *testing.T) {
	r := NewRecorder()
	r.RegisterMods(hid.ModAlt)
	r.TapCode(hid.KeycodeGrave)
	r.Clear()

	if len(r.Reports()) != 0 {
		t.Error("Clear should drop the report log")
	}
	if r.Mods() != hid.ModAlt {
		t.Error("Clear must keep modifier state")
	}
}

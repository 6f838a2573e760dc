package host

import "github.com/nikallass/quickesc/internal/hid"

// Recorder is an in-memory Host for tests and the terminal simulator.
// It logs every emission in order and keeps a manually advanced clock.
type Recorder struct {
	mods    hid.Modifier
	now     uint16
	reports []hid.Report
}

// NewRecorder creates a recorder with no held modifiers at tick zero.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) TapCode(kc hid.Keycode) {
	r.reports = append(r.reports, hid.Report{Kind: hid.ReportTap, Keycode: kc})
}

func (r *Recorder) TapCode16(kc hid.Keycode, mods hid.Modifier) {
	r.reports = append(r.reports, hid.Report{Kind: hid.ReportTap, Keycode: kc, Mods: mods})
}

func (r *Recorder) RegisterMods(mods hid.Modifier) {
	r.mods = r.mods.With(mods)
	r.reports = append(r.reports, hid.Report{Kind: hid.ReportRegisterMods, Mods: mods})
}

func (r *Recorder) UnregisterMods(mods hid.Modifier) {
	r.mods = r.mods.Without(mods)
	r.reports = append(r.reports, hid.Report{Kind: hid.ReportUnregisterMods, Mods: mods})
}

func (r *Recorder) Mods() hid.Modifier {
	return r.mods
}

func (r *Recorder) TimerRead() uint16 {
	return r.now
}

// Advance moves the clock forward by the given number of ticks.
func (r *Recorder) Advance(ticks uint16) {
	r.now += ticks
}

// SetTime sets the clock to an absolute tick value.
func (r *Recorder) SetTime(now uint16) {
	r.now = now
}

// Reports returns every logged emission in order.
func (r *Recorder) Reports() []hid.Report {
	return r.reports
}

// Taps returns only the tap emissions, in order.
func (r *Recorder) Taps() []hid.Report {
	var taps []hid.Report
	for _, rep := range r.reports {
		if rep.Kind == hid.ReportTap {
			taps = append(taps, rep)
		}
	}
	return taps
}

// Clear discards the report log. Modifier state and the clock are kept.
func (r *Recorder) Clear() {
	r.reports = nil
}

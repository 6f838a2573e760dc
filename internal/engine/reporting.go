package engine

import (
	"github.com/nikallass/quickesc/internal/event"
	"github.com/nikallass/quickesc/internal/hid"
	"github.com/nikallass/quickesc/internal/host"
)

// reportingHost wraps a host and publishes every synthesized emission on
// the bus, so UI and metrics subscribers see taps and modifier changes
// without polling the underlying host.
type reportingHost struct {
	host.Host
	bus *event.Bus
}

func (r *reportingHost) TapCode(kc hid.Keycode) {
	r.Host.TapCode(kc)
	r.bus.Publish(event.TopicReport, hid.Report{Kind: hid.ReportTap, Keycode: kc})
}

func (r *reportingHost) TapCode16(kc hid.Keycode, mods hid.Modifier) {
	r.Host.TapCode16(kc, mods)
	r.bus.Publish(event.TopicReport, hid.Report{Kind: hid.ReportTap, Keycode: kc, Mods: mods})
}

func (r *reportingHost) RegisterMods(mods hid.Modifier) {
	r.Host.RegisterMods(mods)
	r.bus.Publish(event.TopicReport, hid.Report{Kind: hid.ReportRegisterMods, Mods: mods})
}

func (r *reportingHost) UnregisterMods(mods hid.Modifier) {
	r.Host.UnregisterMods(mods)
	r.bus.Publish(event.TopicReport, hid.Report{Kind: hid.ReportUnregisterMods, Mods: mods})
}

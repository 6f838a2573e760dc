package engine

import "sync/atomic"

// Metrics counts engine activity. Counters are atomic so observers may
// read them from outside the event loop.
type Metrics struct {
	Events       atomic.Uint64
	Consumed     atomic.Uint64
	Taps         atomic.Uint64
	ScriptErrors atomic.Uint64
}

// MetricsSnapshot is a point-in-time copy of the counters.
type MetricsSnapshot struct {
	Events       uint64
	Consumed     uint64
	Taps         uint64
	ScriptErrors uint64
}

// Snapshot reads all counters.
func (m *Metrics) Snapshot() MetricsSnapshot {
	return MetricsSnapshot{
		Events:       m.Events.Load(),
		Consumed:     m.Consumed.Load(),
		Taps:         m.Taps.Load(),
		ScriptErrors: m.ScriptErrors.Load(),
	}
}

package main

import "github.com/nikallass/quickesc/internal/host"

// simHost is the interactive mode host: the recorder's report log driven
// by a real millisecond clock.
type simHost struct {
	*host.Recorder
	clock *host.Clock
}

func newSimHost() *simHost {
	return &simHost{
		Recorder: host.NewRecorder(),
		clock:    host.NewClock(),
	}
}

// TimerRead follows wall time instead of the recorder's manual clock.
func (s *simHost) TimerRead() uint16 {
	return s.clock.TimerRead()
}

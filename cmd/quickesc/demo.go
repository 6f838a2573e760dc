package main

import (
	"fmt"
	"io"

	"github.com/nikallass/quickesc/internal/config"
	"github.com/nikallass/quickesc/internal/engine"
	"github.com/nikallass/quickesc/internal/host"
)

// runDemo replays a scripted key sequence against the engine and prints
// every host emission. It needs no terminal.
func runDemo(cfg config.Config, w io.Writer) int {
	rec := host.NewRecorder()
	rec.SetTime(5000)

	eng, err := engine.New(rec, cfg)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 1
	}

	demoTap := func(index int) {
		eng.Key(index, true)
		eng.Key(index, false)
	}
	section := func(title string, steps func()) {
		fmt.Fprintf(w, "--- %s\n", title)
		steps()
		eng.Tick()
		for _, rep := range rec.Reports() {
			fmt.Fprintf(w, "    %s\n", rep)
		}
		rec.Clear()
		// Let every timing window lapse before the next section.
		rec.Advance(2000)
		eng.Tick()
		rec.Clear()
	}

	const (
		keyEsc    = 0
		keyQ      = 16
		keyLShift = 44
		keyFn2    = 64
		keyDigit1 = 1
	)

	fmt.Fprintf(w, "quickesc walkthrough (variant=%s)\n", cfg.Variant)

	section("single tap emits escape", func() {
		demoTap(keyEsc)
		rec.Advance(1500)
	})

	section("double tap latches grave mode", func() {
		demoTap(keyEsc)
		rec.Advance(200)
		demoTap(keyEsc)
		rec.Advance(200)
		demoTap(keyEsc)
		rec.Advance(1500)
	})

	section("shift held selects grave", func() {
		eng.Key(keyLShift, true)
		demoTap(keyEsc)
		eng.Key(keyLShift, false)
	})

	section("fn2 layer turns digits into function keys", func() {
		eng.Key(keyFn2, true)
		demoTap(keyDigit1)
		eng.Key(keyFn2, false)
		demoTap(keyDigit1)
	})

	section("plain typing passes through", func() {
		demoTap(keyQ)
	})

	m := eng.Metrics()
	fmt.Fprintf(w, "events=%d consumed=%d taps=%d\n", m.Events, m.Consumed, m.Taps)
	return 0
}

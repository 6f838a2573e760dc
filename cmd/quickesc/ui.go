package main

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/nikallass/quickesc/internal/engine"
	"github.com/nikallass/quickesc/internal/event"
	"github.com/nikallass/quickesc/internal/hid"
	"github.com/nikallass/quickesc/internal/layout"
)

// Board positions of the momentary layer keys.
const (
	idxFn1 = 63
	idxFn2 = 64
)

// heatFade is how long a pressed key glows on the board.
const heatFade = 800 * time.Millisecond

// ui renders the board and feeds terminal keys into the engine.
type ui struct {
	screen tcell.Screen
	eng    *engine.Engine
	sim    *simHost

	positions [layout.KeyCount]layout.Position
	lastPress [layout.KeyCount]time.Time

	fn1Held bool
	fn2Held bool

	log []string

	accent colorful.Color
	keyBg  colorful.Color
}

func newUI(eng *engine.Engine, sim *simHost, bus *event.Bus) (*ui, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}

	u := &ui{
		screen:    screen,
		eng:       eng,
		sim:       sim,
		positions: layout.Positions(),
		accent:    colorful.Color{R: 0.95, G: 0.55, B: 0.15},
		keyBg:     colorful.Color{R: 0.16, G: 0.17, B: 0.20},
	}

	bus.Subscribe(event.TopicLayer, func(_ event.Topic, payload any) {
		if layers, ok := payload.([]layout.Layer); ok && len(layers) > 0 {
			u.appendLog(fmt.Sprintf("layer: %v", layers[0]))
		}
	})

	return u, nil
}

// Run owns the terminal until the user quits with Ctrl-Q or Ctrl-C.
func (u *ui) Run() error {
	if err := u.screen.Init(); err != nil {
		return err
	}
	defer u.screen.Fini()

	// Periodic wakeups drive heat decay and deferred tap decisions.
	stop := make(chan struct{})
	defer close(stop)
	go func() {
		ticker := time.NewTicker(50 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				_ = u.screen.PostEvent(tcell.NewEventInterrupt(nil))
			case <-stop:
				return
			}
		}
	}()

	u.draw()
	for {
		switch ev := u.screen.PollEvent().(type) {
		case *tcell.EventResize:
			u.screen.Sync()
			u.draw()
		case *tcell.EventInterrupt:
			u.eng.Tick()
			u.drainReports()
			u.draw()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyCtrlQ || ev.Key() == tcell.KeyCtrlC {
				return nil
			}
			u.handleKey(ev)
			u.eng.Tick()
			u.drainReports()
			u.draw()
		}
	}
}

// handleKey translates one terminal key into board activity.
func (u *ui) handleKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyF1:
		u.fn1Held = !u.fn1Held
		u.eng.Key(idxFn1, u.fn1Held)
		u.touch(idxFn1)
		return
	case tcell.KeyF2:
		u.fn2Held = !u.fn2Held
		u.eng.Key(idxFn2, u.fn2Held)
		u.touch(idxFn2)
		return
	case tcell.KeyF3:
		base := layout.MacBase
		if u.eng.State().Base() == layout.MacBase {
			base = layout.WinBase
		}
		_ = u.eng.SetBase(base)
		return
	}

	index, ok := u.boardIndex(ev)
	if !ok {
		return
	}

	u.syncMods(ev.Modifiers())
	u.eng.Key(index, true)
	u.eng.Key(index, false)
	u.touch(index)
}

// boardIndex finds the physical position a terminal key maps to.
func (u *ui) boardIndex(ev *tcell.EventKey) (int, bool) {
	kc, ok := terminalKeycode(ev)
	if !ok {
		return 0, false
	}

	// The escape key position carries KeycodeQuickEsc on both base layers.
	if kc == hid.KeycodeEscape {
		kc = hid.KeycodeQuickEsc
	}

	base := u.eng.State().Base()
	table := u.eng.Keymaps()[base]
	for i, entry := range table {
		if entry.Base() == kc {
			return i, true
		}
	}
	return 0, false
}

// syncMods makes the host modifier set match the terminal report.
func (u *ui) syncMods(mask tcell.ModMask) {
	var want hid.Modifier
	if mask&tcell.ModCtrl != 0 {
		want = want.With(hid.ModCtrl)
	}
	if mask&tcell.ModShift != 0 {
		want = want.With(hid.ModShift)
	}
	if mask&tcell.ModAlt != 0 {
		want = want.With(hid.ModAlt)
	}
	if mask&tcell.ModMeta != 0 {
		want = want.With(hid.ModGui)
	}

	have := u.sim.Mods()
	if add := want.Without(have); !add.IsEmpty() {
		u.sim.RegisterMods(add)
	}
	if drop := have.Without(want); !drop.IsEmpty() {
		u.sim.UnregisterMods(drop)
	}
}

// terminalKeycode maps a tcell key event onto the board's keycode space.
func terminalKeycode(ev *tcell.EventKey) (hid.Keycode, bool) {
	switch ev.Key() {
	case tcell.KeyEscape:
		return hid.KeycodeEscape, true
	case tcell.KeyTab:
		return hid.KeycodeTab, true
	case tcell.KeyEnter:
		return hid.KeycodeEnter, true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return hid.KeycodeBackspace, true
	case tcell.KeyDelete:
		return hid.KeycodeDelete, true
	case tcell.KeyHome:
		return hid.KeycodeHome, true
	case tcell.KeyEnd:
		return hid.KeycodeEnd, true
	case tcell.KeyPgUp:
		return hid.KeycodePageUp, true
	case tcell.KeyPgDn:
		return hid.KeycodePageDown, true
	case tcell.KeyUp:
		return hid.KeycodeUp, true
	case tcell.KeyDown:
		return hid.KeycodeDown, true
	case tcell.KeyLeft:
		return hid.KeycodeLeft, true
	case tcell.KeyRight:
		return hid.KeycodeRight, true
	case tcell.KeyRune:
		return runeKeycode(ev.Rune())
	}
	return hid.KeycodeNone, false
}

// runeKeycode maps printable runes to keycodes.
func runeKeycode(r rune) (hid.Keycode, bool) {
	switch {
	case r >= 'a' && r <= 'z':
		return hid.KeycodeA + hid.Keycode(r-'a'), true
	case r >= 'A' && r <= 'Z':
		return hid.KeycodeA + hid.Keycode(r-'A'), true
	case r >= '1' && r <= '9':
		return hid.Keycode1 + hid.Keycode(r-'1'), true
	case r == '0':
		return hid.Keycode0, true
	}

	punct := map[rune]hid.Keycode{
		' ':  hid.KeycodeSpace,
		'-':  hid.KeycodeMinus,
		'=':  hid.KeycodeEqual,
		'[':  hid.KeycodeLeftBracket,
		']':  hid.KeycodeRightBracket,
		'\\': hid.KeycodeBackslash,
		';':  hid.KeycodeSemicolon,
		'\'': hid.KeycodeQuote,
		',':  hid.KeycodeComma,
		'.':  hid.KeycodeDot,
		'/':  hid.KeycodeSlash,
		'`':  hid.KeycodeGrave,
	}
	kc, ok := punct[r]
	return kc, ok
}

// touch marks the key hot for the heat overlay.
func (u *ui) touch(index int) {
	if index >= 0 && index < layout.KeyCount {
		u.lastPress[index] = time.Now()
	}
}

// drainReports moves new host emissions into the on-screen log.
func (u *ui) drainReports() {
	for _, rep := range u.sim.Reports() {
		u.appendLog(rep.String())
	}
	u.sim.Clear()
}

func (u *ui) appendLog(line string) {
	const keep = 8
	u.log = append(u.log, line)
	if len(u.log) > keep {
		u.log = u.log[len(u.log)-keep:]
	}
}

func (u *ui) draw() {
	u.screen.Clear()

	style := tcell.StyleDefault
	m := u.eng.Metrics()
	u.drawText(0, 0, style.Bold(true), "quickesc board tester    Ctrl-Q quit  F1/F2 hold fn layers  F3 mac/win")
	status := fmt.Sprintf("base=%s  mods=[%s]  events=%d consumed=%d taps=%d",
		u.eng.State().Base(), u.sim.Mods(), m.Events, m.Consumed, m.Taps)
	u.drawText(0, 1, style, status)

	u.drawBoard(3)

	logY := 3 + 2*len(u.rowCount()) + 1
	for i, line := range u.log {
		u.drawText(0, logY+i, style.Dim(true), line)
	}

	u.screen.Show()
}

// rowCount returns one entry per board row, for vertical sizing.
func (u *ui) rowCount() []int {
	rows := []int{}
	seen := -1
	for _, p := range u.positions {
		if p.Row != seen {
			rows = append(rows, p.Row)
			seen = p.Row
		}
	}
	return rows
}

// drawBoard renders each key as a colored block, two cells tall, one
// terminal column per quarter key unit.
func (u *ui) drawBoard(top int) {
	table := u.eng.Keymaps()
	now := time.Now()

	for i, p := range u.positions {
		kc := u.eng.State().Resolve(table, i)
		label := kc.String()

		bg := u.keyColor(now.Sub(u.lastPress[i]))
		style := tcell.StyleDefault.
			Background(toTcell(bg)).
			Foreground(tcell.ColorWhite)

		y := top + p.Row*2
		width := p.Width
		if width > 1 {
			width-- // gap between keycaps
		}
		for dx := 0; dx < width; dx++ {
			r := ' '
			if dx < len(label) && dx < width {
				r = rune(label[dx])
			}
			u.screen.SetContent(p.X+dx, y, r, nil, style)
			u.screen.SetContent(p.X+dx, y+1, ' ', nil, style)
		}
	}
}

// keyColor blends the accent into the resting keycap color as a press ages.
func (u *ui) keyColor(age time.Duration) colorful.Color {
	if age < 0 || age >= heatFade {
		return u.keyBg
	}
	t := float64(age) / float64(heatFade)
	return u.accent.BlendLab(u.keyBg, t).Clamped()
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func (u *ui) drawText(x, y int, style tcell.Style, text string) {
	for i, r := range text {
		u.screen.SetContent(x+i, y, r, nil, style)
	}
}

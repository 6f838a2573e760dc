package engine

import (
	"fmt"

	"github.com/nikallass/quickesc/internal/config"
	"github.com/nikallass/quickesc/internal/event"
	"github.com/nikallass/quickesc/internal/hid"
	"github.com/nikallass/quickesc/internal/host"
	"github.com/nikallass/quickesc/internal/keymap"
	"github.com/nikallass/quickesc/internal/layout"
	"github.com/nikallass/quickesc/internal/quickesc"
	"github.com/nikallass/quickesc/internal/script"
)

// Re-export the per-event decision for callers that only import engine.
type Decision = quickesc.Decision

const (
	PassThrough = quickesc.PassThrough
	Consumed    = quickesc.Consumed
)

// Engine drives the keymap: it resolves physical key transitions through
// the layer stack, runs the escape disambiguator and the optional script
// hook, and performs default key handling against the host.
//
// The engine is single-threaded. All methods must be called from one
// event loop; Tick should be called between key events so timing
// deadlines can fire.
type Engine struct {
	host     host.Host
	cfg      config.Config
	state    *layout.State
	keymaps  layout.Keymaps
	registry *keymap.Registry
	disamb   quickesc.Disambiguator
	hook     *script.Hook
	bus      *event.Bus

	// Keycode resolved at press time, per physical key. A release uses
	// the press-time resolution even if held layers changed in between.
	pressed [layout.KeyCount]hid.Keycode

	metrics Metrics
}

// Option configures an Engine.
type Option func(*Engine)

// WithRegistry composes user keymap overrides over the built-in tables.
func WithRegistry(reg *keymap.Registry) Option {
	return func(e *Engine) { e.registry = reg }
}

// WithScript attaches a Lua hook that sees every event the escape
// disambiguator passed through.
func WithScript(hook *script.Hook) Option {
	return func(e *Engine) { e.hook = hook }
}

// WithBus publishes engine activity to the given bus.
func WithBus(bus *event.Bus) Option {
	return func(e *Engine) { e.bus = bus }
}

// New creates an engine for the given host and settings.
func New(h host.Host, cfg config.Config, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	e := &Engine{
		host:  h,
		cfg:   cfg,
		state: layout.NewState(cfg.BaseLayer),
	}
	for _, opt := range opts {
		opt(e)
	}

	// With a bus attached, every emission flows through a publishing
	// wrapper so subscribers see the disambiguator's taps too.
	if e.bus != nil {
		e.host = &reportingHost{Host: h, bus: e.bus}
	}

	switch cfg.Variant {
	case config.VariantLatch:
		e.disamb = quickesc.NewLatch(e.host, cfg.GraveTimeout)
	case config.VariantDance:
		e.disamb = quickesc.NewDance(e.host, cfg.TappingTerm)
	default:
		return nil, fmt.Errorf("engine: unknown variant %q", cfg.Variant)
	}

	e.reloadKeymaps()
	return e, nil
}

// reloadKeymaps rebuilds the effective tables from the defaults plus any
// registered overrides.
func (e *Engine) reloadKeymaps() {
	e.keymaps = layout.DefaultKeymaps()
	if e.registry != nil {
		e.keymaps = e.registry.Compose(e.keymaps)
	}
}

// ReloadKeymaps re-applies registry overrides, e.g. after a keymap file
// was added at runtime.
func (e *Engine) ReloadKeymaps() {
	e.reloadKeymaps()
}

// Keymaps returns the effective layer tables.
func (e *Engine) Keymaps() layout.Keymaps {
	return e.keymaps
}

// State returns the layer state, e.g. for UI display.
func (e *Engine) State() *layout.State {
	return e.state
}

// Key feeds one physical key transition by position index. The keycode
// is resolved through the active layers at press time and remembered for
// the matching release.
func (e *Engine) Key(index int, pressedNow bool) Decision {
	now := e.host.TimerRead()

	var kc hid.Keycode
	if pressedNow {
		kc = e.state.Resolve(e.keymaps, index)
		if index >= 0 && index < layout.KeyCount {
			e.pressed[index] = kc
		}
	} else {
		if index >= 0 && index < layout.KeyCount {
			kc = e.pressed[index]
			e.pressed[index] = hid.KeycodeNone
		}
	}

	if pressedNow {
		return e.ProcessRecord(hid.NewPress(kc, now))
	}
	return e.ProcessRecord(hid.NewRelease(kc, now))
}

// ProcessRecord runs one resolved event through the pipeline: escape
// disambiguator, script hook, then default handling. The name follows
// QMK's per-record user hook.
func (e *Engine) ProcessRecord(ev hid.Event) Decision {
	e.metrics.Events.Add(1)
	e.publish(event.TopicKeyEvent, ev)

	if e.disamb.Handle(ev) == Consumed {
		e.metrics.Consumed.Add(1)
		return Consumed
	}

	if e.hook != nil && e.hook.HasHook() {
		handled, err := e.hook.OnKey(ev, e.host.Mods())
		if err != nil {
			e.metrics.ScriptErrors.Add(1)
		} else if handled {
			e.metrics.Consumed.Add(1)
			return Consumed
		}
	}

	e.defaultHandle(ev)
	return PassThrough
}

// defaultHandle performs the firmware-default action for an event no
// hook claimed.
func (e *Engine) defaultHandle(ev hid.Event) {
	kc := ev.Keycode

	if layer, ok := kc.MomentaryLayer(); ok {
		if ev.Pressed {
			if err := e.state.Activate(layout.Layer(layer)); err != nil {
				return
			}
		} else {
			e.state.Deactivate(layout.Layer(layer))
		}
		e.publish(event.TopicLayer, e.state.Active())
		return
	}

	if kc.IsModifierKey() {
		if ev.Pressed {
			e.host.RegisterMods(kc.ModifierBit())
		} else {
			e.host.UnregisterMods(kc.ModifierBit())
		}
		return
	}

	if !ev.Pressed {
		return
	}

	switch {
	case kc == hid.KeycodeNone || kc == hid.KeycodeTransparent:
		// Unmapped position.
	case kc.HasPackedMods():
		e.host.TapCode16(kc.Base(), kc.PackedMods())
		e.metrics.Taps.Add(1)
	default:
		e.host.TapCode(kc)
		e.metrics.Taps.Add(1)
	}
}

// Tick lets the disambiguator evaluate timing deadlines between events.
func (e *Engine) Tick() {
	e.disamb.Tick(e.host.TimerRead())
}

// SetBase switches the base layer at runtime, like the OS toggle switch
// on the board.
func (e *Engine) SetBase(base layout.Layer) error {
	if !base.IsBase() {
		return fmt.Errorf("engine: %s is not a base layer", base)
	}
	e.state.SetBase(base)
	e.publish(event.TopicLayer, e.state.Active())
	return nil
}

func (e *Engine) publish(topic event.Topic, payload any) {
	if e.bus != nil {
		e.bus.Publish(topic, payload)
	}
}

// Metrics returns a snapshot of the activity counters.
func (e *Engine) Metrics() MetricsSnapshot {
	return e.metrics.Snapshot()
}

package layout

import (
	"fmt"
	"strings"

	"github.com/nikallass/quickesc/internal/hid"
)

// Layer identifies one key-layer of the keymap.
type Layer uint8

const (
	// MacBase is the macOS base layer.
	MacBase Layer = iota

	// WinBase is the Windows base layer.
	WinBase

	// MacFn1 is the macOS function layer.
	MacFn1

	// WinFn1 is the Windows function layer.
	WinFn1

	// Fn2 is the shared second function layer.
	Fn2

	layerCount
)

// NumLayers is the number of layers in the keymap.
const NumLayers = int(layerCount)

// layerNames maps layers to their canonical names.
var layerNames = map[Layer]string{
	MacBase: "mac_base",
	WinBase: "win_base",
	MacFn1:  "mac_fn1",
	WinFn1:  "win_fn1",
	Fn2:     "fn2",
}

// String returns the canonical layer name.
func (l Layer) String() string {
	if name, ok := layerNames[l]; ok {
		return name
	}
	return fmt.Sprintf("layer(%d)", uint8(l))
}

// IsBase returns true for the two base layers.
func (l Layer) IsBase() bool {
	return l == MacBase || l == WinBase
}

// LayerFromName parses a canonical layer name.
func LayerFromName(name string) (Layer, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for l, n := range layerNames {
		if n == name {
			return l, true
		}
	}
	return 0, false
}

// ErrUnknownLayer is returned when a momentary key references a layer the
// keymap does not define.
var ErrUnknownLayer = fmt.Errorf("unknown layer")

// State tracks the active base layer and the stack of held momentary layers.
type State struct {
	base      Layer
	momentary []Layer
}

// NewState creates a layer state with the given base layer active.
func NewState(base Layer) *State {
	return &State{base: base}
}

// Base returns the active base layer.
func (s *State) Base() Layer {
	return s.base
}

// SetBase switches the base layer, e.g. when the OS toggle changes. Held
// momentary layers are kept.
func (s *State) SetBase(base Layer) {
	s.base = base
}

// Activate pushes a momentary layer; the most recent activation wins lookup.
func (s *State) Activate(l Layer) error {
	if int(l) >= NumLayers {
		return fmt.Errorf("%w: %d", ErrUnknownLayer, l)
	}
	s.momentary = append(s.momentary, l)
	return nil
}

// Deactivate removes the most recent activation of the given layer. Unknown
// deactivations are ignored; a release with no matching press is a host
// artifact, not an error.
func (s *State) Deactivate(l Layer) {
	for i := len(s.momentary) - 1; i >= 0; i-- {
		if s.momentary[i] == l {
			s.momentary = append(s.momentary[:i], s.momentary[i+1:]...)
			return
		}
	}
}

// Active returns the active layers in lookup order: held momentary layers
// from most to least recent, then the base layer.
func (s *State) Active() []Layer {
	active := make([]Layer, 0, len(s.momentary)+1)
	for i := len(s.momentary) - 1; i >= 0; i-- {
		active = append(active, s.momentary[i])
	}
	return append(active, s.base)
}

// Resolve maps a physical key index to a keycode by walking the active
// layers top-down, skipping transparent entries. A position that resolves
// to nothing yields KeycodeNone.
func (s *State) Resolve(km Keymaps, index int) hid.Keycode {
	if index < 0 || index >= KeyCount {
		return hid.KeycodeNone
	}
	for _, l := range s.Active() {
		kc := km[l][index]
		if kc != hid.KeycodeTransparent {
			return kc
		}
	}
	return hid.KeycodeNone
}

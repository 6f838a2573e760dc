package keymap

import (
	"fmt"

	"github.com/nikallass/quickesc/internal/hid"
	"github.com/nikallass/quickesc/internal/layout"
)

// Override remaps a single key position on one layer.
type Override struct {
	// Layer is the layer the override applies to.
	Layer layout.Layer

	// Key is the physical key index, 0 .. layout.KeyCount-1.
	Key int

	// Keycode is the replacement keycode.
	Keycode hid.Keycode
}

// Keymap is a named set of overrides.
type Keymap struct {
	// Name identifies the keymap.
	Name string

	// Priority determines precedence when overrides collide.
	// Higher priority wins. Default is 0.
	Priority int

	// Source indicates where this keymap was defined, e.g. a file path.
	Source string

	// Overrides are the individual remappings.
	Overrides []Override
}

// Validate checks every override against the layout bounds.
func (k *Keymap) Validate() error {
	if k.Name == "" {
		return fmt.Errorf("keymap has no name")
	}
	for i, ov := range k.Overrides {
		if int(ov.Layer) >= layout.NumLayers {
			return fmt.Errorf("keymap %q override %d: unknown layer %d", k.Name, i, ov.Layer)
		}
		if ov.Key < 0 || ov.Key >= layout.KeyCount {
			return fmt.Errorf("keymap %q override %d: key %d out of range", k.Name, i, ov.Key)
		}
	}
	return nil
}

// Apply returns a copy of base with the overrides applied.
func (k *Keymap) Apply(base layout.Keymaps) layout.Keymaps {
	for _, ov := range k.Overrides {
		base[ov.Layer][ov.Key] = ov.Keycode
	}
	return base
}

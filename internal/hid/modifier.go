package hid

import "strings"

// Modifier represents a set of held modifier keys as a bitmask.
// The bit order follows the HID modifier byte: Ctrl, Shift, Alt, Gui.
type Modifier uint8

const (
	// ModCtrl indicates the Control key.
	ModCtrl Modifier = 1 << iota

	// ModShift indicates the Shift key.
	ModShift

	// ModAlt indicates the Alt key (Option on macOS).
	ModAlt

	// ModGui indicates the GUI key (Cmd on macOS, Win on Windows).
	ModGui

	// ModNone indicates no modifiers.
	ModNone Modifier = 0
)

// Has returns true if m contains the specified modifier.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod != 0
}

// HasCtrl returns true if Control is held.
func (m Modifier) HasCtrl() bool {
	return m.Has(ModCtrl)
}

// HasShift returns true if Shift is held.
func (m Modifier) HasShift() bool {
	return m.Has(ModShift)
}

// HasAlt returns true if Alt is held.
func (m Modifier) HasAlt() bool {
	return m.Has(ModAlt)
}

// HasGui returns true if Gui is held.
func (m Modifier) HasGui() bool {
	return m.Has(ModGui)
}

// Only returns true if m consists of the specified modifier and nothing else.
func (m Modifier) Only(mod Modifier) bool {
	return m.Has(mod) && m&^mod == 0
}

// With returns a new Modifier with the specified modifier added.
func (m Modifier) With(mod Modifier) Modifier {
	return m | mod
}

// Without returns a new Modifier with the specified modifier removed.
func (m Modifier) Without(mod Modifier) Modifier {
	return m &^ mod
}

// IsEmpty returns true if no modifiers are set.
func (m Modifier) IsEmpty() bool {
	return m == ModNone
}

// String returns a human-readable representation like "Gui+Shift".
func (m Modifier) String() string {
	if m == ModNone {
		return ""
	}

	var parts []string
	if m.HasCtrl() {
		parts = append(parts, "Ctrl")
	}
	if m.HasShift() {
		parts = append(parts, "Shift")
	}
	if m.HasAlt() {
		parts = append(parts, "Alt")
	}
	if m.HasGui() {
		parts = append(parts, "Gui")
	}
	return strings.Join(parts, "+")
}

// modifierNameMap maps modifier names (lowercase) to Modifier values.
var modifierNameMap = map[string]Modifier{
	"ctrl":    ModCtrl,
	"control": ModCtrl,
	"c":       ModCtrl,
	"shift":   ModShift,
	"s":       ModShift,
	"alt":     ModAlt,
	"a":       ModAlt,
	"option":  ModAlt,
	"opt":     ModAlt,
	"gui":     ModGui,
	"g":       ModGui,
	"cmd":     ModGui,
	"command": ModGui,
	"win":     ModGui,
	"super":   ModGui,
	"meta":    ModGui,
}

// ModifierFromName returns the Modifier for a given name (case-insensitive).
// Returns ModNone if the name is not recognized.
func ModifierFromName(name string) Modifier {
	if m, ok := modifierNameMap[strings.ToLower(strings.TrimSpace(name))]; ok {
		return m
	}
	return ModNone
}

// ParseModifiers parses a modifier string like "Gui+Shift" or "g-s".
// Unrecognized parts are ignored.
func ParseModifiers(s string) Modifier {
	s = strings.ToLower(s)

	var parts []string
	switch {
	case strings.Contains(s, "+"):
		parts = strings.Split(s, "+")
	case strings.Contains(s, "-"):
		parts = strings.Split(s, "-")
	default:
		parts = []string{s}
	}

	var result Modifier
	for _, part := range parts {
		if mod := ModifierFromName(part); mod != ModNone {
			result = result.With(mod)
		}
	}
	return result
}

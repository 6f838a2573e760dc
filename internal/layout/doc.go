// Package layout holds the key-layer layouts for the Keychron K7 Max
// (68-key ANSI) and the layer state machine that resolves a physical key
// position to a keycode.
//
// Five layers exist: a macOS and a Windows base layer, their function
// layers, and a shared second function layer. Function layers are reached
// through momentary layer keys and are sparse; transparent entries defer to
// the next lower active layer.
//
// The tables are pure data. Layer resolution is the only behavior here:
// Resolve walks the active layer stack top-down, skipping transparent
// entries, and stops at the first concrete keycode.
package layout

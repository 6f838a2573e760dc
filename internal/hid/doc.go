// Package hid provides the keycode, modifier, and key event types shared by
// the keymap engine.
//
// This package defines the fundamental vocabulary of the firmware model:
//
//   - Keycode: Identifies a logical key (basic keys, media keys, firmware
//     keys, layer keys, and custom keys like KeycodeQuickEsc)
//   - Modifier: Bitmask of held modifier keys (Ctrl, Shift, Alt, Gui)
//   - Event: A single press or release of one key with a tick timestamp
//   - Report: One synthesized HID emission produced by the engine
//
// # Keycode Packing
//
// Like QMK's 16-bit keycodes, a Keycode can carry modifier bits in its upper
// byte so that a single table entry expresses a combination such as
// Gui(KeycodeGrave) or RAlt(KeycodeSpace). Base() and PackedMods() split a
// packed keycode back into its parts.
//
// # Time
//
// Event timestamps are 16-bit monotonic ticks maintained by the host. The
// counter wraps; callers must only ever compare elapsed differences using
// Elapsed, never absolute values.
package hid

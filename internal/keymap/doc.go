// Package keymap provides user keymap overrides on top of the built-in
// layer tables.
//
// An override file is a small JSON document remapping individual key
// positions on one or more layers:
//
//	{
//	  "name": "media-tweaks",
//	  "priority": 10,
//	  "overrides": [
//	    {"layer": "win_fn1", "key": 7, "keycode": "media_prev"},
//	    {"layer": "fn2", "key": 49, "keycode": "rgb_toggle"}
//	  ]
//	}
//
// Keycode names are the canonical names from the hid package, including
// packed forms like "gui(grave)" and layer keys like "mo(2)".
//
// The Registry collects loaded keymaps and composes them over the default
// tables; higher priority wins, ties resolve by registration order.
package keymap

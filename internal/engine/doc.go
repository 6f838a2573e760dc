// Package engine ties the keymap together: layer resolution, the
// Escape/Grave disambiguator, the optional Lua hook, and default key
// handling against the host.
//
// The pipeline for every physical key transition is:
//
//  1. Resolve the position to a keycode through the active layer stack
//     (press-time resolution is replayed on release).
//  2. Offer the event to the escape disambiguator.
//  3. Offer it to the user script hook, if one is loaded.
//  4. Perform the default action: momentary layer shifts, modifier
//     register/unregister, or a tap.
//
// The engine holds no locks and starts no goroutines; it is driven
// entirely from the caller's event loop, with Tick called between
// events so press-deferred decisions can fire.
package engine

// Package script runs user-supplied Lua hooks against key events.
//
// A script defines an on_key function:
//
//	function on_key(keycode, pressed, mods)
//	    if keycode == "f17" and pressed then
//	        kb.tap("escape")
//	        return true
//	    end
//	    return false
//	end
//
// Returning true consumes the event. The script runs in a sandboxed Lua
// state: only base, table, string and math libraries are open, and file
// loading primitives are removed. The kb module exposes the output device.
package script

import (
	"errors"
	"fmt"
	"os"

	lua "github.com/yuin/gopher-lua"

	"github.com/nikallass/quickesc/internal/hid"
	"github.com/nikallass/quickesc/internal/host"
)

// HookName is the Lua function the engine invokes for every key event.
const HookName = "on_key"

// Errors returned by the script package.
var (
	ErrClosed = errors.New("script: state closed")
	ErrNoHook = errors.New("script: on_key is not defined")
)

// Hook wraps a sandboxed Lua state holding a user script.
//
// gopher-lua states are not goroutine-safe. Hook is meant to be driven
// from the engine's single event loop and adds no locking of its own.
type Hook struct {
	L      *lua.LState
	host   host.Host
	closed bool
}

// New creates a sandboxed hook bound to the given output device.
func New(h host.Host) *Hook {
	L := lua.NewState(lua.Options{
		SkipOpenLibs: true,
	})

	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)

	// io, os, debug and package stay closed. Strip the loaders that
	// would let a script pull code from disk anyway.
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring"} {
		L.SetGlobal(name, lua.LNil)
	}

	hook := &Hook{L: L, host: h}
	hook.installKBModule()
	return hook
}

// installKBModule registers the kb table with output functions.
func (s *Hook) installKBModule() {
	mod := s.L.SetFuncs(s.L.NewTable(), map[string]lua.LGFunction{
		"tap":   s.luaTap,
		"tap16": s.luaTap16,
		"mods":  s.luaMods,
	})
	s.L.SetGlobal("kb", mod)
}

// luaTap implements kb.tap(keycode_name).
func (s *Hook) luaTap(L *lua.LState) int {
	name := L.CheckString(1)
	kc, ok := hid.KeycodeFromName(name)
	if !ok {
		L.RaiseError("kb.tap: unknown keycode %q", name)
		return 0
	}
	s.host.TapCode(kc)
	return 0
}

// luaTap16 implements kb.tap16(keycode_name, mods_name).
func (s *Hook) luaTap16(L *lua.LState) int {
	name := L.CheckString(1)
	modName := L.CheckString(2)
	kc, ok := hid.KeycodeFromName(name)
	if !ok {
		L.RaiseError("kb.tap16: unknown keycode %q", name)
		return 0
	}
	s.host.TapCode16(kc, hid.ParseModifiers(modName))
	return 0
}

// luaMods implements kb.mods() -> string of active modifiers.
func (s *Hook) luaMods(L *lua.LState) int {
	L.Push(lua.LString(s.host.Mods().String()))
	return 1
}

// LoadFile compiles and runs a script file, leaving its definitions in
// the state.
func (s *Hook) LoadFile(path string) error {
	if s.closed {
		return ErrClosed
	}
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("script: %w", err)
	}
	if err := s.L.DoFile(path); err != nil {
		return fmt.Errorf("script: load %s: %w", path, err)
	}
	return nil
}

// LoadString compiles and runs script source.
func (s *Hook) LoadString(code string) error {
	if s.closed {
		return ErrClosed
	}
	if err := s.L.DoString(code); err != nil {
		return fmt.Errorf("script: load: %w", err)
	}
	return nil
}

// HasHook reports whether the loaded script defined on_key.
func (s *Hook) HasHook() bool {
	if s.closed {
		return false
	}
	fn := s.L.GetGlobal(HookName)
	return fn.Type() == lua.LTFunction
}

// OnKey invokes the script's on_key function for an event. It returns
// true when the script consumed the event. A script without on_key
// returns ErrNoHook; the engine treats that as pass-through.
func (s *Hook) OnKey(ev hid.Event, mods hid.Modifier) (bool, error) {
	if s.closed {
		return false, ErrClosed
	}

	fn := s.L.GetGlobal(HookName)
	if fn.Type() != lua.LTFunction {
		return false, ErrNoHook
	}

	err := s.L.CallByParam(lua.P{
		Fn:      fn,
		NRet:    1,
		Protect: true,
	}, lua.LString(ev.Keycode.String()), lua.LBool(ev.Pressed), lua.LString(mods.String()))
	if err != nil {
		return false, fmt.Errorf("script: on_key: %w", err)
	}

	ret := s.L.Get(-1)
	s.L.Pop(1)
	return lua.LVAsBool(ret), nil
}

// Close releases the Lua state.
func (s *Hook) Close() {
	if s.closed {
		return
	}
	s.L.Close()
	s.closed = true
}

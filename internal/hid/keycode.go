package hid

import (
	"fmt"
	"strconv"
	"strings"
)

// Keycode identifies a logical key. The low byte holds a basic keycode; the
// upper byte can carry packed modifier bits (see Ctrl, Shift, Alt, Gui, RAlt)
// or mark a layer key (see Momentary).
type Keycode uint16

// Basic keycodes. All values fit in the low byte.
const (
	// KeycodeNone ignores the key position entirely.
	KeycodeNone Keycode = iota

	// KeycodeTransparent defers to the next lower active layer.
	KeycodeTransparent

	// Letters
	KeycodeA
	KeycodeB
	KeycodeC
	KeycodeD
	KeycodeE
	KeycodeF
	KeycodeG
	KeycodeH
	KeycodeI
	KeycodeJ
	KeycodeK
	KeycodeL
	KeycodeM
	KeycodeN
	KeycodeO
	KeycodeP
	KeycodeQ
	KeycodeR
	KeycodeS
	KeycodeT
	KeycodeU
	KeycodeV
	KeycodeW
	KeycodeX
	KeycodeY
	KeycodeZ

	// Digits
	Keycode1
	Keycode2
	Keycode3
	Keycode4
	Keycode5
	Keycode6
	Keycode7
	Keycode8
	Keycode9
	Keycode0

	// Control and whitespace
	KeycodeEnter
	KeycodeEscape
	KeycodeBackspace
	KeycodeTab
	KeycodeSpace

	// Punctuation
	KeycodeMinus
	KeycodeEqual
	KeycodeLeftBracket
	KeycodeRightBracket
	KeycodeBackslash
	KeycodeSemicolon
	KeycodeQuote
	KeycodeGrave
	KeycodeComma
	KeycodeDot
	KeycodeSlash

	// Function keys
	KeycodeF1
	KeycodeF2
	KeycodeF3
	KeycodeF4
	KeycodeF5
	KeycodeF6
	KeycodeF7
	KeycodeF8
	KeycodeF9
	KeycodeF10
	KeycodeF11
	KeycodeF12
	KeycodeF13
	KeycodeF14
	KeycodeF15
	KeycodeF16
	KeycodeF17

	// Navigation
	KeycodeDelete
	KeycodeHome
	KeycodeEnd
	KeycodePageUp
	KeycodePageDown
	KeycodeUp
	KeycodeDown
	KeycodeLeft
	KeycodeRight

	// Modifier keys
	KeycodeLeftCtrl
	KeycodeLeftShift
	KeycodeLeftAlt
	KeycodeLeftGui
	KeycodeRightCtrl
	KeycodeRightShift
	KeycodeRightAlt
	KeycodeRightGui

	// Media and system keys
	KeycodeBrightnessDown
	KeycodeBrightnessUp
	KeycodeMissionControl
	KeycodeLaunchpad
	KeycodeTaskView
	KeycodeFileExplorer
	KeycodeMediaPrev
	KeycodeMediaPlayPause
	KeycodeMediaNext
	KeycodeMute
	KeycodeVolumeDown
	KeycodeVolumeUp

	// Firmware keys, forwarded to the host as-is
	KeycodeRGBToggle
	KeycodeRGBModeNext
	KeycodeRGBModePrev
	KeycodeRGBHueUp
	KeycodeRGBHueDown
	KeycodeRGBSatUp
	KeycodeRGBSatDown
	KeycodeRGBValUp
	KeycodeRGBValDown
	KeycodeRGBSpeedUp
	KeycodeRGBSpeedDown
	KeycodeBTHost1
	KeycodeBTHost2
	KeycodeBTHost3
	KeycodeRadio2G4
	KeycodeNKROToggle
	KeycodeBatteryLevel

	// Custom keycodes
	KeycodeQuickEsc

	keycodeBasicMax
)

// Packed modifier bits in the upper byte of a Keycode.
const (
	modBitCtrl  Keycode = 0x0100
	modBitShift Keycode = 0x0200
	modBitAlt   Keycode = 0x0400
	modBitGui   Keycode = 0x0800
	modBitRight Keycode = 0x1000

	modBitsMask Keycode = 0x1F00
)

// Layer key encoding: 0x52nn is a momentary layer switch to layer nn.
const (
	momentaryBase Keycode = 0x5200
	momentaryMask Keycode = 0xFF00
)

// Ctrl returns kc with the Ctrl modifier packed in.
func Ctrl(kc Keycode) Keycode { return kc | modBitCtrl }

// Shift returns kc with the Shift modifier packed in.
func Shift(kc Keycode) Keycode { return kc | modBitShift }

// Alt returns kc with the Alt modifier packed in.
func Alt(kc Keycode) Keycode { return kc | modBitAlt }

// Gui returns kc with the Gui modifier packed in.
func Gui(kc Keycode) Keycode { return kc | modBitGui }

// RAlt returns kc with the right Alt (Option) modifier packed in.
func RAlt(kc Keycode) Keycode { return kc | modBitAlt | modBitRight }

// Momentary returns a keycode that activates the given layer while held.
func Momentary(layer uint8) Keycode {
	return momentaryBase | Keycode(layer)
}

// Base returns the basic keycode with any packed modifiers stripped.
func (k Keycode) Base() Keycode {
	if k.IsMomentary() {
		return k
	}
	return k &^ modBitsMask
}

// PackedMods returns the modifier mask packed into the upper byte.
// The right-hand flag does not change the mask.
func (k Keycode) PackedMods() Modifier {
	if k.IsMomentary() {
		return ModNone
	}
	var m Modifier
	if k&modBitCtrl != 0 {
		m = m.With(ModCtrl)
	}
	if k&modBitShift != 0 {
		m = m.With(ModShift)
	}
	if k&modBitAlt != 0 {
		m = m.With(ModAlt)
	}
	if k&modBitGui != 0 {
		m = m.With(ModGui)
	}
	return m
}

// HasPackedMods returns true if the keycode carries packed modifiers.
func (k Keycode) HasPackedMods() bool {
	return !k.IsMomentary() && k&modBitsMask != 0
}

// IsBasic returns true for plain keycodes without packing.
func (k Keycode) IsBasic() bool {
	return k < keycodeBasicMax
}

// IsMomentary returns true if this is a momentary layer key.
func (k Keycode) IsMomentary() bool {
	return k&momentaryMask == momentaryBase
}

// MomentaryLayer returns the target layer of a momentary layer key.
func (k Keycode) MomentaryLayer() (uint8, bool) {
	if !k.IsMomentary() {
		return 0, false
	}
	return uint8(k & 0x00FF), true
}

// IsModifierKey returns true for the physical modifier keys (LCtrl..RGui).
func (k Keycode) IsModifierKey() bool {
	return k >= KeycodeLeftCtrl && k <= KeycodeRightGui
}

// ModifierBit returns the modifier mask a physical modifier key contributes
// while held, or ModNone for any other keycode.
func (k Keycode) ModifierBit() Modifier {
	switch k {
	case KeycodeLeftCtrl, KeycodeRightCtrl:
		return ModCtrl
	case KeycodeLeftShift, KeycodeRightShift:
		return ModShift
	case KeycodeLeftAlt, KeycodeRightAlt:
		return ModAlt
	case KeycodeLeftGui, KeycodeRightGui:
		return ModGui
	default:
		return ModNone
	}
}

// keycodeNames maps basic keycodes to their canonical names, as used in
// keymap override files.
var keycodeNames = map[Keycode]string{
	KeycodeNone:           "none",
	KeycodeTransparent:    "transparent",
	KeycodeA:              "a",
	KeycodeB:              "b",
	KeycodeC:              "c",
	KeycodeD:              "d",
	KeycodeE:              "e",
	KeycodeF:              "f",
	KeycodeG:              "g",
	KeycodeH:              "h",
	KeycodeI:              "i",
	KeycodeJ:              "j",
	KeycodeK:              "k",
	KeycodeL:              "l",
	KeycodeM:              "m",
	KeycodeN:              "n",
	KeycodeO:              "o",
	KeycodeP:              "p",
	KeycodeQ:              "q",
	KeycodeR:              "r",
	KeycodeS:              "s",
	KeycodeT:              "t",
	KeycodeU:              "u",
	KeycodeV:              "v",
	KeycodeW:              "w",
	KeycodeX:              "x",
	KeycodeY:              "y",
	KeycodeZ:              "z",
	Keycode1:              "1",
	Keycode2:              "2",
	Keycode3:              "3",
	Keycode4:              "4",
	Keycode5:              "5",
	Keycode6:              "6",
	Keycode7:              "7",
	Keycode8:              "8",
	Keycode9:              "9",
	Keycode0:              "0",
	KeycodeEnter:          "enter",
	KeycodeEscape:         "escape",
	KeycodeBackspace:      "backspace",
	KeycodeTab:            "tab",
	KeycodeSpace:          "space",
	KeycodeMinus:          "minus",
	KeycodeEqual:          "equal",
	KeycodeLeftBracket:    "left_bracket",
	KeycodeRightBracket:   "right_bracket",
	KeycodeBackslash:      "backslash",
	KeycodeSemicolon:      "semicolon",
	KeycodeQuote:          "quote",
	KeycodeGrave:          "grave",
	KeycodeComma:          "comma",
	KeycodeDot:            "dot",
	KeycodeSlash:          "slash",
	KeycodeF1:             "f1",
	KeycodeF2:             "f2",
	KeycodeF3:             "f3",
	KeycodeF4:             "f4",
	KeycodeF5:             "f5",
	KeycodeF6:             "f6",
	KeycodeF7:             "f7",
	KeycodeF8:             "f8",
	KeycodeF9:             "f9",
	KeycodeF10:            "f10",
	KeycodeF11:            "f11",
	KeycodeF12:            "f12",
	KeycodeF13:            "f13",
	KeycodeF14:            "f14",
	KeycodeF15:            "f15",
	KeycodeF16:            "f16",
	KeycodeF17:            "f17",
	KeycodeDelete:         "delete",
	KeycodeHome:           "home",
	KeycodeEnd:            "end",
	KeycodePageUp:         "page_up",
	KeycodePageDown:       "page_down",
	KeycodeUp:             "up",
	KeycodeDown:           "down",
	KeycodeLeft:           "left",
	KeycodeRight:          "right",
	KeycodeLeftCtrl:       "left_ctrl",
	KeycodeLeftShift:      "left_shift",
	KeycodeLeftAlt:        "left_alt",
	KeycodeLeftGui:        "left_gui",
	KeycodeRightCtrl:      "right_ctrl",
	KeycodeRightShift:     "right_shift",
	KeycodeRightAlt:       "right_alt",
	KeycodeRightGui:       "right_gui",
	KeycodeBrightnessDown: "brightness_down",
	KeycodeBrightnessUp:   "brightness_up",
	KeycodeMissionControl: "mission_control",
	KeycodeLaunchpad:      "launchpad",
	KeycodeTaskView:       "task_view",
	KeycodeFileExplorer:   "file_explorer",
	KeycodeMediaPrev:      "media_prev",
	KeycodeMediaPlayPause: "media_play_pause",
	KeycodeMediaNext:      "media_next",
	KeycodeMute:           "mute",
	KeycodeVolumeDown:     "volume_down",
	KeycodeVolumeUp:       "volume_up",
	KeycodeRGBToggle:      "rgb_toggle",
	KeycodeRGBModeNext:    "rgb_mode_next",
	KeycodeRGBModePrev:    "rgb_mode_prev",
	KeycodeRGBHueUp:       "rgb_hue_up",
	KeycodeRGBHueDown:     "rgb_hue_down",
	KeycodeRGBSatUp:       "rgb_sat_up",
	KeycodeRGBSatDown:     "rgb_sat_down",
	KeycodeRGBValUp:       "rgb_val_up",
	KeycodeRGBValDown:     "rgb_val_down",
	KeycodeRGBSpeedUp:     "rgb_speed_up",
	KeycodeRGBSpeedDown:   "rgb_speed_down",
	KeycodeBTHost1:        "bt_host_1",
	KeycodeBTHost2:        "bt_host_2",
	KeycodeBTHost3:        "bt_host_3",
	KeycodeRadio2G4:       "radio_2g4",
	KeycodeNKROToggle:     "nkro_toggle",
	KeycodeBatteryLevel:   "battery_level",
	KeycodeQuickEsc:       "quick_esc",
}

// keycodeByName is the reverse of keycodeNames.
var keycodeByName = func() map[string]Keycode {
	m := make(map[string]Keycode, len(keycodeNames))
	for kc, name := range keycodeNames {
		m[name] = kc
	}
	return m
}()

// String returns the canonical name of the keycode. Packed keycodes render
// as "gui(grave)" or "ralt(space)", momentary layer keys as "mo(2)".
func (k Keycode) String() string {
	if layer, ok := k.MomentaryLayer(); ok {
		return fmt.Sprintf("mo(%d)", layer)
	}
	if k.HasPackedMods() {
		return packedPrefix(k) + "(" + k.Base().String() + ")"
	}
	if name, ok := keycodeNames[k]; ok {
		return name
	}
	return fmt.Sprintf("keycode(0x%04X)", uint16(k))
}

func packedPrefix(k Keycode) string {
	right := k&modBitRight != 0
	var parts []string
	if k&modBitCtrl != 0 {
		parts = append(parts, prefixed("ctrl", right))
	}
	if k&modBitShift != 0 {
		parts = append(parts, prefixed("shift", right))
	}
	if k&modBitAlt != 0 {
		parts = append(parts, prefixed("alt", right))
	}
	if k&modBitGui != 0 {
		parts = append(parts, prefixed("gui", right))
	}
	return strings.Join(parts, "+")
}

func prefixed(name string, right bool) string {
	if right {
		return "r" + name
	}
	return name
}

// KeycodeFromName parses a canonical keycode name, including packed forms
// like "gui(grave)" and layer keys like "mo(2)". Returns KeycodeNone and
// false if the name is not recognized.
func KeycodeFromName(name string) (Keycode, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if kc, ok := keycodeByName[name]; ok {
		return kc, true
	}

	open := strings.IndexByte(name, '(')
	if open <= 0 || !strings.HasSuffix(name, ")") {
		return KeycodeNone, false
	}
	prefix := name[:open]
	inner := name[open+1 : len(name)-1]

	if prefix == "mo" {
		layer, err := strconv.ParseUint(inner, 10, 8)
		if err != nil {
			return KeycodeNone, false
		}
		return Momentary(uint8(layer)), true
	}

	base, ok := KeycodeFromName(inner)
	if !ok || !base.IsBasic() {
		return KeycodeNone, false
	}
	kc := base
	for _, part := range strings.Split(prefix, "+") {
		switch part {
		case "ctrl":
			kc = Ctrl(kc)
		case "shift":
			kc = Shift(kc)
		case "alt":
			kc = Alt(kc)
		case "gui":
			kc = Gui(kc)
		case "ralt":
			kc = RAlt(kc)
		default:
			return KeycodeNone, false
		}
	}
	return kc, true
}

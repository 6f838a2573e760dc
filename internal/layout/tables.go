package layout

import "github.com/nikallass/quickesc/internal/hid"

// KeyCount is the number of physical keys on the 68-key ANSI board.
const KeyCount = 68

// Keys is one layer's key table, indexed by physical key position in
// reading order (left to right, top to bottom).
type Keys [KeyCount]hid.Keycode

// Keymaps holds the key table for every layer.
type Keymaps [NumLayers]Keys

// Shorthand for the tables below, mirroring the keycap legends.
const (
	kcTrns = hid.KeycodeTransparent
	qkEsc  = hid.KeycodeQuickEsc

	kcA = hid.KeycodeA
	kcB = hid.KeycodeB
	kcC = hid.KeycodeC
	kcD = hid.KeycodeD
	kcE = hid.KeycodeE
	kcF = hid.KeycodeF
	kcG = hid.KeycodeG
	kcH = hid.KeycodeH
	kcI = hid.KeycodeI
	kcJ = hid.KeycodeJ
	kcK = hid.KeycodeK
	kcL = hid.KeycodeL
	kcM = hid.KeycodeM
	kcN = hid.KeycodeN
	kcO = hid.KeycodeO
	kcP = hid.KeycodeP
	kcQ = hid.KeycodeQ
	kcR = hid.KeycodeR
	kcS = hid.KeycodeS
	kcT = hid.KeycodeT
	kcU = hid.KeycodeU
	kcV = hid.KeycodeV
	kcW = hid.KeycodeW
	kcX = hid.KeycodeX
	kcY = hid.KeycodeY
	kcZ = hid.KeycodeZ

	kc1 = hid.Keycode1
	kc2 = hid.Keycode2
	kc3 = hid.Keycode3
	kc4 = hid.Keycode4
	kc5 = hid.Keycode5
	kc6 = hid.Keycode6
	kc7 = hid.Keycode7
	kc8 = hid.Keycode8
	kc9 = hid.Keycode9
	kc0 = hid.Keycode0

	kcMins = hid.KeycodeMinus
	kcEql  = hid.KeycodeEqual
	kcBspc = hid.KeycodeBackspace
	kcDel  = hid.KeycodeDelete
	kcTab  = hid.KeycodeTab
	kcLbrc = hid.KeycodeLeftBracket
	kcRbrc = hid.KeycodeRightBracket
	kcBsls = hid.KeycodeBackslash
	kcHome = hid.KeycodeHome
	kcEnd  = hid.KeycodeEnd
	kcScln = hid.KeycodeSemicolon
	kcQuot = hid.KeycodeQuote
	kcEnt  = hid.KeycodeEnter
	kcPgup = hid.KeycodePageUp
	kcPgdn = hid.KeycodePageDown
	kcComm = hid.KeycodeComma
	kcDot  = hid.KeycodeDot
	kcSlsh = hid.KeycodeSlash
	kcSpc  = hid.KeycodeSpace
	kcGrv  = hid.KeycodeGrave
	kcUp   = hid.KeycodeUp
	kcDown = hid.KeycodeDown
	kcLeft = hid.KeycodeLeft
	kcRght = hid.KeycodeRight

	kcLctl = hid.KeycodeLeftCtrl
	kcLsft = hid.KeycodeLeftShift
	kcLalt = hid.KeycodeLeftAlt
	kcLgui = hid.KeycodeLeftGui
	kcRsft = hid.KeycodeRightShift
	kcRalt = hid.KeycodeRightAlt
	kcRgui = hid.KeycodeRightGui

	kcF1  = hid.KeycodeF1
	kcF2  = hid.KeycodeF2
	kcF3  = hid.KeycodeF3
	kcF4  = hid.KeycodeF4
	kcF5  = hid.KeycodeF5
	kcF6  = hid.KeycodeF6
	kcF7  = hid.KeycodeF7
	kcF8  = hid.KeycodeF8
	kcF9  = hid.KeycodeF9
	kcF10 = hid.KeycodeF10
	kcF11 = hid.KeycodeF11
	kcF12 = hid.KeycodeF12
	kcF17 = hid.KeycodeF17

	kcBrid = hid.KeycodeBrightnessDown
	kcBriu = hid.KeycodeBrightnessUp
	kcMctl = hid.KeycodeMissionControl
	kcLpad = hid.KeycodeLaunchpad
	kcTask = hid.KeycodeTaskView
	kcFile = hid.KeycodeFileExplorer
	kcMprv = hid.KeycodeMediaPrev
	kcMply = hid.KeycodeMediaPlayPause
	kcMnxt = hid.KeycodeMediaNext
	kcMute = hid.KeycodeMute
	kcVold = hid.KeycodeVolumeDown
	kcVolu = hid.KeycodeVolumeUp

	rgbTog  = hid.KeycodeRGBToggle
	rgbMod  = hid.KeycodeRGBModeNext
	rgbRmod = hid.KeycodeRGBModePrev
	rgbHui  = hid.KeycodeRGBHueUp
	rgbHud  = hid.KeycodeRGBHueDown
	rgbSai  = hid.KeycodeRGBSatUp
	rgbSad  = hid.KeycodeRGBSatDown
	rgbVai  = hid.KeycodeRGBValUp
	rgbVad  = hid.KeycodeRGBValDown
	rgbSpi  = hid.KeycodeRGBSpeedUp
	rgbSpd  = hid.KeycodeRGBSpeedDown
	btHst1  = hid.KeycodeBTHost1
	btHst2  = hid.KeycodeBTHost2
	btHst3  = hid.KeycodeBTHost3
	p2p4g   = hid.KeycodeRadio2G4
	nkTogg  = hid.KeycodeNKROToggle
	batLvl  = hid.KeycodeBatteryLevel
)

var (
	moMacFn1 = hid.Momentary(uint8(MacFn1))
	moWinFn1 = hid.Momentary(uint8(WinFn1))
	moFn2    = hid.Momentary(uint8(Fn2))
	roptSpc  = hid.RAlt(hid.KeycodeSpace)
)

// DefaultKeymaps returns the built-in layer tables.
func DefaultKeymaps() Keymaps {
	return Keymaps{
		MacBase: {
			qkEsc, kc1, kc2, kc3, kc4, kc5, kc6, kc7, kc8, kc9, kc0, kcMins, kcEql, kcBspc, kcDel,
			kcTab, kcQ, kcW, kcE, kcR, kcT, kcY, kcU, kcI, kcO, kcP, kcLbrc, kcRbrc, kcBsls, kcHome,
			kcF17, kcA, kcS, kcD, kcF, kcG, kcH, kcJ, kcK, kcL, kcScln, kcQuot, kcEnt, kcPgup,
			kcLsft, kcZ, kcX, kcC, kcV, kcB, kcN, kcM, kcComm, kcDot, kcSlsh, kcRsft, kcUp, kcPgdn,
			kcLctl, kcLalt, kcLgui, kcSpc, kcRgui, moMacFn1, moFn2, kcLeft, kcDown, kcRght,
		},
		WinBase: {
			qkEsc, kc1, kc2, kc3, kc4, kc5, kc6, kc7, kc8, kc9, kc0, kcMins, kcEql, kcBspc, kcDel,
			kcTab, kcQ, kcW, kcE, kcR, kcT, kcY, kcU, kcI, kcO, kcP, kcLbrc, kcRbrc, kcBsls, kcHome,
			kcF17, kcA, kcS, kcD, kcF, kcG, kcH, kcJ, kcK, kcL, kcScln, kcQuot, kcEnt, kcPgup,
			kcLsft, kcZ, kcX, kcC, kcV, kcB, kcN, kcM, kcComm, kcDot, kcSlsh, kcRsft, kcUp, kcPgdn,
			kcLctl, kcLgui, kcLalt, kcSpc, kcRalt, moWinFn1, moFn2, kcLeft, kcDown, kcRght,
		},
		MacFn1: {
			kcGrv, kcBrid, kcBriu, kcMctl, kcLpad, rgbVad, rgbVai, kcMprv, kcMply, kcMnxt, kcMute, kcVold, kcVolu, kcTrns, kcTrns,
			kcTrns, btHst1, btHst2, btHst3, p2p4g, kcTrns, kcTrns, kcTrns, kcTrns, kcTrns, kcTrns, kcTrns, kcTrns, kcTrns, kcEnd,
			rgbTog, rgbMod, rgbVai, rgbHui, rgbSai, rgbSpi, kcTrns, kcTrns, kcTrns, kcTrns, kcTrns, kcGrv, kcTrns, kcTrns,
			kcTrns, rgbRmod, rgbVad, rgbHud, rgbSad, rgbSpd, nkTogg, kcTrns, kcTrns, kcTrns, kcTrns, kcTrns, kcTrns, kcTrns,
			kcTrns, kcTrns, kcTrns, roptSpc, kcTrns, kcTrns, kcTrns, kcTrns, kcTrns, kcTrns,
		},
		WinFn1: {
			kcGrv, kcBrid, kcBriu, kcTask, kcFile, rgbVad, rgbVai, kcMprv, kcMply, kcMnxt, kcMute, kcVold, kcVolu, kcTrns, kcTrns,
			kcTrns, btHst1, btHst2, btHst3, p2p4g, kcTrns, kcTrns, kcTrns, kcTrns, kcTrns, kcTrns, kcTrns, kcTrns, kcTrns, kcEnd,
			rgbTog, rgbMod, rgbVai, rgbHui, rgbSai, rgbSpi, kcTrns, kcTrns, kcTrns, kcTrns, kcTrns, kcGrv, kcTrns, kcTrns,
			kcTrns, rgbRmod, rgbVad, rgbHud, rgbSad, rgbSpd, nkTogg, kcTrns, kcTrns, kcTrns, kcTrns, kcTrns, kcTrns, kcTrns,
			kcTrns, kcTrns, kcTrns, kcTrns, kcTrns, kcTrns, kcTrns, kcTrns, kcTrns, kcTrns,
		},
		Fn2: {
			kcGrv, kcF1, kcF2, kcF3, kcF4, kcF5, kcF6, kcF7, kcF8, kcF9, kcF10, kcF11, kcF12, kcTrns, kcTrns,
			kcTrns, kcTrns, kcTrns, kcTrns, kcTrns, kcTrns, kcTrns, kcTrns, kcTrns, kcTrns, kcTrns, kcTrns, kcTrns, kcTrns, kcTrns,
			kcTrns, kcTrns, kcTrns, kcTrns, kcTrns, kcTrns, kcTrns, kcTrns, kcTrns, kcTrns, kcTrns, kcGrv, kcTrns, kcTrns,
			kcTrns, kcTrns, kcTrns, kcTrns, kcTrns, batLvl, kcTrns, kcTrns, kcTrns, kcTrns, kcTrns, kcTrns, kcTrns, kcTrns,
			kcTrns, kcTrns, kcTrns, kcTrns, kcTrns, kcTrns, kcTrns, kcTrns, kcTrns, kcTrns,
		},
	}
}

// Position describes where a key sits on the board, in quarter key units.
type Position struct {
	Row   int
	X     int
	Width int
}

// rowWidths lists each key's width per row, in quarter key units.
var rowWidths = [][]int{
	{4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 8, 4},
	{6, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 6, 4},
	{7, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 9, 4},
	{9, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 7, 4, 4},
	{5, 5, 5, 25, 4, 4, 4, 4, 4, 4},
}

// Positions returns the physical position of every key, indexed like Keys.
func Positions() [KeyCount]Position {
	var pos [KeyCount]Position
	idx := 0
	for row, widths := range rowWidths {
		x := 0
		for _, w := range widths {
			pos[idx] = Position{Row: row, X: x, Width: w}
			x += w
			idx++
		}
	}
	return pos
}

package hid

import "testing"

func TestModifierHIDBits(t *testing.T) {
	tests := []struct {
		mod  Modifier
		want Modifier
	}{
		{ModCtrl, 0x01},
		{ModShift, 0x02},
		{ModAlt, 0x04},
		{ModGui, 0x08},
		{ModNone, 0x00},
	}

	for _, tt := range tests {
		if tt.mod != tt.want {
			t.Errorf("%s = 0x%02x, want 0x%02x", tt.mod, uint8(tt.mod), uint8(tt.want))
		}
	}
}

func TestModifierHas(t *testing.T) {
	tests := []struct {
		mod    Modifier
		check  Modifier
		expect bool
	}{
		{ModNone, ModCtrl, false},
		{ModCtrl, ModCtrl, true},
		{ModGui | ModShift, ModGui, true},
		{ModGui | ModShift, ModShift, true},
		{ModGui | ModShift, ModAlt, false},
		{ModCtrl | ModShift | ModAlt | ModGui, ModGui, true},
	}

	for _, tt := range tests {
		if got := tt.mod.Has(tt.check); got != tt.expect {
			t.Errorf("Modifier(%d).Has(%d) = %v, want %v", tt.mod, tt.check, got, tt.expect)
		}
	}
}

func TestModifierOnly(t *testing.T) {
	tests := []struct {
		name   string
		mod    Modifier
		check  Modifier
		expect bool
	}{
		{"exactly shift", ModShift, ModShift, true},
		{"shift plus gui", ModShift | ModGui, ModShift, false},
		{"exactly alt", ModAlt, ModAlt, true},
		{"none", ModNone, ModShift, false},
		{"gui alone", ModGui, ModGui, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.mod.Only(tt.check); got != tt.expect {
				t.Errorf("Only(%v) = %v, want %v", tt.check, got, tt.expect)
			}
		})
	}
}

func TestModifierWithWithout(t *testing.T) {
	mod := ModNone.With(ModShift).With(ModGui)
	if !mod.HasShift() || !mod.HasGui() {
		t.Error("With should accumulate modifiers")
	}

	mod = mod.Without(ModShift)
	if mod.HasShift() {
		t.Error("Without(ModShift) should remove Shift")
	}
	if !mod.HasGui() {
		t.Error("Without(ModShift) should keep Gui")
	}
}

func TestModifierString(t *testing.T) {
	tests := []struct {
		mod  Modifier
		want string
	}{
		{ModNone, ""},
		{ModCtrl, "Ctrl"},
		{ModShift, "Shift"},
		{ModAlt, "Alt"},
		{ModGui, "Gui"},
		{ModGui | ModShift, "Shift+Gui"},
		{ModCtrl | ModShift | ModAlt | ModGui, "Ctrl+Shift+Alt+Gui"},
	}

	for _, tt := range tests {
		if got := tt.mod.String(); got != tt.want {
			t.Errorf("Modifier(%d).String() = %q, want %q", tt.mod, got, tt.want)
		}
	}
}

func TestParseModifiers(t *testing.T) {
	tests := []struct {
		spec string
		want Modifier
	}{
		{"shift", ModShift},
		{"Gui+Shift", ModGui | ModShift},
		{"g-s", ModGui | ModShift},
		{"cmd", ModGui},
		{"option", ModAlt},
		{"bogus", ModNone},
		{"", ModNone},
	}

	for _, tt := range tests {
		if got := ParseModifiers(tt.spec); got != tt.want {
			t.Errorf("ParseModifiers(%q) = %v, want %v", tt.spec, got, tt.want)
		}
	}
}

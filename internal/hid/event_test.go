package hid

import "testing"

func TestElapsed(t *testing.T) {
	tests := []struct {
		name  string
		now   uint16
		since uint16
		want  uint16
	}{
		{"simple", 1500, 1000, 500},
		{"zero", 1000, 1000, 0},
		{"wraparound", 200, 65300, 436},
		{"full wrap minus one", 999, 1000, 65535},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Elapsed(tt.now, tt.since); got != tt.want {
				t.Errorf("Elapsed(%d, %d) = %d, want %d", tt.now, tt.since, got, tt.want)
			}
		})
	}
}

func TestEventString(t *testing.T) {
	press := NewPress(KeycodeQuickEsc, 42)
	if got := press.String(); got != "press quick_esc @42" {
		t.Errorf("String() = %q", got)
	}
	release := NewRelease(KeycodeGrave, 100)
	if got := release.String(); got != "release grave @100" {
		t.Errorf("String() = %q", got)
	}
}

func TestReportString(t *testing.T) {
	tests := []struct {
		report Report
		want   string
	}{
		{Report{Kind: ReportTap, Keycode: KeycodeGrave}, "tap grave"},
		{Report{Kind: ReportTap, Keycode: KeycodeGrave, Mods: ModGui | ModShift}, "tap grave+Shift+Gui"},
		{Report{Kind: ReportRegisterMods, Mods: ModShift}, "register_mods Shift"},
		{Report{Kind: ReportSetMods, Mods: ModNone}, "set_mods "},
	}

	for _, tt := range tests {
		if got := tt.report.String(); got != tt.want {
			t.Errorf("Report.String() = %q, want %q", got, tt.want)
		}
	}
}

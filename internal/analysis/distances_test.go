package analysis

import "testing"

func TestPresets(t *testing.T) {
	want := []Preset{
		{"5K", 5.0},
		{"10K", 10.0},
		{"Half Marathon", 21.097},
		{"Marathon", 42.195},
	}

	got := Presets()
	if len(got) != len(want) {
		t.Fatalf("Presets() returned %d entries, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Presets()[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestLookupPreset(t *testing.T) {
	tests := []struct {
		name   string
		wantKm float64
		wantOK bool
	}{
		{"5K", 5.0, true},
		{"5k", 5.0, true},
		{" half marathon ", 21.097, true},
		{"MARATHON", 42.195, true},
		{"Custom", 0, false},
		{"ultra", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := LookupPreset(tt.name)
			if ok != tt.wantOK || p.Km != tt.wantKm {
				t.Errorf("LookupPreset(%q) = %+v, %v; want %v, %v", tt.name, p, ok, tt.wantKm, tt.wantOK)
			}
		})
	}
}

func TestPredictionTargets(t *testing.T) {
	targets := PredictionTargets()
	presets := Presets()
	if len(targets) != 4 {
		t.Fatalf("PredictionTargets() returned %d, want 4", len(targets))
	}
	for i, target := range targets {
		if target.Name != presets[i].Name || target.Km != presets[i].Km {
			t.Errorf("target %d = %+v, want %+v", i, target, presets[i])
		}
	}
}

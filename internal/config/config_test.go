package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pacecalc/internal/analysis"
	"pacecalc/internal/input"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	// Test display defaults
	if cfg.Display.PaceUnit != "km" {
		t.Errorf("Display.PaceUnit = %q, want %q", cfg.Display.PaceUnit, "km")
	}
	if cfg.Display.DistancePreset != "5K" {
		t.Errorf("Display.DistancePreset = %q, want %q", cfg.Display.DistancePreset, "5K")
	}

	if cfg.Results.File != "results.txt" {
		t.Errorf("Results.File = %q, want results.txt", cfg.Results.File)
	}
	if !cfg.AppendResults() {
		t.Error("results should append by default")
	}
	if cfg.Prediction.RiegelExponent != 1.06 {
		t.Errorf("Prediction.RiegelExponent = %v, want 1.06", cfg.Prediction.RiegelExponent)
	}

	// Log file is resolved by the caller when empty
	if cfg.Log.File != "" {
		t.Errorf("Log.File should be empty, got %q", cfg.Log.File)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name        string
		modify      func(c *Config)
		expectError bool
		errContains string
	}{
		{
			name:   "valid config",
			modify: func(c *Config) {},
		},
		{
			name:   "mile unit",
			modify: func(c *Config) { c.Display.PaceUnit = "mile" },
		},
		{
			name:   "custom preset",
			modify: func(c *Config) { c.Display.DistancePreset = "Custom" },
		},
		{
			name:   "preset case insensitive",
			modify: func(c *Config) { c.Display.DistancePreset = "half marathon" },
		},
		{
			name:   "mile spelling",
			modify: func(c *Config) { c.Display.PaceUnit = "mi" },
		},
		{
			name:        "unknown unit",
			modify:      func(c *Config) { c.Display.PaceUnit = "furlong" },
			expectError: true,
			errContains: "pace_unit",
		},
		{
			name:        "unknown preset",
			modify:      func(c *Config) { c.Display.DistancePreset = "50K" },
			expectError: true,
			errContains: "distance_preset",
		},
		{
			name:        "empty results file",
			modify:      func(c *Config) { c.Results.File = "" },
			expectError: true,
			errContains: "results.file",
		},
		{
			name:        "negative exponent",
			modify:      func(c *Config) { c.Prediction.RiegelExponent = -1 },
			expectError: true,
			errContains: "riegel_exponent",
		},
		{
			name:        "huge exponent",
			modify:      func(c *Config) { c.Prediction.RiegelExponent = 3 },
			expectError: true,
			errContains: "riegel_exponent",
		},
		{
			name:        "negative backups",
			modify:      func(c *Config) { c.Log.MaxBackups = -1 },
			expectError: true,
			errContains: "max_backups",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)
			err := cfg.Validate()
			if tt.expectError {
				if err == nil {
					t.Error("expected error, got nil")
				} else if tt.errContains != "" && !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("error %q should contain %q", err.Error(), tt.errContains)
				}
			} else {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
			}
		})
	}
}

func TestLoadFrom(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{"display": {"pace_unit": "mile"}, "results": {"file": "/tmp/runs.txt", "append": false}}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}

	if cfg.Display.PaceUnit != "mile" {
		t.Errorf("Display.PaceUnit = %q, want mile", cfg.Display.PaceUnit)
	}
	if cfg.Results.File != "/tmp/runs.txt" {
		t.Errorf("Results.File = %q", cfg.Results.File)
	}
	if cfg.AppendResults() {
		t.Error("AppendResults() should be false when configured off")
	}

	// Missing values fall back to defaults
	if cfg.Display.DistancePreset != "5K" {
		t.Errorf("Display.DistancePreset = %q, want 5K", cfg.Display.DistancePreset)
	}
	if cfg.Prediction.RiegelExponent != 1.06 {
		t.Errorf("Prediction.RiegelExponent = %v, want 1.06", cfg.Prediction.RiegelExponent)
	}
	if cfg.Log.MaxSizeMB != 5 || cfg.Log.MaxBackups != 3 {
		t.Errorf("Log = %+v, want default rotation", cfg.Log)
	}
}

func TestLoadFrom_Missing(t *testing.T) {
	_, err := LoadFrom(filepath.Join(t.TempDir(), "nope.json"))
	if !errors.Is(err, ErrNoConfig) {
		t.Errorf("LoadFrom() error = %v, want ErrNoConfig", err)
	}
}

func TestLoadFrom_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadFrom(path)
	if err == nil || !strings.Contains(err.Error(), "parsing config file") {
		t.Errorf("LoadFrom() error = %v, want parse error", err)
	}
}

func TestCreateExample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.json")

	if err := CreateExample(path); err != nil {
		t.Fatalf("CreateExample() error = %v", err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if cfg.Results.Append == nil || !*cfg.Results.Append {
		t.Error("example config should spell out append: true")
	}

	// An existing file is left alone
	if err := os.WriteFile(path, []byte(`{"display": {"pace_unit": "mile"}}`), 0644); err != nil {
		t.Fatal(err)
	}
	if err := CreateExample(path); err != nil {
		t.Fatalf("CreateExample() error = %v", err)
	}
	cfg, err = LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if cfg.Display.PaceUnit != "mile" {
		t.Error("CreateExample overwrote an existing config")
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvResultsFile, "/data/results.txt")
	t.Setenv(EnvPaceUnit, "mile")
	t.Setenv(EnvRiegelExponent, "1.08")
	t.Setenv(EnvLogFile, "/var/log/pacecalc.log")

	cfg := DefaultConfig()
	cfg.ApplyEnv()

	if cfg.Results.File != "/data/results.txt" {
		t.Errorf("Results.File = %q", cfg.Results.File)
	}
	if cfg.Display.PaceUnit != "mile" {
		t.Errorf("Display.PaceUnit = %q", cfg.Display.PaceUnit)
	}
	if cfg.Prediction.RiegelExponent != 1.08 {
		t.Errorf("Prediction.RiegelExponent = %v", cfg.Prediction.RiegelExponent)
	}
	if cfg.Log.File != "/var/log/pacecalc.log" {
		t.Errorf("Log.File = %q", cfg.Log.File)
	}
}

func TestApplyEnv_NormalizesUnit(t *testing.T) {
	tests := []struct {
		env  string
		want string
	}{
		{"mi", "mile"},
		{"Miles", "mile"},
		{"min/km", "km"},
		{"furlong", "furlong"}, // left for Validate
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			t.Setenv(EnvPaceUnit, tt.env)

			cfg := DefaultConfig()
			cfg.ApplyEnv()

			if cfg.Display.PaceUnit != tt.want {
				t.Errorf("Display.PaceUnit = %q, want %q", cfg.Display.PaceUnit, tt.want)
			}
		})
	}

	t.Setenv(EnvPaceUnit, "mi")
	cfg := DefaultConfig()
	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() after %s=mi: %v", EnvPaceUnit, err)
	}
	if cfg.PaceUnit() != analysis.UnitMile {
		t.Errorf("PaceUnit() = %q, want mile", cfg.PaceUnit())
	}
}

func TestPaceUnit(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.PaceUnit() != analysis.UnitKm {
		t.Errorf("PaceUnit() = %q, want km", cfg.PaceUnit())
	}

	cfg.Display.PaceUnit = "furlong"
	if cfg.PaceUnit() != analysis.UnitKm {
		t.Errorf("unknown unit should fall back to km, got %q", cfg.PaceUnit())
	}
	if err := cfg.Validate(); !errors.Is(err, input.ErrUnknownUnit) {
		t.Errorf("Validate() error = %v, want ErrUnknownUnit", err)
	}
}

func TestLoadFrom_NormalizesUnit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"display": {"pace_unit": "Miles"}}`), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if cfg.Display.PaceUnit != "mile" {
		t.Errorf("Display.PaceUnit = %q, want mile", cfg.Display.PaceUnit)
	}
}

func TestApplyEnv_IgnoresBadValues(t *testing.T) {
	t.Setenv(EnvRiegelExponent, "steep")
	t.Setenv(EnvResultsFile, "")

	cfg := DefaultConfig()
	cfg.ApplyEnv()

	if cfg.Prediction.RiegelExponent != 1.06 {
		t.Errorf("Prediction.RiegelExponent = %v, want 1.06", cfg.Prediction.RiegelExponent)
	}
	if cfg.Results.File != "results.txt" {
		t.Errorf("Results.File = %q, want results.txt", cfg.Results.File)
	}
}

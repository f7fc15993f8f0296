package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"pacecalc/internal/analysis"
	"pacecalc/internal/input"
)

// Config represents the application configuration
type Config struct {
	Display    DisplayConfig    `json:"display"`
	Results    ResultsConfig    `json:"results"`
	Prediction PredictionConfig `json:"prediction"`
	Log        LogConfig        `json:"log"`
}

// DisplayConfig holds the form's starting values
type DisplayConfig struct {
	PaceUnit       string `json:"pace_unit"`
	DistancePreset string `json:"distance_preset"`
}

// ResultsConfig controls where saved reports go
type ResultsConfig struct {
	File   string `json:"file"`
	Append *bool  `json:"append,omitempty"` // nil means append
}

// PredictionConfig holds race prediction settings
type PredictionConfig struct {
	RiegelExponent float64 `json:"riegel_exponent"`
}

// LogConfig holds diagnostic log settings
type LogConfig struct {
	File       string `json:"file"`
	MaxSizeMB  int    `json:"max_size_mb"`
	MaxBackups int    `json:"max_backups"`
}

// Environment variables that override the config file
const (
	EnvResultsFile    = "PACECALC_RESULTS_FILE"
	EnvPaceUnit       = "PACECALC_PACE_UNIT"
	EnvRiegelExponent = "PACECALC_RIEGEL_EXPONENT"
	EnvLogFile        = "PACECALC_LOG_FILE"
)

// ErrNoConfig is returned when the config file doesn't exist
var ErrNoConfig = errors.New("config file not found")

var validPresets = []string{"5K", "10K", "Half Marathon", "Marathon", "Custom"}

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		Display: DisplayConfig{
			PaceUnit:       "km",
			DistancePreset: "5K",
		},
		Results: ResultsConfig{
			File: "results.txt",
		},
		Prediction: PredictionConfig{
			RiegelExponent: 1.06,
		},
		Log: LogConfig{
			MaxSizeMB:  5,
			MaxBackups: 3,
		},
	}
}

// LoadFrom reads the configuration from path, filling unset fields with defaults
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, ErrNoConfig
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyDefaults()
	cfg.normalizeUnit()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Display.PaceUnit == "" {
		c.Display.PaceUnit = defaults.Display.PaceUnit
	}
	if c.Display.DistancePreset == "" {
		c.Display.DistancePreset = defaults.Display.DistancePreset
	}
	if c.Results.File == "" {
		c.Results.File = defaults.Results.File
	}
	if c.Prediction.RiegelExponent == 0 {
		c.Prediction.RiegelExponent = defaults.Prediction.RiegelExponent
	}
	if c.Log.MaxSizeMB == 0 {
		c.Log.MaxSizeMB = defaults.Log.MaxSizeMB
	}
	if c.Log.MaxBackups == 0 {
		c.Log.MaxBackups = defaults.Log.MaxBackups
	}
}

// ApplyEnv overrides config values from PACECALC_* environment variables.
// Values that fail to parse are ignored.
func (c *Config) ApplyEnv() {
	c.Results.File = getEnv(EnvResultsFile, c.Results.File)
	c.Display.PaceUnit = getEnv(EnvPaceUnit, c.Display.PaceUnit)
	c.Prediction.RiegelExponent = getFloatEnv(EnvRiegelExponent, c.Prediction.RiegelExponent)
	c.Log.File = getEnv(EnvLogFile, c.Log.File)
	c.normalizeUnit()
}

// normalizeUnit rewrites spellings such as "mi" or "min/km" to "km" or "mile".
// Unknown values are left for Validate to report.
func (c *Config) normalizeUnit() {
	if unit, err := input.ParseUnit(c.Display.PaceUnit); err == nil {
		c.Display.PaceUnit = string(unit)
	}
}

// PaceUnit returns the configured pace unit, km when it is not recognized
func (c *Config) PaceUnit() analysis.Unit {
	unit, err := input.ParseUnit(c.Display.PaceUnit)
	if err != nil {
		return analysis.UnitKm
	}
	return unit
}

// AppendResults reports whether saves append to the results file
func (c *Config) AppendResults() bool {
	return c.Results.Append == nil || *c.Results.Append
}

// Save writes the configuration to path
func Save(cfg *Config, path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// CreateExample writes a config file with every default spelled out,
// unless one already exists at path
func CreateExample(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil // Config exists, don't overwrite
	}

	example := DefaultConfig()
	appendResults := true
	example.Results.Append = &appendResults

	return Save(&example, path)
}

// Validate checks that config values are usable
func (c *Config) Validate() error {
	if _, err := input.ParseUnit(c.Display.PaceUnit); err != nil {
		return fmt.Errorf("display.pace_unit must be \"km\" or \"mile\": %w", err)
	}

	if !isValidPreset(c.Display.DistancePreset) {
		return fmt.Errorf("display.distance_preset must be one of %s, got %q",
			strings.Join(validPresets, ", "), c.Display.DistancePreset)
	}

	if c.Results.File == "" {
		return errors.New("results.file is required")
	}

	if c.Prediction.RiegelExponent <= 0 || c.Prediction.RiegelExponent > 2 {
		return fmt.Errorf("prediction.riegel_exponent must be in (0, 2], got %v", c.Prediction.RiegelExponent)
	}

	if c.Log.MaxSizeMB < 0 || c.Log.MaxBackups < 0 {
		return errors.New("log.max_size_mb and log.max_backups must not be negative")
	}

	return nil
}

func isValidPreset(name string) bool {
	for _, p := range validPresets {
		if strings.EqualFold(p, name) {
			return true
		}
	}
	return false
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getFloatEnv(key string, fallback float64) float64 {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return fallback
}

// GetConfigPath returns the path to the config file
func GetConfigPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// GetConfigDir returns the path to the config directory
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".pacecalc"), nil
}

// DefaultLogPath returns ~/.pacecalc/pacecalc.log
func DefaultLogPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "pacecalc.log"), nil
}

package config

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/nqrduck/spectrometer-simulator/pkg/logger"
	"github.com/nqrduck/spectrometer-simulator/pkg/settings"
	"github.com/nqrduck/spectrometer-simulator/pkg/simulator"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func quietModel(t *testing.T) *simulator.Model {
	t.Helper()
	l := logger.NewWithConfig(logger.Config{Writer: io.Discard})
	m, err := simulator.NewModel("test", simulator.WithLogger(l))
	if err != nil {
		t.Fatalf("NewModel failed: %v", err)
	}
	return m
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
log_level: debug
no_color: true
link_editor: true
averages: 16
target_frequency: 83.56e6
settings:
  "N. simulation points": 2048
  "Name": "KNO2"
  "Temperature (K)": "77.5"
`)

	cfg, err := Load(New(), path)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.LogLevel != "debug" {
		t.Errorf("Expected log level 'debug', got '%s'", cfg.LogLevel)
	}
	if !cfg.NoColor || !cfg.LinkEditor {
		t.Errorf("Expected no_color and link_editor to be set: %+v", cfg)
	}
	if cfg.Averages != 16 {
		t.Errorf("Expected 16 averages, got %d", cfg.Averages)
	}
	if cfg.TargetFrequency != 83.56e6 {
		t.Errorf("Expected target frequency 83.56e6, got %g", cfg.TargetFrequency)
	}
	if len(cfg.Settings) != 3 {
		t.Fatalf("Expected 3 setting overrides, got %v", cfg.Settings)
	}

	m := quietModel(t)
	if err := cfg.Apply(m); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	if m.Averages() != 16 {
		t.Errorf("Expected 16 averages on model, got %d", m.Averages())
	}
	if points, _ := m.Int(simulator.NumberPoints); points != 2048 {
		t.Errorf("Expected 2048 points, got %d", points)
	}
	if name, _ := m.Text(simulator.SampleName); name != "KNO2" {
		t.Errorf("Expected sample KNO2, got %s", name)
	}
	if temperature, _ := m.Float(simulator.Temperature); temperature != 77.5 {
		t.Errorf("Expected 77.5 K, got %g", temperature)
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load(New(), "")
	if err != nil {
		t.Fatalf("Expected defaults without a config file, got %v", err)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("Expected log level 'info', got '%s'", cfg.LogLevel)
	}
	if cfg.Averages != simulator.DefaultAverages {
		t.Errorf("Expected %d averages, got %d", simulator.DefaultAverages, cfg.Averages)
	}
	if cfg.TargetFrequency != simulator.DefaultTargetFrequency {
		t.Errorf("Expected target frequency %g, got %g", simulator.DefaultTargetFrequency, cfg.TargetFrequency)
	}
	if err := cfg.Apply(quietModel(t)); err != nil {
		t.Errorf("Applying defaults failed: %v", err)
	}
}

func TestLoadEnvironmentOverride(t *testing.T) {
	t.Setenv("NQRSIM_AVERAGES", "32")
	t.Setenv("NQRSIM_LOG_LEVEL", "warn")

	cfg, err := Load(New(), writeConfig(t, "averages: 4\n"))
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if cfg.Averages != 32 {
		t.Errorf("Expected environment to override averages to 32, got %d", cfg.Averages)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("Expected log level 'warn', got '%s'", cfg.LogLevel)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	if _, err := Load(New(), filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected error for missing explicit config file")
	}
}

func TestApplyValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		target  error
	}{
		{
			name:    "zero averages",
			content: "averages: 0\n",
			target:  settings.ErrInvalidValue,
		},
		{
			name:    "negative frequency",
			content: "target_frequency: -5\n",
			target:  settings.ErrInvalidValue,
		},
		{
			name:    "wrong kind",
			content: "settings:\n  \"Number turns\": nine\n",
			target:  settings.ErrInvalidValue,
		},
		{
			name:    "out of range",
			content: "settings:\n  \"Filling factor\": 2\n",
			target:  settings.ErrInvalidValue,
		},
		{
			name:    "unknown setting",
			content: "settings:\n  \"Flux capacitor\": 1\n",
			target:  settings.ErrUnknownSetting,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(New(), writeConfig(t, tt.content))
			if err != nil {
				t.Fatalf("Failed to load config: %v", err)
			}
			if err := cfg.Apply(quietModel(t)); !errors.Is(err, tt.target) {
				t.Errorf("Expected %v, got %v", tt.target, err)
			}
		})
	}
}

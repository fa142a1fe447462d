package cmd

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/nqrduck/spectrometer-simulator/pkg/logger"
	"github.com/nqrduck/spectrometer-simulator/pkg/settings"
	"github.com/nqrduck/spectrometer-simulator/pkg/simulator"
)

func testModel(t *testing.T) *simulator.Model {
	t.Helper()
	l := logger.NewWithConfig(logger.Config{Writer: io.Discard})
	m, err := simulator.NewModel(moduleName, simulator.WithLogger(l))
	if err != nil {
		t.Fatalf("NewModel failed: %v", err)
	}
	return m
}

func TestBuildSnapshot(t *testing.T) {
	m := testModel(t)
	_ = m.SetAverages(8)

	snapshot := buildSnapshot(m)
	if snapshot.Module != moduleName || snapshot.State != "ready" || snapshot.Averages != 8 {
		t.Errorf("Unexpected snapshot header: %+v", snapshot)
	}
	if len(snapshot.Categories) != 4 {
		t.Fatalf("Expected 4 categories, got %d", len(snapshot.Categories))
	}
	if snapshot.Categories[0].Name != "Simulation" || snapshot.Categories[3].Name != "Sample" {
		t.Errorf("Unexpected category order: %s .. %s", snapshot.Categories[0].Name, snapshot.Categories[3].Name)
	}
	if len(snapshot.Options) != 2 || snapshot.Options[0].Channel != "TX" || snapshot.Options[1].Channel != "RX" {
		t.Errorf("Unexpected options: %+v", snapshot.Options)
	}
	if len(snapshot.Options[0].Fields) != 3 {
		t.Errorf("Expected 3 TX fields, got %d", len(snapshot.Options[0].Fields))
	}

	data, err := yaml.Marshal(snapshot)
	if err != nil {
		t.Fatalf("Failed to marshal snapshot: %v", err)
	}
	if !strings.Contains(string(data), "name: N. simulation points") {
		t.Errorf("Expected simulation points in YAML, got:\n%s", data)
	}
}

func TestParseCategories(t *testing.T) {
	categories, err := parseCategories([]string{"hardware", "ExperimentalSetup", "experimental setup"})
	if err != nil {
		t.Fatalf("parseCategories failed: %v", err)
	}
	expected := []settings.Category{settings.Hardware, settings.ExperimentalSetup, settings.ExperimentalSetup}
	for i, c := range expected {
		if categories[i] != c {
			t.Errorf("Expected %s at position %d, got %s", c, i, categories[i])
		}
	}

	if _, err := parseCategories([]string{"Electronics"}); err == nil {
		t.Error("Expected error for unknown category")
	}
}

func TestWriteSettings(t *testing.T) {
	var buf bytes.Buffer
	if err := writeSettings(&buf, testModel(t), []settings.Category{settings.Sample}); err != nil {
		t.Fatalf("writeSettings failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "BiPh3") {
		t.Errorf("Expected sample name in output:\n%s", out)
	}
	if strings.Contains(out, "N. simulation points") {
		t.Errorf("Filtered output contains Simulation settings:\n%s", out)
	}
	if !strings.Contains(out, "Target frequency: 1e+08 Hz") {
		t.Errorf("Expected target frequency line:\n%s", out)
	}
}

func TestAssign(t *testing.T) {
	model = testModel(t)
	t.Cleanup(func() { model = nil })

	if err := assign("averages", "4"); err != nil {
		t.Errorf("assign averages failed: %v", err)
	}
	if err := assign("target-frequency", "83.56e6"); err != nil {
		t.Errorf("assign target-frequency failed: %v", err)
	}
	if err := assign("Number turns", "12"); err != nil {
		t.Errorf("assign Number turns failed: %v", err)
	}
	if err := assign("averages", "0"); err == nil {
		t.Error("Expected zero averages to be rejected")
	}

	if model.Averages() != 4 || model.TargetFrequency() != 83.56e6 {
		t.Errorf("Unexpected scalars: %d, %g", model.Averages(), model.TargetFrequency())
	}
	if turns, _ := model.Int(simulator.NumberTurns); turns != 12 {
		t.Errorf("Expected 12 turns, got %d", turns)
	}
}

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_FullConfig(t *testing.T) {
	path := writeConfig(t, `
chip_path: /dev/gpiochip4
driver: rpio
button_pins: [1, 2, 3, 4]
led_pins: [5, 6, 7, 8]
presentation:
  shine_repeats: 3
  shine_on_ms: 10
  shine_off_ms: 20
  bit_ms: 30
  gap_ms: 40
poll_interval_ms: 2
debug_level: 4
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ChipPath != "/dev/gpiochip4" {
		t.Errorf("chip path = %q", cfg.ChipPath)
	}
	if cfg.Driver != DriverRpio {
		t.Errorf("driver = %q", cfg.Driver)
	}
	if cfg.ButtonPins[0] != 1 || cfg.LedPins[3] != 8 {
		t.Errorf("pins = %v %v", cfg.ButtonPins, cfg.LedPins)
	}
	if cfg.Presentation.ShineRepeats != 3 {
		t.Errorf("shine repeats = %d", cfg.Presentation.ShineRepeats)
	}
	if cfg.DebugLevel != 4 {
		t.Errorf("debug level = %d", cfg.DebugLevel)
	}
}

func TestLoad_PartialConfigKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "driver: mock\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	def := Default()
	if cfg.ChipPath != def.ChipPath {
		t.Errorf("chip path = %q, want default %q", cfg.ChipPath, def.ChipPath)
	}
	if len(cfg.ButtonPins) != 4 || cfg.ButtonPins[0] != 25 {
		t.Errorf("button pins = %v, want defaults", cfg.ButtonPins)
	}
	if cfg.Presentation.BitMs != 2000 {
		t.Errorf("bit ms = %d, want 2000", cfg.Presentation.BitMs)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file, got nil")
	}
}

func TestLoad_BadYaml(t *testing.T) {
	path := writeConfig(t, "button_pins: [1, 2\n")
	if _, err := Load(path); err == nil {
		t.Error("expected error for broken yaml, got nil")
	}
}

func TestValidate_UnknownDriver(t *testing.T) {
	cfg := Default()
	cfg.Driver = "sysfs"
	if err := cfg.Validate(); err == nil || !strings.Contains(err.Error(), "driver") {
		t.Errorf("expected driver error, got %v", err)
	}
}

func TestValidate_WrongPinCount(t *testing.T) {
	cfg := Default()
	cfg.ButtonPins = []int{1, 2, 3}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for 3 button pins, got nil")
	}

	cfg = Default()
	cfg.LedPins = []int{1, 2, 3, 4, 5}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for 5 led pins, got nil")
	}
}

func TestValidate_DuplicatePins(t *testing.T) {
	cfg := Default()
	cfg.ButtonPins = []int{1, 2, 2, 4}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for duplicate pins, got nil")
	}
}

func TestValidate_NegativePin(t *testing.T) {
	cfg := Default()
	cfg.LedPins = []int{1, -2, 3, 4}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for negative pin, got nil")
	}
}

func TestValidate_DebugLevelRange(t *testing.T) {
	cfg := Default()
	cfg.DebugLevel = 5
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for debug level 5, got nil")
	}
}

func TestValidate_ZeroTimingsTakeDefaults(t *testing.T) {
	cfg := Default()
	cfg.Presentation = PresentationConfig{}
	cfg.PollIntervalMs = 0
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if cfg.Presentation.ShineRepeats != 12 || cfg.Presentation.GapMs != 300 {
		t.Errorf("presentation defaults not applied: %+v", cfg.Presentation)
	}
	if cfg.PollIntervalMs != 5 {
		t.Errorf("poll interval = %d, want 5", cfg.PollIntervalMs)
	}
}

func TestDurationAccessors(t *testing.T) {
	cfg := Default()
	if cfg.ShineOn() != 100*time.Millisecond {
		t.Errorf("ShineOn = %v", cfg.ShineOn())
	}
	if cfg.ShineOff() != 150*time.Millisecond {
		t.Errorf("ShineOff = %v", cfg.ShineOff())
	}
	if cfg.BitTime() != 2*time.Second {
		t.Errorf("BitTime = %v", cfg.BitTime())
	}
	if cfg.GapTime() != 300*time.Millisecond {
		t.Errorf("GapTime = %v", cfg.GapTime())
	}
	if cfg.PollInterval() != 5*time.Millisecond {
		t.Errorf("PollInterval = %v", cfg.PollInterval())
	}
}

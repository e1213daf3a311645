package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Driver names accepted in the "driver" field.
const (
	DriverIoctl = "ioctl"
	DriverRpio  = "rpio"
	DriverMock  = "mock"
)

// PresentationConfig holds the timings for the result blink sequence.
type PresentationConfig struct {
	ShineRepeats int `yaml:"shine_repeats"` // all-LEDs flashes bracketing the result
	ShineOnMs    int `yaml:"shine_on_ms"`
	ShineOffMs   int `yaml:"shine_off_ms"`
	BitMs        int `yaml:"bit_ms"` // how long each bit pattern stays lit
	GapMs        int `yaml:"gap_ms"` // all-off pause between bits
}

// Config aggregates all application configuration.
type Config struct {
	ChipPath       string             `yaml:"chip_path"` // /dev/gpiochipN character device
	Driver         string             `yaml:"driver"`    // ioctl, rpio or mock
	ButtonPins     []int              `yaml:"button_pins"`
	LedPins        []int              `yaml:"led_pins"`
	Presentation   PresentationConfig `yaml:"presentation"`
	PollIntervalMs int                `yaml:"poll_interval_ms"` // rpio edge poll period
	DebugLevel     int                `yaml:"debug_level"`      // 0-4 (0=off, 4=trace)
}

// Default returns the configuration matching the reference hardware:
// 4 buttons on BCM 25/10/17/18, 4 LEDs on BCM 24/22/23/27, gpiochip0.
func Default() *Config {
	return &Config{
		ChipPath:   "/dev/gpiochip0",
		Driver:     DriverIoctl,
		ButtonPins: []int{25, 10, 17, 18},
		LedPins:    []int{24, 22, 23, 27},
		Presentation: PresentationConfig{
			ShineRepeats: 12,
			ShineOnMs:    100,
			ShineOffMs:   150,
			BitMs:        2000,
			GapMs:        300,
		},
		PollIntervalMs: 5,
		DebugLevel:     1,
	}
}

// Load reads a YAML file and returns the configuration.
// Missing values fall back to the defaults from Default().
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("unmarshal yaml: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks pin sets, driver name and timings, applying defaults
// where a zero value means "not set".
func (c *Config) Validate() error {
	if c.ChipPath == "" {
		c.ChipPath = "/dev/gpiochip0"
	}
	switch c.Driver {
	case DriverIoctl, DriverRpio, DriverMock:
	case "":
		c.Driver = DriverIoctl
	default:
		return fmt.Errorf("unknown driver %q (want %s, %s or %s)", c.Driver, DriverIoctl, DriverRpio, DriverMock)
	}

	if err := validatePins("button_pins", c.ButtonPins); err != nil {
		return err
	}
	if err := validatePins("led_pins", c.LedPins); err != nil {
		return err
	}

	def := Default().Presentation
	if c.Presentation.ShineRepeats <= 0 {
		c.Presentation.ShineRepeats = def.ShineRepeats
	}
	if c.Presentation.ShineOnMs <= 0 {
		c.Presentation.ShineOnMs = def.ShineOnMs
	}
	if c.Presentation.ShineOffMs <= 0 {
		c.Presentation.ShineOffMs = def.ShineOffMs
	}
	if c.Presentation.BitMs <= 0 {
		c.Presentation.BitMs = def.BitMs
	}
	if c.Presentation.GapMs <= 0 {
		c.Presentation.GapMs = def.GapMs
	}
	if c.PollIntervalMs <= 0 {
		c.PollIntervalMs = 5
	}
	if c.DebugLevel < 0 || c.DebugLevel > 4 {
		return fmt.Errorf("debug_level must be 0-4, got %d", c.DebugLevel)
	}
	return nil
}

func validatePins(name string, pins []int) error {
	if len(pins) != 4 {
		return fmt.Errorf("%s must list exactly 4 pins, got %d", name, len(pins))
	}
	seen := make(map[int]bool, 4)
	for _, p := range pins {
		if p < 0 {
			return fmt.Errorf("%s contains negative pin %d", name, p)
		}
		if seen[p] {
			return fmt.Errorf("%s contains duplicate pin %d", name, p)
		}
		seen[p] = true
	}
	return nil
}

// ShineOn returns how long all LEDs stay lit during a shine flash.
func (c *Config) ShineOn() time.Duration {
	return time.Duration(c.Presentation.ShineOnMs) * time.Millisecond
}

// ShineOff returns the dark pause between shine flashes.
func (c *Config) ShineOff() time.Duration {
	return time.Duration(c.Presentation.ShineOffMs) * time.Millisecond
}

// BitTime returns how long a single bit pattern stays lit.
func (c *Config) BitTime() time.Duration {
	return time.Duration(c.Presentation.BitMs) * time.Millisecond
}

// GapTime returns the all-off pause between two bits.
func (c *Config) GapTime() time.Duration {
	return time.Duration(c.Presentation.GapMs) * time.Millisecond
}

// PollInterval returns the edge poll period for the rpio driver.
func (c *Config) PollInterval() time.Duration {
	return time.Duration(c.PollIntervalMs) * time.Millisecond
}

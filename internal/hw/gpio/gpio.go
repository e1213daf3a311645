package gpio

import (
	"errors"
	"fmt"

	"github.com/mwegrzyn/bincalc/internal/config"
	"github.com/mwegrzyn/bincalc/internal/debug"
)

// Level represents the logical state of a GPIO pin.
type Level bool

const (
	Low  Level = false
	High Level = true
)

// Edge is the direction of a level transition on a button line.
// With pulled-up buttons a falling edge is a press, a rising edge
// a release.
type Edge int

const (
	Rising Edge = iota
	Falling
)

func (e Edge) String() string {
	if e == Falling {
		return "falling"
	}
	return "rising"
}

// Event is a single edge detection on one of the button lines.
type Event struct {
	Button int
	Edge   Edge
}

// ErrClosed is returned by WaitEvent after the bank has been closed.
var ErrClosed = errors.New("gpio: bank closed")

// Bank is the abstract interface over the board's fixed IO set:
// 4 button input lines with edge detection and 4 LED output lines.
// It allows plugging in the character-device or memory-mapped
// implementation on a Raspberry Pi, or a mock for development on PC.
type Bank interface {
	// WriteLED sets the level of the LED output at index 0..3.
	WriteLED(index int, level Level) error
	// WaitEvent blocks, with no timeout, until an edge is detected on
	// any button line and returns one event per call. Events detected
	// in the same wakeup are delivered in button index order.
	WaitEvent() (Event, error)
	// Close releases every acquired line. Safe to call more than once
	// and after a partial acquisition failure.
	Close() error
}

// NewBank creates a GPIO bank for the configured driver.
func NewBank(cfg *config.Config) (Bank, error) {
	switch cfg.Driver {
	case config.DriverMock:
		debug.Info("Using MOCK GPIO bank (development mode)")
		return NewMockBank(), nil
	case config.DriverRpio:
		return NewRpioBank(cfg.ButtonPins, cfg.LedPins, cfg.PollInterval())
	case config.DriverIoctl:
		return NewIoctlBank(cfg.ChipPath, cfg.ButtonPins, cfg.LedPins)
	default:
		return nil, fmt.Errorf("unknown gpio driver: %q", cfg.Driver)
	}
}

func checkLedIndex(index int) error {
	if index < 0 || index > 3 {
		return fmt.Errorf("led index %d out of range 0..3", index)
	}
	return nil
}

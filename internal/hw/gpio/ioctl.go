package gpio

import (
	"fmt"

	pgpio "periph.io/x/conn/v3/gpio"
	"periph.io/x/host/v3"
	"periph.io/x/host/v3/gpioioctl"

	"github.com/mwegrzyn/bincalc/internal/debug"
)

// IoctlBank is the character-device implementation built on the Linux
// GPIO v2 uAPI through periph.io. Buttons live in one line set requested
// with both-edge detection so a single blocking wait covers all of them;
// LEDs live in a second, output-only line set.
type IoctlBank struct {
	buttons *gpioioctl.LineSet
	leds    *gpioioctl.LineSet
	ledPins []int
	// chip line number -> button index, for mapping edge events back.
	index map[int]int
}

// NewIoctlBank opens the gpiochip character device at chipPath and
// requests the button and LED lines. On any failure the lines acquired
// so far are released before returning.
func NewIoctlBank(chipPath string, buttonPins, ledPins []int) (*IoctlBank, error) {
	debug.Info("Initializing ioctl GPIO bank on %s", chipPath)

	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("init periph host: %w", err)
	}

	chip := chipByPath(chipPath)
	if chip == nil {
		return nil, fmt.Errorf("gpio chip %s not found", chipPath)
	}

	buttonNames, err := lineNames(chip, buttonPins)
	if err != nil {
		return nil, fmt.Errorf("resolve button lines: %w", err)
	}
	ledNames, err := lineNames(chip, ledPins)
	if err != nil {
		return nil, fmt.Errorf("resolve led lines: %w", err)
	}

	buttons, err := chip.LineSet(gpioioctl.LineInput, pgpio.BothEdges, pgpio.PullUp, buttonNames...)
	if err != nil {
		return nil, fmt.Errorf("request button lines %v: %w", buttonPins, err)
	}
	leds, err := chip.LineSet(gpioioctl.LineOutput, pgpio.NoEdge, pgpio.PullNoChange, ledNames...)
	if err != nil {
		_ = buttons.Close()
		return nil, fmt.Errorf("request led lines %v: %w", ledPins, err)
	}

	index := make(map[int]int, len(buttonPins))
	for i, line := range buttons.Lines() {
		index[line.Number()] = i
	}

	debug.Verbose("Requested %d button and %d led lines on chip %s", buttons.LineCount(), leds.LineCount(), chip.Name())

	return &IoctlBank{
		buttons: buttons,
		leds:    leds,
		ledPins: ledPins,
		index:   index,
	}, nil
}

// chipByPath finds an initialized chip by its /dev path.
func chipByPath(path string) *gpioioctl.GPIOChip {
	for _, chip := range gpioioctl.Chips {
		if chip.Path() == path {
			return chip
		}
	}
	return nil
}

// lineNames maps chip line numbers to the kernel's line names, which is
// what the line set request wants.
func lineNames(chip *gpioioctl.GPIOChip, pins []int) ([]string, error) {
	names := make([]string, 0, len(pins))
	for _, p := range pins {
		line := chip.ByNumber(p)
		if line == nil {
			return nil, fmt.Errorf("line %d not present on chip %s", p, chip.Name())
		}
		if line.Name() == "" {
			return nil, fmt.Errorf("line %d on chip %s has no name", p, chip.Name())
		}
		names = append(names, line.Name())
	}
	return names, nil
}

func (b *IoctlBank) WriteLED(index int, level Level) error {
	if err := checkLedIndex(index); err != nil {
		return err
	}
	debug.GPIO("WriteLED", b.ledPins[index], level)
	if err := b.leds.Lines()[index].Out(pgpio.Level(level)); err != nil {
		return fmt.Errorf("write led %d (pin %d): %w", index, b.ledPins[index], err)
	}
	return nil
}

func (b *IoctlBank) WaitEvent() (Event, error) {
	for {
		number, edge, err := b.buttons.WaitForEdge(0)
		if err != nil {
			return Event{}, fmt.Errorf("wait for edge: %w", err)
		}
		idx, ok := b.index[int(number)]
		if !ok {
			debug.Trace("edge on unexpected line %d, ignoring", number)
			continue
		}
		switch edge {
		case pgpio.RisingEdge:
			debug.GPIO("Edge", int(number), Rising)
			return Event{Button: idx, Edge: Rising}, nil
		case pgpio.FallingEdge:
			debug.GPIO("Edge", int(number), Falling)
			return Event{Button: idx, Edge: Falling}, nil
		default:
			// NoEdge shows up when the wait was halted; keep waiting.
			continue
		}
	}
}

// Close releases both line sets. A pending WaitEvent is unblocked and
// returns an error.
func (b *IoctlBank) Close() error {
	debug.Trace("GPIO Close (ioctl bank)")
	errButtons := b.buttons.Close()
	errLeds := b.leds.Close()
	if errButtons != nil {
		return errButtons
	}
	return errLeds
}

package gpio

import (
	"fmt"
	"sync"
	"time"

	"github.com/stianeikeland/go-rpio/v4"

	"github.com/mwegrzyn/bincalc/internal/debug"
)

// RpioBank is the memory-mapped implementation using go-rpio.
// Requires running on a Raspberry Pi with access to /dev/gpiomem or as
// root. go-rpio's edge detection is latch-based, so the multiplexed wait
// is a poll loop: each pass checks every button latch in index order and
// queues the detected edges, which keeps simultaneous presses ordered
// the same way the character-device backend delivers them.
type RpioBank struct {
	buttons []rpio.Pin
	leds    []rpio.Pin
	ledPins []int
	poll    time.Duration

	pending []Event
	done    chan struct{}
	once    sync.Once
}

// NewRpioBank maps the GPIO registers and configures the button pins as
// pulled-up inputs with edge detection and the LED pins as outputs.
func NewRpioBank(buttonPins, ledPins []int, poll time.Duration) (*RpioBank, error) {
	debug.Info("Initializing rpio GPIO bank")

	if err := rpio.Open(); err != nil {
		return nil, fmt.Errorf("open gpio memory: %w (are you running on a Raspberry Pi?)", err)
	}

	b := &RpioBank{
		ledPins: ledPins,
		poll:    poll,
		done:    make(chan struct{}),
	}
	for _, p := range buttonPins {
		pin := rpio.Pin(p)
		pin.Input()
		pin.PullUp()
		pin.Detect(rpio.AnyEdge)
		b.buttons = append(b.buttons, pin)
	}
	for _, p := range ledPins {
		pin := rpio.Pin(p)
		pin.Output()
		pin.Low()
		b.leds = append(b.leds, pin)
	}

	debug.Verbose("GPIO memory mapped, buttons %v, leds %v", buttonPins, ledPins)
	return b, nil
}

func (b *RpioBank) WriteLED(index int, level Level) error {
	if err := checkLedIndex(index); err != nil {
		return err
	}
	select {
	case <-b.done:
		return ErrClosed
	default:
	}
	debug.GPIO("WriteLED", b.ledPins[index], level)
	if level == High {
		b.leds[index].High()
	} else {
		b.leds[index].Low()
	}
	return nil
}

func (b *RpioBank) WaitEvent() (Event, error) {
	for {
		if len(b.pending) > 0 {
			ev := b.pending[0]
			b.pending = b.pending[1:]
			debug.GPIO("Edge", int(b.buttons[ev.Button]), ev.Edge)
			return ev, nil
		}

		select {
		case <-b.done:
			return Event{}, ErrClosed
		default:
		}

		for i, pin := range b.buttons {
			if !pin.EdgeDetected() {
				continue
			}
			// The latch does not record the direction; recover it from
			// the level after the edge.
			edge := Rising
			if pin.Read() == rpio.Low {
				edge = Falling
			}
			b.pending = append(b.pending, Event{Button: i, Edge: edge})
		}
		if len(b.pending) == 0 {
			time.Sleep(b.poll)
		}
	}
}

// Close disables edge detection, resets the button pins and unmaps the
// GPIO registers. A pending WaitEvent returns ErrClosed on its next
// poll pass.
func (b *RpioBank) Close() error {
	var err error
	b.once.Do(func() {
		debug.Trace("GPIO Close (rpio bank)")
		close(b.done)
		time.Sleep(b.poll) // let a blocked WaitEvent observe done
		for _, pin := range b.buttons {
			pin.Detect(rpio.NoEdge)
		}
		for _, pin := range b.leds {
			pin.Low()
		}
		err = rpio.Close()
	})
	return err
}

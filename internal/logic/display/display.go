package display

import (
	"time"

	"github.com/mwegrzyn/bincalc/internal/debug"
	"github.com/mwegrzyn/bincalc/internal/hw/leds"
	"github.com/mwegrzyn/bincalc/internal/logic/operand"
)

// Timings holds the blink schedule of the presentation sequence.
type Timings struct {
	ShineRepeats int           // all-LEDs flashes bracketing the result
	ShineOn      time.Duration // lit time per shine flash
	ShineOff     time.Duration // dark time per shine flash
	BitTime      time.Duration // lit time per bit pattern
	Gap          time.Duration // all-off pause after each bit
}

// Presenter renders a 64-bit result as a timed LED blink sequence:
// a shine sequence, one pattern per bit from the least significant up,
// and a closing shine sequence. Rendering is blocking; the calculator
// takes no input while it runs.
type Presenter struct {
	leds  *leds.Bank
	t     Timings
	sleep func(time.Duration)
}

// NewPresenter creates a presenter over the given LED bank.
func NewPresenter(b *leds.Bank, t Timings) *Presenter {
	return &Presenter{
		leds:  b,
		t:     t,
		sleep: time.Sleep,
	}
}

// Render plays the full presentation for result. All 64 bit slots are
// emitted, leading zeros included.
func (p *Presenter) Render(result uint64) error {
	debug.Live("Presenting result 0b%b", result)

	if err := p.shine(); err != nil {
		return err
	}
	for bit := 0; bit < operand.Width; bit++ {
		one := result&(uint64(1)<<bit) != 0
		if err := p.signalBit(one); err != nil {
			return err
		}
		p.sleep(p.t.Gap)
	}
	return p.shine()
}

// shine flashes all LEDs ShineRepeats times, marking the start and end
// of the output.
func (p *Presenter) shine() error {
	for i := 0; i < p.t.ShineRepeats; i++ {
		if err := p.leds.EnableAll(); err != nil {
			return err
		}
		p.sleep(p.t.ShineOn)
		if err := p.leds.DisableAll(); err != nil {
			return err
		}
		p.sleep(p.t.ShineOff)
	}
	return nil
}

// signalBit holds the bit pattern for one bit slot: LEDs 0 and 1 for a
// one, LEDs 2 and 3 for a zero.
func (p *Presenter) signalBit(one bool) error {
	if err := p.leds.DisableAll(); err != nil {
		return err
	}
	first, second := 2, 3
	if one {
		first, second = 0, 1
	}
	if err := p.leds.Enable(first); err != nil {
		return err
	}
	if err := p.leds.Enable(second); err != nil {
		return err
	}
	p.sleep(p.t.BitTime)
	return p.leds.DisableAll()
}

package leds

import (
	"github.com/mwegrzyn/bincalc/internal/hw/gpio"
)

// Count is the number of LED outputs on the board.
const Count = 4

// Bank drives the 4 LED outputs through the GPIO collaborator.
type Bank struct {
	gpio gpio.Bank
}

// NewBank creates an LED bank over the given GPIO bank.
func NewBank(g gpio.Bank) *Bank {
	return &Bank{gpio: g}
}

// Set switches the LED at index on or off.
func (b *Bank) Set(index int, on bool) error {
	return b.gpio.WriteLED(index, gpio.Level(on))
}

// Enable turns the LED at index on.
func (b *Bank) Enable(index int) error {
	return b.Set(index, true)
}

// Disable turns the LED at index off.
func (b *Bank) Disable(index int) error {
	return b.Set(index, false)
}

// EnableAll turns every LED on.
func (b *Bank) EnableAll() error {
	for i := 0; i < Count; i++ {
		if err := b.Enable(i); err != nil {
			return err
		}
	}
	return nil
}

// DisableAll turns every LED off.
func (b *Bank) DisableAll() error {
	for i := 0; i < Count; i++ {
		if err := b.Disable(i); err != nil {
			return err
		}
	}
	return nil
}

// ShowBits displays the low 4 bits of bits, most significant first:
// LED 0 carries bit 3 and LED 3 carries bit 0.
func (b *Bank) ShowBits(bits uint64) error {
	for i := 0; i < Count; i++ {
		mask := uint64(1) << (Count - 1 - i)
		if err := b.Set(i, bits&mask != 0); err != nil {
			return err
		}
	}
	return nil
}

package session

import (
	"context"

	"github.com/mwegrzyn/bincalc/internal/debug"
	"github.com/mwegrzyn/bincalc/internal/hw/gpio"
	"github.com/mwegrzyn/bincalc/internal/hw/leds"
	"github.com/mwegrzyn/bincalc/internal/logic/display"
	"github.com/mwegrzyn/bincalc/internal/logic/operand"
	"github.com/mwegrzyn/bincalc/internal/logic/operation"
)

// Phase is a step in the calculator session.
type Phase int

const (
	PhaseFirstOperand Phase = iota
	PhaseSecondOperand
	PhaseOperation
	PhaseDisplay
	// phaseCycle marks the end of a session; it immediately re-enters
	// PhaseFirstOperand.
	phaseCycle
)

func (p Phase) String() string {
	switch p {
	case PhaseFirstOperand:
		return "first operand input"
	case PhaseSecondOperand:
		return "second operand input"
	case PhaseOperation:
		return "operation input"
	case PhaseDisplay:
		return "display"
	case phaseCycle:
		return "cycle"
	}
	return "unknown"
}

func (p Phase) next() Phase {
	switch p {
	case PhaseFirstOperand:
		return PhaseSecondOperand
	case PhaseSecondOperand:
		return PhaseOperation
	case PhaseOperation:
		return PhaseDisplay
	case PhaseDisplay:
		return phaseCycle
	default:
		return PhaseFirstOperand
	}
}

// Controller drives the calculator session: it owns the calculation
// state, dispatches button presses according to the current phase and
// advances through the fixed phase cycle. There is exactly one thread
// of control, so no locking is involved anywhere in the session.
type Controller struct {
	bank  gpio.Bank
	leds  *leds.Bank
	pres  *display.Presenter
	acc   operand.Accumulator
	op    operation.Operation
	phase Phase
}

// NewController creates a session controller starting at the first
// operand input phase with addition selected.
func NewController(bank gpio.Bank, l *leds.Bank, p *display.Presenter) *Controller {
	return &Controller{
		bank:  bank,
		leds:  l,
		pres:  p,
		phase: PhaseFirstOperand,
	}
}

// Phase returns the current phase.
func (c *Controller) Phase() Phase {
	return c.phase
}

// Operand returns the entered value of operand index.
func (c *Controller) Operand(index int) uint64 {
	return c.acc.Operand(index)
}

// Operation returns the currently selected operation.
func (c *Controller) Operation() operation.Operation {
	return c.op
}

// Run executes the session loop until ctx is cancelled or a hardware
// error occurs. The loop itself never finishes on its own: the display
// phase cycles back to the first operand input.
func (c *Controller) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if err := c.Step(ctx); err != nil {
			return err
		}
	}
}

// Step processes the current phase to completion and advances to the
// next one.
func (c *Controller) Step(ctx context.Context) error {
	debug.Phase(c.phase.String())

	switch c.phase {
	case PhaseFirstOperand, PhaseSecondOperand:
		index := 0
		if c.phase == PhaseSecondOperand {
			index = 1
		}
		c.acc.Begin(index)
		if err := c.leds.DisableAll(); err != nil {
			return err
		}
		if err := c.waitPhase(ctx); err != nil {
			return err
		}

	case PhaseOperation:
		// Operation entry always restarts at addition.
		c.op = operation.Add
		if err := c.leds.DisableAll(); err != nil {
			return err
		}
		if err := c.waitPhase(ctx); err != nil {
			return err
		}

	case PhaseDisplay:
		a, b := c.acc.Operand(0), c.acc.Operand(1)
		result := c.op.Apply(a, b)
		debug.Result(c.op.String(), a, b, result)
		if err := c.pres.Render(result); err != nil {
			return err
		}

	case phaseCycle:
		debug.Info("Session complete, restarting calculation")
	}

	c.phase = c.phase.next()
	return nil
}

// waitPhase blocks on the button lines until a handler reports that the
// phase is complete. Only falling edges count as presses; rising edges
// and edges on unbound buttons are ignored.
func (c *Controller) waitPhase(ctx context.Context) error {
	for {
		ev, err := c.bank.WaitEvent()
		if err != nil {
			return err
		}
		if ev.Edge != gpio.Falling {
			debug.Trace("Ignoring %s edge on button %d", ev.Edge, ev.Button)
			continue
		}
		debug.Press(ev.Button)

		keep, err := c.HandlePress(ev.Button)
		if err != nil {
			return err
		}
		if !keep {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
	}
}

// HandlePress applies one button press in the current phase. The
// returned bool reports whether the phase keeps waiting for more input.
func (c *Controller) HandlePress(button int) (bool, error) {
	switch c.phase {
	case PhaseFirstOperand, PhaseSecondOperand:
		return c.handleOperandPress(button)
	case PhaseOperation:
		return c.handleOperationPress(button)
	}
	// No buttons are bound outside the input phases.
	return true, nil
}

func (c *Controller) handleOperandPress(button int) (bool, error) {
	switch button {
	case 0:
		return false, nil
	case 1:
		c.acc.AppendBit(0)
	case 2:
		c.acc.AppendBit(1)
	case 3:
		c.acc.DeleteLastBit()
	default:
		return true, nil
	}

	debug.Operand(c.acc.Active(), c.acc.Operand(c.acc.Active()), c.acc.Cursor())
	window := c.acc.Window()
	debug.Window(window)
	return true, c.leds.ShowBits(window)
}

func (c *Controller) handleOperationPress(button int) (bool, error) {
	switch button {
	case 0:
		return false, nil
	case 1:
		c.op = c.op.Advance()
		debug.Live("Operation: %s", c.op)
		return true, c.leds.ShowBits(c.op.Code())
	}
	return true, nil
}
